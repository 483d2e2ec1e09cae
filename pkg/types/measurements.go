package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Measurement is a single raw contaminant reading attached to a product row.
// Amount is nullable because lab reports sometimes list an ingredient without
// a usable quantity.
type Measurement struct {
	IngredientID uuid.UUID `json:"ingredient_id"`
	Amount       *float64  `json:"amount,omitempty"`
}

// Measurements is the JSONB column holding a product's raw readings.
type Measurements []Measurement

// Value marshals the readings into JSON for Postgres.
func (m Measurements) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	buf, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes JSONB into the slice.
func (m *Measurements) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("measurements: unsupported scan type %T", value)
	}

	result := Measurements{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*m = result
	return nil
}
