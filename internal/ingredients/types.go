package ingredients

import (
	"github.com/google/uuid"
)

// ContaminantDTO is a single normalized reading returned on product detail
// and favorites payloads.
type ContaminantDTO struct {
	IngredientID    uuid.UUID `json:"ingredient_id"`
	Name            string    `json:"name"`
	Risks           []string  `json:"risks"`
	Benefits        []string  `json:"benefits"`
	Amount          *float64  `json:"amount,omitempty"`
	LegalLimit      *float64  `json:"legal_limit,omitempty"`
	HealthGuideline *float64  `json:"health_guideline,omitempty"`
	// ExceedingLimit is nil when the ingredient has no usable limit or the
	// reading has no amount. Nil means "no limit data", not zero.
	ExceedingLimit *int `json:"exceeding_limit,omitempty"`
}

// IngredientDTO is the reference-table transport shape.
type IngredientDTO struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	LegalLimit      *float64  `json:"legal_limit,omitempty"`
	HealthGuideline *float64  `json:"health_guideline,omitempty"`
	IsContaminant   bool      `json:"is_contaminant"`
	Risks           []string  `json:"risks"`
	Benefits        []string  `json:"benefits"`
}
