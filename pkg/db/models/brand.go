package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand is the consumer-facing label products are sold under.
type Brand struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string     `gorm:"column:name;not null"`
	Image     *string    `gorm:"column:image"`
	CompanyID *uuid.UUID `gorm:"column:company_id;type:uuid"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
