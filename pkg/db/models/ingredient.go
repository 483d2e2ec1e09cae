package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Ingredient is the reference row contaminant measurements are scored against.
// HealthGuideline takes precedence over LegalLimit when both are set.
type Ingredient struct {
	ID              uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string         `gorm:"column:name;not null"`
	Description     *string        `gorm:"column:description"`
	LegalLimit      *float64       `gorm:"column:legal_limit"`
	HealthGuideline *float64       `gorm:"column:health_guideline"`
	IsContaminant   bool           `gorm:"column:is_contaminant;not null;default:false"`
	Risks           pq.StringArray `gorm:"column:risks;type:text[];not null;default:ARRAY[]::text[]"`
	Benefits        pq.StringArray `gorm:"column:benefits;type:text[];not null;default:ARRAY[]::text[]"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
