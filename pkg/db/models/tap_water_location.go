package models

import (
	"time"

	"github.com/clearwell/clearwell-backend/pkg/types"
	"github.com/google/uuid"
)

// TapWaterLocation is a municipal water system with its quality score.
type TapWaterLocation struct {
	ID           uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string             `gorm:"column:name;not null"`
	UtilityName  *string            `gorm:"column:utility_name"`
	City         *string            `gorm:"column:city"`
	State        *string            `gorm:"column:state"`
	Score        *int               `gorm:"column:score"`
	Image        *string            `gorm:"column:image"`
	Measurements types.Measurements `gorm:"column:measurements;type:jsonb;not null;default:'[]'"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
