package models

import (
	"time"

	"github.com/clearwell/clearwell-backend/pkg/enums"
	"github.com/clearwell/clearwell-backend/pkg/types"
	"github.com/google/uuid"
)

// Item is a bottled water or gallon listing.
type Item struct {
	ID            uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string             `gorm:"column:name;not null"`
	Type          enums.ProductType  `gorm:"column:type;type:text;not null"`
	Score         *int               `gorm:"column:score"`
	Image         *string            `gorm:"column:image"`
	Description   *string            `gorm:"column:description"`
	BrandID       *uuid.UUID         `gorm:"column:brand_id;type:uuid"`
	Brand         *Brand             `gorm:"foreignKey:BrandID"`
	Measurements  types.Measurements `gorm:"column:measurements;type:jsonb;not null;default:'[]'"`
	ViewCount     int                `gorm:"column:view_count;not null;default:0"`
	FavoriteCount int                `gorm:"column:favorite_count;not null;default:0"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
