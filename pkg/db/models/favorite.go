package models

import (
	"time"

	"github.com/clearwell/clearwell-backend/pkg/enums"
	"github.com/google/uuid"
)

// Favorite links a user to a saved product. ItemID is a heterogeneous
// reference: the ProductType discriminator decides which catalog table it
// points into, so there is no single foreign key.
type Favorite struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index:favorites_user_id_idx;uniqueIndex:favorites_user_item_key"`
	ProductType enums.ProductType `gorm:"column:product_type;type:text;not null"`
	ItemID      uuid.UUID         `gorm:"column:item_id;type:uuid;not null;uniqueIndex:favorites_user_item_key"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
}
