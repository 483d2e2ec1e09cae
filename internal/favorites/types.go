package favorites

import (
	"time"

	"github.com/clearwell/clearwell-backend/internal/catalog"
	"github.com/clearwell/clearwell-backend/pkg/enums"
	"github.com/google/uuid"
)

// ResolvedFavorite pairs a favorite link with the product it points at.
type ResolvedFavorite struct {
	FavoriteID  uuid.UUID              `json:"favorite_id"`
	ProductType enums.ProductType      `json:"product_type"`
	Product     catalog.ProductSummary `json:"product"`
	CreatedAt   time.Time              `json:"created_at"`
}

// PageInfo carries cursor pagination metadata for favorites listings.
type PageInfo struct {
	Total   int    `json:"total"`
	Current string `json:"current,omitempty"`
	Next    string `json:"next,omitempty"`
}

// FavoriteIDsDTO is a lightweight projection containing only item IDs plus
// pagination metadata.
type FavoriteIDsDTO struct {
	ItemIDs    []uuid.UUID `json:"item_ids"`
	Pagination PageInfo    `json:"pagination"`
}
