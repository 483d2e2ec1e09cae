package catalog

import (
	"time"

	"github.com/clearwell/clearwell-backend/internal/ingredients"
	"github.com/clearwell/clearwell-backend/pkg/db/models"
	"github.com/clearwell/clearwell-backend/pkg/enums"
	"github.com/google/uuid"
)

// BrandDTO is the brand info embedded in product payloads.
type BrandDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image *string   `json:"image,omitempty"`
}

// ProductSummary is the shape shared by favorites, random sampling, and list
// payloads. Tap locations reuse it with the utility name as the brand line.
type ProductSummary struct {
	ID               uuid.UUID         `json:"id"`
	Type             enums.ProductType `json:"type"`
	Name             string            `json:"name"`
	Score            *int              `json:"score,omitempty"`
	Image            *string           `json:"image,omitempty"`
	BrandName        *string           `json:"brand_name,omitempty"`
	ContaminantCount int               `json:"contaminant_count"`
	CreatedAt        time.Time         `json:"created_at"`
}

// ProductDetailDTO is the full product payload with normalized contaminants.
type ProductDetailDTO struct {
	ID           uuid.UUID                    `json:"id"`
	Type         enums.ProductType            `json:"type"`
	Name         string                       `json:"name"`
	Score        *int                         `json:"score,omitempty"`
	Image        *string                      `json:"image,omitempty"`
	Description  *string                      `json:"description,omitempty"`
	Brand        *BrandDTO                    `json:"brand,omitempty"`
	Contaminants []ingredients.ContaminantDTO `json:"contaminants"`
	ViewCount    int                          `json:"view_count"`
	CreatedAt    time.Time                    `json:"created_at"`
	UpdatedAt    time.Time                    `json:"updated_at"`
}

// LocationDTO is the tap water location payload.
type LocationDTO struct {
	ID           uuid.UUID                    `json:"id"`
	Name         string                       `json:"name"`
	UtilityName  *string                      `json:"utility_name,omitempty"`
	City         *string                      `json:"city,omitempty"`
	State        *string                      `json:"state,omitempty"`
	Score        *int                         `json:"score,omitempty"`
	Image        *string                      `json:"image,omitempty"`
	Contaminants []ingredients.ContaminantDTO `json:"contaminants"`
}

func brandDTO(brand *models.Brand) *BrandDTO {
	if brand == nil {
		return nil
	}
	return &BrandDTO{
		ID:    brand.ID,
		Name:  brand.Name,
		Image: brand.Image,
	}
}

func brandName(brand *models.Brand) *string {
	if brand == nil {
		return nil
	}
	name := brand.Name
	return &name
}

func itemSummary(item *models.Item) ProductSummary {
	return ProductSummary{
		ID:               item.ID,
		Type:             item.Type,
		Name:             item.Name,
		Score:            item.Score,
		Image:            item.Image,
		BrandName:        brandName(item.Brand),
		ContaminantCount: len(item.Measurements),
		CreatedAt:        item.CreatedAt,
	}
}

func filterSummary(filter *models.WaterFilter) ProductSummary {
	return ProductSummary{
		ID:               filter.ID,
		Type:             filter.Type,
		Name:             filter.Name,
		Score:            filter.Score,
		Image:            filter.Image,
		BrandName:        brandName(filter.Brand),
		ContaminantCount: len(filter.Measurements),
		CreatedAt:        filter.CreatedAt,
	}
}

func locationSummary(location *models.TapWaterLocation) ProductSummary {
	return ProductSummary{
		ID:               location.ID,
		Type:             enums.ProductTypeTapWater,
		Name:             location.Name,
		Score:            location.Score,
		Image:            location.Image,
		BrandName:        location.UtilityName,
		ContaminantCount: len(location.Measurements),
		CreatedAt:        location.CreatedAt,
	}
}
