package catalog

import (
	"context"

	"github.com/clearwell/clearwell-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository wires together catalog persistence for the three product tables.
// Each product type has its own typed finder; callers route through the
// ProductType enum rather than table-name strings.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindItemByID loads a bottled water row with its brand.
func (r *Repository) FindItemByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).Preload("Brand").First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindFilterByID loads a water filter row with its brand.
func (r *Repository) FindFilterByID(ctx context.Context, id uuid.UUID) (*models.WaterFilter, error) {
	var filter models.WaterFilter
	if err := r.db.WithContext(ctx).Preload("Brand").First(&filter, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &filter, nil
}

// FindLocationByID loads a tap water location row.
func (r *Repository) FindLocationByID(ctx context.Context, id uuid.UUID) (*models.TapWaterLocation, error) {
	var location models.TapWaterLocation
	if err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

// RandomItems samples bottled water rows in random order.
func (r *Repository) RandomItems(ctx context.Context, limit int) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.WithContext(ctx).
		Preload("Brand").
		Order("random()").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// RandomFilters samples water filter rows in random order.
func (r *Repository) RandomFilters(ctx context.Context, limit int) ([]models.WaterFilter, error) {
	var filters []models.WaterFilter
	if err := r.db.WithContext(ctx).
		Preload("Brand").
		Order("random()").
		Limit(limit).
		Find(&filters).Error; err != nil {
		return nil, err
	}
	return filters, nil
}

// RandomLocations samples tap water locations in random order.
func (r *Repository) RandomLocations(ctx context.Context, limit int) ([]models.TapWaterLocation, error) {
	var locations []models.TapWaterLocation
	if err := r.db.WithContext(ctx).
		Order("random()").
		Limit(limit).
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// IncrementItemViews bumps the bottled water view counter in a single UPDATE.
func (r *Repository) IncrementItemViews(ctx context.Context, id uuid.UUID, amount int) error {
	return r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", amount)).Error
}

// IncrementFilterViews bumps the water filter view counter in a single UPDATE.
func (r *Repository) IncrementFilterViews(ctx context.Context, id uuid.UUID, amount int) error {
	return r.db.WithContext(ctx).
		Model(&models.WaterFilter{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", amount)).Error
}

// AdjustItemFavoriteCount moves the bottled water favorite counter by delta.
func (r *Repository) AdjustItemFavoriteCount(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ?", id).
		UpdateColumn("favorite_count", gorm.Expr("favorite_count + ?", delta)).Error
}

// AdjustFilterFavoriteCount moves the water filter favorite counter by delta.
func (r *Repository) AdjustFilterFavoriteCount(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).
		Model(&models.WaterFilter{}).
		Where("id = ?", id).
		UpdateColumn("favorite_count", gorm.Expr("favorite_count + ?", delta)).Error
}
