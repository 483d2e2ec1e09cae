package ingredients

import (
	"context"

	"github.com/clearwell/clearwell-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes read access to the ingredient reference table.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an ingredients repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads a single reference row.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// MapByIDs loads the reference rows for the given ids keyed by id.
// Unknown ids are silently absent from the map.
func (r *Repository) MapByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Ingredient, error) {
	result := make(map[uuid.UUID]models.Ingredient, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []models.Ingredient
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ID] = row
	}
	return result, nil
}
