package ingredients

import (
	"context"
	"errors"

	"github.com/clearwell/clearwell-backend/pkg/db/models"
	pkgerrors "github.com/clearwell/clearwell-backend/pkg/errors"
	"github.com/clearwell/clearwell-backend/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service exposes ingredient reference lookups and measurement normalization.
type Service interface {
	GetIngredient(ctx context.Context, id uuid.UUID) (*IngredientDTO, error)
	NormalizeMeasurements(ctx context.Context, measurements types.Measurements) ([]ContaminantDTO, error)
}

// ServiceParams groups dependencies for the ingredients service.
type ServiceParams struct {
	Repo *Repository
}

type service struct {
	repo *Repository
}

// NewService builds an ingredients service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ingredients repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// GetIngredient returns the reference row for browsing.
func (s *service) GetIngredient(ctx context.Context, id uuid.UUID) (*IngredientDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ingredient id is required")
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "ingredient not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load ingredient")
	}
	dto := fromModel(row)
	return &dto, nil
}

// NormalizeMeasurements fetches the reference rows for the given readings and
// normalizes them in one pass.
func (s *service) NormalizeMeasurements(ctx context.Context, measurements types.Measurements) ([]ContaminantDTO, error) {
	refs, err := s.repo.MapByIDs(ctx, measurementIDs(measurements))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load ingredient references")
	}
	return Normalize(measurements, refs), nil
}

func measurementIDs(measurements types.Measurements) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(measurements))
	seen := make(map[uuid.UUID]struct{}, len(measurements))
	for _, m := range measurements {
		if _, ok := seen[m.IngredientID]; ok {
			continue
		}
		seen[m.IngredientID] = struct{}{}
		ids = append(ids, m.IngredientID)
	}
	return ids
}

func fromModel(row *models.Ingredient) IngredientDTO {
	return IngredientDTO{
		ID:              row.ID,
		Name:            row.Name,
		Description:     row.Description,
		LegalLimit:      row.LegalLimit,
		HealthGuideline: row.HealthGuideline,
		IsContaminant:   row.IsContaminant,
		Risks:           append([]string(nil), row.Risks...),
		Benefits:        append([]string(nil), row.Benefits...),
	}
}
