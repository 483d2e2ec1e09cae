package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clearwell/clearwell-backend/internal/ingredients"
	"github.com/clearwell/clearwell-backend/pkg/config"
	"github.com/clearwell/clearwell-backend/pkg/enums"
	pkgerrors "github.com/clearwell/clearwell-backend/pkg/errors"
	"github.com/clearwell/clearwell-backend/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// impressionCounterTTL bounds the Redis trending counters to a rolling day.
const impressionCounterTTL = 24 * time.Hour

// Service exposes catalog reads, random sampling, and impression tracking.
type Service interface {
	GetProduct(ctx context.Context, productType enums.ProductType, id uuid.UUID) (*ProductDetailDTO, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*LocationDTO, error)
	GetSummary(ctx context.Context, productType enums.ProductType, id uuid.UUID) (*ProductSummary, error)
	RandomProducts(ctx context.Context) ([]ProductSummary, error)
	RandomLocations(ctx context.Context) ([]ProductSummary, error)
	RecordImpression(ctx context.Context, productType enums.ProductType, id uuid.UUID) error
}

type counterStore interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	CounterKey(name string) string
}

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Repo        *Repository
	Ingredients ingredients.Service
	Counters    counterStore
	Logger      *logger.Logger
	Config      config.CatalogConfig
}

type service struct {
	repo        *Repository
	ingredients ingredients.Service
	counters    counterStore
	logg        *logger.Logger
	cfg         config.CatalogConfig
}

// NewService builds a catalog service with the required dependencies.
// Counters is optional; impressions still persist without Redis.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	if params.Ingredients == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ingredients service is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{
		repo:        params.Repo,
		ingredients: params.Ingredients,
		counters:    params.Counters,
		logg:        params.Logger,
		cfg:         params.Config,
	}, nil
}

// GetProduct loads a product detail with normalized contaminants. Tap water
// locations have their own read path; asking for one here is a validation error.
func (s *service) GetProduct(ctx context.Context, productType enums.ProductType, id uuid.UUID) (*ProductDetailDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	switch {
	case productType.IsWater():
		item, err := s.repo.FindItemByID(ctx, id)
		if err != nil {
			return nil, notFoundOrDependency(err, "bottled water")
		}
		contaminants, err := s.ingredients.NormalizeMeasurements(ctx, item.Measurements)
		if err != nil {
			return nil, err
		}
		return &ProductDetailDTO{
			ID:           item.ID,
			Type:         item.Type,
			Name:         item.Name,
			Score:        item.Score,
			Image:        item.Image,
			Description:  item.Description,
			Brand:        brandDTO(item.Brand),
			Contaminants: contaminants,
			ViewCount:    item.ViewCount,
			CreatedAt:    item.CreatedAt,
			UpdatedAt:    item.UpdatedAt,
		}, nil

	case productType.IsFilter():
		filter, err := s.repo.FindFilterByID(ctx, id)
		if err != nil {
			return nil, notFoundOrDependency(err, "water filter")
		}
		contaminants, err := s.ingredients.NormalizeMeasurements(ctx, filter.Measurements)
		if err != nil {
			return nil, err
		}
		return &ProductDetailDTO{
			ID:           filter.ID,
			Type:         filter.Type,
			Name:         filter.Name,
			Score:        filter.Score,
			Image:        filter.Image,
			Description:  filter.Description,
			Brand:        brandDTO(filter.Brand),
			Contaminants: contaminants,
			ViewCount:    filter.ViewCount,
			CreatedAt:    filter.CreatedAt,
			UpdatedAt:    filter.UpdatedAt,
		}, nil

	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unsupported product type %q", productType))
	}
}

// GetLocation loads a tap water location with normalized contaminants.
func (s *service) GetLocation(ctx context.Context, id uuid.UUID) (*LocationDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "location id is required")
	}
	location, err := s.repo.FindLocationByID(ctx, id)
	if err != nil {
		return nil, notFoundOrDependency(err, "tap water location")
	}
	contaminants, err := s.ingredients.NormalizeMeasurements(ctx, location.Measurements)
	if err != nil {
		return nil, err
	}
	return &LocationDTO{
		ID:           location.ID,
		Name:         location.Name,
		UtilityName:  location.UtilityName,
		City:         location.City,
		State:        location.State,
		Score:        location.Score,
		Image:        location.Image,
		Contaminants: contaminants,
	}, nil
}

// GetSummary loads the lightweight product shape for the given type. The enum
// decides the backing table; tap water resolves against locations.
func (s *service) GetSummary(ctx context.Context, productType enums.ProductType, id uuid.UUID) (*ProductSummary, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	switch {
	case productType.IsWater():
		item, err := s.repo.FindItemByID(ctx, id)
		if err != nil {
			return nil, notFoundOrDependency(err, "bottled water")
		}
		summary := itemSummary(item)
		return &summary, nil

	case productType.IsFilter():
		filter, err := s.repo.FindFilterByID(ctx, id)
		if err != nil {
			return nil, notFoundOrDependency(err, "water filter")
		}
		summary := filterSummary(filter)
		return &summary, nil

	case productType == enums.ProductTypeTapWater:
		location, err := s.repo.FindLocationByID(ctx, id)
		if err != nil {
			return nil, notFoundOrDependency(err, "tap water location")
		}
		summary := locationSummary(location)
		return &summary, nil

	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unsupported product type %q", productType))
	}
}

// RandomProducts samples across both product tables for discovery feeds.
func (s *service) RandomProducts(ctx context.Context) ([]ProductSummary, error) {
	limit := s.cfg.RandomItemSampleSize
	if limit <= 0 {
		limit = config.DefaultRandomItemSampleSize
	}

	items, err := s.repo.RandomItems(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sample bottled water")
	}
	filters, err := s.repo.RandomFilters(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sample water filters")
	}

	summaries := make([]ProductSummary, 0, len(items)+len(filters))
	for i := range items {
		summaries = append(summaries, itemSummary(&items[i]))
	}
	for i := range filters {
		summaries = append(summaries, filterSummary(&filters[i]))
	}
	return summaries, nil
}

// RandomLocations samples tap water locations for the location picker.
func (s *service) RandomLocations(ctx context.Context) ([]ProductSummary, error) {
	limit := s.cfg.RandomLocationSampleSize
	if limit <= 0 {
		limit = config.DefaultRandomLocationSampleSize
	}

	locations, err := s.repo.RandomLocations(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sample tap water locations")
	}
	summaries := make([]ProductSummary, 0, len(locations))
	for i := range locations {
		summaries = append(summaries, locationSummary(&locations[i]))
	}
	return summaries, nil
}

// RecordImpression bumps the product view counter. The database is the source
// of truth; the Redis counter only feeds cheap trending reads and its failure
// is logged, not surfaced.
func (s *service) RecordImpression(ctx context.Context, productType enums.ProductType, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	var err error
	switch {
	case productType.IsWater():
		err = s.repo.IncrementItemViews(ctx, id, 1)
	case productType.IsFilter():
		err = s.repo.IncrementFilterViews(ctx, id, 1)
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("impressions are not tracked for product type %q", productType))
	}
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "increment view count")
	}

	if s.counters != nil {
		key := s.counters.CounterKey(fmt.Sprintf("impressions:%s:%s", productType, id))
		if _, cacheErr := s.counters.IncrWithTTL(ctx, key, impressionCounterTTL); cacheErr != nil {
			s.logg.Warn(ctx, fmt.Sprintf("impression counter cache update failed: %v", cacheErr))
		}
	}
	return nil
}

func notFoundOrDependency(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, entity+" not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load "+entity)
}
