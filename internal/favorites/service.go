package favorites

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/clearwell/clearwell-backend/internal/catalog"
	"github.com/clearwell/clearwell-backend/pkg/db/models"
	"github.com/clearwell/clearwell-backend/pkg/enums"
	pkgerrors "github.com/clearwell/clearwell-backend/pkg/errors"
	"github.com/clearwell/clearwell-backend/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

type productCatalog interface {
	GetSummary(ctx context.Context, productType enums.ProductType, id uuid.UUID) (*catalog.ProductSummary, error)
}

type favoriteCounter interface {
	AdjustItemFavoriteCount(ctx context.Context, id uuid.UUID, delta int) error
	AdjustFilterFavoriteCount(ctx context.Context, id uuid.UUID, delta int) error
}

// Service exposes business rules for favorites management and resolution.
type Service interface {
	GetFavorites(ctx context.Context, userID uuid.UUID) ([]ResolvedFavorite, error)
	GetFavoriteIDs(ctx context.Context, userID uuid.UUID, cursor string, limit int) (FavoriteIDsDTO, error)
	AddFavorite(ctx context.Context, userID uuid.UUID, productType enums.ProductType, itemID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, itemID uuid.UUID) error
	Resolve(ctx context.Context, userID uuid.UUID) ([]ResolvedFavorite, error)
}

// ServiceParams groups dependencies for the favorites service.
type ServiceParams struct {
	Repo     *Repository
	Catalog  productCatalog
	Counters favoriteCounter
	Logger   *logger.Logger
}

type service struct {
	repo     *Repository
	catalog  productCatalog
	counters favoriteCounter
	logg     *logger.Logger
}

// NewService builds a favorites service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "favorites repo is required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog is required")
	}
	if params.Counters == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "favorite counter is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{
		repo:     params.Repo,
		catalog:  params.Catalog,
		counters: params.Counters,
		logg:     params.Logger,
	}, nil
}

// GetFavorites returns the user's favorites enriched to full product
// summaries. Individual resolution failures are logged and dropped.
func (s *service) GetFavorites(ctx context.Context, userID uuid.UUID) ([]ResolvedFavorite, error) {
	resolved, err := s.Resolve(ctx, userID)
	if err != nil {
		s.logg.Warn(ctx, fmt.Sprintf("favorites resolution dropped entries: %v", err))
	}
	return resolved, nil
}

// GetFavoriteIDs returns the saved item IDs for the user.
func (s *service) GetFavoriteIDs(ctx context.Context, userID uuid.UUID, cursor string, limit int) (FavoriteIDsDTO, error) {
	if userID == uuid.Nil {
		return FavoriteIDsDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	ids, err := s.repo.ListItemIDs(ctx, userID, cursor, limit)
	if err != nil {
		return FavoriteIDsDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list favorite ids")
	}
	return ids, nil
}

// AddFavorite verifies the product exists for the claimed type and links it.
// The product favorite counter only moves when a new row was written.
func (s *service) AddFavorite(ctx context.Context, userID uuid.UUID, productType enums.ProductType, itemID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if itemID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	}
	if !productType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid product type %q", productType))
	}

	if _, err := s.catalog.GetSummary(ctx, productType, itemID); err != nil {
		return err
	}

	inserted, err := s.repo.AddItem(ctx, userID, productType, itemID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save favorite")
	}
	if inserted {
		s.adjustCounter(ctx, productType, itemID, 1)
	}
	return nil
}

// RemoveFavorite drops the link regardless of prior state.
func (s *service) RemoveFavorite(ctx context.Context, userID, itemID uuid.UUID) error {
	if userID == uuid.Nil || itemID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id and item id are required")
	}

	existing, err := s.repo.FindByUserAndItem(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load favorite")
	}

	if err := s.repo.RemoveItem(ctx, userID, itemID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove favorite")
	}
	s.adjustCounter(ctx, existing.ProductType, itemID, -1)
	return nil
}

// Resolve loads the user's favorite links and fans out one product lookup per
// link. Lookups run concurrently and land in their own result slot, so no
// ordering is guaranteed downstream. A failed or incomplete lookup drops that
// favorite; the combined error is returned alongside the survivors for
// callers that want it.
func (s *service) Resolve(ctx context.Context, userID uuid.UUID) ([]ResolvedFavorite, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	links, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list favorites")
	}
	links = dedupe(links)
	if len(links) == 0 {
		return []ResolvedFavorite{}, nil
	}

	slots := make([]*ResolvedFavorite, len(links))
	errs := make([]error, len(links))

	var wg sync.WaitGroup
	for i, link := range links {
		wg.Add(1)
		go func(i int, link models.Favorite) {
			defer wg.Done()
			summary, err := s.catalog.GetSummary(ctx, link.ProductType, link.ItemID)
			if err != nil {
				errs[i] = fmt.Errorf("favorite %s (%s %s): %w", link.ID, link.ProductType, link.ItemID, err)
				return
			}
			if summary.ID == uuid.Nil || summary.Image == nil {
				errs[i] = fmt.Errorf("favorite %s (%s %s): product record incomplete", link.ID, link.ProductType, link.ItemID)
				return
			}
			slots[i] = &ResolvedFavorite{
				FavoriteID:  link.ID,
				ProductType: link.ProductType,
				Product:     *summary,
				CreatedAt:   link.CreatedAt,
			}
		}(i, link)
	}
	wg.Wait()

	resolved := make([]ResolvedFavorite, 0, len(links))
	for _, slot := range slots {
		if slot != nil {
			resolved = append(resolved, *slot)
		}
	}
	return resolved, multierr.Combine(errs...)
}

// dedupe keeps the first occurrence per item. The unique index should make
// this a no-op, but the resolver does not trust the table.
func dedupe(links []models.Favorite) []models.Favorite {
	seen := make(map[uuid.UUID]struct{}, len(links))
	result := links[:0:0]
	for _, link := range links {
		if _, ok := seen[link.ItemID]; ok {
			continue
		}
		seen[link.ItemID] = struct{}{}
		result = append(result, link)
	}
	return result
}

func (s *service) adjustCounter(ctx context.Context, productType enums.ProductType, itemID uuid.UUID, delta int) {
	var err error
	switch {
	case productType.IsWater():
		err = s.counters.AdjustItemFavoriteCount(ctx, itemID, delta)
	case productType.IsFilter():
		err = s.counters.AdjustFilterFavoriteCount(ctx, itemID, delta)
	default:
		// tap water locations do not carry favorite counters
		return
	}
	if err != nil {
		s.logg.Warn(ctx, fmt.Sprintf("favorite counter adjustment failed for %s %s: %v", productType, itemID, err))
	}
}
