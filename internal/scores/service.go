package scores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clearwell/clearwell-backend/internal/favorites"
	"github.com/clearwell/clearwell-backend/pkg/db/models"
	pkgerrors "github.com/clearwell/clearwell-backend/pkg/errors"
	"github.com/clearwell/clearwell-backend/pkg/logger"
	"github.com/clearwell/clearwell-backend/pkg/metrics"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type favoritesResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) ([]favorites.ResolvedFavorite, error)
}

type userLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type locationLoader interface {
	FindLocationByID(ctx context.Context, id uuid.UUID) (*models.TapWaterLocation, error)
}

// Service computes per-user score summaries. Summaries are stateless and
// recomputed on every read.
type Service interface {
	GetUserSummary(ctx context.Context, userID uuid.UUID) (Summary, error)
}

// ServiceParams groups dependencies for the scores service.
type ServiceParams struct {
	Favorites favoritesResolver
	Users     userLoader
	Locations locationLoader
	Metrics   *metrics.ScoreMetrics
	Logger    *logger.Logger
}

type service struct {
	favorites favoritesResolver
	users     userLoader
	locations locationLoader
	metrics   *metrics.ScoreMetrics
	logg      *logger.Logger
}

// NewService builds a scores service with the required dependencies.
// Metrics is optional.
func NewService(params ServiceParams) (Service, error) {
	if params.Favorites == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "favorites resolver is required")
	}
	if params.Users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user loader is required")
	}
	if params.Locations == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "location loader is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{
		favorites: params.Favorites,
		users:     params.Users,
		locations: params.Locations,
		metrics:   params.Metrics,
		logg:      params.Logger,
	}, nil
}

// GetUserSummary resolves the user's favorites and folds them into the score
// breakdown. Favorites that failed to resolve are dropped from the
// computation rather than failing the request.
func (s *service) GetUserSummary(ctx context.Context, userID uuid.UUID) (Summary, error) {
	if userID == uuid.Nil {
		return Summary{}, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	start := time.Now()

	resolved, err := s.favorites.Resolve(ctx, userID)
	if err != nil {
		// favorites that failed to resolve are scored as absent
		s.metrics.IncFailure("resolve")
		s.logg.Warn(ctx, fmt.Sprintf("score computation dropped favorites: %v", err))
	}

	tapScore, err := s.tapFallbackScore(ctx, userID)
	if err != nil {
		s.metrics.IncFailure("tap_fallback")
		return Summary{}, err
	}

	summary := Aggregate(resolved, tapScore)

	s.metrics.ObserveDuration("aggregate", time.Since(start))
	s.metrics.IncSuccess("aggregate")
	return summary, nil
}

// tapFallbackScore returns the score of the user's assigned tap location, or
// nil when the user has no assignment or the location has no score. A stale
// location reference degrades to no fallback instead of failing.
func (s *service) tapFallbackScore(ctx context.Context, userID uuid.UUID) (*int, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	if user.TapLocationID == nil {
		return nil, nil
	}

	location, err := s.locations.FindLocationByID(ctx, *user.TapLocationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logg.Warn(ctx, fmt.Sprintf("user %s references missing tap location %s", userID, *user.TapLocationID))
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load tap location")
	}
	return location.Score, nil
}
