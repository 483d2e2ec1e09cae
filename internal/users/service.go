package users

import (
	"context"
	"errors"

	"github.com/clearwell/clearwell-backend/pkg/db/models"
	pkgerrors "github.com/clearwell/clearwell-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type locationFinder interface {
	FindLocationByID(ctx context.Context, id uuid.UUID) (*models.TapWaterLocation, error)
}

// Service exposes profile reads and the tap location assignment.
type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	SetTapLocation(ctx context.Context, userID uuid.UUID, locationID *uuid.UUID) (*UserDTO, error)
}

// ServiceParams groups dependencies for the users service.
type ServiceParams struct {
	Repo      *Repository
	Locations locationFinder
}

type service struct {
	repo      *Repository
	locations locationFinder
}

// NewService builds a users service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "users repo is required")
	}
	if params.Locations == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "location finder is required")
	}
	return &service{repo: params.Repo, locations: params.Locations}, nil
}

// GetProfile returns the user's profile without credentials.
func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return FromModel(user), nil
}

// SetTapLocation points the user at a municipal water system, or clears the
// assignment when locationID is nil. The location must exist before the user
// row moves.
func (s *service) SetTapLocation(ctx context.Context, userID uuid.UUID, locationID *uuid.UUID) (*UserDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	if locationID != nil {
		if _, err := s.locations.FindLocationByID(ctx, *locationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "tap location not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load tap location")
		}
	}

	if err := s.repo.UpdateTapLocation(ctx, userID, locationID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update tap location")
	}
	return s.GetProfile(ctx, userID)
}
