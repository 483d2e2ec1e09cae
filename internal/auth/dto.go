package auth

import (
	"github.com/clearwell/clearwell-backend/internal/users"
	"github.com/google/uuid"
)

// RegisterRequest contains the payload required for onboarding a new user.
type RegisterRequest struct {
	FirstName     string     `json:"first_name" validate:"required"`
	LastName      string     `json:"last_name" validate:"required"`
	Email         string     `json:"email" validate:"required,email"`
	Password      string     `json:"password" validate:"required,min=8"`
	TapLocationID *uuid.UUID `json:"tap_location_id,omitempty"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries the expired access token plus its refresh secret.
type RefreshRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LoginResponse contains the token pair and user produced by a successful
// login or refresh.
type LoginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	User         *users.UserDTO `json:"user"`
}
