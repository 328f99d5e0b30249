package dto

import "github.com/terrabuddy/terrabuddy-backend/internal/models"

// AuthRequest is the action-dispatched body of POST /api/auth, matching
// the mobile client's wire format.
type AuthRequest struct {
	Action   string `json:"action" validate:"required,oneof=signup login"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required,min=8"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	Success      bool         `json:"success"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}
