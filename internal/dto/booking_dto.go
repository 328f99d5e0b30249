package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/terrabuddy/terrabuddy-backend/internal/models"
)

type CreateSessionRequest struct {
	BuddyID     uuid.UUID `json:"buddy_id" validate:"required"`
	Type        string    `json:"type" validate:"required,oneof=video in-person"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Duration    int       `json:"duration" validate:"required,gt=0"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
}

type UpdateSessionRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
}

type SessionResponse struct {
	Session *models.Session `json:"session"`
	Success bool            `json:"success"`
}

type SessionListResponse struct {
	Sessions []models.Session `json:"sessions"`
}
