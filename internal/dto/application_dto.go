package dto

import (
	"github.com/google/uuid"
	"github.com/terrabuddy/terrabuddy-backend/internal/models"
	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
)

// CreateApplicationRequest mirrors the client payload for POST
// /api/applications. Field names follow the mobile wire format.
type CreateApplicationRequest struct {
	UserID      uuid.UUID     `json:"userId" validate:"required"`
	Name        string        `json:"name" validate:"required"`
	Email       string        `json:"email" validate:"required,email"`
	Bio         string        `json:"bio"`
	QuizScore   int           `json:"quizScore"`
	QuizAnswers []quiz.Answer `json:"quizAnswers"`
}

// ReviewApplicationRequest is the body of PATCH /api/applications.
type ReviewApplicationRequest struct {
	ID     uuid.UUID `json:"id" validate:"required"`
	Action string    `json:"action" validate:"required"`
}

type ApplicationResponse struct {
	Application *models.BuddyApplication `json:"application"`
	Success     bool                     `json:"success"`
}

type ApplicationListResponse struct {
	Applications []models.BuddyApplication `json:"applications"`
}
