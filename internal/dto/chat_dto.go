package dto

import "github.com/terrabuddy/terrabuddy-backend/internal/models"

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type MessageResponse struct {
	Message *models.Message `json:"message"`
	Success bool            `json:"success"`
}

type MessageListResponse struct {
	Messages []models.Message `json:"messages"`
}
