package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terrabuddy/terrabuddy-backend/internal/config"
	"github.com/terrabuddy/terrabuddy-backend/internal/dto"
	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
)

type ConfigHandler struct {
	cfg *config.Config
}

func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// Get serves GET /api/config for client bootstrap.
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.ClientConfigResponse{
		MatchThreshold:     h.cfg.MatchThreshold,
		CompatibilityCount: len(quiz.CompatibilityQuestions),
		CertificationCount: quiz.CertificationQuestionCount,
	})
}
