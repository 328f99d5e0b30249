package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terrabuddy/terrabuddy-backend/internal/dto"
	"github.com/terrabuddy/terrabuddy-backend/internal/middleware"
	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
	"github.com/terrabuddy/terrabuddy-backend/internal/services"
)

type QuizHandler struct {
	userService *services.UserService
}

func NewQuizHandler(userService *services.UserService) *QuizHandler {
	return &QuizHandler{userService: userService}
}

// Questions serves the compatibility question bank.
func (h *QuizHandler) Questions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"questions": quiz.CompatibilityQuestions})
}

// SaveAnswers serves PUT /api/users/quiz: the current user's compatibility
// answers, replace-by-question semantics.
func (h *QuizHandler) SaveAnswers(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SaveQuizAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "At least one answer is required",
		})
	}

	user, err := h.userService.SaveQuizAnswers(userID, req.Answers)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"user": user, "success": true})
}
