package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terrabuddy/terrabuddy-backend/internal/certification"
	"github.com/terrabuddy/terrabuddy-backend/internal/dto"
	"github.com/terrabuddy/terrabuddy-backend/internal/middleware"
	"github.com/terrabuddy/terrabuddy-backend/internal/quiz"
	"github.com/terrabuddy/terrabuddy-backend/internal/services"
)

type ExamHandler struct {
	examService *services.ExamService
}

func NewExamHandler(examService *services.ExamService) *ExamHandler {
	return &ExamHandler{examService: examService}
}

// Questions serves the certification bank with correct answers withheld.
func (h *ExamHandler) Questions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"questions": quiz.CertificationPublicViews()})
}

// Start begins (or restarts) the caller's certification exam.
func (h *ExamHandler) Start(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	return c.JSON(h.examService.Start(userID))
}

// Answer submits one option letter for the caller's current question.
func (h *ExamHandler) Answer(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ExamAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Answer must be A, B or C",
		})
	}

	progress, err := h.examService.Answer(userID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExamNotStarted):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Start the exam first",
			})
		case errors.Is(err, certification.ErrExamPassed),
			errors.Is(err, certification.ErrExamResetting):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
	}
	return c.JSON(progress)
}

// Progress reports the caller's current exam state.
func (h *ExamHandler) Progress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	progress, err := h.examService.Progress(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Start the exam first",
		})
	}
	return c.JSON(progress)
}
