package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terrabuddy/terrabuddy-backend/internal/dto"
	"github.com/terrabuddy/terrabuddy-backend/internal/middleware"
	"github.com/terrabuddy/terrabuddy-backend/internal/services"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// ListPending serves GET /api/applications for the admin review queue.
func (h *ApplicationHandler) ListPending(c *fiber.Ctx) error {
	applications, err := h.applicationService.ListPending()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(dto.ApplicationListResponse{Applications: applications})
}

// Create serves POST /api/applications. A submission without a perfect
// certification score, or without a passed server-side exam run, is
// rejected and never stored.
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Name, email and userId are required",
		})
	}
	if req.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Applications can only be submitted for your own account",
		})
	}

	application, err := h.applicationService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuizScore):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrExamNotPassed):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
	}
	return c.JSON(dto.ApplicationResponse{Application: application, Success: true})
}

// Review serves PATCH /api/applications with {id, action}.
func (h *ApplicationHandler) Review(c *fiber.Ctx) error {
	var req dto.ReviewApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := dto.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "id and action are required",
		})
	}

	application, err := h.applicationService.Review(req.ID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownReviewAction):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid action",
			})
		case errors.Is(err, services.ErrApplicationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Application not found",
			})
		case errors.Is(err, services.ErrApplicationReviewed):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
	}
	return c.JSON(dto.ApplicationResponse{Application: application, Success: true})
}
