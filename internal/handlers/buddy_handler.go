package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terrabuddy/terrabuddy-backend/internal/dto"
	"github.com/terrabuddy/terrabuddy-backend/internal/middleware"
	"github.com/terrabuddy/terrabuddy-backend/internal/services"
)

type BuddyHandler struct {
	buddyService *services.BuddyService
	userService  *services.UserService
}

func NewBuddyHandler(buddyService *services.BuddyService, userService *services.UserService) *BuddyHandler {
	return &BuddyHandler{buddyService: buddyService, userService: userService}
}

// List serves GET /api/buddies: one buddy when ?id= is given, otherwise
// all approved buddies ordered by rating.
func (h *BuddyHandler) List(c *fiber.Ctx) error {
	if idParam := c.Query("id"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid buddy ID",
			})
		}

		buddy, err := h.buddyService.GetByID(id)
		if err != nil {
			if errors.Is(err, services.ErrBuddyNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
					Error: true, Message: "Buddy not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
		return c.JSON(fiber.Map{"buddy": buddy})
	}

	buddies, err := h.buddyService.ListApproved()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"buddies": buddies})
}

// Matches serves GET /api/matches: approved buddies scored against the
// current user's quiz answers, best first. ?top=true applies the
// configured display threshold.
func (h *BuddyHandler) Matches(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}

	matches, err := h.buddyService.Matches(user, c.QueryBool("top"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"matches": matches})
}
