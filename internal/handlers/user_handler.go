package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/flintlabs/flint-backend/internal/dto"
	"github.com/flintlabs/flint-backend/internal/middleware"
	"github.com/flintlabs/flint-backend/internal/models"
	"github.com/flintlabs/flint-backend/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// currentUser resolves the authenticated caller's user row from the
// verified token's clerk id.
func currentUser(c *fiber.Ctx, userService *services.UserService) (*models.User, error) {
	clerkID := middleware.ClerkID(c)
	if clerkID == "" {
		return nil, services.ErrUserNotFound
	}
	return userService.GetByClerkID(clerkID)
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return fiber.ErrInternalServerError
	}
	return c.JSON(user)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return fiber.ErrInternalServerError
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.userService.UpdateProfile(user.ID, &req); err != nil {
		return fiber.ErrInternalServerError
	}

	updated, err := h.userService.GetByClerkID(user.ClerkID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(updated)
}

// InitCurrentUser is the client-side fallback for webhook races: the
// mobile app calls it right after signup in case the user.created
// webhook has not landed yet. A missing user row is reported, not an
// error, so the client can retry.
func (h *UserHandler) InitCurrentUser(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.JSON(dto.InitUserResponse{Success: false, Reason: "user_not_found"})
		}
		return fiber.ErrInternalServerError
	}

	if err := h.userService.InitUserData(user.ID); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(dto.InitUserResponse{Success: true, UserID: &user.ID})
}
