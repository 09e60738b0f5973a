package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/flintlabs/flint-backend/internal/dto"
	"github.com/flintlabs/flint-backend/internal/services"
)

type SettingsHandler struct {
	userService     *services.UserService
	settingsService *services.SettingsService
}

func NewSettingsHandler(userService *services.UserService, settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		userService:     userService,
		settingsService: settingsService,
	}
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	settings, err := h.settingsService.GetSettings(user.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	settings, err := h.settingsService.UpdateSettings(user.ID, &req)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) GetOnboarding(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	prefs, err := h.settingsService.GetOnboarding(user.ID)
	if err != nil {
		return notFoundOrInternal(c, err)
	}
	return c.JSON(prefs)
}

func (h *SettingsHandler) CompleteOnboarding(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	var req dto.CompleteOnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	prefs, err := h.settingsService.CompleteOnboarding(user.ID, &req)
	if err != nil {
		return notFoundOrInternal(c, err)
	}
	return c.JSON(prefs)
}

func notFoundOrInternal(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Not found",
		})
	}
	return fiber.ErrInternalServerError
}
