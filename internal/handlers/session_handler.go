package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/flintlabs/flint-backend/internal/dto"
	"github.com/flintlabs/flint-backend/internal/models"
	"github.com/flintlabs/flint-backend/internal/services"
)

type SessionHandler struct {
	userService    *services.UserService
	sessionService *services.SessionService
}

func NewSessionHandler(userService *services.UserService, sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{
		userService:    userService,
		sessionService: sessionService,
	}
}

func (h *SessionHandler) List(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	sessions, err := h.sessionService.List(user.ID, c.QueryInt("limit"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(sessions)
}

func (h *SessionHandler) GetActive(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	session, err := h.sessionService.GetActive(user.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if session == nil {
		return c.JSON(nil)
	}
	return c.JSON(session)
}

func (h *SessionHandler) Start(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return badRequest(c, "Invalid request body")
	}

	session, err := h.sessionService.Start(user.ID, req.SessionType)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *SessionHandler) End(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid session id")
	}

	session, bonusAwarded, err := h.sessionService.End(user.ID, sessionID)
	if err != nil {
		return sessionError(c, err)
	}

	resp := dto.SessionEndResponse{Session: *session, BonusAwarded: bonusAwarded}
	if bonusAwarded {
		resp.FlintAwarded = services.FirstSessionBonus
	}
	return c.JSON(resp)
}

func (h *SessionHandler) Pause(c *fiber.Ctx) error {
	return h.transition(c, h.sessionService.Pause)
}

func (h *SessionHandler) Resume(c *fiber.Ctx) error {
	return h.transition(c, h.sessionService.Resume)
}

func (h *SessionHandler) Cancel(c *fiber.Ctx) error {
	return h.transition(c, h.sessionService.Cancel)
}

func (h *SessionHandler) transition(c *fiber.Ctx, op func(uuid.UUID, uuid.UUID) (*models.FocusSession, error)) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid session id")
	}

	session, err := op(user.ID, sessionID)
	if err != nil {
		return sessionError(c, err)
	}
	return c.JSON(session)
}

func sessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrSessionFinished):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return fiber.ErrInternalServerError
	}
}
