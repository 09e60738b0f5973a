package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	svix "github.com/svix/svix-webhooks/go"

	"github.com/flintlabs/flint-backend/internal/dto"
	"github.com/flintlabs/flint-backend/internal/services"
)

type WebhookHandler struct {
	userService *services.UserService
	verifier    *svix.Webhook
}

func NewWebhookHandler(userService *services.UserService, webhookSecret string) (*WebhookHandler, error) {
	verifier, err := svix.NewWebhook(webhookSecret)
	if err != nil {
		return nil, err
	}
	return &WebhookHandler{
		userService: userService,
		verifier:    verifier,
	}, nil
}

// HandleClerk receives Clerk user lifecycle events. Clerk signs its
// webhooks with svix; anything failing verification is rejected before
// the payload is even parsed. Clerk retries non-2xx deliveries, so the
// provisioning operations behind this handler are all idempotent.
func (h *WebhookHandler) HandleClerk(c *fiber.Ctx) error {
	payload := c.Body()

	if err := h.verifier.Verify(payload, http.Header(c.GetReqHeaders())); err != nil {
		slog.Warn("webhook signature verification failed", "error", err)
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid webhook signature",
		})
	}

	var event dto.ClerkWebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid webhook payload",
		})
	}

	switch event.Type {
	case "user.created":
		if err := h.handleUserCreated(&event.Data); err != nil {
			return h.fail(c, &event, err)
		}
	case "user.updated":
		if err := h.userService.UpdateUserByClerkID(event.Data.ID, buildUserPatch(&event.Data)); err != nil {
			return h.fail(c, &event, err)
		}
	case "user.deleted":
		if err := h.userService.DeleteUserByClerkID(event.Data.ID); err != nil {
			return h.fail(c, &event, err)
		}
	default:
		slog.Info("unhandled webhook event type", "event_type", event.Type)
		return c.JSON(fiber.Map{"received": true})
	}

	slog.Info("webhook processed", "event_type", event.Type, "clerk_id", event.Data.ID)
	return c.JSON(fiber.Map{"received": true})
}

func (h *WebhookHandler) handleUserCreated(data *dto.ClerkUserData) error {
	email := data.PrimaryEmail()
	if email == "" {
		slog.Error("user.created event without email", "clerk_id", data.ID)
		return fiber.NewError(fiber.StatusBadRequest, "No email address on user")
	}

	input := services.CreateUserInput{
		ClerkID:   data.ID,
		Email:     email,
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		AvatarURL: data.ImageURL,
	}
	if full := data.FullName(); full != "" {
		input.FullName = &full
	}

	userID, err := h.userService.CreateUser(input)
	if err != nil {
		return err
	}
	return h.userService.InitUserData(userID)
}

// buildUserPatch mirrors the dispatcher's coalescing: names absent from
// the event stay absent from the patch so they never clear stored data.
func buildUserPatch(data *dto.ClerkUserData) *dto.UserUpdatePatch {
	patch := &dto.UserUpdatePatch{
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		AvatarURL: data.ImageURL,
	}
	if email := data.PrimaryEmail(); email != "" {
		patch.Email = &email
	}
	if full := data.FullName(); full != "" {
		patch.FullName = &full
	}
	return patch
}

func (h *WebhookHandler) fail(c *fiber.Ctx, event *dto.ClerkWebhookEvent, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: true, Message: fe.Message})
	}
	slog.Error("webhook processing failed",
		"event_type", event.Type, "clerk_id", event.Data.ID, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Failed to process webhook event",
	})
}
