package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flintlabs/flint-backend/internal/services"
)

type LeaderboardHandler struct {
	userService        *services.UserService
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(userService *services.UserService, leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		userService:        userService,
		leaderboardService: leaderboardService,
	}
}

func (h *LeaderboardHandler) Global(c *fiber.Ctx) error {
	entries, err := h.leaderboardService.Global(c.QueryInt("limit"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(entries)
}

func (h *LeaderboardHandler) MyStats(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	stats, err := h.leaderboardService.MyStats(user.ID)
	if err != nil {
		return notFoundOrInternal(c, err)
	}
	return c.JSON(stats)
}

func (h *LeaderboardHandler) Rank(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	rank, err := h.leaderboardService.Rank(user.ID)
	if err != nil {
		return notFoundOrInternal(c, err)
	}
	return c.JSON(rank)
}

func (h *LeaderboardHandler) Achievements(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userService)
	if err != nil {
		return notFoundOrInternal(c, err)
	}

	achievements, err := h.leaderboardService.Achievements(user.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(achievements)
}
