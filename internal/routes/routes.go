package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/flintlabs/flint-backend/internal/config"
	"github.com/flintlabs/flint-backend/internal/handlers"
	"github.com/flintlabs/flint-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	webhookHandler *handlers.WebhookHandler,
	userHandler *handlers.UserHandler,
	settingsHandler *handlers.SettingsHandler,
	taskHandler *handlers.TaskHandler,
	sessionHandler *handlers.SessionHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Clerk webhooks — svix signature auth, no JWT
	api.Post("/webhooks/clerk", webhookHandler.HandleClerk)

	// Everything below requires a verified Clerk session token
	protected := api.Group("", middleware.ClerkProtected(cfg))

	users := protected.Group("/users")
	users.Get("/me", userHandler.Me)
	users.Patch("/me", userHandler.UpdateProfile)
	users.Post("/me/init", userHandler.InitCurrentUser)

	protected.Get("/settings", settingsHandler.GetSettings)
	protected.Patch("/settings", settingsHandler.UpdateSettings)
	protected.Get("/onboarding", settingsHandler.GetOnboarding)
	protected.Post("/onboarding/complete", settingsHandler.CompleteOnboarding)

	tasks := protected.Group("/tasks")
	tasks.Get("/", taskHandler.ListTasks)
	tasks.Post("/", taskHandler.CreateTask)
	tasks.Get("/:id", taskHandler.GetTask)
	tasks.Patch("/:id", taskHandler.UpdateTask)
	tasks.Delete("/:id", taskHandler.DeleteTask)
	tasks.Get("/:id/subtasks", taskHandler.ListSubtasks)
	tasks.Post("/:id/subtasks", taskHandler.CreateSubtask)

	subtasks := protected.Group("/subtasks")
	subtasks.Patch("/:id", taskHandler.UpdateSubtask)
	subtasks.Delete("/:id", taskHandler.DeleteSubtask)
	subtasks.Post("/:id/toggle", taskHandler.ToggleSubtask)

	sessions := protected.Group("/sessions")
	sessions.Get("/", sessionHandler.List)
	sessions.Get("/active", sessionHandler.GetActive)
	sessions.Post("/", sessionHandler.Start)
	sessions.Post("/:id/end", sessionHandler.End)
	sessions.Post("/:id/pause", sessionHandler.Pause)
	sessions.Post("/:id/resume", sessionHandler.Resume)
	sessions.Post("/:id/cancel", sessionHandler.Cancel)

	protected.Get("/leaderboard", leaderboardHandler.Global)
	protected.Get("/leaderboard/me", leaderboardHandler.MyStats)
	protected.Get("/leaderboard/rank", leaderboardHandler.Rank)
	protected.Get("/achievements", leaderboardHandler.Achievements)
}
