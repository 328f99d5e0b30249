package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/terrabuddy/terrabuddy-backend/internal/config"
	"github.com/terrabuddy/terrabuddy-backend/internal/handlers"
	"github.com/terrabuddy/terrabuddy-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	configHandler *handlers.ConfigHandler,
	quizHandler *handlers.QuizHandler,
	examHandler *handlers.ExamHandler,
	buddyHandler *handlers.BuddyHandler,
	applicationHandler *handlers.ApplicationHandler,
	sessionHandler *handlers.SessionHandler,
	messageHandler *handlers.MessageHandler,
	moderationHandler *handlers.ModerationHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health and client bootstrap (public)
	api.Get("/health", healthHandler.Check)
	api.Get("/config", configHandler.Get)

	// Question banks (public, certification answers withheld)
	api.Get("/quiz/questions", quizHandler.Questions)
	api.Get("/certification/questions", examHandler.Questions)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/", authHandler.Authenticate)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes (JWT required) - apply middleware to individual routes
	// This prevents JWT middleware from affecting public routes
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Compatibility quiz answers for the current user
	api.Put("/users/quiz", middleware.JWTProtected(cfg), quizHandler.SaveAnswers)

	// Certification exam state machine
	api.Post("/certification/start", middleware.JWTProtected(cfg), examHandler.Start)
	api.Post("/certification/answer", middleware.JWTProtected(cfg), examHandler.Answer)
	api.Get("/certification/progress", middleware.JWTProtected(cfg), examHandler.Progress)

	// Buddy catalog and matching
	api.Get("/buddies", buddyHandler.List)
	api.Get("/matches", middleware.JWTProtected(cfg), buddyHandler.Matches)

	// Buddy applications — submission is open to authenticated users,
	// listing and review are admin only
	api.Post("/applications", middleware.JWTProtected(cfg), applicationHandler.Create)
	api.Get("/applications", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg), applicationHandler.ListPending)
	api.Patch("/applications", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg), applicationHandler.Review)

	// Sessions and chat (protected)
	api.Post("/sessions", middleware.JWTProtected(cfg), sessionHandler.Book)
	api.Get("/sessions", middleware.JWTProtected(cfg), sessionHandler.List)
	api.Patch("/sessions/:id", middleware.JWTProtected(cfg), sessionHandler.UpdateStatus)
	api.Get("/sessions/:id/messages", middleware.JWTProtected(cfg), messageHandler.List)
	api.Post("/sessions/:id/messages", middleware.JWTProtected(cfg), messageHandler.Send)

	// Moderation — user endpoints (protected)
	api.Post("/reports", middleware.JWTProtected(cfg), moderationHandler.CreateReport)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/moderation/reports", moderationHandler.ListReports)
	admin.Put("/moderation/reports/:id", moderationHandler.ActionReport)
}
