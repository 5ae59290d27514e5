package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ianishdubey/FitZoneBack/internal/config"
	"github.com/ianishdubey/FitZoneBack/internal/handlers"
	"github.com/ianishdubey/FitZoneBack/internal/middleware"
	"github.com/ianishdubey/FitZoneBack/internal/repository"
	"github.com/ianishdubey/FitZoneBack/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	programRepo := repository.NewProgramRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	membershipService := services.NewMembershipService(db)

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	profileHandler := handlers.NewProfileHandler(userRepo)
	programHandler := handlers.NewProgramHandler(programRepo, userRepo)
	contactHandler := handlers.NewContactHandler(inquiryRepo)
	membershipHandler := handlers.NewMembershipHandler(membershipService)

	protected := middleware.AuthRequired(cfg.JWTSecret)

	api := app.Group("/api")
	api.Get("/health", handlers.HealthCheck)

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	user := api.Group("/user", protected)
	user.Get("/profile", profileHandler.GetProfile)
	user.Put("/profile", profileHandler.UpdateProfile)
	user.Get("/programs", programHandler.GetUserPrograms)

	api.Get("/programs", programHandler.ListPrograms)
	api.Post("/programs/:programId/purchase", protected, programHandler.PurchaseProgram)

	api.Post("/contact", contactHandler.SubmitInquiry)
	api.Post("/memberships", protected, membershipHandler.CreateMembership)
}
