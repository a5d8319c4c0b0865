package routes

import (
	"time"

	"github.com/driversales/driversales-backend/internal/config"
	"github.com/driversales/driversales-backend/internal/handlers"
	"github.com/driversales/driversales-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	saleHandler *handlers.SaleHandler,
	reportHandler *handlers.ReportHandler,
	driverHandler *handlers.DriverHandler,
	settingsHandler *handlers.SettingsHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Any authenticated role: dashboard, sales entry, reports
	protected := api.Group("", middleware.JWTProtected(cfg))
	protected.Get("/dashboard", reportHandler.Dashboard)
	protected.Get("/reports", reportHandler.Report)
	protected.Get("/sales", saleHandler.List)
	protected.Post("/sales", saleHandler.Create)
	protected.Get("/sales/:id", saleHandler.Get)
	protected.Put("/sales/:id", saleHandler.Update)
	protected.Delete("/sales/:id", saleHandler.Delete)

	// Admin only: driver roster, company profile, settings
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/drivers", driverHandler.List)
	admin.Post("/drivers", driverHandler.Create)
	admin.Get("/drivers/:id", driverHandler.Profile)
	admin.Put("/drivers/:id", driverHandler.Update)
	admin.Delete("/drivers/:id", driverHandler.Delete)

	admin.Get("/settings", settingsHandler.Get)
	admin.Put("/settings", settingsHandler.Update)
	admin.Get("/company", settingsHandler.GetCompany)
	admin.Put("/company", settingsHandler.UpdateCompany)
}
