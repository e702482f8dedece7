package server

import (
	"log"

	"term-catalog-be/internal/bootstrap"
	"term-catalog-be/internal/config"
	"term-catalog-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB; full bill texts are large
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Routes
	registerRoutes(app, container)

	// Editorial SPA: serve the frontend build with an index.html
	// fallback so client-side routes resolve.
	app.Static("/", cfg.App.StaticDir)
	app.Get("/*", func(ctx *fiber.Ctx) error {
		return ctx.SendFile(cfg.App.StaticDir + "/index.html")
	})

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	// Static /terms segments must register before the /terms/:id
	// wildcard, so the term controller goes last in its group.
	c.KeywordController.RegisterRoutes(api)
	c.SyncController.RegisterRoutes(api)
	c.GenerationController.RegisterRoutes(api)
	c.TermController.RegisterRoutes(api)

	c.AuditController.RegisterRoutes(api)
	c.LegislationController.RegisterRoutes(api)
}
