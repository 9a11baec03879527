package server

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/wichananm65/outfit-finder-backend/internal/apperr"
	"github.com/wichananm65/outfit-finder-backend/internal/config"
)

const appName = "AI Clothing Recommender API"

// Routes is implemented by every feature handler.
type Routes interface {
	RegisterRoutes(r fiber.Router)
}

type rootResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// New builds the Fiber app with middleware and the given feature routes.
func New(cfg config.Config, routes ...Routes) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               appName,
		ErrorHandler:          apperr.ErrorHandler,
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: os.Stderr,
	}))
	setupCORS(app, cfg.FrontendOrigin)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(rootResponse{
			Message:   appName,
			Endpoints: []string{"/api/analyze", "/api/search"},
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	for _, r := range routes {
		r.RegisterRoutes(app)
	}
	return app
}

func setupCORS(app *fiber.App, origin string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowCredentials: origin != "*",
	}))
}
