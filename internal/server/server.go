package server

import (
	"github.com/coopgretz/HomeStorage/cmd"
	"github.com/coopgretz/HomeStorage/internal/middleware"
	"github.com/coopgretz/HomeStorage/internal/routers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber application with every route registered. The
// caller owns Listen and Shutdown.
func NewApp(server *cmd.Server) *fiber.App {
	cfg := server.Configuration
	app := fiber.New(fiber.Config{
		BodyLimit:   cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency: cfg.Server.Concurrency * 1024,
		AppName:     "HomeStorage",
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Output: server.LogService.Log.Writer()}))
	app.Use(middleware.Metrics)

	routers.SetupRoutes(app, server)
	return app
}
