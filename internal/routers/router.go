package routers

import (
	"github.com/coopgretz/HomeStorage/cmd"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	SetupBoxRouter(app, server)
	SetupItemRouter(app, server)
	SetupCategoryRouter(app, server)
	SetupFileRouter(app, server)
	SetupAccountRouter(app, server)
	SetupJanitorRouter(app, server)
}
