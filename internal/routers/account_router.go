package routers

import (
	"github.com/coopgretz/HomeStorage/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupAccountRouter(app *fiber.App, server *cmd.Server) {
	app.Delete("/account/delete", server.Auth.Handle, server.AccountHandler.DeleteAccount)
	app.Get("/stats", server.Auth.Handle, server.StatsHandler.GetStats)
}
