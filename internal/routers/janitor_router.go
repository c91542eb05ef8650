package routers

import (
	"errors"
	"github.com/coopgretz/HomeStorage/cmd"
	"github.com/coopgretz/HomeStorage/internal/services"
	"github.com/gofiber/fiber/v2"
)

func SetupJanitorRouter(app *fiber.App, server *cmd.Server) {
	janitor := server.JanitorService
	app.Post("/janitor/clean", server.Auth.Handle, server.Auth.RequireAdmin, func(ctx *fiber.Ctx) error {
		err := janitor.ForceStartCleanCycle()
		if errors.Is(err, services.ErrCleaningRunning) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": services.Message(err),
			})
		}
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": services.Message(err),
			})
		}
		return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{})
	})
}
