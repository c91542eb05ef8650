package routers

import (
	"github.com/coopgretz/HomeStorage/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupBoxRouter(app *fiber.App, server *cmd.Server) {
	boxHandler := server.BoxHandler
	boxes := app.Group("/boxes", server.Auth.Handle)
	boxes.Get("/", boxHandler.ListBoxes)
	boxes.Post("/", boxHandler.CreateBox)
	boxes.Get("/next-number", boxHandler.NextBoxNumber)
	boxes.Get("/:id", boxHandler.GetBoxByID)
	boxes.Put("/:id", boxHandler.UpdateBox)
	boxes.Delete("/:id", boxHandler.DeleteBox)
	boxes.Post("/:id/qr", boxHandler.GenerateQRCode)
}
