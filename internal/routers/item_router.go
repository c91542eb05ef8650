package routers

import (
	"github.com/coopgretz/HomeStorage/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupItemRouter(app *fiber.App, server *cmd.Server) {
	itemHandler := server.ItemHandler
	items := app.Group("/items", server.Auth.Handle)
	items.Get("/", itemHandler.ListItems)
	items.Post("/", itemHandler.CreateItem)
	items.Get("/:id", itemHandler.GetItemByID)
	items.Put("/:id", itemHandler.UpdateItem)
	items.Patch("/:id/status", itemHandler.UpdateItemStatus)
	items.Delete("/:id", itemHandler.DeleteItem)
}
