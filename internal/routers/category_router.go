package routers

import (
	"github.com/coopgretz/HomeStorage/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRouter(app *fiber.App, server *cmd.Server) {
	categoryHandler := server.CategoryHandler
	categories := app.Group("/categories", server.Auth.Handle)
	categories.Get("/", categoryHandler.ListCategories)
	categories.Post("/", categoryHandler.CreateCategory)
	categories.Get("/:id", categoryHandler.GetCategoryByID)
	categories.Put("/:id", categoryHandler.UpdateCategory)
	categories.Delete("/:id", categoryHandler.DeleteCategory)
}
