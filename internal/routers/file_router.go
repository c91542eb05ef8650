package routers

import (
	"github.com/coopgretz/HomeStorage/cmd"
	"github.com/gofiber/fiber/v2"
)

// SetupFileRouter registers the upload endpoint and the public file server.
// Image URLs end up in <img> tags, so /files does not require a session.
func SetupFileRouter(app *fiber.App, server *cmd.Server) {
	fileHandler := server.FileHandler
	app.Post("/upload", server.Auth.Handle, fileHandler.UploadImage)
	app.Get("/files/*", fileHandler.ServeFile)
}
