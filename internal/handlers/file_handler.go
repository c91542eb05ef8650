package handlers

import (
	"github.com/coopgretz/HomeStorage/internal/dto"
	"github.com/coopgretz/HomeStorage/internal/middleware"
	"github.com/coopgretz/HomeStorage/internal/services"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type FileHandler struct {
	service    services.FileService
	logService services.LogService
}

func NewFileHandler(service services.FileService, logService services.LogService) *FileHandler {
	return &FileHandler{service: service, logService: logService}
}

// UploadImage takes multipart fields image, type (box|item) and id.
func (h *FileHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "image is required")
	}
	targetType := strings.ToLower(strings.TrimSpace(c.FormValue("type")))
	targetID, err := strconv.ParseUint(c.FormValue("id"), 10, 32)
	if err != nil {
		return badRequest(c, "id is required")
	}

	key, err := h.service.UploadImage(c.UserContext(), middleware.UserID(c), targetType, uint(targetID), fileHeader)
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}

	return c.Status(http.StatusOK).JSON(dto.UploadDTO{
		Success:   true,
		ImagePath: key,
		Message:   "Image uploaded successfully",
	})
}

// ServeFile streams a stored photo or QR code. Keys carry a random component,
// so the route is public.
func (h *FileHandler) ServeFile(c *fiber.Ctx) error {
	key := strings.TrimLeft(c.Params("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return badRequest(c, "Invalid path")
	}

	reader, info, err := h.service.Open(c.UserContext(), key)
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}

	c.Set(fiber.HeaderContentType, info.ContentType)
	c.Set(fiber.HeaderCacheControl, "private, max-age=3600")
	return c.SendStream(reader, int(info.Size))
}
