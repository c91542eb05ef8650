package handlers

import (
	"github.com/coopgretz/HomeStorage/internal/dto"
	"github.com/coopgretz/HomeStorage/internal/middleware"
	"github.com/coopgretz/HomeStorage/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type BoxHandler struct {
	service    services.BoxService
	qrService  services.QRService
	logService services.LogService
}

func NewBoxHandler(service services.BoxService, qrService services.QRService, logService services.LogService) *BoxHandler {
	return &BoxHandler{service: service, qrService: qrService, logService: logService}
}

func (h *BoxHandler) CreateBox(c *fiber.Ctx) error {
	var req dto.BoxRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	box, err := h.service.CreateBox(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}

	return c.Status(http.StatusCreated).JSON(box)
}

func (h *BoxHandler) GetBoxByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid box ID")
	}

	box, err := h.service.GetBoxByID(middleware.UserID(c), id)
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}

	return c.JSON(box)
}

func (h *BoxHandler) UpdateBox(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid box ID")
	}

	var req dto.BoxRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	box, err := h.service.UpdateBox(c.UserContext(), middleware.UserID(c), id, req)
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}

	return c.JSON(box)
}

func (h *BoxHandler) DeleteBox(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid box ID")
	}

	if err := h.service.DeleteBox(c.UserContext(), middleware.UserID(c), id); err != nil {
		return errorResponse(c, h.logService.Log, err)
	}

	return c.JSON(dto.MessageDTO{Message: "Box deleted successfully"})
}

func (h *BoxHandler) ListBoxes(c *fiber.Ctx) error {
	boxes, err := h.service.GetBoxes(middleware.UserID(c))
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}
	return c.JSON(boxes)
}

func (h *BoxHandler) NextBoxNumber(c *fiber.Ctx) error {
	next, err := h.service.NextBoxNumber(middleware.UserID(c))
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}
	return c.JSON(dto.NextBoxNumberDTO{BoxNumber: next})
}

func (h *BoxHandler) GenerateQRCode(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid box ID")
	}

	box, err := h.qrService.GenerateBoxQRCode(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}

	return c.JSON(dto.QRCodeDTO{
		Success:    true,
		QRCodePath: *box.QRCodePath,
		Box:        box,
		Message:    "QR code generated successfully",
	})
}
