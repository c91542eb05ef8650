package handlers

import (
	"github.com/coopgretz/HomeStorage/internal/dto"
	"github.com/coopgretz/HomeStorage/internal/middleware"
	"github.com/coopgretz/HomeStorage/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	service    services.ItemService
	logService services.LogService
}

func NewItemHandler(service services.ItemService, logService services.LogService) *ItemHandler {
	return &ItemHandler{service: service, logService: logService}
}

// ListItems supports search, box_id, category_id, status, page and limit.
// A limit without page returns the first page.
func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	boxID, ok := optionalID(c.Query("box_id"))
	if !ok {
		return badRequest(c, "invalid box_id")
	}
	categoryID, ok := optionalID(c.Query("category_id"))
	if !ok {
		return badRequest(c, "invalid category_id")
	}
	query := dto.ItemQuery{
		Search:     c.Query("search"),
		BoxID:      boxID,
		CategoryID: categoryID,
		Status:     c.Query("status"),
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", services.DefaultPageLimit),
	}

	items, err := h.service.GetItems(middleware.UserID(c), query)
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) GetItemByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid item ID")
	}

	item, err := h.service.GetItemByID(middleware.UserID(c), id)
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var req dto.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	item, err := h.service.CreateItem(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}
	return c.Status(http.StatusCreated).JSON(item)
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid item ID")
	}

	var req dto.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	item, err := h.service.UpdateItem(c.UserContext(), middleware.UserID(c), id, req)
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) UpdateItemStatus(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid item ID")
	}

	var req dto.StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	item, err := h.service.UpdateItemStatus(middleware.UserID(c), id, req)
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid item ID")
	}

	if err := h.service.DeleteItem(c.UserContext(), middleware.UserID(c), id); err != nil {
		return errorResponse(c, h.logService.Log, err)
	}
	return c.JSON(dto.MessageDTO{Message: "Item deleted successfully"})
}
