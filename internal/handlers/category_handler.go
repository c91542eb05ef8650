package handlers

import (
	"github.com/coopgretz/HomeStorage/internal/dto"
	"github.com/coopgretz/HomeStorage/internal/middleware"
	"github.com/coopgretz/HomeStorage/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service    services.CategoryService
	logService services.LogService
}

func NewCategoryHandler(service services.CategoryService, logService services.LogService) *CategoryHandler {
	return &CategoryHandler{service: service, logService: logService}
}

func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories(middleware.UserID(c))
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) GetCategoryByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid category ID")
	}

	category, err := h.service.GetCategoryByID(middleware.UserID(c), id)
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	category, err := h.service.CreateCategory(middleware.UserID(c), req)
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}
	return c.Status(http.StatusCreated).JSON(category)
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid category ID")
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid input")
	}

	category, err := h.service.UpdateCategory(middleware.UserID(c), id, req)
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "invalid category ID")
	}

	if err := h.service.DeleteCategory(middleware.UserID(c), id); err != nil {
		return errorResponse(c, h.logService.Log, err)
	}
	return c.JSON(dto.MessageDTO{Message: "Category deleted successfully"})
}
