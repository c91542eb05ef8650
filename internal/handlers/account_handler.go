package handlers

import (
	"github.com/coopgretz/HomeStorage/internal/middleware"
	"github.com/coopgretz/HomeStorage/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	service    services.AccountService
	logService services.LogService
}

func NewAccountHandler(service services.AccountService, logService services.LogService) *AccountHandler {
	return &AccountHandler{service: service, logService: logService}
}

func (h *AccountHandler) DeleteAccount(c *fiber.Ctx) error {
	result, err := h.service.DeleteAccount(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}
	return c.JSON(result)
}
