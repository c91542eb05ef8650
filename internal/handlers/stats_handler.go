package handlers

import (
	"github.com/coopgretz/HomeStorage/internal/middleware"
	"github.com/coopgretz/HomeStorage/internal/services"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	service    services.StatsService
	logService services.LogService
}

func NewStatsHandler(service services.StatsService, logService services.LogService) *StatsHandler {
	return &StatsHandler{service: service, logService: logService}
}

func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(middleware.UserID(c))
	if err != nil {
		return errorResponse(c, h.logService.Log, err)
	}
	return c.JSON(stats)
}
