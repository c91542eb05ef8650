package handlers

import (
	"errors"
	"github.com/coopgretz/HomeStorage/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"net/http"
	"strconv"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrDependencyInUse):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrCleaningRunning):
		return http.StatusConflict
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// errorResponse writes {"error": ...}. Unexpected failures are logged and
// answered with a generic message.
func errorResponse(c *fiber.Ctx, log *logrus.Logger, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"error":  err.Error(),
		}).Error("request failed")
	}
	return c.Status(status).JSON(map[string]interface{}{"error": services.Message(err)})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": message})
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// optionalID parses an optional numeric query parameter.
func optionalID(value string) (*uint, bool) {
	if value == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil, false
	}
	result := uint(id)
	return &result, true
}
