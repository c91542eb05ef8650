package middleware

import (
	"github.com/coopgretz/HomeStorage/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"strconv"
	"time"
)

// Metrics records request count and latency per route template, so
// /boxes/1 and /boxes/2 share a series.
func Metrics(c *fiber.Ctx) error {
	start := time.Now()
	metrics.HTTPRequestsInFlight.Inc()
	defer metrics.HTTPRequestsInFlight.Dec()

	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
		}
	}
	path := c.Route().Path
	metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
	metrics.HTTPRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
	return err
}
