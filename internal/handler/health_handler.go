package handler

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v3"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	serviceName string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName}
}

// Register sets up the health route.
func (h *HealthHandler) Register(app *fiber.App) {
	app.Get("/health", h.Health)
}

// Health reports service status with a millisecond timestamp.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	data, _ := json.Marshal(fiber.Map{
		"status":    "OK",
		"service":   h.serviceName,
		"timestamp": time.Now().UnixMilli(),
	})
	return respondData(c, fiber.StatusOK, data, "Service is healthy")
}
