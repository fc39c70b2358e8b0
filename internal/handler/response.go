package handler

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/bvminh-dev/send-bird/internal/port"
	"github.com/gofiber/fiber/v3"
)

// Envelope is the uniform body every endpoint returns. Exactly one of Data
// and Error is set, matching the Success flag.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message"`
}

func respondData(c fiber.Ctx, status int, data json.RawMessage, message string) error {
	return c.Status(status).JSON(Envelope{Success: true, Data: data, Message: message})
}

func respondError(c fiber.Ctx, status int, detail, message string) error {
	return c.Status(status).JSON(Envelope{Success: false, Error: detail, Message: message})
}

// respondUpstreamError maps a failed provider call onto the response: the
// upstream's status and message win when present, everything else is a 500
// with the local error text.
func respondUpstreamError(c fiber.Ctx, err error, message string) error {
	status := fiber.StatusInternalServerError
	detail := err.Error()

	var ue *port.UpstreamError
	if errors.As(err, &ue) {
		if ue.Status != 0 {
			status = ue.Status
		}
		if ue.Detail != "" {
			detail = ue.Detail
		}
	}

	return respondError(c, status, detail, message)
}

// NotFound is the catch-all for unmatched routes. Register it after every
// other route.
func NotFound(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"error":   "Endpoint not found",
		"message": "The requested endpoint " + c.Method() + " " + c.Path() + " does not exist",
		"available_endpoints": []string{
			"GET /health",
			"GET /api/users/:userId/token",
			"POST /api/users",
		},
	})
}

// ErrorHandler is the Fiber app-level error handler. Anything that reaches it
// (malformed bodies, panics recovered by middleware) is answered with a fixed
// 500 envelope so internal detail never leaks to callers.
func ErrorHandler(c fiber.Ctx, err error) error {
	slog.Error("unhandled request error", "method", c.Method(), "path", c.Path(), "error", err)
	return respondError(c, fiber.StatusInternalServerError, "Internal server error", "Something went wrong on the server")
}
