package api

import (
	"github.com/gofiber/fiber/v3"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// envelope wraps every API payload. The health probe is the only exception.
type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// jsonSuccess returns a 200 response with data wrapped in the standard envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(envelope{Status: statusOK, Data: data})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope{Status: statusError, Error: message})
}
