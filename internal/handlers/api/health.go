package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"atsmatch/internal/models"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers container liveness probes.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a health handler. database may be nil.
func NewHealthHandler(database Pinger) *HealthHandler {
	return &HealthHandler{db: database}
}

// Check returns {"status":"up"}, or 503 with "down" when storage is
// configured but unreachable.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(models.HealthResponse{Status: "down"})
		}
	}
	return c.JSON(models.HealthResponse{Status: "up"})
}
