package api

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"atsmatch/internal/models"
)

// LabelCounter reads stored analysis counts.
type LabelCounter interface {
	CountByLabel(ctx context.Context) ([]models.LabelCount, error)
}

// StatsHandler reports aggregate counts of stored analyses.
type StatsHandler struct {
	store LabelCounter
}

// NewStatsHandler creates a stats handler. store may be nil.
func NewStatsHandler(store LabelCounter) *StatsHandler {
	return &StatsHandler{store: store}
}

// Get returns the number of stored analyses per score label.
func (h *StatsHandler) Get(c fiber.Ctx) error {
	if h.store == nil {
		return jsonError(c, fiber.StatusNotFound, "analysis storage is not enabled")
	}

	counts, err := h.store.CountByLabel(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch stats")
	}

	resp := models.StatsResponse{ByLabel: counts}
	if resp.ByLabel == nil {
		resp.ByLabel = []models.LabelCount{}
	}
	for _, lc := range counts {
		resp.Total += lc.Count
	}
	return jsonSuccess(c, resp)
}
