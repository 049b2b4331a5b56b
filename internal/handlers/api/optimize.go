package api

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"atsmatch/internal/logger"
	"atsmatch/internal/models"
	"atsmatch/internal/optimizer"
	"atsmatch/internal/privacy"
	"atsmatch/internal/validation"
)

// ResumeOptimizer rewrites bullets and measures skill gaps.
type ResumeOptimizer interface {
	OptimizeBullet(ctx context.Context, bullet, jdContext string, keywords []string) (string, error)
	SkillGap(ctx context.Context, resumeText, jdText string) (float64, error)
}

// OptimizeHandler serves the PII masking and LLM-backed endpoints.
type OptimizeHandler struct {
	masker    privacy.Masker
	optimizer ResumeOptimizer
	log       *zap.Logger
}

// NewOptimizeHandler creates a new optimize handler. Either collaborator may
// be nil, in which case its endpoints answer 503.
func NewOptimizeHandler(masker privacy.Masker, opt ResumeOptimizer, log *zap.Logger) *OptimizeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &OptimizeHandler{masker: masker, optimizer: opt, log: log}
}

// Sanitize masks names, emails and phone numbers in a resume.
func (h *OptimizeHandler) Sanitize(c fiber.Ctx) error {
	if h.masker == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "PII masking is not configured")
	}

	var body models.SanitizeRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := body.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, models.ValidationMessage(err))
	}

	sessionID := privacy.SessionID(body.ResumeText)
	log := logger.WithFields(h.log, logger.SessionFields(sessionID)...)

	masked, err := h.masker.Mask(c.Context(), body.ResumeText)
	if err != nil {
		switch {
		case errors.Is(err, privacy.ErrEmptyText):
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, privacy.ErrUpstream):
			log.Error("sanitization failed", zap.Error(err))
			return jsonError(c, fiber.StatusBadGateway, "PII service unavailable")
		default:
			log.Error("sanitization failed", zap.Error(err))
			return jsonError(c, fiber.StatusInternalServerError, "Internal server error during sanitization")
		}
	}

	log.Info("sanitized resume")

	return jsonSuccess(c, models.SanitizeResponse{
		SessionID:        sessionID,
		SanitizedContent: masked,
		Status:           models.SanitizeStatusMasked,
	})
}

// Bullet rewrites one resume bullet toward the job context.
func (h *OptimizeHandler) Bullet(c fiber.Ctx) error {
	if h.optimizer == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "resume optimizer is not configured")
	}

	var body models.BulletRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := body.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, models.ValidationMessage(err))
	}

	rewritten, err := h.optimizer.OptimizeBullet(c.Context(), body.Bullet, body.JobContext, validation.NormalizeKeywords(body.Keywords))
	if err != nil {
		return h.optimizerError(c, err)
	}

	return jsonSuccess(c, models.BulletResponse{Bullet: rewritten})
}

// SkillGap returns the semantic similarity of a resume and a job description.
func (h *OptimizeHandler) SkillGap(c fiber.Ctx) error {
	if h.optimizer == nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "resume optimizer is not configured")
	}

	var body models.SkillGapRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := body.Validate(); err != nil {
		return jsonError(c, fiber.StatusBadRequest, models.ValidationMessage(err))
	}

	similarity, err := h.optimizer.SkillGap(c.Context(), body.ResumeText, body.JobDescription)
	if err != nil {
		return h.optimizerError(c, err)
	}

	return jsonSuccess(c, models.SkillGapResponse{Similarity: similarity})
}

func (h *OptimizeHandler) optimizerError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, optimizer.ErrEmptyBullet), errors.Is(err, optimizer.ErrEmptyInput):
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, optimizer.ErrUnavailable):
		h.log.Warn("optimizer request failed", zap.Error(err))
		return jsonError(c, fiber.StatusBadGateway, "language model unavailable")
	default:
		h.log.Error("optimizer request failed", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "failed to optimize resume")
	}
}
