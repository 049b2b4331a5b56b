package api

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"atsmatch/internal/document"
	"atsmatch/internal/keywords"
	"atsmatch/internal/models"
	"atsmatch/internal/validation"
)

// AnalysisRecorder receives every completed analysis.
type AnalysisRecorder interface {
	Record(source string, report keywords.Report)
}

// AnalyzeHandler scores resumes against job descriptions via JSON API.
type AnalyzeHandler struct {
	analyzer *keywords.Analyzer
	recorder AnalysisRecorder
	log      *zap.Logger
}

// NewAnalyzeHandler creates a new analyze handler. recorder may be nil.
func NewAnalyzeHandler(analyzer *keywords.Analyzer, recorder AnalysisRecorder, log *zap.Logger) *AnalyzeHandler {
	if analyzer == nil {
		analyzer = keywords.NewAnalyzer(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AnalyzeHandler{analyzer: analyzer, recorder: recorder, log: log}
}

// AnalyzePDF scores an uploaded PDF resume against a job description form field.
func (h *AnalyzeHandler) AnalyzePDF(c fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "resume file is required")
	}

	if valid, msg := validation.ValidateUploadName(file.Filename); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}
	if !document.IsPDF(file.Filename) {
		return jsonError(c, fiber.StatusBadRequest, "Only PDF files are supported")
	}

	f, err := file.Open()
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "failed to read uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "failed to read uploaded file")
	}

	resumeText, err := document.ExtractText(file.Filename, data)
	if err != nil {
		h.log.Info("pdf extraction failed", zap.Int("bytes", len(data)), zap.Error(err))
		return jsonError(c, fiber.StatusBadRequest, "Failed to extract PDF text")
	}
	if strings.TrimSpace(resumeText) == "" {
		return jsonError(c, fiber.StatusBadRequest, "Could not extract text from PDF")
	}

	return h.respond(c, models.SourcePDF, resumeText, c.FormValue("job_description"))
}

// AnalyzeText scores already-extracted resume text. Accepts form or JSON bodies.
func (h *AnalyzeHandler) AnalyzeText(c fiber.Ctx) error {
	var body models.AnalyzeTextRequest
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return jsonError(c, fiber.StatusBadRequest, "invalid request body")
		}
	} else {
		body.ResumeText = c.FormValue("resume_text")
		body.JobDescription = c.FormValue("job_description")
	}

	return h.respond(c, models.SourceText, body.ResumeText, body.JobDescription)
}

func (h *AnalyzeHandler) respond(c fiber.Ctx, source, resumeText, jdText string) error {
	report, err := h.analyzer.Analyze(resumeText, jdText)
	switch {
	case errors.Is(err, keywords.ErrEmptyResume):
		return jsonError(c, fiber.StatusBadRequest, "Resume text cannot be empty")
	case errors.Is(err, keywords.ErrEmptyJobDescription):
		return jsonError(c, fiber.StatusBadRequest, "Job description cannot be empty")
	case err != nil:
		return jsonError(c, fiber.StatusInternalServerError, "failed to analyze resume")
	}

	if h.recorder != nil {
		h.recorder.Record(source, report)
	}

	h.log.Debug("analysis complete",
		zap.String("source", source),
		zap.String("label", report.ScoreLabel.String()),
		zap.Int("jd_keywords", report.TotalJDKeywords),
		zap.Int("matched", report.TotalMatched))

	return jsonSuccess(c, models.AnalysisResponse(report))
}
