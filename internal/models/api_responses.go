package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"atsmatch/internal/keywords"
)

// SanitizeStatusMasked is the status returned after a successful sanitization.
const SanitizeStatusMasked = "PII_MASKED_SUCCESSFULLY"

// AnalysisResponse is the payload of both analyze endpoints.
type AnalysisResponse = keywords.Report

// AnalyzeTextRequest carries already-extracted resume and job description text.
type AnalyzeTextRequest struct {
	ResumeText     string `json:"resume_text" form:"resume_text"`
	JobDescription string `json:"job_description" form:"job_description"`
}

// SanitizeRequest carries raw resume text to mask.
type SanitizeRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=10"`
}

// SanitizeResponse contains the masked resume.
type SanitizeResponse struct {
	SessionID        string `json:"session_id"`
	SanitizedContent string `json:"sanitized_content"`
	Status           string `json:"status"`
}

// BulletRequest asks for a bullet rewrite.
type BulletRequest struct {
	Bullet     string   `json:"bullet" validate:"required"`
	JobContext string   `json:"job_context"`
	Keywords   []string `json:"keywords" validate:"max=50,dive,required"`
}

// BulletResponse contains the rewritten bullet.
type BulletResponse struct {
	Bullet string `json:"bullet"`
}

// SkillGapRequest carries the two texts to compare semantically.
type SkillGapRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// SkillGapResponse contains the cosine similarity in [-1, 1].
type SkillGapResponse struct {
	Similarity float64 `json:"similarity"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// StatsResponse summarizes stored analyses.
type StatsResponse struct {
	Total   int64        `json:"total"`
	ByLabel []LabelCount `json:"by_label"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names in errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationMessage turns a validation error into a client-facing message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s items", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// Validate validates the SanitizeRequest using the validator.
func (r *SanitizeRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the BulletRequest using the validator.
func (r *BulletRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SkillGapRequest using the validator.
func (r *SkillGapRequest) Validate() error {
	return validate.Struct(r)
}
