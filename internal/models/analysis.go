package models

import (
	"time"

	"github.com/google/uuid"
)

// Analysis source constants
const (
	SourcePDF  = "pdf"
	SourceText = "text"
	SourceCLI  = "cli"
)

// Analysis is the stored, content-free record of one scoring request.
// Resume text, job description text and keywords are never persisted.
type Analysis struct {
	ID              uuid.UUID `json:"id"`
	Source          string    `json:"source"`
	Score           float64   `json:"score"`
	Label           string    `json:"label"`
	TotalJDKeywords int       `json:"total_jd_keywords"`
	TotalMatched    int       `json:"total_matched"`
	CreatedAt       time.Time `json:"created_at"`
}

// LabelCount is the number of stored analyses per score label.
type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}
