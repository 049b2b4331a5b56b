package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrAnalysisNotFound = errors.New("analysis not found")
	ErrInvalidAnalysis  = errors.New("invalid analysis record")
)
