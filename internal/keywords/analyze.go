package keywords

import (
	"errors"
	"fmt"
	"strings"
)

// Default list caps applied to Report keyword lists.
const (
	DefaultMatchedLimit = 50
	DefaultMissingLimit = 30
)

var (
	// ErrInvalidInput is wrapped by every input validation failure.
	ErrInvalidInput = errors.New("invalid input")

	ErrEmptyResume         = fmt.Errorf("%w: resume text cannot be empty", ErrInvalidInput)
	ErrEmptyJobDescription = fmt.Errorf("%w: job description cannot be empty", ErrInvalidInput)
)

// Report is the result returned to callers of the engine.
type Report struct {
	Score           float64    `json:"score"`
	ScoreLabel      ScoreLabel `json:"score_label"`
	MatchedKeywords []string   `json:"matched_keywords"`
	MissingKeywords []string   `json:"missing_keywords"`
	TotalJDKeywords int        `json:"total_jd_keywords"`
	TotalMatched    int        `json:"total_matched"`
}

// Analyzer compares a resume against a job description.
type Analyzer struct {
	extractor    *Extractor
	matchedLimit int
	missingLimit int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithMatchedLimit caps the matched keyword list. Non-positive values keep the default.
func WithMatchedLimit(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.matchedLimit = n
		}
	}
}

// WithMissingLimit caps the missing keyword list. Non-positive values keep the default.
func WithMissingLimit(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.missingLimit = n
		}
	}
}

// NewAnalyzer creates an analyzer. A nil extractor uses the default vocabulary.
func NewAnalyzer(extractor *Extractor, opts ...Option) *Analyzer {
	if extractor == nil {
		extractor = NewExtractor(DefaultStopWords())
	}
	a := &Analyzer{
		extractor:    extractor,
		matchedLimit: DefaultMatchedLimit,
		missingLimit: DefaultMissingLimit,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Extractor returns the extractor used by the analyzer.
func (a *Analyzer) Extractor() *Extractor {
	return a.extractor
}

// Analyze extracts keywords from both texts and scores them.
// Blank inputs are rejected; inputs without keywords score 0.
func (a *Analyzer) Analyze(resumeText, jdText string) (Report, error) {
	if strings.TrimSpace(resumeText) == "" {
		return Report{}, ErrEmptyResume
	}
	if strings.TrimSpace(jdText) == "" {
		return Report{}, ErrEmptyJobDescription
	}

	resume := a.extractor.Extract(resumeText)
	jd := a.extractor.Extract(jdText)
	return a.Compare(resume, jd), nil
}

// Compare scores two keyword sets and builds the truncated report.
func (a *Analyzer) Compare(resume, jd Set) Report {
	res := Score(resume, jd)
	return Report{
		Score:           res.Score,
		ScoreLabel:      Label(res.Score),
		MatchedKeywords: truncate(res.Matched.Sorted(), a.matchedLimit),
		MissingKeywords: truncate(res.Missing.Sorted(), a.missingLimit),
		TotalJDKeywords: jd.Len(),
		TotalMatched:    res.Matched.Len(),
	}
}

func truncate(words []string, limit int) []string {
	if len(words) > limit {
		return words[:limit]
	}
	return words
}
