// Package privacy masks personally identifying information in resume text
// before it reaches any model.
package privacy

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrEmptyText = errors.New("input text cannot be empty")
	ErrUpstream  = errors.New("pii service request failed")
)

// Entity types detected and their replacement tokens.
const (
	EntityPerson = "PERSON"
	EntityEmail  = "EMAIL_ADDRESS"
	EntityPhone  = "PHONE_NUMBER"
)

// Replacements maps each supported entity to the token that replaces it.
var Replacements = map[string]string{
	EntityPerson: "<CANDIDATE_NAME>",
	EntityEmail:  "<EMAIL_ADDRESS>",
	EntityPhone:  "<PHONE_NUMBER>",
}

// SupportedEntities lists the entity types sent to the analyzer.
var SupportedEntities = []string{EntityPerson, EntityEmail, EntityPhone}

// Masker replaces PII in text with placeholder tokens.
type Masker interface {
	Mask(ctx context.Context, text string) (string, error)
}

// PresidioConfig configures a PresidioMasker.
type PresidioConfig struct {
	AnalyzerURL   string
	AnonymizerURL string
	Language      string
	Timeout       time.Duration
}

// PresidioMasker masks PII through the Presidio analyzer and anonymizer
// REST services.
type PresidioMasker struct {
	analyzerURL   string
	anonymizerURL string
	language      string
	client        *http.Client
	log           *zap.Logger
}

// NewPresidioMasker creates a masker. Both service URLs are required.
func NewPresidioMasker(cfg PresidioConfig, log *zap.Logger) (*PresidioMasker, error) {
	if cfg.AnalyzerURL == "" || cfg.AnonymizerURL == "" {
		return nil, errors.New("presidio analyzer and anonymizer URLs are required")
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &PresidioMasker{
		analyzerURL:   strings.TrimRight(cfg.AnalyzerURL, "/"),
		anonymizerURL: strings.TrimRight(cfg.AnonymizerURL, "/"),
		language:      cfg.Language,
		client:        &http.Client{Timeout: cfg.Timeout},
		log:           log,
	}, nil
}

type analyzeRequest struct {
	Text     string   `json:"text"`
	Language string   `json:"language"`
	Entities []string `json:"entities"`
}

// recognizerResult is one detected entity as returned by the analyzer.
type recognizerResult struct {
	EntityType string  `json:"entity_type"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Score      float64 `json:"score"`
}

type operatorConfig struct {
	Type     string `json:"type"`
	NewValue string `json:"new_value"`
}

type anonymizeRequest struct {
	Text            string                    `json:"text"`
	AnalyzerResults []recognizerResult        `json:"analyzer_results"`
	Anonymizers     map[string]operatorConfig `json:"anonymizers"`
}

type anonymizeResponse struct {
	Text string `json:"text"`
}

// Mask detects names, emails and phone numbers and replaces them with tokens.
func (m *PresidioMasker) Mask(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}

	var results []recognizerResult
	err := m.post(ctx, m.analyzerURL+"/analyze", analyzeRequest{
		Text:     text,
		Language: m.language,
		Entities: SupportedEntities,
	}, &results)
	if err != nil {
		return "", fmt.Errorf("analyze: %w", err)
	}

	if len(results) > 0 {
		m.log.Debug("detected pii entities", zap.Int("count", len(results)))
	}

	anonymizers := make(map[string]operatorConfig, len(Replacements))
	for entity, token := range Replacements {
		anonymizers[entity] = operatorConfig{Type: "replace", NewValue: token}
	}

	var out anonymizeResponse
	err = m.post(ctx, m.anonymizerURL+"/anonymize", anonymizeRequest{
		Text:            text,
		AnalyzerResults: results,
		Anonymizers:     anonymizers,
	}, &out)
	if err != nil {
		return "", fmt.Errorf("anonymize: %w", err)
	}

	return out.Text, nil
}

func (m *PresidioMasker) post(ctx context.Context, url string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 8*1024*1024))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		// The body may echo user text; keep only the status.
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return nil
}

// SessionID returns the hex SHA-256 of text, used to correlate a
// sanitization request without storing its content.
func SessionID(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
