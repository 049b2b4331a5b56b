package privacy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePresidio replaces spans reported by a fixed analyzer result.
func fakePresidio(t *testing.T, found []recognizerResult) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "en", req.Language)
		assert.ElementsMatch(t, SupportedEntities, req.Entities)
		_ = json.NewEncoder(w).Encode(found)
	})
	mux.HandleFunc("POST /anonymize", func(w http.ResponseWriter, r *http.Request) {
		var req anonymizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		text := req.Text
		// Replace from the end so earlier offsets stay valid.
		for i := len(req.AnalyzerResults) - 1; i >= 0; i-- {
			res := req.AnalyzerResults[i]
			op := req.Anonymizers[res.EntityType]
			assert.Equal(t, "replace", op.Type)
			text = text[:res.Start] + op.NewValue + text[res.End:]
		}
		_ = json.NewEncoder(w).Encode(anonymizeResponse{Text: text})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestMasker(t *testing.T, url string) *PresidioMasker {
	t.Helper()
	m, err := NewPresidioMasker(PresidioConfig{AnalyzerURL: url, AnonymizerURL: url + "/"}, nil)
	require.NoError(t, err)
	return m
}

func TestPresidioMasker_Mask(t *testing.T) {
	text := "Jane Doe jane@example.com 555-123-4567"
	srv := fakePresidio(t, []recognizerResult{
		{EntityType: EntityPerson, Start: 0, End: 8, Score: 0.85},
		{EntityType: EntityEmail, Start: 9, End: 25, Score: 1},
		{EntityType: EntityPhone, Start: 26, End: 38, Score: 0.75},
	})

	got, err := newTestMasker(t, srv.URL).Mask(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, "<CANDIDATE_NAME> <EMAIL_ADDRESS> <PHONE_NUMBER>", got)
}

func TestPresidioMasker_NoEntities(t *testing.T) {
	srv := fakePresidio(t, nil)

	got, err := newTestMasker(t, srv.URL).Mask(context.Background(), "Senior Go engineer")
	require.NoError(t, err)
	assert.Equal(t, "Senior Go engineer", got)
}

func TestPresidioMasker_EmptyText(t *testing.T) {
	m := newTestMasker(t, "http://127.0.0.1:0")

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := m.Mask(context.Background(), text)
		assert.ErrorIs(t, err, ErrEmptyText)
	}
}

func TestPresidioMasker_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom: Jane Doe", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestMasker(t, srv.URL).Mask(context.Background(), "Jane Doe")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.False(t, strings.Contains(err.Error(), "Jane"), "error must not echo user text")
}

func TestNewPresidioMasker_RequiresURLs(t *testing.T) {
	_, err := NewPresidioMasker(PresidioConfig{AnalyzerURL: "http://a"}, nil)
	assert.Error(t, err)
}

func TestSessionID(t *testing.T) {
	id := SessionID("hello")
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", id)
	assert.Equal(t, id, SessionID("hello"))
	assert.NotEqual(t, id, SessionID("hello "))
}
