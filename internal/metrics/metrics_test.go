package metrics

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"atsmatch/internal/keywords"
	"atsmatch/internal/models"
)

type fakeStore struct {
	mu       sync.Mutex
	recorded []models.Analysis
	counts   []models.LabelCount
	err      error
}

func (f *fakeStore) RecordAnalysis(ctx context.Context, a *models.Analysis) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recorded = append(f.recorded, *a)
	return f.err
}

func (f *fakeStore) CountByLabel(ctx context.Context) ([]models.LabelCount, error) {
	return f.counts, f.err
}

func report(score float64) keywords.Report {
	return keywords.Report{
		Score:           score,
		ScoreLabel:      keywords.Label(score),
		TotalJDKeywords: 4,
		TotalMatched:    2,
	}
}

func TestRecorder_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	store := &fakeStore{}
	r := NewRecorder(reg, store, nil)

	r.Record(models.SourceText, report(50))
	r.Wait()

	assert.Equal(t, 1.0, testutil.ToFloat64(r.analyses.WithLabelValues(models.SourceText, "Fair Match")))
	require.Len(t, store.recorded, 1)
	got := store.recorded[0]
	assert.Equal(t, models.SourceText, got.Source)
	assert.Equal(t, 50.0, got.Score)
	assert.Equal(t, "Fair Match", got.Label)
	assert.Equal(t, 2, got.TotalMatched)
}

func TestRecorder_StoreErrorIsLogged(t *testing.T) {
	store := &fakeStore{err: errors.New("db down")}
	r := NewRecorder(prometheus.NewRegistry(), store, nil)

	r.Record(models.SourcePDF, report(90))
	r.Wait()

	assert.Equal(t, 1.0, testutil.ToFloat64(r.analyses.WithLabelValues(models.SourcePDF, "Excellent Match")))
}

func TestRecorder_NoStore(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg, nil, nil)

	r.Record(models.SourceCLI, report(10))
	r.Wait()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		assert.NotEqual(t, "atsmatch_analyses_stored_total", mf.GetName())
	}
}

func TestRecorder_Nil(t *testing.T) {
	var r *Recorder
	r.Record(models.SourceText, report(10))
	r.Wait()
}

func TestAnalysisCollector(t *testing.T) {
	store := &fakeStore{counts: []models.LabelCount{
		{Label: "Good Match", Count: 3},
		{Label: "Poor Match", Count: 1},
	}}
	c := &AnalysisCollector{store: store, log: zap.NewNop()}

	expected := `
# HELP atsmatch_analyses_stored_total Stored analysis count by score label
# TYPE atsmatch_analyses_stored_total counter
atsmatch_analyses_stored_total{label="Good Match"} 3
atsmatch_analyses_stored_total{label="Poor Match"} 1
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
}

func TestAnalysisCollector_StoreError(t *testing.T) {
	c := &AnalysisCollector{store: &fakeStore{err: errors.New("db down")}, log: zap.NewNop()}

	assert.Equal(t, 0, testutil.CollectAndCount(c))
}
