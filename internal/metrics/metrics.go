package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"atsmatch/internal/keywords"
	"atsmatch/internal/models"
)

const namespace = "atsmatch"

var (
	analysesStoredDesc = prometheus.NewDesc(
		namespace+"_analyses_stored_total",
		"Stored analysis count by score label",
		[]string{"label"},
		nil,
	)
)

// Store is the persistence used by the collector and recorder.
type Store interface {
	RecordAnalysis(ctx context.Context, a *models.Analysis) error
	CountByLabel(ctx context.Context) ([]models.LabelCount, error)
}

// AnalysisCollector is a custom Prometheus collector that reads stored
// analysis counts from the database on each scrape.
type AnalysisCollector struct {
	store Store
	log   *zap.Logger
}

// Describe sends the metric descriptor to the channel.
func (c *AnalysisCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- analysesStoredDesc
}

// Collect queries the store for per-label counts and emits them as counters.
func (c *AnalysisCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	counts, err := c.store.CountByLabel(ctx)
	if err != nil {
		c.log.Error("failed to collect analysis metrics", zap.Error(err))
		return
	}
	for _, lc := range counts {
		ch <- prometheus.MustNewConstMetric(
			analysesStoredDesc,
			prometheus.CounterValue,
			float64(lc.Count),
			lc.Label,
		)
	}
}

// Recorder counts analyses in-process and persists content-free records
// asynchronously when a store is configured.
type Recorder struct {
	store    Store
	log      *zap.Logger
	analyses *prometheus.CounterVec
	scores   prometheus.Histogram
	pending  sync.WaitGroup
}

// NewRecorder registers the analysis metrics with reg. A nil store disables
// persistence and the stored-count collector.
func NewRecorder(reg prometheus.Registerer, store Store, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}

	r := &Recorder{
		store: store,
		log:   log,
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Analyses performed by source and score label",
		}, []string{"source", "label"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_score",
			Help:      "Distribution of keyword match scores",
			Buckets:   []float64{20, 40, 60, 80, 100},
		}),
	}

	reg.MustRegister(r.analyses, r.scores)
	if store != nil {
		reg.MustRegister(&AnalysisCollector{store: store, log: log})
	}
	return r
}

// Record counts one analysis and stores it in the background.
func (r *Recorder) Record(source string, report keywords.Report) {
	if r == nil {
		return
	}

	r.analyses.WithLabelValues(source, report.ScoreLabel.String()).Inc()
	r.scores.Observe(report.Score)

	if r.store == nil {
		return
	}

	a := &models.Analysis{
		Source:          source,
		Score:           report.Score,
		Label:           report.ScoreLabel.String(),
		TotalJDKeywords: report.TotalJDKeywords,
		TotalMatched:    report.TotalMatched,
	}

	r.pending.Add(1)
	go func() {
		defer r.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := r.store.RecordAnalysis(ctx, a); err != nil {
			r.log.Error("failed to record analysis",
				zap.String("source", source),
				zap.String("label", report.ScoreLabel.String()),
				zap.Error(err))
		}
	}()
}

// Wait blocks until background writes have finished.
func (r *Recorder) Wait() {
	if r == nil {
		return
	}
	r.pending.Wait()
}
