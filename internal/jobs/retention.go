package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// AnalysisPruner deletes stored analyses created before a cutoff.
type AnalysisPruner interface {
	DeleteAnalysesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// RetentionPruner periodically removes stored analyses older than maxAge.
type RetentionPruner struct {
	store    AnalysisPruner
	interval time.Duration
	maxAge   time.Duration
	log      *zap.Logger
	now      func() time.Time
}

// NewRetentionPruner creates a new retention pruner.
func NewRetentionPruner(store AnalysisPruner, interval, maxAge time.Duration, log *zap.Logger) *RetentionPruner {
	if log == nil {
		log = zap.NewNop()
	}
	return &RetentionPruner{
		store:    store,
		interval: interval,
		maxAge:   maxAge,
		log:      log,
		now:      time.Now,
	}
}

// Start begins the background pruning loop. It returns when ctx is done.
func (p *RetentionPruner) Start(ctx context.Context) {
	p.log.Info("retention pruner started",
		zap.Duration("interval", p.interval),
		zap.Duration("max_age", p.maxAge))

	// Run immediately on start
	p.prune(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info("retention pruner stopped")
			return
		case <-ticker.C:
			p.prune(ctx)
		}
	}
}

// prune deletes everything older than maxAge and returns the number removed.
func (p *RetentionPruner) prune(ctx context.Context) int64 {
	cutoff := p.now().Add(-p.maxAge)

	deleted, err := p.store.DeleteAnalysesBefore(ctx, cutoff)
	if err != nil {
		if ctx.Err() == nil {
			p.log.Error("retention pruner: delete failed", zap.Error(err))
		}
		return 0
	}

	if deleted > 0 {
		p.log.Info("retention pruner: removed analyses",
			zap.Int64("deleted", deleted),
			zap.Time("cutoff", cutoff))
	}
	return deleted
}
