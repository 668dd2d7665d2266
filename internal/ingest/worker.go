package ingest

import (
	"fmt"

	"go.uber.org/zap"
	"subprofile/internal/domain"
	"subprofile/internal/interfaces"
	"subprofile/internal/profile"
)

// worker publishes submitted profiles into the store
type worker struct {
	id            int
	store         interfaces.ProfileStore
	requireUsable bool
	stats         *Stats
	metrics       domain.MetricsCollector
	logger        *zap.Logger
}

func newWorker(
	id int,
	store interfaces.ProfileStore,
	requireUsable bool,
	stats *Stats,
	metrics domain.MetricsCollector,
	logger *zap.Logger,
) *worker {
	return &worker{
		id:            id,
		store:         store,
		requireUsable: requireUsable,
		stats:         stats,
		metrics:       metrics,
		logger:        logger.With(zap.Int("worker_id", id)),
	}
}

func (w *worker) run(jobs <-chan domain.Proxy) {
	workerID := fmt.Sprint(w.id)
	w.metrics.RecordWorkerStart(workerID)
	w.logger.Debug("worker started")
	defer func() {
		w.metrics.RecordWorkerStop(workerID)
		w.logger.Debug("worker stopped")
	}()

	for p := range jobs {
		if err := w.process(p); err != nil {
			w.stats.rejected.Add(1)
			w.logger.Error("profile rejected",
				zap.String("type", p.Type.String()),
				zap.String("hostname", p.Hostname),
				zap.Error(err))
			continue
		}
		w.stats.stored.Add(1)
	}
}

func (w *worker) process(p domain.Proxy) (err error) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("worker panic recovered",
				zap.Any("panic", r),
				zap.Stack("stack"))
			err = NewSubmitError("process", "panic while publishing profile", fmt.Errorf("%v", r))
		}
	}()

	if w.requireUsable {
		if err := profile.Validate(&p); err != nil {
			w.metrics.RecordRejected(p.Type, "invalid")
			return NewSubmitError("validate", "profile is not usable", err)
		}
	}

	stored, err := w.store.Add(p)
	if err != nil {
		return NewSubmitError("store", "failed to publish profile", err)
	}

	w.logger.Debug("profile published",
		zap.Uint32("id", stored.Id),
		zap.String("group", stored.Group))
	return nil
}
