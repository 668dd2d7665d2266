package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"subprofile/internal/domain"
)

// Module provides the metrics collector. The prometheus.Registerer is
// supplied by the application.
var Module = fx.Options(
	fx.Provide(NewCollector),
	fx.Provide(func(c *Collector) domain.MetricsCollector { return c }),
)

type Collector struct {
	logger           *zap.Logger
	profilesStored   *prometheus.CounterVec
	profilesRejected *prometheus.CounterVec
	storeSize        prometheus.Gauge
	submissions      prometheus.Counter
	workerStarts     *prometheus.CounterVec
	workerStops      *prometheus.CounterVec
	activeWorkers    prometheus.Gauge
}

func NewCollector(reg prometheus.Registerer, logger *zap.Logger) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		logger: logger,
		profilesStored: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "subprofile_profiles_stored_total",
				Help: "Total number of profiles published to the store",
			},
			[]string{"type"},
		),
		profilesRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "subprofile_profiles_rejected_total",
				Help: "Total number of profiles rejected before publication",
			},
			[]string{"type", "reason"},
		),
		storeSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "subprofile_store_profiles",
				Help: "Number of profiles currently held by the store",
			},
		),
		submissions: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "subprofile_ingest_submissions_total",
				Help: "Total number of profiles submitted for ingestion",
			},
		),
		workerStarts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "subprofile_ingest_worker_starts_total",
				Help: "Total number of ingest worker starts",
			},
			[]string{"worker_id"},
		),
		workerStops: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "subprofile_ingest_worker_stops_total",
				Help: "Total number of ingest worker stops",
			},
			[]string{"worker_id"},
		),
		activeWorkers: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "subprofile_ingest_active_workers",
				Help: "Number of currently active ingest workers",
			},
		),
	}
}

func (c *Collector) RecordStored(t domain.ProxyType) {
	c.profilesStored.WithLabelValues(t.String()).Inc()
	c.storeSize.Inc()
}

func (c *Collector) RecordRejected(t domain.ProxyType, reason string) {
	c.profilesRejected.WithLabelValues(t.String(), reason).Inc()
}

func (c *Collector) RecordSubmission() {
	c.submissions.Inc()
}

func (c *Collector) RecordWorkerStart(workerID string) {
	c.workerStarts.WithLabelValues(workerID).Inc()
	c.activeWorkers.Inc()
}

func (c *Collector) RecordWorkerStop(workerID string) {
	c.workerStops.WithLabelValues(workerID).Inc()
	c.activeWorkers.Dec()
}
