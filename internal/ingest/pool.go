// Package ingest lets many producers hand decoded profiles to the store
// concurrently. Submissions are queued and published by a fixed set of
// workers.
package ingest

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"subprofile/internal/config"
	"subprofile/internal/domain"
	"subprofile/internal/interfaces"
)

// Stats counts what happened to submitted profiles.
type Stats struct {
	submitted atomic.Int64
	stored    atomic.Int64
	rejected  atomic.Int64
}

func (s *Stats) Submitted() int64 { return s.submitted.Load() }
func (s *Stats) Stored() int64    { return s.stored.Load() }
func (s *Stats) Rejected() int64  { return s.rejected.Load() }

type PoolConfig struct {
	WorkerCount     int
	QueueSize       int
	RequireUsable   bool
	ShutdownTimeout time.Duration
}

type Pool struct {
	config    PoolConfig
	store     interfaces.ProfileStore
	jobs      chan domain.Proxy
	stats     Stats
	logger    *zap.Logger
	metrics   domain.MetricsCollector
	wg        sync.WaitGroup
	mu        sync.RWMutex
	isStarted bool
}

func NewPool(
	cfg *config.Config,
	store interfaces.ProfileStore,
	metrics domain.MetricsCollector,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		config: PoolConfig{
			WorkerCount:     cfg.Ingest.Workers,
			QueueSize:       cfg.Ingest.QueueSize,
			RequireUsable:   cfg.Store.RequireUsable,
			ShutdownTimeout: 30 * time.Second,
		},
		store:   store,
		metrics: metrics,
		logger:  logger.With(zap.String("component", "ingest")),
	}
}

// Start launches the workers. The context only bounds startup; the pool
// runs until Stop.
func (p *Pool) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.isStarted {
		return fmt.Errorf("ingest pool already started")
	}
	p.isStarted = true
	p.jobs = make(chan domain.Proxy, p.config.QueueSize)

	for i := 0; i < p.config.WorkerCount; i++ {
		w := newWorker(i, p.store, p.config.RequireUsable, &p.stats, p.metrics, p.logger)
		p.wg.Add(1)
		go func(jobs <-chan domain.Proxy) {
			defer p.wg.Done()
			w.run(jobs)
		}(p.jobs)
	}

	p.logger.Info("ingest pool started",
		zap.Int("worker_count", p.config.WorkerCount),
		zap.Int("queue_size", p.config.QueueSize))
	return nil
}

// Submit queues a profile for publication, blocking while the queue is
// full. The record is copied, so the caller may reuse it afterwards.
func (p *Pool) Submit(ctx context.Context, proxy domain.Proxy) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.isStarted {
		return ErrPoolStopped
	}

	select {
	case p.jobs <- proxy.Clone():
		p.stats.submitted.Add(1)
		p.metrics.RecordSubmission()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop stops accepting submissions and waits for queued ones to be
// published.
func (p *Pool) Stop() error {
	p.mu.Lock()
	if !p.isStarted {
		p.mu.Unlock()
		return nil
	}
	p.isStarted = false
	close(p.jobs)
	p.mu.Unlock()

	p.logger.Debug("stopping ingest pool")

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("ingest pool stopped",
			zap.Int64("stored", p.stats.Stored()),
			zap.Int64("rejected", p.stats.Rejected()))
	case <-time.After(p.config.ShutdownTimeout):
		return fmt.Errorf("ingest pool shutdown timed out")
	}
	return nil
}

func (p *Pool) Stats() *Stats {
	return &p.stats
}
