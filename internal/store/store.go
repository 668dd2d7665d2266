// Package store is the owning collection of proxy profiles. It assigns Id
// and GroupId, fills in the default group and publishes immutable snapshots
// so any number of readers can run alongside a single writer.
package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"subprofile/internal/config"
	"subprofile/internal/domain"
	"subprofile/internal/interfaces"
	"subprofile/internal/profile"
)

var Module = fx.Options(
	fx.Provide(New),
	fx.Provide(func(s *Store) interfaces.ProfileStore { return s }),
)

var (
	ErrStoreFull = errors.New("store is full")
	ErrDuplicate = errors.New("duplicate profile")
)

type Store struct {
	mu           sync.RWMutex
	profiles     []domain.Proxy
	fingerprints map[string]uint32
	groupIds     map[string]uint32
	nextId       uint32
	maxProfiles  int
	metrics      domain.MetricsCollector
	logger       *zap.Logger
}

func New(cfg *config.Config, metrics domain.MetricsCollector, logger *zap.Logger) *Store {
	return &Store{
		fingerprints: make(map[string]uint32),
		groupIds:     make(map[string]uint32),
		nextId:       1,
		maxProfiles:  cfg.Store.MaxProfiles,
		metrics:      metrics,
		logger:       logger.With(zap.String("component", "store")),
	}
}

// Add publishes a copy of p and returns it as stored. Id is always
// reassigned. An empty Group is replaced by the type's default group; an
// Unknown profile without a group stays ungrouped.
func (s *Store) Add(p domain.Proxy) (domain.Proxy, error) {
	p = p.Clone()
	p.Group = p.GroupOrDefault()
	fingerprint := profile.Fingerprint(&p)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxProfiles > 0 && len(s.profiles) >= s.maxProfiles {
		s.metrics.RecordRejected(p.Type, "full")
		return domain.Proxy{}, fmt.Errorf("%w: limit %d", ErrStoreFull, s.maxProfiles)
	}
	if id, exists := s.fingerprints[fingerprint]; exists {
		s.metrics.RecordRejected(p.Type, "duplicate")
		return domain.Proxy{}, fmt.Errorf("%w: same server as profile %d", ErrDuplicate, id)
	}

	groupId, ok := s.groupIds[p.Group]
	if !ok {
		groupId = uint32(len(s.groupIds))
		s.groupIds[p.Group] = groupId
	}
	p.Id = s.nextId
	p.GroupId = groupId
	s.nextId++

	// Published elements are never rewritten and snapshots are clipped, so
	// appending past a reader's length is invisible to it.
	s.profiles = append(s.profiles, p)
	s.fingerprints[fingerprint] = p.Id

	s.metrics.RecordStored(p.Type)
	s.logger.Debug("profile stored",
		zap.Uint32("id", p.Id),
		zap.String("type", p.Type.String()),
		zap.String("group", p.Group),
		zap.String("hostname", p.Hostname))

	return p.Clone(), nil
}

// Get returns the profile with the given Id.
func (s *Store) Get(id uint32) (domain.Proxy, bool) {
	snapshot := s.Snapshot()
	i, found := slices.BinarySearchFunc(snapshot, id, func(p domain.Proxy, id uint32) int {
		switch {
		case p.Id < id:
			return -1
		case p.Id > id:
			return 1
		default:
			return 0
		}
	})
	if !found {
		return domain.Proxy{}, false
	}
	return snapshot[i].Clone(), true
}

// Snapshot returns the published profiles in insertion order. The slice is
// shared with other readers and must be treated as read-only.
func (s *Store) Snapshot() []domain.Proxy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clip(s.profiles)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// CountByType tallies the stored profiles per protocol.
func (s *Store) CountByType() map[domain.ProxyType]int {
	counts := make(map[domain.ProxyType]int)
	for _, p := range s.Snapshot() {
		counts[p.Type]++
	}
	return counts
}

// GroupId returns the identifier assigned to a group name.
func (s *Store) GroupId(group string) (uint32, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.groupIds[group]
	return id, ok
}
