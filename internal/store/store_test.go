package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"subprofile/internal/config"
	"subprofile/internal/domain"
	"subprofile/internal/metrics"
)

func newTestStore(t *testing.T, maxProfiles int) *Store {
	t.Helper()
	cfg := config.Default()
	cfg.Store.MaxProfiles = maxProfiles
	collector := metrics.NewCollector(prometheus.NewRegistry(), zap.NewNop())
	return New(cfg, collector, zap.NewNop())
}

func newProfile(t domain.ProxyType, host string, port uint16) domain.Proxy {
	p := domain.NewProxy(t)
	p.Hostname = host
	p.Port = port
	return p
}

func TestAddAssignsIdentity(t *testing.T) {
	s := newTestStore(t, 0)

	ss, err := s.Add(newProfile(domain.ProxyTypeShadowsocks, "a.example.com", 8388))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), ss.Id)
	assert.Equal(t, "SSProvider", ss.Group)
	assert.Equal(t, uint32(0), ss.GroupId)

	vmess, err := s.Add(newProfile(domain.ProxyTypeVMess, "b.example.com", 443))
	require.NoError(t, err)
	assert.Equal(t, uint32(2), vmess.Id)
	assert.Equal(t, "V2RayProvider", vmess.Group)
	assert.Equal(t, uint32(1), vmess.GroupId)

	ss2, err := s.Add(newProfile(domain.ProxyTypeShadowsocks, "c.example.com", 8388))
	require.NoError(t, err)
	assert.Equal(t, uint32(3), ss2.Id)
	assert.Equal(t, ss.GroupId, ss2.GroupId)

	id, ok := s.GroupId("V2RayProvider")
	assert.True(t, ok)
	assert.Equal(t, uint32(1), id)
}

func TestAddKeepsExplicitGroup(t *testing.T) {
	s := newTestStore(t, 0)

	p := newProfile(domain.ProxyTypeTrojan, "t.example.com", 443)
	p.Group = "MyAirport"
	stored, err := s.Add(p)
	require.NoError(t, err)
	assert.Equal(t, "MyAirport", stored.Group)
}

func TestAddUnknownStaysUngrouped(t *testing.T) {
	s := newTestStore(t, 0)

	stored, err := s.Add(newProfile(domain.ProxyTypeUnknown, "x.example.com", 1))
	require.NoError(t, err)
	assert.Empty(t, stored.Group)
	assert.Equal(t, domain.ProxyTypeUnknown, stored.Type)
}

func TestAddRejectsDuplicates(t *testing.T) {
	s := newTestStore(t, 0)

	p := newProfile(domain.ProxyTypeTrojan, "t.example.com", 443)
	p.Password = "pw"
	_, err := s.Add(p)
	require.NoError(t, err)

	p.Remark = "same server, new name"
	_, err = s.Add(p)
	assert.True(t, errors.Is(err, ErrDuplicate))
	assert.Equal(t, 1, s.Len())
}

func TestAddRespectsLimit(t *testing.T) {
	s := newTestStore(t, 2)

	for i := 0; i < 2; i++ {
		_, err := s.Add(newProfile(domain.ProxyTypeSOCKS5, fmt.Sprintf("h%d.example.com", i), 1080))
		require.NoError(t, err)
	}

	_, err := s.Add(newProfile(domain.ProxyTypeSOCKS5, "h2.example.com", 1080))
	assert.True(t, errors.Is(err, ErrStoreFull))
	assert.Equal(t, 2, s.Len())
}

func TestStoredValueIsIsolated(t *testing.T) {
	s := newTestStore(t, 0)

	p := newProfile(domain.ProxyTypeWireGuard, "wg.example.com", 51820)
	p.DnsServers = []string{"1.1.1.1"}
	stored, err := s.Add(p)
	require.NoError(t, err)

	p.DnsServers[0] = "8.8.8.8"
	stored.DnsServers[0] = "9.9.9.9"

	got, ok := s.Get(stored.Id)
	require.True(t, ok)
	assert.Equal(t, []string{"1.1.1.1"}, got.DnsServers)
	assert.Equal(t, domain.DefaultAllowedIPs, got.AllowedIPs)
}

func TestGet(t *testing.T) {
	s := newTestStore(t, 0)
	for i := 0; i < 5; i++ {
		_, err := s.Add(newProfile(domain.ProxyTypeHTTP, fmt.Sprintf("h%d.example.com", i), 8080))
		require.NoError(t, err)
	}

	p, ok := s.Get(4)
	require.True(t, ok)
	assert.Equal(t, "h3.example.com", p.Hostname)

	_, ok = s.Get(0)
	assert.False(t, ok)
	_, ok = s.Get(6)
	assert.False(t, ok)
}

func TestSnapshotIsStable(t *testing.T) {
	s := newTestStore(t, 0)
	_, err := s.Add(newProfile(domain.ProxyTypeTUIC, "a.example.com", 443))
	require.NoError(t, err)

	before := s.Snapshot()
	_, err = s.Add(newProfile(domain.ProxyTypeTUIC, "b.example.com", 443))
	require.NoError(t, err)

	assert.Len(t, before, 1)
	assert.Len(t, s.Snapshot(), 2)

	// Appending to a snapshot must not leak into the store.
	_ = append(before, newProfile(domain.ProxyTypeMieru, "c.example.com", 1))
	assert.Equal(t, "b.example.com", s.Snapshot()[1].Hostname)
}

func TestCountByType(t *testing.T) {
	s := newTestStore(t, 0)
	profiles := []domain.Proxy{
		newProfile(domain.ProxyTypeShadowsocks, "a", 1),
		newProfile(domain.ProxyTypeShadowsocks, "b", 1),
		newProfile(domain.ProxyTypeHysteria2, "c", 1),
	}
	for _, p := range profiles {
		_, err := s.Add(p)
		require.NoError(t, err)
	}

	assert.Equal(t, map[domain.ProxyType]int{
		domain.ProxyTypeShadowsocks: 2,
		domain.ProxyTypeHysteria2:   1,
	}, s.CountByType())
}

func TestConcurrentAddAndRead(t *testing.T) {
	s := newTestStore(t, 0)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, err := s.Add(newProfile(domain.ProxyTypeVLESS, fmt.Sprintf("w%d-%d.example.com", w, i), 443))
				assert.NoError(t, err)
				for _, p := range s.Snapshot() {
					assert.NotZero(t, p.Id)
				}
			}
		}(w)
	}
	wg.Wait()

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 400)
	for i, p := range snapshot {
		assert.Equal(t, uint32(i+1), p.Id)
	}
}
