package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"subprofile/internal/common"
	"subprofile/internal/config"
	"subprofile/internal/domain"
)

func TestApplicationPublishesProfiles(t *testing.T) {
	application := NewApplication(
		common.WithLogger(zap.NewNop()),
		common.WithConfig(config.Default()),
		common.WithRegisterer(prometheus.NewRegistry()),
		common.WithEnv("test"),
	)
	require.NoError(t, application.Err())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, application.Start(ctx))

	for i, typ := range domain.ProxyTypes() {
		p := domain.NewProxy(typ)
		p.Hostname = fmt.Sprintf("node%d.example.com", i)
		p.Port = uint16(1000 + i)
		require.NoError(t, application.Submit(ctx, p))
	}

	require.NoError(t, application.Stop(ctx))

	snapshot := application.Store().Snapshot()
	require.Len(t, snapshot, len(domain.ProxyTypes()))
	for _, p := range snapshot {
		group, ok := p.Type.DefaultGroup()
		require.True(t, ok)
		assert.Equal(t, group, p.Group, p.Type.String())
	}
}

func TestApplicationLoadsConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"store":{"max_profiles":1}}`), 0644))
	t.Setenv("CONFIG_PATH", configPath)

	application := NewApplication(common.WithRegisterer(prometheus.NewRegistry()))
	require.NoError(t, application.Err())

	ctx := context.Background()
	require.NoError(t, application.Start(ctx))

	for _, host := range []string{"a.example.com", "b.example.com"} {
		p := domain.NewProxy(domain.ProxyTypeTrojan)
		p.Hostname = host
		p.Port = 443
		require.NoError(t, application.Submit(ctx, p))
	}
	require.NoError(t, application.Stop(ctx))

	assert.Equal(t, 1, application.Store().Len())
}

func TestApplicationMissingConfig(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.json"))

	application := NewApplication(common.WithRegisterer(prometheus.NewRegistry()))
	require.Error(t, application.Err())

	p := domain.NewProxy(domain.ProxyTypeTrojan)
	p.Hostname = "trojan.example.com"
	p.Port = 443
	err := application.Submit(context.Background(), p)
	assert.Equal(t, application.Err(), err)
}
