package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"subprofile/internal/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		proxy       func() domain.Proxy
		expectError string
	}{
		{
			name: "Usable shadowsocks",
			proxy: func() domain.Proxy {
				p := domain.NewProxy(domain.ProxyTypeShadowsocks)
				p.Hostname = "example.com"
				p.Port = 8388
				return p
			},
		},
		{
			name: "Max port",
			proxy: func() domain.Proxy {
				p := domain.NewProxy(domain.ProxyTypeTrojan)
				p.Hostname = "example.com"
				p.Port = 65535
				return p
			},
		},
		{
			name: "Unknown type",
			proxy: func() domain.Proxy {
				p := domain.NewProxy(domain.ProxyTypeUnknown)
				p.Hostname = "example.com"
				p.Port = 443
				return p
			},
			expectError: "field 'Type' failed validation: proxytype",
		},
		{
			name: "Out of range type",
			proxy: func() domain.Proxy {
				p := domain.NewProxy(domain.ProxyType(100))
				p.Hostname = "example.com"
				p.Port = 443
				return p
			},
			expectError: "proxytype",
		},
		{
			name: "Unset port",
			proxy: func() domain.Proxy {
				p := domain.NewProxy(domain.ProxyTypeVMess)
				p.Hostname = "example.com"
				return p
			},
			expectError: "field 'Port' failed validation: min",
		},
		{
			name: "Blank hostname",
			proxy: func() domain.Proxy {
				p := domain.NewProxy(domain.ProxyTypeVMess)
				p.Hostname = "   "
				p.Port = 443
				return p
			},
			expectError: "field 'Hostname' failed validation: required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.proxy()
			err := Validate(&p)
			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.expectError)
			}
		})
	}
}

func TestValidateIgnoresUnusedFields(t *testing.T) {
	p := domain.NewProxy(domain.ProxyTypeSOCKS5)
	p.Hostname = "127.0.0.1"
	p.Port = 1080
	// WireGuard-only defaults stay in place on a SOCKS5 record.
	assert.Equal(t, domain.DefaultAllowedIPs, p.AllowedIPs)
	assert.NoError(t, Validate(&p))
}
