package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyTypeString(t *testing.T) {
	expected := map[ProxyType]string{
		ProxyTypeUnknown:      "Unknown",
		ProxyTypeShadowsocks:  "SS",
		ProxyTypeShadowsocksR: "SSR",
		ProxyTypeVMess:        "VMess",
		ProxyTypeVLESS:        "VLESS",
		ProxyTypeTrojan:       "Trojan",
		ProxyTypeSnell:        "Snell",
		ProxyTypeHTTP:         "HTTP",
		ProxyTypeHTTPS:        "HTTPS",
		ProxyTypeSOCKS5:       "SOCKS5",
		ProxyTypeWireGuard:    "WireGuard",
		ProxyTypeHysteria:     "Hysteria",
		ProxyTypeHysteria2:    "Hysteria2",
		ProxyTypeTUIC:         "TUIC",
		ProxyTypeAnyTLS:       "AnyTLS",
		ProxyTypeMieru:        "Mieru",
	}
	require.Len(t, expected, int(proxyTypeCount))

	for typ, name := range expected {
		assert.Equal(t, name, typ.String())
	}
}

func TestProxyTypeNamesAreUnique(t *testing.T) {
	seen := make(map[string]ProxyType)
	for typ := ProxyTypeUnknown; typ < proxyTypeCount; typ++ {
		name := typ.String()
		require.NotEmpty(t, name, "type %d has no name", int(typ))
		if prev, ok := seen[name]; ok {
			t.Fatalf("name %q shared by %d and %d", name, int(prev), int(typ))
		}
		seen[name] = typ
	}
}

func TestProxyTypeOutOfRange(t *testing.T) {
	for _, typ := range []ProxyType{-1, proxyTypeCount, 99} {
		assert.False(t, typ.Valid())
		assert.Equal(t, "Unknown", typ.String())

		group, ok := typ.DefaultGroup()
		assert.False(t, ok)
		assert.Empty(t, group)
	}
}

func TestProxyTypeDefaultGroup(t *testing.T) {
	expected := map[ProxyType]string{
		ProxyTypeShadowsocks:  "SSProvider",
		ProxyTypeShadowsocksR: "SSRProvider",
		ProxyTypeVMess:        "V2RayProvider",
		ProxyTypeVLESS:        "VLESSProvider",
		ProxyTypeSOCKS5:       "SocksProvider",
		ProxyTypeHTTP:         "HTTPProvider",
		ProxyTypeHTTPS:        "HTTPProvider",
		ProxyTypeTrojan:       "TrojanProvider",
		ProxyTypeSnell:        "SnellProvider",
		ProxyTypeWireGuard:    "WireGuardProvider",
		ProxyTypeHysteria:     "HysteriaProvider",
		ProxyTypeHysteria2:    "Hysteria2Provider",
		ProxyTypeTUIC:         "TUICProvider",
		ProxyTypeAnyTLS:       "AnyTLSProvider",
		ProxyTypeMieru:        "MieruProvider",
	}

	for _, typ := range ProxyTypes() {
		group, ok := typ.DefaultGroup()
		assert.True(t, ok, typ.String())
		assert.Equal(t, expected[typ], group, typ.String())
	}
	assert.Len(t, ProxyTypes(), len(expected))
}

func TestProxyTypeUnknownHasNoDefaultGroup(t *testing.T) {
	group, ok := ProxyTypeUnknown.DefaultGroup()
	assert.False(t, ok)
	assert.Empty(t, group)
}

func TestParseProxyType(t *testing.T) {
	tests := []struct {
		input       string
		expected    ProxyType
		expectError bool
	}{
		{input: "SS", expected: ProxyTypeShadowsocks},
		{input: "ssr", expected: ProxyTypeShadowsocksR},
		{input: " Hysteria2 ", expected: ProxyTypeHysteria2},
		{input: "https", expected: ProxyTypeHTTPS},
		{input: "Unknown", expected: ProxyTypeUnknown},
		{input: "shadowsocks", expected: ProxyTypeUnknown, expectError: true},
		{input: "", expected: ProxyTypeUnknown, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			typ, err := ParseProxyType(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, typ)
		})
	}

	for _, typ := range ProxyTypes() {
		parsed, err := ParseProxyType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
}

func TestProxyTypeJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Type ProxyType `json:"type"`
	}{Type: ProxyTypeTUIC})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"TUIC"}`, string(data))

	var decoded struct {
		Type ProxyType `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"type":"vless"}`), &decoded))
	assert.Equal(t, ProxyTypeVLESS, decoded.Type)

	// Unrecognised names from untrusted input degrade to Unknown.
	decoded.Type = ProxyTypeVMess
	require.NoError(t, json.Unmarshal([]byte(`{"type":"quantum"}`), &decoded))
	assert.Equal(t, ProxyTypeUnknown, decoded.Type)
}
