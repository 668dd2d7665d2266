package domain

import (
	"encoding"
	"fmt"
	"strings"
)

// ProxyType discriminates the protocol a Proxy describes.
type ProxyType int

const (
	ProxyTypeUnknown ProxyType = iota
	ProxyTypeShadowsocks
	ProxyTypeShadowsocksR
	ProxyTypeVMess
	ProxyTypeVLESS
	ProxyTypeTrojan
	ProxyTypeSnell
	ProxyTypeHTTP
	ProxyTypeHTTPS
	ProxyTypeSOCKS5
	ProxyTypeWireGuard
	ProxyTypeHysteria
	ProxyTypeHysteria2
	ProxyTypeTUIC
	ProxyTypeAnyTLS
	ProxyTypeMieru

	proxyTypeCount
)

const (
	SSDefaultGroup        = "SSProvider"
	SSRDefaultGroup       = "SSRProvider"
	V2RayDefaultGroup     = "V2RayProvider"
	VLESSDefaultGroup     = "VLESSProvider"
	SocksDefaultGroup     = "SocksProvider"
	HTTPDefaultGroup      = "HTTPProvider"
	TrojanDefaultGroup    = "TrojanProvider"
	SnellDefaultGroup     = "SnellProvider"
	WireGuardDefaultGroup = "WireGuardProvider"
	HysteriaDefaultGroup  = "HysteriaProvider"
	Hysteria2DefaultGroup = "Hysteria2Provider"
	TUICDefaultGroup      = "TUICProvider"
	AnyTLSDefaultGroup    = "AnyTLSProvider"
	MieruDefaultGroup     = "MieruProvider"
)

var proxyTypeNames = [...]string{
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

// Unknown deliberately has no entry.
var defaultGroups = [...]string{
	ProxyTypeUnknown:      "",
	ProxyTypeShadowsocks:  SSDefaultGroup,
	ProxyTypeShadowsocksR: SSRDefaultGroup,
	ProxyTypeVMess:        V2RayDefaultGroup,
	ProxyTypeVLESS:        VLESSDefaultGroup,
	ProxyTypeTrojan:       TrojanDefaultGroup,
	ProxyTypeSnell:        SnellDefaultGroup,
	ProxyTypeHTTP:         HTTPDefaultGroup,
	ProxyTypeHTTPS:        HTTPDefaultGroup,
	ProxyTypeSOCKS5:       SocksDefaultGroup,
	ProxyTypeWireGuard:    WireGuardDefaultGroup,
	ProxyTypeHysteria:     HysteriaDefaultGroup,
	ProxyTypeHysteria2:    Hysteria2DefaultGroup,
	ProxyTypeTUIC:         TUICDefaultGroup,
	ProxyTypeAnyTLS:       AnyTLSDefaultGroup,
	ProxyTypeMieru:        MieruDefaultGroup,
}

// Both tables must be keyed up to the last enumerator. Adding a ProxyType
// without extending them makes one of these constant indexes go out of
// range and the package stops compiling.
var (
	_ = [1]struct{}{}[len(proxyTypeNames)-int(proxyTypeCount)]
	_ = [1]struct{}{}[len(defaultGroups)-int(proxyTypeCount)]
)

// Valid reports whether t is one of the declared enumerators, Unknown included.
func (t ProxyType) Valid() bool {
	return t >= ProxyTypeUnknown && t < proxyTypeCount
}

// String returns the short display name. Values outside the enumeration
// map to "Unknown".
func (t ProxyType) String() string {
	if !t.Valid() {
		return proxyTypeNames[ProxyTypeUnknown]
	}
	return proxyTypeNames[t]
}

// DefaultGroup returns the provider group used when a profile carries no
// explicit group. ok is false for Unknown and out-of-range values.
func (t ProxyType) DefaultGroup() (group string, ok bool) {
	if !t.Valid() {
		return "", false
	}
	group = defaultGroups[t]
	return group, group != ""
}

// ProxyTypes lists every protocol enumerator, Unknown excluded.
func ProxyTypes() []ProxyType {
	types := make([]ProxyType, 0, proxyTypeCount-1)
	for t := ProxyTypeUnknown + 1; t < proxyTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

// ParseProxyType maps a display name back to its ProxyType, ignoring case.
func ParseProxyType(name string) (ProxyType, error) {
	name = strings.TrimSpace(name)
	for t, n := range proxyTypeNames {
		if strings.EqualFold(n, name) {
			return ProxyType(t), nil
		}
	}
	return ProxyTypeUnknown, fmt.Errorf("unknown proxy type %q", name)
}

func (t ProxyType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText degrades unrecognised names to Unknown instead of failing.
func (t *ProxyType) UnmarshalText(text []byte) error {
	parsed, err := ParseProxyType(string(text))
	if err != nil {
		parsed = ProxyTypeUnknown
	}
	*t = parsed
	return nil
}

var (
	_ encoding.TextMarshaler   = ProxyTypeUnknown
	_ encoding.TextUnmarshaler = (*ProxyType)(nil)
)
