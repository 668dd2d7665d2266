// Package profile holds the per-protocol form of a proxy profile: a shared
// Common part plus exactly one Variant carrying the fields its protocol
// understands. Flatten and FromProxy convert to and from the flat
// domain.Proxy record used at serialization boundaries.
package profile

import (
	"errors"
	"fmt"
	"slices"

	"subprofile/internal/domain"
)

var ErrUnknownType = errors.New("unknown proxy type")

// Common is the part of a profile every protocol shares.
type Common struct {
	Id              uint32
	GroupId         uint32
	Group           string
	Remark          string
	Hostname        string
	Port            uint16
	UnderlyingProxy string
	IPVersion       string
	TestURL         string
}

func commonFrom(p *domain.Proxy) Common {
	return Common{
		Id:              p.Id,
		GroupId:         p.GroupId,
		Group:           p.Group,
		Remark:          p.Remark,
		Hostname:        p.Hostname,
		Port:            p.Port,
		UnderlyingProxy: p.UnderlyingProxy,
		IPVersion:       p.IPVersion,
		TestURL:         p.TestUrl,
	}
}

func (c Common) apply(p *domain.Proxy) {
	p.Id = c.Id
	p.GroupId = c.GroupId
	p.Group = c.Group
	p.Remark = c.Remark
	p.Hostname = c.Hostname
	p.Port = c.Port
	p.UnderlyingProxy = c.UnderlyingProxy
	p.IPVersion = c.IPVersion
	p.TestUrl = c.TestURL
}

// Variant is implemented only by the protocol structs of this package.
type Variant interface {
	Type() domain.ProxyType
	apply(p *domain.Proxy)
}

var (
	_ Variant = Shadowsocks{}
	_ Variant = ShadowsocksR{}
	_ Variant = VMess{}
	_ Variant = VLESS{}
	_ Variant = Trojan{}
	_ Variant = Snell{}
	_ Variant = HTTP{}
	_ Variant = SOCKS5{}
	_ Variant = WireGuard{}
	_ Variant = Hysteria{}
	_ Variant = Hysteria2{}
	_ Variant = TUIC{}
	_ Variant = AnyTLS{}
	_ Variant = Mieru{}
)

type Node struct {
	Common
	Variant Variant
}

func NewNode(common Common, variant Variant) Node {
	return Node{Common: common, Variant: variant}
}

// Type is Unknown for a node without a variant.
func (n Node) Type() domain.ProxyType {
	if n.Variant == nil {
		return domain.ProxyTypeUnknown
	}
	return n.Variant.Type()
}

// Flatten renders the node as a flat record. Fields the variant does not
// own keep their domain.NewProxy defaults.
func Flatten(n Node) domain.Proxy {
	p := domain.NewProxy(n.Type())
	n.Common.apply(&p)
	if n.Variant != nil {
		n.Variant.apply(&p)
	}
	return p
}

// FromProxy lifts a flat record into its variant, dropping every field the
// protocol does not use. Unknown and out-of-range types yield ErrUnknownType.
func FromProxy(p domain.Proxy) (Node, error) {
	variant, err := variantFrom(&p)
	if err != nil {
		return Node{}, err
	}
	return NewNode(commonFrom(&p), variant), nil
}

func variantFrom(p *domain.Proxy) (Variant, error) {
	switch p.Type {
	case domain.ProxyTypeShadowsocks:
		return Shadowsocks{
			Method:       p.EncryptMethod,
			Password:     p.Password,
			Plugin:       p.Plugin,
			PluginOption: p.PluginOption,
			UDP:          p.UDP,
			UDPoverTCP:   p.UDPoverTCP,
			TCPFastOpen:  p.TCPFastOpen,
			Smux:         smuxFrom(p),
		}, nil
	case domain.ProxyTypeShadowsocksR:
		return ShadowsocksR{
			Method:        p.EncryptMethod,
			Password:      p.Password,
			Protocol:      p.Protocol,
			ProtocolParam: p.ProtocolParam,
			OBFS:          p.OBFS,
			OBFSParam:     p.OBFSParam,
			UDP:           p.UDP,
			TCPFastOpen:   p.TCPFastOpen,
		}, nil
	case domain.ProxyTypeVMess:
		return VMess{
			UserID:         p.UserId,
			AlterID:        p.AlterId,
			Cipher:         p.EncryptMethod,
			PacketEncoding: p.PacketEncoding,
			TLS:            tlsFrom(p),
			Transport:      transportFrom(p),
			Smux:           smuxFrom(p),
			UDP:            p.UDP,
			XUDP:           p.XUDP,
			TCPFastOpen:    p.TCPFastOpen,
		}, nil
	case domain.ProxyTypeVLESS:
		return VLESS{
			UserID:         p.UserId,
			Flow:           p.Flow,
			XTLS:           p.XTLS,
			PacketEncoding: p.PacketEncoding,
			Reality:        Reality{PublicKey: p.PublicKey, ShortID: p.ShortID},
			TLS:            tlsFrom(p),
			Transport:      transportFrom(p),
			Smux:           smuxFrom(p),
			UDP:            p.UDP,
			XUDP:           p.XUDP,
			TCPFastOpen:    p.TCPFastOpen,
		}, nil
	case domain.ProxyTypeTrojan:
		return Trojan{
			Password:    p.Password,
			TLS:         tlsFrom(p),
			Transport:   transportFrom(p),
			Smux:        smuxFrom(p),
			UDP:         p.UDP,
			TCPFastOpen: p.TCPFastOpen,
		}, nil
	case domain.ProxyTypeSnell:
		return Snell{
			PSK:         p.Password,
			Version:     p.SnellVersion,
			OBFS:        p.OBFS,
			OBFSHost:    p.Host,
			UDP:         p.UDP,
			TCPFastOpen: p.TCPFastOpen,
		}, nil
	case domain.ProxyTypeHTTP, domain.ProxyTypeHTTPS:
		tls := tlsFrom(p)
		tls.Enabled = p.Type == domain.ProxyTypeHTTPS
		return HTTP{
			Username:    p.Username,
			Password:    p.Password,
			TLS:         tls,
			TCPFastOpen: p.TCPFastOpen,
		}, nil
	case domain.ProxyTypeSOCKS5:
		return SOCKS5{
			Username:    p.Username,
			Password:    p.Password,
			TLS:         tlsFrom(p),
			UDP:         p.UDP,
			TCPFastOpen: p.TCPFastOpen,
		}, nil
	case domain.ProxyTypeWireGuard:
		return WireGuard{
			SelfIP:       p.SelfIP,
			SelfIPv6:     p.SelfIPv6,
			PrivateKey:   p.PrivateKey,
			PublicKey:    p.PublicKey,
			PreSharedKey: p.PreSharedKey,
			DNSServers:   slices.Clone(p.DnsServers),
			MTU:          p.Mtu,
			AllowedIPs:   p.AllowedIPs,
			KeepAlive:    p.KeepAlive,
			ClientID:     p.ClientId,
			UDP:          p.UDP,
		}, nil
	case domain.ProxyTypeHysteria:
		return Hysteria{
			Ports:               p.Ports,
			Protocol:            p.Protocol,
			Auth:                p.Auth,
			AuthStr:             p.AuthStr,
			OBFS:                p.OBFS,
			Bandwidth:           bandwidthFrom(p),
			TLS:                 tlsFrom(p),
			RecvWindowConn:      p.RecvWindowConn,
			RecvWindow:          p.RecvWindow,
			DisableMtuDiscovery: p.DisableMtuDiscovery,
			HopInterval:         p.HopInterval,
			FastOpen:            p.FastOpen,
			UDP:                 p.UDP,
			TCPFastOpen:         p.TCPFastOpen,
		}, nil
	case domain.ProxyTypeHysteria2:
		return Hysteria2{
			Ports:        p.Ports,
			Password:     p.Password,
			OBFS:         p.OBFS,
			OBFSPassword: p.OBFSPassword,
			Bandwidth:    bandwidthFrom(p),
			TLS:          tlsFrom(p),
			CWND:         p.CWND,
			HopInterval:  p.HopInterval,
			Windows:      quicWindowsFrom(p),
			UDP:          p.UDP,
			TCPFastOpen:  p.TCPFastOpen,
		}, nil
	case domain.ProxyTypeTUIC:
		return TUIC{
			UUID:                  p.UUID,
			Password:              p.Password,
			Token:                 p.Auth,
			Version:               p.TuicVersion,
			IP:                    p.IP,
			HeartbeatInterval:     p.HeartbeatInterval,
			TLS:                   tlsFrom(p),
			ReduceRTT:             p.ReduceRTT,
			RequestTimeout:        p.RequestTimeout,
			UdpRelayMode:          p.UdpRelayMode,
			CongestionController:  p.CongestionController,
			MaxUdpRelayPacketSize: p.MaxUdpRelayPacketSize,
			MaxOpenStreams:        p.MaxOpenStreams,
			FastOpen:              p.FastOpen,
			UDP:                   p.UDP,
			TCPFastOpen:           p.TCPFastOpen,
		}, nil
	case domain.ProxyTypeAnyTLS:
		return AnyTLS{
			Password:                 p.Password,
			TLS:                      tlsFrom(p),
			IdleSessionCheckInterval: p.IdleSessionCheckInterval,
			IdleSessionTimeout:       p.IdleSessionTimeout,
			MinIdleSession:           p.MinIdleSession,
			UDP:                      p.UDP,
			TCPFastOpen:              p.TCPFastOpen,
		}, nil
	case domain.ProxyTypeMieru:
		return Mieru{
			Username:     p.Username,
			Password:     p.Password,
			Ports:        p.Ports,
			Transport:    p.TransferProtocol,
			Multiplexing: p.Multiplexing,
			UDP:          p.UDP,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, p.Type)
	}
}
