package profile

import (
	"slices"

	"subprofile/internal/domain"
)

// TLS groups the handshake settings shared by every TLS-capable protocol.
type TLS struct {
	Enabled               bool
	Mode                  string
	ServerName            string
	SNI                   string
	AllowInsecure         domain.Tribool
	TLS13                 domain.Tribool
	DisableSNI            domain.Tribool
	Fingerprint           string
	ClientFingerprint     string
	Alpn                  string
	AlpnList              []string
	Ca                    string
	CaStr                 string
	EchEnable             domain.Tribool
	EchConfig             string
	SupportX25519Mlkem768 domain.Tribool
}

func tlsFrom(p *domain.Proxy) TLS {
	return TLS{
		Enabled:               p.TLSSecure,
		Mode:                  p.TLSStr,
		ServerName:            p.ServerName,
		SNI:                   p.SNI,
		AllowInsecure:         p.AllowInsecure,
		TLS13:                 p.TLS13,
		DisableSNI:            p.DisableSNI,
		Fingerprint:           p.Fingerprint,
		ClientFingerprint:     p.ClientFingerprint,
		Alpn:                  p.Alpn,
		AlpnList:              slices.Clone(p.AlpnList),
		Ca:                    p.Ca,
		CaStr:                 p.CaStr,
		EchEnable:             p.EchEnable,
		EchConfig:             p.EchConfig,
		SupportX25519Mlkem768: p.SupportX25519Mlkem768,
	}
}

func (t TLS) apply(p *domain.Proxy) {
	p.TLSSecure = t.Enabled
	p.TLSStr = t.Mode
	p.ServerName = t.ServerName
	p.SNI = t.SNI
	p.AllowInsecure = t.AllowInsecure
	p.TLS13 = t.TLS13
	p.DisableSNI = t.DisableSNI
	p.Fingerprint = t.Fingerprint
	p.ClientFingerprint = t.ClientFingerprint
	p.Alpn = t.Alpn
	p.AlpnList = slices.Clone(t.AlpnList)
	p.Ca = t.Ca
	p.CaStr = t.CaStr
	p.EchEnable = t.EchEnable
	p.EchConfig = t.EchConfig
	p.SupportX25519Mlkem768 = t.SupportX25519Mlkem768
}

// Transport describes the obfuscation layer wrapped around the base protocol
// (ws, grpc, h2, quic, httpupgrade...).
type Transport struct {
	Network                  string
	FakeType                 string
	Host                     string
	Path                     string
	Edge                     string
	QUICSecure               string
	QUICSecret               string
	WsPath                   string
	WsHeaders                string
	WsEarlyDataHeaderName    string
	WsMaxEarlyData           int
	GrpcServiceName          string
	GRPCMode                 string
	V2rayHttpUpgrade         domain.Tribool
	V2rayHttpUpgradeFastOpen domain.Tribool
}

func transportFrom(p *domain.Proxy) Transport {
	return Transport{
		Network:                  p.TransferProtocol,
		FakeType:                 p.FakeType,
		Host:                     p.Host,
		Path:                     p.Path,
		Edge:                     p.Edge,
		QUICSecure:               p.QUICSecure,
		QUICSecret:               p.QUICSecret,
		WsPath:                   p.WsPath,
		WsHeaders:                p.WsHeaders,
		WsEarlyDataHeaderName:    p.WsEarlyDataHeaderName,
		WsMaxEarlyData:           p.WsMaxEarlyData,
		GrpcServiceName:          p.GrpcServiceName,
		GRPCMode:                 p.GRPCMode,
		V2rayHttpUpgrade:         p.V2rayHttpUpgrade,
		V2rayHttpUpgradeFastOpen: p.V2rayHttpUpgradeFastOpen,
	}
}

func (t Transport) apply(p *domain.Proxy) {
	p.TransferProtocol = t.Network
	p.FakeType = t.FakeType
	p.Host = t.Host
	p.Path = t.Path
	p.Edge = t.Edge
	p.QUICSecure = t.QUICSecure
	p.QUICSecret = t.QUICSecret
	p.WsPath = t.WsPath
	p.WsHeaders = t.WsHeaders
	p.WsEarlyDataHeaderName = t.WsEarlyDataHeaderName
	p.WsMaxEarlyData = t.WsMaxEarlyData
	p.GrpcServiceName = t.GrpcServiceName
	p.GRPCMode = t.GRPCMode
	p.V2rayHttpUpgrade = t.V2rayHttpUpgrade
	p.V2rayHttpUpgradeFastOpen = t.V2rayHttpUpgradeFastOpen
}

// Smux is the sing-box style multiplex block.
type Smux struct {
	Enabled        domain.Tribool
	Protocol       string
	MaxConnections int
	MaxStreams     int
	MinStreams     int
	Padding        domain.Tribool
	Statistic      domain.Tribool
	OnlyTCP        domain.Tribool
}

func smuxFrom(p *domain.Proxy) Smux {
	return Smux{
		Enabled:        p.SmuxEnabled,
		Protocol:       p.Multiplexing,
		MaxConnections: p.SmuxMaxConnections,
		MaxStreams:     p.SmuxMaxStreams,
		MinStreams:     p.SmuxMinStreams,
		Padding:        p.SmuxPadding,
		Statistic:      p.SmuxStatistic,
		OnlyTCP:        p.SmuxOnlyTcp,
	}
}

func (s Smux) apply(p *domain.Proxy) {
	p.SmuxEnabled = s.Enabled
	p.Multiplexing = s.Protocol
	p.SmuxMaxConnections = s.MaxConnections
	p.SmuxMaxStreams = s.MaxStreams
	p.SmuxMinStreams = s.MinStreams
	p.SmuxPadding = s.Padding
	p.SmuxStatistic = s.Statistic
	p.SmuxOnlyTcp = s.OnlyTCP
}

// QUICWindows holds the receive-window tuning exposed by QUIC based protocols.
type QUICWindows struct {
	InitialStreamReceiveWindow     uint32
	MaxStreamReceiveWindow         uint32
	InitialConnectionReceiveWindow uint32
	MaxConnectionReceiveWindow     uint32
}

func quicWindowsFrom(p *domain.Proxy) QUICWindows {
	return QUICWindows{
		InitialStreamReceiveWindow:     p.InitialStreamReceiveWindow,
		MaxStreamReceiveWindow:         p.MaxStreamReceiveWindow,
		InitialConnectionReceiveWindow: p.InitialConnectionReceiveWindow,
		MaxConnectionReceiveWindow:     p.MaxConnectionReceiveWindow,
	}
}

func (w QUICWindows) apply(p *domain.Proxy) {
	p.InitialStreamReceiveWindow = w.InitialStreamReceiveWindow
	p.MaxStreamReceiveWindow = w.MaxStreamReceiveWindow
	p.InitialConnectionReceiveWindow = w.InitialConnectionReceiveWindow
	p.MaxConnectionReceiveWindow = w.MaxConnectionReceiveWindow
}
