package profile

import (
	"slices"

	"subprofile/internal/domain"
)

type Shadowsocks struct {
	Method       string
	Password     string
	Plugin       string
	PluginOption string
	UDP          domain.Tribool
	UDPoverTCP   domain.Tribool
	TCPFastOpen  domain.Tribool
	Smux         Smux
}

func (Shadowsocks) Type() domain.ProxyType { return domain.ProxyTypeShadowsocks }

func (v Shadowsocks) apply(p *domain.Proxy) {
	p.EncryptMethod = v.Method
	p.Password = v.Password
	p.Plugin = v.Plugin
	p.PluginOption = v.PluginOption
	p.UDP = v.UDP
	p.UDPoverTCP = v.UDPoverTCP
	p.TCPFastOpen = v.TCPFastOpen
	v.Smux.apply(p)
}

type ShadowsocksR struct {
	Method        string
	Password      string
	Protocol      string
	ProtocolParam string
	OBFS          string
	OBFSParam     string
	UDP           domain.Tribool
	TCPFastOpen   domain.Tribool
}

func (ShadowsocksR) Type() domain.ProxyType { return domain.ProxyTypeShadowsocksR }

func (v ShadowsocksR) apply(p *domain.Proxy) {
	p.EncryptMethod = v.Method
	p.Password = v.Password
	p.Protocol = v.Protocol
	p.ProtocolParam = v.ProtocolParam
	p.OBFS = v.OBFS
	p.OBFSParam = v.OBFSParam
	p.UDP = v.UDP
	p.TCPFastOpen = v.TCPFastOpen
}

type VMess struct {
	UserID         string
	AlterID        uint16
	Cipher         string
	PacketEncoding string
	TLS            TLS
	Transport      Transport
	Smux           Smux
	UDP            domain.Tribool
	XUDP           domain.Tribool
	TCPFastOpen    domain.Tribool
}

func (VMess) Type() domain.ProxyType { return domain.ProxyTypeVMess }

func (v VMess) apply(p *domain.Proxy) {
	p.UserId = v.UserID
	p.AlterId = v.AlterID
	p.EncryptMethod = v.Cipher
	p.PacketEncoding = v.PacketEncoding
	v.TLS.apply(p)
	v.Transport.apply(p)
	v.Smux.apply(p)
	p.UDP = v.UDP
	p.XUDP = v.XUDP
	p.TCPFastOpen = v.TCPFastOpen
}

// Reality carries the REALITY handshake parameters of a VLESS profile.
type Reality struct {
	PublicKey string
	ShortID   string
}

type VLESS struct {
	UserID         string
	Flow           string
	XTLS           uint32
	PacketEncoding string
	Reality        Reality
	TLS            TLS
	Transport      Transport
	Smux           Smux
	UDP            domain.Tribool
	XUDP           domain.Tribool
	TCPFastOpen    domain.Tribool
}

func (VLESS) Type() domain.ProxyType { return domain.ProxyTypeVLESS }

func (v VLESS) apply(p *domain.Proxy) {
	p.UserId = v.UserID
	p.Flow = v.Flow
	p.XTLS = v.XTLS
	p.PacketEncoding = v.PacketEncoding
	p.PublicKey = v.Reality.PublicKey
	p.ShortID = v.Reality.ShortID
	v.TLS.apply(p)
	v.Transport.apply(p)
	v.Smux.apply(p)
	p.UDP = v.UDP
	p.XUDP = v.XUDP
	p.TCPFastOpen = v.TCPFastOpen
}

type Trojan struct {
	Password    string
	TLS         TLS
	Transport   Transport
	Smux        Smux
	UDP         domain.Tribool
	TCPFastOpen domain.Tribool
}

func (Trojan) Type() domain.ProxyType { return domain.ProxyTypeTrojan }

func (v Trojan) apply(p *domain.Proxy) {
	p.Password = v.Password
	v.TLS.apply(p)
	v.Transport.apply(p)
	v.Smux.apply(p)
	p.UDP = v.UDP
	p.TCPFastOpen = v.TCPFastOpen
}

type Snell struct {
	PSK         string
	Version     uint16
	OBFS        string
	OBFSHost    string
	UDP         domain.Tribool
	TCPFastOpen domain.Tribool
}

func (Snell) Type() domain.ProxyType { return domain.ProxyTypeSnell }

func (v Snell) apply(p *domain.Proxy) {
	p.Password = v.PSK
	p.SnellVersion = v.Version
	p.OBFS = v.OBFS
	p.Host = v.OBFSHost
	p.UDP = v.UDP
	p.TCPFastOpen = v.TCPFastOpen
}

// HTTP covers both plain HTTP and HTTPS proxies; TLS.Enabled selects the
// discriminant.
type HTTP struct {
	Username    string
	Password    string
	TLS         TLS
	TCPFastOpen domain.Tribool
}

func (v HTTP) Type() domain.ProxyType {
	if v.TLS.Enabled {
		return domain.ProxyTypeHTTPS
	}
	return domain.ProxyTypeHTTP
}

func (v HTTP) apply(p *domain.Proxy) {
	p.Username = v.Username
	p.Password = v.Password
	v.TLS.apply(p)
	p.TCPFastOpen = v.TCPFastOpen
}

type SOCKS5 struct {
	Username    string
	Password    string
	TLS         TLS
	UDP         domain.Tribool
	TCPFastOpen domain.Tribool
}

func (SOCKS5) Type() domain.ProxyType { return domain.ProxyTypeSOCKS5 }

func (v SOCKS5) apply(p *domain.Proxy) {
	p.Username = v.Username
	p.Password = v.Password
	v.TLS.apply(p)
	p.UDP = v.UDP
	p.TCPFastOpen = v.TCPFastOpen
}

type WireGuard struct {
	SelfIP       string
	SelfIPv6     string
	PrivateKey   string
	PublicKey    string
	PreSharedKey string
	DNSServers   []string
	MTU          uint16
	// AllowedIPs falls back to domain.DefaultAllowedIPs when empty.
	AllowedIPs string
	KeepAlive  uint16
	ClientID   string
	UDP        domain.Tribool
}

func (WireGuard) Type() domain.ProxyType { return domain.ProxyTypeWireGuard }

func (v WireGuard) apply(p *domain.Proxy) {
	p.SelfIP = v.SelfIP
	p.SelfIPv6 = v.SelfIPv6
	p.PrivateKey = v.PrivateKey
	p.PublicKey = v.PublicKey
	p.PreSharedKey = v.PreSharedKey
	p.DnsServers = slices.Clone(v.DNSServers)
	p.Mtu = v.MTU
	if v.AllowedIPs != "" {
		p.AllowedIPs = v.AllowedIPs
	}
	p.KeepAlive = v.KeepAlive
	p.ClientId = v.ClientID
	p.UDP = v.UDP
}

// Bandwidth is the up/down pair used by the Hysteria family. The string
// form keeps the source unit ("100 Mbps"), the numeric form is in Mbps.
type Bandwidth struct {
	Up        string
	UpSpeed   uint32
	Down      string
	DownSpeed uint32
}

func bandwidthFrom(p *domain.Proxy) Bandwidth {
	return Bandwidth{Up: p.Up, UpSpeed: p.UpSpeed, Down: p.Down, DownSpeed: p.DownSpeed}
}

func (b Bandwidth) apply(p *domain.Proxy) {
	p.Up = b.Up
	p.UpSpeed = b.UpSpeed
	p.Down = b.Down
	p.DownSpeed = b.DownSpeed
}

type Hysteria struct {
	Ports               string
	Protocol            string
	Auth                string
	AuthStr             string
	OBFS                string
	Bandwidth           Bandwidth
	TLS                 TLS
	RecvWindowConn      uint32
	RecvWindow          uint32
	DisableMtuDiscovery domain.Tribool
	HopInterval         uint32
	FastOpen            domain.Tribool
	UDP                 domain.Tribool
	TCPFastOpen         domain.Tribool
}

func (Hysteria) Type() domain.ProxyType { return domain.ProxyTypeHysteria }

func (v Hysteria) apply(p *domain.Proxy) {
	p.Ports = v.Ports
	p.Protocol = v.Protocol
	p.Auth = v.Auth
	p.AuthStr = v.AuthStr
	p.OBFS = v.OBFS
	v.Bandwidth.apply(p)
	v.TLS.apply(p)
	p.RecvWindowConn = v.RecvWindowConn
	p.RecvWindow = v.RecvWindow
	p.DisableMtuDiscovery = v.DisableMtuDiscovery
	p.HopInterval = v.HopInterval
	p.FastOpen = v.FastOpen
	p.UDP = v.UDP
	p.TCPFastOpen = v.TCPFastOpen
}

type Hysteria2 struct {
	Ports        string
	Password     string
	OBFS         string
	OBFSPassword string
	Bandwidth    Bandwidth
	TLS          TLS
	CWND         uint32
	HopInterval  uint32
	Windows      QUICWindows
	UDP          domain.Tribool
	TCPFastOpen  domain.Tribool
}

func (Hysteria2) Type() domain.ProxyType { return domain.ProxyTypeHysteria2 }

func (v Hysteria2) apply(p *domain.Proxy) {
	p.Ports = v.Ports
	p.Password = v.Password
	p.OBFS = v.OBFS
	p.OBFSPassword = v.OBFSPassword
	v.Bandwidth.apply(p)
	v.TLS.apply(p)
	p.CWND = v.CWND
	p.HopInterval = v.HopInterval
	v.Windows.apply(p)
	p.UDP = v.UDP
	p.TCPFastOpen = v.TCPFastOpen
}

type TUIC struct {
	UUID                  string
	Password              string
	Token                 string
	Version               uint16
	IP                    string
	HeartbeatInterval     string
	TLS                   TLS
	ReduceRTT             domain.Tribool
	RequestTimeout        uint32
	UdpRelayMode          string
	CongestionController  string
	MaxUdpRelayPacketSize uint32
	MaxOpenStreams        uint32
	FastOpen              domain.Tribool
	UDP                   domain.Tribool
	TCPFastOpen           domain.Tribool
}

func (TUIC) Type() domain.ProxyType { return domain.ProxyTypeTUIC }

func (v TUIC) apply(p *domain.Proxy) {
	p.UUID = v.UUID
	p.Password = v.Password
	p.Auth = v.Token
	p.TuicVersion = v.Version
	p.IP = v.IP
	p.HeartbeatInterval = v.HeartbeatInterval
	v.TLS.apply(p)
	p.ReduceRTT = v.ReduceRTT
	p.RequestTimeout = v.RequestTimeout
	p.UdpRelayMode = v.UdpRelayMode
	p.CongestionController = v.CongestionController
	p.MaxUdpRelayPacketSize = v.MaxUdpRelayPacketSize
	p.MaxOpenStreams = v.MaxOpenStreams
	p.FastOpen = v.FastOpen
	p.UDP = v.UDP
	p.TCPFastOpen = v.TCPFastOpen
}

type AnyTLS struct {
	Password                 string
	TLS                      TLS
	IdleSessionCheckInterval uint32
	IdleSessionTimeout       uint32
	MinIdleSession           uint32
	UDP                      domain.Tribool
	TCPFastOpen              domain.Tribool
}

func (AnyTLS) Type() domain.ProxyType { return domain.ProxyTypeAnyTLS }

func (v AnyTLS) apply(p *domain.Proxy) {
	p.Password = v.Password
	v.TLS.apply(p)
	p.IdleSessionCheckInterval = v.IdleSessionCheckInterval
	p.IdleSessionTimeout = v.IdleSessionTimeout
	p.MinIdleSession = v.MinIdleSession
	p.UDP = v.UDP
	p.TCPFastOpen = v.TCPFastOpen
}

type Mieru struct {
	Username     string
	Password     string
	Ports        string
	Transport    string
	Multiplexing string
	UDP          domain.Tribool
}

func (Mieru) Type() domain.ProxyType { return domain.ProxyTypeMieru }

func (v Mieru) apply(p *domain.Proxy) {
	p.Username = v.Username
	p.Password = v.Password
	p.Ports = v.Ports
	p.TransferProtocol = v.Transport
	p.Multiplexing = v.Multiplexing
	p.UDP = v.UDP
}
