package domain

import "slices"

// DefaultAllowedIPs routes everything through a WireGuard peer.
const DefaultAllowedIPs = "0.0.0.0/0, ::/0"

// Proxy is the flat profile record shared by decoders and renderers. Only
// the fields relevant to Type are meaningful; the rest stay at their zero
// value. Id and GroupId are assigned by the owning collection.
type Proxy struct {
	Type     ProxyType `json:"type" yaml:"type"`
	Id       uint32    `json:"id,omitempty" yaml:"id,omitempty"`
	GroupId  uint32    `json:"group_id,omitempty" yaml:"group_id,omitempty"`
	Group    string    `json:"group,omitempty" yaml:"group,omitempty"`
	Remark   string    `json:"remark,omitempty" yaml:"remark,omitempty"`
	Hostname string    `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Port     uint16    `json:"port,omitempty" yaml:"port,omitempty"`

	Username      string `json:"username,omitempty" yaml:"username,omitempty"`
	Password      string `json:"password,omitempty" yaml:"password,omitempty"`
	EncryptMethod string `json:"encrypt_method,omitempty" yaml:"encrypt_method,omitempty"`
	Plugin        string `json:"plugin,omitempty" yaml:"plugin,omitempty"`
	PluginOption  string `json:"plugin_option,omitempty" yaml:"plugin_option,omitempty"`
	Protocol      string `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	ProtocolParam string `json:"protocol_param,omitempty" yaml:"protocol_param,omitempty"`
	OBFS          string `json:"obfs,omitempty" yaml:"obfs,omitempty"`
	OBFSParam     string `json:"obfs_param,omitempty" yaml:"obfs_param,omitempty"`
	UserId        string `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	AlterId       uint16 `json:"alter_id,omitempty" yaml:"alter_id,omitempty"`

	TransferProtocol string `json:"transfer_protocol,omitempty" yaml:"transfer_protocol,omitempty"`
	FakeType         string `json:"fake_type,omitempty" yaml:"fake_type,omitempty"`
	TLSSecure        bool   `json:"tls_secure,omitempty" yaml:"tls_secure,omitempty"`
	Host             string `json:"host,omitempty" yaml:"host,omitempty"`
	Path             string `json:"path,omitempty" yaml:"path,omitempty"`
	Edge             string `json:"edge,omitempty" yaml:"edge,omitempty"`
	QUICSecure       string `json:"quic_secure,omitempty" yaml:"quic_secure,omitempty"`
	QUICSecret       string `json:"quic_secret,omitempty" yaml:"quic_secret,omitempty"`

	SmuxEnabled   Tribool `json:"smux_enabled" yaml:"smux_enabled,omitempty"`
	UDP           Tribool `json:"udp" yaml:"udp,omitempty"`
	XUDP          Tribool `json:"xudp" yaml:"xudp,omitempty"`
	TCPFastOpen   Tribool `json:"tcp_fast_open" yaml:"tcp_fast_open,omitempty"`
	AllowInsecure Tribool `json:"allow_insecure" yaml:"allow_insecure,omitempty"`
	TLS13         Tribool `json:"tls13" yaml:"tls13,omitempty"`
	UDPoverTCP    Tribool `json:"udp_over_tcp" yaml:"udp_over_tcp,omitempty"`

	UnderlyingProxy string `json:"underlying_proxy,omitempty" yaml:"underlying_proxy,omitempty"`
	IPVersion       string `json:"ip_version,omitempty" yaml:"ip_version,omitempty"`

	SnellVersion uint16 `json:"snell_version,omitempty" yaml:"snell_version,omitempty"`
	TuicVersion  uint16 `json:"tuic_version,omitempty" yaml:"tuic_version,omitempty"`
	ServerName   string `json:"server_name,omitempty" yaml:"server_name,omitempty"`

	SelfIP       string   `json:"self_ip,omitempty" yaml:"self_ip,omitempty"`
	SelfIPv6     string   `json:"self_ipv6,omitempty" yaml:"self_ipv6,omitempty"`
	PublicKey    string   `json:"public_key,omitempty" yaml:"public_key,omitempty"`
	PrivateKey   string   `json:"private_key,omitempty" yaml:"private_key,omitempty"`
	PreSharedKey string   `json:"pre_shared_key,omitempty" yaml:"pre_shared_key,omitempty"`
	DnsServers   []string `json:"dns_servers,omitempty" yaml:"dns_servers,omitempty"`
	Mtu          uint16   `json:"mtu,omitempty" yaml:"mtu,omitempty"`
	AllowedIPs   string   `json:"allowed_ips,omitempty" yaml:"allowed_ips,omitempty"`
	KeepAlive    uint16   `json:"keep_alive,omitempty" yaml:"keep_alive,omitempty"`
	TestUrl      string   `json:"test_url,omitempty" yaml:"test_url,omitempty"`
	ClientId     string   `json:"client_id,omitempty" yaml:"client_id,omitempty"`

	Ports               string   `json:"ports,omitempty" yaml:"ports,omitempty"`
	Up                  string   `json:"up,omitempty" yaml:"up,omitempty"`
	UpSpeed             uint32   `json:"up_speed,omitempty" yaml:"up_speed,omitempty"`
	Down                string   `json:"down,omitempty" yaml:"down,omitempty"`
	DownSpeed           uint32   `json:"down_speed,omitempty" yaml:"down_speed,omitempty"`
	Auth                string   `json:"auth,omitempty" yaml:"auth,omitempty"`
	AuthStr             string   `json:"auth_str,omitempty" yaml:"auth_str,omitempty"`
	SNI                 string   `json:"sni,omitempty" yaml:"sni,omitempty"`
	OBFSPassword        string   `json:"obfs_password,omitempty" yaml:"obfs_password,omitempty"`
	Fingerprint         string   `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Ca                  string   `json:"ca,omitempty" yaml:"ca,omitempty"`
	CaStr               string   `json:"ca_str,omitempty" yaml:"ca_str,omitempty"`
	RecvWindowConn      uint32   `json:"recv_window_conn,omitempty" yaml:"recv_window_conn,omitempty"`
	RecvWindow          uint32   `json:"recv_window,omitempty" yaml:"recv_window,omitempty"`
	DisableMtuDiscovery Tribool  `json:"disable_mtu_discovery" yaml:"disable_mtu_discovery,omitempty"`
	HopInterval         uint32   `json:"hop_interval,omitempty" yaml:"hop_interval,omitempty"`
	CWND                uint32   `json:"cwnd,omitempty" yaml:"cwnd,omitempty"`
	Alpn                string   `json:"alpn,omitempty" yaml:"alpn,omitempty"`
	AlpnList            []string `json:"alpn_list,omitempty" yaml:"alpn_list,omitempty"`

	UUID                  string  `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	IP                    string  `json:"ip,omitempty" yaml:"ip,omitempty"`
	HeartbeatInterval     string  `json:"heartbeat_interval,omitempty" yaml:"heartbeat_interval,omitempty"`
	DisableSNI            Tribool `json:"disable_sni" yaml:"disable_sni,omitempty"`
	ReduceRTT             Tribool `json:"reduce_rtt" yaml:"reduce_rtt,omitempty"`
	RequestTimeout        uint32  `json:"request_timeout,omitempty" yaml:"request_timeout,omitempty"`
	UdpRelayMode          string  `json:"udp_relay_mode,omitempty" yaml:"udp_relay_mode,omitempty"`
	CongestionController  string  `json:"congestion_controller,omitempty" yaml:"congestion_controller,omitempty"`
	MaxUdpRelayPacketSize uint32  `json:"max_udp_relay_packet_size,omitempty" yaml:"max_udp_relay_packet_size,omitempty"`
	FastOpen              Tribool `json:"fast_open" yaml:"fast_open,omitempty"`
	MaxOpenStreams        uint32  `json:"max_open_streams,omitempty" yaml:"max_open_streams,omitempty"`

	IdleSessionCheckInterval uint32 `json:"idle_session_check_interval,omitempty" yaml:"idle_session_check_interval,omitempty"`
	IdleSessionTimeout       uint32 `json:"idle_session_timeout,omitempty" yaml:"idle_session_timeout,omitempty"`
	MinIdleSession           uint32 `json:"min_idle_session,omitempty" yaml:"min_idle_session,omitempty"`

	Flow           string `json:"flow,omitempty" yaml:"flow,omitempty"`
	XTLS           uint32 `json:"xtls,omitempty" yaml:"xtls,omitempty"`
	PacketEncoding string `json:"packet_encoding,omitempty" yaml:"packet_encoding,omitempty"`
	ShortID        string `json:"short_id,omitempty" yaml:"short_id,omitempty"`

	SmuxMaxConnections int     `json:"smux_max_connections,omitempty" yaml:"smux_max_connections,omitempty"`
	SmuxMaxStreams     int     `json:"smux_max_streams,omitempty" yaml:"smux_max_streams,omitempty"`
	SmuxMinStreams     int     `json:"smux_min_streams,omitempty" yaml:"smux_min_streams,omitempty"`
	SmuxPadding        Tribool `json:"smux_padding" yaml:"smux_padding,omitempty"`
	SmuxStatistic      Tribool `json:"smux_statistic" yaml:"smux_statistic,omitempty"`
	SmuxOnlyTcp        Tribool `json:"smux_only_tcp" yaml:"smux_only_tcp,omitempty"`

	ClientFingerprint        string  `json:"client_fingerprint,omitempty" yaml:"client_fingerprint,omitempty"`
	EchConfig                string  `json:"ech_config,omitempty" yaml:"ech_config,omitempty"`
	EchEnable                Tribool `json:"ech_enable" yaml:"ech_enable,omitempty"`
	SupportX25519Mlkem768    Tribool `json:"support_x25519_mlkem768" yaml:"support_x25519_mlkem768,omitempty"`
	GrpcServiceName          string  `json:"grpc_service_name,omitempty" yaml:"grpc_service_name,omitempty"`
	GRPCMode                 string  `json:"grpc_mode,omitempty" yaml:"grpc_mode,omitempty"`
	WsPath                   string  `json:"ws_path,omitempty" yaml:"ws_path,omitempty"`
	WsHeaders                string  `json:"ws_headers,omitempty" yaml:"ws_headers,omitempty"`
	WsEarlyDataHeaderName    string  `json:"ws_early_data_header_name,omitempty" yaml:"ws_early_data_header_name,omitempty"`
	WsMaxEarlyData           int     `json:"ws_max_early_data,omitempty" yaml:"ws_max_early_data,omitempty"`
	V2rayHttpUpgrade         Tribool `json:"v2ray_http_upgrade" yaml:"v2ray_http_upgrade,omitempty"`
	V2rayHttpUpgradeFastOpen Tribool `json:"v2ray_http_upgrade_fast_open" yaml:"v2ray_http_upgrade_fast_open,omitempty"`

	InitialStreamReceiveWindow     uint32 `json:"initial_stream_receive_window,omitempty" yaml:"initial_stream_receive_window,omitempty"`
	MaxStreamReceiveWindow         uint32 `json:"max_stream_receive_window,omitempty" yaml:"max_stream_receive_window,omitempty"`
	InitialConnectionReceiveWindow uint32 `json:"initial_connection_receive_window,omitempty" yaml:"initial_connection_receive_window,omitempty"`
	MaxConnectionReceiveWindow     uint32 `json:"max_connection_receive_window,omitempty" yaml:"max_connection_receive_window,omitempty"`

	Multiplexing string `json:"multiplexing,omitempty" yaml:"multiplexing,omitempty"`
	TLSStr       string `json:"tls_str,omitempty" yaml:"tls_str,omitempty"`
}

// NewProxy returns a record of the given type with every field at its
// default. A plain Proxy{} lacks the AllowedIPs default, so producers
// should start from here.
func NewProxy(t ProxyType) Proxy {
	return Proxy{
		Type:       t,
		AllowedIPs: DefaultAllowedIPs,
	}
}

// GroupOrDefault returns Group, falling back to the type's default group.
// It is empty for an Unknown profile without a group.
func (p Proxy) GroupOrDefault() string {
	if p.Group != "" {
		return p.Group
	}
	group, _ := p.Type.DefaultGroup()
	return group
}

// Clone returns a copy that shares no slices with p.
func (p Proxy) Clone() Proxy {
	p.DnsServers = slices.Clone(p.DnsServers)
	p.AlpnList = slices.Clone(p.AlpnList)
	return p
}
