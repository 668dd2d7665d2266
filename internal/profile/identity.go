package profile

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"subprofile/internal/domain"
)

// Fingerprint returns a stable identifier for the server a profile points
// at. Display data (Remark, Group, Id) is left out so the same server
// imported from two subscriptions collapses to one fingerprint.
func Fingerprint(p *domain.Proxy) string {
	parts := []string{
		p.Type.String(),
		strings.ToLower(strings.TrimSpace(p.Hostname)),
		strconv.Itoa(int(p.Port)),

		p.Username,
		p.Password,
		p.UserId,
		p.UUID,
		p.Auth,
		p.AuthStr,
		p.PrivateKey,
		strings.ToLower(p.EncryptMethod),
	}

	// An empty network means plain tcp.
	network := strings.ToLower(p.TransferProtocol)
	if network == "" {
		network = "tcp"
	}
	parts = append(parts,
		network,
		p.Path,
		p.WsPath,
		p.GrpcServiceName,
		p.Host,
		p.Flow,
		p.Protocol,
		p.OBFS,
		p.OBFSParam,
		p.OBFSPassword,
		p.PublicKey,
		p.ShortID,
		p.SelfIP,
		p.Ports,
	)

	// Length prefixes keep field boundaries unambiguous.
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(strconv.Itoa(len(part))))
		h.Write([]byte{':'})
		h.Write([]byte(part))
	}
	return hex.EncodeToString(h.Sum(nil))
}
