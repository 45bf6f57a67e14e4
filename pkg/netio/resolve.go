package netio

import (
	"fmt"
	"net"
	"strings"
)

// DefaultPort is the fallback TCP port when an address carries none and
// SRV resolution fails.
const DefaultPort = 25565

// ResolveAddress turns a user-supplied server address into a dialable
// host:port pair. If addr already carries a port, it is used verbatim. If
// it does not, the address is first tried as a _minecraft._tcp SRV record
// and falls back to addr:DefaultPort on any resolution failure.
func ResolveAddress(addr string) string {
	if _, _, err := net.SplitHostPort(addr); err == nil {
		return addr
	}

	_, srvs, err := net.LookupSRV("minecraft", "tcp", addr)
	if err == nil && len(srvs) > 0 {
		target := strings.TrimSuffix(srvs[0].Target, ".")
		return fmt.Sprintf("%s:%d", target, srvs[0].Port)
	}

	return fmt.Sprintf("%s:%d", addr, DefaultPort)
}
