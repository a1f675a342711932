package rdata

import (
	"fmt"
	"net"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// AAAA is an IPv6 host address record payload (RFC 3596).
type AAAA struct {
	IP net.IP
}

// NewAAAA builds an AAAA payload from an IPv6 address string.
func NewAAAA(addr string) (AAAA, error) {
	ip := net.ParseIP(addr)
	if ip == nil || ip.To16() == nil || ip.To4() != nil {
		return AAAA{}, fmt.Errorf("invalid AAAA record IP: %s", addr)
	}
	return AAAA{IP: ip.To16()}, nil
}

func parseAAAA(c *wire.Cursor) (AAAA, error) {
	b, err := c.Bytes(net.IPv6len)
	if err != nil {
		return AAAA{}, fmt.Errorf("AAAA record: %w", err)
	}
	return AAAA{IP: net.IP(b)}, nil
}

// Type returns the record type code this payload encodes.
func (a AAAA) Type() domain.RRType { return domain.RRTypeAAAA }

// Compose appends the 16-byte address.
func (a AAAA) Compose(b *wire.Builder) error {
	v6 := a.IP.To16()
	if v6 == nil || a.IP.To4() != nil {
		return fmt.Errorf("invalid AAAA record IP: %s", a.IP)
	}
	b.Append(v6)
	return nil
}

func (a AAAA) String() string { return a.IP.String() }
