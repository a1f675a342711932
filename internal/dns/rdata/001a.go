package rdata

import (
	"fmt"
	"net"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// A is an IPv4 host address record payload (RFC 1035).
type A struct {
	IP net.IP
}

// NewA builds an A payload from a dotted-quad address string.
func NewA(addr string) (A, error) {
	ip := net.ParseIP(addr)
	if ip == nil || ip.To4() == nil {
		return A{}, fmt.Errorf("invalid A record IP: %s", addr)
	}
	return A{IP: ip.To4()}, nil
}

func parseA(c *wire.Cursor) (A, error) {
	b, err := c.Bytes(net.IPv4len)
	if err != nil {
		return A{}, fmt.Errorf("A record: %w", err)
	}
	return A{IP: net.IP(b)}, nil
}

// Type returns the record type code this payload encodes.
func (a A) Type() domain.RRType { return domain.RRTypeA }

// Compose appends the 4-byte address.
func (a A) Compose(b *wire.Builder) error {
	v4 := a.IP.To4()
	if v4 == nil {
		return fmt.Errorf("invalid A record IP: %s", a.IP)
	}
	b.Append(v4)
	return nil
}

func (a A) String() string { return a.IP.String() }
