package rdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// NS is a name server record payload (RFC 1035).
type NS struct {
	Host string
}

func parseNS(c *wire.Cursor) (NS, error) {
	host, err := wire.ParseName(c)
	if err != nil {
		return NS{}, fmt.Errorf("NS record: %w", err)
	}
	return NS{Host: host}, nil
}

// Type returns the record type code this payload encodes.
func (n NS) Type() domain.RRType { return domain.RRTypeNS }

// Compose appends the name server host, uncompressed.
func (n NS) Compose(b *wire.Builder) error {
	return wire.AppendName(b, n.Host)
}

func (n NS) String() string { return n.Host }
