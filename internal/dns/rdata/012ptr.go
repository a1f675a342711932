package rdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// PTR is a domain name pointer record payload (RFC 1035).
type PTR struct {
	Target string
}

func parsePTR(c *wire.Cursor) (PTR, error) {
	target, err := wire.ParseName(c)
	if err != nil {
		return PTR{}, fmt.Errorf("PTR record: %w", err)
	}
	return PTR{Target: target}, nil
}

// Type returns the record type code this payload encodes.
func (p PTR) Type() domain.RRType { return domain.RRTypePTR }

// Compose appends the target name, uncompressed.
func (p PTR) Compose(b *wire.Builder) error {
	return wire.AppendName(b, p.Target)
}

func (p PTR) String() string { return p.Target }
