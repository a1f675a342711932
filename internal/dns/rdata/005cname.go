package rdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// CNAME is a canonical name record payload (RFC 1035).
type CNAME struct {
	Target string
}

func parseCNAME(c *wire.Cursor) (CNAME, error) {
	target, err := wire.ParseName(c)
	if err != nil {
		return CNAME{}, fmt.Errorf("CNAME record: %w", err)
	}
	return CNAME{Target: target}, nil
}

// Type returns the record type code this payload encodes.
func (cn CNAME) Type() domain.RRType { return domain.RRTypeCNAME }

// Compose appends the target name, uncompressed.
func (cn CNAME) Compose(b *wire.Builder) error {
	return wire.AppendName(b, cn.Target)
}

func (cn CNAME) String() string { return cn.Target }
