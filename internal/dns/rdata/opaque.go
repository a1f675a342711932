package rdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// Opaque carries the raw RDATA of a record type this package does not
// implement. The bytes are copied verbatim at parse time and written back
// verbatim at compose time, so unknown records survive a round trip.
type Opaque struct {
	Code   domain.RRType
	Octets []byte
}

func parseOpaque(rrType domain.RRType, c *wire.Cursor, length int) (Opaque, error) {
	octets, err := c.Bytes(length)
	if err != nil {
		return Opaque{}, fmt.Errorf("%s record: %w", rrType, err)
	}
	return Opaque{Code: rrType, Octets: octets}, nil
}

// Type returns the numeric type code the record was parsed with.
func (o Opaque) Type() domain.RRType { return o.Code }

// Compose appends the stored bytes unchanged.
func (o Opaque) Compose(b *wire.Builder) error {
	b.Append(o.Octets)
	return nil
}

// String renders the payload in RFC 3597 generic form.
func (o Opaque) String() string {
	if len(o.Octets) == 0 {
		return `\# 0`
	}
	return fmt.Sprintf(`\# %d %X`, len(o.Octets), o.Octets)
}
