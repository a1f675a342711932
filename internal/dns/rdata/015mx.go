package rdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// MX is a mail exchange record payload (RFC 1035).
type MX struct {
	Preference uint16
	Exchange   string
}

func parseMX(c *wire.Cursor) (MX, error) {
	pref, err := c.Uint16()
	if err != nil {
		return MX{}, fmt.Errorf("MX record: %w", err)
	}
	exchange, err := wire.ParseName(c)
	if err != nil {
		return MX{}, fmt.Errorf("MX exchange: %w", err)
	}
	return MX{Preference: pref, Exchange: exchange}, nil
}

// Type returns the record type code this payload encodes.
func (m MX) Type() domain.RRType { return domain.RRTypeMX }

// Compose appends the preference and the exchange name, uncompressed.
func (m MX) Compose(b *wire.Builder) error {
	b.AppendUint16(m.Preference)
	return wire.AppendName(b, m.Exchange)
}

func (m MX) String() string {
	return fmt.Sprintf("%d %s", m.Preference, m.Exchange)
}
