package rdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// SRV is a service locator record payload (RFC 2782).
type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

func parseSRV(c *wire.Cursor) (SRV, error) {
	var srv SRV
	var err error
	for _, field := range []*uint16{&srv.Priority, &srv.Weight, &srv.Port} {
		if *field, err = c.Uint16(); err != nil {
			return SRV{}, fmt.Errorf("SRV record: %w", err)
		}
	}
	if srv.Target, err = wire.ParseName(c); err != nil {
		return SRV{}, fmt.Errorf("SRV target: %w", err)
	}
	return srv, nil
}

// Type returns the record type code this payload encodes.
func (s SRV) Type() domain.RRType { return domain.RRTypeSRV }

// Compose appends the three counters and the target name, uncompressed.
func (s SRV) Compose(b *wire.Builder) error {
	b.AppendUint16(s.Priority)
	b.AppendUint16(s.Weight)
	b.AppendUint16(s.Port)
	return wire.AppendName(b, s.Target)
}

func (s SRV) String() string {
	return fmt.Sprintf("%d %d %d %s", s.Priority, s.Weight, s.Port, s.Target)
}
