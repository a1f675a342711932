package rdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// SOA is a start of authority record payload (RFC 1035).
type SOA struct {
	// MName is the primary name server for the zone.
	MName string

	// RName is the mailbox of the zone administrator, with the first
	// unescaped dot standing in for '@'.
	RName string

	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func parseSOA(c *wire.Cursor) (SOA, error) {
	var soa SOA
	var err error
	if soa.MName, err = wire.ParseName(c); err != nil {
		return SOA{}, fmt.Errorf("SOA mname: %w", err)
	}
	if soa.RName, err = wire.ParseName(c); err != nil {
		return SOA{}, fmt.Errorf("SOA rname: %w", err)
	}
	for _, field := range []*uint32{
		&soa.Serial, &soa.Refresh, &soa.Retry, &soa.Expire, &soa.Minimum,
	} {
		if *field, err = c.Uint32(); err != nil {
			return SOA{}, fmt.Errorf("SOA record: %w", err)
		}
	}
	return soa, nil
}

// Type returns the record type code this payload encodes.
func (s SOA) Type() domain.RRType { return domain.RRTypeSOA }

// Compose appends both names uncompressed followed by the five counters.
func (s SOA) Compose(b *wire.Builder) error {
	if err := wire.AppendName(b, s.MName); err != nil {
		return fmt.Errorf("SOA mname: %w", err)
	}
	if err := wire.AppendName(b, s.RName); err != nil {
		return fmt.Errorf("SOA rname: %w", err)
	}
	b.AppendUint32(s.Serial)
	b.AppendUint32(s.Refresh)
	b.AppendUint32(s.Retry)
	b.AppendUint32(s.Expire)
	b.AppendUint32(s.Minimum)
	return nil
}

func (s SOA) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d",
		s.MName, s.RName, s.Serial, s.Refresh, s.Retry, s.Expire, s.Minimum)
}
