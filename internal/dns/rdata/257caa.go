package rdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// CAA is a certification authority authorization record payload (RFC 8659).
type CAA struct {
	Flags uint8
	Tag   string
	Value string
}

func parseCAA(c *wire.Cursor, length int) (CAA, error) {
	start := c.Pos()
	flags, err := c.Uint8()
	if err != nil {
		return CAA{}, fmt.Errorf("CAA record: %w", err)
	}
	tagLen, err := c.Uint8()
	if err != nil {
		return CAA{}, fmt.Errorf("CAA record: %w", err)
	}
	if tagLen == 0 {
		return CAA{}, fmt.Errorf("CAA record: empty tag")
	}
	consumed := c.Pos() - start
	if consumed+int(tagLen) > length {
		return CAA{}, fmt.Errorf("CAA record: tag crosses RDATA boundary")
	}
	tag, err := c.Bytes(int(tagLen))
	if err != nil {
		return CAA{}, fmt.Errorf("CAA record: %w", err)
	}
	value, err := c.Bytes(length - (c.Pos() - start))
	if err != nil {
		return CAA{}, fmt.Errorf("CAA record: %w", err)
	}
	return CAA{Flags: flags, Tag: string(tag), Value: string(value)}, nil
}

// Type returns the record type code this payload encodes.
func (ca CAA) Type() domain.RRType { return domain.RRTypeCAA }

// Compose appends flags, length-prefixed tag, and the unprefixed value.
func (ca CAA) Compose(b *wire.Builder) error {
	if len(ca.Tag) == 0 || len(ca.Tag) > 255 {
		return fmt.Errorf("CAA tag length out of range: %d", len(ca.Tag))
	}
	b.AppendUint8(ca.Flags)
	b.AppendUint8(uint8(len(ca.Tag)))
	b.Append([]byte(ca.Tag))
	b.Append([]byte(ca.Value))
	return nil
}

func (ca CAA) String() string {
	return fmt.Sprintf("%d %s %q", ca.Flags, ca.Tag, ca.Value)
}
