// Package codec parses and composes DNS resource records: the fixed-shape
// record header, the typed payload dispatch, the two-pass RDLENGTH
// backpatch on composition, and the compressing variant that routes owner
// names through a per-message compression table.
package codec

import (
	"errors"
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// RecordHeader is the fixed-shape prefix of a resource record: the owner
// name followed by ten bytes of type, class, TTL and RDLENGTH. RDLen is
// authoritative for the length of the payload that follows, which is what
// makes skipping unknown records possible.
type RecordHeader struct {
	Name  string
	Type  domain.RRType
	Class domain.RRClass
	TTL   uint32
	RDLen uint16
}

// ParseHeader reads a record header. On ErrTTL the returned header is
// still fully populated, so callers can use RDLen to skip the payload and
// stay synchronized with the rest of the message.
func ParseHeader(c *wire.Cursor) (RecordHeader, error) {
	name, err := wire.ParseName(c)
	if err != nil {
		return RecordHeader{}, fmt.Errorf("record name: %w", err)
	}
	rrType, err := c.Uint16()
	if err != nil {
		return RecordHeader{}, err
	}
	class, err := c.Uint16()
	if err != nil {
		return RecordHeader{}, err
	}
	ttl, err := c.Uint32()
	if err != nil {
		return RecordHeader{}, err
	}
	rdlen, err := c.Uint16()
	if err != nil {
		return RecordHeader{}, err
	}
	h := RecordHeader{
		Name:  name,
		Type:  domain.RRType(rrType),
		Class: domain.RRClass(class),
		TTL:   ttl,
		RDLen: rdlen,
	}
	if ttl&0x80000000 != 0 {
		return h, ErrTTL
	}
	return h, nil
}

// ParseHeaderAndSkip parses a header and advances the cursor past the
// payload without interpreting it. Used when the record's type is
// irrelevant to the caller. Like ParseHeader, on ErrTTL the returned
// header is populated and the payload is still skipped, so iteration can
// continue at the next record.
func ParseHeaderAndSkip(c *wire.Cursor) (RecordHeader, error) {
	h, err := ParseHeader(c)
	if err != nil {
		if !errors.Is(err, ErrTTL) {
			return RecordHeader{}, err
		}
		if skipErr := c.Advance(int(h.RDLen)); skipErr != nil {
			return RecordHeader{}, skipErr
		}
		return h, err
	}
	if err := c.Advance(int(h.RDLen)); err != nil {
		return RecordHeader{}, err
	}
	return h, nil
}

// Compose writes the header: the owner name uncompressed, then the four
// fixed fields. The fixed portion is always ten bytes.
func (h RecordHeader) Compose(b *wire.Builder) error {
	if err := wire.AppendName(b, h.Name); err != nil {
		return err
	}
	b.AppendUint16(uint16(h.Type))
	b.AppendUint16(uint16(h.Class))
	b.AppendUint32(h.TTL)
	b.AppendUint16(h.RDLen)
	return nil
}
