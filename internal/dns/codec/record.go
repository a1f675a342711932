package codec

import (
	"errors"
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/rdata"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// Record is one DNS resource record: an owner name, class and TTL bound to
// a typed payload. The record's type code comes from the payload itself,
// so the two can never disagree.
type Record struct {
	Name  string
	Class domain.RRClass
	TTL   uint32
	Data  rdata.RData
}

// Type returns the record type derived from the payload.
func (r Record) Type() domain.RRType {
	return r.Data.Type()
}

// String renders the record in zone-file column order.
func (r Record) String() string {
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%s",
		r.Name, r.TTL, r.Class, r.Type(), r.Data)
}

// ParseRecord reads one record: header, then the payload parser selected
// by the header's type code. Whatever happens inside the payload, the
// cursor ends at the record boundary, so a caller iterating a message can
// skip a bad record and keep going:
//
//   - unknown type: the payload is retained verbatim as rdata.Opaque;
//   - malformed payload: a *DataError is returned after seeking past it;
//   - a recognized parser that does not consume exactly RDLen bytes is
//     itself reported as a *DataError.
func ParseRecord(c *wire.Cursor) (Record, error) {
	h, err := ParseHeader(c)
	if err != nil {
		if errors.Is(err, ErrTTL) {
			// Header fields are valid, keep framing for the caller.
			_ = c.Advance(int(h.RDLen))
		}
		return Record{}, err
	}
	if int(h.RDLen) > c.Remaining() {
		return Record{}, wire.ErrShortBuf
	}
	end := c.Pos() + int(h.RDLen)

	data, err := rdata.Decode(h.Type, c, int(h.RDLen))
	if err != nil {
		_ = c.Seek(end)
		return Record{}, &DataError{RRType: h.Type, Err: err}
	}
	if c.Pos() != end {
		consumed := c.Pos() - (end - int(h.RDLen))
		_ = c.Seek(end)
		return Record{}, &DataError{
			RRType: h.Type,
			Err:    fmt.Errorf("parser consumed %d of %d bytes", consumed, h.RDLen),
		}
	}
	return Record{Name: h.Name, Class: h.Class, TTL: h.TTL, Data: data}, nil
}

// ComposeRecord writes r with its owner name in full.
func ComposeRecord(b *wire.Builder, r Record) error {
	if err := wire.AppendName(b, r.Name); err != nil {
		return err
	}
	return composeTail(b, r)
}

// CompressRecord writes r with its owner name routed through cp, replacing
// any suffix already present in the message with a pointer. The payload
// and length backpatch are identical to ComposeRecord; compression never
// touches payload bytes.
func CompressRecord(b *wire.Builder, cp *wire.Compressor, r Record) error {
	if err := cp.AppendName(b, r.Name); err != nil {
		return err
	}
	return composeTail(b, r)
}

// composeTail writes the four fixed header fields with a placeholder
// RDLENGTH, then the payload, then patches the placeholder with the
// payload's actual length.
func composeTail(b *wire.Builder, r Record) error {
	b.AppendUint16(uint16(r.Type()))
	b.AppendUint16(uint16(r.Class))
	b.AppendUint32(r.TTL)
	pos := b.Len()
	b.AppendUint16(0)
	if err := r.Data.Compose(b); err != nil {
		return err
	}
	length := b.Len() - pos - 2
	if length > 0xFFFF {
		return ErrRDataTooLong
	}
	return b.PatchUint16(pos, uint16(length))
}
