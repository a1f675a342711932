package codec

import (
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// MessageHeader is the fixed 12-byte prelude of a DNS message.
type MessageHeader struct {
	ID      uint16
	Flags   uint16
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

// ParseMessageHeader reads the 12-byte message prelude.
func ParseMessageHeader(c *wire.Cursor) (MessageHeader, error) {
	var h MessageHeader
	for _, field := range []*uint16{
		&h.ID, &h.Flags, &h.QDCount, &h.ANCount, &h.NSCount, &h.ARCount,
	} {
		v, err := c.Uint16()
		if err != nil {
			return MessageHeader{}, err
		}
		*field = v
	}
	return h, nil
}

// Compose writes the 12-byte message prelude.
func (h MessageHeader) Compose(b *wire.Builder) {
	b.AppendUint16(h.ID)
	b.AppendUint16(h.Flags)
	b.AppendUint16(h.QDCount)
	b.AppendUint16(h.ANCount)
	b.AppendUint16(h.NSCount)
	b.AppendUint16(h.ARCount)
}

// RecordCount sums the answer, authority and additional section counts.
func (h MessageHeader) RecordCount() int {
	return int(h.ANCount) + int(h.NSCount) + int(h.ARCount)
}

// SkipQuestion advances past one question entry: a name followed by the
// 4-byte QTYPE/QCLASS pair.
func SkipQuestion(c *wire.Cursor) error {
	if err := wire.SkipName(c); err != nil {
		return err
	}
	return c.Advance(4)
}
