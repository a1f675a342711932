package rdata

import (
	"fmt"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// TXT is a text record payload (RFC 1035): a sequence of character-strings,
// each at most 255 octets.
type TXT struct {
	Strings []string
}

func parseTXT(c *wire.Cursor, length int) (TXT, error) {
	start := c.Pos()
	var txt TXT
	for c.Pos()-start < length {
		l, err := c.Uint8()
		if err != nil {
			return TXT{}, fmt.Errorf("TXT record: %w", err)
		}
		if c.Pos()-start+int(l) > length {
			return TXT{}, fmt.Errorf("TXT record: string crosses RDATA boundary")
		}
		s, err := c.Bytes(int(l))
		if err != nil {
			return TXT{}, fmt.Errorf("TXT record: %w", err)
		}
		txt.Strings = append(txt.Strings, string(s))
	}
	return txt, nil
}

// Type returns the record type code this payload encodes.
func (t TXT) Type() domain.RRType { return domain.RRTypeTXT }

// Compose appends each string with its length prefix.
func (t TXT) Compose(b *wire.Builder) error {
	for _, s := range t.Strings {
		if len(s) > 255 {
			return fmt.Errorf("TXT string too long: %d octets", len(s))
		}
		b.AppendUint8(uint8(len(s)))
		b.Append([]byte(s))
	}
	return nil
}

func (t TXT) String() string {
	quoted := make([]string, len(t.Strings))
	for i, s := range t.Strings {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, " ")
}
