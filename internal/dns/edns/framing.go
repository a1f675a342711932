package edns

import (
	"errors"
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/wire"
)

// ErrOptionTooLong indicates a composed option whose data region exceeds
// the 16-bit OPTION-LENGTH field.
var ErrOptionTooLong = errors.New("option data exceeds 65535 bytes")

// ComposeOption writes one option entry: OPTION-CODE, OPTION-LENGTH, and
// the data region. The length is not known until the data is written, so a
// placeholder is reserved and patched afterwards.
func ComposeOption(b *wire.Builder, opt Option) error {
	b.AppendUint16(uint16(opt.Code()))
	pos := b.Len()
	b.AppendUint16(0)
	if err := opt.Compose(b); err != nil {
		return err
	}
	length := b.Len() - pos - 2
	if length > 0xFFFF {
		return ErrOptionTooLong
	}
	return b.PatchUint16(pos, uint16(length))
}

// ParseOption reads one option entry and dispatches on its code. Codes
// without an implemented payload type yield an UnknownOption carrying the
// data region verbatim. The cursor always ends at the entry boundary.
func ParseOption(c *wire.Cursor) (Option, error) {
	code, err := c.Uint16()
	if err != nil {
		return nil, err
	}
	length, err := c.Uint16()
	if err != nil {
		return nil, err
	}
	if int(length) > c.Remaining() {
		return nil, wire.ErrShortBuf
	}
	end := c.Pos() + int(length)

	var opt Option
	switch OptionCode(code) {
	case OptionCodeExpire:
		opt, err = ParseExpire(c, int(length))
	case OptionCodeTcpKeepalive:
		opt, err = ParseTcpKeepalive(c, int(length))
	default:
		opt, err = parseUnknownOption(OptionCode(code), c, int(length))
	}
	if err != nil {
		// Leave the cursor at the entry boundary so the caller can
		// continue with the next option.
		_ = c.Seek(end)
		return nil, err
	}
	if c.Pos() != end {
		consumed := c.Pos() - (end - int(length))
		_ = c.Seek(end)
		return nil, fmt.Errorf("%s option: parser consumed %d of %d bytes",
			opt.Code(), consumed, length)
	}
	return opt, nil
}

// SkipOption advances past one option entry without interpreting its data.
func SkipOption(c *wire.Cursor) error {
	if err := c.Advance(2); err != nil {
		return err
	}
	length, err := c.Uint16()
	if err != nil {
		return err
	}
	return c.Advance(int(length))
}
