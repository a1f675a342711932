package edns

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/wire"
)

// UnknownOption carries the data region of an option code this package
// does not implement, verbatim, so option lists round-trip.
type UnknownOption struct {
	OptCode OptionCode
	Data    []byte
}

func parseUnknownOption(code OptionCode, c *wire.Cursor, length int) (UnknownOption, error) {
	data, err := c.Bytes(length)
	if err != nil {
		return UnknownOption{}, fmt.Errorf("%s option: %w", code, err)
	}
	return UnknownOption{OptCode: code, Data: data}, nil
}

// Code returns the numeric option code the entry was parsed with.
func (u UnknownOption) Code() OptionCode { return u.OptCode }

// Compose appends the stored bytes unchanged.
func (u UnknownOption) Compose(b *wire.Builder) error {
	b.Append(u.Data)
	return nil
}

func (u UnknownOption) String() string {
	return fmt.Sprintf("%s %X", u.OptCode, u.Data)
}
