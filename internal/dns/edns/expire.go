package edns

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/wire"
)

// Expire is the EDNS EXPIRE option (RFC 7314). It reports how many seconds
// remain until a secondary's copy of the zone expires. A query carries the
// option with no value at all, as a bare request marker, so the value is
// tracked separately from its presence.
type Expire struct {
	Present bool
	Value   uint32
}

// NewExpire returns an EXPIRE option carrying a value, as sent in
// responses.
func NewExpire(seconds uint32) Expire {
	return Expire{Present: true, Value: seconds}
}

// NewExpireRequest returns the valueless EXPIRE option a querier sends to
// ask for the timer.
func NewExpireRequest() Expire {
	return Expire{}
}

// ParseExpire reads an EXPIRE data region of the given length: zero bytes
// mean the option is a bare request, otherwise exactly one 32-bit value.
func ParseExpire(c *wire.Cursor, length int) (Expire, error) {
	if length == 0 {
		return Expire{}, nil
	}
	if length != 4 {
		return Expire{}, fmt.Errorf("EXPIRE option: invalid length %d", length)
	}
	v, err := c.Uint32()
	if err != nil {
		return Expire{}, fmt.Errorf("EXPIRE option: %w", err)
	}
	return NewExpire(v), nil
}

// SkipExpire advances past an EXPIRE data region without retaining the
// value, mirroring ParseExpire's zero-or-four-byte branching.
func SkipExpire(c *wire.Cursor, length int) error {
	if length == 0 {
		return nil
	}
	return c.Advance(4)
}

// Code returns the fixed EXPIRE option code.
func (e Expire) Code() OptionCode { return OptionCodeExpire }

// Compose appends nothing for a request and the 32-bit value otherwise.
func (e Expire) Compose(b *wire.Builder) error {
	if e.Present {
		b.AppendUint32(e.Value)
	}
	return nil
}

func (e Expire) String() string {
	if !e.Present {
		return "EXPIRE"
	}
	return fmt.Sprintf("EXPIRE %d", e.Value)
}
