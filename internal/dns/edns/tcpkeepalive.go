package edns

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/wire"
)

// TcpKeepalive is the edns-tcp-keepalive option (RFC 7828): the idle
// timeout a server is willing to keep a TCP session open for, in units of
// 100 milliseconds. Zero tells the client to close promptly.
type TcpKeepalive struct {
	Timeout uint16
}

// NewTcpKeepalive returns a keepalive option with the given timeout in
// 100 ms units.
func NewTcpKeepalive(timeout uint16) TcpKeepalive {
	return TcpKeepalive{Timeout: timeout}
}

// ParseTcpKeepalive reads a keepalive data region: always exactly one
// 16-bit value.
func ParseTcpKeepalive(c *wire.Cursor, length int) (TcpKeepalive, error) {
	if length != 2 {
		return TcpKeepalive{}, fmt.Errorf("TCP-KEEPALIVE option: invalid length %d", length)
	}
	v, err := c.Uint16()
	if err != nil {
		return TcpKeepalive{}, fmt.Errorf("TCP-KEEPALIVE option: %w", err)
	}
	return TcpKeepalive{Timeout: v}, nil
}

// SkipTcpKeepalive advances past a keepalive data region.
func SkipTcpKeepalive(c *wire.Cursor) error {
	return c.Advance(2)
}

// Code returns the fixed edns-tcp-keepalive option code.
func (t TcpKeepalive) Code() OptionCode { return OptionCodeTcpKeepalive }

// Compose appends the 16-bit timeout.
func (t TcpKeepalive) Compose(b *wire.Builder) error {
	b.AppendUint16(t.Timeout)
	return nil
}

func (t TcpKeepalive) String() string {
	return fmt.Sprintf("TCP-KEEPALIVE %dms", uint32(t.Timeout)*100)
}
