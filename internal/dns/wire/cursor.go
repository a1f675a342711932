// Package wire provides the low-level primitives for the DNS wire format:
// a bounds-checked cursor for sequential reads, a growable builder that
// supports patching already-written bytes, and the domain name codec
// including message compression as specified in RFC 1035.
package wire

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuf indicates that a read would pass the end of the buffer.
var ErrShortBuf = errors.New("unexpected end of buffer")

// Cursor is a bounds-checked sequential reader over a DNS message.
// It keeps the whole message visible so name decompression can follow
// pointers to earlier offsets, while all reads advance strictly forward.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current absolute offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Seek positions the cursor at an absolute offset within the buffer.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.buf) {
		return ErrShortBuf
	}
	c.pos = pos
	return nil
}

// Advance moves the cursor forward n bytes without interpreting them.
func (c *Cursor) Advance(n int) error {
	if n < 0 || n > c.Remaining() {
		return ErrShortBuf
	}
	c.pos += n
	return nil
}

// Uint8 reads one byte.
func (c *Cursor) Uint8() (uint8, error) {
	if c.Remaining() < 1 {
		return 0, ErrShortBuf
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

// Uint16 reads a big-endian 16-bit integer.
func (c *Cursor) Uint16() (uint16, error) {
	if c.Remaining() < 2 {
		return 0, ErrShortBuf
	}
	v := binary.BigEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

// Uint32 reads a big-endian 32-bit integer.
func (c *Cursor) Uint32() (uint32, error) {
	if c.Remaining() < 4 {
		return 0, ErrShortBuf
	}
	v := binary.BigEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

// Bytes reads the next n bytes and returns them as a fresh copy, so the
// result stays valid after the caller discards the message buffer.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, ErrShortBuf
	}
	out := make([]byte, n)
	copy(out, c.buf[c.pos:c.pos+n])
	c.pos += n
	return out, nil
}
