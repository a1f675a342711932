package wire

import (
	"encoding/binary"
	"errors"
)

// ErrBadPatch indicates an attempt to patch bytes that were never written.
var ErrBadPatch = errors.New("patch offset out of range")

// Builder is a growable output buffer for composing DNS messages. Unlike
// bytes.Buffer it allows revisiting already-written bytes, which the codec
// needs for backpatching length fields after the payload is known.
type Builder struct {
	buf []byte
}

// NewBuilder returns a builder with the given initial capacity.
func NewBuilder(capacity int) *Builder {
	return &Builder{buf: make([]byte, 0, capacity)}
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Bytes returns the composed message. The slice aliases the builder's
// internal storage and is only valid until the next append.
func (b *Builder) Bytes() []byte {
	return b.buf
}

// Append writes raw bytes.
func (b *Builder) Append(p []byte) {
	b.buf = append(b.buf, p...)
}

// AppendUint8 writes one byte.
func (b *Builder) AppendUint8(v uint8) {
	b.buf = append(b.buf, v)
}

// AppendUint16 writes a big-endian 16-bit integer.
func (b *Builder) AppendUint16(v uint16) {
	b.buf = binary.BigEndian.AppendUint16(b.buf, v)
}

// AppendUint32 writes a big-endian 32-bit integer.
func (b *Builder) AppendUint32(v uint32) {
	b.buf = binary.BigEndian.AppendUint32(b.buf, v)
}

// PatchUint16 overwrites two previously written bytes at pos with v in
// big-endian order.
func (b *Builder) PatchUint16(pos int, v uint16) error {
	if pos < 0 || pos+2 > len(b.buf) {
		return ErrBadPatch
	}
	binary.BigEndian.PutUint16(b.buf[pos:], v)
	return nil
}
