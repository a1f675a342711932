package wire

import "strings"

// maxCompressionOffset is the largest message offset a 14-bit compression
// pointer can express.
const maxCompressionOffset = 0x3FFF

// Compressor tracks the domain name suffixes already written into one
// message and the offsets they were written at. Its lifetime is exactly one
// message composition: offsets are only meaningful within that buffer, so a
// compressor must never be shared across messages.
type Compressor struct {
	offsets map[string]int
}

// NewCompressor returns an empty compression table for a single message.
func NewCompressor() *Compressor {
	return &Compressor{offsets: make(map[string]int)}
}

// AppendName writes name into b, replacing the longest suffix already
// present in the message with a 2-byte pointer. Suffixes newly written at
// offsets a pointer can reach are recorded for later names.
func (cp *Compressor) AppendName(b *Builder, name string) error {
	labels, err := nameLabels(name)
	if err != nil {
		return err
	}

	// Find the longest known suffix.
	match := len(labels)
	target := -1
	for i := range labels {
		if off, ok := cp.offsets[strings.Join(labels[i:], ".")]; ok {
			match = i
			target = off
			break
		}
	}

	// Write the prefix labels literally, remembering where each new
	// suffix starts so future names can point at it.
	for i := 0; i < match; i++ {
		off := b.Len()
		suffix := strings.Join(labels[i:], ".")
		if _, ok := cp.offsets[suffix]; !ok && off <= maxCompressionOffset {
			cp.offsets[suffix] = off
		}
		b.AppendUint8(uint8(len(labels[i])))
		b.Append([]byte(labels[i]))
	}

	if target >= 0 {
		b.AppendUint16(0xC000 | uint16(target))
		return nil
	}
	b.AppendUint8(0)
	return nil
}
