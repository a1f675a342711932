package wire

import (
	"errors"
	"fmt"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/common/utils"
)

const (
	// maxNameWireOctets is the longest wire encoding of a domain name,
	// per RFC 1035 section 2.3.4.
	maxNameWireOctets = 255

	// maxLabelOctets is the longest single label.
	maxLabelOctets = 63

	// maxPointerChase bounds how many compression pointers a single name
	// may traverse. Every pointer must lead to at least one label octet,
	// so a semantically valid name can never need more than this; anything
	// longer is a crafted loop.
	maxPointerChase = (maxNameWireOctets+1)/2 - 2
)

var (
	// ErrPointerLoop indicates a compression pointer chain that loops or
	// points forward instead of at earlier message content.
	ErrPointerLoop = errors.New("invalid compression pointer chain")

	// ErrNameTooLong indicates a name exceeding 255 wire octets.
	ErrNameTooLong = errors.New("domain name too long")
)

// ParseName reads a domain name at the cursor, following compression
// pointers into earlier parts of the message. The cursor ends up just past
// the name's own bytes regardless of where pointers led.
func ParseName(c *Cursor) (string, error) {
	var labels []string
	var chased int
	budget := maxNameWireOctets

	// resume is where sequential reading continues after the first
	// pointer; -1 means no pointer has been followed yet.
	resume := -1
	pos := c.pos

	for {
		if pos >= len(c.buf) {
			return "", ErrShortBuf
		}
		length := int(c.buf[pos])
		switch {
		case length == 0:
			pos++
			if resume < 0 {
				resume = pos
			}
			c.pos = resume
			return strings.Join(labels, "."), nil
		case length&0xC0 == 0xC0:
			if pos+1 >= len(c.buf) {
				return "", ErrShortBuf
			}
			target := (length&0x3F)<<8 | int(c.buf[pos+1])
			if target >= pos {
				return "", ErrPointerLoop
			}
			chased++
			if chased > maxPointerChase {
				return "", ErrPointerLoop
			}
			if resume < 0 {
				resume = pos + 2
			}
			pos = target
		case length&0xC0 != 0:
			return "", fmt.Errorf("reserved label type 0x%02x", length&0xC0)
		default:
			if pos+1+length > len(c.buf) {
				return "", ErrShortBuf
			}
			budget -= length + 1
			if budget < 0 {
				return "", ErrNameTooLong
			}
			labels = append(labels, string(c.buf[pos+1:pos+1+length]))
			pos += 1 + length
		}
	}
}

// SkipName advances the cursor past a name without decoding it. A
// compression pointer terminates the name, so no chasing is needed.
func SkipName(c *Cursor) error {
	for {
		length, err := c.Uint8()
		if err != nil {
			return err
		}
		switch {
		case length == 0:
			return nil
		case length&0xC0 == 0xC0:
			return c.Advance(1)
		case length&0xC0 != 0:
			return fmt.Errorf("reserved label type 0x%02x", length&0xC0)
		default:
			if err := c.Advance(int(length)); err != nil {
				return err
			}
		}
	}
}

// AppendName writes name in uncompressed wire form: length-prefixed labels
// terminated by the root label.
func AppendName(b *Builder, name string) error {
	labels, err := nameLabels(name)
	if err != nil {
		return err
	}
	for _, label := range labels {
		b.AppendUint8(uint8(len(label)))
		b.Append([]byte(label))
	}
	b.AppendUint8(0)
	return nil
}

// nameLabels canonicalizes a name and splits it into validated labels.
// The root name yields no labels.
func nameLabels(name string) ([]string, error) {
	name = utils.CanonicalDNSName(name)
	if name == "" {
		return nil, nil
	}
	labels := strings.Split(name, ".")
	wireLen := 1 // root label
	for _, label := range labels {
		if len(label) == 0 {
			return nil, fmt.Errorf("empty label in name %q", name)
		}
		if len(label) > maxLabelOctets {
			return nil, fmt.Errorf("label too long: %s", label)
		}
		wireLen += len(label) + 1
	}
	if wireLen > maxNameWireOctets {
		return nil, ErrNameTooLong
	}
	return labels, nil
}
