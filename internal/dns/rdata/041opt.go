package rdata

import (
	"fmt"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/edns"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// OPT is the EDNS pseudo-record payload (RFC 6891): a list of option
// code/length/data entries.
type OPT struct {
	Options []edns.Option
}

func parseOPT(c *wire.Cursor, length int) (OPT, error) {
	start := c.Pos()
	var opt OPT
	for c.Pos()-start < length {
		o, err := edns.ParseOption(c)
		if err != nil {
			return OPT{}, fmt.Errorf("OPT record: %w", err)
		}
		if c.Pos()-start > length {
			return OPT{}, fmt.Errorf("OPT record: option crosses RDATA boundary")
		}
		opt.Options = append(opt.Options, o)
	}
	return opt, nil
}

// Type returns the record type code this payload encodes.
func (o OPT) Type() domain.RRType { return domain.RRTypeOPT }

// Compose appends each option with its code/length framing.
func (o OPT) Compose(b *wire.Builder) error {
	for _, opt := range o.Options {
		if err := edns.ComposeOption(b, opt); err != nil {
			return err
		}
	}
	return nil
}

func (o OPT) String() string {
	parts := make([]string, len(o.Options))
	for i, opt := range o.Options {
		parts[i] = opt.String()
	}
	return strings.Join(parts, ", ")
}
