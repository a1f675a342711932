// Package edns implements EDNS(0) option code/data pairs as carried in the
// RDATA of an OPT pseudo-record (RFC 6891). Each implemented option type
// binds to exactly one fixed option code, exposed as a constant, so the
// generic list framing can pick the right codec without per-type special
// cases elsewhere.
package edns

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/wire"
)

// OptionCode identifies an EDNS option.
// See IANA DNS EDNS0 Option Codes.
type OptionCode uint16

// EDNS option code constants
const (
	OptionCodeNSID         OptionCode = 3  // NSID - Name server identifier
	OptionCodeExpire       OptionCode = 9  // EXPIRE - Zone expire timer (RFC 7314)
	OptionCodeCookie       OptionCode = 10 // COOKIE - DNS cookies
	OptionCodeTcpKeepalive OptionCode = 11 // edns-tcp-keepalive (RFC 7828)
	OptionCodePadding      OptionCode = 12 // Padding
)

// optionCodeNames maps the named option codes to their presentation form.
var optionCodeNames = map[OptionCode]string{
	OptionCodeNSID:         "NSID",
	OptionCodeExpire:       "EXPIRE",
	OptionCodeCookie:       "COOKIE",
	OptionCodeTcpKeepalive: "TCP-KEEPALIVE",
	OptionCodePadding:      "PADDING",
}

// String returns the textual representation of the OptionCode. Codes
// outside the named set render as "OPT<value>".
func (oc OptionCode) String() string {
	if name, ok := optionCodeNames[oc]; ok {
		return name
	}
	return fmt.Sprintf("OPT%d", uint16(oc))
}

// Option is one EDNS option: a fixed code plus type-specific data. The
// option's code is derived from its payload type, never stored separately.
type Option interface {
	// Code returns the option code this payload encodes.
	Code() OptionCode

	// Compose appends the option's data region (without the code/length
	// framing) to b.
	Compose(b *wire.Builder) error

	// String returns a presentation form for diagnostics.
	String() string
}
