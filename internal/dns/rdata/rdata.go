// Package rdata implements the type-specific payloads of DNS resource
// records. Each supported record type lives in its own file, named by its
// IANA type code, and implements the RData interface over the wire
// primitives. Types without an implementation fall back to Opaque, which
// carries the raw RDATA bytes verbatim so unknown records round-trip.
package rdata

import (
	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// RData is the payload of a resource record. The record's type code is
// derived from the payload, so a record can never claim one type while
// carrying another.
type RData interface {
	// Type returns the record type code this payload encodes.
	Type() domain.RRType

	// Compose appends the payload's wire encoding to b.
	Compose(b *wire.Builder) error

	// String returns the payload in zone-file presentation form.
	String() string
}
