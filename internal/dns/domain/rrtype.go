// Package domain holds the vocabulary types of the DNS wire engine: record
// type and class codes as closed sets of named 16-bit values, each with an
// escape hatch for codes outside the named set.
package domain

import "fmt"

// RRType represents a DNS resource record type (e.g. A, AAAA, MX).
// See IANA DNS Parameters for assigned codes.
type RRType uint16

// DNS Resource Record Type constants
const (
	RRTypeA     RRType = 1   // A - IPv4 address
	RRTypeNS    RRType = 2   // NS - Name server
	RRTypeCNAME RRType = 5   // CNAME - Canonical name
	RRTypeSOA   RRType = 6   // SOA - Start of authority
	RRTypePTR   RRType = 12  // PTR - Pointer
	RRTypeMX    RRType = 15  // MX - Mail exchange
	RRTypeTXT   RRType = 16  // TXT - Text
	RRTypeAAAA  RRType = 28  // AAAA - IPv6 address
	RRTypeSRV   RRType = 33  // SRV - Service
	RRTypeOPT   RRType = 41  // OPT - EDNS pseudo-record
	RRTypeANY   RRType = 255 // ANY - Any type (query only)
	RRTypeCAA   RRType = 257 // CAA - Certificate authority authorization
)

// rrTypeNames maps the named type codes to their presentation form.
var rrTypeNames = map[RRType]string{
	RRTypeA:     "A",
	RRTypeNS:    "NS",
	RRTypeCNAME: "CNAME",
	RRTypeSOA:   "SOA",
	RRTypePTR:   "PTR",
	RRTypeMX:    "MX",
	RRTypeTXT:   "TXT",
	RRTypeAAAA:  "AAAA",
	RRTypeSRV:   "SRV",
	RRTypeOPT:   "OPT",
	RRTypeANY:   "ANY",
	RRTypeCAA:   "CAA",
}

// rrTypeValues is the inverse of rrTypeNames.
var rrTypeValues = func() map[string]RRType {
	m := make(map[string]RRType, len(rrTypeNames))
	for t, name := range rrTypeNames {
		m[name] = t
	}
	return m
}()

// IsNamed returns true if the RRType is one of the named type codes.
func (t RRType) IsNamed() bool {
	_, ok := rrTypeNames[t]
	return ok
}

// String returns the textual representation of the RRType. Codes outside
// the named set use the RFC 3597 generic form "TYPE<value>".
func (t RRType) String() string {
	if name, ok := rrTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TYPE%d", uint16(t))
}

// RRTypeFromString converts a record type string to its RRType value.
// Unknown strings yield 0.
func RRTypeFromString(s string) RRType {
	return rrTypeValues[s]
}
