package domain

import "fmt"

// RRClass represents a DNS class (usually IN for Internet).
type RRClass uint16

// DNS Resource Record Class constants
const (
	RRClassIN   RRClass = 1   // IN - Internet
	RRClassCH   RRClass = 3   // CH - Chaos
	RRClassHS   RRClass = 4   // HS - Hesiod
	RRClassNONE RRClass = 254 // NONE - No class
	RRClassANY  RRClass = 255 // ANY - Any class (query only)
)

// rrClassNames maps the named class codes to their presentation form.
var rrClassNames = map[RRClass]string{
	RRClassIN:   "IN",
	RRClassCH:   "CH",
	RRClassHS:   "HS",
	RRClassNONE: "NONE",
	RRClassANY:  "ANY",
}

// IsNamed returns true if the RRClass is one of the named class codes.
func (c RRClass) IsNamed() bool {
	_, ok := rrClassNames[c]
	return ok
}

// String returns the textual representation of the RRClass. Codes outside
// the named set use the RFC 3597 generic form "CLASS<value>".
func (c RRClass) String() string {
	if name, ok := rrClassNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CLASS%d", uint16(c))
}

// ParseRRClass converts a string name to an RRClass value.
// Unknown strings yield 0.
func ParseRRClass(s string) RRClass {
	for c, name := range rrClassNames {
		if name == s {
			return c
		}
	}
	return 0
}
