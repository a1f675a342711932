package rdata

import (
	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/wire"
)

// Decode parses the RDATA of a record whose header declared the given type
// and length. The cursor must sit at the first payload byte. Types outside
// the implemented set decode as Opaque, consuming exactly length bytes, so
// iteration over a message never loses framing on an unknown type.
func Decode(rrType domain.RRType, c *wire.Cursor, length int) (RData, error) {
	switch rrType {
	case domain.RRTypeA: // 1
		return parseA(c)
	case domain.RRTypeNS: // 2
		return parseNS(c)
	case domain.RRTypeCNAME: // 5
		return parseCNAME(c)
	case domain.RRTypeSOA: // 6
		return parseSOA(c)
	case domain.RRTypePTR: // 12
		return parsePTR(c)
	case domain.RRTypeMX: // 15
		return parseMX(c)
	case domain.RRTypeTXT: // 16
		return parseTXT(c, length)
	case domain.RRTypeAAAA: // 28
		return parseAAAA(c)
	case domain.RRTypeSRV: // 33
		return parseSRV(c)
	case domain.RRTypeOPT: // 41
		return parseOPT(c, length)
	case domain.RRTypeCAA: // 257
		return parseCAA(c, length)
	default:
		return parseOpaque(rrType, c, length)
	}
}
