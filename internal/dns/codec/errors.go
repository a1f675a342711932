package codec

import (
	"errors"
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/domain"
)

var (
	// ErrTTL indicates a TTL encoding with the most significant bit set.
	// RFC 2181 section 8 gives such values no meaning, so they are
	// rejected as a recoverable parse error.
	ErrTTL = errors.New("reserved TTL encoding")

	// ErrRDataTooLong indicates a composed payload that cannot be framed
	// by the 16-bit RDLENGTH field. This is a caller bug, reported as an
	// error rather than a panic.
	ErrRDataTooLong = errors.New("record data exceeds 65535 bytes")
)

// DataError reports a malformed payload for a recognized record type. The
// cursor has already been moved to the record boundary when it is
// returned, so iteration over the remaining records can continue.
type DataError struct {
	RRType domain.RRType
	Err    error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s record data: %v", e.RRType, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}
