package host

import (
	"errors"
	"fmt"
)

// Fatal host parse failures. The messages are the URL Standard's
// validation error names.
var (
	ErrHostMissing            = errors.New("host-missing")
	ErrDomainToASCII          = errors.New("domain-to-ASCII")
	ErrDomainInvalidCodePoint = errors.New("domain-invalid-code-point")
	ErrEmptyLabel             = errors.New("domain-empty-label")
	ErrForbiddenCodePoint     = errors.New("host-invalid-code-point")

	ErrIPv4TooManyParts   = errors.New("IPv4-too-many-parts")
	ErrIPv4NonNumericPart = errors.New("IPv4-non-numeric-part")
	ErrIPv4OutOfRangePart = errors.New("IPv4-out-of-range-part")

	ErrIPv6Unclosed               = errors.New("IPv6-unclosed")
	ErrIPv6InvalidCompression     = errors.New("IPv6-invalid-compression")
	ErrIPv6TooManyPieces          = errors.New("IPv6-too-many-pieces")
	ErrIPv6MultipleCompression    = errors.New("IPv6-multiple-compression")
	ErrIPv6InvalidCodePoint       = errors.New("IPv6-invalid-code-point")
	ErrIPv6TooFewPieces           = errors.New("IPv6-too-few-pieces")
	ErrIPv4InIPv6TooManyPieces    = errors.New("IPv4-in-IPv6-too-many-pieces")
	ErrIPv4InIPv6InvalidCodePoint = errors.New("IPv4-in-IPv6-invalid-code-point")
	ErrIPv4InIPv6OutOfRangePart   = errors.New("IPv4-in-IPv6-out-of-range-part")
	ErrIPv4InIPv6TooFewParts      = errors.New("IPv4-in-IPv6-too-few-parts")
)

// Non-fatal conditions passed to Parser.Report.
const (
	WarnIPv4EmptyPart      = "IPv4-empty-part"
	WarnIPv4NonDecimalPart = "IPv4-non-decimal-part"
	WarnIPv4OutOfRangePart = "IPv4-out-of-range-part"
	WarnInvalidURLUnit     = "invalid-URL-unit"
)

// Error is a fatal host parse failure.
type Error struct {
	Input string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid host %q: %v", e.Input, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fail(input string, err error) error {
	return &Error{Input: input, Err: err}
}
