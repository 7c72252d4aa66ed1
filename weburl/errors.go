package weburl

import (
	"errors"
	"fmt"

	"github.com/jongio/weburl/host"
)

// Fatal parse failures. Host failures are reported as *host.Error and can
// be matched with the host package's sentinels.
var (
	ErrMissingScheme  = errors.New("missing-scheme-non-relative-URL")
	ErrInvalidScheme  = errors.New("invalid-scheme")
	ErrHostMissing    = host.ErrHostMissing
	ErrInvalidPort    = errors.New("port-invalid")
	ErrPortOutOfRange = errors.New("port-out-of-range")

	// ErrInvalidStateOverride is returned by ParseWithStateOverride for a
	// state that does not start a single component.
	ErrInvalidStateOverride = errors.New("invalid state override")

	// ErrCannotHaveCredentials is returned by SetUsername, SetPassword and
	// SetPort when the URL has no host, an empty host, or the file scheme.
	ErrCannotHaveCredentials = errors.New("url cannot have a username, password, or port")
	// ErrOpaquePath is returned by SetHost, SetHostname and SetPathname for
	// URLs with an opaque path.
	ErrOpaquePath = errors.New("url has an opaque path")
)

// ParseError is a fatal parse failure. No URL is produced.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorCode names a validation error.
type ErrorCode string

// Validation errors recorded by the parser. Host-level codes use the names
// from the host package.
const (
	InvalidURLUnit                       ErrorCode = "invalid-URL-unit"
	SpecialSchemeMissingFollowingSolidus ErrorCode = "special-scheme-missing-following-solidus"
	MissingSchemeNonRelativeURL          ErrorCode = "missing-scheme-non-relative-URL"
	InvalidReverseSolidus                ErrorCode = "invalid-reverse-solidus"
	InvalidCredentials                   ErrorCode = "invalid-credentials"
	MultipleAtInAuthority                ErrorCode = "multiple-@-in-authority"
	HostMissing                          ErrorCode = "host-missing"
	PortOutOfRange                       ErrorCode = "port-out-of-range"
	PortInvalid                          ErrorCode = "port-invalid"
	FileInvalidWindowsDriveLetter        ErrorCode = "file-invalid-Windows-drive-letter"
	FileInvalidWindowsDriveLetterHost    ErrorCode = "file-invalid-Windows-drive-letter-host"
)

// ValidationError is a non-fatal deviation found while parsing. Offset is
// the code point index into the input after leading/trailing C0 control
// and space stripping and tab/newline removal.
type ValidationError struct {
	Code   ErrorCode `json:"code" yaml:"code"`
	Offset int       `json:"offset" yaml:"offset"`
}

func (v ValidationError) String() string {
	return fmt.Sprintf("%s at %d", v.Code, v.Offset)
}
