package urlutil

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jongio/weburl/host"
	"github.com/jongio/weburl/weburl"
)

const (
	// MaxURLLength is the practical limit for URL length
	MaxURLLength = 2048
	// MaxDomainLength is the DNS limit for a domain name in text form
	MaxDomainLength = 253
	// MaxLabelLength is the DNS limit for a single label
	MaxLabelLength = 63
)

var idna = host.NewIDNA()

// Validate performs HTTP/HTTPS URL validation using the WHATWG parser.
// It validates that the URL:
//   - Is not empty or only whitespace
//   - Does not exceed MaxURLLength (2048 characters)
//   - Parses as an absolute URL
//   - Uses http:// or https:// protocol
//   - Has a non-empty host
//
// Returns an error with context if validation fails.
//
// Example:
//
//	if err := urlutil.Validate("https://example.com"); err != nil {
//		return fmt.Errorf("invalid URL: %w", err)
//	}
func Validate(rawURL string) error {
	_, err := validate(rawURL)
	return err
}

func validate(rawURL string) (*weburl.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("url cannot be empty")
	}
	if len(rawURL) > MaxURLLength {
		return nil, fmt.Errorf("url exceeds maximum length of %d characters", MaxURLLength)
	}

	parsed, err := weburl.Parse(rawURL, nil)
	switch {
	case errors.Is(err, weburl.ErrMissingScheme):
		return nil, fmt.Errorf("url must use http:// or https://")
	case errors.Is(err, weburl.ErrHostMissing):
		return nil, fmt.Errorf("url missing host/domain: %w", err)
	case err != nil:
		return nil, fmt.Errorf("invalid URL format: %w", err)
	}

	if scheme := parsed.Scheme(); scheme != "http" && scheme != "https" {
		return nil, fmt.Errorf("url must use http:// or https://, got: %s", scheme)
	}
	if parsed.Hostname() == "" {
		return nil, fmt.Errorf("url missing host/domain")
	}
	return parsed, nil
}

// ValidateHTTPSOnly enforces HTTPS-only URLs.
// It allows HTTP for loopback hosts (localhost, 127.0.0.0/8, ::1) for local
// development, but rejects all other HTTP URLs.
//
// Example:
//
//	if err := urlutil.ValidateHTTPSOnly(apiEndpoint); err != nil {
//		return fmt.Errorf("endpoint must use HTTPS: %w", err)
//	}
func ValidateHTTPSOnly(rawURL string) error {
	parsed, err := validate(rawURL)
	if err != nil {
		return err
	}
	if parsed.Scheme() == "https" {
		return nil
	}
	if h, _ := parsed.Host(); isLoopback(h) {
		return nil
	}
	return fmt.Errorf("url must use https:// (http:// only allowed for localhost)")
}

// Parse validates rawURL with Validate and returns the parsed URL.
//
// Example:
//
//	parsed, err := urlutil.Parse(userInput)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Host: %s\n", parsed.HostPort())
func Parse(rawURL string) (*weburl.URL, error) {
	return validate(rawURL)
}

// NormalizeScheme ensures URL has http:// or https:// prefix.
// If the URL already parses with an http or https scheme, it is returned
// trimmed but otherwise unchanged. Anything else, including "host:port"
// which parses with "host" as its scheme, gets defaultScheme prepended.
//
// Example:
//
//	normalized := urlutil.NormalizeScheme("example.com:8080", "https")
//	// Returns: "https://example.com:8080"
func NormalizeScheme(rawURL, defaultScheme string) string {
	rawURL = strings.TrimSpace(rawURL)

	parsed, err := weburl.Parse(rawURL, nil)
	if err == nil && (parsed.Scheme() == "http" || parsed.Scheme() == "https") {
		return rawURL
	}
	return defaultScheme + "://" + rawURL
}

// SameOrigin reports whether two absolute URLs share a tuple origin.
// URLs with an opaque origin, such as file: or data:, are never same-origin.
func SameOrigin(a, b string) (bool, error) {
	ua, err := weburl.Parse(a, nil)
	if err != nil {
		return false, err
	}
	ub, err := weburl.Parse(b, nil)
	if err != nil {
		return false, err
	}
	oa := ua.Origin()
	return oa != "null" && oa == ub.Origin(), nil
}

// ValidateDomain checks that domain is a bare DNS name suitable for
// configuration: no scheme, no port, LDH labels of at most 63 characters,
// at least one dot unless it is localhost, and not an IPv4 address.
// Internationalized names are checked in their ASCII form.
func ValidateDomain(domain string) error {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return fmt.Errorf("domain cannot be empty")
	}
	if strings.Contains(domain, "://") {
		return fmt.Errorf("domain should not include protocol")
	}
	if strings.Contains(domain, ":") {
		return fmt.Errorf("domain should not include port")
	}

	ascii := strings.ToLower(domain)
	if !isASCII(domain) {
		var err error
		if ascii, err = idna.ToASCII(domain); err != nil {
			return fmt.Errorf("invalid internationalized domain: %w", err)
		}
	}
	if len(ascii) > MaxDomainLength {
		return fmt.Errorf("domain exceeds maximum length of %d characters", MaxDomainLength)
	}

	labels := strings.Split(ascii, ".")
	for _, label := range labels {
		if err := validateLabel(label); err != nil {
			return err
		}
	}
	if len(labels) == 1 && ascii != "localhost" {
		return fmt.Errorf("domain must have at least one dot")
	}

	h, err := host.Parse(ascii, true)
	if err != nil {
		return fmt.Errorf("invalid domain: %w", err)
	}
	if h.Kind() != host.KindDomain {
		return fmt.Errorf("domain must not be an IP address")
	}
	return nil
}

func validateLabel(label string) error {
	if label == "" {
		return fmt.Errorf("domain has empty label")
	}
	if len(label) > MaxLabelLength {
		return fmt.Errorf("domain label exceeds %d characters", MaxLabelLength)
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if !('a' <= c && c <= 'z') && !('0' <= c && c <= '9') && c != '-' {
			return fmt.Errorf("domain label contains invalid character %q", c)
		}
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return fmt.Errorf("domain label cannot start or end with hyphen")
	}
	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// isLoopback reports whether h is localhost, an IPv4 address in
// 127.0.0.0/8, or the IPv6 loopback address.
func isLoopback(h host.Host) bool {
	if name, ok := h.Domain(); ok {
		return name == "localhost" || strings.HasSuffix(name, ".localhost")
	}
	if octets, ok := h.IPv4Octets(); ok {
		return octets[0] == 127
	}
	if pieces, ok := h.IPv6(); ok {
		return pieces == [8]uint16{7: 1}
	}
	return false
}
