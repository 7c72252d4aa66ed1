package host

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jongio/weburl/percent"
	"golang.org/x/net/idna"
)

// Mapper converts a Unicode domain to its ASCII-compatible form.
type Mapper interface {
	ToASCII(domain string) (string, error)
}

// MapperFunc adapts a function to Mapper.
type MapperFunc func(domain string) (string, error)

// ToASCII calls f(domain).
func (f MapperFunc) ToASCII(domain string) (string, error) {
	return f(domain)
}

// IDNA is the default Mapper: UTS #46 non-transitional processing with
// CheckBidi and CheckJoiners on, and hyphen checks, STD3 rules and DNS
// length verification off.
type IDNA struct {
	profile *idna.Profile
}

// NewIDNA returns the default domain-to-ASCII mapper.
func NewIDNA() *IDNA {
	return &IDNA{
		profile: idna.New(
			idna.MapForLookup(),
			idna.BidiRule(),
			idna.CheckJoiners(true),
			idna.CheckHyphens(false),
			idna.StrictDomainName(false),
			idna.VerifyDNSLength(false),
			idna.Transitional(false),
		),
	}
}

// ToASCII lowercases plain ASCII domains directly and sends everything else
// (non-ASCII or containing an xn-- label) through the IDNA profile.
func (m *IDNA) ToASCII(domain string) (string, error) {
	if isPlainASCII(domain) {
		return strings.ToLower(domain), nil
	}
	return m.profile.ToASCII(domain)
}

func isPlainASCII(domain string) bool {
	for i := 0; i < len(domain); i++ {
		if domain[i] >= utf8.RuneSelf {
			return false
		}
	}
	for _, label := range strings.Split(domain, ".") {
		if len(label) >= 4 && strings.EqualFold(label[:4], "xn--") {
			return false
		}
	}
	return true
}

var defaultMapper Mapper = NewIDNA()

func (p *Parser) parseDomain(input string) (Host, error) {
	domain := strings.ToValidUTF8(percent.DecodeString(input), "\uFFFD")

	ascii, err := p.mapper().ToASCII(domain)
	if err != nil {
		return Host{}, fail(input, fmt.Errorf("%w: %w", ErrDomainToASCII, err))
	}
	if ascii == "" {
		return Host{}, fail(input, ErrDomainToASCII)
	}
	if containsFunc(ascii, isForbiddenDomain) {
		return Host{}, fail(input, ErrDomainInvalidCodePoint)
	}

	labels := strings.Split(ascii, ".")
	for i, label := range labels {
		if label == "" && i != len(labels)-1 {
			return Host{}, fail(input, ErrEmptyLabel)
		}
	}

	if endsInNumber(ascii) {
		return p.parseIPv4(ascii)
	}
	return Host{kind: KindDomain, name: ascii}, nil
}
