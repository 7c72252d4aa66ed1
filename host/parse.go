package host

import (
	"strings"

	"github.com/jongio/weburl/percent"
)

// Parser parses hosts. The zero value uses the default IDNA mapper and
// drops non-fatal reports.
type Parser struct {
	// Mapper performs domain-to-ASCII. Nil means NewIDNA().
	Mapper Mapper
	// Report receives non-fatal validation error names.
	Report func(code string)
}

// Parse parses input as the host of a special (special=true) or
// non-special URL.
func Parse(input string, special bool) (Host, error) {
	var p Parser
	return p.Parse(input, special)
}

// Parse parses input as the host of a special (special=true) or
// non-special URL. The empty string is the empty host for non-special URLs
// and ErrHostMissing for special ones; file URLs set the empty host
// without calling Parse.
func (p *Parser) Parse(input string, special bool) (Host, error) {
	if strings.HasPrefix(input, "[") {
		if len(input) < 2 || !strings.HasSuffix(input, "]") {
			return Host{}, fail(input, ErrIPv6Unclosed)
		}
		pieces, err := parseIPv6(input[1 : len(input)-1])
		if err != nil {
			return Host{}, fail(input, err)
		}
		return FromIPv6(pieces), nil
	}
	if !special {
		return p.parseOpaque(input)
	}
	if input == "" {
		return Host{}, fail(input, ErrHostMissing)
	}
	return p.parseDomain(input)
}

func (p *Parser) parseOpaque(input string) (Host, error) {
	if containsFunc(input, isForbiddenHost) {
		return Host{}, fail(input, ErrForbiddenCodePoint)
	}
	if input == "" {
		return Empty(), nil
	}
	for i, c := range input {
		if c == '%' {
			if !percent.ValidEscapeAt(input, i) {
				p.report(WarnInvalidURLUnit)
			}
		} else if !percent.IsURLCodePoint(c) {
			p.report(WarnInvalidURLUnit)
		}
	}
	return Host{kind: KindOpaque, name: percent.Encode(input, percent.C0Control)}, nil
}

func (p *Parser) mapper() Mapper {
	if p.Mapper != nil {
		return p.Mapper
	}
	return defaultMapper
}

func (p *Parser) report(code string) {
	if p.Report != nil {
		p.Report(code)
	}
}
