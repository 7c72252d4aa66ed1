package weburl

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/jongio/weburl/host"
	"github.com/jongio/weburl/logutil"
	"github.com/jongio/weburl/percent"
	"golang.org/x/text/encoding"
)

const eof = -1

// Options configures ParseWithOptions.
type Options struct {
	// Base resolves relative input. It is only read.
	Base *URL
	// Encoding is the query output encoding for special, non-ws schemes.
	// Nil means UTF-8.
	Encoding encoding.Encoding
	// Mapper replaces the default IDNA domain-to-ASCII mapping.
	Mapper host.Mapper
}

// Parse parses input, resolving it against base when base is non-nil.
func Parse(input string, base *URL) (*URL, error) {
	return parse(input, Options{Base: base}, nil, StateNone)
}

// ParseWithOptions parses input with an explicit base, query encoding and
// domain mapper.
func ParseWithOptions(input string, opts Options) (*URL, error) {
	return parse(input, opts, nil, StateNone)
}

// ParseWithStateOverride runs the parser on input starting in state,
// against a copy of u, and returns the updated copy. u is not modified.
// A nil u starts from an empty record. Only the component owned by state
// is changed; input that the state does not accept leaves the copy as it
// was.
//
// state must be one of the component entry states: StateSchemeStart,
// StateAuthority, StateHost, StateHostname, StatePort, StatePathStart,
// StatePath, StateOpaquePath, StateQuery or StateFragment. Any other state,
// StateNone included, fails with ErrInvalidStateOverride.
func ParseWithStateOverride(input string, u *URL, state State) (*URL, error) {
	if !state.isOverride() {
		return nil, &ParseError{Input: input, Err: fmt.Errorf("%w: %s", ErrInvalidStateOverride, state)}
	}
	return parse(input, Options{}, u, state)
}

// CanParse reports whether input parses against base.
func CanParse(input string, base *URL) bool {
	_, err := Parse(input, base)
	return err == nil
}

// MustParse is like Parse without a base but panics on failure. It is
// intended for package-level variables and tests.
func MustParse(input string) *URL {
	u, err := Parse(input, nil)
	if err != nil {
		panic(err)
	}
	return u
}

// EncodingFromLabel resolves a WHATWG encoding label, for use as
// Options.Encoding.
func EncodingFromLabel(label string) (encoding.Encoding, error) {
	enc, err := percent.LookupEncoding(label)
	if err != nil {
		return nil, &ParseError{Input: label, Err: err}
	}
	return enc, nil
}

type parser struct {
	raw     string
	input   []rune
	pointer int
	buffer  []byte

	state    State
	override State

	atSignSeen        bool
	insideBrackets    bool
	passwordTokenSeen bool
	authoritySlashes  bool

	url   *URL
	base  *URL
	enc   encoding.Encoding
	hosts host.Parser
	errs  []ValidationError
}

func parse(input string, opts Options, u *URL, override State) (*URL, error) {
	p := &parser{
		raw:      input,
		base:     opts.Base,
		enc:      opts.Encoding,
		override: override,
		state:    StateSchemeStart,
	}
	p.hosts = host.Parser{
		Mapper: opts.Mapper,
		Report: func(code string) { p.validation(ErrorCode(code)) },
	}
	if override != StateNone {
		p.state = override
		p.base = nil
	}
	if u == nil {
		p.url = newURL()
	} else {
		p.url = u.Clone()
	}
	p.input = p.prepare(input)

	if err := p.run(); err != nil {
		logResult(input, nil, err)
		return nil, err
	}
	p.url.diagnostics = p.errs
	logResult(input, p.url, nil)
	return p.url, nil
}

// prepare strips leading and trailing C0 controls and spaces (not for
// component re-parses) and removes every tab and newline.
func (p *parser) prepare(input string) []rune {
	if p.override == StateNone {
		trimmed := strings.TrimFunc(input, func(r rune) bool { return r <= ' ' })
		if len(trimmed) != len(input) {
			p.validation(InvalidURLUnit)
		}
		input = trimmed
	}
	if strings.ContainsAny(input, "\t\n\r") {
		p.validation(InvalidURLUnit)
		input = strings.Map(func(r rune) rune {
			if r == '\t' || r == '\n' || r == '\r' {
				return -1
			}
			return r
		}, input)
	}
	return []rune(input)
}

func (p *parser) run() error {
	for {
		done, err := p.step(p.at(p.pointer))
		if err != nil || done {
			return err
		}
		if p.pointer >= len(p.input) {
			return nil
		}
		p.pointer++
	}
}

// step runs the current state on c. done means a state override finished
// early and the URL is final as it stands.
func (p *parser) step(c rune) (done bool, err error) {
	switch p.state {
	case StateSchemeStart:
		return p.schemeStart(c)
	case StateScheme:
		return p.scheme(c)
	case StateNoScheme:
		return p.noScheme(c)
	case StateSpecialRelativeOrAuthority:
		return p.specialRelativeOrAuthority(c)
	case StatePathOrAuthority:
		return p.pathOrAuthority(c)
	case StateRelative:
		return p.relative(c)
	case StateRelativeSlash:
		return p.relativeSlash(c)
	case StateSpecialAuthoritySlashes:
		return p.specialAuthoritySlashes(c)
	case StateSpecialAuthorityIgnoreSlashes:
		return p.specialAuthorityIgnoreSlashes(c)
	case StateAuthority:
		return p.authority(c)
	case StateHost, StateHostname:
		return p.host(c)
	case StatePort:
		return p.port(c)
	case StateFile:
		return p.file(c)
	case StateFileSlash:
		return p.fileSlash(c)
	case StateFileHost:
		return p.fileHost(c)
	case StatePathStart:
		return p.pathStart(c)
	case StatePath:
		return p.path(c)
	case StateOpaquePath:
		return p.opaquePath(c)
	case StateQuery:
		return p.query(c)
	case StateFragment:
		return p.fragment(c)
	}
	return false, p.fail(errors.New("unknown parser state " + p.state.String()))
}

func (p *parser) schemeStart(c rune) (bool, error) {
	switch {
	case isASCIIAlpha(c):
		p.buffer = append(p.buffer, toLowerASCII(c))
		p.state = StateScheme
	case p.override == StateNone:
		p.state = StateNoScheme
		p.pointer--
	default:
		return false, p.fail(ErrInvalidScheme)
	}
	return false, nil
}

func (p *parser) scheme(c rune) (bool, error) {
	switch {
	case isASCIIAlphanumeric(c) || c == '+' || c == '-' || c == '.':
		p.buffer = append(p.buffer, toLowerASCII(c))
	case c == ':':
		scheme := string(p.buffer)
		if p.override != StateNone {
			if p.url.IsSpecial() != IsSpecialScheme(scheme) {
				return true, nil
			}
			if (p.url.IncludesCredentials() || p.url.port >= 0) && scheme == "file" {
				return true, nil
			}
			if p.url.scheme == "file" && p.url.hasHost && p.url.host.IsEmpty() {
				return true, nil
			}
		}
		p.url.scheme = scheme
		if p.override != StateNone {
			if port, ok := DefaultPort(scheme); ok && p.url.port == int(port) {
				p.url.port = -1
			}
			return true, nil
		}
		p.buffer = p.buffer[:0]
		switch {
		case scheme == "file":
			if !p.remainingStartsWith("//") {
				p.validation(SpecialSchemeMissingFollowingSolidus)
			}
			p.state = StateFile
		case p.url.IsSpecial() && p.base != nil && p.base.scheme == scheme:
			p.state = StateSpecialRelativeOrAuthority
		case p.url.IsSpecial():
			p.state = StateSpecialAuthoritySlashes
		case p.remainingStartsWith("/"):
			p.state = StatePathOrAuthority
			p.pointer++
		default:
			p.url.setOpaquePath("")
			p.state = StateOpaquePath
		}
	case p.override == StateNone:
		p.buffer = p.buffer[:0]
		p.state = StateNoScheme
		p.pointer = -1
	default:
		return false, p.fail(ErrInvalidScheme)
	}
	return false, nil
}

func (p *parser) noScheme(c rune) (bool, error) {
	switch {
	case p.base == nil || (p.base.hasOpaquePath && c != '#'):
		p.validation(MissingSchemeNonRelativeURL)
		return false, p.fail(ErrMissingScheme)
	case p.base.hasOpaquePath:
		p.url.scheme = p.base.scheme
		p.url.setOpaquePath(p.base.opaque)
		p.url.query, p.url.hasQuery = p.base.query, p.base.hasQuery
		p.url.setFragment("")
		p.state = StateFragment
	case p.base.scheme != "file":
		p.state = StateRelative
		p.pointer--
	default:
		p.state = StateFile
		p.pointer--
	}
	return false, nil
}

func (p *parser) specialRelativeOrAuthority(c rune) (bool, error) {
	if c == '/' && p.remainingStartsWith("/") {
		p.state = StateSpecialAuthorityIgnoreSlashes
		p.authoritySlashes = true
		p.pointer++
		return false, nil
	}
	p.validation(SpecialSchemeMissingFollowingSolidus)
	p.state = StateRelative
	p.pointer--
	return false, nil
}

func (p *parser) pathOrAuthority(c rune) (bool, error) {
	if c == '/' {
		p.state = StateAuthority
	} else {
		p.state = StatePath
		p.pointer--
	}
	return false, nil
}

func (p *parser) relative(c rune) (bool, error) {
	p.url.scheme = p.base.scheme
	switch {
	case c == '/':
		p.state = StateRelativeSlash
	case p.url.IsSpecial() && c == '\\':
		p.validation(InvalidReverseSolidus)
		p.state = StateRelativeSlash
	default:
		p.url.copyAuthority(p.base)
		p.url.path = slices.Clone(p.base.path)
		p.url.query, p.url.hasQuery = p.base.query, p.base.hasQuery
		switch {
		case c == '?':
			p.url.setQuery("")
			p.state = StateQuery
		case c == '#':
			p.url.setFragment("")
			p.state = StateFragment
		case c != eof:
			p.url.query, p.url.hasQuery = "", false
			p.url.shortenPath()
			p.state = StatePath
			p.pointer--
		}
	}
	return false, nil
}

func (p *parser) relativeSlash(c rune) (bool, error) {
	switch {
	case p.url.IsSpecial() && (c == '/' || c == '\\'):
		if c == '\\' {
			p.validation(InvalidReverseSolidus)
		}
		p.state = StateSpecialAuthorityIgnoreSlashes
		p.authoritySlashes = true
	case c == '/':
		p.state = StateAuthority
	default:
		p.url.copyAuthority(p.base)
		p.state = StatePath
		p.pointer--
	}
	return false, nil
}

func (p *parser) specialAuthoritySlashes(c rune) (bool, error) {
	if c == '/' && p.remainingStartsWith("/") {
		p.authoritySlashes = true
		p.pointer++
	} else {
		p.validation(SpecialSchemeMissingFollowingSolidus)
		p.pointer--
	}
	p.state = StateSpecialAuthorityIgnoreSlashes
	return false, nil
}

// specialAuthorityIgnoreSlashes skips stray slashes before an authority.
// Once "//" has been seen, a further slash means the authority is empty,
// which a special URL does not allow.
func (p *parser) specialAuthorityIgnoreSlashes(c rune) (bool, error) {
	if c != '/' && c != '\\' {
		p.state = StateAuthority
		p.pointer--
		return false, nil
	}
	if p.authoritySlashes {
		p.validation(HostMissing)
		return false, p.fail(ErrHostMissing)
	}
	p.validation(SpecialSchemeMissingFollowingSolidus)
	return false, nil
}

// authority collects userinfo. Everything before the last '@' is
// credentials: each earlier '@' is kept in the username or password as %40,
// and the first ':' across all of it splits username from password.
func (p *parser) authority(c rune) (bool, error) {
	switch {
	case c == '@':
		if p.atSignSeen {
			p.validation(MultipleAtInAuthority)
			p.buffer = append([]byte("%40"), p.buffer...)
		} else {
			p.validation(InvalidCredentials)
		}
		p.atSignSeen = true
		user, pass := []byte(p.url.username), []byte(p.url.password)
		for _, r := range string(p.buffer) {
			if r == ':' && !p.passwordTokenSeen {
				p.passwordTokenSeen = true
				continue
			}
			if p.passwordTokenSeen {
				pass = percent.AppendRune(pass, r, percent.Userinfo)
			} else {
				user = percent.AppendRune(user, r, percent.Userinfo)
			}
		}
		p.url.username, p.url.password = string(user), string(pass)
		p.buffer = p.buffer[:0]
	case p.isAuthorityEnd(c):
		if p.atSignSeen && len(p.buffer) == 0 {
			p.validation(HostMissing)
			return false, p.fail(ErrHostMissing)
		}
		p.pointer -= utf8.RuneCount(p.buffer) + 1
		p.buffer = p.buffer[:0]
		p.state = StateHost
	default:
		p.buffer = utf8.AppendRune(p.buffer, c)
	}
	return false, nil
}

func (p *parser) host(c rune) (bool, error) {
	special := p.url.IsSpecial()
	switch {
	case p.override != StateNone && p.url.scheme == "file":
		p.pointer--
		p.state = StateFileHost
	case c == ':' && !p.insideBrackets:
		if len(p.buffer) == 0 {
			p.validation(HostMissing)
			return false, p.fail(ErrHostMissing)
		}
		if p.override == StateHostname {
			return true, nil
		}
		h, err := p.hosts.Parse(string(p.buffer), special)
		if err != nil {
			return false, p.fail(err)
		}
		p.url.setHost(h)
		p.buffer = p.buffer[:0]
		p.state = StatePort
	case p.isAuthorityEnd(c):
		p.pointer--
		if special && len(p.buffer) == 0 {
			p.validation(HostMissing)
			return false, p.fail(ErrHostMissing)
		}
		if p.override != StateNone && len(p.buffer) == 0 && (p.url.IncludesCredentials() || p.url.port >= 0) {
			return true, nil
		}
		h, err := p.hosts.Parse(string(p.buffer), special)
		if err != nil {
			return false, p.fail(err)
		}
		p.url.setHost(h)
		p.buffer = p.buffer[:0]
		p.state = StatePathStart
		if p.override != StateNone {
			return true, nil
		}
	default:
		if c == '[' {
			p.insideBrackets = true
		} else if c == ']' {
			p.insideBrackets = false
		}
		p.buffer = utf8.AppendRune(p.buffer, c)
	}
	return false, nil
}

func (p *parser) port(c rune) (bool, error) {
	switch {
	case isASCIIDigit(c):
		p.buffer = append(p.buffer, byte(c))
	case p.isAuthorityEnd(c) || p.override != StateNone:
		if len(p.buffer) > 0 {
			port := 0
			for _, d := range p.buffer {
				port = port*10 + int(d-'0')
				if port > 65535 {
					p.validation(PortOutOfRange)
					return false, p.fail(ErrPortOutOfRange)
				}
			}
			if def, ok := DefaultPort(p.url.scheme); ok && int(def) == port {
				p.url.port = -1
			} else {
				p.url.port = port
			}
			p.buffer = p.buffer[:0]
		}
		if p.override != StateNone {
			return true, nil
		}
		p.state = StatePathStart
		p.pointer--
	default:
		p.validation(PortInvalid)
		return false, p.fail(ErrInvalidPort)
	}
	return false, nil
}

func (p *parser) file(c rune) (bool, error) {
	p.url.scheme = "file"
	p.url.setHost(host.Empty())
	switch {
	case c == '/' || c == '\\':
		if c == '\\' {
			p.validation(InvalidReverseSolidus)
		}
		p.state = StateFileSlash
	case p.base != nil && p.base.scheme == "file":
		p.url.host, p.url.hasHost = p.base.host, p.base.hasHost
		p.url.path = slices.Clone(p.base.path)
		p.url.query, p.url.hasQuery = p.base.query, p.base.hasQuery
		switch {
		case c == '?':
			p.url.setQuery("")
			p.state = StateQuery
		case c == '#':
			p.url.setFragment("")
			p.state = StateFragment
		case c != eof:
			p.url.query, p.url.hasQuery = "", false
			if !startsWithWindowsDriveLetter(p.input[p.pointer:]) {
				p.url.shortenPath()
			} else {
				p.validation(FileInvalidWindowsDriveLetter)
				p.url.path = nil
			}
			p.state = StatePath
			p.pointer--
		}
	default:
		p.state = StatePath
		p.pointer--
	}
	return false, nil
}

func (p *parser) fileSlash(c rune) (bool, error) {
	if c == '/' || c == '\\' {
		if c == '\\' {
			p.validation(InvalidReverseSolidus)
		}
		p.state = StateFileHost
		return false, nil
	}
	if p.base != nil && p.base.scheme == "file" {
		p.url.host, p.url.hasHost = p.base.host, p.base.hasHost
		if !startsWithWindowsDriveLetter(p.input[p.pointer:]) &&
			len(p.base.path) > 0 && isNormalizedWindowsDriveLetter(p.base.path[0]) {
			p.url.path = append(p.url.path, p.base.path[0])
		}
	}
	p.state = StatePath
	p.pointer--
	return false, nil
}

func (p *parser) fileHost(c rune) (bool, error) {
	if c != eof && c != '/' && c != '\\' && c != '?' && c != '#' {
		p.buffer = utf8.AppendRune(p.buffer, c)
		return false, nil
	}
	p.pointer--
	switch {
	case p.override == StateNone && isWindowsDriveLetter(string(p.buffer)):
		// The buffer is kept and becomes the first path segment.
		p.validation(FileInvalidWindowsDriveLetterHost)
		p.state = StatePath
	case len(p.buffer) == 0:
		p.url.setHost(host.Empty())
		if p.override != StateNone {
			return true, nil
		}
		p.state = StatePathStart
	default:
		h, err := p.hosts.Parse(string(p.buffer), true)
		if err != nil {
			return false, p.fail(err)
		}
		if name, ok := h.Domain(); ok && name == "localhost" {
			h = host.Empty()
		}
		p.url.setHost(h)
		if p.override != StateNone {
			return true, nil
		}
		p.buffer = p.buffer[:0]
		p.state = StatePathStart
	}
	return false, nil
}

func (p *parser) pathStart(c rune) (bool, error) {
	switch {
	case p.url.IsSpecial():
		if c == '\\' {
			p.validation(InvalidReverseSolidus)
		}
		p.state = StatePath
		if c != '/' && c != '\\' {
			p.pointer--
		}
	case p.override == StateNone && c == '?':
		p.url.setQuery("")
		p.state = StateQuery
	case p.override == StateNone && c == '#':
		p.url.setFragment("")
		p.state = StateFragment
	case c != eof:
		p.state = StatePath
		if c != '/' {
			p.pointer--
		}
	case p.override != StateNone && !p.url.hasHost:
		p.url.path = append(p.url.path, "")
	}
	return false, nil
}

func (p *parser) path(c rune) (bool, error) {
	special := p.url.IsSpecial()
	slash := c == '/' || (special && c == '\\')
	if c != eof && !slash && (p.override != StateNone || (c != '?' && c != '#')) {
		p.checkURLUnit(c)
		p.buffer = percent.AppendRune(p.buffer, c, percent.Path)
		return false, nil
	}

	if special && c == '\\' {
		p.validation(InvalidReverseSolidus)
	}
	segment := string(p.buffer)
	switch {
	case isDoubleDotSegment(segment):
		p.url.shortenPath()
		if !slash {
			p.url.path = append(p.url.path, "")
		}
	case isSingleDotSegment(segment):
		if !slash {
			p.url.path = append(p.url.path, "")
		}
	default:
		if p.url.scheme == "file" && len(p.url.path) == 0 && isWindowsDriveLetter(segment) {
			segment = segment[:1] + ":"
		}
		p.url.path = append(p.url.path, segment)
	}
	p.buffer = p.buffer[:0]

	switch c {
	case '?':
		p.url.setQuery("")
		p.state = StateQuery
	case '#':
		p.url.setFragment("")
		p.state = StateFragment
	}
	return false, nil
}

func (p *parser) opaquePath(c rune) (bool, error) {
	switch c {
	case '?', '#', eof:
		p.url.opaque += string(p.buffer)
		p.buffer = p.buffer[:0]
		if c == '?' {
			p.url.setQuery("")
			p.state = StateQuery
		} else if c == '#' {
			p.url.setFragment("")
			p.state = StateFragment
		}
	default:
		p.checkURLUnit(c)
		p.buffer = percent.AppendRune(p.buffer, c, percent.C0Control)
	}
	return false, nil
}

func (p *parser) query(c rune) (bool, error) {
	if c != eof && (p.override != StateNone || c != '#') {
		p.checkURLUnit(c)
		p.buffer = utf8.AppendRune(p.buffer, c)
		return false, nil
	}

	set := percent.Query
	if p.url.IsSpecial() {
		set = percent.SpecialQuery
	}
	enc := p.enc
	if !p.url.IsSpecial() || p.url.scheme == "ws" || p.url.scheme == "wss" {
		enc = nil
	}
	p.url.query += percent.EncodeWithEncoding(string(p.buffer), enc, set)
	p.buffer = p.buffer[:0]
	if c == '#' {
		p.url.setFragment("")
		p.state = StateFragment
	}
	return false, nil
}

func (p *parser) fragment(c rune) (bool, error) {
	if c == eof {
		p.url.fragment += string(p.buffer)
		p.buffer = p.buffer[:0]
		return false, nil
	}
	p.checkURLUnit(c)
	p.buffer = percent.AppendRune(p.buffer, c, percent.Fragment)
	return false, nil
}

func (p *parser) at(i int) rune {
	if i < 0 || i >= len(p.input) {
		return eof
	}
	return p.input[i]
}

func (p *parser) remainingStartsWith(s string) bool {
	i := p.pointer + 1
	for _, r := range s {
		if p.at(i) != r {
			return false
		}
		i++
	}
	return true
}

func (p *parser) isAuthorityEnd(c rune) bool {
	return c == eof || c == '/' || c == '?' || c == '#' || (c == '\\' && p.url.IsSpecial())
}

// checkURLUnit records invalid-URL-unit for code points that are not URL
// code points and for '%' not followed by two hex digits.
func (p *parser) checkURLUnit(c rune) {
	if c == '%' {
		if !isASCIIHex(p.at(p.pointer+1)) || !isASCIIHex(p.at(p.pointer+2)) {
			p.validation(InvalidURLUnit)
		}
		return
	}
	if !percent.IsURLCodePoint(c) {
		p.validation(InvalidURLUnit)
	}
}

func (p *parser) validation(code ErrorCode) {
	p.errs = append(p.errs, ValidationError{Code: code, Offset: max(p.pointer, 0)})
}

func (p *parser) fail(err error) error {
	return &ParseError{Input: p.raw, Err: err}
}

func logResult(input string, u *URL, err error) {
	if !logutil.IsDebugEnabled() {
		return
	}
	log := logutil.NewLogger("weburl").WithOperation("parse").WithInput(input)
	if err != nil {
		log.Debug("parse failed", "error", err)
		return
	}
	for _, v := range u.diagnostics {
		log.Debug("validation error", "code", string(v.Code), "offset", v.Offset)
	}
}
