package weburl

import (
	"slices"
	"strconv"

	"github.com/jongio/weburl/host"
)

// URL is a parsed URL record. The zero value is not a valid URL; obtain
// one from Parse.
type URL struct {
	scheme   string
	username string
	password string

	host    host.Host
	hasHost bool
	port    int // -1 when absent

	path          []string
	opaque        string
	hasOpaquePath bool

	query       string
	hasQuery    bool
	fragment    string
	hasFragment bool

	diagnostics []ValidationError
}

func newURL() *URL {
	return &URL{port: -1}
}

// Clone returns a deep copy of u.
func (u *URL) Clone() *URL {
	c := *u
	c.path = slices.Clone(u.path)
	c.diagnostics = slices.Clone(u.diagnostics)
	return &c
}

// Scheme returns the lowercase scheme without the trailing colon.
func (u *URL) Scheme() string {
	return u.scheme
}

// Username returns the percent-encoded username, or "".
func (u *URL) Username() string {
	return u.username
}

// Password returns the percent-encoded password, or "".
func (u *URL) Password() string {
	return u.password
}

// IncludesCredentials reports whether the username or password is non-empty.
func (u *URL) IncludesCredentials() bool {
	return u.username != "" || u.password != ""
}

// Host returns the host and whether the URL has one. URLs without an
// authority, such as mailto:x, have no host.
func (u *URL) Host() (host.Host, bool) {
	return u.host, u.hasHost
}

// Hostname returns the serialized host, or "" when there is none.
func (u *URL) Hostname() string {
	if !u.hasHost {
		return ""
	}
	return u.host.String()
}

// HostPort returns the serialized host followed by :port when a
// non-default port is set.
func (u *URL) HostPort() string {
	if !u.hasHost {
		return ""
	}
	if u.port < 0 {
		return u.host.String()
	}
	return u.host.String() + ":" + strconv.Itoa(u.port)
}

// Port returns the port and whether one is set. A port equal to the
// scheme's default is never set.
func (u *URL) Port() (uint16, bool) {
	if u.port < 0 {
		return 0, false
	}
	return uint16(u.port), true
}

// PortString returns the port in decimal, or "".
func (u *URL) PortString() string {
	if u.port < 0 {
		return ""
	}
	return strconv.Itoa(u.port)
}

// PathSegments returns a copy of the path segments. It returns nil for
// URLs with an opaque path.
func (u *URL) PathSegments() []string {
	if u.hasOpaquePath {
		return nil
	}
	return slices.Clone(u.path)
}

// HasOpaquePath reports whether the path is a single opaque string, as in
// mailto:user@example.com.
func (u *URL) HasOpaquePath() bool {
	return u.hasOpaquePath
}

// IsSpecial reports whether the scheme is special.
func (u *URL) IsSpecial() bool {
	return IsSpecialScheme(u.scheme)
}

// Query returns the percent-encoded query without the leading '?', and
// whether a query is present. "http://x/?" has an empty, present query.
func (u *URL) Query() (string, bool) {
	return u.query, u.hasQuery
}

// Fragment returns the percent-encoded fragment without the leading '#',
// and whether a fragment is present.
func (u *URL) Fragment() (string, bool) {
	return u.fragment, u.hasFragment
}

// ValidationErrors returns the non-fatal errors found by the parse or
// setter call that produced u's current state.
func (u *URL) ValidationErrors() []ValidationError {
	return slices.Clone(u.diagnostics)
}

// Protocol returns the scheme followed by ':'.
func (u *URL) Protocol() string {
	return u.scheme + ":"
}

// Pathname returns the serialized path.
func (u *URL) Pathname() string {
	return u.Path()
}

// Search returns "?" + query, or "" when the query is absent or empty.
func (u *URL) Search() string {
	if !u.hasQuery || u.query == "" {
		return ""
	}
	return "?" + u.query
}

// Hash returns "#" + fragment, or "" when the fragment is absent or empty.
func (u *URL) Hash() string {
	if !u.hasFragment || u.fragment == "" {
		return ""
	}
	return "#" + u.fragment
}

// Equal reports whether u and o serialize identically. Validation errors
// are not compared.
func (u *URL) Equal(o *URL, excludeFragments bool) bool {
	if u == nil || o == nil {
		return u == o
	}
	return u.serialize(excludeFragments) == o.serialize(excludeFragments)
}

// Parse resolves ref against u.
func (u *URL) Parse(ref string) (*URL, error) {
	return Parse(ref, u)
}

// MarshalText returns the serialized URL.
func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.Href()), nil
}

// UnmarshalText parses text as an absolute URL into u.
func (u *URL) UnmarshalText(text []byte) error {
	v, err := Parse(string(text), nil)
	if err != nil {
		return err
	}
	*u = *v
	return nil
}

func (u *URL) setHost(h host.Host) {
	u.host, u.hasHost = h, true
}

func (u *URL) setOpaquePath(s string) {
	u.path = nil
	u.opaque, u.hasOpaquePath = s, true
}

func (u *URL) setQuery(q string) {
	u.query, u.hasQuery = q, true
}

func (u *URL) setFragment(f string) {
	u.fragment, u.hasFragment = f, true
}

// copyAuthority copies credentials, host and port from base.
func (u *URL) copyAuthority(base *URL) {
	u.username, u.password = base.username, base.password
	u.host, u.hasHost = base.host, base.hasHost
	u.port = base.port
}

// shortenPath drops the last segment, keeping a lone normalized Windows
// drive letter in file URLs.
func (u *URL) shortenPath() {
	if u.scheme == "file" && len(u.path) == 1 && isNormalizedWindowsDriveLetter(u.path[0]) {
		return
	}
	if len(u.path) > 0 {
		u.path = u.path[:len(u.path)-1]
	}
}

func (u *URL) cannotHaveCredentialsOrPort() bool {
	return !u.hasHost || u.host.IsEmpty() || u.scheme == "file"
}
