package weburl

import (
	"strconv"
	"strings"
)

// Href returns the serialized URL.
func (u *URL) Href() string {
	return u.serialize(false)
}

// String returns the serialized URL.
func (u *URL) String() string {
	return u.serialize(false)
}

func (u *URL) serialize(excludeFragment bool) string {
	var b strings.Builder
	b.Grow(len(u.scheme) + len(u.opaque) + len(u.query) + len(u.fragment) + 32)

	b.WriteString(u.scheme)
	b.WriteByte(':')
	if u.hasHost {
		b.WriteString("//")
		if u.IncludesCredentials() {
			b.WriteString(u.username)
			if u.password != "" {
				b.WriteByte(':')
				b.WriteString(u.password)
			}
			b.WriteByte('@')
		}
		b.WriteString(u.host.String())
		if u.port >= 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(u.port))
		}
	} else if !u.hasOpaquePath && len(u.path) > 1 && u.path[0] == "" {
		// Keeps "web+x:/.//p" from re-parsing with "p" as its host.
		b.WriteString("/.")
	}
	u.writePath(&b)
	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if !excludeFragment && u.hasFragment {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}

// Path returns the serialized path: the opaque path as-is, otherwise each
// segment prefixed with '/'.
func (u *URL) Path() string {
	if u.hasOpaquePath {
		return u.opaque
	}
	var b strings.Builder
	u.writePath(&b)
	return b.String()
}

func (u *URL) writePath(b *strings.Builder) {
	if u.hasOpaquePath {
		b.WriteString(u.opaque)
		return
	}
	for _, seg := range u.path {
		b.WriteByte('/')
		b.WriteString(seg)
	}
}

// Origin returns the ASCII serialization of u's origin. URLs with a
// tuple origin (ftp, http, https, ws, wss) serialize as scheme://host[:port];
// blob: URLs use the origin of the URL in their path when it is http(s);
// everything else is "null".
func (u *URL) Origin() string {
	switch u.scheme {
	case "ftp", "http", "https", "ws", "wss":
		return u.scheme + "://" + u.HostPort()
	case "blob":
		inner, err := Parse(u.Path(), nil)
		if err == nil && (inner.scheme == "http" || inner.scheme == "https") {
			return inner.Origin()
		}
	}
	return "null"
}

// Components is a flat view of a URL for display and encoding.
type Components struct {
	Href             string            `json:"href" yaml:"href"`
	Origin           string            `json:"origin" yaml:"origin"`
	Scheme           string            `json:"scheme" yaml:"scheme"`
	Username         string            `json:"username,omitempty" yaml:"username,omitempty"`
	Password         string            `json:"password,omitempty" yaml:"password,omitempty"`
	Host             string            `json:"host,omitempty" yaml:"host,omitempty"`
	HostKind         string            `json:"hostKind,omitempty" yaml:"hostKind,omitempty"`
	Port             string            `json:"port,omitempty" yaml:"port,omitempty"`
	Path             string            `json:"path" yaml:"path"`
	PathSegments     []string          `json:"pathSegments,omitempty" yaml:"pathSegments,omitempty"`
	Query            *string           `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment         *string           `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	Special          bool              `json:"special" yaml:"special"`
	OpaquePath       bool              `json:"opaquePath" yaml:"opaquePath"`
	ValidationErrors []ValidationError `json:"validationErrors,omitempty" yaml:"validationErrors,omitempty"`
}

// Components returns the flat view of u.
func (u *URL) Components() Components {
	c := Components{
		Href:             u.Href(),
		Origin:           u.Origin(),
		Scheme:           u.scheme,
		Username:         u.username,
		Password:         u.password,
		Host:             u.Hostname(),
		Port:             u.PortString(),
		Path:             u.Path(),
		PathSegments:     u.PathSegments(),
		Special:          u.IsSpecial(),
		OpaquePath:       u.hasOpaquePath,
		ValidationErrors: u.ValidationErrors(),
	}
	if u.hasHost {
		c.HostKind = u.host.Kind().String()
	}
	if u.hasQuery {
		q := u.query
		c.Query = &q
	}
	if u.hasFragment {
		f := u.fragment
		c.Fragment = &f
	}
	return c
}
