package weburl

import (
	"fmt"
	"strings"

	"github.com/jongio/weburl/percent"
)

// Component setters mirror the URL API attribute setters. Each either
// updates u and returns nil, or returns an error and leaves u unchanged.
// Input the component cannot take, such as a port on a file URL, returns an
// error; input that is merely ignored (a value with ":port" given to
// SetHostname) returns nil without a change.

// SetHref replaces u with the result of parsing v.
func (u *URL) SetHref(v string) error {
	parsed, err := Parse(v, nil)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}

// SetProtocol changes the scheme. Switching between special and
// non-special schemes is ignored, as is switching to file while
// credentials or a port are set.
func (u *URL) SetProtocol(v string) error {
	return u.reparse(v+":", StateSchemeStart, nil)
}

// SetUsername sets the username, percent-encoding it with the userinfo
// set.
func (u *URL) SetUsername(v string) error {
	if u.cannotHaveCredentialsOrPort() {
		return fmt.Errorf("set username: %w", ErrCannotHaveCredentials)
	}
	u.username = percent.Encode(v, percent.Userinfo)
	u.diagnostics = nil
	return nil
}

// SetPassword sets the password, percent-encoding it with the userinfo
// set.
func (u *URL) SetPassword(v string) error {
	if u.cannotHaveCredentialsOrPort() {
		return fmt.Errorf("set password: %w", ErrCannotHaveCredentials)
	}
	u.password = percent.Encode(v, percent.Userinfo)
	u.diagnostics = nil
	return nil
}

// SetHost sets the host and, when v carries one, the port.
func (u *URL) SetHost(v string) error {
	if u.hasOpaquePath {
		return fmt.Errorf("set host: %w", ErrOpaquePath)
	}
	return u.reparse(v, StateHost, nil)
}

// SetHostname sets the host. A v that carries a port is ignored.
func (u *URL) SetHostname(v string) error {
	if u.hasOpaquePath {
		return fmt.Errorf("set hostname: %w", ErrOpaquePath)
	}
	return u.reparse(v, StateHostname, nil)
}

// SetPort sets the port from the leading digits of v. An empty v removes
// the port; v without leading digits is ignored.
func (u *URL) SetPort(v string) error {
	if u.cannotHaveCredentialsOrPort() {
		return fmt.Errorf("set port: %w", ErrCannotHaveCredentials)
	}
	if v == "" {
		u.port = -1
		u.diagnostics = nil
		return nil
	}
	return u.reparse(v, StatePort, nil)
}

// SetPathname replaces the path.
func (u *URL) SetPathname(v string) error {
	if u.hasOpaquePath {
		return fmt.Errorf("set pathname: %w", ErrOpaquePath)
	}
	return u.reparse(v, StatePathStart, func(c *URL) {
		c.path = nil
	})
}

// SetSearch replaces the query. A leading '?' is dropped and an empty v
// removes the query.
func (u *URL) SetSearch(v string) error {
	if v == "" {
		u.query, u.hasQuery = "", false
		u.stripTrailingSpacesFromOpaquePath()
		u.diagnostics = nil
		return nil
	}
	return u.reparse(strings.TrimPrefix(v, "?"), StateQuery, func(c *URL) {
		c.setQuery("")
	})
}

// SetHash replaces the fragment. A leading '#' is dropped and an empty v
// removes the fragment.
func (u *URL) SetHash(v string) error {
	if v == "" {
		u.fragment, u.hasFragment = "", false
		u.stripTrailingSpacesFromOpaquePath()
		u.diagnostics = nil
		return nil
	}
	return u.reparse(strings.TrimPrefix(v, "#"), StateFragment, func(c *URL) {
		c.setFragment("")
	})
}

// reparse runs the parser from state over a copy of u prepared by reset,
// and commits the copy on success.
func (u *URL) reparse(v string, state State, reset func(*URL)) error {
	c := u.Clone()
	if reset != nil {
		reset(c)
	}
	res, err := parse(v, Options{}, c, state)
	if err != nil {
		return err
	}
	*u = *res
	return nil
}

// stripTrailingSpacesFromOpaquePath removes trailing spaces from an opaque
// path once nothing follows it, so "data:x #f" serializes as "data:x"
// after the fragment is removed.
func (u *URL) stripTrailingSpacesFromOpaquePath() {
	if !u.hasOpaquePath || u.hasFragment || u.hasQuery {
		return
	}
	u.opaque = strings.TrimRight(u.opaque, " ")
}
