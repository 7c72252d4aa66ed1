package weburl

import "strconv"

// State is a parser state. A non-zero State passed to
// ParseWithStateOverride starts the machine in that state against an
// existing URL and confines it to that component.
type State uint8

// Parser states.
const (
	StateNone State = iota
	StateSchemeStart
	StateScheme
	StateNoScheme
	StateSpecialRelativeOrAuthority
	StatePathOrAuthority
	StateRelative
	StateRelativeSlash
	StateSpecialAuthoritySlashes
	StateSpecialAuthorityIgnoreSlashes
	StateAuthority
	StateHost
	StateHostname
	StatePort
	StateFile
	StateFileSlash
	StateFileHost
	StatePathStart
	StatePath
	StateOpaquePath
	StateQuery
	StateFragment
)

var stateNames = [...]string{
	StateNone:                          "none",
	StateSchemeStart:                   "scheme start",
	StateScheme:                        "scheme",
	StateNoScheme:                      "no scheme",
	StateSpecialRelativeOrAuthority:    "special relative or authority",
	StatePathOrAuthority:               "path or authority",
	StateRelative:                      "relative",
	StateRelativeSlash:                 "relative slash",
	StateSpecialAuthoritySlashes:       "special authority slashes",
	StateSpecialAuthorityIgnoreSlashes: "special authority ignore slashes",
	StateAuthority:                     "authority",
	StateHost:                          "host",
	StateHostname:                      "hostname",
	StatePort:                          "port",
	StateFile:                          "file",
	StateFileSlash:                     "file slash",
	StateFileHost:                      "file host",
	StatePathStart:                     "path start",
	StatePath:                          "path",
	StateOpaquePath:                    "opaque path",
	StateQuery:                         "query",
	StateFragment:                      "fragment",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// isOverride reports whether s can start a component re-parse.
func (s State) isOverride() bool {
	switch s {
	case StateSchemeStart, StateAuthority, StateHost, StateHostname, StatePort,
		StatePathStart, StatePath, StateOpaquePath, StateQuery, StateFragment:
		return true
	}
	return false
}
