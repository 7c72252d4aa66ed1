// Package weburl parses, resolves and serializes URLs following the WHATWG
// URL Living Standard.
//
// Parse turns arbitrary text, optionally relative to a base URL, into a
// normalized *URL or a *ParseError. Malformed but recoverable input still
// parses; every deviation from strict conformance is recorded as a
// ValidationError and is available from URL.ValidationErrors.
//
// # Basic Usage
//
//	base, _ := weburl.Parse("https://example.com/docs/guide", nil)
//	u, err := weburl.Parse("../api?q=1", base)
//	if err != nil {
//		return err
//	}
//	fmt.Println(u.Href()) // https://example.com/api?q=1
//
// # Components
//
// Accessors expose the record (Scheme, Username, Password, Host, Port,
// Path, Query, Fragment) and the URL API views (Protocol, HostPort,
// Hostname, Pathname, Search, Hash, Origin). Setters such as SetHost or
// SetPathname re-run the parser for just that component and leave the URL
// untouched when the new value is rejected.
//
// # Concurrency
//
// Parse keeps all state on the stack of the call. A *URL is not safe for
// concurrent mutation, but any number of goroutines may use the same *URL
// as a read-only base.
package weburl
