// Package host parses and serializes URL hosts.
//
// A host is exactly one of a domain, an IPv4 address, an IPv6 address, an
// opaque host or the empty host. Parse decides which:
//
//   - input wrapped in [ ] is parsed strictly as IPv6
//   - for non-special schemes the input is an opaque host: forbidden host
//     code points are rejected and the rest is percent-encoded as-is
//   - for special schemes the input is percent-decoded, mapped through
//     domain-to-ASCII (UTS #46) and, if its last label looks numeric, parsed
//     as IPv4 (decimal, 0-prefixed octal or 0x-prefixed hex parts)
//
// Fatal problems are returned as *Error wrapping one of the Err* sentinels.
// Non-fatal problems are passed to Parser.Report when set.
package host
