// Package percent implements the percent-encoding codec used by URL parsing.
//
// Each URL component has its own encode set. A byte is escaped as %XX
// (uppercase hex) when it is in the set; every byte >= 0x80 is always in the
// set. The sets, from narrowest to widest:
//
//   - C0Control: C0 controls and bytes above ~
//   - Fragment: C0Control plus space " < > `
//   - Query: C0Control plus space " # < >
//   - SpecialQuery: Query plus '
//   - Path: Query plus ? ` { }
//   - Userinfo: Path plus / : ; = @ [ \ ] ^ |
//   - Component: Userinfo plus $ % & + ,
//
// Decoding never fails: a % that is not followed by two hex digits is kept
// as a literal byte.
//
// # Usage
//
//	escaped := percent.Encode("a b", percent.Path) // "a%20b"
//	raw := percent.DecodeString("caf%C3%A9")      // "café"
package percent
