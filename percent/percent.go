package percent

import (
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// Set is an encode set over ASCII. Bytes outside ASCII are always encoded.
type Set struct {
	name string
	bits [2]uint64
}

// Name returns the set's name, e.g. "path".
func (s *Set) Name() string {
	return s.name
}

// Contains reports whether b must be percent-encoded under s.
func (s *Set) Contains(b byte) bool {
	if b >= 0x80 {
		return true
	}
	return s.bits[b>>6]&(1<<(b&63)) != 0
}

func (s Set) with(name, chars string) *Set {
	s.name = name
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		s.bits[c>>6] |= 1 << (c & 63)
	}
	return &s
}

func newC0Control() *Set {
	s := &Set{name: "c0-control"}
	for c := 0; c < 0x20; c++ {
		s.bits[0] |= 1 << c
	}
	// DEL
	s.bits[1] |= 1 << (0x7F - 64)
	return s
}

// The named encode sets.
var (
	C0Control    = newC0Control()
	Fragment     = C0Control.with("fragment", " \"<>`")
	Query        = C0Control.with("query", " \"#<>")
	SpecialQuery = Query.with("special-query", "'")
	Path         = Query.with("path", "?`{}")
	Userinfo     = Path.with("userinfo", "/:;=@[\\]^|")
	Component    = Userinfo.with("component", "$%&+,")
)

// Encode percent-encodes every byte of s that is in set.
func Encode(s string, set *Set) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if set.Contains(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	buf := make([]byte, 0, len(s)+2*n)
	return string(AppendEncode(buf, s, set))
}

// AppendEncode appends the percent-encoded form of s to dst.
func AppendEncode(dst []byte, s string, set *Set) []byte {
	for i := 0; i < len(s); i++ {
		dst = appendByte(dst, s[i], set)
	}
	return dst
}

// AppendRune appends the UTF-8 percent-encoding of r to dst. Invalid runes
// are encoded as U+FFFD.
func AppendRune(dst []byte, r rune, set *Set) []byte {
	if r < utf8.RuneSelf {
		return appendByte(dst, byte(r), set)
	}
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	for _, b := range tmp[:n] {
		dst = appendByte(dst, b, set)
	}
	return dst
}

func appendByte(dst []byte, b byte, set *Set) []byte {
	if set.Contains(b) {
		return append(dst, '%', upperhex[b>>4], upperhex[b&15])
	}
	return append(dst, b)
}

// Decode returns the bytes of s with every valid %XX sequence decoded.
func Decode(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) && IsHex(s[i+1]) && IsHex(s[i+2]) {
			out = append(out, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		out = append(out, c)
	}
	return out
}

// DecodeString is Decode returning a string. The result may not be valid UTF-8.
func DecodeString(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}
	return string(Decode(s))
}

// ValidEscapeAt reports whether s[i] is a % followed by two hex digits.
func ValidEscapeAt(s string, i int) bool {
	return i+2 < len(s) && s[i] == '%' && IsHex(s[i+1]) && IsHex(s[i+2])
}

// IsHex reports whether c is an ASCII hex digit.
func IsHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsURLCodePoint reports whether r may appear unescaped in a URL:
// ASCII alphanumerics, !$&'()*+,-./:;=?@_~ and U+00A0 through U+10FFFD
// excluding surrogates and noncharacters.
func IsURLCodePoint(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return true
	case r < 0x80:
		return strings.ContainsRune("!$&'()*+,-./:;=?@_~", r)
	case r < 0xA0 || r > 0x10FFFD:
		return false
	case 0xD800 <= r && r <= 0xDFFF:
		return false
	case 0xFDD0 <= r && r <= 0xFDEF:
		return false
	case r&0xFFFE == 0xFFFE:
		return false
	}
	return true
}
