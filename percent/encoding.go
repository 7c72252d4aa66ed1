package percent

import (
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// IsUTF8 reports whether enc is nil or UTF-8.
func IsUTF8(enc encoding.Encoding) bool {
	if enc == nil || enc == unicode.UTF8 {
		return true
	}
	name, err := htmlindex.Name(enc)
	return err == nil && name == "utf-8"
}

// EncodeWithEncoding encodes s to enc and percent-encodes the resulting
// bytes that are in set. A character enc cannot represent becomes a
// percent-encoded HTML decimal character reference, "%26%23" N "%3B",
// regardless of set. A nil or UTF-8 enc behaves like Encode.
func EncodeWithEncoding(s string, enc encoding.Encoding, set *Set) string {
	if IsUTF8(enc) {
		return Encode(s, set)
	}
	dst := make([]byte, 0, len(s))
	e := enc.NewEncoder()
	for len(s) > 0 {
		out, n, err := transform.String(e, s)
		dst = AppendEncode(dst, out, set)
		if err == nil || n >= len(s) {
			break
		}
		r, size := utf8.DecodeRuneInString(s[n:])
		dst = append(dst, "%26%23"...)
		dst = strconv.AppendInt(dst, int64(r), 10)
		dst = append(dst, "%3B"...)
		s = s[n+size:]
	}
	return string(dst)
}

// LookupEncoding resolves a WHATWG encoding label such as "windows-1252"
// or "shift_jis" to the encoding URL queries are written in. UTF-16BE,
// UTF-16LE and the replacement encoding resolve to UTF-8.
func LookupEncoding(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, err
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, err
	}
	switch name {
	case "utf-16be", "utf-16le", "replacement":
		return unicode.UTF8, nil
	}
	return enc, nil
}
