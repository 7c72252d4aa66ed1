package weburl

import "strings"

func isASCIIAlpha(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isASCIIDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isASCIIAlphanumeric(c rune) bool {
	return isASCIIAlpha(c) || isASCIIDigit(c)
}

func isASCIIHex(c rune) bool {
	return isASCIIDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func toLowerASCII(c rune) byte {
	if 'A' <= c && c <= 'Z' {
		return byte(c + 'a' - 'A')
	}
	return byte(c)
}

// isWindowsDriveLetter reports whether s is an ASCII letter followed by
// ':' or '|'.
func isWindowsDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlpha(rune(s[0])) && (s[1] == ':' || s[1] == '|')
}

func isNormalizedWindowsDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlpha(rune(s[0])) && s[1] == ':'
}

// startsWithWindowsDriveLetter reports whether rs begins with a drive
// letter that is the whole input or is followed by / \ ? or #.
func startsWithWindowsDriveLetter(rs []rune) bool {
	if len(rs) < 2 || !isASCIIAlpha(rs[0]) || (rs[1] != ':' && rs[1] != '|') {
		return false
	}
	if len(rs) == 2 {
		return true
	}
	switch rs[2] {
	case '/', '\\', '?', '#':
		return true
	}
	return false
}

func isSingleDotSegment(s string) bool {
	return s == "." || strings.EqualFold(s, "%2e")
}

func isDoubleDotSegment(s string) bool {
	switch len(s) {
	case 2:
		return s == ".."
	case 4:
		return strings.EqualFold(s, ".%2e") || strings.EqualFold(s, "%2e.")
	case 6:
		return strings.EqualFold(s, "%2e%2e")
	}
	return false
}
