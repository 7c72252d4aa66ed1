package host

import (
	"strconv"
	"strings"
)

// endsInNumber reports whether the last non-empty label of a domain is
// all digits or a 0x-prefixed hex number, in which case the whole domain
// must parse as IPv4.
func endsInNumber(s string) bool {
	parts := strings.Split(s, ".")
	if parts[len(parts)-1] == "" {
		if len(parts) == 1 {
			return false
		}
		parts = parts[:len(parts)-1]
	}
	last := parts[len(parts)-1]
	if last != "" && strings.Trim(last, "0123456789") == "" {
		return true
	}
	_, _, ok := parseIPv4Number(last)
	return ok
}

// parseIPv4Number parses one dotted part. It returns the value (saturated
// well above 2^32), whether a 0 or 0x prefix was used, and ok.
func parseIPv4Number(s string) (n uint64, nonDecimal bool, ok bool) {
	if s == "" {
		return 0, false, false
	}
	radix := uint64(10)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
		radix = 16
		nonDecimal = true
	} else if len(s) >= 2 && s[0] == '0' {
		s = s[1:]
		radix = 8
		nonDecimal = true
	}
	for i := 0; i < len(s); i++ {
		d, valid := digit(s[i])
		if !valid || d >= radix {
			return 0, nonDecimal, false
		}
		if n < 1<<40 {
			n = n*radix + d
		}
	}
	return n, nonDecimal, true
}

func digit(c byte) (uint64, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint64(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

func (p *Parser) parseIPv4(input string) (Host, error) {
	parts := strings.Split(input, ".")
	if parts[len(parts)-1] == "" {
		p.report(WarnIPv4EmptyPart)
		if len(parts) > 1 {
			parts = parts[:len(parts)-1]
		}
	}
	if len(parts) > 4 {
		return Host{}, fail(input, ErrIPv4TooManyParts)
	}

	numbers := make([]uint64, 0, len(parts))
	for _, part := range parts {
		n, nonDecimal, ok := parseIPv4Number(part)
		if !ok {
			return Host{}, fail(input, ErrIPv4NonNumericPart)
		}
		if nonDecimal {
			p.report(WarnIPv4NonDecimalPart)
		}
		numbers = append(numbers, n)
	}

	last := len(numbers) - 1
	for i, n := range numbers {
		if n > 255 {
			p.report(WarnIPv4OutOfRangePart)
			if i < last {
				return Host{}, fail(input, ErrIPv4OutOfRangePart)
			}
		}
	}
	if numbers[last] >= 1<<(8*(5-len(numbers))) {
		return Host{}, fail(input, ErrIPv4OutOfRangePart)
	}

	addr := numbers[last]
	for i, n := range numbers[:last] {
		addr += n << (8 * (3 - i))
	}
	return FromIPv4(uint32(addr)), nil
}

func serializeIPv4(addr uint32) string {
	var b strings.Builder
	b.Grow(15)
	for i := 3; i >= 0; i-- {
		b.WriteString(strconv.Itoa(int(addr >> (8 * i) & 0xFF)))
		if i > 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}
