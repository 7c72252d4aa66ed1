package host

import (
	"strconv"
	"strings"
)

// parseIPv6 parses the text between the brackets of an IPv6 literal.
func parseIPv6(input string) ([8]uint16, error) {
	var addr [8]uint16
	pieceIndex := 0
	compress := -1
	i := 0
	at := func(j int) int {
		if j < len(input) {
			return int(input[j])
		}
		return -1
	}

	if at(i) == ':' {
		if at(i+1) != ':' {
			return addr, ErrIPv6InvalidCompression
		}
		i += 2
		pieceIndex++
		compress = pieceIndex
	}

	for at(i) != -1 {
		if pieceIndex == 8 {
			return addr, ErrIPv6TooManyPieces
		}
		if at(i) == ':' {
			if compress != -1 {
				return addr, ErrIPv6MultipleCompression
			}
			i++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		value, length := 0, 0
		for length < 4 && at(i) != -1 {
			d, ok := digit(input[i])
			if !ok {
				break
			}
			value = value*0x10 + int(d)
			i++
			length++
		}

		switch at(i) {
		case '.':
			if length == 0 {
				return addr, ErrIPv4InIPv6InvalidCodePoint
			}
			i -= length
			if pieceIndex > 6 {
				return addr, ErrIPv4InIPv6TooManyPieces
			}
			numbersSeen := 0
			for at(i) != -1 {
				piece := -1
				if numbersSeen > 0 {
					if at(i) == '.' && numbersSeen < 4 {
						i++
					} else {
						return addr, ErrIPv4InIPv6InvalidCodePoint
					}
				}
				if c := at(i); c < '0' || c > '9' {
					return addr, ErrIPv4InIPv6InvalidCodePoint
				}
				for c := at(i); '0' <= c && c <= '9'; c = at(i) {
					n := c - '0'
					switch piece {
					case -1:
						piece = n
					case 0:
						return addr, ErrIPv4InIPv6InvalidCodePoint
					default:
						piece = piece*10 + n
					}
					if piece > 255 {
						return addr, ErrIPv4InIPv6OutOfRangePart
					}
					i++
				}
				addr[pieceIndex] = addr[pieceIndex]<<8 | uint16(piece)
				numbersSeen++
				if numbersSeen == 2 || numbersSeen == 4 {
					pieceIndex++
				}
			}
			if numbersSeen != 4 {
				return addr, ErrIPv4InIPv6TooFewParts
			}
			return finishIPv6(addr, pieceIndex, compress)
		case ':':
			i++
			if at(i) == -1 {
				return addr, ErrIPv6InvalidCodePoint
			}
		case -1:
		default:
			return addr, ErrIPv6InvalidCodePoint
		}

		addr[pieceIndex] = uint16(value)
		pieceIndex++
	}

	return finishIPv6(addr, pieceIndex, compress)
}

func finishIPv6(addr [8]uint16, pieceIndex, compress int) ([8]uint16, error) {
	if compress == -1 {
		if pieceIndex != 8 {
			return addr, ErrIPv6TooFewPieces
		}
		return addr, nil
	}
	swaps := pieceIndex - compress
	for pieceIndex = 7; pieceIndex != 0 && swaps > 0; pieceIndex, swaps = pieceIndex-1, swaps-1 {
		j := compress + swaps - 1
		addr[pieceIndex], addr[j] = addr[j], addr[pieceIndex]
	}
	return addr, nil
}

// serializeIPv6 writes the address without brackets, compressing the first
// longest run of two or more zero pieces.
func serializeIPv6(addr [8]uint16) string {
	compress, best := -1, 1
	for i := 0; i < 8; {
		if addr[i] != 0 {
			i++
			continue
		}
		j := i
		for j < 8 && addr[j] == 0 {
			j++
		}
		if j-i > best {
			compress, best = i, j-i
		}
		i = j
	}

	var b strings.Builder
	b.Grow(39)
	for i := 0; i < 8; i++ {
		if i == compress {
			if i == 0 {
				b.WriteString("::")
			} else {
				b.WriteByte(':')
			}
			i += best - 1
			continue
		}
		b.WriteString(strconv.FormatUint(uint64(addr[i]), 16))
		if i != 7 {
			b.WriteByte(':')
		}
	}
	return b.String()
}
