package host

import (
	"strconv"
	"strings"
)

// Kind classifies a Host.
type Kind uint8

const (
	// KindEmpty is the empty host, used by file URLs without an authority.
	KindEmpty Kind = iota
	// KindDomain is an ASCII domain after domain-to-ASCII.
	KindDomain
	// KindIPv4 is a 32-bit IPv4 address.
	KindIPv4
	// KindIPv6 is a 128-bit IPv6 address.
	KindIPv6
	// KindOpaque is a percent-encoded host of a non-special URL.
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindDomain:
		return "domain"
	case KindIPv4:
		return "ipv4"
	case KindIPv6:
		return "ipv6"
	case KindOpaque:
		return "opaque"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Host is a parsed URL host. The zero value is the empty host.
type Host struct {
	kind Kind
	name string
	ipv4 uint32
	ipv6 [8]uint16
}

// Empty returns the empty host.
func Empty() Host {
	return Host{}
}

// FromIPv4 returns an IPv4 host.
func FromIPv4(addr uint32) Host {
	return Host{kind: KindIPv4, ipv4: addr}
}

// FromIPv6 returns an IPv6 host from its eight 16-bit pieces.
func FromIPv6(pieces [8]uint16) Host {
	return Host{kind: KindIPv6, ipv6: pieces}
}

// Kind returns the host's classification.
func (h Host) Kind() Kind {
	return h.kind
}

// IsEmpty reports whether h is the empty host.
func (h Host) IsEmpty() bool {
	return h.kind == KindEmpty
}

// Domain returns the ASCII domain when h is a domain.
func (h Host) Domain() (string, bool) {
	return h.name, h.kind == KindDomain
}

// Opaque returns the escaped host when h is an opaque host.
func (h Host) Opaque() (string, bool) {
	return h.name, h.kind == KindOpaque
}

// IPv4 returns the address when h is an IPv4 host.
func (h Host) IPv4() (uint32, bool) {
	return h.ipv4, h.kind == KindIPv4
}

// IPv4Octets returns the address as four octets, most significant first.
func (h Host) IPv4Octets() ([4]byte, bool) {
	a := h.ipv4
	return [4]byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)}, h.kind == KindIPv4
}

// IPv6 returns the eight pieces when h is an IPv6 host.
func (h Host) IPv6() ([8]uint16, bool) {
	return h.ipv6, h.kind == KindIPv6
}

// String serializes the host. IPv6 addresses are wrapped in brackets.
func (h Host) String() string {
	switch h.kind {
	case KindDomain, KindOpaque:
		return h.name
	case KindIPv4:
		return serializeIPv4(h.ipv4)
	case KindIPv6:
		return "[" + serializeIPv6(h.ipv6) + "]"
	}
	return ""
}

// Equal reports whether h and o are the same host.
func (h Host) Equal(o Host) bool {
	return h == o
}

// Forbidden host code points, minus '%' which only domains forbid.
func isForbiddenHost(c rune) bool {
	switch c {
	case 0, '\t', '\n', '\r', ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|':
		return true
	}
	return false
}

func isForbiddenDomain(c rune) bool {
	return isForbiddenHost(c) || c <= 0x1F || c == '%' || c == 0x7F
}

func containsFunc(s string, f func(rune) bool) bool {
	return strings.IndexFunc(s, f) >= 0
}
