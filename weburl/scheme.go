package weburl

// IsSpecialScheme reports whether scheme is one of ftp, file, http, https,
// ws or wss.
func IsSpecialScheme(scheme string) bool {
	switch scheme {
	case "ftp", "file", "http", "https", "ws", "wss":
		return true
	}
	return false
}

// DefaultPort returns the default port of a special scheme. file has none.
func DefaultPort(scheme string) (uint16, bool) {
	switch scheme {
	case "ftp":
		return 21, true
	case "http", "ws":
		return 80, true
	case "https", "wss":
		return 443, true
	}
	return 0, false
}
