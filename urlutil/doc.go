// Package urlutil provides HTTP/HTTPS URL validation helpers built on the
// weburl parser.
//
// Validation parses with the same WHATWG rules a browser applies, so a URL
// that passes here means the same thing to this program and to any browser
// it is handed to.
//
// # Usage
//
// Use Validate for HTTP/HTTPS URL validation:
//
//	if err := urlutil.Validate(customURL); err != nil {
//		return fmt.Errorf("invalid custom URL: %w", err)
//	}
//
// Use ValidateHTTPSOnly where encrypted connections are required:
//
//	// Allows http:// only for loopback hosts
//	if err := urlutil.ValidateHTTPSOnly(apiEndpoint); err != nil {
//		return fmt.Errorf("API endpoint must use HTTPS: %w", err)
//	}
//
// Use Parse to validate and keep the parsed result:
//
//	parsed, err := urlutil.Parse(userProvidedURL)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Accessing: %s\n", parsed.Origin())
//
// Use NormalizeScheme to add a missing protocol:
//
//	normalized := urlutil.NormalizeScheme("example.com", "https")
//	// Returns: "https://example.com"
//
// # Validation Rules
//
// Validate enforces the following rules:
//   - URL must not be empty or only whitespace
//   - URL must not exceed 2048 characters
//   - URL must parse as an absolute URL
//   - URL must use http:// or https:// (rejects ftp:, file:, javascript:, data:)
//   - URL must have a non-empty host
//
// ValidateDomain checks bare DNS names (no scheme or port) using LDH label
// rules on the IDNA ASCII form.
package urlutil
