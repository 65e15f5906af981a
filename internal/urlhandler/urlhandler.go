package urlhandler

import (
	"net/url"
	"strings"
)

// ResolveTarget validates and normalizes a raw target string into a
// ScanTarget. It fails with InvalidTargetError if the string is empty,
// lacks an http/https scheme, has no hostname, or fails URL parsing.
// No network access is performed.
func ResolveTarget(rawURL string) (*ScanTarget, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, NewInvalidTargetError("", "empty or whitespace-only input")
	}

	if !strings.Contains(trimmed, "://") {
		return nil, NewInvalidTargetError(trimmed, "missing scheme (expected http:// or https://)")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, NewInvalidTargetError(trimmed, "not a parsable URL: "+err.Error())
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil, NewInvalidTargetError(trimmed, "unsupported scheme "+parsed.Scheme)
	}

	if parsed.Host == "" {
		return nil, NewInvalidTargetError(trimmed, "missing hostname")
	}

	parsed.Scheme = scheme
	parsed.Host = strings.ToLower(parsed.Host)
	parsed.Fragment = ""

	return &ScanTarget{
		rawInput:      rawURL,
		normalizedURL: parsed.String(),
		parsed:        parsed,
	}, nil
}

// EnsureScheme prepends https:// to inputs that lack a scheme entirely.
// It is a convenience for interactive input and never rewrites an input
// that already carries one, so ResolveTarget can still reject e.g. ftp.
func EnsureScheme(rawURL string) (string, bool) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" || strings.Contains(trimmed, "://") {
		return trimmed, false
	}
	return "https://" + trimmed, true
}
