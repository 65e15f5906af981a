package urlhandler

import (
	"net/url"
	"strings"
)

// ScanTarget is the normalized, immutable base target of a scan run.
// It is created once per run from user input by ResolveTarget.
type ScanTarget struct {
	rawInput      string
	normalizedURL string
	parsed        *url.URL
}

// RawInput returns the target string as provided by the user.
func (t *ScanTarget) RawInput() string {
	return t.rawInput
}

// URL returns the normalized base URL.
func (t *ScanTarget) URL() string {
	return t.normalizedURL
}

// Scheme returns the target's scheme (http or https).
func (t *ScanTarget) Scheme() string {
	return t.parsed.Scheme
}

// Host returns the target's host, including port if present.
func (t *ScanTarget) Host() string {
	return t.parsed.Host
}

// JoinPath resolves a sub-path against the base target, for probing
// derived URLs like <base>/admin.
func (t *ScanTarget) JoinPath(path string) string {
	ref := &url.URL{Path: path}
	if !strings.HasPrefix(path, "/") {
		ref.Path = "/" + path
	}
	return t.parsed.ResolveReference(ref).String()
}
