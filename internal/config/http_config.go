package config

// HTTPClientConfig defines the fetcher's HTTP behavior. Defaults are
// applied before any config file is merged, so a zero timeout or body
// cap can only come from an explicit override and is rejected outright.
type HTTPClientConfig struct {
	TimeoutSecs     int    `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"min=1"`
	UserAgent       string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	FollowRedirects bool   `json:"follow_redirects" yaml:"follow_redirects"`
	MaxRedirects    int    `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty" validate:"omitempty,min=1"`
	MaxBodyMB       int    `json:"max_body_mb,omitempty" yaml:"max_body_mb,omitempty" validate:"min=1"`
	EnableHTTP2     bool   `json:"enable_http2" yaml:"enable_http2"`
	InsecureTLS     bool   `json:"insecure_tls,omitempty" yaml:"insecure_tls,omitempty"`
}

// NewDefaultHTTPClientConfig creates default HTTP client configuration.
func NewDefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		TimeoutSecs:     DefaultHTTPTimeoutSecs,
		UserAgent:       DefaultHTTPUserAgent,
		FollowRedirects: DefaultHTTPFollowRedirects,
		MaxRedirects:    DefaultHTTPMaxRedirects,
		MaxBodyMB:       DefaultHTTPMaxBodyMB,
		EnableHTTP2:     DefaultHTTPEnableHTTP2,
	}
}

// WithoutRedirects returns a copy configured to surface 3xx responses
// instead of following them. Used for sub-path probes where the
// redirect target itself is the signal.
func (c HTTPClientConfig) WithoutRedirects() HTTPClientConfig {
	c.FollowRedirects = false
	return c
}
