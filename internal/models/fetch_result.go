package models

import "time"

// FetchResult represents the outcome of a single HTTP GET probe.
// HTTP-level failures (4xx/5xx) are valid results carrying that status
// code; Error is set only for transport-level problems (DNS failure,
// connection refused, timeout), in which case StatusCode stays zero.
type FetchResult struct {
	URL        string            `json:"url"`
	FinalURL   string            `json:"final_url,omitempty"`
	StatusCode int               `json:"status_code,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
	Duration   float64           `json:"duration,omitempty"` // seconds
	Error      string            `json:"error,omitempty"`
}

// Failed reports whether the fetch failed at the transport level.
func (fr *FetchResult) Failed() bool {
	return fr != nil && fr.Error != ""
}

// IsSuccess reports whether the response carries a 2xx status code.
func (fr *FetchResult) IsSuccess() bool {
	return fr != nil && fr.StatusCode >= 200 && fr.StatusCode < 300
}

// IsRedirect reports whether the response carries a 3xx status code.
func (fr *FetchResult) IsRedirect() bool {
	return fr != nil && fr.StatusCode >= 300 && fr.StatusCode < 400
}

// Header returns the named response header, or "" when absent.
func (fr *FetchResult) Header(name string) string {
	if fr == nil {
		return ""
	}
	return fr.Headers[name]
}
