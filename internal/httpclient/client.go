package httpclient

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/http2"

	"github.com/siteprobe/siteprobe/internal/config"
	"github.com/siteprobe/siteprobe/internal/models"
)

// Fetcher issues single, independent HTTP GET requests with browser-like
// headers. It never treats 4xx/5xx as failures: those come back as
// FetchResults carrying the status code. Only transport-level problems
// (DNS failure, connection refused, timeout) produce a failed result.
// There is no retry and no cross-call state beyond connection pooling.
type Fetcher struct {
	client *http.Client
	config config.HTTPClientConfig
	logger zerolog.Logger
}

// NewFetcher creates a Fetcher from the HTTP client configuration.
func NewFetcher(cfg config.HTTPClientConfig, logger zerolog.Logger) (*Fetcher, error) {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   time.Duration(cfg.TimeoutSecs) * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureTLS,
		},
	}

	if cfg.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   time.Duration(cfg.TimeoutSecs) * time.Second,
	}

	if !cfg.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	} else if cfg.MaxRedirects > 0 {
		maxRedirects := cfg.MaxRedirects
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		}
	}

	logger.Debug().
		Int("timeout_secs", cfg.TimeoutSecs).
		Bool("follow_redirects", cfg.FollowRedirects).
		Bool("http2_enabled", cfg.EnableHTTP2).
		Msg("HTTP fetcher created")

	return &Fetcher{
		client: client,
		config: cfg,
		logger: logger,
	}, nil
}

// Fetch performs a single GET against the given URL. The returned
// FetchResult is never nil: transport failures are recorded on it
// rather than returned as errors, so callers can treat every probe
// uniformly and per-probe failures stay isolated.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) *models.FetchResult {
	result := &models.FetchResult{
		URL:       rawURL,
		Timestamp: time.Now().UTC(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		result.Error = WrapError(err, "failed to build request").Error()
		return result
	}
	req.Header.Set("User-Agent", f.config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	f.logger.Debug().Str("url", rawURL).Msg("Fetching")

	start := time.Now()
	resp, err := f.client.Do(req)
	result.Duration = time.Since(start).Seconds()
	if err != nil {
		result.Error = NewTransportError(rawURL, err).Error()
		f.logger.Debug().Str("url", rawURL).Err(err).Msg("Fetch failed")
		return result
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(f.config.MaxBodyMB)*1024*1024))
	if err != nil {
		result.Error = NewTransportError(rawURL, err).Error()
		return result
	}

	result.StatusCode = resp.StatusCode
	result.Body = string(body)
	result.FinalURL = resp.Request.URL.String()
	result.Headers = flattenHeaders(resp.Header)

	f.logger.Debug().
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Int("body_bytes", len(body)).
		Msg("Fetch completed")

	return result
}

// flattenHeaders keeps the first value of each response header under its
// canonical name.
func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if len(values) > 0 {
			out[name] = values[0]
		}
	}
	return out
}
