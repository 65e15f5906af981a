package httpclient

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteprobe/siteprobe/internal/config"
)

func newTestFetcher(t *testing.T, cfg config.HTTPClientConfig) *Fetcher {
	t.Helper()
	fetcher, err := NewFetcher(cfg, zerolog.Nop())
	require.NoError(t, err)
	return fetcher
}

func TestFetcher_Fetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		w.Header().Set("Server", "nginx/1.18.0")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><title>hello</title></html>"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, config.NewDefaultHTTPClientConfig())
	res := fetcher.Fetch(context.Background(), server.URL)

	require.False(t, res.Failed())
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "<html><title>hello</title></html>", res.Body)
	assert.Equal(t, "nginx/1.18.0", res.Header("Server"))
	assert.Equal(t, server.URL, res.URL)
}

func TestFetcher_Fetch_HTTPErrorIsNotAFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, config.NewDefaultHTTPClientConfig())
	res := fetcher.Fetch(context.Background(), server.URL+"/missing")

	assert.False(t, res.Failed())
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Empty(t, res.Error)
}

func TestFetcher_Fetch_TransportFailure(t *testing.T) {
	// Grab a port that is guaranteed closed.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	closedURL := "http://" + listener.Addr().String()
	require.NoError(t, listener.Close())

	fetcher := newTestFetcher(t, config.NewDefaultHTTPClientConfig())
	res := fetcher.Fetch(context.Background(), closedURL)

	assert.True(t, res.Failed())
	assert.Zero(t, res.StatusCode)
	assert.NotEmpty(t, res.Error)
}

func TestFetcher_Fetch_RedirectNotFollowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	}))
	defer server.Close()

	cfg := config.NewDefaultHTTPClientConfig().WithoutRedirects()
	fetcher := newTestFetcher(t, cfg)
	res := fetcher.Fetch(context.Background(), server.URL+"/admin")

	require.False(t, res.Failed())
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/login", res.Header("Location"))
}

func TestFetcher_Fetch_RedirectFollowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, "/landing", http.StatusMovedPermanently)
			return
		}
		_, _ = w.Write([]byte("landed"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, config.NewDefaultHTTPClientConfig())
	res := fetcher.Fetch(context.Background(), server.URL+"/")

	require.False(t, res.Failed())
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "landed", res.Body)
	assert.Equal(t, server.URL+"/landing", res.FinalURL)
}

func TestFetcher_Fetch_BodyLimit(t *testing.T) {
	big := make([]byte, 2*1024*1024)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(big)
	}))
	defer server.Close()

	cfg := config.NewDefaultHTTPClientConfig()
	cfg.MaxBodyMB = 1
	fetcher := newTestFetcher(t, cfg)
	res := fetcher.Fetch(context.Background(), server.URL)

	require.False(t, res.Failed())
	assert.Len(t, res.Body, 1024*1024)
}

func TestFetcher_Fetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, config.NewDefaultHTTPClientConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := fetcher.Fetch(ctx, server.URL)

	assert.True(t, res.Failed())
	assert.Zero(t, res.StatusCode)
}
