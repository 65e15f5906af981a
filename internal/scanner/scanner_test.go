package scanner

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
	"github.com/siteprobe/siteprobe/internal/models"
	"github.com/siteprobe/siteprobe/internal/urlhandler"
)

func newTestScanner(t *testing.T) *Scanner {
	t.Helper()
	cfg := config.NewDefaultGlobalConfig()
	cfg.HTTPClientConfig.TimeoutSecs = 5
	s, err := NewScanner(cfg, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func TestScanner_Scan_OpenDirectoryOnly(t *testing.T) {
	// Root page is a listing, every admin path 404s, no CMS signatures:
	// the report must contain exactly one OpenDirectory indicator.
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html><head><title>Index of /</title></head><body></body></html>`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	report, err := newTestScanner(t).Scan(context.Background(), server.URL)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, models.ScanStatusCompleted, report.Status)
	require.Len(t, report.Indicators, 1)
	assert.Equal(t, models.CategoryOpenDirectory, report.Indicators[0].Category)
	assert.Empty(t, report.IndicatorsByCategory(models.CategoryOutdatedSoftware))
	assert.Empty(t, report.IndicatorsByCategory(models.CategoryAdminPanel))
	assert.Equal(t, "Index of /", report.Page.Title)
	assert.Equal(t, http.StatusOK, report.Page.StatusCode)
}

func TestScanner_Scan_AllCategories(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html><head><title>Index of /</title>
			<meta name="generator" content="WordPress 4.9"></head><body></body></html>`))
	})
	mux.HandleFunc("/wp-admin", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><title>Log In</title></html>"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	report, err := newTestScanner(t).Scan(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, models.ScanStatusCompleted, report.Status)
	require.Len(t, report.IndicatorsByCategory(models.CategoryOutdatedSoftware), 1)
	require.Len(t, report.IndicatorsByCategory(models.CategoryOpenDirectory), 1)
	require.Len(t, report.IndicatorsByCategory(models.CategoryAdminPanel), 1)

	// Category grouping order is fixed: software, open directory, admin.
	assert.Equal(t, models.CategoryOutdatedSoftware, report.Indicators[0].Category)
	assert.Equal(t, models.CategoryOpenDirectory, report.Indicators[1].Category)
	assert.Equal(t, models.CategoryAdminPanel, report.Indicators[2].Category)
	assert.Equal(t, server.URL+"/wp-admin", report.Indicators[2].SourceURL)
	assert.Empty(t, report.Errors)
}

func TestScanner_Scan_InvalidTarget(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "non-http scheme", input: "ftp://bad"},
		{name: "missing scheme", input: "example.com"},
		{name: "empty input", input: ""},
	}

	s := newTestScanner(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := s.Scan(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, report)
			var invalidTarget *urlhandler.InvalidTargetError
			assert.ErrorAs(t, err, &invalidTarget)
		})
	}
}

func TestScanner_Scan_RootFetchFailure(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	deadURL := "http://" + listener.Addr().String()
	require.NoError(t, listener.Close())

	cfg := config.NewDefaultGlobalConfig()
	cfg.HTTPClientConfig.TimeoutSecs = 1
	s, err := NewScanner(cfg, zerolog.Nop())
	require.NoError(t, err)

	report, err := s.Scan(context.Background(), deadURL)
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, models.ScanStatusFailed, report.Status)
	assert.Empty(t, report.Indicators)
	require.NotEmpty(t, report.Errors)
}

func TestScanner_Scan_ProbeFailureRecorded(t *testing.T) {
	// The root page answers, but /admin drops the connection mid-probe.
	// The scan still completes and the probe failure lands in Errors.
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html><head><title>Home</title></head><body></body></html>`))
	})
	mux.HandleFunc("/admin", func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			return
		}
		conn, _, err := hj.Hijack()
		if err != nil {
			return
		}
		_ = conn.Close()
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	report, err := newTestScanner(t).Scan(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, models.ScanStatusCompleted, report.Status)
	assert.Empty(t, report.IndicatorsByCategory(models.CategoryAdminPanel))
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], server.URL+"/admin")
}

func TestScanner_Scan_Deterministic(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html><head><title>Index of /</title></head>
			<body>Powered by WordPress 4.1</body></html>`))
	})
	mux.HandleFunc("/admin", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("admin"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := newTestScanner(t)

	first, err := s.Scan(context.Background(), server.URL)
	require.NoError(t, err)
	second, err := s.Scan(context.Background(), server.URL)
	require.NoError(t, err)

	// Identical fetched content must yield identical findings; only run
	// metadata (IDs, timestamps) differs between runs.
	assert.Equal(t, first.Indicators, second.Indicators)
	assert.Equal(t, first.Page, second.Page)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.TargetURL, second.TargetURL)
	assert.NotEqual(t, first.ScanID, second.ScanID)
}
