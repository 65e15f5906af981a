package detector

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siteprobe/siteprobe/internal/config"
	"github.com/siteprobe/siteprobe/internal/models"
)

func newSoftwareDetector(t *testing.T) *SoftwareDetector {
	t.Helper()
	d, err := NewSoftwareDetector(config.NewDefaultSignaturesConfig(), zerolog.Nop())
	require.NoError(t, err)
	return d
}

func pageResult(body string) *models.FetchResult {
	return &models.FetchResult{
		URL:        "https://example.com",
		StatusCode: 200,
		Body:       body,
	}
}

func TestSoftwareDetector_Detect(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedDetails []string
	}{
		{
			name: "generator meta tag",
			body: `<html><head><meta name="generator" content="WordPress 5.8.1"></head><body></body></html>`,
			expectedDetails: []string{
				"generator meta tag: WordPress 5.8.1",
			},
		},
		{
			name: "powered-by footer with version",
			body: `<html><body><footer>Powered by WordPress v5.8.1</footer></body></html>`,
			expectedDetails: []string{
				"CMS powered-by footer: Powered by WordPress v5.8.1",
			},
		},
		{
			name: "server banner in error page",
			body: `<html><body><address>Apache/2.4.41 (Ubuntu) Server</address></body></html>`,
			expectedDetails: []string{
				"Apache banner: Apache/2.4.41",
			},
		},
		{
			name: "version parameter in asset URL",
			body: `<html><head><link rel="stylesheet" href="/wp-includes/css/dashicons.min.css?ver=5.8.1"></head></html>`,
			expectedDetails: []string{
				"version parameter in asset URL: /wp-includes/css/dashicons.min.css?ver=5.8.1 (version 5.8.1)",
			},
		},
		{
			name: "version parameter in script src",
			body: `<html><body><script src="/static/app.js?version=2.14.0"></script></body></html>`,
			expectedDetails: []string{
				"version parameter in asset URL: /static/app.js?version=2.14.0 (version 2.14.0)",
			},
		},
		{
			name:            "plain text yields no false positives",
			body:            `<html><body><p>Welcome to our site. We sell flowers.</p></body></html>`,
			expectedDetails: nil,
		},
		{
			name: "duplicate signals collapse",
			body: `<html><body>
				<p>Powered by Drupal 9.2</p>
				<p>Powered by Drupal 9.2</p>
			</body></html>`,
			expectedDetails: []string{
				"CMS powered-by footer: Powered by Drupal 9.2",
			},
		},
		{
			name: "multiple distinct signals",
			body: `<html><head><meta name="generator" content="Joomla! 3.9"></head>
				<body><footer>powered by joomla 3.9.28</footer></body></html>`,
			expectedDetails: []string{
				"generator meta tag: Joomla! 3.9",
				"CMS powered-by footer: powered by joomla 3.9.28",
			},
		},
	}

	detector := newSoftwareDetector(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indicators := detector.Detect(pageResult(tt.body))

			var details []string
			for _, ind := range indicators {
				assert.Equal(t, models.CategoryOutdatedSoftware, ind.Category)
				assert.Equal(t, "https://example.com", ind.SourceURL)
				details = append(details, ind.Detail)
			}
			assert.Equal(t, tt.expectedDetails, details)
		})
	}
}

func TestSoftwareDetector_Detect_SkipsFailedFetch(t *testing.T) {
	detector := newSoftwareDetector(t)

	assert.Nil(t, detector.Detect(nil))
	assert.Nil(t, detector.Detect(&models.FetchResult{URL: "https://example.com", Error: "timeout"}))
	assert.Nil(t, detector.Detect(&models.FetchResult{URL: "https://example.com", StatusCode: 200}))
}

func TestNewSoftwareDetector_RejectsBrokenPattern(t *testing.T) {
	cfg := config.SignaturesConfig{
		SoftwareSignatures: []config.SoftwareSignature{{Name: "broken", Pattern: "("}},
	}
	_, err := NewSoftwareDetector(cfg, zerolog.Nop())
	assert.Error(t, err)
}
