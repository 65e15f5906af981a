package detector

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/siteprobe/siteprobe/internal/config"
	"github.com/siteprobe/siteprobe/internal/models"
)

// versionParamRegex matches version query parameters that CMS asset URLs
// leak, e.g. /wp-includes/css/dashicons.min.css?ver=5.8.1
var versionParamRegex = regexp.MustCompile(`(?i)[?&](?:ver|version)=(\d+(?:\.\d+)+)`)

type compiledSignature struct {
	name    string
	pattern *regexp.Regexp
}

// SoftwareDetector scans fetched pages for signs of identifiable (and
// potentially outdated) software: generator meta tags, configured
// signature patterns in page text, and version parameters in asset
// URLs. The signature list comes from configuration; the detector
// itself knows no product names.
type SoftwareDetector struct {
	signatures []compiledSignature
	logger     zerolog.Logger
}

// NewSoftwareDetector compiles the configured signature patterns.
// Patterns are matched case-insensitively.
func NewSoftwareDetector(cfg config.SignaturesConfig, logger zerolog.Logger) (*SoftwareDetector, error) {
	signatures := make([]compiledSignature, 0, len(cfg.SoftwareSignatures))
	for _, sig := range cfg.SoftwareSignatures {
		re, err := regexp.Compile("(?i)" + sig.Pattern)
		if err != nil {
			return nil, fmt.Errorf("signature '%s': %w", sig.Name, err)
		}
		signatures = append(signatures, compiledSignature{name: sig.Name, pattern: re})
	}
	return &SoftwareDetector{
		signatures: signatures,
		logger:     logger.With().Str("detector", "software").Logger(),
	}, nil
}

// Detect returns one indicator per distinct software signal found on
// the page. Duplicate signals collapse to a single indicator. An
// unmatchable or unparsable page yields an empty result, never an
// error.
func (d *SoftwareDetector) Detect(res *models.FetchResult) []models.Indicator {
	if res == nil || res.Failed() || res.Body == "" {
		return nil
	}

	var indicators []models.Indicator
	seen := make(map[string]bool)
	add := func(detail string) {
		if seen[detail] {
			return
		}
		seen[detail] = true
		indicators = append(indicators, models.Indicator{
			Category:  models.CategoryOutdatedSoftware,
			Detail:    detail,
			SourceURL: res.URL,
		})
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body))
	if err != nil {
		// Unparsable HTML: fall back to raw text matching.
		d.logger.Debug().Str("url", res.URL).Err(err).Msg("HTML parse failed, matching raw body")
		d.matchText(res.Body, add)
		return indicators
	}

	doc.Find(`meta[name="generator"]`).Each(func(_ int, sel *goquery.Selection) {
		if content, ok := sel.Attr("content"); ok && strings.TrimSpace(content) != "" {
			add(fmt.Sprintf("generator meta tag: %s", strings.TrimSpace(content)))
		}
	})

	d.matchText(doc.Text(), add)

	doc.Find("script[src], link[href]").Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok {
			src, _ = sel.Attr("href")
		}
		if m := versionParamRegex.FindStringSubmatch(src); m != nil {
			add(fmt.Sprintf("version parameter in asset URL: %s (version %s)", src, m[1]))
		}
	})

	if len(indicators) > 0 {
		d.logger.Debug().Str("url", res.URL).Int("count", len(indicators)).Msg("Software indicators found")
	}
	return indicators
}

func (d *SoftwareDetector) matchText(text string, add func(string)) {
	for _, sig := range d.signatures {
		for _, match := range sig.pattern.FindAllString(text, -1) {
			add(fmt.Sprintf("%s: %s", sig.name, strings.TrimSpace(match)))
		}
	}
}
