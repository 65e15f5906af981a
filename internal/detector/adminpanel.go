package detector

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/siteprobe/siteprobe/internal/config"
	"github.com/siteprobe/siteprobe/internal/models"
	"github.com/siteprobe/siteprobe/internal/urlhandler"
)

// PageFetcher is the probing capability the admin-panel detector needs.
// *httpclient.Fetcher satisfies it; tests substitute a stub.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) *models.FetchResult
}

// AdminPanelDetector probes a fixed, ordered list of common admin and
// login sub-paths under a base target. A path counts as exposed when it
// answers 2xx, or redirects to a login-looking location. Probe failures
// are isolated: one path timing out never stops the rest of the list.
type AdminPanelDetector struct {
	paths        []string
	loginMarkers []string
	fetcher      PageFetcher
	logger       zerolog.Logger
}

// NewAdminPanelDetector creates a detector over the configured path
// list. The fetcher should surface redirects rather than follow them,
// otherwise the redirect classification never sees a 3xx.
func NewAdminPanelDetector(cfg config.SignaturesConfig, fetcher PageFetcher, logger zerolog.Logger) *AdminPanelDetector {
	return &AdminPanelDetector{
		paths:        cfg.AdminPaths,
		loginMarkers: cfg.LoginMarkers,
		fetcher:      fetcher,
		logger:       logger.With().Str("detector", "adminpanel").Logger(),
	}
}

// ProbeAll probes every configured path exactly once, in list order,
// and returns one indicator per path classified as exposed, plus the
// transport errors of probes that never got a response. Result order
// follows probe order. The context cancels remaining probes.
func (d *AdminPanelDetector) ProbeAll(ctx context.Context, target *urlhandler.ScanTarget) ([]models.Indicator, []string) {
	var indicators []models.Indicator
	var probeErrs []string

	for _, path := range d.paths {
		if ctx.Err() != nil {
			d.logger.Debug().Msg("Probe loop cancelled")
			break
		}

		probeURL := target.JoinPath(path)
		res := d.fetcher.Fetch(ctx, probeURL)
		if res.Failed() {
			d.logger.Debug().Str("url", probeURL).Str("error", res.Error).Msg("Probe failed, continuing")
			probeErrs = append(probeErrs, res.Error)
			continue
		}

		if detail, exposed := d.classify(path, res); exposed {
			indicators = append(indicators, models.Indicator{
				Category:  models.CategoryAdminPanel,
				Detail:    detail,
				SourceURL: probeURL,
			})
		}
	}

	return indicators, probeErrs
}

// classify decides whether a probe response exposes an admin surface.
// 404 is never a finding. 2xx means the path exists. 3xx counts only
// when the redirect target looks like a login flow.
func (d *AdminPanelDetector) classify(path string, res *models.FetchResult) (string, bool) {
	switch {
	case res.StatusCode == http.StatusNotFound:
		return "", false
	case res.IsSuccess():
		return fmt.Sprintf("accessible path %s (status %d)", path, res.StatusCode), true
	case res.IsRedirect():
		location := res.Header("Location")
		if d.looksLikeLogin(location) {
			return fmt.Sprintf("path %s redirects to login at %s (status %d)", path, location, res.StatusCode), true
		}
	}
	return "", false
}

func (d *AdminPanelDetector) looksLikeLogin(location string) bool {
	lower := strings.ToLower(location)
	for _, marker := range d.loginMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}
