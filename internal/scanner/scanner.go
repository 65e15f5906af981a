package scanner

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/siteprobe/siteprobe/internal/config"
	"github.com/siteprobe/siteprobe/internal/detector"
	"github.com/siteprobe/siteprobe/internal/httpclient"
	"github.com/siteprobe/siteprobe/internal/models"
	"github.com/siteprobe/siteprobe/internal/urlhandler"
)

// Scanner orchestrates one scan run: resolve the target, fetch the root
// page, fan out to the indicator detectors, and aggregate everything
// into a ScanReport. A Scanner holds no state across runs; each Scan
// call is independent.
type Scanner struct {
	config      *config.GlobalConfig
	logger      zerolog.Logger
	rootFetcher detector.PageFetcher
	software    *detector.SoftwareDetector
	openDir     *detector.OpenDirDetector
	adminPanel  *detector.AdminPanelDetector
}

// NewScanner wires the scan pipeline from configuration. Two fetchers
// are built: the root fetch follows redirects so the landing page gets
// analyzed, while sub-path probes keep redirects visible for
// classification.
func NewScanner(cfg *config.GlobalConfig, logger zerolog.Logger) (*Scanner, error) {
	log := logger.With().Str("module", "scanner").Logger()

	rootFetcher, err := httpclient.NewFetcher(cfg.HTTPClientConfig, log)
	if err != nil {
		return nil, err
	}
	probeFetcher, err := httpclient.NewFetcher(cfg.HTTPClientConfig.WithoutRedirects(), log)
	if err != nil {
		return nil, err
	}

	software, err := detector.NewSoftwareDetector(cfg.SignaturesConfig, log)
	if err != nil {
		return nil, err
	}

	return &Scanner{
		config:      cfg,
		logger:      log,
		rootFetcher: rootFetcher,
		software:    software,
		openDir:     detector.NewOpenDirDetector(log),
		adminPanel:  detector.NewAdminPanelDetector(cfg.SignaturesConfig, probeFetcher, log),
	}, nil
}

// Scan runs the full pipeline against a raw target string. The only
// error it returns is target resolution failure; every later failure
// degrades into the report itself (a failed root fetch yields a report
// with failed status, per-probe failures land in the report's Errors).
func (s *Scanner) Scan(ctx context.Context, rawURL string) (*models.ScanReport, error) {
	target, err := urlhandler.ResolveTarget(rawURL)
	if err != nil {
		return nil, err
	}

	scanID := uuid.New().String()
	startedAt := time.Now().UTC()
	log := s.logger.With().Str("scan_id", scanID).Str("target", target.URL()).Logger()
	log.Info().Msg("Scan started")

	rootRes := s.rootFetcher.Fetch(ctx, target.URL())
	if rootRes.Failed() {
		log.Warn().Str("error", rootRes.Error).Msg("Root page fetch failed")
		report := aggregate(scanID, target, startedAt, models.ScanStatusFailed,
			models.PageInfo{}, []string{rootRes.Error})
		return report, nil
	}

	page := pageInfoFrom(rootRes)

	softwareIndicators := s.software.Detect(rootRes)
	openDirIndicators := s.openDir.Detect(rootRes)
	adminIndicators, probeErrs := s.adminPanel.ProbeAll(ctx, target)

	report := aggregate(scanID, target, startedAt, models.ScanStatusCompleted, page, probeErrs,
		softwareIndicators, openDirIndicators, adminIndicators)

	log.Info().
		Int("indicators", len(report.Indicators)).
		Dur("duration", report.Duration()).
		Msg("Scan completed")

	return report, nil
}

// pageInfoFrom extracts general root-page information for the report.
func pageInfoFrom(res *models.FetchResult) models.PageInfo {
	info := models.PageInfo{StatusCode: res.StatusCode}
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.Body)); err == nil {
		info.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	return info
}
