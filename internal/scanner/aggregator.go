package scanner

import (
	"time"

	"github.com/siteprobe/siteprobe/internal/models"
	"github.com/siteprobe/siteprobe/internal/urlhandler"
)

// aggregate builds the final ScanReport from the detector outputs.
// Indicator lists are concatenated in the order given, which the caller
// keeps as the category presentation order (software, open directory,
// admin panel); each list's internal order is preserved. Indicators are
// never deduplicated across categories. Pure construction, no side
// effects.
func aggregate(
	scanID string,
	target *urlhandler.ScanTarget,
	startedAt time.Time,
	status models.ScanStatus,
	page models.PageInfo,
	errs []string,
	indicatorLists ...[]models.Indicator,
) *models.ScanReport {
	total := 0
	for _, list := range indicatorLists {
		total += len(list)
	}

	indicators := make([]models.Indicator, 0, total)
	for _, list := range indicatorLists {
		indicators = append(indicators, list...)
	}

	return &models.ScanReport{
		ScanID:      scanID,
		TargetURL:   target.URL(),
		Status:      status,
		StartedAt:   startedAt,
		CompletedAt: time.Now().UTC(),
		Page:        page,
		Indicators:  indicators,
		Errors:      errs,
	}
}
