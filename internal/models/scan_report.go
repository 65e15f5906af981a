package models

import "time"

// ScanStatus represents the final state of a scan run.
type ScanStatus string

const (
	ScanStatusCompleted ScanStatus = "completed"
	ScanStatusFailed    ScanStatus = "failed"
)

// PageInfo carries general information about the root page of a target.
type PageInfo struct {
	Title      string `json:"title,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}

// ScanReport is the aggregated output of one scan run: the original
// target, the indicators found grouped by category, and run metadata.
// It is built once by the aggregator and handed to the reporters.
type ScanReport struct {
	ScanID      string      `json:"scan_id"`
	TargetURL   string      `json:"target_url"`
	Status      ScanStatus  `json:"status"`
	StartedAt   time.Time   `json:"started_at"`
	CompletedAt time.Time   `json:"completed_at"`
	Page        PageInfo    `json:"page"`
	Indicators  []Indicator `json:"indicators"`
	Errors      []string    `json:"errors,omitempty"`
}

// IndicatorsByCategory returns the indicators of one category,
// preserving their aggregation order.
func (r *ScanReport) IndicatorsByCategory(category IndicatorCategory) []Indicator {
	var out []Indicator
	for _, ind := range r.Indicators {
		if ind.Category == category {
			out = append(out, ind)
		}
	}
	return out
}

// CountByCategory returns the number of indicators per category.
func (r *ScanReport) CountByCategory() map[IndicatorCategory]int {
	counts := make(map[IndicatorCategory]int, len(IndicatorCategories))
	for _, ind := range r.Indicators {
		counts[ind.Category]++
	}
	return counts
}

// HasFindings reports whether the scan produced any indicator at all.
func (r *ScanReport) HasFindings() bool {
	return len(r.Indicators) > 0
}

// Duration returns the wall-clock duration of the scan.
func (r *ScanReport) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}
