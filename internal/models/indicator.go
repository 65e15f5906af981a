package models

// IndicatorCategory classifies what kind of condition an indicator records.
type IndicatorCategory string

const (
	CategoryOutdatedSoftware IndicatorCategory = "outdated_software"
	CategoryOpenDirectory    IndicatorCategory = "open_directory"
	CategoryAdminPanel       IndicatorCategory = "admin_panel"
)

// IndicatorCategories lists all categories in report presentation order.
var IndicatorCategories = []IndicatorCategory{
	CategoryOutdatedSoftware,
	CategoryOpenDirectory,
	CategoryAdminPanel,
}

// String returns a human-readable label for the category.
func (c IndicatorCategory) String() string {
	switch c {
	case CategoryOutdatedSoftware:
		return "Outdated Software"
	case CategoryOpenDirectory:
		return "Open Directory"
	case CategoryAdminPanel:
		return "Admin Panel"
	default:
		return string(c)
	}
}

// Indicator is a single recorded sign of a potential security-relevant
// condition found during a scan. Indicators are immutable value records.
type Indicator struct {
	Category  IndicatorCategory `json:"category"`
	Detail    string            `json:"detail"`
	SourceURL string            `json:"source_url"`
}
