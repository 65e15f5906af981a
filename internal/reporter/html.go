package reporter

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/siteprobe/siteprobe/internal/models"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

type htmlSection struct {
	Name       string
	Empty      string
	Indicators []models.Indicator
}

type htmlView struct {
	Report      *models.ScanReport
	GeneratedAt string
	Duration    string
	Sections    []htmlSection
}

// WriteHTML renders the report into a standalone HTML file.
func WriteHTML(report *models.ScanReport, path string) error {
	tmpl, err := template.ParseFS(templateFS, "templates/report.html.tmpl")
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	view := htmlView{
		Report:      report,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Duration:    report.Duration().Round(time.Millisecond).String(),
	}
	for _, category := range models.IndicatorCategories {
		view.Sections = append(view.Sections, htmlSection{
			Name:       category.String(),
			Empty:      noFindingsLine[category],
			Indicators: report.IndicatorsByCategory(category),
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML report '%s': %w", path, err)
	}
	defer file.Close()

	if err := tmpl.Execute(file, view); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	return nil
}
