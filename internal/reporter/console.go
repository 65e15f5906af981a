package reporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/siteprobe/siteprobe/internal/config"
	"github.com/siteprobe/siteprobe/internal/models"
)

// noFindingsLine is what gets printed under a category with no indicators.
var noFindingsLine = map[models.IndicatorCategory]string{
	models.CategoryOutdatedSoftware: "No clear outdated software indicators found.",
	models.CategoryOpenDirectory:    "No obvious open directory listing detected.",
	models.CategoryAdminPanel:       "No common admin panel paths found to be directly accessible.",
}

// ConsoleReporter renders a ScanReport for terminal display.
type ConsoleReporter struct {
	styles styleSet
	out    io.Writer
}

// NewConsoleReporter creates a console reporter writing to out.
func NewConsoleReporter(cfg config.ReporterConfig, out io.Writer) *ConsoleReporter {
	styles := defaultStyles()
	if cfg.NoColor {
		styles = plainStyles()
	}
	return &ConsoleReporter{styles: styles, out: out}
}

// Print renders the report to the configured writer.
func (r *ConsoleReporter) Print(report *models.ScanReport) {
	fmt.Fprint(r.out, r.Render(report))
}

// Render builds the full console representation of a report.
func (r *ConsoleReporter) Render(report *models.ScanReport) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(r.styles.title.Render("Scan Report"))
	b.WriteString("\n\n")

	r.writeField(&b, "Target", r.styles.value.Render(report.TargetURL))
	r.writeField(&b, "Scan ID", r.styles.muted.Render(report.ScanID))
	if report.Status == models.ScanStatusCompleted {
		r.writeField(&b, "Status", r.styles.ok.Render(string(report.Status)))
	} else {
		r.writeField(&b, "Status", r.styles.err.Render(string(report.Status)))
	}
	r.writeField(&b, "Duration", r.styles.muted.Render(report.Duration().Round(time.Millisecond).String()))

	if report.Page.StatusCode != 0 {
		r.writeField(&b, "HTTP Status", r.styles.value.Render(fmt.Sprintf("%d", report.Page.StatusCode)))
	}
	if report.Page.Title != "" {
		r.writeField(&b, "Page Title", r.styles.value.Render(report.Page.Title))
	}

	for _, category := range models.IndicatorCategories {
		b.WriteString("\n")
		b.WriteString(r.styles.section.Render(category.String()))
		b.WriteString("\n")

		indicators := report.IndicatorsByCategory(category)
		if len(indicators) == 0 {
			b.WriteString("  " + r.styles.muted.Render(noFindingsLine[category]) + "\n")
			continue
		}
		for _, ind := range indicators {
			b.WriteString("  " + r.styles.finding.Render("! "+ind.Detail) + "\n")
			b.WriteString("    " + r.styles.url.Render(ind.SourceURL) + "\n")
		}
	}

	if len(report.Errors) > 0 {
		b.WriteString("\n")
		b.WriteString(r.styles.section.Render("Errors"))
		b.WriteString("\n")
		for _, e := range report.Errors {
			b.WriteString("  " + r.styles.err.Render("x "+e) + "\n")
		}
	}

	b.WriteString("\n")
	return b.String()
}

func (r *ConsoleReporter) writeField(b *strings.Builder, label, value string) {
	b.WriteString(r.styles.label.Render(label))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}
