package reporter

import "github.com/charmbracelet/lipgloss"

// Color palette, loosely following the severity conventions of the
// usual security tooling.
var (
	colorPrimary = lipgloss.Color("#7D56F4")
	colorMuted   = lipgloss.Color("#6B7280")
	colorWarning = lipgloss.Color("#FFB800")
	colorDanger  = lipgloss.Color("#FF3838")
	colorOK      = lipgloss.Color("#00D26A")
	colorInfo    = lipgloss.Color("#4D96FF")
)

type styleSet struct {
	title   lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	finding lipgloss.Style
	url     lipgloss.Style
	ok      lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

func defaultStyles() styleSet {
	return styleSet{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(colorPrimary).
			Padding(0, 1),
		section: lipgloss.NewStyle().Bold(true),
		label:   lipgloss.NewStyle().Foreground(colorMuted).Width(12),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		finding: lipgloss.NewStyle().Foreground(colorWarning),
		url:     lipgloss.NewStyle().Foreground(colorInfo),
		ok:      lipgloss.NewStyle().Foreground(colorOK),
		err:     lipgloss.NewStyle().Foreground(colorDanger),
		muted:   lipgloss.NewStyle().Foreground(colorMuted),
	}
}

// plainStyles keeps the layout rules (padding, width) without any color,
// for no-color terminals and piped output.
func plainStyles() styleSet {
	return styleSet{
		title:   lipgloss.NewStyle().Padding(0, 1),
		section: lipgloss.NewStyle(),
		label:   lipgloss.NewStyle().Width(12),
		value:   lipgloss.NewStyle(),
		finding: lipgloss.NewStyle(),
		url:     lipgloss.NewStyle(),
		ok:      lipgloss.NewStyle(),
		err:     lipgloss.NewStyle(),
		muted:   lipgloss.NewStyle(),
	}
}
