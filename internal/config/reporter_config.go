package config

// ReporterConfig controls report output.
type ReporterConfig struct {
	JSONOutputFile string `json:"json_output_file,omitempty" yaml:"json_output_file,omitempty"`
	HTMLOutputFile string `json:"html_output_file,omitempty" yaml:"html_output_file,omitempty"`
	JSONIndent     bool   `json:"json_indent" yaml:"json_indent"`
	NoColor        bool   `json:"no_color,omitempty" yaml:"no_color,omitempty"`
}

// NewDefaultReporterConfig creates default reporter configuration.
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		JSONIndent: DefaultReporterJSONIndent,
	}
}
