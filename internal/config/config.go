package config

const (
	// HTTP client defaults
	DefaultHTTPTimeoutSecs     = 10
	DefaultHTTPUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultHTTPFollowRedirects = true
	DefaultHTTPMaxRedirects    = 10
	DefaultHTTPMaxBodyMB       = 10
	DefaultHTTPEnableHTTP2     = true

	// Log defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Reporter defaults
	DefaultReporterJSONIndent = true
)

// GlobalConfig is the root configuration for a siteprobe run.
type GlobalConfig struct {
	HTTPClientConfig HTTPClientConfig `json:"http_client_config,omitempty" yaml:"http_client_config,omitempty"`
	SignaturesConfig SignaturesConfig `json:"signatures_config,omitempty" yaml:"signatures_config,omitempty"`
	LogConfig        LogConfig        `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ReporterConfig   ReporterConfig   `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
}

// NewDefaultGlobalConfig assembles a GlobalConfig from per-section defaults.
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		HTTPClientConfig: NewDefaultHTTPClientConfig(),
		SignaturesConfig: NewDefaultSignaturesConfig(),
		LogConfig:        NewDefaultLogConfig(),
		ReporterConfig:   NewDefaultReporterConfig(),
	}
}
