package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/siteprobe/siteprobe/internal/config"
)

// New creates a zerolog logger from the log configuration. Console
// output always goes to stderr; file output is added when a log file is
// configured, with size-based rotation.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}

	writers := []io.Writer{newConsoleWriter(cfg)}
	if cfg.LogFile != "" {
		fileWriter, err := newFileWriter(cfg)
		if err != nil {
			return zerolog.Nop(), err
		}
		writers = append(writers, fileWriter)
	}

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return log, nil
}

// NewWithScanID creates a logger carrying the scan ID on every event,
// so probe logs can be correlated back to their run.
func NewWithScanID(cfg config.LogConfig, scanID string) (zerolog.Logger, error) {
	log, err := New(cfg)
	if err != nil {
		return zerolog.Nop(), err
	}
	return log.With().Str("scan_id", scanID).Logger(), nil
}

func parseLevel(levelStr string) (zerolog.Level, error) {
	if levelStr == "" {
		levelStr = config.DefaultLogLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level '%s': %w", levelStr, err)
	}
	return level, nil
}
