package reporter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/siteprobe/siteprobe/internal/config"
	"github.com/siteprobe/siteprobe/internal/models"
)

// WriteJSON writes the report to a file as JSON. Field names are stable
// across releases; the report struct's json tags are the schema.
func WriteJSON(report *models.ScanReport, cfg config.ReporterConfig, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON report '%s': %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	if cfg.JSONIndent {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}
