package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure,
// including compilability of every configured signature pattern.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Keep in step with the levels zerolog.ParseLevel accepts.
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "console", "json":
			return true
		default:
			return false
		}
	})

	if err := validate.Struct(cfg); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			var messages []string
			for _, e := range errs {
				msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.StructNamespace(), e.Tag())
				if e.Param() != "" {
					msg += fmt.Sprintf(" (expected: %s)", e.Param())
				}
				if e.Value() != nil && e.Value() != "" {
					msg += fmt.Sprintf(", actual: '%v'", e.Value())
				}
				messages = append(messages, msg)
			}
			return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(messages, "\n  "))
		}
		return fmt.Errorf("configuration validation error: %w", err)
	}

	for _, sig := range cfg.SignaturesConfig.SoftwareSignatures {
		if _, err := regexp.Compile("(?i)" + sig.Pattern); err != nil {
			return fmt.Errorf("signature '%s' has an invalid pattern: %w", sig.Name, err)
		}
	}

	for _, path := range cfg.SignaturesConfig.AdminPaths {
		if !strings.HasPrefix(path, "/") {
			return fmt.Errorf("admin path '%s' must start with '/'", path)
		}
	}

	return nil
}
