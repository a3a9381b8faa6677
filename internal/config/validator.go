package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Yuridiegotech/CabalOnline/internal/domain"
)

var validate = newValidator()

// newValidator reports fields by their environment variable name
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("env"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// Validate checks cfg against its struct tags. Missing required values are
// reported together and wrap domain.ErrMissingConfig.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var missing, invalid []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required", "required_if":
			missing = append(missing, e.Field())
		default:
			invalid = append(invalid, fmt.Sprintf("%s (%s)", e.Field(), describe(e)))
		}
	}
	sort.Strings(missing)

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingConfig, strings.Join(missing, ", "))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(invalid, ", "))
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "min", "gte":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "oneof":
		return "must be one of " + e.Param()
	case "numeric":
		return "must be numeric"
	default:
		return "invalid value"
	}
}

// Warnings returns non-fatal issues with an otherwise valid configuration
func Warnings(cfg *Config) []string {
	var warnings []string

	if !cfg.SheetsEnabled && !cfg.PostgresSinkEnabled {
		warnings = append(warnings, "no tabular sink enabled; records only go to "+cfg.LootLogPath)
	}

	if cfg.PostgresSinkEnabled && cfg.DBPassword == "postgres" {
		warnings = append(warnings, "DB_PASSWORD is the default value - set a real password for the postgres sink")
	}

	if !cfg.RunOnce() && cfg.Lookback > 0 && cfg.Lookback < cfg.PollInterval {
		warnings = append(warnings, "LOOKBACK is shorter than POLL_INTERVAL; messages between polls may be missed")
	}

	return warnings
}
