package config

import (
	"fmt"
	"strings"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	switch cfg.SearchContextSize {
	case "", "low", "medium", "high":
	default:
		errs = append(errs, fmt.Sprintf("search_context_size: invalid value %q (must be low, medium, or high)", cfg.SearchContextSize))
	}

	if cfg.Model != "" && strings.TrimSpace(cfg.Model) != cfg.Model {
		errs = append(errs, fmt.Sprintf("model: must not have surrounding whitespace, got %q", cfg.Model))
	}

	if cfg.MaxRetries != nil && (*cfg.MaxRetries < 0 || *cfg.MaxRetries > 10) {
		errs = append(errs, fmt.Sprintf("max_retries: must be between 0 and 10, got %d", *cfg.MaxRetries))
	}

	if cfg.RequestTimeout < 0 {
		errs = append(errs, fmt.Sprintf("request_timeout: must be non-negative, got %s", cfg.RequestTimeout.String()))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
