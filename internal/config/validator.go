package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Validate checks the config for:
//   - Required fields
//   - Known log level and format
//   - A loadable summary timezone
//   - Blank or duplicate category names within a type
func Validate(cfg *AppConfig) error {
	if cfg.Version == "" {
		return fmt.Errorf("config: version is required")
	}
	var errs []string

	if cfg.Server.Addr == "" {
		errs = append(errs, "server.addr is required")
	}
	for _, f := range []struct {
		name string
		v    int
	}{
		{"read_timeout_ms", cfg.Server.ReadTimeoutMs},
		{"write_timeout_ms", cfg.Server.WriteTimeoutMs},
		{"idle_timeout_ms", cfg.Server.IdleTimeoutMs},
	} {
		if f.v < 0 {
			errs = append(errs, fmt.Sprintf("server.%s must not be negative, got %d", f.name, f.v))
		}
	}
	for i, o := range cfg.Server.CORSOrigins {
		if strings.TrimSpace(o) == "" {
			errs = append(errs, fmt.Sprintf("server.cors_origins[%d]: origin is blank", i))
		}
	}

	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, err.Error())
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", cfg.Log.Format))
	}

	if _, err := time.LoadLocation(cfg.Summary.Timezone); err != nil {
		errs = append(errs, fmt.Sprintf("summary.timezone %q: %s", cfg.Summary.Timezone, err))
	}

	validateCategories("income", cfg.Categories.Income, &errs)
	validateCategories("expense", cfg.Categories.Expense, &errs)

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func validateCategories(kind string, names []string, errs *[]string) {
	seen := make(map[string]int)
	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			*errs = append(*errs, fmt.Sprintf("categories.%s[%d]: name is blank", kind, i))
			continue
		}
		if prev, ok := seen[n]; ok {
			*errs = append(*errs, fmt.Sprintf("categories.%s: duplicate %q (first at [%d], again at [%d])", kind, n, prev, i))
			continue
		}
		seen[n] = i
	}
}

// ParseLevel maps a config level name onto a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level %q: must be debug, info, warn or error", s)
	}
	return lvl, nil
}

// Location resolves the summary timezone. Callers rely on Validate having
// accepted it; an unknown name falls back to UTC.
func (s SummaryConf) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
