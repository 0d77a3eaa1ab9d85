package config

// AppConfig is the top-level YAML structure.
type AppConfig struct {
	Version    string        `yaml:"version"`
	Server     ServerConf    `yaml:"server"`
	Log        LogConf       `yaml:"log"`
	Summary    SummaryConf   `yaml:"summary"`
	Categories CategoryLists `yaml:"categories"`
}

// ServerConf holds HTTP listener settings. Changes require a restart.
type ServerConf struct {
	Addr           string   `yaml:"addr"`
	ReadTimeoutMs  int      `yaml:"read_timeout_ms"`
	WriteTimeoutMs int      `yaml:"write_timeout_ms"`
	IdleTimeoutMs  int      `yaml:"idle_timeout_ms"`
	CORSOrigins    []string `yaml:"cors_origins"`
	LegacyRoutes   *bool    `yaml:"legacy_routes"` // nil = default (true)
}

// LogConf controls slog output. Level is hot-reloadable.
type LogConf struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// SummaryConf controls aggregate derivation.
type SummaryConf struct {
	// Timezone decides which calendar month "this month" is. IANA name or "Local".
	Timezone string `yaml:"timezone"`
}

// CategoryLists are the category suggestions offered to clients per transaction type.
// They are hints only; stores accept any category.
type CategoryLists struct {
	Income  []string `yaml:"income"`
	Expense []string `yaml:"expense"`
}

// LegacyRoutesEnabled reports whether the /api/expenses and /api/events aliases are served.
func (s ServerConf) LegacyRoutesEnabled() bool {
	return s.LegacyRoutes == nil || *s.LegacyRoutes
}
