// internal/common/config/config.go
package config

// Config is the main application configuration struct. Scoring constants
// (component weights, thresholds, evidence floors) are methodology contract
// data and deliberately not configurable here.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Report  ReportConfig  `mapstructure:"report"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig controls the optional Prometheus/pprof listener for
// long-running batch use; one-shot invocations leave it disabled.
type MetricsConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	ListenAddress string `mapstructure:"listen_address"`
}

// ReportConfig holds report output settings.
type ReportConfig struct {
	Pretty bool `mapstructure:"pretty"`
}
