// Package config provides configuration management for nursery.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Store: backend, data_dir, plants_file, suppliers_file, sqlite_file
//   - Alerts: low_stock_threshold
//   - Log: level, format, destination
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use NURSERY_ prefix with underscores for nesting:
//
//	NURSERY_STORE_BACKEND=sqlite
//	NURSERY_STORE_DATA_DIR=/srv/nursery
//	NURSERY_ALERTS_LOW_STOCK_THRESHOLD=5
//	NURSERY_LOG_LEVEL=info
package config

// Config represents the complete nursery configuration.
type Config struct {
	// Store contains settings of the plants and suppliers collections.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	// Alerts contains settings of alert derivation.
	Alerts AlertsConfig `mapstructure:"alerts" yaml:"alerts"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `yaml:"-"`
}

// StoreConfig describes where and how collections are persisted.
type StoreConfig struct {
	// Backend selects the Data Store implementation.
	// Valid values: "json" (two JSON files), "sqlite" (one SQLite file).
	Backend string `mapstructure:"backend" yaml:"backend"`

	// DataDir is the directory with collection files. Empty means
	// the default location under HomeDir (see DataDir function).
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// PlantsFile is the file name of the plants collection (json backend).
	PlantsFile string `mapstructure:"plants_file" yaml:"plants_file"`

	// SuppliersFile is the file name of the suppliers collection
	// (json backend).
	SuppliersFile string `mapstructure:"suppliers_file" yaml:"suppliers_file"`

	// SQLiteFile is the file name of the database (sqlite backend).
	SQLiteFile string `mapstructure:"sqlite_file" yaml:"sqlite_file"`
}

// AlertsConfig contains settings of the alert engine.
type AlertsConfig struct {
	// LowStockThreshold is the quantity at and above which stock is
	// sufficient. Quantities between 1 and LowStockThreshold-1 produce
	// a LOW alert, quantity 0 produces a CRITICAL alert.
	LowStockThreshold int `mapstructure:"low_stock_threshold" yaml:"low_stock_threshold"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Store: StoreConfig{
			Backend:       "json",
			PlantsFile:    "plants.json",
			SuppliersFile: "suppliers.json",
			SQLiteFile:    "nursery.db",
		},
		Alerts: AlertsConfig{
			LowStockThreshold: 5,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// appended by every run, rotated by size
			Destination: "file",
		},
	}

	return res
}

// StoreDir returns the directory with collection files: the configured
// DataDir, or the default data directory under HomeDir.
func (c *Config) StoreDir() string {
	if c.Store.DataDir != "" {
		return c.Store.DataDir
	}
	return DataDir(c.HomeDir)
}
