package config

import (
	"path/filepath"
	"strings"

	"github.com/gnames/gn"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptStoreBackend sets the Data Store implementation.
// Valid values: "json", "sqlite".
func OptStoreBackend(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Store.Backend", s) {
			c.Store.Backend = s
		}
	}
}

// OptStoreDataDir sets the directory with collection files.
func OptStoreDataDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Store Data Directory", s) {
			c.Store.DataDir = s
		}
	}
}

// OptStorePlantsFile sets the file name of the plants collection.
func OptStorePlantsFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidFileName("Store Plants File", s) {
			c.Store.PlantsFile = s
		}
	}
}

// OptStoreSuppliersFile sets the file name of the suppliers collection.
func OptStoreSuppliersFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidFileName("Store Suppliers File", s) {
			c.Store.SuppliersFile = s
		}
	}
}

// OptStoreSQLiteFile sets the file name of the SQLite database.
func OptStoreSQLiteFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidFileName("Store SQLite File", s) {
			c.Store.SQLiteFile = s
		}
	}
}

// OptAlertsLowStockThreshold sets the quantity at which stock stops
// being low.
func OptAlertsLowStockThreshold(i int) Option {
	return func(c *Config) {
		if isValidInt("Low Stock Threshold", i) {
			c.Alerts.LowStockThreshold = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, data, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

func isValidFileName(name, s string) bool {
	if !isValidString(name, s) {
		return false
	}
	if filepath.Base(s) != s {
		gn.Warn("<em>%s</em> must be a file name without directories, "+
			"ignoring '%s'", name, s)
		return false
	}
	return true
}
