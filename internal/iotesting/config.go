// Package iotesting provides shared test utilities.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"testing"

	"github.com/root31/nursery/pkg/config"
)

// envVars are the environment variables read by the configuration. They are
// cleared for tests, so settings of the developer do not leak in.
var envVars = []string{
	"NURSERY_STORE_BACKEND",
	"NURSERY_STORE_DATA_DIR",
	"NURSERY_STORE_PLANTS_FILE",
	"NURSERY_STORE_SUPPLIERS_FILE",
	"NURSERY_STORE_SQLITE_FILE",
	"NURSERY_ALERTS_LOW_STOCK_THRESHOLD",
	"NURSERY_LOG_LEVEL",
	"NURSERY_LOG_FORMAT",
	"NURSERY_LOG_DESTINATION",
}

// GetTestConfig returns the default configuration with HomeDir set to a
// temporary directory, so collections are kept away from real data.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    cfg := iotesting.GetTestConfig(t)
//	    store, err := iostore.New(cfg)
//	    // ...
//	}
func GetTestConfig(t *testing.T, opts ...config.Option) *config.Config {
	t.Helper()
	cfg := config.New()
	opts = append(opts, config.OptHomeDir(t.TempDir()))
	cfg.Update(opts)
	return cfg
}

// SetupTempHome points HOME to a temporary directory and clears NURSERY_*
// environment variables for the duration of the test. Config, data and
// log directories are created there by the CLI.
//
// Returns the absolute path to the temporary home directory.
func SetupTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	for _, v := range envVars {
		// Setenv registers restoring of the original value.
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
	return home
}
