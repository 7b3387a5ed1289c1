package config_test

import (
	"path/filepath"
	"testing"

	"github.com/root31/nursery/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "nursery"),
		},
		{
			msg: "data dir",
			fn:  config.DataDir,
			res: filepath.Join(tempHome, ".local", "share", "nursery", "data"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "nursery", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "nursery", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Store defaults
		assert.Equal(t, "json", cfg.Store.Backend)
		assert.Equal(t, "", cfg.Store.DataDir)
		assert.Equal(t, "plants.json", cfg.Store.PlantsFile)
		assert.Equal(t, "suppliers.json", cfg.Store.SuppliersFile)
		assert.Equal(t, "nursery.db", cfg.Store.SQLiteFile)

		// Alerts defaults
		assert.Equal(t, 5, cfg.Alerts.LowStockThreshold)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)
	})
}

func TestStoreDir(t *testing.T) {
	t.Run("defaults to data dir under home", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptHomeDir("/home/op")})
		assert.Equal(t, config.DataDir("/home/op"), cfg.StoreDir())
	})

	t.Run("uses explicit data dir", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/home/op"),
			config.OptStoreDataDir("/srv/nursery"),
		})
		assert.Equal(t, "/srv/nursery", cfg.StoreDir())
	})
}

func TestOptionStoreBackend(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets sqlite",
			input:    "sqlite",
			expected: "sqlite",
		},
		{
			name:     "normalizes case and whitespace",
			input:    "  SQLite ",
			expected: "sqlite",
		},
		{
			name:     "ignores unknown backend",
			input:    "postgres",
			expected: "json", // Should keep default
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptStoreBackend(tt.input)})
			assert.Equal(t, tt.expected, cfg.Store.Backend)
		})
	}
}

func TestOptionStoreFiles(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets file name",
			input:    "stock.json",
			expected: "stock.json",
		},
		{
			name:     "trims whitespace",
			input:    "  stock.json ",
			expected: "stock.json",
		},
		{
			name:     "ignores path with directories",
			input:    "data/stock.json",
			expected: "plants.json",
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "plants.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptStorePlantsFile(tt.input)})
			assert.Equal(t, tt.expected, cfg.Store.PlantsFile)
		})
	}
}

func TestOptionLowStockThreshold(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid threshold",
			input:    10,
			expected: 10,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 5,
		},
		{
			name:     "ignores negative",
			input:    -3,
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptAlertsLowStockThreshold(tt.input)})
			assert.Equal(t, tt.expected, cfg.Alerts.LowStockThreshold)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "sets debug", input: "debug", expected: "debug"},
		{name: "normalizes case", input: "WARN", expected: "warn"},
		{name: "ignores invalid", input: "verbose", expected: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptLogDestination("stderr")})
	assert.Equal(t, "stderr", cfg.Log.Destination)

	cfg.Update([]config.Option{config.OptLogDestination("syslog")})
	assert.Equal(t, "stderr", cfg.Log.Destination,
		"invalid destination keeps previous value")
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		opts := []config.Option{
			config.OptStoreBackend("sqlite"),
			config.OptStoreDataDir("/srv/nursery"),
			config.OptStorePlantsFile("p.json"),
			config.OptStoreSuppliersFile("s.json"),
			config.OptStoreSQLiteFile("inv.db"),
			config.OptAlertsLowStockThreshold(8),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
		}
		original.Update(opts)

		// Convert to options and apply to new config
		convertedOpts := original.ToOptions()
		newCfg := config.New()
		newCfg.Update(convertedOpts)

		assert.Equal(t, original.Store, newCfg.Store)
		assert.Equal(t, original.Alerts, newCfg.Alerts)
		assert.Equal(t, original.Log, newCfg.Log)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
		})

		opts := cfg.ToOptions()
		newCfg := config.New()
		newCfg.Update(opts)

		assert.Equal(t, "", newCfg.HomeDir)
	})
}
