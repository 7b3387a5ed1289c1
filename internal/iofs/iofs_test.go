package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/root31/nursery/pkg/config"
	"github.com/root31/nursery/pkg/errcode"
	"github.com/root31/nursery/pkg/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs verifies all required directories are created and
// that repeated calls succeed.
func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for range 2 {
		err := EnsureDirs(tmpDir)
		require.NoError(t, err)
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "nursery"),
		filepath.Join(tmpDir, ".local", "share", "nursery", "data"),
		filepath.Join(tmpDir, ".local", "share", "nursery", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), v)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), v)
	}
}

func TestTouchDir(t *testing.T) {
	tmpDir := t.TempDir()
	newDir := filepath.Join(tmpDir, "test", "subdir")

	require.NoError(t, touchDir(newDir))
	info, err := os.Stat(newDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// a file in the way cannot become a directory
	blocked := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0644))
	err = touchDir(filepath.Join(blocked, "sub"))
	assert.True(t, inventory.HasCode(err, errcode.CreateDirError))
}

func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))
	configPath := config.ConfigFilePath(tmpDir)

	t.Run("creates file from template", func(t *testing.T) {
		require.NoError(t, EnsureConfigFile(tmpDir))
		content, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, ConfigYAML, string(content))

		info, err := os.Stat(configPath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	})

	t.Run("keeps existing file", func(t *testing.T) {
		custom := "store:\n  backend: sqlite\n"
		require.NoError(t, os.WriteFile(configPath, []byte(custom), 0644))
		require.NoError(t, EnsureConfigFile(tmpDir))
		content, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, custom, string(content))
	})

	t.Run("heals empty file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(configPath, []byte("\n"), 0644))
		require.NoError(t, EnsureConfigFile(tmpDir))
		content, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, ConfigYAML, string(content))
	})

	t.Run("rejects broken yaml", func(t *testing.T) {
		broken := "store: [backend\n"
		require.NoError(t, os.WriteFile(configPath, []byte(broken), 0644))
		err := EnsureConfigFile(tmpDir)
		assert.True(t, inventory.HasCode(err, errcode.ReadFileError))
	})
}

// TestDefaultConfig verifies the embedded template agrees with
// config.New.
func TestDefaultConfig(t *testing.T) {
	assert.Contains(t, ConfigYAML, "low_stock_threshold")

	cfg, err := DefaultConfig()
	require.NoError(t, err)
	def := config.New()
	assert.Equal(t, def.Store, cfg.Store)
	assert.Equal(t, def.Alerts, cfg.Alerts)
	assert.Equal(t, def.Log, cfg.Log)
}
