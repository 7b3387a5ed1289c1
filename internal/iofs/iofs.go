// Package iofs prepares directories and the configuration file used by
// nursery.
package iofs

import (
	"bytes"
	_ "embed"
	"errors"
	"log/slog"
	"os"

	"github.com/root31/nursery/pkg/config"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var ConfigYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.DataDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded config.yaml when the config file
// is absent or empty. An existing file must be valid YAML.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	data, err := os.ReadFile(configPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return ReadFileError(configPath, err)
	}

	if err == nil && len(bytes.TrimSpace(data)) > 0 {
		var probe map[string]any
		if err = yaml.Unmarshal(data, &probe); err != nil {
			return ReadFileError(configPath, err)
		}
		return nil
	}

	slog.Info("Writing default configuration", "path", configPath)
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// DefaultConfig returns the configuration described by the embedded
// config.yaml.
func DefaultConfig() (*config.Config, error) {
	var res config.Config
	if err := yaml.Unmarshal([]byte(ConfigYAML), &res); err != nil {
		return nil, ReadFileError("embedded config.yaml", err)
	}
	return &res, nil
}
