// Package iostore persists plants and suppliers as whole snapshots, either
// as two JSON files or as two JSON payloads in a SQLite database.
package iostore

import (
	"path/filepath"

	nursery "github.com/root31/nursery/pkg"
	"github.com/root31/nursery/pkg/config"
)

var (
	_ nursery.DataStore = (*JSONStore)(nil)
	_ nursery.DataStore = (*SQLiteStore)(nil)
)

// New creates the store selected by the configuration.
func New(cfg *config.Config) (nursery.DataStore, error) {
	dir := cfg.StoreDir()
	switch cfg.Store.Backend {
	case "sqlite":
		return NewSQLite(filepath.Join(dir, cfg.Store.SQLiteFile))
	default:
		return NewJSON(dir, cfg.Store.PlantsFile, cfg.Store.SuppliersFile)
	}
}
