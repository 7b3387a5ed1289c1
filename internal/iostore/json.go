package iostore

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/root31/nursery/pkg/inventory"
)

// JSONStore keeps each collection in its own JSON file.
type JSONStore struct {
	dir           string
	plantsPath    string
	suppliersPath string
	enc           gnfmt.Encoder
}

// NewJSON creates a store for files in dir. The directory is created if
// it does not exist.
func NewJSON(dir, plantsFile, suppliersFile string) (*JSONStore, error) {
	if err := gnsys.MakeDir(dir); err != nil {
		return nil, StoreOpenError(dir, err)
	}
	res := &JSONStore{
		dir:           dir,
		plantsPath:    filepath.Join(dir, plantsFile),
		suppliersPath: filepath.Join(dir, suppliersFile),
		enc:           gnfmt.GNjson{Pretty: true},
	}
	return res, nil
}

// Location returns the data directory.
func (s *JSONStore) Location() string {
	return s.dir
}

// LoadPlants reads plants.json, creating an empty one when needed.
func (s *JSONStore) LoadPlants() ([]inventory.Plant, error) {
	data, err := s.read(s.plantsPath)
	if err != nil {
		return nil, err
	}
	return decodePlants(s.enc, s.plantsPath, data)
}

// LoadSuppliers reads suppliers.json, creating an empty one when needed.
func (s *JSONStore) LoadSuppliers() ([]inventory.Supplier, error) {
	data, err := s.read(s.suppliersPath)
	if err != nil {
		return nil, err
	}
	return decodeSuppliers(s.enc, s.suppliersPath, data)
}

// SavePlants overwrites plants.json.
func (s *JSONStore) SavePlants(plants []inventory.Plant) error {
	data, err := encodePlants(s.enc, plants)
	if err != nil {
		return StoreWriteError(s.plantsPath, err)
	}
	return s.write(s.plantsPath, data)
}

// SaveSuppliers overwrites suppliers.json.
func (s *JSONStore) SaveSuppliers(suppliers []inventory.Supplier) error {
	data, err := encodeSuppliers(s.enc, suppliers)
	if err != nil {
		return StoreWriteError(s.suppliersPath, err)
	}
	return s.write(s.suppliersPath, data)
}

// Close does nothing, files are closed after every access.
func (s *JSONStore) Close() error {
	return nil
}

// read returns the content of the file. An absent or empty file is
// replaced by an empty collection first.
func (s *JSONStore) read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, StoreReadError(path, err)
	}
	if err == nil && !isBlank(data) {
		return data, nil
	}

	slog.Info("Initializing empty collection", "path", path)
	if err = s.write(path, emptyCollection); err != nil {
		return nil, err
	}
	return emptyCollection, nil
}

func (s *JSONStore) write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return StoreWriteError(path, err)
	}
	return nil
}
