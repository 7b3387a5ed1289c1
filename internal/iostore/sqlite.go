package iostore

import (
	"database/sql"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/root31/nursery/pkg/inventory"
	_ "modernc.org/sqlite"
)

const collectionsDDL = `CREATE TABLE IF NOT EXISTS collections (
	name TEXT PRIMARY KEY,
	payload BLOB NOT NULL
)`

const upsertSQL = `INSERT INTO collections(name, payload) VALUES(?, ?)
ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`

// SQLiteStore keeps each collection as one JSON payload in a SQLite file.
// Records have the same shape as in JSONStore.
type SQLiteStore struct {
	db   *sql.DB
	path string
	enc  gnfmt.Encoder
}

// NewSQLite opens or creates the database at path.
func NewSQLite(path string) (*SQLiteStore, error) {
	if err := gnsys.MakeDir(filepath.Dir(path)); err != nil {
		return nil, StoreOpenError(path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, StoreOpenError(path, err)
	}
	if _, err = db.Exec(collectionsDDL); err != nil {
		_ = db.Close()
		return nil, StoreOpenError(path, err)
	}
	res := &SQLiteStore{
		db:   db,
		path: path,
		enc:  gnfmt.GNjson{},
	}
	return res, nil
}

// Location returns the database file.
func (s *SQLiteStore) Location() string {
	return s.path
}

func (s *SQLiteStore) LoadPlants() ([]inventory.Plant, error) {
	data, err := s.read(plantsCollection)
	if err != nil {
		return nil, err
	}
	return decodePlants(s.enc, s.path, data)
}

func (s *SQLiteStore) LoadSuppliers() ([]inventory.Supplier, error) {
	data, err := s.read(suppliersCollection)
	if err != nil {
		return nil, err
	}
	return decodeSuppliers(s.enc, s.path, data)
}

func (s *SQLiteStore) SavePlants(plants []inventory.Plant) error {
	data, err := encodePlants(s.enc, plants)
	if err != nil {
		return StoreWriteError(s.path, err)
	}
	return s.write(plantsCollection, data)
}

func (s *SQLiteStore) SaveSuppliers(suppliers []inventory.Supplier) error {
	data, err := encodeSuppliers(s.enc, suppliers)
	if err != nil {
		return StoreWriteError(s.path, err)
	}
	return s.write(suppliersCollection, data)
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return StoreCloseError(s.path, err)
	}
	return nil
}

// read returns the payload of a collection, storing an empty one when
// the row is missing or blank.
func (s *SQLiteStore) read(name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(
		`SELECT payload FROM collections WHERE name = ?`, name,
	).Scan(&data)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, StoreReadError(s.path, err)
	}
	if err == nil && !isBlank(data) {
		return data, nil
	}

	slog.Info("Initializing empty collection", "path", s.path, "name", name)
	if err = s.write(name, emptyCollection); err != nil {
		return nil, err
	}
	return emptyCollection, nil
}

func (s *SQLiteStore) write(name string, data []byte) (retErr error) {
	tx, err := s.db.Begin()
	if err != nil {
		return StoreWriteError(s.path, err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(upsertSQL, name, data); err != nil {
		return StoreWriteError(s.path, err)
	}
	if err = tx.Commit(); err != nil {
		return StoreWriteError(s.path, err)
	}
	return nil
}
