// Package persist writes computed QC records to the configured backend:
// a single JSON document holding the whole QC matrix, or row-per-run
// inserts into the SQLite QC database.
package persist

// #region imports
import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/msqclab/qcmg/internal/metrics"
	"github.com/msqclab/qcmg/internal/qcdb"
)

// #endregion

// #region backend

// Backend selects a persistence implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// ErrUnsupportedBackend reports an unknown backend selector. This is a
// configuration error and surfaces before any computation starts.
var ErrUnsupportedBackend = errors.New("unsupported persistence backend")

// ParseBackend validates a backend selector string.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case BackendJSON, BackendSQLite:
		return Backend(s), nil
	default:
		return "", fmt.Errorf("%w: %q (want json or sqlite)", ErrUnsupportedBackend, s)
	}
}

// #endregion

// #region adapter

// Adapter persists QC records behind a backend switch.
type Adapter struct {
	backend    Backend
	matrixPath string
	dbPath     string
}

// NewAdapter builds an Adapter for the given selector. matrixPath is used
// by the json backend, dbPath by the sqlite backend.
func NewAdapter(backend, matrixPath, dbPath string) (*Adapter, error) {
	b, err := ParseBackend(backend)
	if err != nil {
		return nil, err
	}
	return &Adapter{backend: b, matrixPath: matrixPath, dbPath: dbPath}, nil
}

// WriteMatrix persists a whole QC matrix. The json backend overwrites the
// configured path; the sqlite backend opens-or-creates the database and
// appends one row per run.
func (a *Adapter) WriteMatrix(m metrics.QCMatrix) error {
	switch a.backend {
	case BackendJSON:
		return WriteMatrixFile(a.matrixPath, m)
	case BackendSQLite:
		store, err := qcdb.Open(a.dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		for _, run := range m.QCRuns {
			if err := store.InsertRun(run); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedBackend, a.backend)
	}
}

// AppendRun persists a single freshly computed QC record. Only the sqlite
// backend supports streaming appends; the json document is always written
// whole.
func (a *Adapter) AppendRun(run metrics.QCRun) error {
	if a.backend != BackendSQLite {
		return fmt.Errorf("%w: %q does not support per-run appends", ErrUnsupportedBackend, a.backend)
	}
	store, err := qcdb.Open(a.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.InsertRun(run)
}

// #endregion

// #region json-file

// WriteMatrixFile serializes a QC matrix to a single JSON document at
// path, overwriting any existing file.
func WriteMatrixFile(path string, m metrics.QCMatrix) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal qc matrix: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write qc matrix %s: %w", path, err)
	}
	return nil
}

// ReadMatrixFile reads a QC matrix document back from path.
func ReadMatrixFile(path string) (metrics.QCMatrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return metrics.QCMatrix{}, fmt.Errorf("read qc matrix %s: %w", path, err)
	}
	var m metrics.QCMatrix
	if err := json.Unmarshal(data, &m); err != nil {
		return metrics.QCMatrix{}, fmt.Errorf("decode qc matrix %s: %w", path, err)
	}
	return m, nil
}

// #endregion
