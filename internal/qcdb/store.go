// Package qcdb is the SQLite-backed QC database: one row per instrument
// run, one column per QC metric. The schema is derived from the pipeline's
// canonical metric name list, so the column layout always mirrors the
// positional qc_names/qc_values contract.
package qcdb

// #region imports
import (
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/msqclab/qcmg/internal/metrics"
)

// #endregion

// #region schema

const metadataColumns = `
	run_id            TEXT PRIMARY KEY,
	acquisition_date  TEXT NOT NULL,
	original_filename TEXT NOT NULL,
	chemical_mix_id   TEXT NOT NULL,
	msfe_version      TEXT NOT NULL,
	scans_processed   INTEGER NOT NULL,
	created_at        TEXT NOT NULL`

func schema() string {
	cols := []string{metadataColumns}
	for _, name := range metrics.Names() {
		cols = append(cols, fmt.Sprintf("\t%s REAL NOT NULL", name))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS qc_runs (\n%s\n);", strings.Join(cols, ",\n"))
}

// #endregion

// #region store

// Store manages the QC database.
type Store struct {
	db *sql.DB
}

// Open opens the QC database at path, creating the file and the qc_runs
// table when absent. Appending to an existing database never touches
// prior rows.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open qc database %s: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma %s: %w", path, err)
	}
	if _, err := db.Exec(schema()); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion

// #region insert

// InsertRun appends one QC record as a new row. The record's qc_names must
// match the canonical pipeline order exactly; anything else would silently
// shift values between columns.
func (s *Store) InsertRun(run metrics.QCRun) error {
	names := metrics.Names()
	if !slices.Equal(run.QCNames, names) {
		return fmt.Errorf("insert run %s: qc_names do not match the canonical metric order", run.OriginalFilename)
	}

	cols := []string{"run_id", "acquisition_date", "original_filename", "chemical_mix_id",
		"msfe_version", "scans_processed", "created_at"}
	args := []interface{}{uuid.New().String(), run.Date, run.OriginalFilename, run.ChemicalMixID,
		run.MsfeVersion, run.ScansProcessed, time.Now().UTC().Format(time.RFC3339Nano)}
	for i, name := range names {
		cols = append(cols, name)
		args = append(args, run.QCValues[i])
	}

	query := fmt.Sprintf("INSERT INTO qc_runs (%s) VALUES (%s)",
		strings.Join(cols, ", "), strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "))
	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("insert run %s: %w", run.OriginalFilename, err)
	}
	return nil
}

// #endregion

// #region queries

// HasRun reports whether a run with the given acquisition date and
// original filename is already stored.
func (s *Store) HasRun(date, originalFilename string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM qc_runs WHERE acquisition_date = ? AND original_filename = ?`,
		date, originalFilename,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check run %s: %w", originalFilename, err)
	}
	return n > 0, nil
}

// CountRuns returns the number of stored QC records.
func (s *Store) CountRuns() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM qc_runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}

// ListRuns returns the most recently inserted QC records, oldest first.
// limit <= 0 returns everything.
func (s *Store) ListRuns(limit int) ([]metrics.QCRun, error) {
	names := metrics.Names()
	cols := append([]string{"acquisition_date", "original_filename", "chemical_mix_id",
		"msfe_version", "scans_processed"}, names...)

	query := fmt.Sprintf("SELECT %s FROM qc_runs ORDER BY rowid", strings.Join(cols, ", "))
	if limit > 0 {
		query = fmt.Sprintf(
			"SELECT * FROM (SELECT %s, rowid AS rid FROM qc_runs ORDER BY rowid DESC LIMIT %d) ORDER BY rid",
			strings.Join(cols, ", "), limit)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []metrics.QCRun
	for rows.Next() {
		run := metrics.QCRun{
			QCNames:  slices.Clone(names),
			QCValues: make([]float64, len(names)),
		}
		dest := []interface{}{&run.Date, &run.OriginalFilename, &run.ChemicalMixID,
			&run.MsfeVersion, &run.ScansProcessed}
		for i := range names {
			dest = append(dest, &run.QCValues[i])
		}
		if limit > 0 {
			var rid int64
			dest = append(dest, &rid)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// #endregion
