package altimetry

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"github.com/larry-lu/research/internal/monitoring"
	"github.com/larry-lu/research/internal/timeutil"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is a SQLite catalog of extracted elevations. Each extractor run is
// recorded as a uuid-tagged export row so granule subsets stay traceable
// to their source and bounding box.
type Store struct {
	db    *sql.DB
	clock timeutil.Clock
}

// OpenStore opens (or creates) the catalog at path and applies any pending
// schema migrations.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}

	s := &Store{db: db, clock: timeutil.RealClock{}}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	m.Log = &migrateLogger{}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// RecordExport stores one extractor run and its rows in a single
// transaction, returning the run id.
func (s *Store) RecordExport(granule string, bbox BoundingBox, rows []Elevation) (string, error) {
	runID := uuid.NewString()
	started := s.clock.Now()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin export transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO export_runs (run_id, granule, lon_min, lon_max, lat_min, lat_max, row_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, granule, bbox.LonMin, bbox.LonMax, bbox.LatMin, bbox.LatMax,
		len(rows), started.UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("record export run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO elevations (run_id, record_number, date, time, latitude, longitude, elevation_corrected, srtm)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare elevation insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(runID, r.RecordNumber, r.Date, r.Time,
			r.Latitude, r.Longitude, r.ElevationCorrected, r.SRTM); err != nil {
			return "", fmt.Errorf("insert record %d: %w", r.RecordNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit export: %w", err)
	}

	monitoring.Logf("recorded export run %s: %d rows from %s in %s",
		runID, len(rows), granule, s.clock.Since(started))
	return runID, nil
}

// ExportRun is the stored metadata for one extractor run.
type ExportRun struct {
	RunID     string
	Granule   string
	BBox      BoundingBox
	RowCount  int
	CreatedAt time.Time
}

// Run returns the metadata recorded for a run id.
func (s *Store) Run(runID string) (ExportRun, error) {
	var (
		run       ExportRun
		createdAt string
	)
	err := s.db.QueryRow(`
		SELECT run_id, granule, lon_min, lon_max, lat_min, lat_max, row_count, created_at
		FROM export_runs WHERE run_id = ?`, runID).Scan(
		&run.RunID, &run.Granule,
		&run.BBox.LonMin, &run.BBox.LonMax, &run.BBox.LatMin, &run.BBox.LatMax,
		&run.RowCount, &createdAt)
	if err != nil {
		return ExportRun{}, fmt.Errorf("load export run %s: %w", runID, err)
	}
	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return ExportRun{}, fmt.Errorf("parse created_at for run %s: %w", runID, err)
	}
	return run, nil
}

// Elevations returns the rows stored for a run, in record order.
func (s *Store) Elevations(runID string) ([]Elevation, error) {
	rows, err := s.db.Query(`
		SELECT record_number, date, time, latitude, longitude, elevation_corrected, srtm
		FROM elevations WHERE run_id = ? ORDER BY record_number`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Elevation
	for rows.Next() {
		var e Elevation
		if err := rows.Scan(&e.RecordNumber, &e.Date, &e.Time,
			&e.Latitude, &e.Longitude, &e.ElevationCorrected, &e.SRTM); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// migrateLogger routes golang-migrate output through the package logger.
type migrateLogger struct{}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	monitoring.Logf("[migrate] "+format, v...)
}

func (l *migrateLogger) Verbose() bool { return false }
