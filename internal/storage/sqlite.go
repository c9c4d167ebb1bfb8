// Package storage provides SQLite-based run history for linker.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only per-run statistics are kept; there is no save state.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/segmentio/ksuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultTickRate is assumed for runs recorded without a tick rate.
const DefaultTickRate = 40

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished play session.
type RunRecord struct {
	ID               int64
	RunID            string // KSUID, sortable by creation time
	GameID           string
	Layout           string
	Ticks            uint64
	TickRate         int // Ticks per second the run was played at
	PotsBroken       int
	BoomerangsThrown int
	RoomsVisited     int
	CreatedAt        time.Time
}

// PlayTime converts the run's ticks to wall time at its own tick rate.
func (r RunRecord) PlayTime() time.Duration {
	return ticksToDuration(r.Ticks, r.TickRate)
}

func ticksToDuration(ticks uint64, tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return time.Duration(ticks) * time.Second / time.Duration(tickRate) //#nosec G115 -- tick counts stay far below 2^63
}

// Totals aggregates every recorded run.
type Totals struct {
	Runs             int
	Ticks            int64
	PlayTime         time.Duration // Sum of each run's PlayTime
	PotsBroken       int
	BoomerangsThrown int
	BestPots         int
	LastPlayed       time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			layout TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			tick_rate INTEGER NOT NULL DEFAULT 40,
			pots_broken INTEGER NOT NULL DEFAULT 0,
			boomerangs_thrown INTEGER NOT NULL DEFAULT 0,
			rooms_visited INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// Databases created before tick_rate was recorded
	_, err := s.db.Exec(`ALTER TABLE runs ADD COLUMN tick_rate INTEGER NOT NULL DEFAULT 40`)
	if err != nil && !strings.Contains(err.Error(), "duplicate column") {
		return err
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. A missing RunID is generated.
// Returns the record as stored.
func (s *Store) SaveRun(rec RunRecord) (RunRecord, error) {
	if rec.RunID == "" {
		rec.RunID = ksuid.New().String()
	}
	if rec.TickRate <= 0 {
		rec.TickRate = DefaultTickRate
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, game_id, layout, ticks, tick_rate, pots_broken, boomerangs_thrown, rooms_visited)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.GameID, rec.Layout, int64(rec.Ticks), //#nosec G115 -- tick counts stay far below 2^63
		rec.TickRate, rec.PotsBroken, rec.BoomerangsThrown, rec.RoomsVisited,
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	rec.ID = id

	return rec, nil
}

// RecentRuns retrieves the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, layout, ticks, tick_rate, pots_broken, boomerangs_thrown, rooms_visited, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run by its KSUID. Returns nil if there is none.
func (s *Store) RunByID(runID string) (*RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, game_id, layout, ticks, tick_rate, pots_broken, boomerangs_thrown, rooms_visited, created_at
		 FROM runs
		 WHERE run_id = ?`,
		runID,
	)

	rec, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Totals aggregates all runs.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	var lastPlayed any
	var playMillis int64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(SUM(ticks * 1000 / tick_rate), 0),
		        COALESCE(SUM(pots_broken), 0), COALESCE(SUM(boomerangs_thrown), 0),
		        COALESCE(MAX(pots_broken), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&t.Runs, &t.Ticks, &playMillis, &t.PotsBroken, &t.BoomerangsThrown, &t.BestPots, &lastPlayed)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot get totals: %w", err)
	}
	t.PlayTime = time.Duration(playMillis) * time.Millisecond
	t.LastPlayed = parseTime(lastPlayed)

	return t, nil
}

// ClearRuns deletes all run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(r rowScanner) (RunRecord, error) {
	var rec RunRecord
	var ticks int64
	var createdAt any

	err := r.Scan(&rec.ID, &rec.RunID, &rec.GameID, &rec.Layout, &ticks, &rec.TickRate,
		&rec.PotsBroken, &rec.BoomerangsThrown, &rec.RoomsVisited, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, err
	}
	if err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	rec.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
