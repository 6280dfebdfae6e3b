// ABOUTME: SQLite-backed inventory store for racks and servers
// ABOUTME: Opens the database, applies the schema and owns write transactions

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/markalston/assetdex-dcim/models"
)

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS racks (
		name TEXT PRIMARY KEY,
		location TEXT NOT NULL DEFAULT '',
		total_units INTEGER NOT NULL DEFAULT 42 CHECK (total_units > 0),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS servers (
		id TEXT PRIMARY KEY,
		hostname TEXT NOT NULL UNIQUE,
		model TEXT NOT NULL DEFAULT '',
		serial TEXT NOT NULL DEFAULT '',
		rack TEXT REFERENCES racks(name) ON DELETE SET NULL,
		unit INTEGER CHECK (unit IS NULL OR unit > 0),
		unit_height INTEGER NOT NULL DEFAULT 1 CHECK (unit_height > 0),
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_servers_rack_unit ON servers(rack, unit);
`

// Evaluator decides whether a candidate placement fits a rack snapshot.
type Evaluator interface {
	Evaluate(snapshot models.RackSnapshot, candidate models.CandidatePlacement) (models.AvailabilityResult, error)
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store persists racks and servers and re-validates every placement inside
// the transaction that writes it.
type Store struct {
	db           *sql.DB
	evaluator    Evaluator
	defaultUnits int
}

// Option configures a Store.
type Option func(*Store)

// WithDefaultRackUnits sets the capacity used for racks created without one.
func WithDefaultRackUnits(units int) Option {
	return func(s *Store) {
		if units > 0 {
			s.defaultUnits = units
		}
	}
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string, evaluator Evaluator, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToOpen, err)
	}

	// SQLite has a single writer. One connection serializes placement
	// writes so each re-check and its update commit together.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", errFailedToOpen, err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", errFailedToInit, err)
	}

	s := &Store{db: db, evaluator: evaluator, defaultUnits: models.DefaultRackUnits}
	for _, opt := range opts {
		opt(s)
	}

	slog.Info("Database opened", "path", path)
	return s, nil
}

func dsn(path string) string {
	params := "_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"
	if path == ":memory:" {
		return "file::memory:?" + params
	}
	return "file:" + path + "?" + params + "&_journal_mode=WAL"
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// withTx runs fn in a transaction, committing on success.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToBeginTx, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Error("Transaction rollback failed", "error", rbErr)
		}
		return err
	}

	return tx.Commit()
}

// isConstraintViolation reports whether err is a UNIQUE or PRIMARY KEY failure.
func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

func nullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}

func nullUnit(unit int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(unit), Valid: unit > 0}
}
