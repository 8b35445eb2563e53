package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"inv-go/internal/database/migrations"
	"inv-go/internal/database/sqlc"
	"inv-go/internal/inv"
)

// SQLiteDatabase implements the inv.Database interface using SQLite.
type SQLiteDatabase struct {
	*sqliteStore
	db   *sql.DB
	path string
}

// NewSQLiteDatabase creates a new SQLite database connection.
// path can be a file path or ":memory:" for in-memory database.
func NewSQLiteDatabase(path string) (*SQLiteDatabase, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	return &SQLiteDatabase{
		sqliteStore: &sqliteStore{q: sqlc.New(db)},
		db:          db,
		path:        path,
	}, nil
}

// NewSQLiteDatabaseFromDB wraps an existing database connection.
// The caller is responsible for ensuring the connection is properly configured.
func NewSQLiteDatabaseFromDB(db *sql.DB) *SQLiteDatabase {
	return &SQLiteDatabase{
		sqliteStore: &sqliteStore{q: sqlc.New(db)},
		db:          db,
	}
}

// OpenConnection opens and configures a SQLite database connection.
// Every pooled connection enforces foreign keys, waits on a busy database
// and starts write transactions with BEGIN IMMEDIATE, so two writers never
// both read before one of them writes.
func OpenConnection(path string) (*sql.DB, error) {
	dsn := path + "?_foreign_keys=1&_txlock=immediate&_busy_timeout=5000"
	if path != ":memory:" {
		dsn += "&_journal_mode=WAL"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Each connection to ":memory:" is its own database.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Update runs fn in one write transaction. The error returned by fn is
// passed through unchanged so callers can still match typed errors.
func (s *SQLiteDatabase) Update(ctx context.Context, fn func(tx inv.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&sqliteStore{q: s.q.WithTx(tx)}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Operation journal

func (s *SQLiteDatabase) StartOperation(ctx context.Context, operation, actorID, parameters string) (int64, error) {
	op, err := s.q.InsertOperation(ctx, sqlc.InsertOperationParams{
		Operation:  operation,
		ActorID:    actorID,
		Parameters: parameters,
		StartedAt:  time.Now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("creating operation: %w", err)
	}
	return op.ID, nil
}

func (s *SQLiteDatabase) FinishOperation(ctx context.Context, id int64, status string) error {
	err := s.q.UpdateOperationFinished(ctx, sqlc.UpdateOperationFinishedParams{
		ID:         id,
		FinishedAt: sql.NullTime{Time: time.Now().UTC(), Valid: true},
		Status:     status,
	})
	if err != nil {
		return fmt.Errorf("finishing operation: %w", err)
	}
	return nil
}

func (s *SQLiteDatabase) ListOperations(ctx context.Context, limit int) ([]*inv.Operation, error) {
	if limit <= 0 {
		limit = -1
	}
	ops, err := s.q.ListOperations(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("listing operations: %w", err)
	}

	result := make([]*inv.Operation, len(ops))
	for i, op := range ops {
		result[i] = &inv.Operation{
			ID:         op.ID,
			Operation:  op.Operation,
			ActorID:    op.ActorID,
			Parameters: op.Parameters,
			StartedAt:  op.StartedAt,
			FinishedAt: fromNullTime(op.FinishedAt),
			Status:     op.Status,
		}
	}
	return result, nil
}

// Path returns the database file path (or ":memory:" for in-memory databases).
func (s *SQLiteDatabase) Path() string {
	return s.path
}

// CheckMigrations verifies the database schema is up-to-date.
func (s *SQLiteDatabase) CheckMigrations() error {
	return migrations.CheckDBMigrationStatus(s.db)
}

// MigrationStatus reports the schema version against the embedded migrations.
func (s *SQLiteDatabase) MigrationStatus() (migrations.State, error) {
	return migrations.Status(s.db)
}

// Migrate applies every pending migration.
func (s *SQLiteDatabase) Migrate() error {
	return migrations.MigrateUp(s.db)
}

// BackupTo creates a complete copy of the database at destPath using VACUUM INTO.
func (s *SQLiteDatabase) BackupTo(destPath string) error {
	_, err := s.db.Exec("VACUUM INTO ?", destPath)
	if err != nil {
		return fmt.Errorf("backing up database: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteDatabase) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// uniqueViolation maps a UNIQUE constraint failure to a ConflictError with
// the given code. Other errors are returned as they are.
func uniqueViolation(err error, code, format string, args ...any) error {
	var se sqlite3.Error
	if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
		return inv.ConflictError(code, format, args...)
	}
	return err
}

// Compile-time check that SQLiteDatabase implements the inv interfaces
var (
	_ inv.Database           = (*SQLiteDatabase)(nil)
	_ inv.PersonnelDirectory = (*SQLiteDatabase)(nil)
	_ inv.SignerDirectory    = (*SQLiteDatabase)(nil)
)
