package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStorage implements Storage using SQLite.
type SQLiteStorage struct {
	path string
	db   *sql.DB

	projects *sqliteProjectRepo
	sessions *sqliteSessionRepo
}

// NewSQLiteStorage creates a new SQLite storage for the given file path.
// Use ":memory:" for an ephemeral database.
func NewSQLiteStorage(path string) *SQLiteStorage {
	return &SQLiteStorage{path: path}
}

// Open initializes the database connection and runs the schema migration.
func (s *SQLiteStorage) Open() error {
	ctx := context.Background()

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	// SQLite is single-writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("ping database: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return fmt.Errorf("set pragma: %w", err)
		}
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return fmt.Errorf("migrate: %w", err)
	}

	s.db = db
	s.projects = &sqliteProjectRepo{db: db}
	s.sessions = &sqliteSessionRepo{db: db}
	return nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	projectsQuery := `
	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		total_time INTEGER NOT NULL DEFAULT 0,
		rate_per_hour INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)
	`
	if _, err := db.ExecContext(ctx, projectsQuery); err != nil {
		return err
	}

	sessionsQuery := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT,
		duration INTEGER NOT NULL DEFAULT 0,
		notes TEXT,
		created_at TEXT NOT NULL,
		FOREIGN KEY (project_id) REFERENCES projects(id)
	)
	`
	_, err := db.ExecContext(ctx, sessionsQuery)
	return err
}

// Projects returns the project repository.
func (s *SQLiteStorage) Projects() ProjectRepository {
	return s.projects
}

// Sessions returns the session repository.
func (s *SQLiteStorage) Sessions() SessionRepository {
	return s.sessions
}

// Close closes the database.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
