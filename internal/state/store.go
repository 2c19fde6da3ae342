package state

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"sagelink/internal/config"
	"sagelink/internal/logging"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is bumped when the artifact schema changes. A mismatched
// database is reset rather than migrated; the next run simply rebuilds state
// from the filesystem.
const schemaVersion = 1

// Artifact records the derived outputs last materialized for one identity key.
type Artifact struct {
	FilenameBase string
	LinkPath     string
	SidecarPath  string
	SourcePath   string
	SourceMTime  int64
}

// Snapshot is the full identity-key to artifact mapping for one point in time.
// The previous run's snapshot is loaded once at run start and never mutated;
// the current run accumulates a fresh snapshot that replaces it at run end.
type Snapshot map[string]Artifact

// Store persists artifact snapshots in SQLite.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open initializes or connects to the state database. An unreadable or
// malformed database is treated as empty starting state: the file is removed
// and recreated, never a fatal error.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	log := logging.NewComponentLogger(logger, "state")

	dbPath := filepath.Join(cfg.Paths.StateDir, "artifacts.db")
	store, err := open(dbPath, log)
	if err == nil {
		return store, nil
	}

	log.Warn("state database unusable, resetting to empty state", logging.Error(err), logging.String("path", dbPath))
	removeDatabase(dbPath)
	return open(dbPath, log)
}

func open(dbPath string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, logger: logger}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func removeDatabase(dbPath string) {
	for _, suffix := range []string{"", "-wal", "-shm"} {
		_ = os.Remove(dbPath + suffix)
	}
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	var version int
	err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		if _, err := s.db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case version != schemaVersion:
		return fmt.Errorf("schema version mismatch: database has %d, expected %d", version, schemaVersion)
	}
	return nil
}

// Load reads the complete previous snapshot.
func (s *Store) Load(ctx context.Context) (Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT media_id, filename_base, link_path, sidecar_path, source_path, source_mtime FROM artifacts")
	if err != nil {
		return nil, fmt.Errorf("query artifacts: %w", err)
	}
	defer rows.Close()

	snapshot := Snapshot{}
	for rows.Next() {
		var id string
		var artifact Artifact
		if err := rows.Scan(&id, &artifact.FilenameBase, &artifact.LinkPath,
			&artifact.SidecarPath, &artifact.SourcePath, &artifact.SourceMTime); err != nil {
			return nil, fmt.Errorf("scan artifact: %w", err)
		}
		snapshot[id] = artifact
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artifacts: %w", err)
	}
	return snapshot, nil
}

// Replace atomically swaps the persisted snapshot for the provided one.
func (s *Store) Replace(ctx context.Context, snapshot Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM artifacts"); err != nil {
		return fmt.Errorf("clear artifacts: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO artifacts (media_id, filename_base, link_path, sidecar_path, source_path, source_mtime)
         VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for id, artifact := range snapshot {
		if _, err := stmt.ExecContext(ctx, id, artifact.FilenameBase, artifact.LinkPath,
			artifact.SidecarPath, artifact.SourcePath, artifact.SourceMTime); err != nil {
			return fmt.Errorf("insert artifact %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}
