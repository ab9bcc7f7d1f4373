package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/quizdeck/ent"
	"github.com/abhisek/quizdeck/ent/entry"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// SQLiteBackend is the durable tier: entries survive process restarts,
// the way localStorage survives tab loss and reloads.
type SQLiteBackend struct {
	db     *sql.DB
	client *ent.Client
}

// OpenSQLite creates a durable tier backed by the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func OpenSQLite(dsn string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &SQLiteBackend{db: db, client: client}, nil
}

// Close closes the database connection.
func (s *SQLiteBackend) Close() error {
	return s.client.Close()
}

func (s *SQLiteBackend) Name() string { return TierSQLite }

func (s *SQLiteBackend) Put(ctx context.Context, k Key, e Entry) error {
	err := s.client.Entry.Create().
		SetKey(k.String()).
		SetKind(k.Kind).
		SetPayload(e.Payload).
		SetStoredAt(e.StoredAt).
		OnConflictColumns(entry.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("put %s: %w", k.String(), err)
	}
	return nil
}

func (s *SQLiteBackend) Get(ctx context.Context, k Key) (Entry, bool, error) {
	row, err := s.client.Entry.Query().
		Where(entry.KeyEQ(k.String())).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("get %s: %w", k.String(), err)
	}
	return Entry{Payload: row.Payload, StoredAt: row.StoredAt}, true, nil
}

func (s *SQLiteBackend) Remove(ctx context.Context, k Key) error {
	return s.RemoveKey(ctx, k.String())
}

func (s *SQLiteBackend) RemoveKey(ctx context.Context, key string) error {
	_, err := s.client.Entry.Delete().
		Where(entry.KeyEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteBackend) ListKind(ctx context.Context, kind string) ([]KeyedEntry, error) {
	rows, err := s.client.Entry.Query().
		Where(entry.KindEQ(kind)).
		Order(ent.Asc(entry.FieldStoredAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list kind %s: %w", kind, err)
	}

	out := make([]KeyedEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, KeyedEntry{
			Key:   row.Key,
			Entry: Entry{Payload: row.Payload, StoredAt: row.StoredAt},
		})
	}
	return out, nil
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. QUIZDECK_DB environment variable
// 2. $XDG_DATA_HOME/quizdeck/quizdeck.db
// 3. ~/.local/share/quizdeck/quizdeck.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("QUIZDECK_DB"); p != "" {
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "quizdeck", "quizdeck.db")
	return p, ensureDir(p)
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
