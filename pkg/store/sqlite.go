package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const (
	sqliteFile = "gratitude.sqlite"

	createKVTableSQL = `
  CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value BLOB NOT NULL,
  updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
  )`

	getValueSQL = `SELECT value FROM kv WHERE key = ?`
	putValueSQL = `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

type sqliteBackend struct {
	db       *sql.DB
	basePath string
}

// NewSQLite stores keys in a sqlite database under basePath.
func NewSQLite(basePath string) (Backend, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(basePath, sqliteFile))
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping database: %w", err)
	}
	if _, err := db.Exec(createKVTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create kv table: %w", err)
	}
	return &sqliteBackend{db: db, basePath: basePath}, nil
}

func (b *sqliteBackend) Read(key string) ([]byte, error) {
	var val []byte
	err := b.db.QueryRow(getValueSQL, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (b *sqliteBackend) Write(key string, val []byte) error {
	if _, err := b.db.Exec(putValueSQL, key, val); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (b *sqliteBackend) Dir() string {
	return b.basePath
}

// Owns matches the database file and its journal/WAL companions.
func (b *sqliteBackend) Owns(path string) bool {
	return strings.HasPrefix(filepath.Base(path), sqliteFile)
}

func (b *sqliteBackend) Close() error {
	return b.db.Close()
}
