// Package sqlite implementa el BlobStore sobre SQLite (driver por defecto).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/batmanhot/logistica-inventario/internal/domain/repository"
)

var _ repository.BlobStore = (*BlobStore)(nil)

// BlobStore guarda cada clave en una fila de inventory_blobs.
type BlobStore struct {
	db *sql.DB
}

// New abre (o crea) la base en path y migra el esquema. ":memory:" abre una base en memoria.
func New(path string) (*BlobStore, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("crear directorio de datos: %w", err)
			}
		}
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// un solo escritor; con :memory: cada conexión sería otra base
	db.SetMaxOpenConns(1)

	s := &BlobStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrar sqlite: %w", err)
	}
	return s, nil
}

func (s *BlobStore) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS inventory_blobs (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return err
}

// Get lee una clave; ok=false si no existe.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM inventory_blobs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// PutMany escribe todas las claves en una transacción.
func (s *BlobStore) PutMany(ctx context.Context, blobs map[string][]byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO inventory_blobs (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for key, value := range blobs {
		if _, err := stmt.ExecContext(ctx, key, value, now); err != nil {
			return fmt.Errorf("upsert %s: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close cierra la base.
func (s *BlobStore) Close() error {
	return s.db.Close()
}
