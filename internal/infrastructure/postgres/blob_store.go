package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/batmanhot/logistica-inventario/internal/domain/repository"
)

var tracer = otel.Tracer("logistica-inventario/postgres")

var _ repository.BlobStore = (*BlobStore)(nil)

const blobTable = "inventory_blobs"

type blobRow struct {
	Key       string    `db:"key"`
	Value     []byte    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// BlobStore implementa repository.BlobStore sobre una tabla clave/valor en PostgreSQL.
type BlobStore struct {
	pool    *pgxpool.Pool
	builder squirrel.StatementBuilderType
}

// NewBlobStore crea el store y asegura la tabla.
func NewBlobStore(ctx context.Context, pool *pgxpool.Pool) (*BlobStore, error) {
	s := &BlobStore{
		pool:    pool,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS inventory_blobs (
			key        TEXT PRIMARY KEY,
			value      BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return nil, fmt.Errorf("crear tabla %s: %w", blobTable, err)
	}
	return s, nil
}

// Get lee una clave; ok=false si no existe.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := s.builder.
		Select("key", "value", "updated_at").
		From(blobTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build query: %w", err)
	}

	var row blobRow
	if err := pgxscan.Get(ctx, s.pool, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return row.Value, true, nil
}

// PutMany hace upsert de todas las claves en una transacción.
func (s *BlobStore) PutMany(ctx context.Context, blobs map[string][]byte) error {
	if len(blobs) == 0 {
		return nil
	}
	ctx, span := tracer.Start(ctx, "blobs.put_many",
		trace.WithAttributes(attribute.Int("blobs.count", len(blobs))))
	defer span.End()

	now := time.Now().UTC()
	q := s.builder.Insert(blobTable).Columns("key", "value", "updated_at")
	for key, value := range blobs {
		q = q.Values(key, value, now)
	}
	query, args, err := q.
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		span.RecordError(err)
		return fmt.Errorf("upsert blobs: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close cierra el pool.
func (s *BlobStore) Close() error {
	s.pool.Close()
	return nil
}
