package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS kv_items (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// pgExecutor is satisfied by both *pgxpool.Pool and pgx.Tx.
type pgExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresStore struct {
	pool *pgxpool.Pool
	postgresQueries
}

// NewPostgresStore connects to the database at connStr and creates the item table if needed.
// The caller is responsible for calling Close() on the store.
func NewPostgresStore(ctx context.Context, connStr string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	var username string
	var database string
	err = pool.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to query database: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &PostgresStore{
		pool:            pool,
		postgresQueries: postgresQueries{db: pool},
	}, nil
}

func (s *PostgresStore) Close(ctx context.Context) error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, fn func(tx Store) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// no-op once committed
	defer tx.Rollback(ctx)

	if err := fn(&postgresTx{postgresQueries{db: tx}}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type postgresTx struct {
	postgresQueries
}

func (t *postgresTx) Close(ctx context.Context) error {
	return nil
}

type postgresQueries struct {
	db pgExecutor
}

func (q postgresQueries) GetItem(ctx context.Context, key string) (string, error) {
	var value string
	if err := q.db.QueryRow(ctx, `SELECT value FROM kv_items WHERE key = $1;`, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", &ErrNotFound{Key: key}
		}
		return "", fmt.Errorf("failed to get item: %w", err)
	}
	return value, nil
}

func (q postgresQueries) SetItem(ctx context.Context, key string, value string) error {
	query := `
	INSERT INTO kv_items (key, value) VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;
	`
	if _, err := q.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set item: %w", err)
	}
	return nil
}

func (q postgresQueries) RemoveItem(ctx context.Context, key string) error {
	if _, err := q.db.Exec(ctx, `DELETE FROM kv_items WHERE key = $1;`, key); err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	return nil
}

func (q postgresQueries) Keys(ctx context.Context) ([]string, error) {
	rows, err := q.db.Query(ctx, `SELECT key FROM kv_items ORDER BY key;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query keys: %w", err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan keys: %w", err)
	}
	return keys, nil
}
