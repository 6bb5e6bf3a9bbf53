package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv_items (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// sqlExecutor is satisfied by both *sql.DB and *sql.Tx.
type sqlExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type SQLiteStore struct {
	db *sql.DB
	sqliteQueries
}

// NewSQLiteStore opens the SQLite database at path and creates the item table if needed.
// The caller is responsible for calling Close() on the store.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single connection keeps ":memory:" databases consistent across calls
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{
		db:            db,
		sqliteQueries: sqliteQueries{db: db},
	}, nil
}

func (s *SQLiteStore) Close(ctx context.Context) error {
	return s.db.Close()
}

func (s *SQLiteStore) Update(ctx context.Context, fn func(tx Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&sqliteTx{sqliteQueries{db: tx}}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("failed to rollback transaction: %v (after %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type sqliteTx struct {
	sqliteQueries
}

func (t *sqliteTx) Close(ctx context.Context) error {
	return nil
}

type sqliteQueries struct {
	db sqlExecutor
}

func (q sqliteQueries) GetItem(ctx context.Context, key string) (string, error) {
	var value string
	err := q.db.QueryRowContext(ctx, `SELECT value FROM kv_items WHERE key = ?;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &ErrNotFound{Key: key}
		}
		return "", fmt.Errorf("failed to get item: %w", err)
	}
	return value, nil
}

func (q sqliteQueries) SetItem(ctx context.Context, key string, value string) error {
	_, err := q.db.ExecContext(ctx, `INSERT OR REPLACE INTO kv_items (key, value) VALUES (?, ?);`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set item: %w", err)
	}
	return nil
}

func (q sqliteQueries) RemoveItem(ctx context.Context, key string) error {
	if _, err := q.db.ExecContext(ctx, `DELETE FROM kv_items WHERE key = ?;`, key); err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	return nil
}

func (q sqliteQueries) Keys(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT key FROM kv_items ORDER BY key;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query keys: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate keys: %w", err)
	}
	return keys, nil
}
