//go:build !(js && wasm)

package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore runs the behaviour every Store implementation must share.
func testStore(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		s := newStore(t)
		_, err := s.GetItem(ctx, "missing")
		assert.True(t, IsNotFound(err), "expected not found, got %v", err)
	})

	t.Run("set get overwrite", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.SetItem(ctx, "app", `{"games":[]}`))
		got, err := s.GetItem(ctx, "app")
		require.NoError(t, err)
		assert.Equal(t, `{"games":[]}`, got)

		require.NoError(t, s.SetItem(ctx, "app", `{"games":["X"]}`))
		got, err = s.GetItem(ctx, "app")
		require.NoError(t, err)
		assert.Equal(t, `{"games":["X"]}`, got)
	})

	t.Run("remove", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.SetItem(ctx, "game - X", "{}"))
		require.NoError(t, s.RemoveItem(ctx, "game - X"))
		require.NoError(t, s.RemoveItem(ctx, "game - X"), "removing twice is a no-op")

		ok, err := HasItem(ctx, s, "game - X")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("keys", func(t *testing.T) {
		s := newStore(t)
		for _, k := range []string{"game - b", "app", "game - a", "other"} {
			require.NoError(t, s.SetItem(ctx, k, "v"))
		}
		keys, err := s.Keys(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"app", "game - a", "game - b", "other"}, keys)

		games, err := KeysWithPrefix(ctx, s, "game - ")
		require.NoError(t, err)
		assert.Equal(t, []string{"game - a", "game - b"}, games)
	})

	t.Run("update commits", func(t *testing.T) {
		s := newStore(t)
		err := Update(ctx, s, func(tx Store) error {
			if err := tx.SetItem(ctx, "a", "1"); err != nil {
				return err
			}
			return tx.SetItem(ctx, "b", "2")
		})
		require.NoError(t, err)

		keys, err := s.Keys(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b"}, keys)
	})

	t.Run("update rolls back", func(t *testing.T) {
		s := newStore(t)
		if _, ok := s.(Transactor); !ok {
			t.Skip("store is not transactional")
		}
		require.NoError(t, s.SetItem(ctx, "a", "1"))

		boom := errors.New("boom")
		err := Update(ctx, s, func(tx Store) error {
			if err := tx.SetItem(ctx, "a", "2"); err != nil {
				return err
			}
			if err := tx.SetItem(ctx, "b", "2"); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := s.GetItem(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "1", got)
		_, err = s.GetItem(ctx, "b")
		assert.True(t, IsNotFound(err))
	})
}

func TestMemoryStore(t *testing.T) {
	testStore(t, func(t *testing.T) Store {
		return NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	testStore(t, func(t *testing.T) Store {
		s, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "scorekeeper.db"))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close(context.Background()) })
		return s
	})
}

func TestBoltStore(t *testing.T) {
	testStore(t, func(t *testing.T) Store {
		s, err := NewBoltStore(context.Background(), filepath.Join(t.TempDir(), "scorekeeper.bolt"))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close(context.Background()) })
		return s
	})
}

func TestPostgresStore(t *testing.T) {
	connStr := os.Getenv("SCOREKEEPER_TEST_POSTGRES_URL")
	if connStr == "" {
		t.Skip("SCOREKEEPER_TEST_POSTGRES_URL not set")
	}
	testStore(t, func(t *testing.T) Store {
		ctx := context.Background()
		s, err := NewPostgresStore(ctx, connStr)
		require.NoError(t, err)
		_, err = s.pool.Exec(ctx, "TRUNCATE kv_items;")
		require.NoError(t, err)
		t.Cleanup(func() { s.Close(ctx) })
		return s
	})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		dsn     string
		want    interface{}
		wantErr bool
	}{
		{name: "memory", dsn: "memory://", want: &MemoryStore{}},
		{name: "sqlite", dsn: "sqlite://" + filepath.Join(dir, "a.db"), want: &SQLiteStore{}},
		{name: "sqlite in memory", dsn: "sqlite://:memory:", want: &SQLiteStore{}},
		{name: "bolt", dsn: "bolt://" + filepath.Join(dir, "a.bolt"), want: &BoltStore{}},
		{name: "browser outside wasm", dsn: "browser://", wantErr: true},
		{name: "missing path", dsn: "sqlite://", wantErr: true},
		{name: "no scheme", dsn: "scorekeeper.db", wantErr: true},
		{name: "unknown scheme", dsn: "redis://localhost", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(ctx, tt.dsn)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			defer s.Close(ctx)
			assert.IsType(t, tt.want, s)
		})
	}
}

func TestOpen_browserUnavailable(t *testing.T) {
	_, err := Open(context.Background(), "browser://")
	assert.ErrorIs(t, err, ErrUnavailable)
}
