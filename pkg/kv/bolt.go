//go:build !(js && wasm)

package kv

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("kv_items")

// BoltStore is a Store backed by a single bbolt bucket.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (creating if necessary) the bolt file at path.
// The caller is responsible for calling Close() on the store.
func NewBoltStore(ctx context.Context, path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func openBoltStore(ctx context.Context, path string) (Store, error) {
	store, err := NewBoltStore(ctx, path)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (s *BoltStore) GetItem(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		value, err = (&boltTx{tx: tx}).GetItem(ctx, key)
		return err
	})
	return value, err
}

func (s *BoltStore) SetItem(ctx context.Context, key string, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return (&boltTx{tx: tx}).SetItem(ctx, key, value)
	})
}

func (s *BoltStore) RemoveItem(ctx context.Context, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return (&boltTx{tx: tx}).RemoveItem(ctx, key)
	})
}

func (s *BoltStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		keys, err = (&boltTx{tx: tx}).Keys(ctx)
		return err
	})
	return keys, err
}

func (s *BoltStore) Close(ctx context.Context) error {
	return s.db.Close()
}

func (s *BoltStore) Update(ctx context.Context, fn func(tx Store) error) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return fn(&boltTx{tx: tx})
	})
}

type boltTx struct {
	tx *bolt.Tx
}

func (t *boltTx) GetItem(ctx context.Context, key string) (string, error) {
	v := t.tx.Bucket(boltBucket).Get([]byte(key))
	if v == nil {
		return "", &ErrNotFound{Key: key}
	}
	// v is only valid for the life of the transaction
	return string(v), nil
}

func (t *boltTx) SetItem(ctx context.Context, key string, value string) error {
	if err := t.tx.Bucket(boltBucket).Put([]byte(key), []byte(value)); err != nil {
		return fmt.Errorf("failed to set item: %w", err)
	}
	return nil
}

func (t *boltTx) RemoveItem(ctx context.Context, key string) error {
	if err := t.tx.Bucket(boltBucket).Delete([]byte(key)); err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	return nil
}

func (t *boltTx) Keys(ctx context.Context) ([]string, error) {
	keys := []string{}
	// bolt iterates in byte-sorted order
	err := t.tx.Bucket(boltBucket).ForEach(func(k, _ []byte) error {
		keys = append(keys, string(k))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return keys, nil
}

func (t *boltTx) Close(ctx context.Context) error {
	return nil
}
