// Package kv provides the string key/value stores that game state is
// persisted to. Every backend stores values as opaque text under flat keys,
// matching the shape of browser localStorage.
package kv

import (
	"context"
	"sort"
	"strings"
)

// Store is a flat, text valued key/value namespace.
type Store interface {
	// GetItem returns the value stored under key.
	// It returns an ErrNotFound when no value exists.
	GetItem(ctx context.Context, key string) (string, error)
	// SetItem stores value under key, overwriting any previous value.
	SetItem(ctx context.Context, key string, value string) error
	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error
	// Keys lists every key in the store in lexical order.
	Keys(ctx context.Context) ([]string, error)
	// Close releases any resources held by the store.
	Close(ctx context.Context) error
}

// Transactor is implemented by stores that can apply several writes atomically.
// The Store passed to fn is only valid for the duration of the call.
// If fn returns an error, none of its writes are applied.
type Transactor interface {
	Update(ctx context.Context, fn func(tx Store) error) error
}

// HasItem reports whether key is present in s.
func HasItem(ctx context.Context, s Store, key string) (bool, error) {
	if _, err := s.GetItem(ctx, key); err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// KeysWithPrefix lists the keys of s that start with prefix, in lexical order.
func KeysWithPrefix(ctx context.Context, s Store, prefix string) ([]string, error) {
	keys, err := s.Keys(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.HasPrefix(key, prefix) {
			matched = append(matched, key)
		}
	}
	sort.Strings(matched)
	return matched, nil
}

// Update runs fn inside a transaction when s supports one,
// and directly against s otherwise.
func Update(ctx context.Context, s Store, fn func(tx Store) error) error {
	if t, ok := s.(Transactor); ok {
		return t.Update(ctx, fn)
	}
	return fn(s)
}
