package kv

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is a Store backed by a map. It is safe for concurrent use.
type MemoryStore struct {
	lock  sync.RWMutex
	items map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]string),
	}
}

func (m *MemoryStore) GetItem(ctx context.Context, key string) (string, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return mapGet(m.items, key)
}

func (m *MemoryStore) SetItem(ctx context.Context, key string, value string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.items[key] = value
	return nil
}

func (m *MemoryStore) RemoveItem(ctx context.Context, key string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.items, key)
	return nil
}

func (m *MemoryStore) Keys(ctx context.Context) ([]string, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return mapKeys(m.items), nil
}

func (m *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Update runs fn against a copy of the items and swaps it in if fn succeeds.
func (m *MemoryStore) Update(ctx context.Context, fn func(tx Store) error) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	staged := make(map[string]string, len(m.items))
	for k, v := range m.items {
		staged[k] = v
	}
	if err := fn(&memoryTx{items: staged}); err != nil {
		return err
	}
	m.items = staged
	return nil
}

// memoryTx operates on staged items while the owning store's lock is held.
type memoryTx struct {
	items map[string]string
}

func (t *memoryTx) GetItem(ctx context.Context, key string) (string, error) {
	return mapGet(t.items, key)
}

func (t *memoryTx) SetItem(ctx context.Context, key string, value string) error {
	t.items[key] = value
	return nil
}

func (t *memoryTx) RemoveItem(ctx context.Context, key string) error {
	delete(t.items, key)
	return nil
}

func (t *memoryTx) Keys(ctx context.Context) ([]string, error) {
	return mapKeys(t.items), nil
}

func (t *memoryTx) Close(ctx context.Context) error {
	return nil
}

func mapGet(items map[string]string, key string) (string, error) {
	value, ok := items[key]
	if !ok {
		return "", &ErrNotFound{Key: key}
	}
	return value, nil
}

func mapKeys(items map[string]string) []string {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
