package tracker

import (
	"context"
	"fmt"

	"github.com/cbodonnell/scorekeeper/pkg/game/types"
	"github.com/cbodonnell/scorekeeper/pkg/kv"
	"github.com/cbodonnell/scorekeeper/pkg/log"
	"github.com/google/uuid"
)

// Exists probes the store with a throwaway write and delete.
// It reports false when there is no store or the store rejects either call.
func (t *Tracker) Exists(ctx context.Context) bool {
	if !t.available() {
		return false
	}
	probeKey := t.prefix + probeKeyPrefix + uuid.NewString()
	if err := t.store.SetItem(ctx, probeKey, "testValue"); err != nil {
		log.Debug("Store probe write failed: %v", err)
		return false
	}
	if err := t.store.RemoveItem(ctx, probeKey); err != nil {
		log.Debug("Store probe delete failed: %v", err)
		return false
	}
	return true
}

// Init creates an empty app index if none exists. It is idempotent.
func (t *Tracker) Init(ctx context.Context) error {
	if !t.available() {
		log.Trace("Init skipped: no store")
		return nil
	}
	_, err := t.initIndex(ctx, t.store)
	return err
}

// Reset deletes every key the tracker owns and then runs Init.
// Keys outside the tracker's namespace are left alone.
func (t *Tracker) Reset(ctx context.Context) error {
	if !t.available() {
		log.Trace("Reset skipped: no store")
		return nil
	}
	return kv.Update(ctx, t.store, func(tx kv.Store) error {
		keys, err := t.ownedKeys(ctx, tx)
		if err != nil {
			return fmt.Errorf("failed to list keys: %w", err)
		}
		for _, k := range keys {
			if err := tx.RemoveItem(ctx, k); err != nil {
				return fmt.Errorf("failed to remove %q: %w", k, err)
			}
		}
		log.Debug("Reset removed %d keys", len(keys))
		_, err = t.initIndex(ctx, tx)
		return err
	})
}

// AddGameTitle appends title to the app index. Duplicates are not filtered.
// It returns ErrAppIndexMissing when Init has not run.
func (t *Tracker) AddGameTitle(ctx context.Context, title string) error {
	if !t.available() {
		return nil
	}
	return kv.Update(ctx, t.store, func(tx kv.Store) error {
		index, err := t.readAppIndex(ctx, tx)
		if err != nil {
			return err
		}
		if index == nil {
			return ErrAppIndexMissing
		}
		index.Add(title)
		log.Debug("Adding game title %q", title)
		return t.writeAppIndex(ctx, tx, index)
	})
}

// RemoveGameTitle removes every occurrence of title from the app index.
// A missing title or a missing index is a no-op.
func (t *Tracker) RemoveGameTitle(ctx context.Context, title string) error {
	if !t.available() {
		return nil
	}
	return kv.Update(ctx, t.store, func(tx kv.Store) error {
		return t.removeTitle(ctx, tx, title)
	})
}

func (t *Tracker) removeTitle(ctx context.Context, s kv.Store, title string) error {
	index, err := t.readAppIndex(ctx, s)
	if err != nil {
		return err
	}
	if index == nil || !index.Contains(title) {
		return nil
	}
	index.Remove(title)
	log.Debug("Removing game title %q", title)
	return t.writeAppIndex(ctx, s, index)
}

// GetAppData returns the app index, or nil when it has not been created.
func (t *Tracker) GetAppData(ctx context.Context) (*types.AppIndex, error) {
	if !t.available() {
		return nil, nil
	}
	return t.readAppIndex(ctx, t.store)
}

// ListGames returns the titles in the app index, or nil when it has not been created.
func (t *Tracker) ListGames(ctx context.Context) ([]string, error) {
	index, err := t.GetAppData(ctx)
	if err != nil || index == nil {
		return nil, err
	}
	return index.Games, nil
}
