package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/cbodonnell/scorekeeper/pkg/game/types"
	"github.com/cbodonnell/scorekeeper/pkg/kv"
	"github.com/cbodonnell/scorekeeper/pkg/log"
)

// AddGameData stores a fresh record for title, overwriting any existing one.
// The starting player is picked at random from [0, numPlayers). names fill the
// player slots in order and the remaining slots are left empty.
func (t *Tracker) AddGameData(ctx context.Context, title string, gameType string, numPlayers int, names ...string) error {
	if !t.available() {
		return nil
	}
	record, err := t.newRecord(gameType, numPlayers, names)
	if err != nil {
		return err
	}
	log.Debug("Adding game data for %q with %d players", title, numPlayers)
	return t.writeGameRecord(ctx, t.store, title, record)
}

func (t *Tracker) newRecord(gameType string, numPlayers int, names []string) (*types.GameRecord, error) {
	if numPlayers < types.MinPlayers || numPlayers > types.MaxPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, numPlayers)
	}
	if len(names) > types.MaxPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyNames, len(names))
	}
	return types.NewGameRecord(gameType, numPlayers, t.intn(numPlayers), names), nil
}

// RemoveGameData deletes the record for title. A missing record is a no-op.
func (t *Tracker) RemoveGameData(ctx context.Context, title string) error {
	if !t.available() {
		return nil
	}
	if err := t.store.RemoveItem(ctx, t.GameKey(title)); err != nil {
		return fmt.Errorf("failed to remove game %q: %w", title, err)
	}
	log.Debug("Removed game data for %q", title)
	return nil
}

// GameExists reports whether a record is stored for title and the app index exists.
func (t *Tracker) GameExists(ctx context.Context, title string) (bool, error) {
	if !t.available() {
		return false, nil
	}
	return t.gameExists(ctx, t.store, title)
}

// GetGameData returns the record for title, or nil when GameExists is false.
func (t *Tracker) GetGameData(ctx context.Context, title string) (*types.GameRecord, error) {
	if !t.available() {
		return nil, nil
	}
	exists, err := t.gameExists(ctx, t.store, title)
	if err != nil || !exists {
		return nil, err
	}
	return t.readGameRecord(ctx, t.store, title)
}

// CreateGame stores a new record for title and lists it in the app index,
// creating the index if needed. Both writes happen in one transaction when the
// store supports it. The title is only appended if it is not already listed.
func (t *Tracker) CreateGame(ctx context.Context, title string, gameType string, numPlayers int, names ...string) (*types.GameRecord, error) {
	if !t.available() {
		return nil, nil
	}
	record, err := t.newRecord(gameType, numPlayers, names)
	if err != nil {
		return nil, err
	}
	err = kv.Update(ctx, t.store, func(tx kv.Store) error {
		index, err := t.initIndex(ctx, tx)
		if err != nil {
			return err
		}
		if err := t.writeGameRecord(ctx, tx, title, record); err != nil {
			return err
		}
		if index.Contains(title) {
			return nil
		}
		index.Add(title)
		return t.writeAppIndex(ctx, tx, index)
	})
	if err != nil {
		return nil, err
	}
	log.Info("Created game %q (%s, %d players)", title, gameType, numPlayers)
	return record, nil
}

// DeleteGame removes both the record for title and its app index entry.
func (t *Tracker) DeleteGame(ctx context.Context, title string) error {
	if !t.available() {
		return nil
	}
	err := kv.Update(ctx, t.store, func(tx kv.Store) error {
		if err := tx.RemoveItem(ctx, t.GameKey(title)); err != nil {
			return fmt.Errorf("failed to remove game %q: %w", title, err)
		}
		return t.removeTitle(ctx, tx, title)
	})
	if err != nil {
		return err
	}
	log.Info("Deleted game %q", title)
	return nil
}

// Reconcile brings the app index back in line with the stored game records.
// Titles without a record are dropped and records missing from the index are
// appended in key order. The index is created if it does not exist.
func (t *Tracker) Reconcile(ctx context.Context) (added []string, removed []string, err error) {
	if !t.available() {
		return nil, nil, nil
	}
	err = kv.Update(ctx, t.store, func(tx kv.Store) error {
		added, removed = nil, nil

		index, err := t.initIndex(ctx, tx)
		if err != nil {
			return err
		}
		keys, err := kv.KeysWithPrefix(ctx, tx, t.gameKeyPrefix())
		if err != nil {
			return fmt.Errorf("failed to list games: %w", err)
		}
		stored := make(map[string]bool, len(keys))
		for _, k := range keys {
			stored[strings.TrimPrefix(k, t.gameKeyPrefix())] = true
		}

		games := make([]string, 0, len(index.Games))
		for _, title := range index.Games {
			if stored[title] {
				games = append(games, title)
			} else if !contains(removed, title) {
				removed = append(removed, title)
			}
		}
		for _, k := range keys {
			title := strings.TrimPrefix(k, t.gameKeyPrefix())
			if !contains(games, title) {
				games = append(games, title)
				added = append(added, title)
			}
		}

		if len(added) == 0 && len(removed) == 0 {
			return nil
		}
		index.Games = games
		return t.writeAppIndex(ctx, tx, index)
	})
	if err != nil {
		return nil, nil, err
	}
	if len(added) > 0 || len(removed) > 0 {
		log.Info("Reconciled app index: added %v, removed %v", added, removed)
	}
	return added, removed, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
