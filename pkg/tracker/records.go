package tracker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/scorekeeper/pkg/game/types"
	"github.com/cbodonnell/scorekeeper/pkg/kv"
)

// readAppIndex returns nil without error when the index is absent.
func (t *Tracker) readAppIndex(ctx context.Context, s kv.Store) (*types.AppIndex, error) {
	raw, err := s.GetItem(ctx, t.appKey())
	if err != nil {
		if kv.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read app index: %w", err)
	}
	index := &types.AppIndex{}
	if err := json.Unmarshal([]byte(raw), index); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, t.appKey(), err)
	}
	if index.Games == nil {
		index.Games = []string{}
	}
	return index, nil
}

func (t *Tracker) writeAppIndex(ctx context.Context, s kv.Store, index *types.AppIndex) error {
	b, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to encode app index: %w", err)
	}
	if err := s.SetItem(ctx, t.appKey(), string(b)); err != nil {
		return fmt.Errorf("failed to write app index: %w", err)
	}
	return nil
}

// readGameRecord returns nil without error when no record is stored for title.
func (t *Tracker) readGameRecord(ctx context.Context, s kv.Store, title string) (*types.GameRecord, error) {
	key := t.GameKey(title)
	raw, err := s.GetItem(ctx, key)
	if err != nil {
		if kv.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read game %q: %w", title, err)
	}
	record := &types.GameRecord{}
	if err := json.Unmarshal([]byte(raw), record); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, key, err)
	}
	if !record.State.Valid() {
		return nil, fmt.Errorf("%w: %s: unknown state %q", ErrMalformedRecord, key, record.State)
	}
	if record.NumberOfPlayer < types.MinPlayers || record.NumberOfPlayer > types.MaxPlayers {
		return nil, fmt.Errorf("%w: %s: %d players", ErrMalformedRecord, key, record.NumberOfPlayer)
	}
	if record.StartingPlayerIndex < 0 || record.StartingPlayerIndex >= record.NumberOfPlayer {
		return nil, fmt.Errorf("%w: %s: starting player %d out of range", ErrMalformedRecord, key, record.StartingPlayerIndex)
	}
	return record, nil
}

func (t *Tracker) writeGameRecord(ctx context.Context, s kv.Store, title string, record *types.GameRecord) error {
	b, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode game %q: %w", title, err)
	}
	if err := s.SetItem(ctx, t.GameKey(title), string(b)); err != nil {
		return fmt.Errorf("failed to write game %q: %w", title, err)
	}
	return nil
}

// gameExists is true when both the record for title and the app index are present.
func (t *Tracker) gameExists(ctx context.Context, s kv.Store, title string) (bool, error) {
	hasRecord, err := kv.HasItem(ctx, s, t.GameKey(title))
	if err != nil {
		return false, fmt.Errorf("failed to check game %q: %w", title, err)
	}
	if !hasRecord {
		return false, nil
	}
	hasIndex, err := kv.HasItem(ctx, s, t.appKey())
	if err != nil {
		return false, fmt.Errorf("failed to check app index: %w", err)
	}
	return hasIndex, nil
}

// initIndex creates an empty app index when none exists and returns the current index.
func (t *Tracker) initIndex(ctx context.Context, s kv.Store) (*types.AppIndex, error) {
	index, err := t.readAppIndex(ctx, s)
	if err != nil {
		return nil, err
	}
	if index != nil {
		return index, nil
	}
	index = types.NewAppIndex()
	if err := t.writeAppIndex(ctx, s, index); err != nil {
		return nil, err
	}
	return index, nil
}
