package tracker

import (
	"context"
	"fmt"

	"github.com/cbodonnell/scorekeeper/pkg/game/types"
	"github.com/cbodonnell/scorekeeper/pkg/kv"
	"github.com/cbodonnell/scorekeeper/pkg/log"
)

// Standing is one player's running total.
type Standing struct {
	Slot   int    `json:"slot"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// RecordGuesses stores one guess per player for the current round.
func (t *Tracker) RecordGuesses(ctx context.Context, title string, guesses []int) (*types.GameRecord, error) {
	return t.updateGame(ctx, title, func(record *types.GameRecord) error {
		return record.RecordGuesses(guesses)
	})
}

// RecordSetsWon stores the sets each player won this round and scores it
// with the scorer registered for the game's type.
func (t *Tracker) RecordSetsWon(ctx context.Context, title string, setsWon []int) (*types.GameRecord, error) {
	return t.updateGame(ctx, title, func(record *types.GameRecord) error {
		return record.RecordSetsWon(setsWon, types.ScorerFor(record.Type))
	})
}

// NextRound advances a scored game to the next round.
func (t *Tracker) NextRound(ctx context.Context, title string) (*types.GameRecord, error) {
	return t.updateGame(ctx, title, func(record *types.GameRecord) error {
		return record.NextRound()
	})
}

// Standings returns every active player's total points in slot order.
func (t *Tracker) Standings(ctx context.Context, title string) ([]Standing, error) {
	record, err := t.GetGameData(ctx, title)
	if err != nil {
		return nil, err
	}
	if record == nil {
		if !t.available() {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrGameNotFound, title)
	}
	totals := record.Totals()
	standings := make([]Standing, len(totals))
	for i, points := range totals {
		standings[i] = Standing{
			Slot:   i,
			Name:   record.PlayerName(i),
			Points: points,
		}
	}
	return standings, nil
}

// updateGame loads the record for title, applies fn and writes it back in one transaction.
func (t *Tracker) updateGame(ctx context.Context, title string, fn func(record *types.GameRecord) error) (*types.GameRecord, error) {
	if !t.available() {
		return nil, nil
	}
	var record *types.GameRecord
	err := kv.Update(ctx, t.store, func(tx kv.Store) error {
		exists, err := t.gameExists(ctx, tx, title)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %q", ErrGameNotFound, title)
		}
		record, err = t.readGameRecord(ctx, tx, title)
		if err != nil {
			return err
		}
		if record == nil {
			return fmt.Errorf("%w: %q", ErrGameNotFound, title)
		}
		if err := fn(record); err != nil {
			return err
		}
		return t.writeGameRecord(ctx, tx, title, record)
	})
	if err != nil {
		return nil, err
	}
	log.Debug("Game %q is in round %d, state %s", title, record.Round, record.State)
	return record, nil
}
