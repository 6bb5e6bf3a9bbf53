package types

import (
	"errors"
	"fmt"
)

// RoundState is the phase a game is in within the current round.
type RoundState string

const (
	StateStartRound RoundState = "start-round"
	StateGuesses    RoundState = "guesses"
	StateSetsWon    RoundState = "sets-won"
)

var (
	// ErrInvalidTransition is returned when a round step is applied in the wrong state
	ErrInvalidTransition = errors.New("invalid round transition")
	// ErrPlayerCountMismatch is returned when a round step has the wrong number of values
	ErrPlayerCountMismatch = errors.New("value count does not match number of players")
	// ErrNegativeValue is returned when a guess or sets-won value is below zero
	ErrNegativeValue = errors.New("values must not be negative")
)

func (s RoundState) Valid() bool {
	switch s {
	case StateStartRound, StateGuesses, StateSetsWon:
		return true
	default:
		return false
	}
}

// RecordGuesses appends one guess per active player and moves start-round to guesses.
func (g *GameRecord) RecordGuesses(guesses []int) error {
	if err := g.checkStep(StateStartRound, guesses); err != nil {
		return err
	}
	for i, v := range guesses {
		key := PlayerKey(i)
		g.Game.Guesses[key] = append(g.Game.Guesses[key], v)
	}
	g.State = StateGuesses
	return nil
}

// RecordSetsWon appends one sets-won value per active player, scores the round
// with scorer and moves guesses to sets-won.
func (g *GameRecord) RecordSetsWon(setsWon []int, scorer Scorer) error {
	if err := g.checkStep(StateGuesses, setsWon); err != nil {
		return err
	}
	for i := range setsWon {
		if len(g.Game.Guesses[PlayerKey(i)]) == 0 {
			return fmt.Errorf("%w: %s has no guess for this round", ErrInvalidTransition, PlayerKey(i))
		}
	}
	for i, won := range setsWon {
		key := PlayerKey(i)
		guesses := g.Game.Guesses[key]
		guess := guesses[len(guesses)-1]
		g.Game.SetsWon[key] = append(g.Game.SetsWon[key], won)
		g.Game.Points[key] = append(g.Game.Points[key], scorer.Score(guess, won))
	}
	g.State = StateSetsWon
	return nil
}

// NextRound closes a scored round and moves sets-won back to start-round.
func (g *GameRecord) NextRound() error {
	if g.State != StateSetsWon {
		return fmt.Errorf("%w: cannot start next round from %s", ErrInvalidTransition, g.State)
	}
	g.Round++
	g.State = StateStartRound
	return nil
}

func (g *GameRecord) checkStep(want RoundState, values []int) error {
	if g.State != want {
		return fmt.Errorf("%w: expected %s, game is in %s", ErrInvalidTransition, want, g.State)
	}
	if len(values) != g.NumberOfPlayer {
		return fmt.Errorf("%w: got %d, want %d", ErrPlayerCountMismatch, len(values), g.NumberOfPlayer)
	}
	for _, v := range values {
		if v < 0 {
			return ErrNegativeValue
		}
	}
	g.ensureSeries()
	return nil
}

// ensureSeries fills in score maps that a hand edited record may be missing.
func (g *GameRecord) ensureSeries() {
	if g.Game.Guesses == nil {
		g.Game.Guesses = newPlayerSeries()
	}
	if g.Game.SetsWon == nil {
		g.Game.SetsWon = newPlayerSeries()
	}
	if g.Game.Points == nil {
		g.Game.Points = newPlayerSeries()
	}
}
