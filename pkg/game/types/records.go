package types

import (
	"fmt"
)

const (
	// MaxPlayers is the number of player slots every game record carries
	MaxPlayers = 8
	// MinPlayers is the smallest supported table
	MinPlayers = 1
)

// AppIndex is the registry of known game titles, stored under the "app" key.
type AppIndex struct {
	// Games lists titles in insertion order. Duplicates are kept.
	Games []string `json:"games"`
}

func NewAppIndex() *AppIndex {
	return &AppIndex{
		Games: []string{},
	}
}

// Contains reports whether title is listed at least once.
func (a *AppIndex) Contains(title string) bool {
	for _, g := range a.Games {
		if g == title {
			return true
		}
	}
	return false
}

// Add appends title without checking for duplicates.
func (a *AppIndex) Add(title string) {
	a.Games = append(a.Games, title)
}

// Remove drops every occurrence of title.
func (a *AppIndex) Remove(title string) {
	games := make([]string, 0, len(a.Games))
	for _, g := range a.Games {
		if g != title {
			games = append(games, g)
		}
	}
	a.Games = games
}

// PlayerKey returns the per-player map key for a zero based slot, e.g. "player1".
func PlayerKey(slot int) string {
	return fmt.Sprintf("player%d", slot+1)
}

// PlayerSeries maps a player key to one value per completed round.
type PlayerSeries map[string][]int

func newPlayerSeries() PlayerSeries {
	series := make(PlayerSeries, MaxPlayers)
	for i := 0; i < MaxPlayers; i++ {
		series[PlayerKey(i)] = []int{}
	}
	return series
}

// Scoresheet holds the per-round values for every player slot.
type Scoresheet struct {
	Guesses PlayerSeries `json:"guesses"`
	SetsWon PlayerSeries `json:"setsWon"`
	Points  PlayerSeries `json:"points"`
}

// GameRecord is the persisted state of one game.
type GameRecord struct {
	Type                string              `json:"type"`
	NumberOfPlayer      int                 `json:"numberOfPlayer"`
	StartingPlayerIndex int                 `json:"startingPlayerIndex"`
	PlayerNames         [MaxPlayers]*string `json:"playerNames"`
	Round               int                 `json:"round"`
	State               RoundState          `json:"state"`
	Game                Scoresheet          `json:"game"`
}

// NewGameRecord returns a record in the start-round state with empty score series
// for all eight slots. Names fill slots in order; missing slots stay nil.
func NewGameRecord(gameType string, numPlayers int, startingPlayerIndex int, names []string) *GameRecord {
	record := &GameRecord{
		Type:                gameType,
		NumberOfPlayer:      numPlayers,
		StartingPlayerIndex: startingPlayerIndex,
		Round:               0,
		State:               StateStartRound,
		Game: Scoresheet{
			Guesses: newPlayerSeries(),
			SetsWon: newPlayerSeries(),
			Points:  newPlayerSeries(),
		},
	}
	for i, name := range names {
		if i >= MaxPlayers {
			break
		}
		name := name
		record.PlayerNames[i] = &name
	}
	return record
}

// PlayerName returns the name in slot, or "" when the slot is unset.
func (g *GameRecord) PlayerName(slot int) string {
	if slot < 0 || slot >= MaxPlayers || g.PlayerNames[slot] == nil {
		return ""
	}
	return *g.PlayerNames[slot]
}

// Dealer is the slot that starts the current round.
func (g *GameRecord) Dealer() int {
	if g.NumberOfPlayer <= 0 {
		return 0
	}
	return (g.StartingPlayerIndex + g.Round) % g.NumberOfPlayer
}

// Totals sums the points of each active player, in slot order.
func (g *GameRecord) Totals() []int {
	totals := make([]int, g.NumberOfPlayer)
	for i := range totals {
		for _, p := range g.Game.Points[PlayerKey(i)] {
			totals[i] += p
		}
	}
	return totals
}
