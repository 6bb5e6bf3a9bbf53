package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/cbodonnell/scorekeeper/pkg/game/types"
	"github.com/cbodonnell/scorekeeper/pkg/log"
	"github.com/cbodonnell/scorekeeper/pkg/tracker"
	"github.com/gorilla/mux"
)

// GameTracker is the subset of tracker.Tracker the handlers need.
type GameTracker interface {
	Reset(ctx context.Context) error
	GetAppData(ctx context.Context) (*types.AppIndex, error)
	ListGames(ctx context.Context) ([]string, error)
	GameExists(ctx context.Context, title string) (bool, error)
	GetGameData(ctx context.Context, title string) (*types.GameRecord, error)
	CreateGame(ctx context.Context, title string, gameType string, numPlayers int, names ...string) (*types.GameRecord, error)
	DeleteGame(ctx context.Context, title string) error
	RecordGuesses(ctx context.Context, title string, guesses []int) (*types.GameRecord, error)
	RecordSetsWon(ctx context.Context, title string, setsWon []int) (*types.GameRecord, error)
	NextRound(ctx context.Context, title string) (*types.GameRecord, error)
	Standings(ctx context.Context, title string) ([]tracker.Standing, error)
}

type CreateGameRequest struct {
	Title          string   `json:"title"`
	Type           string   `json:"type"`
	NumberOfPlayer int      `json:"numberOfPlayer"`
	PlayerNames    []string `json:"playerNames"`
}

type RoundValuesRequest struct {
	Values []int `json:"values"`
}

func HandleGetApp(t GameTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app, err := t.GetAppData(r.Context())
		if err != nil {
			writeError(w, "failed to get app data", err)
			return
		}
		if app == nil {
			http.Error(w, "App data not initialized", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, app)
	}
}

func HandleReset(t GameTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := t.Reset(r.Context()); err != nil {
			writeError(w, "failed to reset", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func HandleListGames(t GameTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := t.ListGames(r.Context())
		if err != nil {
			writeError(w, "failed to list games", err)
			return
		}
		if games == nil {
			games = []string{}
		}
		writeJSON(w, http.StatusOK, games)
	}
}

func HandleCreateGame(t GameTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := CreateGameRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Title == "" {
			http.Error(w, "Title is required", http.StatusBadRequest)
			return
		}

		record, err := t.CreateGame(r.Context(), req.Title, req.Type, req.NumberOfPlayer, req.PlayerNames...)
		if err != nil {
			writeError(w, "failed to create game", err)
			return
		}
		writeJSON(w, http.StatusCreated, record)
	}
}

func HandleGetGame(t GameTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title, ok := gameTitle(w, r)
		if !ok {
			return
		}
		record, err := t.GetGameData(r.Context(), title)
		if err != nil {
			writeError(w, "failed to get game", err)
			return
		}
		if record == nil {
			http.Error(w, "Game not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

func HandleDeleteGame(t GameTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title, ok := gameTitle(w, r)
		if !ok {
			return
		}
		exists, err := t.GameExists(r.Context(), title)
		if err != nil {
			writeError(w, "failed to check game", err)
			return
		}
		if !exists {
			http.Error(w, "Game not found", http.StatusNotFound)
			return
		}
		if err := t.DeleteGame(r.Context(), title); err != nil {
			writeError(w, "failed to delete game", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func HandleRecordGuesses(t GameTracker) http.HandlerFunc {
	return handleRoundValues(t.RecordGuesses, "failed to record guesses")
}

func HandleRecordSetsWon(t GameTracker) http.HandlerFunc {
	return handleRoundValues(t.RecordSetsWon, "failed to record sets won")
}

func handleRoundValues(record func(ctx context.Context, title string, values []int) (*types.GameRecord, error), msg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := RoundValuesRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		title, ok := gameTitle(w, r)
		if !ok {
			return
		}
		game, err := record(r.Context(), title, req.Values)
		if err != nil {
			writeError(w, msg, err)
			return
		}
		writeJSON(w, http.StatusOK, game)
	}
}

func HandleNextRound(t GameTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title, ok := gameTitle(w, r)
		if !ok {
			return
		}
		game, err := t.NextRound(r.Context(), title)
		if err != nil {
			writeError(w, "failed to start next round", err)
			return
		}
		writeJSON(w, http.StatusOK, game)
	}
}

func HandleStandings(t GameTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title, ok := gameTitle(w, r)
		if !ok {
			return
		}
		standings, err := t.Standings(r.Context(), title)
		if err != nil {
			writeError(w, "failed to get standings", err)
			return
		}
		writeJSON(w, http.StatusOK, standings)
	}
}

// gameTitle returns the unescaped {title} route variable.
// The router matches on the encoded path so that titles may contain "/".
func gameTitle(w http.ResponseWriter, r *http.Request) (string, bool) {
	title, err := url.PathUnescape(mux.Vars(r)["title"])
	if err != nil {
		http.Error(w, "Invalid game title", http.StatusBadRequest)
		return "", false
	}
	return title, true
}

// writeError maps tracker errors onto HTTP status codes.
func writeError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, tracker.ErrGameNotFound):
		http.Error(w, "Game not found", http.StatusNotFound)
	case errors.Is(err, tracker.ErrInvalidPlayerCount),
		errors.Is(err, tracker.ErrTooManyNames),
		errors.Is(err, tracker.ErrInvalidTransition),
		errors.Is(err, tracker.ErrPlayerCountMismatch),
		errors.Is(err, tracker.ErrNegativeValue):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Error("%s: %v", msg, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
