// Package tracker persists game sessions to a key/value store.
//
// A Tracker owns two kinds of record: the app index listing known game titles,
// and one game record per title. Records are JSON text, so any kv.Store can
// hold them, including browser localStorage.
//
// A Tracker built without a store behaves as if no host storage exists:
// every operation returns its zero value and a nil error without writing.
package tracker

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/cbodonnell/scorekeeper/pkg/game/types"
	"github.com/cbodonnell/scorekeeper/pkg/kv"
	"github.com/google/uuid"
)

const (
	appKey         = "app"
	gameKeyPrefix  = "game - "
	probeKeyPrefix = "probe-"
)

var (
	// ErrAppIndexMissing is returned when the app index must exist but Init has not run
	ErrAppIndexMissing = errors.New("app index missing, call Init first")
	// ErrMalformedRecord is returned when a stored value cannot be decoded
	ErrMalformedRecord = errors.New("malformed record")
	// ErrInvalidPlayerCount is returned when a game is created with fewer than 1 or more than 8 players
	ErrInvalidPlayerCount = errors.New("number of players must be between 1 and 8")
	// ErrTooManyNames is returned when more than 8 player names are given
	ErrTooManyNames = errors.New("at most 8 player names are supported")
	// ErrGameNotFound is returned by round operations on a title with no game
	ErrGameNotFound = errors.New("game not found")

	ErrInvalidTransition   = types.ErrInvalidTransition
	ErrPlayerCountMismatch = types.ErrPlayerCountMismatch
	ErrNegativeValue       = types.ErrNegativeValue
)

type Tracker struct {
	store  kv.Store
	prefix string
	intn   func(n int) int
}

type Option func(t *Tracker)

// WithPrefix namespaces every key the tracker reads or writes.
// Reset and Export only touch keys under the prefix.
func WithPrefix(prefix string) Option {
	return func(t *Tracker) {
		t.prefix = prefix
	}
}

// WithIntn replaces the random source used to pick the starting player.
// intn must return a value in [0, n).
func WithIntn(intn func(n int) int) Option {
	return func(t *Tracker) {
		t.intn = intn
	}
}

// New returns a Tracker over store. store may be nil.
func New(store kv.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		intn:  rand.IntN,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// available is checked first by every operation.
func (t *Tracker) available() bool {
	return t != nil && t.store != nil
}

func (t *Tracker) appKey() string {
	return t.prefix + appKey
}

func (t *Tracker) gameKeyPrefix() string {
	return t.prefix + gameKeyPrefix
}

// GameKey is the store key holding the record for title.
func (t *Tracker) GameKey(title string) string {
	return t.gameKeyPrefix() + title
}

// owns reports whether key belongs to this tracker's namespace.
// Without a prefix only the app key, game keys and keys written by Exists are claimed.
func (t *Tracker) owns(key string) bool {
	if t.prefix != "" {
		return strings.HasPrefix(key, t.prefix)
	}
	return key == appKey || strings.HasPrefix(key, gameKeyPrefix) || isProbeKey(key)
}

// isProbeKey matches the keys written by Exists: the probe prefix followed by a UUID.
func isProbeKey(key string) bool {
	id, ok := strings.CutPrefix(key, probeKeyPrefix)
	if !ok {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}

func (t *Tracker) ownedKeys(ctx context.Context, s kv.Store) ([]string, error) {
	keys, err := s.Keys(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]string, 0, len(keys))
	for _, k := range keys {
		if t.owns(k) {
			owned = append(owned, k)
		}
	}
	return owned, nil
}
