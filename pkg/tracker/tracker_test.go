package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	mocks "github.com/cbodonnell/scorekeeper/mocks/github.com/cbodonnell/scorekeeper/pkg/kv"
	"github.com/cbodonnell/scorekeeper/pkg/game/types"
	"github.com/cbodonnell/scorekeeper/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTracker(t *testing.T, opts ...Option) (*Tracker, *kv.MemoryStore) {
	store := kv.NewMemoryStore()
	opts = append([]Option{WithIntn(func(n int) int { return n - 1 })}, opts...)
	return New(store, opts...), store
}

func TestTracker_Init_idempotent(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)

	require.NoError(t, tr.Init(ctx))
	require.NoError(t, tr.AddGameTitle(ctx, "X"))
	require.NoError(t, tr.Init(ctx))

	app, err := tr.GetAppData(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, app.Games)
}

func TestTracker_AddGameTitle_keepsDuplicates(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)
	require.NoError(t, tr.Init(ctx))

	require.NoError(t, tr.AddGameTitle(ctx, "X"))
	app, err := tr.GetAppData(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, app.Games)

	require.NoError(t, tr.AddGameTitle(ctx, "X"))
	app, err = tr.GetAppData(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "X"}, app.Games)
}

func TestTracker_AddGameTitle_beforeInit(t *testing.T) {
	ctx := context.Background()
	tr, store := newTestTracker(t)

	err := tr.AddGameTitle(ctx, "X")
	assert.ErrorIs(t, err, ErrAppIndexMissing)

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestTracker_RemoveGameTitle(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)
	require.NoError(t, tr.Init(ctx))
	require.NoError(t, tr.AddGameTitle(ctx, "X"))
	require.NoError(t, tr.AddGameTitle(ctx, "Y"))
	require.NoError(t, tr.AddGameTitle(ctx, "X"))

	require.NoError(t, tr.RemoveGameTitle(ctx, "X"))
	app, err := tr.GetAppData(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Y"}, app.Games)

	require.NoError(t, tr.RemoveGameTitle(ctx, "missing"))
	app, err = tr.GetAppData(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Y"}, app.Games)
}

func TestTracker_RemoveGameTitle_withoutIndex(t *testing.T) {
	ctx := context.Background()
	tr, store := newTestTracker(t)

	require.NoError(t, tr.RemoveGameTitle(ctx, "X"))
	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestTracker_AddGameData(t *testing.T) {
	ctx := context.Background()
	tr, store := newTestTracker(t)
	require.NoError(t, tr.Init(ctx))

	require.NoError(t, tr.AddGameData(ctx, "X", "typeA", 3, "Alice", "Bob", "Cara"))

	raw, err := store.GetItem(ctx, "game - X")
	require.NoError(t, err, "record is stored under the game key")

	record, err := tr.GetGameData(ctx, "X")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, "typeA", record.Type)
	assert.Equal(t, 3, record.NumberOfPlayer)
	assert.Equal(t, 2, record.StartingPlayerIndex)
	for i, want := range []string{"Alice", "Bob", "Cara"} {
		require.NotNil(t, record.PlayerNames[i])
		assert.Equal(t, want, *record.PlayerNames[i])
	}
	for i := 3; i < types.MaxPlayers; i++ {
		assert.Nil(t, record.PlayerNames[i], "slot %d", i)
	}
	assert.Equal(t, 0, record.Round)
	assert.Equal(t, types.StateStartRound, record.State)
	for _, series := range []types.PlayerSeries{record.Game.Guesses, record.Game.SetsWon, record.Game.Points} {
		require.Len(t, series, types.MaxPlayers)
		for i := 0; i < types.MaxPlayers; i++ {
			values, ok := series[types.PlayerKey(i)]
			assert.True(t, ok)
			assert.Empty(t, values)
		}
	}

	var shape map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &shape))
	assert.Equal(t, "start-round", shape["state"])
	assert.Len(t, shape["playerNames"], types.MaxPlayers)
}

func TestTracker_AddGameData_startingPlayerInRange(t *testing.T) {
	ctx := context.Background()
	tr := New(kv.NewMemoryStore())
	require.NoError(t, tr.Init(ctx))

	for i := 0; i < 100; i++ {
		require.NoError(t, tr.AddGameData(ctx, "X", "typeA", 3, "Alice", "Bob", "Cara"))
		record, err := tr.GetGameData(ctx, "X")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, record.StartingPlayerIndex, 0)
		assert.Less(t, record.StartingPlayerIndex, 3)
	}
}

func TestTracker_AddGameData_overwrites(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)
	require.NoError(t, tr.Init(ctx))

	require.NoError(t, tr.AddGameData(ctx, "X", "typeA", 2, "Alice", "Bob"))
	_, err := tr.RecordGuesses(ctx, "X", []int{1, 1})
	require.NoError(t, err)

	require.NoError(t, tr.AddGameData(ctx, "X", "typeB", 4))
	record, err := tr.GetGameData(ctx, "X")
	require.NoError(t, err)
	assert.Equal(t, "typeB", record.Type)
	assert.Equal(t, types.StateStartRound, record.State)
	assert.Nil(t, record.PlayerNames[0])
}

func TestTracker_AddGameData_validation(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name       string
		numPlayers int
		names      []string
		wantErr    error
	}{
		{name: "no players", numPlayers: 0, wantErr: ErrInvalidPlayerCount},
		{name: "too many players", numPlayers: 9, wantErr: ErrInvalidPlayerCount},
		{name: "too many names", numPlayers: 8, names: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}, wantErr: ErrTooManyNames},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, store := newTestTracker(t)
			err := tr.AddGameData(ctx, "X", "typeA", tt.numPlayers, tt.names...)
			assert.ErrorIs(t, err, tt.wantErr)
			ok, err := kv.HasItem(ctx, store, "game - X")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestTracker_RemoveGameData(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)
	require.NoError(t, tr.Init(ctx))
	require.NoError(t, tr.AddGameData(ctx, "X", "typeA", 1, "Alice"))

	require.NoError(t, tr.RemoveGameData(ctx, "X"))
	require.NoError(t, tr.RemoveGameData(ctx, "X"))

	record, err := tr.GetGameData(ctx, "X")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestTracker_GameExists(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(t *testing.T, tr *Tracker)
		want  bool
	}{
		{
			name:  "neither index nor record",
			setup: func(t *testing.T, tr *Tracker) {},
			want:  false,
		},
		{
			name: "index only",
			setup: func(t *testing.T, tr *Tracker) {
				require.NoError(t, tr.Init(ctx))
				require.NoError(t, tr.AddGameTitle(ctx, "Y"))
			},
			want: false,
		},
		{
			name: "record only",
			setup: func(t *testing.T, tr *Tracker) {
				require.NoError(t, tr.AddGameData(ctx, "Y", "typeA", 2))
			},
			want: false,
		},
		{
			name: "record and index",
			setup: func(t *testing.T, tr *Tracker) {
				require.NoError(t, tr.Init(ctx))
				require.NoError(t, tr.AddGameData(ctx, "Y", "typeA", 2))
			},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, _ := newTestTracker(t)
			tt.setup(t, tr)

			got, err := tr.GameExists(ctx, "Y")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			record, err := tr.GetGameData(ctx, "Y")
			require.NoError(t, err)
			assert.Equal(t, tt.want, record != nil)
		})
	}
}

func TestTracker_GetAppData_missing(t *testing.T) {
	tr, _ := newTestTracker(t)
	app, err := tr.GetAppData(context.Background())
	require.NoError(t, err)
	assert.Nil(t, app)
}

func TestTracker_malformedRecords(t *testing.T) {
	ctx := context.Background()
	tr, store := newTestTracker(t)
	require.NoError(t, store.SetItem(ctx, "app", "{not json"))
	require.NoError(t, store.SetItem(ctx, "game - X", "{not json"))

	_, err := tr.GetAppData(ctx)
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = tr.GetGameData(ctx, "X")
	assert.ErrorIs(t, err, ErrMalformedRecord)

	err = tr.Init(ctx)
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestTracker_malformedGameFields(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{name: "unknown state", record: `{"numberOfPlayer":2,"startingPlayerIndex":0,"state":"dealing"}`},
		{name: "negative players", record: `{"numberOfPlayer":-1,"startingPlayerIndex":0,"state":"start-round"}`},
		{name: "too many players", record: `{"numberOfPlayer":9,"startingPlayerIndex":0,"state":"start-round"}`},
		{name: "starting player too high", record: `{"numberOfPlayer":2,"startingPlayerIndex":2,"state":"start-round"}`},
		{name: "negative starting player", record: `{"numberOfPlayer":2,"startingPlayerIndex":-1,"state":"start-round"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			tr, store := newTestTracker(t)
			require.NoError(t, tr.Init(ctx))
			require.NoError(t, store.SetItem(ctx, "game - X", tt.record))

			_, err := tr.GetGameData(ctx, "X")
			assert.ErrorIs(t, err, ErrMalformedRecord)

			assert.NotPanics(t, func() {
				_, err = tr.Standings(ctx, "X")
			})
			assert.ErrorIs(t, err, ErrMalformedRecord)

			_, err = tr.RecordGuesses(ctx, "X", []int{1, 1})
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestTracker_Reset(t *testing.T) {
	ctx := context.Background()
	tr, store := newTestTracker(t)
	require.NoError(t, store.SetItem(ctx, "theme", "dark"))
	require.NoError(t, store.SetItem(ctx, "probe-settings", "other app"))
	require.NoError(t, store.SetItem(ctx, "probe-6ba7b810-9dad-11d1-80b4-00c04fd430c8", "testValue"))
	_, err := tr.CreateGame(ctx, "X", "typeA", 2, "Alice", "Bob")
	require.NoError(t, err)

	require.NoError(t, tr.Reset(ctx))

	app, err := tr.GetAppData(ctx)
	require.NoError(t, err)
	assert.Equal(t, &types.AppIndex{Games: []string{}}, app)

	record, err := tr.GetGameData(ctx, "X")
	require.NoError(t, err)
	assert.Nil(t, record)
	ok, err := kv.HasItem(ctx, store, "game - X")
	require.NoError(t, err)
	assert.False(t, ok)

	theme, err := store.GetItem(ctx, "theme")
	require.NoError(t, err, "keys outside the namespace survive a reset")
	assert.Equal(t, "dark", theme)

	other, err := store.GetItem(ctx, "probe-settings")
	require.NoError(t, err, "probe-like keys that are not ours survive a reset")
	assert.Equal(t, "other app", other)

	ok, err = kv.HasItem(ctx, store, "probe-6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.False(t, ok, "leftover store checks are cleared")
}

func TestTracker_Reset_withPrefix(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	mine := New(store, WithPrefix("scorekeeper:"))
	theirs := New(store, WithPrefix("other:"))

	_, err := mine.CreateGame(ctx, "X", "typeA", 1, "Alice")
	require.NoError(t, err)
	_, err = theirs.CreateGame(ctx, "X", "typeA", 1, "Bob")
	require.NoError(t, err)

	_, err = store.GetItem(ctx, "scorekeeper:game - X")
	require.NoError(t, err)

	require.NoError(t, mine.Reset(ctx))

	record, err := mine.GetGameData(ctx, "X")
	require.NoError(t, err)
	assert.Nil(t, record)

	record, err = theirs.GetGameData(ctx, "X")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Bob", record.PlayerName(0))
}

func TestTracker_Exists(t *testing.T) {
	ctx := context.Background()
	tr, store := newTestTracker(t)
	assert.True(t, tr.Exists(ctx))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys, "probe key is removed")
}

func TestTracker_Exists_rejectedWrite(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore(t)
	store.EXPECT().SetItem(ctx, mock.AnythingOfType("string"), "testValue").Return(errors.New("quota exceeded")).Once()

	assert.False(t, New(store).Exists(ctx))
}

func TestTracker_Exists_rejectedDelete(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStore(t)
	store.EXPECT().SetItem(ctx, mock.AnythingOfType("string"), "testValue").Return(nil).Once()
	store.EXPECT().RemoveItem(ctx, mock.AnythingOfType("string")).Return(errors.New("denied")).Once()

	assert.False(t, New(store).Exists(ctx))
}

func TestTracker_storeErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")
	store := mocks.NewStore(t)
	store.EXPECT().GetItem(ctx, "app").Return("", boom)

	tr := New(store)

	err := tr.Init(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = tr.GetAppData(ctx)
	assert.ErrorIs(t, err, boom)

	err = tr.AddGameTitle(ctx, "X")
	assert.ErrorIs(t, err, boom)
}

func TestTracker_withoutStore(t *testing.T) {
	ctx := context.Background()
	tr := New(nil)

	assert.False(t, tr.Exists(ctx))
	assert.NoError(t, tr.Init(ctx))
	assert.NoError(t, tr.Reset(ctx))
	assert.NoError(t, tr.AddGameTitle(ctx, "X"))
	assert.NoError(t, tr.AddGameData(ctx, "X", "typeA", 99))
	assert.NoError(t, tr.RemoveGameTitle(ctx, "X"))
	assert.NoError(t, tr.RemoveGameData(ctx, "X"))

	exists, err := tr.GameExists(ctx, "X")
	assert.NoError(t, err)
	assert.False(t, exists)

	record, err := tr.GetGameData(ctx, "X")
	assert.NoError(t, err)
	assert.Nil(t, record)

	app, err := tr.GetAppData(ctx)
	assert.NoError(t, err)
	assert.Nil(t, app)

	games, err := tr.ListGames(ctx)
	assert.NoError(t, err)
	assert.Nil(t, games)

	created, err := tr.CreateGame(ctx, "X", "typeA", 2)
	assert.NoError(t, err)
	assert.Nil(t, created)
	assert.NoError(t, tr.DeleteGame(ctx, "X"))

	added, removed, err := tr.Reconcile(ctx)
	assert.NoError(t, err)
	assert.Nil(t, added)
	assert.Nil(t, removed)

	record, err = tr.RecordGuesses(ctx, "X", []int{1})
	assert.NoError(t, err)
	assert.Nil(t, record)

	standings, err := tr.Standings(ctx, "X")
	assert.NoError(t, err)
	assert.Nil(t, standings)
}
