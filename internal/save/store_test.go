package save

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
)

func storeContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, Key("p1"))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, Key("p1"), "first"))
	require.NoError(t, store.Set(ctx, Key("p1"), "second"))
	require.NoError(t, store.Set(ctx, Key("p2"), "other"))

	v, ok, err := store.Get(ctx, Key("p1"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", v)

	v, _, err = store.Get(ctx, Key("p2"))
	require.NoError(t, err)
	assert.Equal(t, "other", v)
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	storeContract(t, store)

	// player keys never escape the save dir
	_, err = os.Stat(store.Path(Key("p1")))
	assert.NoError(t, err)
}

func TestFileStore_CanceledContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, store.Set(ctx, DefaultKey, "x"), context.Canceled)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key gives fresh state", func(t *testing.T) {
		state, err := Load(ctx, NewMemoryStore(), DefaultKey, now)
		require.NoError(t, err)
		assert.Equal(t, domain.NewGameState(now), state)
	})

	t.Run("corrupt save gives fresh state and error", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, DefaultKey, "garbage"))

		state, err := Load(ctx, store, DefaultKey, now)
		assert.ErrorIs(t, err, domain.ErrCorruptSave)
		require.NotNil(t, state)
		assert.Equal(t, 1, state.Count(domain.UnitMonkey))
	})

	t.Run("legacy save is migrated and repaired", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, DefaultKey, legacySave))

		state, err := Load(ctx, store, DefaultKey, now)
		require.NoError(t, err)
		assert.Equal(t, domain.EconomyVersionCurrent, state.EconomyVersion)
		assert.Equal(t, 12, state.Count(domain.UnitMonkey))
		assert.NotNil(t, state.Units[domain.UnitParrot])
	})

	t.Run("write then load round trips", func(t *testing.T) {
		store := NewMemoryStore()
		state := domain.NewGameState(now)
		state.Food = 77

		_, err := Write(ctx, store, DefaultKey, state, now)
		require.NoError(t, err)

		loaded, err := Load(ctx, store, DefaultKey, now)
		require.NoError(t, err)
		assert.Equal(t, state, loaded)
	})
}
