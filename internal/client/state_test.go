package client

import (
	"encoding/json"
	"errors"
	"testing"

	"campus-events/internal/client/localstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadState(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		state, err := LoadState(newMemoryStore())

		require.NoError(t, err)
		assert.Empty(t, state.SavedIDs())
		_, ok := state.Session()
		assert.False(t, ok)
		assert.False(t, state.IsAdmin())
	})

	t.Run("RestoresPersistedState", func(t *testing.T) {
		store := newMemoryStore()
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		raw, _ := json.Marshal(ids)
		store.data[savedEventIDsKey] = raw
		sess, _ := json.Marshal(StoredSession{Token: "t", Actor: testAdmin})
		store.data[sessionKey] = sess
		store.data[adminSessionKey] = []byte("true")

		state, err := LoadState(store)

		require.NoError(t, err)
		if diff := cmp.Diff(ids, state.SavedIDs()); diff != "" {
			t.Errorf("saved ids mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, state.IsAdmin())
	})

	t.Run("CorruptSavedIDsAreDropped", func(t *testing.T) {
		store := newMemoryStore()
		store.data[savedEventIDsKey] = []byte("{not json")
		store.data[sessionKey] = []byte("also broken")

		state, err := LoadState(store)

		require.NoError(t, err)
		assert.NotNil(t, state.SavedIDs())
		assert.Empty(t, state.SavedIDs())
		_, ok := state.Session()
		assert.False(t, ok)
	})

	t.Run("AdminFlagWithoutAdminSession", func(t *testing.T) {
		store := newMemoryStore()
		sess, _ := json.Marshal(StoredSession{Token: "t", Actor: testUser})
		store.data[sessionKey] = sess
		store.data[adminSessionKey] = []byte("true")

		state, err := LoadState(store)

		require.NoError(t, err)
		assert.False(t, state.IsAdmin())
	})
}

func TestState_ToggleSaved(t *testing.T) {
	t.Run("PersistsImmediately", func(t *testing.T) {
		state, store := newTestState(t)
		id := uuid.New()

		_, err := state.ToggleSaved(id)
		require.NoError(t, err)

		reloaded, err := LoadState(store)
		require.NoError(t, err)
		assert.True(t, reloaded.IsSaved(id))
	})

	t.Run("Failed - StoreErrorLeavesSetUnchanged", func(t *testing.T) {
		state, store := newTestState(t)
		store.setErr = errors.New("disk full")

		_, err := state.ToggleSaved(uuid.New())

		assert.Error(t, err)
		assert.Empty(t, state.SavedIDs())
	})
}

func TestState_Session(t *testing.T) {
	state, store := newTestState(t)

	require.NoError(t, state.SetSession(StoredSession{Token: "admin", Actor: testAdmin}))
	assert.True(t, state.IsAdmin())
	assert.Equal(t, []byte("true"), store.data[adminSessionKey])

	require.NoError(t, state.SetSession(StoredSession{Token: "user", Actor: testUser}))
	assert.False(t, state.IsAdmin())
	_, err := store.Get(adminSessionKey)
	assert.ErrorIs(t, err, localstore.ErrNotFound)

	require.NoError(t, state.ClearSession())
	_, ok := state.Session()
	assert.False(t, ok)
	_, err = store.Get(sessionKey)
	assert.ErrorIs(t, err, localstore.ErrNotFound)
}
