package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianishdubey/FitZoneBack/internal/client/api"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestLoadMissingFileIsAnonymous(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Load())
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.CurrentUser())
}

func TestSetSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	require.NoError(t, store.Load())

	user := &api.UserSummary{
		ID:             1,
		FirstName:      "Jane",
		Email:          "jane@x.com",
		MembershipType: "basic",
	}
	require.NoError(t, store.SetSession("tok123", user))
	assert.True(t, store.IsAuthenticated())

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())
	assert.True(t, reloaded.IsAuthenticated())
	assert.Equal(t, "tok123", reloaded.Token())
	require.NotNil(t, reloaded.CurrentUser())
	assert.Equal(t, "jane@x.com", reloaded.CurrentUser().Email)
}

func TestSessionFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)

	require.NoError(t, store.SetSession("tok123", &api.UserSummary{ID: 1}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestUpdateUserKeepsToken(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.SetSession("tok123", &api.UserSummary{ID: 1, MembershipType: "basic"}))

	require.NoError(t, store.UpdateUser(&api.UserSummary{ID: 1, MembershipType: "premium"}))

	assert.Equal(t, "tok123", store.Token())
	assert.Equal(t, "premium", store.CurrentUser().MembershipType)
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	require.NoError(t, store.SetSession("tok123", &api.UserSummary{ID: 1}))

	require.NoError(t, store.Clear())
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())
	assert.False(t, reloaded.IsAuthenticated())
}

func TestSetSessionWithoutUserIsNotAuthenticated(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.SetSession("tok123", nil))
	assert.False(t, store.IsAuthenticated())
}
