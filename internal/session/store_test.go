package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding-engine/internal/common/logger"
	"onboarding-engine/internal/gate"
	"onboarding-engine/internal/models"
	"onboarding-engine/internal/storage"
)

// ==========================
// Test Helper Functions
// ==========================

func newStoreForTest() (*Store, storage.Store) {
	persisted := storage.NewMemoryStore()
	return NewStore(persisted, logger.NewNoOpLogger()), persisted
}

func testUser() models.User {
	return models.User{
		ID:           "user-001",
		FirstName:    "Rahim",
		LastName:     "Uddin",
		EmailAddress: "rahim@example.com",
		MobileNumber: "+8801712345678",
	}
}

// ==========================
// Lifecycle Tests
// ==========================

func TestStore_StartsIdle(t *testing.T) {
	s, _ := newStoreForTest()

	assert.Equal(t, gate.AuthIdle, s.Status())
	assert.Nil(t, s.Current())
	assert.False(t, s.IsAuthenticated())
}

func TestStore_Init_RestoresPersistedUser(t *testing.T) {
	ctx := context.Background()
	persisted := storage.NewMemoryStore()
	require.NoError(t, storage.SetJSON(ctx, persisted, storage.KeyUser, testUser()))

	s := NewStore(persisted, logger.NewNoOpLogger())
	s.Init(ctx)

	assert.Equal(t, gate.AuthSucceeded, s.Status())
	require.NotNil(t, s.Current())
	assert.Equal(t, "user-001", s.Current().ID)
}

func TestStore_Init_CorruptUserStaysSignedOut(t *testing.T) {
	ctx := context.Background()
	persisted := storage.NewMemoryStore()
	require.NoError(t, persisted.SetItem(ctx, storage.KeyUser, []byte("{not json")))

	s := NewStore(persisted, logger.NewNoOpLogger())
	s.Init(ctx)

	assert.Equal(t, gate.AuthIdle, s.Status())
	assert.Nil(t, s.Current())
}

func TestStore_Init_RestoresTempState(t *testing.T) {
	ctx := context.Background()
	persisted := storage.NewMemoryStore()
	require.NoError(t, storage.SetJSON(ctx, persisted, storage.KeyTempUser, models.TempUser{EmailAddress: "new@example.com"}))
	require.NoError(t, storage.SetJSON(ctx, persisted, storage.KeyTempToken, "otp-token-1"))

	s := NewStore(persisted, logger.NewNoOpLogger())
	s.Init(ctx)

	require.NotNil(t, s.TempUser())
	assert.Equal(t, "new@example.com", s.TempUser().EmailAddress)
	assert.Equal(t, "otp-token-1", s.TempToken())
	assert.Equal(t, gate.AuthIdle, s.Status())
}

func TestStore_Login_PersistsUserAndClearsTemp(t *testing.T) {
	ctx := context.Background()
	s, persisted := newStoreForTest()
	s.SetTempUser(ctx, models.TempUser{EmailAddress: "new@example.com"})
	s.SetTempToken(ctx, "otp-token-1")

	s.BeginAuth()
	assert.Equal(t, gate.AuthPending, s.Status())

	s.Login(ctx, testUser())

	assert.Equal(t, gate.AuthSucceeded, s.Status())
	assert.True(t, s.IsAuthenticated())
	assert.Nil(t, s.TempUser())
	assert.Empty(t, s.TempToken())

	var stored models.User
	ok, err := storage.GetJSON(ctx, persisted, storage.KeyUser, &stored)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "user-001", stored.ID)

	_, ok, err = persisted.GetItem(ctx, storage.KeyTempUser)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_FailAuth(t *testing.T) {
	s, _ := newStoreForTest()

	s.BeginAuth()
	s.FailAuth()

	assert.Equal(t, gate.AuthFailed, s.Status())
	assert.Nil(t, s.Current())
}

func TestStore_Logout_ClearsEverything(t *testing.T) {
	ctx := context.Background()
	s, persisted := newStoreForTest()
	s.Login(ctx, testUser())
	require.NoError(t, persisted.SetItem(ctx, storage.KeyAccessToken, []byte(`"tok"`)))
	require.NoError(t, persisted.SetItem(ctx, storage.KeyRefreshToken, []byte(`"ref"`)))

	s.Logout(ctx)

	assert.Equal(t, gate.AuthIdle, s.Status())
	assert.Nil(t, s.Current())

	for _, key := range []string{
		storage.KeyAccessToken,
		storage.KeyRefreshToken,
		storage.KeyUser,
	} {
		_, ok, err := persisted.GetItem(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, "key %q should be gone after logout", key)
	}
}

func TestStore_ClearTemp(t *testing.T) {
	ctx := context.Background()
	s, persisted := newStoreForTest()
	s.SetTempUser(ctx, models.TempUser{EmailAddress: "new@example.com"})
	s.SetTempToken(ctx, "otp-token-1")

	s.ClearTemp(ctx)

	assert.Nil(t, s.TempUser())
	assert.Empty(t, s.TempToken())
	_, ok, err := persisted.GetItem(ctx, storage.KeyTempToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Current_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := newStoreForTest()
	s.Login(ctx, testUser())

	u := s.Current()
	u.FirstName = "mutated"

	assert.Equal(t, "Rahim", s.Current().FirstName)
}
