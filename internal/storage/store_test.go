package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, prefix string, ttl time.Duration) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, prefix, ttl)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.GetItem(ctx, KeyUser)
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SetItem(ctx, KeyUser, []byte(`{"id":"u-1"}`)))

	raw, ok, err := store.GetItem(ctx, KeyUser)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"id":"u-1"}`, string(raw))

	require.NoError(t, store.RemoveItem(ctx, KeyUser))
	_, ok, _ = store.GetItem(ctx, KeyUser)
	assert.False(t, ok)

	// Removing an absent key is fine.
	assert.NoError(t, store.RemoveItem(ctx, KeyUser))
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t, "user-1", 0)

	_, ok, err := store.GetItem(ctx, KeyPartnerDraft)
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SetItem(ctx, KeyPartnerDraft, []byte(`{"a":1}`)))

	raw, ok, err := store.GetItem(ctx, KeyPartnerDraft)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(raw))

	require.NoError(t, store.RemoveItem(ctx, KeyPartnerDraft))
	_, ok, _ = store.GetItem(ctx, KeyPartnerDraft)
	assert.False(t, ok)
}

func TestRedisStore_PrefixIsolation(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	alice := NewRedisStore(client, "alice", 0)
	bob := NewRedisStore(client, "bob", 0)

	require.NoError(t, alice.SetItem(ctx, KeyUser, []byte(`"alice"`)))

	_, ok, err := bob.GetItem(ctx, KeyUser)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t, "", 0)

	require.NoError(t, store.SetItem(ctx, KeyPartnerDraft, []byte(`"first"`)))
	require.NoError(t, store.SetItem(ctx, KeyPartnerDraft, []byte(`"second"`)))

	raw, ok, err := store.GetItem(ctx, KeyPartnerDraft)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"second"`, string(raw))
}

func TestGetJSON_SetJSON(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, SetJSON(ctx, store, KeyTempUser, record{Name: "x", Count: 2}))

	var got record
	ok, err := GetJSON(ctx, store, KeyTempUser, &got)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, record{Name: "x", Count: 2}, got)
}

func TestGetJSON_Missing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var got map[string]interface{}
	ok, err := GetJSON(ctx, store, KeyTempToken, &got)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestGetJSON_CorruptValue(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.SetItem(ctx, KeyPartnerDraft, []byte(`{not json`)))

	var got map[string]interface{}
	ok, err := GetJSON(ctx, store, KeyPartnerDraft, &got)
	assert.True(t, ok)
	assert.Error(t, err)
}
