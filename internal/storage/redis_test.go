package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Error Path Tests
// ==========================

func TestRedisStore_GetItem_ConnectionError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet("ns:access_token").SetErr(errors.New("connection refused"))

	store := NewRedisStore(client, "ns", 0)
	_, found, err := store.GetItem(context.Background(), KeyAccessToken)

	require.Error(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_SetItem_ConnectionError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectSet("ns:user", []byte(`{}`), 0).SetErr(errors.New("connection refused"))

	store := NewRedisStore(client, "ns", 0)
	err := store.SetItem(context.Background(), KeyUser, []byte(`{}`))

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_RemoveItem_ConnectionError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectDel("ns:user").SetErr(errors.New("connection refused"))

	store := NewRedisStore(client, "ns", 0)
	err := store.RemoveItem(context.Background(), KeyUser)

	assert.Error(t, err)
}

func TestRedisStore_GetItem_MissWithoutError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet("ns:user").RedisNil()

	store := NewRedisStore(client, "ns", 0)
	raw, found, err := store.GetItem(context.Background(), KeyUser)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, raw)
}
