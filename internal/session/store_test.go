package session_test

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/session"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestStore_CreateAndCurrent(t *testing.T) {
	mr, client := setupRedis(t)
	store := session.NewStore(client, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	sid, err := store.Create(ctx, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, sid)

	got, err := store.Current(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	assert.True(t, mr.Exists("session:"+sid))
	assert.Equal(t, time.Hour, mr.TTL("session:"+sid))
}

func TestStore_SignOut(t *testing.T) {
	_, client := setupRedis(t)
	store := session.NewStore(client, time.Hour)
	ctx := context.Background()

	sid, err := store.Create(ctx, uuid.New())
	require.NoError(t, err)

	require.NoError(t, store.SignOut(ctx, sid))
	_, err = store.Current(ctx, sid)
	assert.ErrorIs(t, err, session.ErrNoSession)

	// signing out twice is fine
	assert.NoError(t, store.SignOut(ctx, sid))
}

func TestStore_ExpiredSession(t *testing.T) {
	mr, client := setupRedis(t)
	store := session.NewStore(client, time.Minute)
	ctx := context.Background()

	sid, err := store.Create(ctx, uuid.New())
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)

	_, err = store.Current(ctx, sid)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestStore_UnknownOrCorruptSession(t *testing.T) {
	mr, client := setupRedis(t)
	store := session.NewStore(client, time.Hour)
	ctx := context.Background()

	_, err := store.Current(ctx, "")
	assert.ErrorIs(t, err, session.ErrNoSession)

	_, err = store.Current(ctx, "missing")
	assert.ErrorIs(t, err, session.ErrNoSession)

	require.NoError(t, mr.Set("session:bad", "not-a-uuid"))
	_, err = store.Current(ctx, "bad")
	assert.ErrorIs(t, err, session.ErrNoSession)
	assert.False(t, mr.Exists("session:bad"))
}

func TestStore_RedisDown(t *testing.T) {
	mr, client := setupRedis(t)
	store := session.NewStore(client, time.Hour)
	mr.Close()

	_, err := store.Create(context.Background(), uuid.New())
	assert.Error(t, err)
}
