package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gotix/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStoreSetGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess := Session{ID: "sid-1", UserID: 7, OTPVerified: false}
	require.NoError(t, store.Set(ctx, sess, 5*time.Minute))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "sid-1", got.ID)
	assert.Equal(t, int64(7), got.UserID)
	assert.False(t, got.OTPVerified)
}

func TestRedisStoreGetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestRedisStoreExpiration(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, Session{ID: "sid-2", UserID: 9}, time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "sid-2")
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestRedisStoreKeepTTLOnUpdate(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, Session{ID: "sid-3", UserID: 4}, 5*time.Minute))
	mr.FastForward(2 * time.Minute)

	// marking the second factor done must not extend the session lifetime
	require.NoError(t, store.Set(ctx, Session{ID: "sid-3", UserID: 4, OTPVerified: true}, KeepTTL))

	got, err := store.Get(ctx, "sid-3")
	require.NoError(t, err)
	assert.True(t, got.OTPVerified)

	mr.FastForward(4 * time.Minute)
	_, err = store.Get(ctx, "sid-3")
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestRedisStoreKeepTTLMissingKey(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, Session{ID: "sid-5", UserID: 4}, time.Minute))
	mr.FastForward(2 * time.Minute)

	// updating an expired record must not resurrect it as a persistent key
	err := store.Set(ctx, Session{ID: "sid-5", UserID: 4, OTPVerified: true}, KeepTTL)
	assert.ErrorIs(t, err, goerror.ErrNotFound)

	_, err = store.Get(ctx, "sid-5")
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestRedisStoreDestroy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, Session{ID: "sid-4", UserID: 1}, time.Minute))
	require.NoError(t, store.Destroy(ctx, "sid-4"))
	require.NoError(t, store.Destroy(ctx, "sid-4")) // idempotent

	_, err := store.Get(ctx, "sid-4")
	assert.ErrorIs(t, err, goerror.ErrNotFound)
}
