package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVelocityStore_RecordAndCount(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewVelocityStore(client)
	ctx := context.Background()

	payer := uuid.New()
	window := time.Hour

	count, err := store.CountRecent(ctx, payer, window)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Record(ctx, payer, window))
	}

	count, err = store.CountRecent(ctx, payer, window)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestVelocityStore_PayersAreIndependent(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewVelocityStore(client)
	ctx := context.Background()

	busy, quiet := uuid.New(), uuid.New()

	require.NoError(t, store.Record(ctx, busy, time.Hour))
	require.NoError(t, store.Record(ctx, busy, time.Hour))

	count, err := store.CountRecent(ctx, quiet, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	count, err = store.CountRecent(ctx, busy, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestVelocityStore_KeyExpiresAfterWindow(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewVelocityStore(client)
	ctx := context.Background()

	payer := uuid.New()
	window := 2 * time.Second

	require.NoError(t, store.Record(ctx, payer, window))

	s.FastForward(window + 2*time.Second)

	count, err := store.CountRecent(ctx, payer, window)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
