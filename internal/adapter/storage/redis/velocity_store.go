package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// VelocityStore implements ports.VelocityStore with a Redis sorted set per
// payer: members are attempt timestamps, scored by unix nanoseconds, so a
// count over the window is a single ZCOUNT after trimming expired entries.
type VelocityStore struct {
	client *goredis.Client
	prefix string
}

// NewVelocityStore creates a new Redis-backed velocity store.
func NewVelocityStore(client *goredis.Client) *VelocityStore {
	return &VelocityStore{
		client: client,
		prefix: "velocity:",
	}
}

// Record registers one payment attempt for the payer.
func (s *VelocityStore) Record(ctx context.Context, payerID uuid.UUID, window time.Duration) error {
	key := s.prefix + payerID.String()
	now := time.Now()

	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, key, goredis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	// The key only needs to outlive the window it feeds.
	pipe.Expire(ctx, key, window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis velocity record: %w", err)
	}
	return nil
}

// CountRecent returns the number of attempts inside the sliding window.
func (s *VelocityStore) CountRecent(ctx context.Context, payerID uuid.UUID, window time.Duration) (int64, error) {
	key := s.prefix + payerID.String()
	cutoff := time.Now().Add(-window).UnixNano()

	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", cutoff))
	count := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("redis velocity count: %w", err)
	}
	return count.Val(), nil
}
