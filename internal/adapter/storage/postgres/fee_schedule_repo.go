package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"revenue-distribution-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// FeeScheduleRepo implements ports.FeeScheduleRepository. When no schedule
// row is effective yet, a config-seeded fallback keeps payment creation
// working on a fresh database.
type FeeScheduleRepo struct {
	pool     Pool
	fallback *domain.FeeSchedule
}

// NewFeeScheduleRepo creates a new FeeScheduleRepo.
func NewFeeScheduleRepo(pool Pool, fallback *domain.FeeSchedule) *FeeScheduleRepo {
	return &FeeScheduleRepo{pool: pool, fallback: fallback}
}

// GetActive returns the latest fee schedule already in effect.
func (r *FeeScheduleRepo) GetActive(ctx context.Context) (*domain.FeeSchedule, error) {
	query := `SELECT version, phase, default_fee_bps, overrides, effective_at
		FROM fee_schedules WHERE effective_at <= $1
		ORDER BY effective_at DESC, version DESC LIMIT 1`

	var (
		s             domain.FeeSchedule
		defaultBps    int64
		overridesJSON []byte
	)
	err := r.pool.QueryRow(ctx, query, time.Now().UTC()).Scan(
		&s.Version, &s.Phase, &defaultBps, &overridesJSON, &s.EffectiveAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) && r.fallback != nil {
			return r.fallback, nil
		}
		return nil, fmt.Errorf("get active fee schedule: %w", err)
	}

	s.DefaultFee = domain.FeePercentage{BasisPoints: defaultBps}
	if len(overridesJSON) > 0 {
		overrides := map[uuid.UUID]domain.FeePercentage{}
		if err := json.Unmarshal(overridesJSON, &overrides); err != nil {
			return nil, fmt.Errorf("unmarshal fee overrides: %w", err)
		}
		s.Overrides = overrides
	}
	return &s, nil
}
