package postgres

import (
	"context"
	"testing"
	"time"

	"revenue-distribution-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeScheduleRepo_GetActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewFeeScheduleRepo(mock, nil)
	grandfathered := uuid.New()
	effectiveAt := time.Now().UTC().Add(-24 * time.Hour).Truncate(time.Microsecond)
	overrides := map[uuid.UUID]domain.FeePercentage{
		grandfathered: domain.MustFeePercentage(2.5),
	}

	mock.ExpectQuery("SELECT .+ FROM fee_schedules WHERE effective_at").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"version", "phase", "default_fee_bps", "overrides", "effective_at"}).
			AddRow(int64(3), "growth", int64(500), mustJSON(t, overrides), effectiveAt))

	schedule, err := repo.GetActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), schedule.Version)
	assert.Equal(t, "growth", schedule.Phase)
	assert.Equal(t, domain.MustFeePercentage(5), schedule.FeeFor(uuid.New()))
	assert.Equal(t, domain.MustFeePercentage(2.5), schedule.FeeFor(grandfathered))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeeScheduleRepo_GetActive_FallsBackToSeed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	seed, err := domain.NewFeeSchedule(1, "launch", 5, time.Now().UTC())
	require.NoError(t, err)
	repo := NewFeeScheduleRepo(mock, seed)

	mock.ExpectQuery("SELECT .+ FROM fee_schedules WHERE effective_at").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"version", "phase", "default_fee_bps", "overrides", "effective_at"}))

	schedule, err := repo.GetActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seed, schedule)
	assert.NoError(t, mock.ExpectationsWereMet())
}
