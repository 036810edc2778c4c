package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPeriod() (time.Time, time.Time) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func newTestRoyalty(t *testing.T) *RoyaltyDistributionAggregate {
	t.Helper()
	start, end := testPeriod()
	agg, err := NewRoyaltyDistribution(
		uuid.New(), uuid.New(),
		MustAmount(1000, CurrencyUSD),
		85.0, 10.0,
		start, end,
	)
	require.NoError(t, err)
	return agg
}

func TestNewRoyaltyDistribution(t *testing.T) {
	agg := newTestRoyalty(t)

	assert.Equal(t, int64(850), agg.ArtistAmount.Value)
	assert.Equal(t, int64(100), agg.PlatformFee.Value)
	assert.Equal(t, DistributionPending, agg.Status)
	assert.Equal(t, int64(1), agg.Version)

	// Artist cut plus platform fee never exceeds the period revenue; the
	// remainder stays with the platform treasury.
	assert.LessOrEqual(t, agg.ArtistAmount.Value+agg.PlatformFee.Value, agg.TotalRevenue.Value)

	events := agg.PullEvents()
	require.Len(t, events, 1)
	created, ok := events[0].(RoyaltyDistributionCreated)
	require.True(t, ok)
	assert.Equal(t, agg.ID, created.DistributionID)
	assert.Equal(t, MustAmount(850, CurrencyUSD), created.ArtistAmount)
}

func TestNewRoyaltyDistribution_Validation(t *testing.T) {
	start, end := testPeriod()
	song, artist := uuid.New(), uuid.New()
	revenue := MustAmount(1000, CurrencyUSD)

	tests := []struct {
		name        string
		songID      uuid.UUID
		artistPct   float64
		platformPct float64
		start, end  time.Time
		wantCode    string
	}{
		{"percentages sum over 100", song, 95.0, 10.0, start, end, "DOM_001"},
		{"artist pct negative", song, -1, 10, start, end, "VAL_001"},
		{"platform pct over 100", song, 10, 101, start, end, "VAL_001"},
		{"nil song", uuid.Nil, 85, 10, start, end, "VAL_001"},
		{"inverted period", song, 85, 10, end, start, "VAL_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoyaltyDistribution(tt.songID, artist, revenue,
				tt.artistPct, tt.platformPct, tt.start, tt.end)
			requireAppCode(t, err, tt.wantCode)
		})
	}
}

func TestNewRoyaltyDistribution_ExactSplit(t *testing.T) {
	// Percentages summing to exactly 100 conserve the full revenue.
	start, end := testPeriod()
	agg, err := NewRoyaltyDistribution(uuid.New(), uuid.New(),
		MustAmount(1000, CurrencyUSD), 85.0, 15.0, start, end)
	require.NoError(t, err)

	assert.Equal(t, agg.TotalRevenue.Value, agg.ArtistAmount.Value+agg.PlatformFee.Value)
}

func TestRoyaltyDistribution_Process(t *testing.T) {
	agg := newTestRoyalty(t)
	agg.PullEvents()
	platform := uuid.New()

	payment, err := agg.Process(platform, MustFeePercentage(2))
	require.NoError(t, err)

	assert.Equal(t, DistributionProcessing, agg.Status)
	assert.Equal(t, []uuid.UUID{payment.Payment.ID}, agg.PaymentIDs)

	// The child pays the artist from the platform account.
	assert.Equal(t, platform, payment.Payment.PayerID)
	assert.Equal(t, agg.ArtistID, payment.Payment.PayeeID)
	assert.Equal(t, agg.ArtistAmount, payment.Payment.Amount)
	assert.Equal(t, PurposeRoyaltyDistribution, payment.Payment.Purpose.Type)
	require.NotNil(t, payment.Payment.Purpose.DistributionID)
	assert.Equal(t, agg.ID, *payment.Payment.Purpose.DistributionID)

	events := agg.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "RoyaltyDistributionProcessing", events[0].EventType())

	// Duplicate processing is rejected.
	_, err = agg.Process(platform, MustFeePercentage(2))
	requireAppCode(t, err, "DOM_002")
}

func TestRoyaltyDistribution_Complete(t *testing.T) {
	agg := newTestRoyalty(t)

	// Completing before processing is illegal.
	requireAppCode(t, agg.Complete(), "DOM_002")

	_, err := agg.Process(uuid.New(), MustFeePercentage(0))
	require.NoError(t, err)
	agg.PullEvents()

	require.NoError(t, agg.Complete())
	assert.Equal(t, DistributionCompleted, agg.Status)
	assert.True(t, agg.Status.IsTerminal())

	events := agg.PullEvents()
	require.Len(t, events, 1)
	completed, ok := events[0].(RoyaltyDistributionCompleted)
	require.True(t, ok)
	assert.Equal(t, agg.PaymentIDs, completed.PaymentIDs)

	// Terminal: no further transitions.
	requireAppCode(t, agg.Complete(), "DOM_002")
	requireAppCode(t, agg.Fail(), "DOM_002")
}

func TestRoyaltyDistribution_Fail(t *testing.T) {
	agg := newTestRoyalty(t)
	_, err := agg.Process(uuid.New(), MustFeePercentage(0))
	require.NoError(t, err)

	require.NoError(t, agg.Fail())
	assert.Equal(t, DistributionFailed, agg.Status)
}
