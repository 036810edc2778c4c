package domain

import (
	"fmt"
	"time"

	"revenue-distribution-engine/pkg/apperror"

	"github.com/google/uuid"
)

// DistributionStatus is the lifecycle state of a distribution workflow.
type DistributionStatus string

const (
	DistributionPending            DistributionStatus = "PENDING"
	DistributionProcessing         DistributionStatus = "PROCESSING"
	DistributionCompleted          DistributionStatus = "COMPLETED"
	DistributionPartiallyCompleted DistributionStatus = "PARTIALLY_COMPLETED"
	DistributionFailed             DistributionStatus = "FAILED"
)

// IsTerminal returns true if the distribution accepts no further mutation.
func (s DistributionStatus) IsTerminal() bool {
	return s == DistributionCompleted || s == DistributionPartiallyCompleted || s == DistributionFailed
}

// RoyaltyDistributionAggregate is a one-to-one payout workflow: song revenue
// split between a single artist and the platform, settled through one child
// payment that the aggregate creates and tracks to completion.
type RoyaltyDistributionAggregate struct {
	ID                    uuid.UUID
	SongID                uuid.UUID
	ArtistID              uuid.UUID
	TotalRevenue          Amount
	ArtistAmount          Amount
	PlatformFee           Amount
	ArtistSharePercentage FeePercentage
	PlatformFeePercentage FeePercentage
	PeriodStart           time.Time
	PeriodEnd             time.Time
	Status                DistributionStatus
	PaymentIDs            []uuid.UUID
	Version               int64

	events []DomainEvent
}

// NewRoyaltyDistribution computes the artist and platform cuts from the
// period's total revenue. The two percentages may sum below 100 — the
// remainder stays with the platform treasury — but never above it.
func NewRoyaltyDistribution(
	songID, artistID uuid.UUID,
	totalRevenue Amount,
	artistSharePercent, platformFeePercent float64,
	periodStart, periodEnd time.Time,
) (*RoyaltyDistributionAggregate, error) {
	if songID == uuid.Nil || artistID == uuid.Nil {
		return nil, apperror.ErrInvalidInput("song and artist are required")
	}
	if !periodEnd.After(periodStart) {
		return nil, apperror.ErrInvalidInput("period end must be after period start")
	}

	artistPct, err := NewFeePercentage(artistSharePercent)
	if err != nil {
		return nil, err
	}
	platformPct, err := NewFeePercentage(platformFeePercent)
	if err != nil {
		return nil, err
	}
	if artistSharePercent+platformFeePercent > 100 {
		return nil, apperror.ErrDomainRuleViolation(fmt.Sprintf(
			"artist share %.2f%% and platform fee %.2f%% exceed 100%%",
			artistSharePercent, platformFeePercent))
	}

	artistAmount, err := totalRevenue.PercentageOf(artistSharePercent)
	if err != nil {
		return nil, err
	}
	platformFee, err := totalRevenue.PercentageOf(platformFeePercent)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	agg := &RoyaltyDistributionAggregate{
		ID:                    uuid.New(),
		SongID:                songID,
		ArtistID:              artistID,
		TotalRevenue:          totalRevenue,
		ArtistAmount:          artistAmount,
		PlatformFee:           platformFee,
		ArtistSharePercentage: artistPct,
		PlatformFeePercentage: platformPct,
		PeriodStart:           periodStart,
		PeriodEnd:             periodEnd,
		Status:                DistributionPending,
		Version:               1,
	}

	agg.record(RoyaltyDistributionCreated{
		DistributionID: agg.ID,
		SongID:         songID,
		ArtistID:       artistID,
		TotalRevenue:   totalRevenue,
		ArtistAmount:   artistAmount,
		PlatformFee:    platformFee,
		Timestamp:      now,
	})
	return agg, nil
}

// RehydrateRoyaltyDistribution reconstructs an aggregate from persistence.
func RehydrateRoyaltyDistribution(
	id, songID, artistID uuid.UUID,
	totalRevenue, artistAmount, platformFee Amount,
	artistPct, platformPct FeePercentage,
	periodStart, periodEnd time.Time,
	status DistributionStatus,
	paymentIDs []uuid.UUID,
	version int64,
) *RoyaltyDistributionAggregate {
	return &RoyaltyDistributionAggregate{
		ID: id, SongID: songID, ArtistID: artistID,
		TotalRevenue: totalRevenue, ArtistAmount: artistAmount, PlatformFee: platformFee,
		ArtistSharePercentage: artistPct, PlatformFeePercentage: platformPct,
		PeriodStart: periodStart, PeriodEnd: periodEnd,
		Status: status, PaymentIDs: paymentIDs, Version: version,
	}
}

// Process creates the artist payout as a child payment (platform account →
// artist) and moves the distribution to PROCESSING. Legal only from PENDING.
// The caller persists and drives the returned child through the payment
// state machine.
func (a *RoyaltyDistributionAggregate) Process(
	platformAccountID uuid.UUID,
	processingFeePct FeePercentage,
) (*PaymentAggregate, error) {
	if a.Status != DistributionPending {
		return nil, a.illegal("process")
	}
	if platformAccountID == uuid.Nil {
		return nil, apperror.ErrInvalidInput("platform account is required")
	}

	payment, err := NewPayment(
		platformAccountID,
		a.ArtistID,
		a.ArtistAmount,
		MethodPlatformBalance,
		RoyaltyDistributionPurpose(a.ID, a.SongID),
		processingFeePct,
		map[string]string{"period_start": a.PeriodStart.Format(time.RFC3339),
			"period_end": a.PeriodEnd.Format(time.RFC3339)},
	)
	if err != nil {
		return nil, err
	}

	now := a.touch()
	a.Status = DistributionProcessing
	a.PaymentIDs = append(a.PaymentIDs, payment.Payment.ID)

	a.record(RoyaltyDistributionProcessing{
		DistributionID: a.ID,
		PaymentIDs:     append([]uuid.UUID(nil), a.PaymentIDs...),
		Timestamp:      now,
	})
	return payment, nil
}

// Complete terminalizes the distribution once every child payment has
// settled. The aggregate does not poll; the orchestrator calls this after
// driving the children through the payment state machine.
func (a *RoyaltyDistributionAggregate) Complete() error {
	if a.Status != DistributionProcessing {
		return a.illegal("complete")
	}

	now := a.touch()
	a.Status = DistributionCompleted

	a.record(RoyaltyDistributionCompleted{
		DistributionID: a.ID,
		SongID:         a.SongID,
		ArtistID:       a.ArtistID,
		PaymentIDs:     append([]uuid.UUID(nil), a.PaymentIDs...),
		Timestamp:      now,
	})
	return nil
}

// Fail terminalizes the distribution when its child payment failed.
func (a *RoyaltyDistributionAggregate) Fail() error {
	if a.Status != DistributionProcessing {
		return a.illegal("fail")
	}
	a.touch()
	a.Status = DistributionFailed
	return nil
}

// PullEvents drains and returns the uncommitted events.
func (a *RoyaltyDistributionAggregate) PullEvents() []DomainEvent {
	events := a.events
	a.events = nil
	return events
}

func (a *RoyaltyDistributionAggregate) record(e DomainEvent) {
	a.events = append(a.events, e)
}

func (a *RoyaltyDistributionAggregate) touch() time.Time {
	a.Version++
	return time.Now().UTC()
}

func (a *RoyaltyDistributionAggregate) illegal(op string) error {
	return apperror.ErrInvalidState(
		fmt.Sprintf("cannot %s royalty distribution %s in status %s", op, a.ID, a.Status))
}
