package domain

import (
	"fmt"
	"sort"
	"time"

	"revenue-distribution-engine/pkg/apperror"

	"github.com/google/uuid"
)

// ShareholderStatus is the per-shareholder payout state inside a revenue
// sharing distribution.
type ShareholderStatus string

const (
	ShareholderPending    ShareholderStatus = "PENDING"
	ShareholderProcessing ShareholderStatus = "PROCESSING"
	ShareholderCompleted  ShareholderStatus = "COMPLETED"
	ShareholderFailed     ShareholderStatus = "FAILED"
)

// ShareholderShare is the creation input: one fractional owner and their
// ownership percentage on the contract.
type ShareholderShare struct {
	ShareholderID uuid.UUID
	Percent       float64
}

// ShareholderDistribution tracks one shareholder's cut through the workflow.
type ShareholderDistribution struct {
	ShareholderID       uuid.UUID         `json:"shareholder_id"`
	OwnershipPercentage FeePercentage     `json:"ownership_percentage"`
	Amount              Amount            `json:"distribution_amount"`
	Status              ShareholderStatus `json:"status"`
	PaymentID           *uuid.UUID        `json:"payment_id,omitempty"`
}

// RevenueSharingAggregate is a one-to-many payout workflow: contract revenue
// fanned out into one independently-processed payment per fractional
// shareholder, converging to a single terminal outcome.
type RevenueSharingAggregate struct {
	DistributionID uuid.UUID
	ContractID     uuid.UUID
	SongID         uuid.UUID
	TotalRevenue   Amount
	PlatformFee    Amount
	Shareholders   map[uuid.UUID]*ShareholderDistribution
	PaymentIDs     []uuid.UUID
	Status         DistributionStatus
	Version        int64

	events []DomainEvent
}

// NewRevenueSharing splits the revenue left after the platform fee across
// shareholders by ownership percentage. Ownership may sum below 100 (unsold
// shares stay with the platform) but never above it.
func NewRevenueSharing(
	contractID, songID uuid.UUID,
	totalRevenue Amount,
	platformFeePercent float64,
	shares []ShareholderShare,
) (*RevenueSharingAggregate, error) {
	if contractID == uuid.Nil || songID == uuid.Nil {
		return nil, apperror.ErrInvalidInput("contract and song are required")
	}
	if len(shares) == 0 {
		return nil, apperror.ErrInvalidInput("at least one shareholder is required")
	}

	platformFee, err := totalRevenue.PercentageOf(platformFeePercent)
	if err != nil {
		return nil, err
	}
	distributable, err := totalRevenue.Subtract(platformFee)
	if err != nil {
		return nil, err
	}

	var totalPercent float64
	shareholders := make(map[uuid.UUID]*ShareholderDistribution, len(shares))
	for _, s := range shares {
		if s.ShareholderID == uuid.Nil {
			return nil, apperror.ErrInvalidInput("shareholder id is required")
		}
		if _, dup := shareholders[s.ShareholderID]; dup {
			return nil, apperror.ErrInvalidInput(
				fmt.Sprintf("duplicate shareholder %s", s.ShareholderID))
		}

		pct, err := NewFeePercentage(s.Percent)
		if err != nil {
			return nil, err
		}
		amount, err := distributable.PercentageOf(s.Percent)
		if err != nil {
			return nil, err
		}

		totalPercent += s.Percent
		shareholders[s.ShareholderID] = &ShareholderDistribution{
			ShareholderID:       s.ShareholderID,
			OwnershipPercentage: pct,
			Amount:              amount,
			Status:              ShareholderPending,
		}
	}
	if totalPercent > 100 {
		return nil, apperror.ErrInvalidInput(
			fmt.Sprintf("ownership percentages sum to %.2f%%, exceeding 100%%", totalPercent))
	}

	now := time.Now().UTC()
	agg := &RevenueSharingAggregate{
		DistributionID: uuid.New(),
		ContractID:     contractID,
		SongID:         songID,
		TotalRevenue:   totalRevenue,
		PlatformFee:    platformFee,
		Shareholders:   shareholders,
		Status:         DistributionPending,
		Version:        1,
	}

	agg.record(RevenueSharingCreated{
		DistributionID: agg.DistributionID,
		ContractID:     contractID,
		SongID:         songID,
		TotalRevenue:   totalRevenue,
		Shareholders:   len(shareholders),
		Timestamp:      now,
	})
	return agg, nil
}

// RehydrateRevenueSharing reconstructs an aggregate from persistence.
func RehydrateRevenueSharing(
	distributionID, contractID, songID uuid.UUID,
	totalRevenue, platformFee Amount,
	shareholders map[uuid.UUID]*ShareholderDistribution,
	paymentIDs []uuid.UUID,
	status DistributionStatus,
	version int64,
) *RevenueSharingAggregate {
	return &RevenueSharingAggregate{
		DistributionID: distributionID, ContractID: contractID, SongID: songID,
		TotalRevenue: totalRevenue, PlatformFee: platformFee,
		Shareholders: shareholders, PaymentIDs: paymentIDs,
		Status: status, Version: version,
	}
}

// Process creates one child payment per shareholder (platform account →
// shareholder) and moves everything to PROCESSING. Legal only from PENDING.
// Children are returned in a deterministic shareholder order; the caller
// persists and drives each through the payment state machine independently.
func (a *RevenueSharingAggregate) Process(
	platformAccountID uuid.UUID,
	processingFeePct FeePercentage,
) ([]*PaymentAggregate, error) {
	if a.Status != DistributionPending {
		return nil, a.illegal("process")
	}
	if platformAccountID == uuid.Nil {
		return nil, apperror.ErrInvalidInput("platform account is required")
	}

	payments := make([]*PaymentAggregate, 0, len(a.Shareholders))
	for _, id := range a.shareholderOrder() {
		sh := a.Shareholders[id]
		payment, err := NewPayment(
			platformAccountID,
			sh.ShareholderID,
			sh.Amount,
			MethodPlatformBalance,
			RevenueDistributionPurpose(a.DistributionID, a.ContractID),
			processingFeePct,
			map[string]string{"shareholder_id": sh.ShareholderID.String()},
		)
		if err != nil {
			return nil, err
		}

		paymentID := payment.Payment.ID
		sh.Status = ShareholderProcessing
		sh.PaymentID = &paymentID
		a.PaymentIDs = append(a.PaymentIDs, paymentID)
		payments = append(payments, payment)
	}

	now := a.touch()
	a.Status = DistributionProcessing

	a.record(RevenueSharingProcessing{
		DistributionID: a.DistributionID,
		PaymentIDs:     append([]uuid.UUID(nil), a.PaymentIDs...),
		Timestamp:      now,
	})
	return payments, nil
}

// CompleteShareholderPayment marks one shareholder settled. When the last
// shareholder resolves, the whole distribution terminalizes: COMPLETED when
// every payout succeeded, PARTIALLY_COMPLETED on a mix, FAILED when all
// failed.
func (a *RevenueSharingAggregate) CompleteShareholderPayment(shareholderID uuid.UUID) error {
	return a.resolveShareholder(shareholderID, ShareholderCompleted)
}

// FailShareholderPayment marks one shareholder's payout failed.
func (a *RevenueSharingAggregate) FailShareholderPayment(shareholderID uuid.UUID) error {
	return a.resolveShareholder(shareholderID, ShareholderFailed)
}

func (a *RevenueSharingAggregate) resolveShareholder(shareholderID uuid.UUID, status ShareholderStatus) error {
	if a.Status != DistributionProcessing {
		return a.illegal("resolve shareholder of")
	}
	sh, ok := a.Shareholders[shareholderID]
	if !ok {
		return apperror.ErrNotFound(fmt.Sprintf("shareholder %s", shareholderID))
	}
	if sh.Status != ShareholderProcessing {
		return apperror.ErrInvalidState(
			fmt.Sprintf("shareholder %s already resolved as %s", shareholderID, sh.Status))
	}

	now := a.touch()
	sh.Status = status
	a.terminalizeIfResolved(now)
	return nil
}

// terminalizeIfResolved converges the aggregate once no shareholder is
// still processing.
func (a *RevenueSharingAggregate) terminalizeIfResolved(now time.Time) {
	var completed, failed []uuid.UUID
	for _, id := range a.shareholderOrder() {
		switch a.Shareholders[id].Status {
		case ShareholderProcessing, ShareholderPending:
			return // still in flight
		case ShareholderCompleted:
			completed = append(completed, id)
		case ShareholderFailed:
			failed = append(failed, id)
		}
	}

	switch {
	case len(failed) == 0:
		a.Status = DistributionCompleted
		a.record(RevenueSharingCompleted{
			DistributionID: a.DistributionID,
			ContractID:     a.ContractID,
			PaymentIDs:     append([]uuid.UUID(nil), a.PaymentIDs...),
			Timestamp:      now,
		})
	case len(completed) == 0:
		a.Status = DistributionFailed
		a.record(RevenueSharingFailed{
			DistributionID: a.DistributionID,
			ContractID:     a.ContractID,
			Timestamp:      now,
		})
	default:
		a.Status = DistributionPartiallyCompleted
		a.record(RevenueSharingPartiallyCompleted{
			DistributionID: a.DistributionID,
			ContractID:     a.ContractID,
			CompletedIDs:   completed,
			FailedIDs:      failed,
			Timestamp:      now,
		})
	}
}

// TotalDistributed sums the shareholder cuts. With the platform fee it never
// exceeds total revenue; the difference is rounding plus unsold ownership.
func (a *RevenueSharingAggregate) TotalDistributed() Amount {
	total := Amount{Value: 0, Currency: a.TotalRevenue.Currency}
	for _, sh := range a.Shareholders {
		total.Value += sh.Amount.Value
	}
	return total
}

// shareholderOrder returns shareholder ids in a stable order so that child
// creation and terminal events are deterministic despite the map.
func (a *RevenueSharingAggregate) shareholderOrder() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(a.Shareholders))
	for id := range a.Shareholders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// PullEvents drains and returns the uncommitted events.
func (a *RevenueSharingAggregate) PullEvents() []DomainEvent {
	events := a.events
	a.events = nil
	return events
}

func (a *RevenueSharingAggregate) record(e DomainEvent) {
	a.events = append(a.events, e)
}

func (a *RevenueSharingAggregate) touch() time.Time {
	a.Version++
	return time.Now().UTC()
}

func (a *RevenueSharingAggregate) illegal(op string) error {
	return apperror.ErrInvalidState(
		fmt.Sprintf("cannot %s revenue sharing %s in status %s", op, a.DistributionID, a.Status))
}
