package domain

import (
	"fmt"
	"time"

	"revenue-distribution-engine/pkg/apperror"

	"github.com/google/uuid"
)

// PaymentAggregate owns exactly one Payment, its refund children, and a
// buffer of uncommitted domain events. The Version counter is the
// optimistic-concurrency token: it increments on every mutating operation
// and the persistence layer rejects a save whose expected version does not
// match the stored one.
type PaymentAggregate struct {
	Payment         Payment
	RelatedPayments []uuid.UUID // refund children
	Version         int64

	events []DomainEvent
}

// NewPayment validates inputs and creates a pending payment. The platform
// fee and net amount are derived from the fee percentage up front and fixed
// for the payment's lifetime.
func NewPayment(
	payerID, payeeID uuid.UUID,
	amount Amount,
	method PaymentMethod,
	purpose PaymentPurpose,
	feePct FeePercentage,
	metadata map[string]string,
) (*PaymentAggregate, error) {
	return newPayment(uuid.New(), payerID, payeeID, amount, method, purpose, feePct, metadata)
}

// NewRefundPayment creates the refund child under the id the original
// reserved when it entered REFUNDING, so the initiation event is keyed to
// the payment it describes. Refunds flow payee back to payer and carry no
// platform fee.
func NewRefundPayment(refundID uuid.UUID, original *Payment, refundAmount Amount, reason string) (*PaymentAggregate, error) {
	if refundID == uuid.Nil {
		return nil, apperror.ErrInvalidInput("refund payment id is required")
	}
	return newPayment(
		refundID,
		original.PayeeID, original.PayerID,
		refundAmount, original.Method,
		RefundPurpose(original.ID),
		MustFeePercentage(0),
		map[string]string{"reason": reason},
	)
}

func newPayment(
	id uuid.UUID,
	payerID, payeeID uuid.UUID,
	amount Amount,
	method PaymentMethod,
	purpose PaymentPurpose,
	feePct FeePercentage,
	metadata map[string]string,
) (*PaymentAggregate, error) {
	if payerID == uuid.Nil || payeeID == uuid.Nil {
		return nil, apperror.ErrInvalidInput("payer and payee are required")
	}
	if !method.IsValid() {
		return nil, apperror.ErrInvalidInput(fmt.Sprintf("unknown payment method %q", method))
	}
	if err := purpose.Validate(); err != nil {
		return nil, err
	}

	platformFee := feePct.CalculateFee(amount)
	netAmount, err := amount.Subtract(platformFee)
	if err != nil {
		return nil, apperror.ErrDomainRuleViolation(
			fmt.Sprintf("platform fee %s exceeds payment amount %s", platformFee, amount))
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	now := time.Now().UTC()
	agg := &PaymentAggregate{
		Payment: Payment{
			ID:          id,
			PayerID:     payerID,
			PayeeID:     payeeID,
			Amount:      amount,
			Method:      method,
			Purpose:     purpose,
			Status:      StatusPending,
			PlatformFee: platformFee,
			NetAmount:   netAmount,
			Metadata:    metadata,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		Version: 1,
	}

	agg.record(PaymentInitiated{
		PaymentID: agg.Payment.ID,
		PayerID:   payerID,
		PayeeID:   payeeID,
		Amount:    amount,
		Purpose:   purpose.Type,
		Timestamp: now,
	})

	return agg, nil
}

// RehydratePayment reconstructs an aggregate from persistence. No events
// are emitted.
func RehydratePayment(p Payment, related []uuid.UUID, version int64) *PaymentAggregate {
	return &PaymentAggregate{Payment: p, RelatedPayments: related, Version: version}
}

// StartProcessing moves the payment to PROCESSING under a fresh transaction
// id. Legal only from PENDING; a duplicate command is rejected as an
// invalid-state error, not deduplicated.
func (a *PaymentAggregate) StartProcessing(transactionID uuid.UUID) error {
	if a.Payment.Status != StatusPending {
		return a.illegal("start processing")
	}
	if transactionID == uuid.Nil {
		return apperror.ErrInvalidInput("transaction id is required")
	}

	now := a.touch()
	a.Payment.Status = StatusProcessing
	a.Payment.TransactionID = &transactionID

	a.record(PaymentProcessingStarted{
		PaymentID:     a.Payment.ID,
		TransactionID: transactionID,
		Timestamp:     now,
	})
	return nil
}

// Complete moves the payment to COMPLETED and fans out the purpose-specific
// completion event. Legal only from PROCESSING.
func (a *PaymentAggregate) Complete(blockchainHash *string) error {
	if a.Payment.Status != StatusProcessing {
		return a.illegal("complete")
	}

	now := a.touch()
	a.Payment.Status = StatusCompleted
	a.Payment.BlockchainHash = blockchainHash
	a.Payment.CompletedAt = &now

	a.record(PaymentCompleted{
		PaymentID:      a.Payment.ID,
		Amount:         a.Payment.Amount,
		NetAmount:      a.Payment.NetAmount,
		BlockchainHash: blockchainHash,
		Timestamp:      now,
	})
	a.record(a.completionEvent(now))
	return nil
}

// completionEvent chooses the purpose-specific event. The switch is
// exhaustive over PurposeType; purposes are validated at creation, so the
// variant keys dereferenced here are always present.
func (a *PaymentAggregate) completionEvent(now time.Time) DomainEvent {
	p := a.Payment
	switch p.Purpose.Type {
	case PurposeNFTPurchase:
		return NFTPurchasePaymentCompleted{
			PaymentID: p.ID, NFTID: *p.Purpose.NFTID, SongID: *p.Purpose.SongID,
			BuyerID: p.PayerID, Amount: p.Amount, Timestamp: now,
		}
	case PurposeSharePurchase:
		return SharePurchasePaymentCompleted{
			PaymentID: p.ID, ShareID: *p.Purpose.ShareID, SongID: *p.Purpose.SongID,
			BuyerID: p.PayerID, Amount: p.Amount, Timestamp: now,
		}
	case PurposeShareTrade:
		return ShareTradePaymentCompleted{
			PaymentID: p.ID, ShareID: *p.Purpose.ShareID, ContractID: *p.Purpose.ContractID,
			SellerID: p.PayeeID, BuyerID: p.PayerID, Amount: p.Amount, Timestamp: now,
		}
	case PurposeRoyaltyDistribution:
		return RoyaltyPaymentCompleted{
			PaymentID: p.ID, DistributionID: *p.Purpose.DistributionID, SongID: *p.Purpose.SongID,
			ArtistID: p.PayeeID, Amount: p.NetAmount, Timestamp: now,
		}
	case PurposeListenReward:
		return ListenRewardDistributed{
			PaymentID: p.ID, ListenSessionID: *p.Purpose.ListenSessionID, SongID: *p.Purpose.SongID,
			ListenerID: p.PayeeID, Amount: p.Amount, Timestamp: now,
		}
	case PurposeRevenueDistribution:
		return RevenueSharingPaymentProcessed{
			PaymentID: p.ID, DistributionID: *p.Purpose.DistributionID, ContractID: *p.Purpose.ContractID,
			ShareholderID: p.PayeeID, Amount: p.NetAmount, Timestamp: now,
		}
	case PurposePlatformFee:
		return PlatformFeeCollected{
			PaymentID: p.ID, DistributionID: *p.Purpose.DistributionID,
			Amount: p.Amount, Timestamp: now,
		}
	case PurposeRefund:
		return RefundPaymentCompleted{
			PaymentID: p.ID, OriginalPaymentID: *p.Purpose.OriginalPaymentID,
			Amount: p.Amount, Timestamp: now,
		}
	}
	// Unreachable: purposes are validated at creation.
	panic(fmt.Sprintf("unhandled payment purpose %q", p.Purpose.Type))
}

// Fail terminalizes the payment with a machine-readable code and a human
// message. Legal from PROCESSING, or from PENDING for pre-flight rejections.
func (a *PaymentAggregate) Fail(errorCode, errorMessage string) error {
	if a.Payment.Status != StatusProcessing && a.Payment.Status != StatusPending {
		return a.illegal("fail")
	}
	if errorCode == "" {
		return apperror.ErrInvalidInput("error code is required")
	}

	now := a.touch()
	a.Payment.Status = StatusFailed
	a.Payment.FailureCode = errorCode
	a.Payment.FailureMessage = errorMessage

	a.record(PaymentFailed{
		PaymentID:    a.Payment.ID,
		ErrorCode:    errorCode,
		ErrorMessage: errorMessage,
		Timestamp:    now,
	})
	return nil
}

// Cancel terminalizes the payment from any non-terminal state.
func (a *PaymentAggregate) Cancel(reason string) error {
	if a.Payment.IsTerminal() {
		return a.illegal("cancel")
	}

	now := a.touch()
	a.Payment.Status = StatusCancelled
	a.Payment.CancelReason = reason

	a.record(PaymentCancelled{
		PaymentID: a.Payment.ID,
		Reason:    reason,
		Timestamp: now,
	})
	return nil
}

// StartRefund allocates a new payment id for the refund child, records it,
// and moves the original to REFUNDING. The caller constructs and processes
// the child aggregate separately.
func (a *PaymentAggregate) StartRefund(refundAmount Amount, reason string) (uuid.UUID, error) {
	if !a.Payment.CanBeRefunded() {
		return uuid.Nil, a.illegal("refund")
	}
	if refundAmount.Currency != a.Payment.Amount.Currency {
		return uuid.Nil, apperror.ErrInvalidInput("refund currency must match the original payment")
	}
	if refundAmount.IsZero() {
		return uuid.Nil, apperror.ErrInvalidInput("refund amount must be positive")
	}
	if refundAmount.GreaterThan(a.Payment.Amount) {
		return uuid.Nil, apperror.ErrInvalidInput(
			fmt.Sprintf("refund amount %s exceeds original amount %s", refundAmount, a.Payment.Amount))
	}

	refundID := uuid.New()
	now := a.touch()
	a.Payment.Status = StatusRefunding
	a.RelatedPayments = append(a.RelatedPayments, refundID)

	a.record(PaymentRefundStarted{
		PaymentID:       a.Payment.ID,
		RefundPaymentID: refundID,
		RefundAmount:    refundAmount,
		Reason:          reason,
		Timestamp:       now,
	})
	return refundID, nil
}

// CompleteRefund terminalizes the original payment as REFUNDED once the
// refund child has settled. Legal only from REFUNDING.
func (a *PaymentAggregate) CompleteRefund(refundAmount Amount) error {
	if a.Payment.Status != StatusRefunding {
		return a.illegal("complete refund")
	}

	now := a.touch()
	a.Payment.Status = StatusRefunded
	a.Payment.RefundAmount = &refundAmount
	a.Payment.RefundedAt = &now

	a.record(PaymentRefunded{
		PaymentID:    a.Payment.ID,
		RefundAmount: refundAmount,
		Timestamp:    now,
	})
	return nil
}

// PullEvents drains and returns the uncommitted events.
func (a *PaymentAggregate) PullEvents() []DomainEvent {
	events := a.events
	a.events = nil
	return events
}

func (a *PaymentAggregate) record(e DomainEvent) {
	a.events = append(a.events, e)
}

// touch bumps the version and updated-at stamp for a mutating operation.
func (a *PaymentAggregate) touch() time.Time {
	now := time.Now().UTC()
	a.Payment.UpdatedAt = now
	a.Version++
	return now
}

func (a *PaymentAggregate) illegal(op string) error {
	return apperror.ErrInvalidState(
		fmt.Sprintf("cannot %s payment %s in status %s", op, a.Payment.ID, a.Payment.Status))
}
