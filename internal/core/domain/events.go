package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DomainEvent is implemented by every event an aggregate emits. The set of
// implementations is closed; events cross the process boundary only as
// serialized EventEnvelopes.
type DomainEvent interface {
	EventType() string
	AggregateID() uuid.UUID
	OccurredAt() time.Time
}

// EventEnvelope is the persisted and published shape of a domain event.
type EventEnvelope struct {
	EventID     uuid.UUID       `json:"event_id"`
	EventType   string          `json:"event_type"`
	AggregateID uuid.UUID       `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

// Envelope serializes a domain event for storage or streaming.
func Envelope(e DomainEvent) (EventEnvelope, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return EventEnvelope{}, fmt.Errorf("marshal %s payload: %w", e.EventType(), err)
	}
	return EventEnvelope{
		EventID:     uuid.New(),
		EventType:   e.EventType(),
		AggregateID: e.AggregateID(),
		OccurredAt:  e.OccurredAt(),
		Payload:     payload,
	}, nil
}

// ---- Payment lifecycle events ----

type PaymentInitiated struct {
	PaymentID uuid.UUID   `json:"payment_id"`
	PayerID   uuid.UUID   `json:"payer_id"`
	PayeeID   uuid.UUID   `json:"payee_id"`
	Amount    Amount      `json:"amount"`
	Purpose   PurposeType `json:"purpose"`
	Timestamp time.Time   `json:"timestamp"`
}

func (e PaymentInitiated) EventType() string      { return "PaymentInitiated" }
func (e PaymentInitiated) AggregateID() uuid.UUID { return e.PaymentID }
func (e PaymentInitiated) OccurredAt() time.Time  { return e.Timestamp }

type PaymentProcessingStarted struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	TransactionID uuid.UUID `json:"transaction_id"`
	Timestamp     time.Time `json:"timestamp"`
}

func (e PaymentProcessingStarted) EventType() string      { return "PaymentProcessingStarted" }
func (e PaymentProcessingStarted) AggregateID() uuid.UUID { return e.PaymentID }
func (e PaymentProcessingStarted) OccurredAt() time.Time  { return e.Timestamp }

type PaymentCompleted struct {
	PaymentID      uuid.UUID `json:"payment_id"`
	Amount         Amount    `json:"amount"`
	NetAmount      Amount    `json:"net_amount"`
	BlockchainHash *string   `json:"blockchain_hash,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

func (e PaymentCompleted) EventType() string      { return "PaymentCompleted" }
func (e PaymentCompleted) AggregateID() uuid.UUID { return e.PaymentID }
func (e PaymentCompleted) OccurredAt() time.Time  { return e.Timestamp }

type PaymentFailed struct {
	PaymentID    uuid.UUID `json:"payment_id"`
	ErrorCode    string    `json:"error_code"`
	ErrorMessage string    `json:"error_message"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e PaymentFailed) EventType() string      { return "PaymentFailed" }
func (e PaymentFailed) AggregateID() uuid.UUID { return e.PaymentID }
func (e PaymentFailed) OccurredAt() time.Time  { return e.Timestamp }

type PaymentCancelled struct {
	PaymentID uuid.UUID `json:"payment_id"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

func (e PaymentCancelled) EventType() string      { return "PaymentCancelled" }
func (e PaymentCancelled) AggregateID() uuid.UUID { return e.PaymentID }
func (e PaymentCancelled) OccurredAt() time.Time  { return e.Timestamp }

type PaymentRefundStarted struct {
	PaymentID       uuid.UUID `json:"payment_id"`
	RefundPaymentID uuid.UUID `json:"refund_payment_id"`
	RefundAmount    Amount    `json:"refund_amount"`
	Reason          string    `json:"reason"`
	Timestamp       time.Time `json:"timestamp"`
}

func (e PaymentRefundStarted) EventType() string      { return "PaymentRefundStarted" }
func (e PaymentRefundStarted) AggregateID() uuid.UUID { return e.PaymentID }
func (e PaymentRefundStarted) OccurredAt() time.Time  { return e.Timestamp }

type PaymentRefunded struct {
	PaymentID    uuid.UUID `json:"payment_id"`
	RefundAmount Amount    `json:"refund_amount"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e PaymentRefunded) EventType() string      { return "PaymentRefunded" }
func (e PaymentRefunded) AggregateID() uuid.UUID { return e.PaymentID }
func (e PaymentRefunded) OccurredAt() time.Time  { return e.Timestamp }

// ---- Purpose-specific completion events ----
//
// These are how other bounded contexts learn a payment finished without the
// engine depending on them.

type NFTPurchasePaymentCompleted struct {
	PaymentID uuid.UUID `json:"payment_id"`
	NFTID     uuid.UUID `json:"nft_id"`
	SongID    uuid.UUID `json:"song_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	Amount    Amount    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

func (e NFTPurchasePaymentCompleted) EventType() string      { return "NFTPurchasePaymentCompleted" }
func (e NFTPurchasePaymentCompleted) AggregateID() uuid.UUID { return e.PaymentID }
func (e NFTPurchasePaymentCompleted) OccurredAt() time.Time  { return e.Timestamp }

type SharePurchasePaymentCompleted struct {
	PaymentID uuid.UUID `json:"payment_id"`
	ShareID   uuid.UUID `json:"share_id"`
	SongID    uuid.UUID `json:"song_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	Amount    Amount    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

func (e SharePurchasePaymentCompleted) EventType() string      { return "SharePurchasePaymentCompleted" }
func (e SharePurchasePaymentCompleted) AggregateID() uuid.UUID { return e.PaymentID }
func (e SharePurchasePaymentCompleted) OccurredAt() time.Time  { return e.Timestamp }

type ShareTradePaymentCompleted struct {
	PaymentID  uuid.UUID `json:"payment_id"`
	ShareID    uuid.UUID `json:"share_id"`
	ContractID uuid.UUID `json:"contract_id"`
	SellerID   uuid.UUID `json:"seller_id"`
	BuyerID    uuid.UUID `json:"buyer_id"`
	Amount     Amount    `json:"amount"`
	Timestamp  time.Time `json:"timestamp"`
}

func (e ShareTradePaymentCompleted) EventType() string      { return "ShareTradePaymentCompleted" }
func (e ShareTradePaymentCompleted) AggregateID() uuid.UUID { return e.PaymentID }
func (e ShareTradePaymentCompleted) OccurredAt() time.Time  { return e.Timestamp }

type RoyaltyPaymentCompleted struct {
	PaymentID      uuid.UUID `json:"payment_id"`
	DistributionID uuid.UUID `json:"distribution_id"`
	SongID         uuid.UUID `json:"song_id"`
	ArtistID       uuid.UUID `json:"artist_id"`
	Amount         Amount    `json:"amount"`
	Timestamp      time.Time `json:"timestamp"`
}

func (e RoyaltyPaymentCompleted) EventType() string      { return "RoyaltyPaymentCompleted" }
func (e RoyaltyPaymentCompleted) AggregateID() uuid.UUID { return e.PaymentID }
func (e RoyaltyPaymentCompleted) OccurredAt() time.Time  { return e.Timestamp }

type ListenRewardDistributed struct {
	PaymentID       uuid.UUID `json:"payment_id"`
	ListenSessionID uuid.UUID `json:"listen_session_id"`
	SongID          uuid.UUID `json:"song_id"`
	ListenerID      uuid.UUID `json:"listener_id"`
	Amount          Amount    `json:"amount"`
	Timestamp       time.Time `json:"timestamp"`
}

func (e ListenRewardDistributed) EventType() string      { return "ListenRewardDistributed" }
func (e ListenRewardDistributed) AggregateID() uuid.UUID { return e.PaymentID }
func (e ListenRewardDistributed) OccurredAt() time.Time  { return e.Timestamp }

type RevenueSharingPaymentProcessed struct {
	PaymentID      uuid.UUID `json:"payment_id"`
	DistributionID uuid.UUID `json:"distribution_id"`
	ContractID     uuid.UUID `json:"contract_id"`
	ShareholderID  uuid.UUID `json:"shareholder_id"`
	Amount         Amount    `json:"amount"`
	Timestamp      time.Time `json:"timestamp"`
}

func (e RevenueSharingPaymentProcessed) EventType() string      { return "RevenueSharingPaymentProcessed" }
func (e RevenueSharingPaymentProcessed) AggregateID() uuid.UUID { return e.PaymentID }
func (e RevenueSharingPaymentProcessed) OccurredAt() time.Time  { return e.Timestamp }

type PlatformFeeCollected struct {
	PaymentID      uuid.UUID `json:"payment_id"`
	DistributionID uuid.UUID `json:"distribution_id"`
	Amount         Amount    `json:"amount"`
	Timestamp      time.Time `json:"timestamp"`
}

func (e PlatformFeeCollected) EventType() string      { return "PlatformFeeCollected" }
func (e PlatformFeeCollected) AggregateID() uuid.UUID { return e.PaymentID }
func (e PlatformFeeCollected) OccurredAt() time.Time  { return e.Timestamp }

type RefundPaymentCompleted struct {
	PaymentID         uuid.UUID `json:"payment_id"`
	OriginalPaymentID uuid.UUID `json:"original_payment_id"`
	Amount            Amount    `json:"amount"`
	Timestamp         time.Time `json:"timestamp"`
}

func (e RefundPaymentCompleted) EventType() string      { return "RefundPaymentCompleted" }
func (e RefundPaymentCompleted) AggregateID() uuid.UUID { return e.PaymentID }
func (e RefundPaymentCompleted) OccurredAt() time.Time  { return e.Timestamp }

// ---- Royalty distribution events ----

type RoyaltyDistributionCreated struct {
	DistributionID uuid.UUID `json:"distribution_id"`
	SongID         uuid.UUID `json:"song_id"`
	ArtistID       uuid.UUID `json:"artist_id"`
	TotalRevenue   Amount    `json:"total_revenue"`
	ArtistAmount   Amount    `json:"artist_amount"`
	PlatformFee    Amount    `json:"platform_fee"`
	Timestamp      time.Time `json:"timestamp"`
}

func (e RoyaltyDistributionCreated) EventType() string      { return "RoyaltyDistributionCreated" }
func (e RoyaltyDistributionCreated) AggregateID() uuid.UUID { return e.DistributionID }
func (e RoyaltyDistributionCreated) OccurredAt() time.Time  { return e.Timestamp }

type RoyaltyDistributionProcessing struct {
	DistributionID uuid.UUID   `json:"distribution_id"`
	PaymentIDs     []uuid.UUID `json:"payment_ids"`
	Timestamp      time.Time   `json:"timestamp"`
}

func (e RoyaltyDistributionProcessing) EventType() string      { return "RoyaltyDistributionProcessing" }
func (e RoyaltyDistributionProcessing) AggregateID() uuid.UUID { return e.DistributionID }
func (e RoyaltyDistributionProcessing) OccurredAt() time.Time  { return e.Timestamp }

type RoyaltyDistributionCompleted struct {
	DistributionID uuid.UUID   `json:"distribution_id"`
	SongID         uuid.UUID   `json:"song_id"`
	ArtistID       uuid.UUID   `json:"artist_id"`
	PaymentIDs     []uuid.UUID `json:"payment_ids"`
	Timestamp      time.Time   `json:"timestamp"`
}

func (e RoyaltyDistributionCompleted) EventType() string      { return "RoyaltyDistributionCompleted" }
func (e RoyaltyDistributionCompleted) AggregateID() uuid.UUID { return e.DistributionID }
func (e RoyaltyDistributionCompleted) OccurredAt() time.Time  { return e.Timestamp }

// ---- Revenue sharing events ----

type RevenueSharingCreated struct {
	DistributionID uuid.UUID `json:"distribution_id"`
	ContractID     uuid.UUID `json:"contract_id"`
	SongID         uuid.UUID `json:"song_id"`
	TotalRevenue   Amount    `json:"total_revenue"`
	Shareholders   int       `json:"shareholders"`
	Timestamp      time.Time `json:"timestamp"`
}

func (e RevenueSharingCreated) EventType() string      { return "RevenueSharingCreated" }
func (e RevenueSharingCreated) AggregateID() uuid.UUID { return e.DistributionID }
func (e RevenueSharingCreated) OccurredAt() time.Time  { return e.Timestamp }

type RevenueSharingProcessing struct {
	DistributionID uuid.UUID   `json:"distribution_id"`
	PaymentIDs     []uuid.UUID `json:"payment_ids"`
	Timestamp      time.Time   `json:"timestamp"`
}

func (e RevenueSharingProcessing) EventType() string      { return "RevenueSharingProcessing" }
func (e RevenueSharingProcessing) AggregateID() uuid.UUID { return e.DistributionID }
func (e RevenueSharingProcessing) OccurredAt() time.Time  { return e.Timestamp }

type RevenueSharingCompleted struct {
	DistributionID uuid.UUID   `json:"distribution_id"`
	ContractID     uuid.UUID   `json:"contract_id"`
	PaymentIDs     []uuid.UUID `json:"payment_ids"`
	Timestamp      time.Time   `json:"timestamp"`
}

func (e RevenueSharingCompleted) EventType() string      { return "RevenueSharingCompleted" }
func (e RevenueSharingCompleted) AggregateID() uuid.UUID { return e.DistributionID }
func (e RevenueSharingCompleted) OccurredAt() time.Time  { return e.Timestamp }

type RevenueSharingPartiallyCompleted struct {
	DistributionID uuid.UUID   `json:"distribution_id"`
	ContractID     uuid.UUID   `json:"contract_id"`
	CompletedIDs   []uuid.UUID `json:"completed_shareholder_ids"`
	FailedIDs      []uuid.UUID `json:"failed_shareholder_ids"`
	Timestamp      time.Time   `json:"timestamp"`
}

func (e RevenueSharingPartiallyCompleted) EventType() string {
	return "RevenueSharingPartiallyCompleted"
}
func (e RevenueSharingPartiallyCompleted) AggregateID() uuid.UUID { return e.DistributionID }
func (e RevenueSharingPartiallyCompleted) OccurredAt() time.Time  { return e.Timestamp }

type RevenueSharingFailed struct {
	DistributionID uuid.UUID `json:"distribution_id"`
	ContractID     uuid.UUID `json:"contract_id"`
	Timestamp      time.Time `json:"timestamp"`
}

func (e RevenueSharingFailed) EventType() string      { return "RevenueSharingFailed" }
func (e RevenueSharingFailed) AggregateID() uuid.UUID { return e.DistributionID }
func (e RevenueSharingFailed) OccurredAt() time.Time  { return e.Timestamp }
