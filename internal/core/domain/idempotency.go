package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyLog caches a payment-creation result so a repeated command
// returns the existing payment instead of creating a duplicate.
type IdempotencyLog struct {
	Key          string    `json:"key"`
	PaymentID    uuid.UUID `json:"payment_id"`
	ResponseJSON []byte    `json:"response_json"` // Cached response to return
	CreatedAt    time.Time `json:"created_at"`
}

// BuildIdempotencyKey constructs the standard key format: the client-supplied
// token scoped by payer so keys cannot collide across users.
func BuildIdempotencyKey(payerID uuid.UUID, clientKey string) string {
	return payerID.String() + ":" + clientKey
}

// BuildRefundIdempotencyKey constructs the key for refund idempotency.
func BuildRefundIdempotencyKey(payerID uuid.UUID, originalPaymentID uuid.UUID) string {
	return payerID.String() + ":refund:" + originalPaymentID.String()
}
