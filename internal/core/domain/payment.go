package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod represents how a payment settles.
type PaymentMethod string

const (
	MethodPlatformBalance PaymentMethod = "PLATFORM_BALANCE"
	MethodCreditCard      PaymentMethod = "CREDIT_CARD"
	MethodBankTransfer    PaymentMethod = "BANK_TRANSFER"
	MethodCryptoWallet    PaymentMethod = "CRYPTO_WALLET"
)

// IsValid reports whether the method is a known one.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodPlatformBalance, MethodCreditCard, MethodBankTransfer, MethodCryptoWallet:
		return true
	}
	return false
}

// PaymentStatus represents the lifecycle state of a payment.
//
//	PENDING -> PROCESSING -> {COMPLETED | FAILED}
//	COMPLETED -> REFUNDING -> REFUNDED
//	any non-terminal -> CANCELLED
type PaymentStatus string

const (
	StatusPending    PaymentStatus = "PENDING"
	StatusProcessing PaymentStatus = "PROCESSING"
	StatusCompleted  PaymentStatus = "COMPLETED"
	StatusFailed     PaymentStatus = "FAILED"
	StatusCancelled  PaymentStatus = "CANCELLED"
	StatusRefunding  PaymentStatus = "REFUNDING"
	StatusRefunded   PaymentStatus = "REFUNDED"
)

// IsTerminal returns true if no further domain-level mutation is permitted.
func (s PaymentStatus) IsTerminal() bool {
	return s == StatusFailed || s == StatusCancelled || s == StatusRefunded
}

// CanBeRefunded returns true if a refund may be started from this state.
func (s PaymentStatus) CanBeRefunded() bool {
	return s == StatusCompleted
}

// Payment is the root entity of a single monetary transfer.
type Payment struct {
	ID            uuid.UUID      `json:"id"`
	PayerID       uuid.UUID      `json:"payer_id"`
	PayeeID       uuid.UUID      `json:"payee_id"`
	Amount        Amount         `json:"amount"`
	Method        PaymentMethod  `json:"payment_method"`
	Purpose       PaymentPurpose `json:"purpose"`
	Status        PaymentStatus  `json:"status"`

	// TransactionID identifies one settlement attempt; reassigned each time
	// processing is (re-)started.
	TransactionID  *uuid.UUID `json:"transaction_id,omitempty"`
	BlockchainHash *string    `json:"blockchain_hash,omitempty"`

	PlatformFee Amount `json:"platform_fee"`
	NetAmount   Amount `json:"net_amount"`

	// Terminal-state detail, stored on the payment rather than thrown away
	// in an exception message.
	FailureCode    string     `json:"failure_code,omitempty"`
	FailureMessage string     `json:"failure_message,omitempty"`
	CancelReason   string     `json:"cancel_reason,omitempty"`
	RefundAmount   *Amount    `json:"refund_amount,omitempty"`
	RefundedAt     *time.Time `json:"refunded_at,omitempty"`

	Metadata map[string]string `json:"metadata,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IsTerminal returns true if the payment is in a final state.
func (p *Payment) IsTerminal() bool {
	return p.Status.IsTerminal()
}

// CanBeRefunded returns true if a refund may be started against this payment.
func (p *Payment) CanBeRefunded() bool {
	return p.Status.CanBeRefunded()
}
