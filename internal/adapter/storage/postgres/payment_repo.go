package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/internal/core/ports"
	"revenue-distribution-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, payer_id, payee_id, amount, currency, payment_method, purpose, status,
	transaction_id, blockchain_hash, platform_fee, net_amount,
	failure_code, failure_message, cancel_reason, refund_amount, refunded_at,
	metadata, related_payments, version, created_at, updated_at, completed_at`

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Create inserts a new payment within a database transaction.
func (r *PaymentRepo) Create(ctx context.Context, tx pgx.Tx, agg *domain.PaymentAggregate) error {
	purpose, metadata, related, err := marshalPaymentJSON(agg)
	if err != nil {
		return err
	}

	p := agg.Payment
	query := `INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`

	_, err = tx.Exec(ctx, query,
		p.ID, p.PayerID, p.PayeeID, p.Amount.Value, p.Amount.Currency, p.Method, purpose, p.Status,
		p.TransactionID, p.BlockchainHash, p.PlatformFee.Value, p.NetAmount.Value,
		p.FailureCode, p.FailureMessage, p.CancelReason, refundValue(p.RefundAmount), p.RefundedAt,
		metadata, related, agg.Version, p.CreatedAt, p.UpdatedAt, p.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// Update persists the aggregate's mutable state, guarded by the optimistic
// version: a row that already advanced past the version being written means
// another worker won, and the caller gets a concurrency conflict.
func (r *PaymentRepo) Update(ctx context.Context, tx pgx.Tx, agg *domain.PaymentAggregate) error {
	// Purpose is immutable after creation and stays out of the update set.
	metadata, err := json.Marshal(agg.Payment.Metadata)
	if err != nil {
		return apperror.ErrSerializationError(fmt.Errorf("marshal metadata: %w", err))
	}
	related, err := json.Marshal(agg.RelatedPayments)
	if err != nil {
		return apperror.ErrSerializationError(fmt.Errorf("marshal related payments: %w", err))
	}

	p := agg.Payment
	query := `UPDATE payments SET status = $1, transaction_id = $2, blockchain_hash = $3,
		failure_code = $4, failure_message = $5, cancel_reason = $6,
		refund_amount = $7, refunded_at = $8, metadata = $9, related_payments = $10,
		version = $11, updated_at = $12, completed_at = $13
		WHERE id = $14 AND version < $11`

	tag, err := tx.Exec(ctx, query,
		p.Status, p.TransactionID, p.BlockchainHash,
		p.FailureCode, p.FailureMessage, p.CancelReason,
		refundValue(p.RefundAmount), p.RefundedAt, metadata, related,
		agg.Version, p.UpdatedAt, p.CompletedAt,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrConcurrencyConflict("payment")
	}
	return nil
}

// GetByID fetches a payment aggregate by its ID.
func (r *PaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentAggregate, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return r.scanAggregate(r.pool.QueryRow(ctx, query, id))
}

// GetByTransactionID fetches the payment carrying a settlement attempt.
func (r *PaymentRepo) GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.PaymentAggregate, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id = $1`
	return r.scanAggregate(r.pool.QueryRow(ctx, query, transactionID))
}

// List fetches payments with filtering and pagination.
func (r *PaymentRepo) List(ctx context.Context, params ports.PaymentListParams) ([]domain.Payment, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("(payer_id = $%d OR payee_id = $%d)", argIdx, argIdx))
		args = append(args, *params.UserID)
		argIdx++
	}
	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.Purpose != nil {
		conditions = append(conditions, fmt.Sprintf("purpose->>'type' = $%d", argIdx))
		args = append(args, string(*params.Purpose))
		argIdx++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *params.From)
		argIdx++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argIdx))
		args = append(args, *params.To)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM payments %s", where)
	var total int64
	err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count payments: %w", err)
	}

	// Fetch page
	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM payments %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		paymentColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		agg, err := scanPaymentRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, agg.Payment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate payment rows: %w", err)
	}
	return payments, total, nil
}

// ListStalePending returns ids of payments stuck before settlement past the
// cutoff, oldest first.
func (r *PaymentRepo) ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]uuid.UUID, error) {
	query := `SELECT id FROM payments WHERE status IN ('PENDING', 'PROCESSING') AND created_at < $1
		ORDER BY created_at ASC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("list stale payments: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan stale payment id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stale payment rows: %w", err)
	}
	return ids, nil
}

// AppendEvents inserts event envelopes in the same transaction as the state
// change they record.
func (r *PaymentRepo) AppendEvents(ctx context.Context, tx pgx.Tx, envelopes []domain.EventEnvelope) error {
	query := `INSERT INTO payment_events (event_id, event_type, aggregate_id, occurred_at, payload)
		VALUES ($1, $2, $3, $4, $5)`

	for _, env := range envelopes {
		_, err := tx.Exec(ctx, query,
			env.EventID, env.EventType, env.AggregateID, env.OccurredAt, []byte(env.Payload))
		if err != nil {
			return fmt.Errorf("insert event %s: %w", env.EventType, err)
		}
	}
	return nil
}

// ListEvents returns an aggregate's event history, oldest first.
func (r *PaymentRepo) ListEvents(ctx context.Context, aggregateID uuid.UUID) ([]domain.EventEnvelope, error) {
	query := `SELECT event_id, event_type, aggregate_id, occurred_at, payload
		FROM payment_events WHERE aggregate_id = $1 ORDER BY occurred_at ASC`

	rows, err := r.pool.Query(ctx, query, aggregateID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var envelopes []domain.EventEnvelope
	for rows.Next() {
		var env domain.EventEnvelope
		var payload []byte
		if err := rows.Scan(&env.EventID, &env.EventType, &env.AggregateID, &env.OccurredAt, &payload); err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		env.Payload = payload
		envelopes = append(envelopes, env)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event rows: %w", err)
	}
	return envelopes, nil
}

func (r *PaymentRepo) scanAggregate(row pgx.Row) (*domain.PaymentAggregate, error) {
	agg, err := scanPaymentRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrNotFound("payment")
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return agg, nil
}

// scanPaymentRow reconstructs a payment aggregate from one row of
// paymentColumns.
func scanPaymentRow(row pgx.Row) (*domain.PaymentAggregate, error) {
	var (
		p           domain.Payment
		currency    string
		purposeJSON []byte
		refundMinor *int64
		metaJSON    []byte
		relatedJSON []byte
		version     int64
	)

	err := row.Scan(
		&p.ID, &p.PayerID, &p.PayeeID, &p.Amount.Value, &currency, &p.Method, &purposeJSON, &p.Status,
		&p.TransactionID, &p.BlockchainHash, &p.PlatformFee.Value, &p.NetAmount.Value,
		&p.FailureCode, &p.FailureMessage, &p.CancelReason, &refundMinor, &p.RefundedAt,
		&metaJSON, &relatedJSON, &version, &p.CreatedAt, &p.UpdatedAt, &p.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	cur := domain.Currency(currency)
	p.Amount.Currency = cur
	p.PlatformFee.Currency = cur
	p.NetAmount.Currency = cur
	if refundMinor != nil {
		p.RefundAmount = &domain.Amount{Value: *refundMinor, Currency: cur}
	}

	if err := json.Unmarshal(purposeJSON, &p.Purpose); err != nil {
		return nil, fmt.Errorf("unmarshal purpose: %w", err)
	}
	if len(metaJSON) > 0 {
		if err := json.Unmarshal(metaJSON, &p.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	var related []uuid.UUID
	if len(relatedJSON) > 0 {
		if err := json.Unmarshal(relatedJSON, &related); err != nil {
			return nil, fmt.Errorf("unmarshal related payments: %w", err)
		}
	}

	return domain.RehydratePayment(p, related, version), nil
}

// marshalPaymentJSON serializes the jsonb columns of a payment row.
func marshalPaymentJSON(agg *domain.PaymentAggregate) (purpose, metadata, related []byte, err error) {
	purpose, err = json.Marshal(agg.Payment.Purpose)
	if err != nil {
		return nil, nil, nil, apperror.ErrSerializationError(fmt.Errorf("marshal purpose: %w", err))
	}
	metadata, err = json.Marshal(agg.Payment.Metadata)
	if err != nil {
		return nil, nil, nil, apperror.ErrSerializationError(fmt.Errorf("marshal metadata: %w", err))
	}
	related, err = json.Marshal(agg.RelatedPayments)
	if err != nil {
		return nil, nil, nil, apperror.ErrSerializationError(fmt.Errorf("marshal related payments: %w", err))
	}
	return purpose, metadata, related, nil
}

func refundValue(a *domain.Amount) *int64 {
	if a == nil {
		return nil
	}
	return &a.Value
}
