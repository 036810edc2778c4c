package ports

import (
	"context"
	"time"

	"revenue-distribution-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentRepository defines persistence operations for payment aggregates.
// Methods accepting pgx.Tx run inside transaction blocks; Update guards on
// the aggregate version and returns a concurrency conflict when the stored
// row has moved on.
type PaymentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, agg *domain.PaymentAggregate) error
	Update(ctx context.Context, tx pgx.Tx, agg *domain.PaymentAggregate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentAggregate, error)
	GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.PaymentAggregate, error)
	List(ctx context.Context, params PaymentListParams) ([]domain.Payment, int64, error)
	// ListStalePending returns payments still PENDING or PROCESSING past the
	// given cutoff, oldest first, for the reconciliation sweep.
	ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]uuid.UUID, error)

	// AppendEvents persists event envelopes in the same transaction as the
	// state change they describe.
	AppendEvents(ctx context.Context, tx pgx.Tx, envelopes []domain.EventEnvelope) error
	ListEvents(ctx context.Context, aggregateID uuid.UUID) ([]domain.EventEnvelope, error)
}

// PaymentListParams holds filter + pagination for listing payments.
type PaymentListParams struct {
	UserID   *uuid.UUID // Matches payer or payee
	Status   *domain.PaymentStatus
	Purpose  *domain.PurposeType
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// RoyaltyDistributionRepository defines persistence for royalty distributions.
type RoyaltyDistributionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, agg *domain.RoyaltyDistributionAggregate) error
	Update(ctx context.Context, tx pgx.Tx, agg *domain.RoyaltyDistributionAggregate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RoyaltyDistributionAggregate, error)
	ListBySong(ctx context.Context, songID uuid.UUID) ([]*domain.RoyaltyDistributionAggregate, error)
}

// RevenueSharingRepository defines persistence for revenue sharing distributions.
type RevenueSharingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, agg *domain.RevenueSharingAggregate) error
	Update(ctx context.Context, tx pgx.Tx, agg *domain.RevenueSharingAggregate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RevenueSharingAggregate, error)
	GetByChildPaymentID(ctx context.Context, paymentID uuid.UUID) (*domain.RevenueSharingAggregate, error)
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]*domain.RevenueSharingAggregate, error)
}

// IdempotencyRepository defines persistence for idempotency logs (DB backup).
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
}

// FeeScheduleRepository loads the active platform fee schedule.
type FeeScheduleRepository interface {
	GetActive(ctx context.Context) (*domain.FeeSchedule, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
