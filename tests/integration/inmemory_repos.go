package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/internal/core/ports"
	"revenue-distribution-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// The in-memory repos mirror the postgres adapters' contract: not-found and
// version-conflict errors come back as the same apperror codes, and every
// read hands out an independent copy so concurrent callers observe snapshot
// semantics like they would with row scans.

// --- In-Memory Payment Repo ---

type inMemoryPaymentRepo struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]*domain.PaymentAggregate
	events   map[uuid.UUID][]domain.EventEnvelope
}

func newInMemoryPaymentRepo() *inMemoryPaymentRepo {
	return &inMemoryPaymentRepo{
		payments: make(map[uuid.UUID]*domain.PaymentAggregate),
		events:   make(map[uuid.UUID][]domain.EventEnvelope),
	}
}

func (r *inMemoryPaymentRepo) Create(ctx context.Context, tx pgx.Tx, agg *domain.PaymentAggregate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[agg.Payment.ID]; ok {
		return fmt.Errorf("payment %s already exists", agg.Payment.ID)
	}
	r.payments[agg.Payment.ID] = copyPaymentAggregate(agg)
	return nil
}

func (r *inMemoryPaymentRepo) Update(ctx context.Context, tx pgx.Tx, agg *domain.PaymentAggregate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.payments[agg.Payment.ID]
	if !ok {
		return apperror.ErrNotFound("payment")
	}
	// Same guard the UPDATE ... WHERE version < $new enforces in postgres.
	if stored.Version >= agg.Version {
		return apperror.ErrConcurrencyConflict("payment")
	}
	r.payments[agg.Payment.ID] = copyPaymentAggregate(agg)
	return nil
}

func (r *inMemoryPaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentAggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	agg, ok := r.payments[id]
	if !ok {
		return nil, apperror.ErrNotFound("payment")
	}
	return copyPaymentAggregate(agg), nil
}

func (r *inMemoryPaymentRepo) GetByTransactionID(ctx context.Context, transactionID uuid.UUID) (*domain.PaymentAggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, agg := range r.payments {
		if agg.Payment.TransactionID != nil && *agg.Payment.TransactionID == transactionID {
			return copyPaymentAggregate(agg), nil
		}
	}
	return nil, apperror.ErrNotFound("payment")
}

func (r *inMemoryPaymentRepo) List(ctx context.Context, params ports.PaymentListParams) ([]domain.Payment, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.Payment
	for _, agg := range r.payments {
		p := agg.Payment
		if params.UserID != nil && p.PayerID != *params.UserID && p.PayeeID != *params.UserID {
			continue
		}
		if params.Status != nil && p.Status != *params.Status {
			continue
		}
		if params.Purpose != nil && p.Purpose.Type != *params.Purpose {
			continue
		}
		if params.From != nil && p.CreatedAt.Before(*params.From) {
			continue
		}
		if params.To != nil && p.CreatedAt.After(*params.To) {
			continue
		}
		matched = append(matched, copyPaymentAggregate(agg).Payment)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	total := int64(len(matched))

	start := (params.Page - 1) * params.PageSize
	if start >= len(matched) {
		return []domain.Payment{}, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *inMemoryPaymentRepo) ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type stale struct {
		id        uuid.UUID
		createdAt time.Time
	}
	var found []stale
	for _, agg := range r.payments {
		p := agg.Payment
		if p.Status != domain.StatusPending && p.Status != domain.StatusProcessing {
			continue
		}
		if !p.CreatedAt.Before(olderThan) {
			continue
		}
		found = append(found, stale{id: p.ID, createdAt: p.CreatedAt})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].createdAt.Before(found[j].createdAt) })

	ids := make([]uuid.UUID, 0, len(found))
	for _, s := range found {
		if len(ids) == limit {
			break
		}
		ids = append(ids, s.id)
	}
	return ids, nil
}

func (r *inMemoryPaymentRepo) AppendEvents(ctx context.Context, tx pgx.Tx, envelopes []domain.EventEnvelope) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, env := range envelopes {
		r.events[env.AggregateID] = append(r.events[env.AggregateID], env)
	}
	return nil
}

func (r *inMemoryPaymentRepo) ListEvents(ctx context.Context, aggregateID uuid.UUID) ([]domain.EventEnvelope, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.EventEnvelope(nil), r.events[aggregateID]...), nil
}

func copyPaymentAggregate(agg *domain.PaymentAggregate) *domain.PaymentAggregate {
	p := agg.Payment
	if p.TransactionID != nil {
		v := *p.TransactionID
		p.TransactionID = &v
	}
	if p.BlockchainHash != nil {
		v := *p.BlockchainHash
		p.BlockchainHash = &v
	}
	if p.RefundAmount != nil {
		v := *p.RefundAmount
		p.RefundAmount = &v
	}
	if p.RefundedAt != nil {
		v := *p.RefundedAt
		p.RefundedAt = &v
	}
	if p.CompletedAt != nil {
		v := *p.CompletedAt
		p.CompletedAt = &v
	}
	if p.Metadata != nil {
		meta := make(map[string]string, len(p.Metadata))
		for k, v := range p.Metadata {
			meta[k] = v
		}
		p.Metadata = meta
	}
	related := append([]uuid.UUID(nil), agg.RelatedPayments...)
	return domain.RehydratePayment(p, related, agg.Version)
}

// --- In-Memory Royalty Distribution Repo ---

type inMemoryRoyaltyRepo struct {
	mu            sync.RWMutex
	distributions map[uuid.UUID]*domain.RoyaltyDistributionAggregate
}

func newInMemoryRoyaltyRepo() *inMemoryRoyaltyRepo {
	return &inMemoryRoyaltyRepo{distributions: make(map[uuid.UUID]*domain.RoyaltyDistributionAggregate)}
}

func (r *inMemoryRoyaltyRepo) Create(ctx context.Context, tx pgx.Tx, agg *domain.RoyaltyDistributionAggregate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.distributions[agg.ID]; ok {
		return fmt.Errorf("royalty distribution %s already exists", agg.ID)
	}
	r.distributions[agg.ID] = copyRoyaltyAggregate(agg)
	return nil
}

func (r *inMemoryRoyaltyRepo) Update(ctx context.Context, tx pgx.Tx, agg *domain.RoyaltyDistributionAggregate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.distributions[agg.ID]
	if !ok {
		return apperror.ErrNotFound("royalty distribution")
	}
	if stored.Version >= agg.Version {
		return apperror.ErrConcurrencyConflict("royalty distribution")
	}
	r.distributions[agg.ID] = copyRoyaltyAggregate(agg)
	return nil
}

func (r *inMemoryRoyaltyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoyaltyDistributionAggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	agg, ok := r.distributions[id]
	if !ok {
		return nil, apperror.ErrNotFound("royalty distribution")
	}
	return copyRoyaltyAggregate(agg), nil
}

func (r *inMemoryRoyaltyRepo) ListBySong(ctx context.Context, songID uuid.UUID) ([]*domain.RoyaltyDistributionAggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*domain.RoyaltyDistributionAggregate
	for _, agg := range r.distributions {
		if agg.SongID == songID {
			result = append(result, copyRoyaltyAggregate(agg))
		}
	}
	return result, nil
}

func copyRoyaltyAggregate(agg *domain.RoyaltyDistributionAggregate) *domain.RoyaltyDistributionAggregate {
	return domain.RehydrateRoyaltyDistribution(
		agg.ID, agg.SongID, agg.ArtistID,
		agg.TotalRevenue, agg.ArtistAmount, agg.PlatformFee,
		agg.ArtistSharePercentage, agg.PlatformFeePercentage,
		agg.PeriodStart, agg.PeriodEnd,
		agg.Status,
		append([]uuid.UUID(nil), agg.PaymentIDs...),
		agg.Version,
	)
}

// --- In-Memory Revenue Sharing Repo ---

type inMemorySharingRepo struct {
	mu            sync.RWMutex
	distributions map[uuid.UUID]*domain.RevenueSharingAggregate
}

func newInMemorySharingRepo() *inMemorySharingRepo {
	return &inMemorySharingRepo{distributions: make(map[uuid.UUID]*domain.RevenueSharingAggregate)}
}

func (r *inMemorySharingRepo) Create(ctx context.Context, tx pgx.Tx, agg *domain.RevenueSharingAggregate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.distributions[agg.DistributionID]; ok {
		return fmt.Errorf("revenue sharing distribution %s already exists", agg.DistributionID)
	}
	r.distributions[agg.DistributionID] = copySharingAggregate(agg)
	return nil
}

func (r *inMemorySharingRepo) Update(ctx context.Context, tx pgx.Tx, agg *domain.RevenueSharingAggregate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.distributions[agg.DistributionID]
	if !ok {
		return apperror.ErrNotFound("revenue sharing distribution")
	}
	if stored.Version >= agg.Version {
		return apperror.ErrConcurrencyConflict("revenue sharing distribution")
	}
	r.distributions[agg.DistributionID] = copySharingAggregate(agg)
	return nil
}

func (r *inMemorySharingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RevenueSharingAggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	agg, ok := r.distributions[id]
	if !ok {
		return nil, apperror.ErrNotFound("revenue sharing distribution")
	}
	return copySharingAggregate(agg), nil
}

func (r *inMemorySharingRepo) GetByChildPaymentID(ctx context.Context, paymentID uuid.UUID) (*domain.RevenueSharingAggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, agg := range r.distributions {
		for _, id := range agg.PaymentIDs {
			if id == paymentID {
				return copySharingAggregate(agg), nil
			}
		}
	}
	return nil, apperror.ErrNotFound("revenue sharing distribution")
}

func (r *inMemorySharingRepo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]*domain.RevenueSharingAggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*domain.RevenueSharingAggregate
	for _, agg := range r.distributions {
		if agg.ContractID == contractID {
			result = append(result, copySharingAggregate(agg))
		}
	}
	return result, nil
}

func copySharingAggregate(agg *domain.RevenueSharingAggregate) *domain.RevenueSharingAggregate {
	shareholders := make(map[uuid.UUID]*domain.ShareholderDistribution, len(agg.Shareholders))
	for id, sh := range agg.Shareholders {
		c := *sh
		if c.PaymentID != nil {
			v := *c.PaymentID
			c.PaymentID = &v
		}
		shareholders[id] = &c
	}
	return domain.RehydrateRevenueSharing(
		agg.DistributionID, agg.ContractID, agg.SongID,
		agg.TotalRevenue, agg.PlatformFee,
		shareholders,
		append([]uuid.UUID(nil), agg.PaymentIDs...),
		agg.Status, agg.Version,
	)
}

// --- In-Memory Idempotency Repo ---

type inMemoryIdempotencyRepo struct {
	mu   sync.RWMutex
	logs map[string]*domain.IdempotencyLog
}

func newInMemoryIdempotencyRepo() *inMemoryIdempotencyRepo {
	return &inMemoryIdempotencyRepo{logs: make(map[string]*domain.IdempotencyLog)}
}

func (r *inMemoryIdempotencyRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Mirrors the primary key on idempotency_logs: the second writer of a key
	// loses, which is what makes concurrent duplicates converge.
	if _, ok := r.logs[log.Key]; ok {
		return fmt.Errorf("idempotency key %s already exists", log.Key)
	}
	r.logs[log.Key] = log
	return nil
}

func (r *inMemoryIdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.logs[key]
	if !ok {
		return nil, nil
	}
	return l, nil
}

// --- In-Memory Fee Schedule Repo ---

type inMemoryFeeScheduleRepo struct {
	schedule *domain.FeeSchedule
}

func newInMemoryFeeScheduleRepo(schedule *domain.FeeSchedule) *inMemoryFeeScheduleRepo {
	return &inMemoryFeeScheduleRepo{schedule: schedule}
}

func (r *inMemoryFeeScheduleRepo) GetActive(ctx context.Context) (*domain.FeeSchedule, error) {
	return r.schedule, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
