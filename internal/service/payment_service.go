package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/internal/core/ports"
	"revenue-distribution-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const idempotencyTTL = 24 * time.Hour

// Failure codes stamped on payments the engine fails itself.
const (
	failureCodeFraudBlocked = "FRAUD_BLOCKED"
	failureCodeTimeout      = "PROCESSING_TIMEOUT"
	failureCodeProcessor    = "PROCESSOR_ERROR"
)

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	paymentRepo ports.PaymentRepository
	idempRepo   ports.IdempotencyRepository
	idempCache  ports.IdempotencyCache
	feeRepo     ports.FeeScheduleRepository
	fraudSvc    ports.FraudDetectionService
	processor   ports.PaymentProcessingService
	notifier    ports.PaymentNotificationService
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(
	paymentRepo ports.PaymentRepository,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	feeRepo ports.FeeScheduleRepository,
	fraudSvc ports.FraudDetectionService,
	processor ports.PaymentProcessingService,
	notifier ports.PaymentNotificationService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		paymentRepo: paymentRepo,
		idempRepo:   idempRepo,
		idempCache:  idempCache,
		feeRepo:     feeRepo,
		fraudSvc:    fraudSvc,
		processor:   processor,
		notifier:    notifier,
		transactor:  transactor,
		log:         log,
	}
}

// CreatePayment validates the command, runs the fraud gate and persists the
// new payment in PENDING. A repeated idempotency key returns the payment the
// first call created instead of creating a duplicate.
func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, req ports.CreatePaymentRequest) (*domain.PaymentAggregate, error) {
	amount, err := domain.NewAmount(req.AmountValue, domain.Currency(req.Currency))
	if err != nil {
		return nil, err
	}

	var idempKey string
	if req.IdempotencyKey != "" {
		idempKey = domain.BuildIdempotencyKey(req.PayerID, req.IdempotencyKey)

		// Layer 1: Redis idempotency check
		cached, err := s.idempCache.Get(ctx, idempKey)
		if err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("redis idempotency check failed, falling through to DB")
		}
		if cached != nil {
			return s.resolveCachedPayment(ctx, cached)
		}

		// Layer 2: DB idempotency check
		idempLog, err := s.idempRepo.Get(ctx, idempKey)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
		}
		if idempLog != nil {
			return s.paymentRepo.GetByID(ctx, idempLog.PaymentID)
		}
	}

	schedule, err := s.feeRepo.GetActive(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load fee schedule: %w", err))
	}

	agg, err := domain.NewPayment(
		req.PayerID, req.PayeeID,
		amount, req.Method, req.Purpose,
		schedule.FeeFor(req.PayerID),
		req.Metadata,
	)
	if err != nil {
		return nil, err
	}

	// Fraud gate. BLOCK persists the payment as FAILED so the attempt stays
	// on record; REQUIRE_VERIFICATION parks it in PENDING with a hold flag.
	assessment, err := s.fraudSvc.AnalyzePayment(ctx, &agg.Payment)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fraud analysis: %w", err))
	}

	var gateErr *apperror.AppError
	switch assessment.Action {
	case ports.FraudBlock:
		if err := agg.Fail(failureCodeFraudBlocked, fmt.Sprintf("risk score %d", assessment.RiskScore)); err != nil {
			return nil, err
		}
		gateErr = apperror.ErrFraudDetected()
	case ports.FraudRequireVerification:
		agg.Payment.Metadata["verification_required"] = "true"
		gateErr = apperror.ErrAdditionalVerificationRequired()
	case ports.FraudMonitor:
		agg.Payment.Metadata["fraud_monitor"] = "true"
	}

	events := agg.PullEvents()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.paymentRepo.Create(ctx, dbTx, agg); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create payment: %w", err))
	}
	if err := s.appendEvents(ctx, dbTx, events); err != nil {
		return nil, err
	}

	var respJSON []byte
	if idempKey != "" {
		respJSON, err = json.Marshal(agg.Payment)
		if err != nil {
			return nil, apperror.ErrSerializationError(fmt.Errorf("marshal response: %w", err))
		}
		idempLogEntry := &domain.IdempotencyLog{
			Key:          idempKey,
			PaymentID:    agg.Payment.ID,
			ResponseJSON: respJSON,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.idempRepo.Create(ctx, dbTx, idempLogEntry); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Post-process: cache in Redis (best-effort)
	if idempKey != "" {
		if err := s.idempCache.Set(ctx, idempKey, respJSON, idempotencyTTL); err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency in redis")
		}
	}
	s.publish(ctx, events)

	s.log.Info().
		Str("payment_id", agg.Payment.ID.String()).
		Str("payer_id", req.PayerID.String()).
		Str("status", string(agg.Payment.Status)).
		Str("amount", amount.String()).
		Int("risk_score", assessment.RiskScore).
		Msg("payment created")

	if gateErr != nil {
		return agg, gateErr
	}
	return agg, nil
}

// ProcessPayment drives a PENDING payment through settlement. The PROCESSING
// transition is persisted before the rail is called, so two workers racing
// on the same payment resolve by version conflict rather than double-charge.
func (s *PaymentServiceImpl) ProcessPayment(ctx context.Context, paymentID uuid.UUID) (*domain.PaymentAggregate, error) {
	agg, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if agg.Payment.Metadata["verification_required"] == "true" {
		return nil, apperror.ErrAdditionalVerificationRequired()
	}

	if err := agg.StartProcessing(uuid.New()); err != nil {
		return nil, err
	}
	if err := s.persistUpdate(ctx, agg); err != nil {
		return nil, err
	}

	result, err := s.processor.ProcessPayment(ctx, &agg.Payment)
	if err != nil {
		s.log.Error().Err(err).Str("payment_id", paymentID.String()).Msg("processor call failed")
		if failErr := agg.Fail(failureCodeProcessor, err.Error()); failErr != nil {
			return nil, failErr
		}
	} else if result.Success {
		if err := agg.Complete(result.BlockchainHash); err != nil {
			return nil, err
		}
	} else {
		if err := agg.Fail(result.ErrorCode, result.ErrorMessage); err != nil {
			return nil, err
		}
	}

	if err := s.persistUpdate(ctx, agg); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("payment_id", paymentID.String()).
		Str("status", string(agg.Payment.Status)).
		Msg("payment processed")

	return agg, nil
}

// CancelPayment cancels a payment that has not reached a terminal state.
func (s *PaymentServiceImpl) CancelPayment(ctx context.Context, paymentID uuid.UUID, reason string) (*domain.PaymentAggregate, error) {
	agg, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if err := agg.Cancel(reason); err != nil {
		return nil, err
	}
	if err := s.persistUpdate(ctx, agg); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("payment_id", paymentID.String()).
		Str("reason", reason).
		Msg("payment cancelled")

	return agg, nil
}

// RefundPayment refunds a COMPLETED payment, fully or partially. The refund
// is itself a payment flowing payee back to payer, linked to the original.
func (s *PaymentServiceImpl) RefundPayment(ctx context.Context, req ports.RefundPaymentRequest) (*domain.PaymentAggregate, error) {
	original, err := s.paymentRepo.GetByID(ctx, req.PaymentID)
	if err != nil {
		return nil, err
	}

	idempKey := domain.BuildRefundIdempotencyKey(original.Payment.PayerID, req.PaymentID)

	// Layer 1: Redis idempotency check
	cached, err := s.idempCache.Get(ctx, idempKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		return s.resolveCachedPayment(ctx, cached)
	}

	// Layer 2: DB idempotency check
	idempLog, err := s.idempRepo.Get(ctx, idempKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if idempLog != nil {
		return s.paymentRepo.GetByID(ctx, idempLog.PaymentID)
	}

	refundAmount := original.Payment.Amount
	if req.AmountValue != nil {
		refundAmount, err = domain.NewAmount(*req.AmountValue, original.Payment.Amount.Currency)
		if err != nil {
			return nil, err
		}
	}

	var refundID uuid.UUID
	if original.Payment.Status == domain.StatusRefunding {
		// A previous attempt persisted REFUNDING but its settlement failed.
		// Resume under the refund id the original reserved then, instead of
		// rejecting the retry as an invalid transition.
		if len(original.RelatedPayments) == 0 {
			return nil, apperror.ErrInvalidState(
				fmt.Sprintf("payment %s is refunding with no refund on record", original.Payment.ID))
		}
		refundID = original.RelatedPayments[len(original.RelatedPayments)-1]
	} else {
		refundID, err = original.StartRefund(refundAmount, req.Reason)
		if err != nil {
			return nil, err
		}

		// Persisting REFUNDING first makes the version guard absorb concurrent
		// refund attempts on the same payment.
		if err := s.persistUpdate(ctx, original); err != nil {
			return nil, err
		}
	}

	refund, err := domain.NewRefundPayment(refundID, &original.Payment, refundAmount, req.Reason)
	if err != nil {
		return nil, err
	}

	result, err := s.processor.ProcessRefund(ctx, &original.Payment, refundAmount)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("process refund: %w", err))
	}
	if !result.Success {
		// Original stays in REFUNDING; a retry resumes settlement under the
		// same reserved refund id.
		s.log.Error().
			Str("payment_id", req.PaymentID.String()).
			Str("error_code", result.ErrorCode).
			Msg("refund settlement failed")
		return nil, apperror.ErrNetworkError(fmt.Errorf("refund settlement: %s", result.ErrorMessage))
	}

	if err := refund.StartProcessing(result.TransactionID); err != nil {
		return nil, err
	}
	if err := refund.Complete(result.BlockchainHash); err != nil {
		return nil, err
	}
	if err := original.CompleteRefund(refundAmount); err != nil {
		return nil, err
	}

	refundEvents := refund.PullEvents()
	originalEvents := original.PullEvents()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// The version guard on the original goes first: a racing resume of the
	// same refund loses here with a conflict, before touching the child row.
	if err := s.paymentRepo.Update(ctx, dbTx, original); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Create(ctx, dbTx, refund); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create refund payment: %w", err))
	}
	if err := s.appendEvents(ctx, dbTx, refundEvents); err != nil {
		return nil, err
	}
	if err := s.appendEvents(ctx, dbTx, originalEvents); err != nil {
		return nil, err
	}

	respJSON, err := json.Marshal(refund.Payment)
	if err != nil {
		return nil, apperror.ErrSerializationError(fmt.Errorf("marshal response: %w", err))
	}
	idempLogEntry := &domain.IdempotencyLog{
		Key:          idempKey,
		PaymentID:    refund.Payment.ID,
		ResponseJSON: respJSON,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.idempRepo.Create(ctx, dbTx, idempLogEntry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Post-process: cache in Redis (best-effort)
	if err := s.idempCache.Set(ctx, idempKey, respJSON, idempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache idempotency in redis")
	}
	s.publish(ctx, refundEvents)
	s.publish(ctx, originalEvents)

	s.log.Info().
		Str("refund_id", refund.Payment.ID.String()).
		Str("original_payment_id", req.PaymentID.String()).
		Str("refund_amount", refundAmount.String()).
		Msg("refund processed")

	return refund, nil
}

// GetPayment returns one payment aggregate.
func (s *PaymentServiceImpl) GetPayment(ctx context.Context, paymentID uuid.UUID) (*domain.PaymentAggregate, error) {
	return s.paymentRepo.GetByID(ctx, paymentID)
}

// ListPayments returns a filtered page of payments with the total count.
func (s *PaymentServiceImpl) ListPayments(ctx context.Context, params ports.PaymentListParams) ([]domain.Payment, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	return s.paymentRepo.List(ctx, params)
}

// GetPaymentEvents returns the payment's event history, oldest first.
func (s *PaymentServiceImpl) GetPaymentEvents(ctx context.Context, paymentID uuid.UUID) ([]domain.EventEnvelope, error) {
	if _, err := s.paymentRepo.GetByID(ctx, paymentID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListEvents(ctx, paymentID)
}

// ReconcileStalePayments fails payments stuck in PENDING or PROCESSING past
// the cutoff. A version conflict on one payment means another worker got
// there first; the sweep skips it and moves on.
func (s *PaymentServiceImpl) ReconcileStalePayments(ctx context.Context, olderThan time.Time, limit int) (int, error) {
	ids, err := s.paymentRepo.ListStalePending(ctx, olderThan, limit)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list stale payments: %w", err))
	}

	resolved := 0
	for _, id := range ids {
		agg, err := s.paymentRepo.GetByID(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("payment_id", id.String()).Msg("reconcile: load failed")
			continue
		}
		if err := agg.Fail(failureCodeTimeout, "payment expired before settlement"); err != nil {
			continue // Already resolved by someone else
		}
		if err := s.persistUpdate(ctx, agg); err != nil {
			s.log.Warn().Err(err).Str("payment_id", id.String()).Msg("reconcile: persist failed")
			continue
		}
		resolved++
	}

	if resolved > 0 {
		s.log.Info().Int("resolved", resolved).Msg("stale payments reconciled")
	}
	return resolved, nil
}

// persistUpdate saves an aggregate under the optimistic version guard and
// appends its pending events in the same transaction.
func (s *PaymentServiceImpl) persistUpdate(ctx context.Context, agg *domain.PaymentAggregate) error {
	events := agg.PullEvents()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.paymentRepo.Update(ctx, dbTx, agg); err != nil {
		return err
	}
	if err := s.appendEvents(ctx, dbTx, events); err != nil {
		return err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, events)
	return nil
}

func (s *PaymentServiceImpl) appendEvents(ctx context.Context, dbTx pgx.Tx, events []domain.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	envelopes := make([]domain.EventEnvelope, 0, len(events))
	for _, e := range events {
		env, err := domain.Envelope(e)
		if err != nil {
			return apperror.ErrSerializationError(fmt.Errorf("envelope %s: %w", e.EventType(), err))
		}
		envelopes = append(envelopes, env)
	}
	if err := s.paymentRepo.AppendEvents(ctx, dbTx, envelopes); err != nil {
		return apperror.InternalError(fmt.Errorf("append events: %w", err))
	}
	return nil
}

// publish delivers events to the notification service best-effort. Delivery
// failures are logged, never surfaced; the event log remains the source of
// truth.
func (s *PaymentServiceImpl) publish(ctx context.Context, events []domain.DomainEvent) {
	if s.notifier == nil {
		return
	}
	for _, e := range events {
		env, err := domain.Envelope(e)
		if err != nil {
			s.log.Warn().Err(err).Str("event_type", e.EventType()).Msg("failed to envelope event for delivery")
			continue
		}
		if err := s.notifier.Notify(ctx, env); err != nil {
			s.log.Warn().Err(err).Str("event_type", env.EventType).Msg("event delivery failed")
		}
	}
}

// resolveCachedPayment maps a cached response back to the live aggregate so
// replays observe current state, not the snapshot taken at creation.
func (s *PaymentServiceImpl) resolveCachedPayment(ctx context.Context, data []byte) (*domain.PaymentAggregate, error) {
	var p domain.Payment
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, apperror.ErrSerializationError(fmt.Errorf("unmarshal cached payment: %w", err))
	}
	return s.paymentRepo.GetByID(ctx, p.ID)
}
