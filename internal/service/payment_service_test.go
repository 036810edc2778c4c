package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/internal/core/ports"
	"revenue-distribution-engine/internal/core/ports/mocks"
	"revenue-distribution-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paymentTestDeps struct {
	svc         *PaymentServiceImpl
	paymentRepo *mocks.MockPaymentRepository
	idempRepo   *mocks.MockIdempotencyRepository
	idempCache  *mocks.MockIdempotencyCache
	feeRepo     *mocks.MockFeeScheduleRepository
	fraudSvc    *mocks.MockFraudDetectionService
	processor   *mocks.MockPaymentProcessingService
	notifier    *mocks.MockPaymentNotificationService
	transactor  *mocks.MockDBTransactor
	ctrl        *gomock.Controller
}

func setupPaymentService(t *testing.T) *paymentTestDeps {
	ctrl := gomock.NewController(t)
	d := &paymentTestDeps{
		paymentRepo: mocks.NewMockPaymentRepository(ctrl),
		idempRepo:   mocks.NewMockIdempotencyRepository(ctrl),
		idempCache:  mocks.NewMockIdempotencyCache(ctrl),
		feeRepo:     mocks.NewMockFeeScheduleRepository(ctrl),
		fraudSvc:    mocks.NewMockFraudDetectionService(ctrl),
		processor:   mocks.NewMockPaymentProcessingService(ctrl),
		notifier:    mocks.NewMockPaymentNotificationService(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewPaymentService(
		d.paymentRepo, d.idempRepo, d.idempCache, d.feeRepo,
		d.fraudSvc, d.processor, d.notifier, d.transactor, zerolog.Nop(),
	)
	// Events are delivered best-effort; individual tests assert state, not
	// delivery counts.
	d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func testFeeSchedule(t *testing.T) *domain.FeeSchedule {
	t.Helper()
	s, err := domain.NewFeeSchedule(1, "growth", 5.0, time.Now().UTC())
	require.NoError(t, err)
	return s
}

func allowAssessment() *ports.FraudAssessment {
	return &ports.FraudAssessment{RiskScore: 0, Action: ports.FraudAllow}
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

// ==================== CreatePayment Tests ====================

func TestPaymentService_CreatePayment_Success(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payerID := uuid.New()
	tx := &mockTx{}

	req := ports.CreatePaymentRequest{
		PayerID:        payerID,
		PayeeID:        uuid.New(),
		AmountValue:    10_000,
		Currency:       "USD",
		Method:         domain.MethodCreditCard,
		Purpose:        domain.NFTPurchasePurpose(uuid.New(), uuid.New()),
		IdempotencyKey: "order-001",
	}
	idempKey := domain.BuildIdempotencyKey(payerID, "order-001")

	d.idempCache.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.idempRepo.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.feeRepo.EXPECT().GetActive(ctx).Return(testFeeSchedule(t), nil)
	d.fraudSvc.EXPECT().AnalyzePayment(ctx, gomock.Any()).Return(allowAssessment(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.paymentRepo.EXPECT().AppendEvents(ctx, tx, gomock.Any()).Return(nil)
	d.idempRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.idempCache.EXPECT().Set(ctx, idempKey, gomock.Any(), idempotencyTTL).Return(nil)

	agg, err := d.svc.CreatePayment(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, agg)
	assert.Equal(t, domain.StatusPending, agg.Payment.Status)
	assert.Equal(t, int64(10_000), agg.Payment.Amount.Value)
	assert.Equal(t, int64(500), agg.Payment.PlatformFee.Value) // 5% fee
	assert.Equal(t, int64(9_500), agg.Payment.NetAmount.Value)
	assert.Equal(t, int64(1), agg.Version)
}

func TestPaymentService_CreatePayment_IdempotentReplayFromCache(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payerID := uuid.New()
	paymentID := uuid.New()

	idempKey := domain.BuildIdempotencyKey(payerID, "order-001")
	cached := []byte(`{"id":"` + paymentID.String() + `"}`)
	existing := domain.RehydratePayment(domain.Payment{ID: paymentID, Status: domain.StatusCompleted}, nil, 3)

	d.idempCache.EXPECT().Get(ctx, idempKey).Return(cached, nil)
	d.paymentRepo.EXPECT().GetByID(ctx, paymentID).Return(existing, nil)

	agg, err := d.svc.CreatePayment(ctx, ports.CreatePaymentRequest{
		PayerID:        payerID,
		PayeeID:        uuid.New(),
		AmountValue:    10_000,
		Currency:       "USD",
		Method:         domain.MethodCreditCard,
		Purpose:        domain.NFTPurchasePurpose(uuid.New(), uuid.New()),
		IdempotencyKey: "order-001",
	})
	require.NoError(t, err)
	assert.Equal(t, paymentID, agg.Payment.ID)
	assert.Equal(t, domain.StatusCompleted, agg.Payment.Status)
}

func TestPaymentService_CreatePayment_IdempotentReplayFromDB(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payerID := uuid.New()
	paymentID := uuid.New()
	idempKey := domain.BuildIdempotencyKey(payerID, "order-001")

	existing := domain.RehydratePayment(domain.Payment{ID: paymentID, Status: domain.StatusPending}, nil, 1)

	d.idempCache.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.idempRepo.EXPECT().Get(ctx, idempKey).Return(&domain.IdempotencyLog{
		Key:       idempKey,
		PaymentID: paymentID,
	}, nil)
	d.paymentRepo.EXPECT().GetByID(ctx, paymentID).Return(existing, nil)

	agg, err := d.svc.CreatePayment(ctx, ports.CreatePaymentRequest{
		PayerID:        payerID,
		PayeeID:        uuid.New(),
		AmountValue:    10_000,
		Currency:       "USD",
		Method:         domain.MethodCreditCard,
		Purpose:        domain.NFTPurchasePurpose(uuid.New(), uuid.New()),
		IdempotencyKey: "order-001",
	})
	require.NoError(t, err)
	assert.Equal(t, paymentID, agg.Payment.ID)
}

func TestPaymentService_CreatePayment_InvalidAmount(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.CreatePayment(context.Background(), ports.CreatePaymentRequest{
		PayerID:     uuid.New(),
		PayeeID:     uuid.New(),
		AmountValue: -5,
		Currency:    "USD",
		Method:      domain.MethodCreditCard,
		Purpose:     domain.NFTPurchasePurpose(uuid.New(), uuid.New()),
	})
	require.Error(t, err)
	assert.Equal(t, "VAL_001", appCode(t, err))
}

func TestPaymentService_CreatePayment_FraudBlocked(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.feeRepo.EXPECT().GetActive(ctx).Return(testFeeSchedule(t), nil)
	d.fraudSvc.EXPECT().AnalyzePayment(ctx, gomock.Any()).Return(&ports.FraudAssessment{
		RiskScore:  95,
		Indicators: []string{"critical_amount", "self_payment"},
		Action:     ports.FraudBlock,
	}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)

	var persisted *domain.PaymentAggregate
	d.paymentRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, agg *domain.PaymentAggregate) error {
			persisted = agg
			return nil
		})
	d.paymentRepo.EXPECT().AppendEvents(ctx, tx, gomock.Any()).Return(nil)

	agg, err := d.svc.CreatePayment(ctx, ports.CreatePaymentRequest{
		PayerID:     uuid.New(),
		PayeeID:     uuid.New(),
		AmountValue: 10_000,
		Currency:    "USD",
		Method:      domain.MethodCreditCard,
		Purpose:     domain.NFTPurchasePurpose(uuid.New(), uuid.New()),
	})
	require.Error(t, err)
	assert.Equal(t, "FRD_001", appCode(t, err))
	// The blocked attempt is on record as a FAILED payment.
	require.NotNil(t, agg)
	assert.Equal(t, domain.StatusFailed, agg.Payment.Status)
	assert.Equal(t, persisted, agg)
	assert.Equal(t, "FRAUD_BLOCKED", agg.Payment.FailureCode)
}

func TestPaymentService_CreatePayment_VerificationHold(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.feeRepo.EXPECT().GetActive(ctx).Return(testFeeSchedule(t), nil)
	d.fraudSvc.EXPECT().AnalyzePayment(ctx, gomock.Any()).Return(&ports.FraudAssessment{
		RiskScore: 65,
		Action:    ports.FraudRequireVerification,
	}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.paymentRepo.EXPECT().AppendEvents(ctx, tx, gomock.Any()).Return(nil)

	agg, err := d.svc.CreatePayment(ctx, ports.CreatePaymentRequest{
		PayerID:     uuid.New(),
		PayeeID:     uuid.New(),
		AmountValue: 10_000,
		Currency:    "USD",
		Method:      domain.MethodCreditCard,
		Purpose:     domain.NFTPurchasePurpose(uuid.New(), uuid.New()),
	})
	require.Error(t, err)
	assert.Equal(t, "FRD_002", appCode(t, err))
	require.NotNil(t, agg)
	assert.Equal(t, domain.StatusPending, agg.Payment.Status)
	assert.Equal(t, "true", agg.Payment.Metadata["verification_required"])
}

// ==================== ProcessPayment Tests ====================

func pendingPayment(t *testing.T) *domain.PaymentAggregate {
	t.Helper()
	agg, err := domain.NewPayment(
		uuid.New(), uuid.New(),
		domain.MustAmount(10_000, domain.CurrencyUSD),
		domain.MethodCreditCard,
		domain.NFTPurchasePurpose(uuid.New(), uuid.New()),
		domain.MustFeePercentage(5),
		nil,
	)
	require.NoError(t, err)
	agg.PullEvents()
	return agg
}

func TestPaymentService_ProcessPayment_Success(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	agg := pendingPayment(t)

	d.paymentRepo.EXPECT().GetByID(ctx, agg.Payment.ID).Return(agg, nil)
	// PROCESSING persisted first, then the settled state.
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil).Times(2)
	d.paymentRepo.EXPECT().Update(ctx, tx, agg).Return(nil).Times(2)
	d.paymentRepo.EXPECT().AppendEvents(ctx, tx, gomock.Any()).Return(nil).Times(2)
	d.processor.EXPECT().ProcessPayment(ctx, &agg.Payment).Return(&ports.ProcessingResult{
		Success:       true,
		TransactionID: uuid.New(),
	}, nil)

	result, err := d.svc.ProcessPayment(ctx, agg.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, result.Payment.Status)
	assert.NotNil(t, result.Payment.TransactionID)
	assert.NotNil(t, result.Payment.CompletedAt)
	assert.Equal(t, int64(3), result.Version)
}

func TestPaymentService_ProcessPayment_SettlementDeclined(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	agg := pendingPayment(t)

	d.paymentRepo.EXPECT().GetByID(ctx, agg.Payment.ID).Return(agg, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil).Times(2)
	d.paymentRepo.EXPECT().Update(ctx, tx, agg).Return(nil).Times(2)
	d.paymentRepo.EXPECT().AppendEvents(ctx, tx, gomock.Any()).Return(nil).Times(2)
	d.processor.EXPECT().ProcessPayment(ctx, &agg.Payment).Return(&ports.ProcessingResult{
		Success:      false,
		ErrorCode:    "INSUFFICIENT_FUNDS",
		ErrorMessage: "payer balance too low",
	}, nil)

	result, err := d.svc.ProcessPayment(ctx, agg.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, result.Payment.Status)
	assert.Equal(t, "INSUFFICIENT_FUNDS", result.Payment.FailureCode)
}

func TestPaymentService_ProcessPayment_AlreadyCompleted(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	agg := domain.RehydratePayment(domain.Payment{
		ID:     uuid.New(),
		Status: domain.StatusCompleted,
	}, nil, 3)

	d.paymentRepo.EXPECT().GetByID(ctx, agg.Payment.ID).Return(agg, nil)

	_, err := d.svc.ProcessPayment(ctx, agg.Payment.ID)
	require.Error(t, err)
	assert.Equal(t, "DOM_002", appCode(t, err))
}

func TestPaymentService_ProcessPayment_VerificationHoldBlocksProcessing(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	agg := domain.RehydratePayment(domain.Payment{
		ID:       uuid.New(),
		Status:   domain.StatusPending,
		Metadata: map[string]string{"verification_required": "true"},
	}, nil, 1)

	d.paymentRepo.EXPECT().GetByID(ctx, agg.Payment.ID).Return(agg, nil)

	_, err := d.svc.ProcessPayment(ctx, agg.Payment.ID)
	require.Error(t, err)
	assert.Equal(t, "FRD_002", appCode(t, err))
}

func TestPaymentService_ProcessPayment_ConcurrentConflict(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	agg := pendingPayment(t)

	d.paymentRepo.EXPECT().GetByID(ctx, agg.Payment.ID).Return(agg, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().Update(ctx, tx, agg).Return(apperror.ErrConcurrencyConflict("payment"))

	_, err := d.svc.ProcessPayment(ctx, agg.Payment.ID)
	require.Error(t, err)
	assert.Equal(t, "CON_001", appCode(t, err))
}

// ==================== CancelPayment Tests ====================

func TestPaymentService_CancelPayment(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	agg := pendingPayment(t)

	d.paymentRepo.EXPECT().GetByID(ctx, agg.Payment.ID).Return(agg, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().Update(ctx, tx, agg).Return(nil)
	d.paymentRepo.EXPECT().AppendEvents(ctx, tx, gomock.Any()).Return(nil)

	result, err := d.svc.CancelPayment(ctx, agg.Payment.ID, "user requested")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, result.Payment.Status)
	assert.Equal(t, "user requested", result.Payment.CancelReason)
}

// ==================== RefundPayment Tests ====================

func completedPayment(t *testing.T) *domain.PaymentAggregate {
	t.Helper()
	agg := pendingPayment(t)
	require.NoError(t, agg.StartProcessing(uuid.New()))
	require.NoError(t, agg.Complete(nil))
	agg.PullEvents()
	return agg
}

func TestPaymentService_RefundPayment_FullRefund(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	original := completedPayment(t)
	idempKey := domain.BuildRefundIdempotencyKey(original.Payment.PayerID, original.Payment.ID)

	d.paymentRepo.EXPECT().GetByID(ctx, original.Payment.ID).Return(original, nil)
	d.idempCache.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.idempRepo.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	// REFUNDING persisted first, then refund + original together.
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil).Times(2)
	d.paymentRepo.EXPECT().Update(ctx, tx, original).Return(nil).Times(2)
	d.paymentRepo.EXPECT().AppendEvents(ctx, tx, gomock.Any()).Return(nil).Times(3)
	d.processor.EXPECT().ProcessRefund(ctx, &original.Payment, original.Payment.Amount).Return(&ports.ProcessingResult{
		Success:       true,
		TransactionID: uuid.New(),
	}, nil)
	d.paymentRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.idempRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.idempCache.EXPECT().Set(ctx, idempKey, gomock.Any(), idempotencyTTL).Return(nil)

	refund, err := d.svc.RefundPayment(ctx, ports.RefundPaymentRequest{
		PaymentID: original.Payment.ID,
		Reason:    "item returned",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, refund.Payment.Status)
	assert.Equal(t, domain.PurposeRefund, refund.Payment.Purpose.Type)
	assert.Equal(t, original.Payment.Amount, refund.Payment.Amount)
	// Refund flows payee back to payer.
	assert.Equal(t, original.Payment.PayeeID, refund.Payment.PayerID)
	assert.Equal(t, original.Payment.PayerID, refund.Payment.PayeeID)

	assert.Equal(t, domain.StatusRefunded, original.Payment.Status)
	assert.Contains(t, original.RelatedPayments, refund.Payment.ID)
}

func TestPaymentService_RefundPayment_RetryAfterSettlementFailure(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	original := completedPayment(t)
	idempKey := domain.BuildRefundIdempotencyKey(original.Payment.PayerID, original.Payment.ID)

	d.paymentRepo.EXPECT().GetByID(ctx, original.Payment.ID).Return(original, nil).Times(2)
	d.idempCache.EXPECT().Get(ctx, idempKey).Return(nil, nil).Times(2)
	d.idempRepo.EXPECT().Get(ctx, idempKey).Return(nil, nil).Times(2)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil).Times(2)
	d.paymentRepo.EXPECT().Update(ctx, tx, original).Return(nil).Times(2)
	d.paymentRepo.EXPECT().AppendEvents(ctx, tx, gomock.Any()).Return(nil).Times(3)
	// The ledger declines the first settlement, then accepts the retry.
	d.processor.EXPECT().ProcessRefund(ctx, &original.Payment, original.Payment.Amount).Return(&ports.ProcessingResult{
		Success:      false,
		ErrorCode:    "REFUND_DECLINED",
		ErrorMessage: "ledger declined the refund",
	}, nil)
	d.processor.EXPECT().ProcessRefund(ctx, &original.Payment, original.Payment.Amount).Return(&ports.ProcessingResult{
		Success:       true,
		TransactionID: uuid.New(),
	}, nil)

	var created *domain.PaymentAggregate
	d.paymentRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, agg *domain.PaymentAggregate) error {
			created = agg
			return nil
		})
	d.idempRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.idempCache.EXPECT().Set(ctx, idempKey, gomock.Any(), idempotencyTTL).Return(nil)

	req := ports.RefundPaymentRequest{
		PaymentID: original.Payment.ID,
		Reason:    "chargeback",
	}

	_, err := d.svc.RefundPayment(ctx, req)
	require.Error(t, err)
	assert.Equal(t, "SYS_003", appCode(t, err))
	assert.Equal(t, domain.StatusRefunding, original.Payment.Status)
	require.Len(t, original.RelatedPayments, 1)
	reserved := original.RelatedPayments[0]

	// The retry resumes under the reserved refund id instead of rejecting
	// REFUNDING as an invalid state.
	refund, err := d.svc.RefundPayment(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, reserved, refund.Payment.ID)
	assert.Equal(t, domain.StatusCompleted, refund.Payment.Status)
	assert.Equal(t, created, refund)

	assert.Equal(t, domain.StatusRefunded, original.Payment.Status)
	assert.Equal(t, []uuid.UUID{reserved}, original.RelatedPayments)
}

func TestPaymentService_RefundPayment_ExceedsOriginal(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	original := completedPayment(t)
	idempKey := domain.BuildRefundIdempotencyKey(original.Payment.PayerID, original.Payment.ID)
	over := original.Payment.Amount.Value + 1

	d.paymentRepo.EXPECT().GetByID(ctx, original.Payment.ID).Return(original, nil)
	d.idempCache.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.idempRepo.EXPECT().Get(ctx, idempKey).Return(nil, nil)

	_, err := d.svc.RefundPayment(ctx, ports.RefundPaymentRequest{
		PaymentID:   original.Payment.ID,
		AmountValue: &over,
		Reason:      "too much",
	})
	require.Error(t, err)
	assert.Equal(t, "VAL_001", appCode(t, err))
	assert.Equal(t, domain.StatusCompleted, original.Payment.Status)
}

func TestPaymentService_RefundPayment_NotRefundable(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	original := pendingPayment(t)
	idempKey := domain.BuildRefundIdempotencyKey(original.Payment.PayerID, original.Payment.ID)

	d.paymentRepo.EXPECT().GetByID(ctx, original.Payment.ID).Return(original, nil)
	d.idempCache.EXPECT().Get(ctx, idempKey).Return(nil, nil)
	d.idempRepo.EXPECT().Get(ctx, idempKey).Return(nil, nil)

	_, err := d.svc.RefundPayment(ctx, ports.RefundPaymentRequest{
		PaymentID: original.Payment.ID,
		Reason:    "nope",
	})
	require.Error(t, err)
	assert.Equal(t, "DOM_002", appCode(t, err))
}

// ==================== Reconciliation Tests ====================

func TestPaymentService_ReconcileStalePayments(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	cutoff := time.Now().Add(-time.Hour)

	stale := pendingPayment(t)
	settled := domain.RehydratePayment(domain.Payment{
		ID:     uuid.New(),
		Status: domain.StatusCompleted,
	}, nil, 3)

	d.paymentRepo.EXPECT().ListStalePending(ctx, cutoff, 100).
		Return([]uuid.UUID{stale.Payment.ID, settled.Payment.ID}, nil)
	d.paymentRepo.EXPECT().GetByID(ctx, stale.Payment.ID).Return(stale, nil)
	d.paymentRepo.EXPECT().GetByID(ctx, settled.Payment.ID).Return(settled, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().Update(ctx, tx, stale).Return(nil)
	d.paymentRepo.EXPECT().AppendEvents(ctx, tx, gomock.Any()).Return(nil)

	resolved, err := d.svc.ReconcileStalePayments(ctx, cutoff, 100)
	require.NoError(t, err)
	// The already-settled payment is skipped, not an error.
	assert.Equal(t, 1, resolved)
	assert.Equal(t, domain.StatusFailed, stale.Payment.Status)
	assert.Equal(t, failureCodeTimeout, stale.Payment.FailureCode)
}

func TestPaymentService_ReconcileStalePayments_ListError(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.paymentRepo.EXPECT().ListStalePending(ctx, gomock.Any(), 50).
		Return(nil, errors.New("connection refused"))

	_, err := d.svc.ReconcileStalePayments(ctx, time.Now(), 50)
	require.Error(t, err)
	assert.Equal(t, "SYS_001", appCode(t, err))
}
