package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment(t *testing.T) *PaymentAggregate {
	t.Helper()
	agg, err := NewPayment(
		uuid.New(), uuid.New(),
		MustAmount(100, CurrencyUSD),
		MethodPlatformBalance,
		NFTPurchasePurpose(uuid.New(), uuid.New()),
		MustFeePercentage(5),
		map[string]string{"order": "test"},
	)
	require.NoError(t, err)
	return agg
}

// moveTo drives a fresh aggregate into the given status.
func moveTo(t *testing.T, agg *PaymentAggregate, status PaymentStatus) {
	t.Helper()
	switch status {
	case StatusPending:
	case StatusProcessing:
		require.NoError(t, agg.StartProcessing(uuid.New()))
	case StatusCompleted:
		require.NoError(t, agg.StartProcessing(uuid.New()))
		require.NoError(t, agg.Complete(nil))
	case StatusFailed:
		require.NoError(t, agg.StartProcessing(uuid.New()))
		require.NoError(t, agg.Fail("PROC_TIMEOUT", "processor timed out"))
	case StatusCancelled:
		require.NoError(t, agg.Cancel("user requested"))
	case StatusRefunding:
		require.NoError(t, agg.StartProcessing(uuid.New()))
		require.NoError(t, agg.Complete(nil))
		_, err := agg.StartRefund(MustAmount(40, CurrencyUSD), "partial return")
		require.NoError(t, err)
	case StatusRefunded:
		require.NoError(t, agg.StartProcessing(uuid.New()))
		require.NoError(t, agg.Complete(nil))
		_, err := agg.StartRefund(MustAmount(40, CurrencyUSD), "partial return")
		require.NoError(t, err)
		require.NoError(t, agg.CompleteRefund(MustAmount(40, CurrencyUSD)))
	default:
		t.Fatalf("unsupported status %s", status)
	}
	agg.PullEvents()
}

func eventTypes(events []DomainEvent) []string {
	types := make([]string, len(events))
	for i, e := range events {
		types[i] = e.EventType()
	}
	return types
}

func TestNewPayment(t *testing.T) {
	payer, payee := uuid.New(), uuid.New()
	agg, err := NewPayment(
		payer, payee,
		MustAmount(100, CurrencyUSD),
		MethodPlatformBalance,
		NFTPurchasePurpose(uuid.New(), uuid.New()),
		MustFeePercentage(5),
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, agg.Payment.Status)
	assert.Equal(t, int64(5), agg.Payment.PlatformFee.Value)
	assert.Equal(t, int64(95), agg.Payment.NetAmount.Value)
	assert.Equal(t, int64(1), agg.Version)
	assert.Empty(t, agg.RelatedPayments)

	events := agg.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "PaymentInitiated", events[0].EventType())
	assert.Equal(t, agg.Payment.ID, events[0].AggregateID())
	assert.Empty(t, agg.PullEvents(), "events drain once")
}

func TestNewPayment_Validation(t *testing.T) {
	nft, song := uuid.New(), uuid.New()

	tests := []struct {
		name     string
		payer    uuid.UUID
		method   PaymentMethod
		purpose  PaymentPurpose
		wantCode string
	}{
		{"nil payer", uuid.Nil, MethodPlatformBalance, NFTPurchasePurpose(nft, song), "VAL_001"},
		{"unknown method", uuid.New(), PaymentMethod("CASH"), NFTPurchasePurpose(nft, song), "VAL_001"},
		{"purpose missing keys", uuid.New(), MethodPlatformBalance, PaymentPurpose{Type: PurposeNFTPurchase}, "VAL_001"},
		{"unknown purpose", uuid.New(), MethodPlatformBalance, PaymentPurpose{Type: "GIFT"}, "VAL_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPayment(tt.payer, uuid.New(), MustAmount(100, CurrencyUSD),
				tt.method, tt.purpose, MustFeePercentage(5), nil)
			requireAppCode(t, err, tt.wantCode)
		})
	}
}

func TestPayment_Lifecycle_HappyPath(t *testing.T) {
	agg := newTestPayment(t)
	agg.PullEvents()

	txID := uuid.New()
	require.NoError(t, agg.StartProcessing(txID))
	assert.Equal(t, StatusProcessing, agg.Payment.Status)
	assert.Equal(t, &txID, agg.Payment.TransactionID)
	assert.Equal(t, int64(2), agg.Version)

	hash := "0xabc123"
	require.NoError(t, agg.Complete(&hash))
	assert.Equal(t, StatusCompleted, agg.Payment.Status)
	assert.NotNil(t, agg.Payment.CompletedAt)
	assert.Equal(t, &hash, agg.Payment.BlockchainHash)
	assert.Equal(t, int64(3), agg.Version)

	events := agg.PullEvents()
	assert.Equal(t,
		[]string{"PaymentProcessingStarted", "PaymentCompleted", "NFTPurchasePaymentCompleted"},
		eventTypes(events))
}

func TestPayment_StateMachine_IllegalTransitions(t *testing.T) {
	// Every (status, operation) pair not listed as legal must fail with an
	// invalid-state error and leave the status unchanged.
	type op struct {
		name string
		run  func(a *PaymentAggregate) error
	}
	ops := []op{
		{"start_processing", func(a *PaymentAggregate) error { return a.StartProcessing(uuid.New()) }},
		{"complete", func(a *PaymentAggregate) error { return a.Complete(nil) }},
		{"fail", func(a *PaymentAggregate) error { return a.Fail("X", "x") }},
		{"cancel", func(a *PaymentAggregate) error { return a.Cancel("x") }},
		{"start_refund", func(a *PaymentAggregate) error {
			_, err := a.StartRefund(MustAmount(10, CurrencyUSD), "x")
			return err
		}},
		{"complete_refund", func(a *PaymentAggregate) error { return a.CompleteRefund(MustAmount(10, CurrencyUSD)) }},
	}

	legal := map[PaymentStatus]map[string]bool{
		StatusPending:    {"start_processing": true, "fail": true, "cancel": true},
		StatusProcessing: {"complete": true, "fail": true, "cancel": true},
		StatusCompleted:  {"start_refund": true, "cancel": true},
		StatusRefunding:  {"complete_refund": true, "cancel": true},
		StatusFailed:     {},
		StatusCancelled:  {},
		StatusRefunded:   {},
	}

	for status, allowed := range legal {
		for _, o := range ops {
			if allowed[o.name] {
				continue
			}
			t.Run(string(status)+"/"+o.name, func(t *testing.T) {
				agg := newTestPayment(t)
				moveTo(t, agg, status)
				before := agg.Payment.Status

				err := o.run(agg)
				requireAppCode(t, err, "DOM_002")
				assert.Equal(t, before, agg.Payment.Status, "status must not change on rejection")
			})
		}
	}
}

func TestPayment_Fail_FromPending(t *testing.T) {
	// Pre-flight rejections fail a payment before processing ever starts.
	agg := newTestPayment(t)
	agg.PullEvents()

	require.NoError(t, agg.Fail("FRAUD_REVIEW", "manual review rejected"))
	assert.Equal(t, StatusFailed, agg.Payment.Status)
	assert.Equal(t, "FRAUD_REVIEW", agg.Payment.FailureCode)
	assert.Equal(t, "manual review rejected", agg.Payment.FailureMessage)

	events := agg.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "PaymentFailed", events[0].EventType())
}

func TestPayment_Fail_RequiresCode(t *testing.T) {
	agg := newTestPayment(t)
	moveTo(t, agg, StatusProcessing)

	requireAppCode(t, agg.Fail("", "no code"), "VAL_001")
	assert.Equal(t, StatusProcessing, agg.Payment.Status)
}

func TestPayment_Cancel(t *testing.T) {
	agg := newTestPayment(t)
	moveTo(t, agg, StatusProcessing)

	require.NoError(t, agg.Cancel("reconciliation: stuck in processing"))
	assert.Equal(t, StatusCancelled, agg.Payment.Status)
	assert.Equal(t, "reconciliation: stuck in processing", agg.Payment.CancelReason)
}

func TestPayment_StartRefund(t *testing.T) {
	agg := newTestPayment(t) // amount 100 USD
	moveTo(t, agg, StatusCompleted)

	// Over the original amount.
	_, err := agg.StartRefund(MustAmount(150, CurrencyUSD), "too much")
	requireAppCode(t, err, "VAL_001")
	assert.Equal(t, StatusCompleted, agg.Payment.Status)

	// Currency mismatch.
	_, err = agg.StartRefund(MustAmount(40, CurrencyEUR), "wrong currency")
	requireAppCode(t, err, "VAL_001")

	// Zero refund.
	_, err = agg.StartRefund(MustAmount(0, CurrencyUSD), "nothing")
	requireAppCode(t, err, "VAL_001")

	// Valid partial refund.
	refundID, err := agg.StartRefund(MustAmount(40, CurrencyUSD), "partial return")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, refundID)
	assert.NotEqual(t, agg.Payment.ID, refundID, "refund child gets a distinct id")
	assert.Equal(t, StatusRefunding, agg.Payment.Status)
	assert.Equal(t, []uuid.UUID{refundID}, agg.RelatedPayments)

	events := agg.PullEvents()
	require.Len(t, events, 1)
	started, ok := events[0].(PaymentRefundStarted)
	require.True(t, ok)
	assert.Equal(t, refundID, started.RefundPaymentID)
	assert.Equal(t, MustAmount(40, CurrencyUSD), started.RefundAmount)
}

func TestNewRefundPayment_KeyedToReservedID(t *testing.T) {
	agg := newTestPayment(t)
	moveTo(t, agg, StatusCompleted)

	refundID, err := agg.StartRefund(MustAmount(40, CurrencyUSD), "partial return")
	require.NoError(t, err)

	refund, err := NewRefundPayment(refundID, &agg.Payment, MustAmount(40, CurrencyUSD), "partial return")
	require.NoError(t, err)

	// The child and its initiation event carry the reserved id, so the id
	// PaymentRefundStarted cross-references is the one the event stream is
	// filed under.
	assert.Equal(t, refundID, refund.Payment.ID)
	events := refund.PullEvents()
	require.Len(t, events, 1)
	initiated, ok := events[0].(PaymentInitiated)
	require.True(t, ok)
	assert.Equal(t, refundID, initiated.PaymentID)
	assert.Equal(t, refundID, events[0].AggregateID())

	// Refund flows payee back to payer with no platform fee.
	assert.Equal(t, agg.Payment.PayeeID, refund.Payment.PayerID)
	assert.Equal(t, agg.Payment.PayerID, refund.Payment.PayeeID)
	assert.Equal(t, PurposeRefund, refund.Payment.Purpose.Type)
	assert.Equal(t, int64(0), refund.Payment.PlatformFee.Value)

	_, err = NewRefundPayment(uuid.Nil, &agg.Payment, MustAmount(40, CurrencyUSD), "no id")
	requireAppCode(t, err, "VAL_001")
}

func TestPayment_StartRefund_OnFailedPayment(t *testing.T) {
	agg := newTestPayment(t)
	moveTo(t, agg, StatusFailed)

	_, err := agg.StartRefund(MustAmount(40, CurrencyUSD), "no")
	requireAppCode(t, err, "DOM_002")
}

func TestPayment_CompleteRefund(t *testing.T) {
	agg := newTestPayment(t)
	moveTo(t, agg, StatusRefunding)

	refund := MustAmount(40, CurrencyUSD)
	require.NoError(t, agg.CompleteRefund(refund))

	assert.Equal(t, StatusRefunded, agg.Payment.Status)
	require.NotNil(t, agg.Payment.RefundAmount)
	assert.Equal(t, refund, *agg.Payment.RefundAmount)
	assert.NotNil(t, agg.Payment.RefundedAt)
	assert.True(t, agg.Payment.IsTerminal())
}

func TestPayment_CompletionEvent_PerPurpose(t *testing.T) {
	song, other, original := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name      string
		purpose   PaymentPurpose
		wantEvent string
	}{
		{"nft purchase", NFTPurchasePurpose(other, song), "NFTPurchasePaymentCompleted"},
		{"share purchase", SharePurchasePurpose(other, song), "SharePurchasePaymentCompleted"},
		{"share trade", ShareTradePurpose(other, song), "ShareTradePaymentCompleted"},
		{"royalty distribution", RoyaltyDistributionPurpose(other, song), "RoyaltyPaymentCompleted"},
		{"listen reward", ListenRewardPurpose(other, song), "ListenRewardDistributed"},
		{"revenue distribution", RevenueDistributionPurpose(other, song), "RevenueSharingPaymentProcessed"},
		{"platform fee", PlatformFeePurpose(other), "PlatformFeeCollected"},
		{"refund", RefundPurpose(original), "RefundPaymentCompleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg, err := NewPayment(uuid.New(), uuid.New(), MustAmount(500, CurrencyUSD),
				MethodPlatformBalance, tt.purpose, MustFeePercentage(0), nil)
			require.NoError(t, err)
			moveTo(t, agg, StatusProcessing)

			require.NoError(t, agg.Complete(nil))
			events := agg.PullEvents()
			require.Len(t, events, 2)
			assert.Equal(t, "PaymentCompleted", events[0].EventType())
			assert.Equal(t, tt.wantEvent, events[1].EventType())
		})
	}
}

func TestRehydratePayment(t *testing.T) {
	agg := newTestPayment(t)
	related := []uuid.UUID{uuid.New()}

	loaded := RehydratePayment(agg.Payment, related, 7)
	assert.Equal(t, agg.Payment.ID, loaded.Payment.ID)
	assert.Equal(t, int64(7), loaded.Version)
	assert.Equal(t, related, loaded.RelatedPayments)
	assert.Empty(t, loaded.PullEvents(), "rehydration emits nothing")
}

func TestPaymentStatus_Predicates(t *testing.T) {
	tests := []struct {
		status     PaymentStatus
		terminal   bool
		refundable bool
	}{
		{StatusPending, false, false},
		{StatusProcessing, false, false},
		{StatusCompleted, false, true},
		{StatusFailed, true, false},
		{StatusCancelled, true, false},
		{StatusRefunding, false, false},
		{StatusRefunded, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.refundable, tt.status.CanBeRefunded())
		})
	}
}
