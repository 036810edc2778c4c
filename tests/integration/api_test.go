package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "revenue-distribution-engine/internal/adapter/http/handler"
	"revenue-distribution-engine/internal/adapter/processor"
	redisStorage "revenue-distribution-engine/internal/adapter/storage/redis"
	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/internal/core/ports"
	"revenue-distribution-engine/internal/service"
	"revenue-distribution-engine/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds a full application stack over in-memory repos and miniredis.
// This exercises the real HTTP layer, middleware, handlers, services and
// Redis stores end-to-end; only postgres is substituted.

const (
	testClientID = "royalty-worker"
	testAPIKey   = "test-api-key-001"
)

type testApp struct {
	server     *httptest.Server
	redis      *miniredis.Miniredis
	platformID uuid.UUID
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	// Redis stores
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	velocityStore := redisStorage.NewVelocityStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Core services with real implementations
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")

	apiKeyHash, err := hashSvc.Hash(testAPIKey)
	require.NoError(t, err)

	// In-memory repos
	paymentRepo := newInMemoryPaymentRepo()
	royaltyRepo := newInMemoryRoyaltyRepo()
	sharingRepo := newInMemorySharingRepo()
	idempotencyRepo := newInMemoryIdempotencyRepo()
	transactor := newInMemoryTransactor()

	schedule, err := domain.NewFeeSchedule(1, "standard", 5.0, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	feeRepo := newInMemoryFeeScheduleRepo(schedule)

	// Business services
	log := logger.New("api-test", "error", false)
	authSvc := service.NewAuthService(
		[]service.ClientCredential{{ID: testClientID, SecretHash: apiKeyHash}},
		hashSvc, tokenSvc, log,
	)
	fraudSvc := service.NewRuleFraudService(velocityStore, service.FraudConfig{
		HighAmountMinor:     5_000_000,
		CriticalAmountMinor: 20_000_000,
		VelocityLimit:       1000,
		VelocityWindow:      time.Minute,
	}, log)
	ledger := processor.NewLedgerProcessor(log)
	notifier := service.NewWebhookNotificationService("", "", http.DefaultClient, false, log)

	paymentSvc := service.NewPaymentService(
		paymentRepo, idempotencyRepo, idempotencyCache, feeRepo,
		fraudSvc, ledger, notifier, transactor, log,
	)
	platformID := uuid.New()
	distributionFee := domain.MustFeePercentage(0)
	royaltySvc := service.NewRoyaltyService(royaltyRepo, paymentRepo, paymentSvc, transactor, notifier, platformID, distributionFee, log)
	sharingSvc := service.NewRevenueSharingService(sharingRepo, paymentRepo, paymentSvc, transactor, notifier, platformID, distributionFee, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:           authSvc,
		PaymentSvc:        paymentSvc,
		RoyaltySvc:        royaltySvc,
		RevenueSharingSvc: sharingSvc,
		TokenSvc:          tokenSvc,
		RateLimitStore:    rateLimitStore,
		HealthCheckers:    []ports.HealthChecker{redisHealth},
		Logger:            log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server:     server,
		redis:      mr,
		platformID: platformID,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// doJSON issues one request against the test server and decodes the whole
// response body into a map.
func (a *testApp) doJSON(t *testing.T, method, path, token string, payload any) (int, map[string]interface{}) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.server.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// data unwraps the success envelope.
func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	d, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", body)
	return d
}

func loginToken(t *testing.T, app *testApp) string {
	t.Helper()
	status, body := app.doJSON(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"client_id": testClientID,
		"api_key":   testAPIKey,
	})
	require.Equal(t, http.StatusOK, status)
	return data(t, body)["token"].(string)
}

func nftPurchaseBody(payerID, payeeID uuid.UUID, amount int64, idempotencyKey string) map[string]interface{} {
	return map[string]interface{}{
		"payer_id":       payerID.String(),
		"payee_id":       payeeID.String(),
		"amount":         amount,
		"currency":       "USD",
		"payment_method": "PLATFORM_BALANCE",
		"purpose": map[string]interface{}{
			"type":    "NFT_PURCHASE",
			"nft_id":  uuid.New().String(),
			"song_id": uuid.New().String(),
		},
		"idempotency_key": idempotencyKey,
	}
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, body := app.doJSON(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])

	deps := body["dependencies"].(map[string]interface{})
	redisDep := deps["redis"].(map[string]interface{})
	assert.Equal(t, "healthy", redisDep["status"])
}

func TestIntegration_Login(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, body := app.doJSON(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"client_id": testClientID,
		"api_key":   testAPIKey,
	})
	require.Equal(t, http.StatusOK, status)
	d := data(t, body)
	assert.NotEmpty(t, d["token"])
	assert.Greater(t, d["expiry"].(float64), float64(time.Now().Unix()))
}

func TestIntegration_LoginWrongKey(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, body := app.doJSON(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"client_id": testClientID,
		"api_key":   "not-the-key",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_001", body["error_code"])
}

func TestIntegration_Unauthorized(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	status, body := app.doJSON(t, http.MethodGet, "/api/v1/payments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_003", body["error_code"])
}

func TestIntegration_PaymentLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := loginToken(t, app)

	payer, payee := uuid.New(), uuid.New()

	// Create: 5% platform fee on 10_000 minor units.
	status, body := app.doJSON(t, http.MethodPost, "/api/v1/payments", token,
		nftPurchaseBody(payer, payee, 10_000, "order-001"))
	require.Equal(t, http.StatusCreated, status)
	created := data(t, body)
	paymentID := created["id"].(string)
	assert.Equal(t, "PENDING", created["status"])
	assert.Equal(t, float64(500), created["platform_fee"].(map[string]interface{})["value"])
	assert.Equal(t, float64(9_500), created["net_amount"].(map[string]interface{})["value"])

	// A repeated idempotency key returns the same payment, not a duplicate.
	status, body = app.doJSON(t, http.MethodPost, "/api/v1/payments", token,
		nftPurchaseBody(payer, payee, 10_000, "order-001"))
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, paymentID, data(t, body)["id"])

	// Process to COMPLETED.
	status, body = app.doJSON(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/process", token, nil)
	require.Equal(t, http.StatusOK, status)
	processed := data(t, body)
	assert.Equal(t, "COMPLETED", processed["status"])
	assert.NotEmpty(t, processed["transaction_id"])
	assert.NotEmpty(t, processed["completed_at"])

	// Processing twice is an invalid transition, not a duplicate settlement.
	status, body = app.doJSON(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/process", token, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DOM_002", body["error_code"])

	// The event log carries the full history.
	status, body = app.doJSON(t, http.MethodGet, "/api/v1/payments/"+paymentID+"/events", token, nil)
	require.Equal(t, http.StatusOK, status)
	events := body["data"].([]interface{})
	assert.GreaterOrEqual(t, len(events), 3)
	for _, e := range events {
		ev := e.(map[string]interface{})
		assert.Equal(t, paymentID, ev["aggregate_id"])
		assert.NotEmpty(t, ev["event_type"])
	}
}

func TestIntegration_PaymentCancel(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := loginToken(t, app)

	status, body := app.doJSON(t, http.MethodPost, "/api/v1/payments", token,
		nftPurchaseBody(uuid.New(), uuid.New(), 10_000, ""))
	require.Equal(t, http.StatusCreated, status)
	paymentID := data(t, body)["id"].(string)

	status, body = app.doJSON(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/cancel", token,
		map[string]string{"reason": "buyer backed out"})
	require.Equal(t, http.StatusOK, status)
	cancelled := data(t, body)
	assert.Equal(t, "CANCELLED", cancelled["status"])
	assert.Equal(t, "buyer backed out", cancelled["cancel_reason"])

	// A cancelled payment cannot enter processing.
	status, body = app.doJSON(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/process", token, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DOM_002", body["error_code"])
}

func TestIntegration_PartialRefund(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := loginToken(t, app)

	payer, payee := uuid.New(), uuid.New()

	status, body := app.doJSON(t, http.MethodPost, "/api/v1/payments", token,
		nftPurchaseBody(payer, payee, 10_000, ""))
	require.Equal(t, http.StatusCreated, status)
	paymentID := data(t, body)["id"].(string)

	status, _ = app.doJSON(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/process", token, nil)
	require.Equal(t, http.StatusOK, status)

	// Partial refund of 4_000.
	amount := int64(4_000)
	status, body = app.doJSON(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/refund", token,
		map[string]interface{}{"amount": amount, "reason": "damaged goods"})
	require.Equal(t, http.StatusOK, status)
	refund := data(t, body)
	refundID := refund["id"].(string)
	assert.NotEqual(t, paymentID, refundID)
	assert.Equal(t, "COMPLETED", refund["status"])
	assert.Equal(t, "REFUND", refund["purpose"].(map[string]interface{})["type"])
	assert.Equal(t, paymentID, refund["purpose"].(map[string]interface{})["original_payment_id"])
	assert.Equal(t, float64(4_000), refund["amount"].(map[string]interface{})["value"])
	// The refund flows payee back to payer and carries no platform fee.
	assert.Equal(t, payee.String(), refund["payer_id"])
	assert.Equal(t, payer.String(), refund["payee_id"])
	assert.Equal(t, float64(0), refund["platform_fee"].(map[string]interface{})["value"])

	// The original is terminal as REFUNDED with the refunded amount on record.
	status, body = app.doJSON(t, http.MethodGet, "/api/v1/payments/"+paymentID, token, nil)
	require.Equal(t, http.StatusOK, status)
	original := data(t, body)
	assert.Equal(t, "REFUNDED", original["status"])
	assert.Equal(t, float64(4_000), original["refund_amount"].(map[string]interface{})["value"])
	assert.NotEmpty(t, original["refunded_at"])

	// Retrying the refund replays the first outcome.
	status, body = app.doJSON(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/refund", token,
		map[string]interface{}{"amount": amount, "reason": "damaged goods"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, refundID, data(t, body)["id"])
}

func TestIntegration_RefundPendingRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := loginToken(t, app)

	status, body := app.doJSON(t, http.MethodPost, "/api/v1/payments", token,
		nftPurchaseBody(uuid.New(), uuid.New(), 10_000, ""))
	require.Equal(t, http.StatusCreated, status)
	paymentID := data(t, body)["id"].(string)

	status, body = app.doJSON(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/refund", token,
		map[string]interface{}{"reason": "too early"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "DOM_002", body["error_code"])
}

func TestIntegration_RefundEventStream(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := loginToken(t, app)

	status, body := app.doJSON(t, http.MethodPost, "/api/v1/payments", token,
		nftPurchaseBody(uuid.New(), uuid.New(), 10_000, ""))
	require.Equal(t, http.StatusCreated, status)
	paymentID := data(t, body)["id"].(string)

	status, _ = app.doJSON(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/process", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, body = app.doJSON(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/refund", token,
		map[string]interface{}{"reason": "item returned"})
	require.Equal(t, http.StatusOK, status)
	refundID := data(t, body)["id"].(string)

	// The refund child's history is filed under its own id, starting from
	// its initiation.
	status, body = app.doJSON(t, http.MethodGet, "/api/v1/payments/"+refundID+"/events", token, nil)
	require.Equal(t, http.StatusOK, status)
	events := body["data"].([]interface{})
	var types []string
	for _, e := range events {
		ev := e.(map[string]interface{})
		assert.Equal(t, refundID, ev["aggregate_id"])
		types = append(types, ev["event_type"].(string))
	}
	assert.Contains(t, types, "PaymentInitiated")
	assert.Contains(t, types, "PaymentCompleted")
	assert.Contains(t, types, "RefundPaymentCompleted")
}

func TestIntegration_RefundRetryAfterSettlementFailure(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := loginToken(t, app)

	req := nftPurchaseBody(uuid.New(), uuid.New(), 10_000, "")
	req["metadata"] = map[string]string{"simulate_refund_failure": "true"}
	status, body := app.doJSON(t, http.MethodPost, "/api/v1/payments", token, req)
	require.Equal(t, http.StatusCreated, status)
	paymentID := data(t, body)["id"].(string)

	status, _ = app.doJSON(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/process", token, nil)
	require.Equal(t, http.StatusOK, status)

	// The ledger declines the refund; the original is parked in REFUNDING.
	status, body = app.doJSON(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/refund", token,
		map[string]interface{}{"reason": "chargeback"})
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "SYS_003", body["error_code"])

	status, body = app.doJSON(t, http.MethodGet, "/api/v1/payments/"+paymentID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "REFUNDING", data(t, body)["status"])

	// The retry reaches settlement again rather than being rejected as an
	// invalid transition out of REFUNDING.
	status, body = app.doJSON(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/refund", token,
		map[string]interface{}{"reason": "chargeback"})
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "SYS_003", body["error_code"])
}

func TestIntegration_FraudBlock(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := loginToken(t, app)

	// Critical amount plus a flagged source pushes the score past the block
	// threshold.
	req := nftPurchaseBody(uuid.New(), uuid.New(), 25_000_000, "")
	req["metadata"] = map[string]string{"flagged": "true"}

	status, body := app.doJSON(t, http.MethodPost, "/api/v1/payments", token, req)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FRD_001", body["error_code"])
}

func TestIntegration_FraudVerificationHold(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := loginToken(t, app)

	// High (not critical) amount plus a flagged source lands in the
	// verification tier: the payment parks in PENDING with a hold.
	req := nftPurchaseBody(uuid.New(), uuid.New(), 6_000_000, "")
	req["metadata"] = map[string]string{"flagged": "true"}

	status, body := app.doJSON(t, http.MethodPost, "/api/v1/payments", token, req)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FRD_002", body["error_code"])
}

func TestIntegration_ListPaymentsFiltered(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := loginToken(t, app)

	payer := uuid.New()
	for i := 0; i < 3; i++ {
		status, _ := app.doJSON(t, http.MethodPost, "/api/v1/payments", token,
			nftPurchaseBody(payer, uuid.New(), 10_000, ""))
		require.Equal(t, http.StatusCreated, status)
	}
	status, _ := app.doJSON(t, http.MethodPost, "/api/v1/payments", token,
		nftPurchaseBody(uuid.New(), uuid.New(), 10_000, ""))
	require.Equal(t, http.StatusCreated, status)

	status, body := app.doJSON(t, http.MethodGet, "/api/v1/payments?user_id="+payer.String()+"&page_size=2", token, nil)
	require.Equal(t, http.StatusOK, status)
	page := data(t, body)
	assert.Equal(t, float64(3), page["total"])
	assert.Len(t, page["items"].([]interface{}), 2)
	assert.Equal(t, float64(2), page["total_pages"])
}

func TestIntegration_RoyaltyLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := loginToken(t, app)

	songID, artistID := uuid.New(), uuid.New()

	status, body := app.doJSON(t, http.MethodPost, "/api/v1/royalties", token, map[string]interface{}{
		"song_id":              songID.String(),
		"artist_id":            artistID.String(),
		"total_revenue":        100_000,
		"currency":             "USD",
		"artist_share_percent": 85.0,
		"platform_fee_percent": 10.0,
		"period_start":         "2026-07-01T00:00:00Z",
		"period_end":           "2026-07-31T23:59:59Z",
	})
	require.Equal(t, http.StatusCreated, status)
	created := data(t, body)
	distID := created["id"].(string)
	assert.Equal(t, "PENDING", created["status"])
	assert.Equal(t, float64(85_000), created["artist_amount"].(map[string]interface{})["value"])
	assert.Equal(t, float64(10_000), created["platform_fee"].(map[string]interface{})["value"])

	status, body = app.doJSON(t, http.MethodPost, "/api/v1/royalties/"+distID+"/process", token, nil)
	require.Equal(t, http.StatusOK, status)
	processed := data(t, body)
	assert.Equal(t, "COMPLETED", processed["status"])
	paymentIDs := processed["payment_ids"].([]interface{})
	require.Len(t, paymentIDs, 1)

	// The artist payout is a real payment, settled platform -> artist.
	status, body = app.doJSON(t, http.MethodGet, "/api/v1/payments/"+paymentIDs[0].(string), token, nil)
	require.Equal(t, http.StatusOK, status)
	payout := data(t, body)
	assert.Equal(t, "COMPLETED", payout["status"])
	assert.Equal(t, "ROYALTY_DISTRIBUTION", payout["purpose"].(map[string]interface{})["type"])
	assert.Equal(t, app.platformID.String(), payout["payer_id"])
	assert.Equal(t, artistID.String(), payout["payee_id"])
	assert.Equal(t, float64(85_000), payout["amount"].(map[string]interface{})["value"])
	assert.Equal(t, float64(0), payout["platform_fee"].(map[string]interface{})["value"])

	status, body = app.doJSON(t, http.MethodGet, "/api/v1/royalties?song_id="+songID.String(), token, nil)
	require.Equal(t, http.StatusOK, status)
	list := data(t, body)
	assert.Equal(t, float64(1), list["total"])
}

func TestIntegration_RevenueSharingLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()
	token := loginToken(t, app)

	contractID, songID := uuid.New(), uuid.New()
	shareholderA, shareholderB := uuid.New(), uuid.New()

	status, body := app.doJSON(t, http.MethodPost, "/api/v1/revenue-sharing", token, map[string]interface{}{
		"contract_id":          contractID.String(),
		"song_id":              songID.String(),
		"total_revenue":        100_000,
		"currency":             "USD",
		"platform_fee_percent": 10.0,
		"shareholders": []map[string]interface{}{
			{"shareholder_id": shareholderA.String(), "percent": 60.0},
			{"shareholder_id": shareholderB.String(), "percent": 30.0},
		},
	})
	require.Equal(t, http.StatusCreated, status)
	created := data(t, body)
	distID := created["distribution_id"].(string)
	assert.Equal(t, "PENDING", created["status"])
	assert.Equal(t, float64(10_000), created["platform_fee"].(map[string]interface{})["value"])

	// 60% and 30% of the 90_000 left after the platform fee.
	wantAmounts := map[string]float64{
		shareholderA.String(): 54_000,
		shareholderB.String(): 27_000,
	}
	for _, s := range created["shareholders"].([]interface{}) {
		sh := s.(map[string]interface{})
		assert.Equal(t, wantAmounts[sh["shareholder_id"].(string)], sh["amount"].(map[string]interface{})["value"])
	}

	status, body = app.doJSON(t, http.MethodPost, "/api/v1/revenue-sharing/"+distID+"/process", token, nil)
	require.Equal(t, http.StatusOK, status)
	processed := data(t, body)
	assert.Equal(t, "COMPLETED", processed["status"])
	require.Len(t, processed["payment_ids"].([]interface{}), 2)

	for _, s := range processed["shareholders"].([]interface{}) {
		sh := s.(map[string]interface{})
		assert.Equal(t, "COMPLETED", sh["status"])
		require.NotEmpty(t, sh["payment_id"])

		status, body = app.doJSON(t, http.MethodGet, "/api/v1/payments/"+sh["payment_id"].(string), token, nil)
		require.Equal(t, http.StatusOK, status)
		payout := data(t, body)
		assert.Equal(t, "COMPLETED", payout["status"])
		assert.Equal(t, "REVENUE_DISTRIBUTION", payout["purpose"].(map[string]interface{})["type"])
		assert.Equal(t, sh["shareholder_id"], payout["payee_id"])
	}

	status, body = app.doJSON(t, http.MethodGet, "/api/v1/revenue-sharing?contract_id="+contractID.String(), token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), data(t, body)["total"])
}

func TestIntegration_LoginRateLimited(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// The login group allows 10 requests per window; the 11th is rejected.
	var lastStatus int
	var lastBody map[string]interface{}
	for i := 0; i < 11; i++ {
		lastStatus, lastBody = app.doJSON(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"client_id": testClientID,
			"api_key":   "wrong",
		})
	}
	assert.Equal(t, http.StatusTooManyRequests, lastStatus)
	assert.Equal(t, "RATE_001", lastBody["error_code"])
}
