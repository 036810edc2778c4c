package ports

import (
	"context"
	"time"

	"revenue-distribution-engine/internal/core/domain"

	"github.com/google/uuid"
)

// PaymentProcessingService is the settlement rail: it moves the money after
// the domain has committed to PROCESSING. Implementations may be the
// internal ledger or an external processor.
type PaymentProcessingService interface {
	ProcessPayment(ctx context.Context, payment *domain.Payment) (*ProcessingResult, error)
	ProcessRefund(ctx context.Context, original *domain.Payment, refundAmount domain.Amount) (*ProcessingResult, error)
}

// ProcessingResult holds the settlement outcome.
type ProcessingResult struct {
	Success        bool
	TransactionID  uuid.UUID
	BlockchainHash *string
	ErrorCode      string
	ErrorMessage   string
}

// FraudAction is the decision the fraud engine hands back.
type FraudAction string

const (
	FraudAllow               FraudAction = "ALLOW"
	FraudMonitor             FraudAction = "MONITOR"
	FraudRequireVerification FraudAction = "REQUIRE_VERIFICATION"
	FraudBlock               FraudAction = "BLOCK"
)

// FraudAssessment holds the risk evaluation for one payment attempt.
type FraudAssessment struct {
	RiskScore  int
	Indicators []string
	Action     FraudAction
}

// FraudDetectionService evaluates payments before they enter processing.
type FraudDetectionService interface {
	AnalyzePayment(ctx context.Context, payment *domain.Payment) (*FraudAssessment, error)
}

// PaymentNotificationService delivers domain events to downstream consumers.
type PaymentNotificationService interface {
	Notify(ctx context.Context, envelope domain.EventEnvelope) error
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// VelocityStore counts recent payment attempts per payer inside a sliding
// window, feeding the fraud engine's velocity rule.
type VelocityStore interface {
	Record(ctx context.Context, payerID uuid.UUID, window time.Duration) error
	CountRecent(ctx context.Context, payerID uuid.UUID, window time.Duration) (int64, error)
}

// HashService handles credential hashing (Argon2id).
type HashService interface {
	Hash(secret string) (string, error)
	Verify(secret string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(clientID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	ClientID string
}

// --- Service Ports (Business Logic) ---

// PaymentService defines the core payment business logic.
type PaymentService interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*domain.PaymentAggregate, error)
	ProcessPayment(ctx context.Context, paymentID uuid.UUID) (*domain.PaymentAggregate, error)
	CancelPayment(ctx context.Context, paymentID uuid.UUID, reason string) (*domain.PaymentAggregate, error)
	RefundPayment(ctx context.Context, req RefundPaymentRequest) (*domain.PaymentAggregate, error)
	GetPayment(ctx context.Context, paymentID uuid.UUID) (*domain.PaymentAggregate, error)
	ListPayments(ctx context.Context, params PaymentListParams) ([]domain.Payment, int64, error)
	GetPaymentEvents(ctx context.Context, paymentID uuid.UUID) ([]domain.EventEnvelope, error)
	// ReconcileStalePayments fails payments stuck in PENDING/PROCESSING past
	// the cutoff. Returns how many it resolved.
	ReconcileStalePayments(ctx context.Context, olderThan time.Time, limit int) (int, error)
}

// CreatePaymentRequest holds validated input for payment creation.
type CreatePaymentRequest struct {
	PayerID        uuid.UUID
	PayeeID        uuid.UUID
	AmountValue    int64
	Currency       string
	Method         domain.PaymentMethod
	Purpose        domain.PaymentPurpose
	Metadata       map[string]string
	IdempotencyKey string // Client-supplied token; empty disables the check
}

// RefundPaymentRequest holds validated input for refund processing.
type RefundPaymentRequest struct {
	PaymentID   uuid.UUID
	AmountValue *int64 // nil = full refund
	Reason      string
}

// RoyaltyService defines the royalty distribution workflow.
type RoyaltyService interface {
	CreateDistribution(ctx context.Context, req CreateRoyaltyRequest) (*domain.RoyaltyDistributionAggregate, error)
	ProcessDistribution(ctx context.Context, distributionID uuid.UUID) (*domain.RoyaltyDistributionAggregate, error)
	GetDistribution(ctx context.Context, distributionID uuid.UUID) (*domain.RoyaltyDistributionAggregate, error)
	ListDistributionsBySong(ctx context.Context, songID uuid.UUID) ([]*domain.RoyaltyDistributionAggregate, error)
}

// CreateRoyaltyRequest holds validated input for a royalty distribution.
type CreateRoyaltyRequest struct {
	SongID             uuid.UUID
	ArtistID           uuid.UUID
	TotalRevenueValue  int64
	Currency           string
	ArtistSharePercent float64
	PlatformFeePercent float64
	PeriodStart        time.Time
	PeriodEnd          time.Time
}

// RevenueSharingService defines the revenue sharing workflow.
type RevenueSharingService interface {
	CreateDistribution(ctx context.Context, req CreateRevenueSharingRequest) (*domain.RevenueSharingAggregate, error)
	ProcessDistribution(ctx context.Context, distributionID uuid.UUID) (*domain.RevenueSharingAggregate, error)
	GetDistribution(ctx context.Context, distributionID uuid.UUID) (*domain.RevenueSharingAggregate, error)
	ListDistributionsByContract(ctx context.Context, contractID uuid.UUID) ([]*domain.RevenueSharingAggregate, error)
}

// CreateRevenueSharingRequest holds validated input for a revenue sharing run.
type CreateRevenueSharingRequest struct {
	ContractID         uuid.UUID
	SongID             uuid.UUID
	TotalRevenueValue  int64
	Currency           string
	PlatformFeePercent float64
	Shareholders       []domain.ShareholderShare
}

// AuthService defines platform client authentication.
type AuthService interface {
	Login(ctx context.Context, clientID, apiKey string) (string, time.Time, error) // token, expiry, error
}
