package dto

import "encoding/json"

// LoginRequest is the request body for platform client login.
type LoginRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	APIKey   string `json:"api_key" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// AmountDTO is a monetary value in smallest currency units.
type AmountDTO struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

// PurposeDTO carries the payment purpose discriminator and its variant
// foreign keys. Which keys are required depends on the type.
type PurposeDTO struct {
	Type              string  `json:"type" binding:"required"`
	NFTID             *string `json:"nft_id,omitempty"`
	SongID            *string `json:"song_id,omitempty"`
	ShareID           *string `json:"share_id,omitempty"`
	ContractID        *string `json:"contract_id,omitempty"`
	DistributionID    *string `json:"distribution_id,omitempty"`
	ListenSessionID   *string `json:"listen_session_id,omitempty"`
	OriginalPaymentID *string `json:"original_payment_id,omitempty"`
}

// CreatePaymentRequest is the request body for payment creation.
type CreatePaymentRequest struct {
	PayerID        string            `json:"payer_id" binding:"required,uuid"`
	PayeeID        string            `json:"payee_id" binding:"required,uuid"`
	Amount         int64             `json:"amount" binding:"required,gt=0"`
	Currency       string            `json:"currency" binding:"required,len=3"`
	PaymentMethod  string            `json:"payment_method" binding:"required"`
	Purpose        PurposeDTO        `json:"purpose" binding:"required"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	IdempotencyKey string            `json:"idempotency_key,omitempty" binding:"max=100"`
}

// RefundRequest is the request body for starting a refund.
type RefundRequest struct {
	Amount *int64 `json:"amount,omitempty" binding:"omitempty,gt=0"` // nil = full refund
	Reason string `json:"reason" binding:"required,max=255"`
}

// CancelRequest is the request body for cancelling a payment.
type CancelRequest struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

// PaymentResponse is the response body for a single payment.
type PaymentResponse struct {
	ID             string            `json:"id"`
	PayerID        string            `json:"payer_id"`
	PayeeID        string            `json:"payee_id"`
	Amount         AmountDTO         `json:"amount"`
	PaymentMethod  string            `json:"payment_method"`
	Purpose        PurposeDTO        `json:"purpose"`
	Status         string            `json:"status"`
	TransactionID  *string           `json:"transaction_id,omitempty"`
	BlockchainHash *string           `json:"blockchain_hash,omitempty"`
	PlatformFee    AmountDTO         `json:"platform_fee"`
	NetAmount      AmountDTO         `json:"net_amount"`
	FailureCode    string            `json:"failure_code,omitempty"`
	FailureMessage string            `json:"failure_message,omitempty"`
	CancelReason   string            `json:"cancel_reason,omitempty"`
	RefundAmount   *AmountDTO        `json:"refund_amount,omitempty"`
	RefundedAt     *string           `json:"refunded_at,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	CreatedAt      string            `json:"created_at"`
	CompletedAt    *string           `json:"completed_at,omitempty"`
}

// PaymentListResponse wraps a paginated payment list.
type PaymentListResponse struct {
	Items      []PaymentResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// EventResponse is one persisted domain event.
type EventResponse struct {
	EventID     string          `json:"event_id"`
	EventType   string          `json:"event_type"`
	AggregateID string          `json:"aggregate_id"`
	OccurredAt  string          `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

// CreateRoyaltyRequest is the request body for a royalty distribution.
type CreateRoyaltyRequest struct {
	SongID             string  `json:"song_id" binding:"required,uuid"`
	ArtistID           string  `json:"artist_id" binding:"required,uuid"`
	TotalRevenue       int64   `json:"total_revenue" binding:"required,gt=0"`
	Currency           string  `json:"currency" binding:"required,len=3"`
	ArtistSharePercent float64 `json:"artist_share_percent" binding:"required,gt=0,lte=100"`
	PlatformFeePercent float64 `json:"platform_fee_percent" binding:"gte=0,lte=100"`
	PeriodStart        string  `json:"period_start" binding:"required"` // RFC 3339
	PeriodEnd          string  `json:"period_end" binding:"required"`   // RFC 3339
}

// RoyaltyDistributionResponse is the response body for a royalty distribution.
type RoyaltyDistributionResponse struct {
	ID                 string    `json:"id"`
	SongID             string    `json:"song_id"`
	ArtistID           string    `json:"artist_id"`
	TotalRevenue       AmountDTO `json:"total_revenue"`
	ArtistAmount       AmountDTO `json:"artist_amount"`
	PlatformFee        AmountDTO `json:"platform_fee"`
	ArtistSharePercent float64   `json:"artist_share_percent"`
	PlatformFeePercent float64   `json:"platform_fee_percent"`
	PeriodStart        string    `json:"period_start"`
	PeriodEnd          string    `json:"period_end"`
	Status             string    `json:"status"`
	PaymentIDs         []string  `json:"payment_ids"`
}

// RoyaltyListResponse wraps a song's royalty distributions.
type RoyaltyListResponse struct {
	Items []RoyaltyDistributionResponse `json:"items"`
	Total int                           `json:"total"`
}

// ShareholderShareRequest is one shareholder in a revenue sharing request.
type ShareholderShareRequest struct {
	ShareholderID string  `json:"shareholder_id" binding:"required,uuid"`
	Percent       float64 `json:"percent" binding:"required,gt=0,lte=100"`
}

// CreateRevenueSharingRequest is the request body for a revenue sharing run.
type CreateRevenueSharingRequest struct {
	ContractID         string                    `json:"contract_id" binding:"required,uuid"`
	SongID             string                    `json:"song_id" binding:"required,uuid"`
	TotalRevenue       int64                     `json:"total_revenue" binding:"required,gt=0"`
	Currency           string                    `json:"currency" binding:"required,len=3"`
	PlatformFeePercent float64                   `json:"platform_fee_percent" binding:"gte=0,lte=100"`
	Shareholders       []ShareholderShareRequest `json:"shareholders" binding:"required,min=1,dive"`
}

// ShareholderDistributionResponse is one shareholder's cut and payout state.
type ShareholderDistributionResponse struct {
	ShareholderID    string    `json:"shareholder_id"`
	OwnershipPercent float64   `json:"ownership_percent"`
	Amount           AmountDTO `json:"amount"`
	Status           string    `json:"status"`
	PaymentID        *string   `json:"payment_id,omitempty"`
}

// RevenueSharingResponse is the response body for a revenue sharing distribution.
type RevenueSharingResponse struct {
	DistributionID string                            `json:"distribution_id"`
	ContractID     string                            `json:"contract_id"`
	SongID         string                            `json:"song_id"`
	TotalRevenue   AmountDTO                         `json:"total_revenue"`
	PlatformFee    AmountDTO                         `json:"platform_fee"`
	Shareholders   []ShareholderDistributionResponse `json:"shareholders"`
	PaymentIDs     []string                          `json:"payment_ids"`
	Status         string                            `json:"status"`
}

// RevenueSharingListResponse wraps a contract's revenue sharing runs.
type RevenueSharingListResponse struct {
	Items []RevenueSharingResponse `json:"items"`
	Total int                      `json:"total"`
}
