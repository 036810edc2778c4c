package handler

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"revenue-distribution-engine/internal/adapter/http/dto"
	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/internal/core/ports"
	"revenue-distribution-engine/pkg/apperror"
	"revenue-distribution-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles payment lifecycle endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// CreatePayment handles POST /api/v1/payments.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	purpose, err := purposeFromDTO(req.Purpose)
	if err != nil {
		response.Error(c, err)
		return
	}

	agg, err := h.paymentSvc.CreatePayment(c.Request.Context(), ports.CreatePaymentRequest{
		PayerID:        uuid.MustParse(req.PayerID),
		PayeeID:        uuid.MustParse(req.PayeeID),
		AmountValue:    req.Amount,
		Currency:       req.Currency,
		Method:         domain.PaymentMethod(req.PaymentMethod),
		Purpose:        purpose,
		Metadata:       req.Metadata,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toPaymentResponse(agg))
}

// GetPayment handles GET /api/v1/payments/:id.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := pathID(c, "id", "payment")
	if err != nil {
		response.Error(c, err)
		return
	}

	agg, err := h.paymentSvc.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPaymentResponse(agg))
}

// ListPayments handles GET /api/v1/payments.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	params := ports.PaymentListParams{
		Page:     page,
		PageSize: pageSize,
	}

	if u := c.Query("user_id"); u != "" {
		id, err := uuid.Parse(u)
		if err != nil {
			response.Error(c, apperror.ErrInvalidInput("user_id must be a UUID"))
			return
		}
		params.UserID = &id
	}
	if s := c.Query("status"); s != "" {
		status := domain.PaymentStatus(s)
		params.Status = &status
	}
	if p := c.Query("purpose"); p != "" {
		purpose := domain.PurposeType(p)
		params.Purpose = &purpose
	}
	if f := c.Query("from"); f != "" {
		if t, err := time.Parse(time.RFC3339, f); err == nil {
			params.From = &t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			params.To = &t
		}
	}

	payments, total, err := h.paymentSvc.ListPayments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		items = append(items, paymentToDTO(&payments[i]))
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	response.OK(c, dto.PaymentListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// ProcessPayment handles POST /api/v1/payments/:id/process.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	id, err := pathID(c, "id", "payment")
	if err != nil {
		response.Error(c, err)
		return
	}

	agg, err := h.paymentSvc.ProcessPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPaymentResponse(agg))
}

// CancelPayment handles POST /api/v1/payments/:id/cancel.
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	id, err := pathID(c, "id", "payment")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	agg, err := h.paymentSvc.CancelPayment(c.Request.Context(), id, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPaymentResponse(agg))
}

// RefundPayment handles POST /api/v1/payments/:id/refund.
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	id, err := pathID(c, "id", "payment")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	agg, err := h.paymentSvc.RefundPayment(c.Request.Context(), ports.RefundPaymentRequest{
		PaymentID:   id,
		AmountValue: req.Amount,
		Reason:      req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toPaymentResponse(agg))
}

// ListEvents handles GET /api/v1/payments/:id/events.
func (h *PaymentHandler) ListEvents(c *gin.Context) {
	id, err := pathID(c, "id", "payment")
	if err != nil {
		response.Error(c, err)
		return
	}

	envelopes, err := h.paymentSvc.GetPaymentEvents(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.EventResponse, 0, len(envelopes))
	for _, e := range envelopes {
		items = append(items, dto.EventResponse{
			EventID:     e.EventID.String(),
			EventType:   e.EventType,
			AggregateID: e.AggregateID.String(),
			OccurredAt:  e.OccurredAt.Format(time.RFC3339),
			Payload:     e.Payload,
		})
	}

	response.OK(c, items)
}

// pathID parses a UUID path parameter.
func pathID(c *gin.Context, param, entity string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, apperror.ErrInvalidInput(fmt.Sprintf("%s id must be a UUID", entity))
	}
	return id, nil
}

// purposeFromDTO parses the DTO's string foreign keys into a domain purpose
// and validates the variant's required keys.
func purposeFromDTO(d dto.PurposeDTO) (domain.PaymentPurpose, error) {
	purpose := domain.PaymentPurpose{Type: domain.PurposeType(d.Type)}

	for field, pair := range map[string]struct {
		src *string
		dst **uuid.UUID
	}{
		"nft_id":              {d.NFTID, &purpose.NFTID},
		"song_id":             {d.SongID, &purpose.SongID},
		"share_id":            {d.ShareID, &purpose.ShareID},
		"contract_id":         {d.ContractID, &purpose.ContractID},
		"distribution_id":     {d.DistributionID, &purpose.DistributionID},
		"listen_session_id":   {d.ListenSessionID, &purpose.ListenSessionID},
		"original_payment_id": {d.OriginalPaymentID, &purpose.OriginalPaymentID},
	} {
		if pair.src == nil {
			continue
		}
		id, err := uuid.Parse(*pair.src)
		if err != nil {
			return domain.PaymentPurpose{}, apperror.ErrInvalidInput(
				fmt.Sprintf("purpose %s must be a UUID", field))
		}
		*pair.dst = &id
	}

	if err := purpose.Validate(); err != nil {
		return domain.PaymentPurpose{}, err
	}
	return purpose, nil
}

// toPaymentResponse converts a payment aggregate to its DTO.
func toPaymentResponse(agg *domain.PaymentAggregate) dto.PaymentResponse {
	return paymentToDTO(&agg.Payment)
}

func paymentToDTO(p *domain.Payment) dto.PaymentResponse {
	resp := dto.PaymentResponse{
		ID:             p.ID.String(),
		PayerID:        p.PayerID.String(),
		PayeeID:        p.PayeeID.String(),
		Amount:         amountToDTO(p.Amount),
		PaymentMethod:  string(p.Method),
		Purpose:        purposeToDTO(p.Purpose),
		Status:         string(p.Status),
		BlockchainHash: p.BlockchainHash,
		PlatformFee:    amountToDTO(p.PlatformFee),
		NetAmount:      amountToDTO(p.NetAmount),
		FailureCode:    p.FailureCode,
		FailureMessage: p.FailureMessage,
		CancelReason:   p.CancelReason,
		Metadata:       p.Metadata,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
	if p.TransactionID != nil {
		s := p.TransactionID.String()
		resp.TransactionID = &s
	}
	if p.RefundAmount != nil {
		a := amountToDTO(*p.RefundAmount)
		resp.RefundAmount = &a
	}
	if p.RefundedAt != nil {
		s := p.RefundedAt.Format(time.RFC3339)
		resp.RefundedAt = &s
	}
	if p.CompletedAt != nil {
		s := p.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	return resp
}

func amountToDTO(a domain.Amount) dto.AmountDTO {
	return dto.AmountDTO{Value: a.Value, Currency: string(a.Currency)}
}

func purposeToDTO(p domain.PaymentPurpose) dto.PurposeDTO {
	uuidStr := func(id *uuid.UUID) *string {
		if id == nil {
			return nil
		}
		s := id.String()
		return &s
	}
	return dto.PurposeDTO{
		Type:              string(p.Type),
		NFTID:             uuidStr(p.NFTID),
		SongID:            uuidStr(p.SongID),
		ShareID:           uuidStr(p.ShareID),
		ContractID:        uuidStr(p.ContractID),
		DistributionID:    uuidStr(p.DistributionID),
		ListenSessionID:   uuidStr(p.ListenSessionID),
		OriginalPaymentID: uuidStr(p.OriginalPaymentID),
	}
}
