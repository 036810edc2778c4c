package handler

import (
	"time"

	"revenue-distribution-engine/internal/adapter/http/dto"
	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/internal/core/ports"
	"revenue-distribution-engine/pkg/apperror"
	"revenue-distribution-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoyaltyHandler handles royalty distribution endpoints.
type RoyaltyHandler struct {
	royaltySvc ports.RoyaltyService
}

// NewRoyaltyHandler creates a new RoyaltyHandler.
func NewRoyaltyHandler(royaltySvc ports.RoyaltyService) *RoyaltyHandler {
	return &RoyaltyHandler{royaltySvc: royaltySvc}
}

// CreateDistribution handles POST /api/v1/royalties.
func (h *RoyaltyHandler) CreateDistribution(c *gin.Context) {
	var req dto.CreateRoyaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	periodStart, err := time.Parse(time.RFC3339, req.PeriodStart)
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput("period_start must be an RFC 3339 timestamp"))
		return
	}
	periodEnd, err := time.Parse(time.RFC3339, req.PeriodEnd)
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput("period_end must be an RFC 3339 timestamp"))
		return
	}

	agg, err := h.royaltySvc.CreateDistribution(c.Request.Context(), ports.CreateRoyaltyRequest{
		SongID:             uuid.MustParse(req.SongID),
		ArtistID:           uuid.MustParse(req.ArtistID),
		TotalRevenueValue:  req.TotalRevenue,
		Currency:           req.Currency,
		ArtistSharePercent: req.ArtistSharePercent,
		PlatformFeePercent: req.PlatformFeePercent,
		PeriodStart:        periodStart,
		PeriodEnd:          periodEnd,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toRoyaltyResponse(agg))
}

// ProcessDistribution handles POST /api/v1/royalties/:id/process.
func (h *RoyaltyHandler) ProcessDistribution(c *gin.Context) {
	id, err := pathID(c, "id", "distribution")
	if err != nil {
		response.Error(c, err)
		return
	}

	agg, err := h.royaltySvc.ProcessDistribution(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRoyaltyResponse(agg))
}

// GetDistribution handles GET /api/v1/royalties/:id.
func (h *RoyaltyHandler) GetDistribution(c *gin.Context) {
	id, err := pathID(c, "id", "distribution")
	if err != nil {
		response.Error(c, err)
		return
	}

	agg, err := h.royaltySvc.GetDistribution(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRoyaltyResponse(agg))
}

// ListDistributions handles GET /api/v1/royalties?song_id=...
func (h *RoyaltyHandler) ListDistributions(c *gin.Context) {
	songID, err := uuid.Parse(c.Query("song_id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput("song_id query parameter must be a UUID"))
		return
	}

	aggs, err := h.royaltySvc.ListDistributionsBySong(c.Request.Context(), songID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.RoyaltyDistributionResponse, 0, len(aggs))
	for _, agg := range aggs {
		items = append(items, toRoyaltyResponse(agg))
	}

	response.OK(c, dto.RoyaltyListResponse{Items: items, Total: len(items)})
}

// toRoyaltyResponse converts a royalty distribution aggregate to its DTO.
func toRoyaltyResponse(agg *domain.RoyaltyDistributionAggregate) dto.RoyaltyDistributionResponse {
	paymentIDs := make([]string, 0, len(agg.PaymentIDs))
	for _, id := range agg.PaymentIDs {
		paymentIDs = append(paymentIDs, id.String())
	}

	return dto.RoyaltyDistributionResponse{
		ID:                 agg.ID.String(),
		SongID:             agg.SongID.String(),
		ArtistID:           agg.ArtistID.String(),
		TotalRevenue:       amountToDTO(agg.TotalRevenue),
		ArtistAmount:       amountToDTO(agg.ArtistAmount),
		PlatformFee:        amountToDTO(agg.PlatformFee),
		ArtistSharePercent: agg.ArtistSharePercentage.Percent(),
		PlatformFeePercent: agg.PlatformFeePercentage.Percent(),
		PeriodStart:        agg.PeriodStart.Format(time.RFC3339),
		PeriodEnd:          agg.PeriodEnd.Format(time.RFC3339),
		Status:             string(agg.Status),
		PaymentIDs:         paymentIDs,
	}
}
