package handler

import (
	"sort"

	"revenue-distribution-engine/internal/adapter/http/dto"
	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/internal/core/ports"
	"revenue-distribution-engine/pkg/apperror"
	"revenue-distribution-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RevenueSharingHandler handles revenue sharing endpoints.
type RevenueSharingHandler struct {
	sharingSvc ports.RevenueSharingService
}

// NewRevenueSharingHandler creates a new RevenueSharingHandler.
func NewRevenueSharingHandler(sharingSvc ports.RevenueSharingService) *RevenueSharingHandler {
	return &RevenueSharingHandler{sharingSvc: sharingSvc}
}

// CreateDistribution handles POST /api/v1/revenue-sharing.
func (h *RevenueSharingHandler) CreateDistribution(c *gin.Context) {
	var req dto.CreateRevenueSharingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidInput(err.Error()))
		return
	}

	shares := make([]domain.ShareholderShare, 0, len(req.Shareholders))
	for _, s := range req.Shareholders {
		shares = append(shares, domain.ShareholderShare{
			ShareholderID: uuid.MustParse(s.ShareholderID),
			Percent:       s.Percent,
		})
	}

	agg, err := h.sharingSvc.CreateDistribution(c.Request.Context(), ports.CreateRevenueSharingRequest{
		ContractID:         uuid.MustParse(req.ContractID),
		SongID:             uuid.MustParse(req.SongID),
		TotalRevenueValue:  req.TotalRevenue,
		Currency:           req.Currency,
		PlatformFeePercent: req.PlatformFeePercent,
		Shareholders:       shares,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toRevenueSharingResponse(agg))
}

// ProcessDistribution handles POST /api/v1/revenue-sharing/:id/process.
func (h *RevenueSharingHandler) ProcessDistribution(c *gin.Context) {
	id, err := pathID(c, "id", "distribution")
	if err != nil {
		response.Error(c, err)
		return
	}

	agg, err := h.sharingSvc.ProcessDistribution(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRevenueSharingResponse(agg))
}

// GetDistribution handles GET /api/v1/revenue-sharing/:id.
func (h *RevenueSharingHandler) GetDistribution(c *gin.Context) {
	id, err := pathID(c, "id", "distribution")
	if err != nil {
		response.Error(c, err)
		return
	}

	agg, err := h.sharingSvc.GetDistribution(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRevenueSharingResponse(agg))
}

// ListDistributions handles GET /api/v1/revenue-sharing?contract_id=...
func (h *RevenueSharingHandler) ListDistributions(c *gin.Context) {
	contractID, err := uuid.Parse(c.Query("contract_id"))
	if err != nil {
		response.Error(c, apperror.ErrInvalidInput("contract_id query parameter must be a UUID"))
		return
	}

	aggs, err := h.sharingSvc.ListDistributionsByContract(c.Request.Context(), contractID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.RevenueSharingResponse, 0, len(aggs))
	for _, agg := range aggs {
		items = append(items, toRevenueSharingResponse(agg))
	}

	response.OK(c, dto.RevenueSharingListResponse{Items: items, Total: len(items)})
}

// toRevenueSharingResponse converts a revenue sharing aggregate to its DTO.
// Shareholders are sorted by id so responses are stable.
func toRevenueSharingResponse(agg *domain.RevenueSharingAggregate) dto.RevenueSharingResponse {
	shareholders := make([]dto.ShareholderDistributionResponse, 0, len(agg.Shareholders))
	for _, sh := range agg.Shareholders {
		item := dto.ShareholderDistributionResponse{
			ShareholderID:    sh.ShareholderID.String(),
			OwnershipPercent: sh.OwnershipPercentage.Percent(),
			Amount:           amountToDTO(sh.Amount),
			Status:           string(sh.Status),
		}
		if sh.PaymentID != nil {
			s := sh.PaymentID.String()
			item.PaymentID = &s
		}
		shareholders = append(shareholders, item)
	}
	sort.Slice(shareholders, func(i, j int) bool {
		return shareholders[i].ShareholderID < shareholders[j].ShareholderID
	})

	paymentIDs := make([]string, 0, len(agg.PaymentIDs))
	for _, id := range agg.PaymentIDs {
		paymentIDs = append(paymentIDs, id.String())
	}

	return dto.RevenueSharingResponse{
		DistributionID: agg.DistributionID.String(),
		ContractID:     agg.ContractID.String(),
		SongID:         agg.SongID.String(),
		TotalRevenue:   amountToDTO(agg.TotalRevenue),
		PlatformFee:    amountToDTO(agg.PlatformFee),
		Shareholders:   shareholders,
		PaymentIDs:     paymentIDs,
		Status:         string(agg.Status),
	}
}
