package domain

import (
	"fmt"

	"revenue-distribution-engine/pkg/apperror"

	"github.com/google/uuid"
)

// PurposeType is the closed set of payment purposes. Adding a purpose means
// extending this set and revisiting every switch over it, in particular the
// completion-event fan-out in PaymentAggregate.Complete.
type PurposeType string

const (
	PurposeNFTPurchase         PurposeType = "NFT_PURCHASE"
	PurposeSharePurchase       PurposeType = "SHARE_PURCHASE"
	PurposeShareTrade          PurposeType = "SHARE_TRADE"
	PurposeRoyaltyDistribution PurposeType = "ROYALTY_DISTRIBUTION"
	PurposeListenReward        PurposeType = "LISTEN_REWARD"
	PurposeRevenueDistribution PurposeType = "REVENUE_DISTRIBUTION"
	PurposePlatformFee         PurposeType = "PLATFORM_FEE"
	PurposeRefund              PurposeType = "REFUND"
)

// PaymentPurpose identifies why a payment exists and carries the foreign
// keys needed to reconcile it against the originating bounded context.
// Immutable once the payment is created.
type PaymentPurpose struct {
	Type PurposeType `json:"type"`

	// Variant foreign keys. Which ones are set depends on Type.
	NFTID             *uuid.UUID `json:"nft_id,omitempty"`
	SongID            *uuid.UUID `json:"song_id,omitempty"`
	ShareID           *uuid.UUID `json:"share_id,omitempty"`
	ContractID        *uuid.UUID `json:"contract_id,omitempty"`
	DistributionID    *uuid.UUID `json:"distribution_id,omitempty"`
	ListenSessionID   *uuid.UUID `json:"listen_session_id,omitempty"`
	OriginalPaymentID *uuid.UUID `json:"original_payment_id,omitempty"`
}

// NFTPurchasePurpose builds the purpose for an NFT sale payment.
func NFTPurchasePurpose(nftID, songID uuid.UUID) PaymentPurpose {
	return PaymentPurpose{Type: PurposeNFTPurchase, NFTID: &nftID, SongID: &songID}
}

// SharePurchasePurpose builds the purpose for a primary share sale payment.
func SharePurchasePurpose(shareID, songID uuid.UUID) PaymentPurpose {
	return PaymentPurpose{Type: PurposeSharePurchase, ShareID: &shareID, SongID: &songID}
}

// ShareTradePurpose builds the purpose for a secondary-market share trade.
func ShareTradePurpose(shareID, contractID uuid.UUID) PaymentPurpose {
	return PaymentPurpose{Type: PurposeShareTrade, ShareID: &shareID, ContractID: &contractID}
}

// RoyaltyDistributionPurpose builds the purpose for an artist royalty payout.
func RoyaltyDistributionPurpose(distributionID, songID uuid.UUID) PaymentPurpose {
	return PaymentPurpose{Type: PurposeRoyaltyDistribution, DistributionID: &distributionID, SongID: &songID}
}

// ListenRewardPurpose builds the purpose for a per-listen reward payout.
func ListenRewardPurpose(listenSessionID, songID uuid.UUID) PaymentPurpose {
	return PaymentPurpose{Type: PurposeListenReward, ListenSessionID: &listenSessionID, SongID: &songID}
}

// RevenueDistributionPurpose builds the purpose for a shareholder payout.
func RevenueDistributionPurpose(distributionID, contractID uuid.UUID) PaymentPurpose {
	return PaymentPurpose{Type: PurposeRevenueDistribution, DistributionID: &distributionID, ContractID: &contractID}
}

// PlatformFeePurpose builds the purpose for a platform fee collection payment.
func PlatformFeePurpose(distributionID uuid.UUID) PaymentPurpose {
	return PaymentPurpose{Type: PurposePlatformFee, DistributionID: &distributionID}
}

// RefundPurpose builds the purpose for a refund child payment, linked back
// to the payment being refunded.
func RefundPurpose(originalPaymentID uuid.UUID) PaymentPurpose {
	return PaymentPurpose{Type: PurposeRefund, OriginalPaymentID: &originalPaymentID}
}

// Validate checks that the variant carries its required foreign keys.
func (p PaymentPurpose) Validate() error {
	missing := func(field string) error {
		return apperror.ErrInvalidInput(fmt.Sprintf("purpose %s requires %s", p.Type, field))
	}

	switch p.Type {
	case PurposeNFTPurchase:
		if p.NFTID == nil || p.SongID == nil {
			return missing("nft_id and song_id")
		}
	case PurposeSharePurchase:
		if p.ShareID == nil || p.SongID == nil {
			return missing("share_id and song_id")
		}
	case PurposeShareTrade:
		if p.ShareID == nil || p.ContractID == nil {
			return missing("share_id and contract_id")
		}
	case PurposeRoyaltyDistribution:
		if p.DistributionID == nil || p.SongID == nil {
			return missing("distribution_id and song_id")
		}
	case PurposeListenReward:
		if p.ListenSessionID == nil || p.SongID == nil {
			return missing("listen_session_id and song_id")
		}
	case PurposeRevenueDistribution:
		if p.DistributionID == nil || p.ContractID == nil {
			return missing("distribution_id and contract_id")
		}
	case PurposePlatformFee:
		if p.DistributionID == nil {
			return missing("distribution_id")
		}
	case PurposeRefund:
		if p.OriginalPaymentID == nil {
			return missing("original_payment_id")
		}
	default:
		return apperror.ErrInvalidInput(fmt.Sprintf("unknown payment purpose %q", p.Type))
	}
	return nil
}
