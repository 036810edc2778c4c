package service

import (
	"context"
	"fmt"

	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/internal/core/ports"
	"revenue-distribution-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RevenueSharingServiceImpl implements ports.RevenueSharingService. It fans
// contract revenue out into one payment per fractional shareholder and
// converges their outcomes back into a single distribution status.
type RevenueSharingServiceImpl struct {
	sharingRepo   ports.RevenueSharingRepository
	paymentRepo   ports.PaymentRepository
	paymentSvc    ports.PaymentService
	transactor    ports.DBTransactor
	notifier      ports.PaymentNotificationService
	platformID    uuid.UUID
	processingFee domain.FeePercentage
	log           zerolog.Logger
}

// NewRevenueSharingService creates a new RevenueSharingServiceImpl.
// processingFee is withheld from each shareholder payout on top of the
// platform fee taken at split time; zero passes the cuts through whole.
func NewRevenueSharingService(
	sharingRepo ports.RevenueSharingRepository,
	paymentRepo ports.PaymentRepository,
	paymentSvc ports.PaymentService,
	transactor ports.DBTransactor,
	notifier ports.PaymentNotificationService,
	platformID uuid.UUID,
	processingFee domain.FeePercentage,
	log zerolog.Logger,
) *RevenueSharingServiceImpl {
	return &RevenueSharingServiceImpl{
		sharingRepo:   sharingRepo,
		paymentRepo:   paymentRepo,
		paymentSvc:    paymentSvc,
		transactor:    transactor,
		notifier:      notifier,
		platformID:    platformID,
		processingFee: processingFee,
		log:           log,
	}
}

// CreateDistribution validates ownership splits and persists the
// distribution in PENDING.
func (s *RevenueSharingServiceImpl) CreateDistribution(ctx context.Context, req ports.CreateRevenueSharingRequest) (*domain.RevenueSharingAggregate, error) {
	totalRevenue, err := domain.NewAmount(req.TotalRevenueValue, domain.Currency(req.Currency))
	if err != nil {
		return nil, err
	}

	agg, err := domain.NewRevenueSharing(
		req.ContractID, req.SongID,
		totalRevenue,
		req.PlatformFeePercent,
		req.Shareholders,
	)
	if err != nil {
		return nil, err
	}

	events := agg.PullEvents()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.sharingRepo.Create(ctx, dbTx, agg); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create revenue sharing: %w", err))
	}
	if err := appendDistributionEvents(ctx, s.paymentRepo, dbTx, events); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	publishEvents(ctx, s.notifier, s.log, events)

	s.log.Info().
		Str("distribution_id", agg.DistributionID.String()).
		Str("contract_id", req.ContractID.String()).
		Int("shareholders", len(agg.Shareholders)).
		Str("total_revenue", totalRevenue.String()).
		Msg("revenue sharing distribution created")

	return agg, nil
}

// ProcessDistribution creates one payout per shareholder, settles each
// independently and terminalizes the distribution from the combined
// outcomes. One shareholder's failure never blocks the others.
func (s *RevenueSharingServiceImpl) ProcessDistribution(ctx context.Context, distributionID uuid.UUID) (*domain.RevenueSharingAggregate, error) {
	agg, err := s.sharingRepo.GetByID(ctx, distributionID)
	if err != nil {
		return nil, err
	}

	payouts, err := agg.Process(s.platformID, s.processingFee)
	if err != nil {
		return nil, err
	}

	distEvents := agg.PullEvents()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Version guard: the first worker to commit owns the fan-out.
	if err := s.sharingRepo.Update(ctx, dbTx, agg); err != nil {
		return nil, err
	}
	for _, payout := range payouts {
		if err := s.paymentRepo.Create(ctx, dbTx, payout); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create payout payment: %w", err))
		}
		if err := appendDistributionEvents(ctx, s.paymentRepo, dbTx, payout.PullEvents()); err != nil {
			return nil, err
		}
	}
	if err := appendDistributionEvents(ctx, s.paymentRepo, dbTx, distEvents); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	publishEvents(ctx, s.notifier, s.log, distEvents)

	// Settle each payout. Outcomes converge on the aggregate; the last one
	// to resolve terminalizes the distribution.
	for shareholderID, sh := range agg.Shareholders {
		if sh.PaymentID == nil {
			continue
		}
		settled, err := s.paymentSvc.ProcessPayment(ctx, *sh.PaymentID)
		if err != nil {
			s.log.Error().Err(err).
				Str("distribution_id", distributionID.String()).
				Str("shareholder_id", shareholderID.String()).
				Msg("shareholder payout failed")
		}

		if settled != nil && settled.Payment.Status == domain.StatusCompleted {
			err = agg.CompleteShareholderPayment(shareholderID)
		} else {
			err = agg.FailShareholderPayment(shareholderID)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := s.persistUpdate(ctx, agg); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("distribution_id", distributionID.String()).
		Str("status", string(agg.Status)).
		Str("total_distributed", agg.TotalDistributed().String()).
		Msg("revenue sharing distribution processed")

	return agg, nil
}

// GetDistribution returns one revenue sharing distribution.
func (s *RevenueSharingServiceImpl) GetDistribution(ctx context.Context, distributionID uuid.UUID) (*domain.RevenueSharingAggregate, error) {
	return s.sharingRepo.GetByID(ctx, distributionID)
}

// ListDistributionsByContract returns all distributions for a contract.
func (s *RevenueSharingServiceImpl) ListDistributionsByContract(ctx context.Context, contractID uuid.UUID) ([]*domain.RevenueSharingAggregate, error) {
	return s.sharingRepo.ListByContract(ctx, contractID)
}

func (s *RevenueSharingServiceImpl) persistUpdate(ctx context.Context, agg *domain.RevenueSharingAggregate) error {
	events := agg.PullEvents()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.sharingRepo.Update(ctx, dbTx, agg); err != nil {
		return err
	}
	if err := appendDistributionEvents(ctx, s.paymentRepo, dbTx, events); err != nil {
		return err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	publishEvents(ctx, s.notifier, s.log, events)
	return nil
}
