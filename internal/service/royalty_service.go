package service

import (
	"context"
	"fmt"

	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/internal/core/ports"
	"revenue-distribution-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// RoyaltyServiceImpl implements ports.RoyaltyService. It orchestrates the
// one-payment royalty workflow: the platform treasury pays the artist their
// share of a reporting period's revenue.
type RoyaltyServiceImpl struct {
	royaltyRepo   ports.RoyaltyDistributionRepository
	paymentRepo   ports.PaymentRepository
	paymentSvc    ports.PaymentService
	transactor    ports.DBTransactor
	notifier      ports.PaymentNotificationService
	platformID    uuid.UUID
	processingFee domain.FeePercentage
	log           zerolog.Logger
}

// NewRoyaltyService creates a new RoyaltyServiceImpl. processingFee is
// withheld from each payout on top of the split already computed; platforms
// that take their whole cut at split time run with zero.
func NewRoyaltyService(
	royaltyRepo ports.RoyaltyDistributionRepository,
	paymentRepo ports.PaymentRepository,
	paymentSvc ports.PaymentService,
	transactor ports.DBTransactor,
	notifier ports.PaymentNotificationService,
	platformID uuid.UUID,
	processingFee domain.FeePercentage,
	log zerolog.Logger,
) *RoyaltyServiceImpl {
	return &RoyaltyServiceImpl{
		royaltyRepo:   royaltyRepo,
		paymentRepo:   paymentRepo,
		paymentSvc:    paymentSvc,
		transactor:    transactor,
		notifier:      notifier,
		platformID:    platformID,
		processingFee: processingFee,
		log:           log,
	}
}

// CreateDistribution validates the period and splits, then persists the
// distribution in PENDING.
func (s *RoyaltyServiceImpl) CreateDistribution(ctx context.Context, req ports.CreateRoyaltyRequest) (*domain.RoyaltyDistributionAggregate, error) {
	totalRevenue, err := domain.NewAmount(req.TotalRevenueValue, domain.Currency(req.Currency))
	if err != nil {
		return nil, err
	}

	agg, err := domain.NewRoyaltyDistribution(
		req.SongID, req.ArtistID,
		totalRevenue,
		req.ArtistSharePercent, req.PlatformFeePercent,
		req.PeriodStart, req.PeriodEnd,
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

	if err := s.royaltyRepo.Create(ctx, dbTx, agg); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create royalty distribution: %w", err))
	}
	if err := appendDistributionEvents(ctx, s.paymentRepo, dbTx, events); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	publishEvents(ctx, s.notifier, s.log, events)

	s.log.Info().
		Str("distribution_id", agg.ID.String()).
		Str("artist_id", req.ArtistID.String()).
		Str("artist_amount", agg.ArtistAmount.String()).
		Str("platform_fee", agg.PlatformFee.String()).
		Msg("royalty distribution created")

	return agg, nil
}

// ProcessDistribution creates the artist payout, settles it and terminalizes
// the distribution: COMPLETED when the payout lands, FAILED when it does not.
func (s *RoyaltyServiceImpl) ProcessDistribution(ctx context.Context, distributionID uuid.UUID) (*domain.RoyaltyDistributionAggregate, error) {
	agg, err := s.royaltyRepo.GetByID(ctx, distributionID)
	if err != nil {
		return nil, err
	}

	payout, err := agg.Process(s.platformID, s.processingFee)
	if err != nil {
		return nil, err
	}

	distEvents := agg.PullEvents()
	payoutEvents := payout.PullEvents()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// The version guard on the distribution absorbs a concurrent process
	// command; only one worker gets to create the payout.
	if err := s.royaltyRepo.Update(ctx, dbTx, agg); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Create(ctx, dbTx, payout); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create payout payment: %w", err))
	}
	if err := appendDistributionEvents(ctx, s.paymentRepo, dbTx, distEvents); err != nil {
		return nil, err
	}
	if err := appendDistributionEvents(ctx, s.paymentRepo, dbTx, payoutEvents); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	publishEvents(ctx, s.notifier, s.log, distEvents)
	publishEvents(ctx, s.notifier, s.log, payoutEvents)

	settled, err := s.paymentSvc.ProcessPayment(ctx, payout.Payment.ID)
	if err != nil {
		s.log.Error().Err(err).
			Str("distribution_id", distributionID.String()).
			Str("payment_id", payout.Payment.ID.String()).
			Msg("royalty payout failed")
	}

	if settled != nil && settled.Payment.Status == domain.StatusCompleted {
		if err := agg.Complete(); err != nil {
			return nil, err
		}
	} else {
		if err := agg.Fail(); err != nil {
			return nil, err
		}
	}

	if err := s.persistUpdate(ctx, agg); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("distribution_id", distributionID.String()).
		Str("status", string(agg.Status)).
		Msg("royalty distribution processed")

	return agg, nil
}

// GetDistribution returns one royalty distribution.
func (s *RoyaltyServiceImpl) GetDistribution(ctx context.Context, distributionID uuid.UUID) (*domain.RoyaltyDistributionAggregate, error) {
	return s.royaltyRepo.GetByID(ctx, distributionID)
}

// ListDistributionsBySong returns all distributions for a song, newest first.
func (s *RoyaltyServiceImpl) ListDistributionsBySong(ctx context.Context, songID uuid.UUID) ([]*domain.RoyaltyDistributionAggregate, error) {
	return s.royaltyRepo.ListBySong(ctx, songID)
}

func (s *RoyaltyServiceImpl) persistUpdate(ctx context.Context, agg *domain.RoyaltyDistributionAggregate) error {
	events := agg.PullEvents()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.royaltyRepo.Update(ctx, dbTx, agg); err != nil {
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

// appendDistributionEvents envelopes and appends domain events to the shared
// event log inside the caller's transaction.
func appendDistributionEvents(ctx context.Context, repo ports.PaymentRepository, dbTx pgx.Tx, events []domain.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	envelopes := make([]domain.EventEnvelope, 0, len(events))
	for _, e := range events {
		env, err := domain.Envelope(e)
		if err != nil {
			return apperror.ErrSerializationError(fmt.Errorf("envelope %s: %w", e.EventType(), err))
		}
		envelopes = append(envelopes, env)
	}
	if err := repo.AppendEvents(ctx, dbTx, envelopes); err != nil {
		return apperror.InternalError(fmt.Errorf("append events: %w", err))
	}
	return nil
}

// publishEvents delivers events best-effort; failures are logged only.
func publishEvents(ctx context.Context, notifier ports.PaymentNotificationService, log zerolog.Logger, events []domain.DomainEvent) {
	if notifier == nil {
		return
	}
	for _, e := range events {
		env, err := domain.Envelope(e)
		if err != nil {
			log.Warn().Err(err).Str("event_type", e.EventType()).Msg("failed to envelope event for delivery")
			continue
		}
		if err := notifier.Notify(ctx, env); err != nil {
			log.Warn().Err(err).Str("event_type", env.EventType).Msg("event delivery failed")
		}
	}
}
