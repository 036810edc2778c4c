package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const royaltyColumns = `id, song_id, artist_id, total_revenue, artist_amount, platform_fee, currency,
	artist_share_bps, platform_fee_bps, period_start, period_end, status, payment_ids, version`

// RoyaltyRepo implements ports.RoyaltyDistributionRepository.
type RoyaltyRepo struct {
	pool Pool
}

// NewRoyaltyRepo creates a new RoyaltyRepo.
func NewRoyaltyRepo(pool Pool) *RoyaltyRepo {
	return &RoyaltyRepo{pool: pool}
}

// Create inserts a new royalty distribution within a database transaction.
func (r *RoyaltyRepo) Create(ctx context.Context, tx pgx.Tx, agg *domain.RoyaltyDistributionAggregate) error {
	paymentIDs, err := json.Marshal(agg.PaymentIDs)
	if err != nil {
		return apperror.ErrSerializationError(fmt.Errorf("marshal payment ids: %w", err))
	}

	query := `INSERT INTO royalty_distributions (` + royaltyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err = tx.Exec(ctx, query,
		agg.ID, agg.SongID, agg.ArtistID,
		agg.TotalRevenue.Value, agg.ArtistAmount.Value, agg.PlatformFee.Value, agg.TotalRevenue.Currency,
		agg.ArtistSharePercentage.BasisPoints, agg.PlatformFeePercentage.BasisPoints,
		agg.PeriodStart, agg.PeriodEnd, agg.Status, paymentIDs, agg.Version,
	)
	if err != nil {
		return fmt.Errorf("insert royalty distribution: %w", err)
	}
	return nil
}

// Update persists status, payment links and version under the optimistic
// version guard.
func (r *RoyaltyRepo) Update(ctx context.Context, tx pgx.Tx, agg *domain.RoyaltyDistributionAggregate) error {
	paymentIDs, err := json.Marshal(agg.PaymentIDs)
	if err != nil {
		return apperror.ErrSerializationError(fmt.Errorf("marshal payment ids: %w", err))
	}

	query := `UPDATE royalty_distributions SET status = $1, payment_ids = $2, version = $3
		WHERE id = $4 AND version < $3`

	tag, err := tx.Exec(ctx, query, agg.Status, paymentIDs, agg.Version, agg.ID)
	if err != nil {
		return fmt.Errorf("update royalty distribution: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrConcurrencyConflict("royalty distribution")
	}
	return nil
}

// GetByID fetches a royalty distribution by its ID.
func (r *RoyaltyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoyaltyDistributionAggregate, error) {
	query := `SELECT ` + royaltyColumns + ` FROM royalty_distributions WHERE id = $1`

	agg, err := scanRoyaltyRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrNotFound("royalty distribution")
		}
		return nil, fmt.Errorf("scan royalty distribution: %w", err)
	}
	return agg, nil
}

// ListBySong returns all distributions for a song, newest period first.
func (r *RoyaltyRepo) ListBySong(ctx context.Context, songID uuid.UUID) ([]*domain.RoyaltyDistributionAggregate, error) {
	query := `SELECT ` + royaltyColumns + ` FROM royalty_distributions
		WHERE song_id = $1 ORDER BY period_start DESC`

	rows, err := r.pool.Query(ctx, query, songID)
	if err != nil {
		return nil, fmt.Errorf("list royalty distributions: %w", err)
	}
	defer rows.Close()

	var aggs []*domain.RoyaltyDistributionAggregate
	for rows.Next() {
		agg, err := scanRoyaltyRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan royalty distribution row: %w", err)
		}
		aggs = append(aggs, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate royalty distribution rows: %w", err)
	}
	return aggs, nil
}

func scanRoyaltyRow(row pgx.Row) (*domain.RoyaltyDistributionAggregate, error) {
	var (
		id, songID, artistID                uuid.UUID
		totalMinor, artistMinor, feeMinor   int64
		currency                            string
		artistBps, platformBps              int64
		periodStart, periodEnd              time.Time
		status                              domain.DistributionStatus
		paymentIDsJSON                      []byte
		version                             int64
	)

	err := row.Scan(
		&id, &songID, &artistID,
		&totalMinor, &artistMinor, &feeMinor, &currency,
		&artistBps, &platformBps,
		&periodStart, &periodEnd, &status, &paymentIDsJSON, &version,
	)
	if err != nil {
		return nil, err
	}

	var paymentIDs []uuid.UUID
	if len(paymentIDsJSON) > 0 {
		if err := json.Unmarshal(paymentIDsJSON, &paymentIDs); err != nil {
			return nil, fmt.Errorf("unmarshal payment ids: %w", err)
		}
	}

	cur := domain.Currency(currency)
	return domain.RehydrateRoyaltyDistribution(
		id, songID, artistID,
		domain.Amount{Value: totalMinor, Currency: cur},
		domain.Amount{Value: artistMinor, Currency: cur},
		domain.Amount{Value: feeMinor, Currency: cur},
		domain.FeePercentage{BasisPoints: artistBps},
		domain.FeePercentage{BasisPoints: platformBps},
		periodStart, periodEnd, status, paymentIDs, version,
	), nil
}
