package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"revenue-distribution-engine/internal/core/domain"
	"revenue-distribution-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const sharingColumns = `distribution_id, contract_id, song_id, total_revenue, platform_fee, currency,
	shareholders, payment_ids, status, version`

// RevenueSharingRepo implements ports.RevenueSharingRepository. Shareholder
// state is a jsonb document; the aggregate is always loaded and stored whole.
type RevenueSharingRepo struct {
	pool Pool
}

// NewRevenueSharingRepo creates a new RevenueSharingRepo.
func NewRevenueSharingRepo(pool Pool) *RevenueSharingRepo {
	return &RevenueSharingRepo{pool: pool}
}

// Create inserts a new revenue sharing distribution within a database transaction.
func (r *RevenueSharingRepo) Create(ctx context.Context, tx pgx.Tx, agg *domain.RevenueSharingAggregate) error {
	shareholders, paymentIDs, err := marshalSharingJSON(agg)
	if err != nil {
		return err
	}

	query := `INSERT INTO revenue_sharings (` + sharingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = tx.Exec(ctx, query,
		agg.DistributionID, agg.ContractID, agg.SongID,
		agg.TotalRevenue.Value, agg.PlatformFee.Value, agg.TotalRevenue.Currency,
		shareholders, paymentIDs, agg.Status, agg.Version,
	)
	if err != nil {
		return fmt.Errorf("insert revenue sharing: %w", err)
	}
	return nil
}

// Update persists shareholder state, payment links and status under the
// optimistic version guard.
func (r *RevenueSharingRepo) Update(ctx context.Context, tx pgx.Tx, agg *domain.RevenueSharingAggregate) error {
	shareholders, paymentIDs, err := marshalSharingJSON(agg)
	if err != nil {
		return err
	}

	query := `UPDATE revenue_sharings SET shareholders = $1, payment_ids = $2, status = $3, version = $4
		WHERE distribution_id = $5 AND version < $4`

	tag, err := tx.Exec(ctx, query, shareholders, paymentIDs, agg.Status, agg.Version, agg.DistributionID)
	if err != nil {
		return fmt.Errorf("update revenue sharing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrConcurrencyConflict("revenue sharing distribution")
	}
	return nil
}

// GetByID fetches a revenue sharing distribution by its ID.
func (r *RevenueSharingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RevenueSharingAggregate, error) {
	query := `SELECT ` + sharingColumns + ` FROM revenue_sharings WHERE distribution_id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// GetByChildPaymentID fetches the distribution owning a shareholder payout.
func (r *RevenueSharingRepo) GetByChildPaymentID(ctx context.Context, paymentID uuid.UUID) (*domain.RevenueSharingAggregate, error) {
	query := `SELECT ` + sharingColumns + ` FROM revenue_sharings
		WHERE payment_ids @> jsonb_build_array($1::text)`
	return r.scanOne(r.pool.QueryRow(ctx, query, paymentID.String()))
}

// ListByContract returns all distributions for a contract.
func (r *RevenueSharingRepo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]*domain.RevenueSharingAggregate, error) {
	query := `SELECT ` + sharingColumns + ` FROM revenue_sharings WHERE contract_id = $1`

	rows, err := r.pool.Query(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("list revenue sharings: %w", err)
	}
	defer rows.Close()

	var aggs []*domain.RevenueSharingAggregate
	for rows.Next() {
		agg, err := scanSharingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan revenue sharing row: %w", err)
		}
		aggs = append(aggs, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revenue sharing rows: %w", err)
	}
	return aggs, nil
}

func (r *RevenueSharingRepo) scanOne(row pgx.Row) (*domain.RevenueSharingAggregate, error) {
	agg, err := scanSharingRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ErrNotFound("revenue sharing distribution")
		}
		return nil, fmt.Errorf("scan revenue sharing: %w", err)
	}
	return agg, nil
}

func scanSharingRow(row pgx.Row) (*domain.RevenueSharingAggregate, error) {
	var (
		distributionID, contractID, songID uuid.UUID
		totalMinor, feeMinor               int64
		currency                           string
		shareholdersJSON, paymentIDsJSON   []byte
		status                             domain.DistributionStatus
		version                            int64
	)

	err := row.Scan(
		&distributionID, &contractID, &songID,
		&totalMinor, &feeMinor, &currency,
		&shareholdersJSON, &paymentIDsJSON, &status, &version,
	)
	if err != nil {
		return nil, err
	}

	var shareholders map[uuid.UUID]*domain.ShareholderDistribution
	if err := json.Unmarshal(shareholdersJSON, &shareholders); err != nil {
		return nil, fmt.Errorf("unmarshal shareholders: %w", err)
	}
	var paymentIDs []uuid.UUID
	if len(paymentIDsJSON) > 0 {
		if err := json.Unmarshal(paymentIDsJSON, &paymentIDs); err != nil {
			return nil, fmt.Errorf("unmarshal payment ids: %w", err)
		}
	}

	cur := domain.Currency(currency)
	return domain.RehydrateRevenueSharing(
		distributionID, contractID, songID,
		domain.Amount{Value: totalMinor, Currency: cur},
		domain.Amount{Value: feeMinor, Currency: cur},
		shareholders, paymentIDs, status, version,
	), nil
}

func marshalSharingJSON(agg *domain.RevenueSharingAggregate) (shareholders, paymentIDs []byte, err error) {
	shareholders, err = json.Marshal(agg.Shareholders)
	if err != nil {
		return nil, nil, apperror.ErrSerializationError(fmt.Errorf("marshal shareholders: %w", err))
	}
	paymentIDs, err = json.Marshal(agg.PaymentIDs)
	if err != nil {
		return nil, nil, apperror.ErrSerializationError(fmt.Errorf("marshal payment ids: %w", err))
	}
	return shareholders, paymentIDs, nil
}
