package repository

import (
	"context"

	"rentmarket/internal/domain/rental"
	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"
	"rentmarket/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const rentalTermsColumns = `id, asset_id, owner_id, daily_rate_cents, weekly_rate_cents, monthly_rate_cents, deposit_cents, created_at, updated_at`

type RentalTermsRepository struct {
	db db.DBTX
}

func NewRentalTermsRepository(dbtx db.DBTX) *RentalTermsRepository {
	return &RentalTermsRepository{db: dbtx}
}

func (r *RentalTermsRepository) Create(ctx context.Context, t *rental.Terms) (uuid.UUID, error) {
	const query = `
		INSERT INTO rental_terms (id, asset_id, owner_id, daily_rate_cents, weekly_rate_cents, monthly_rate_cents, deposit_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		t.ID(),
		t.AssetID(),
		t.OwnerID(),
		t.DailyRateCents(),
		pgconv.Int64PtrToPgtype(t.WeeklyRateCents()),
		pgconv.Int64PtrToPgtype(t.MonthlyRateCents()),
		pgconv.Int64PtrToPgtype(t.DepositCents()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create rental terms", err)
	}

	return id, nil
}

// LockByAssetID acquires the row lock that serializes concurrent bookings
// against the same asset for the rest of the transaction.
func (r *RentalTermsRepository) LockByAssetID(ctx context.Context, assetID uuid.UUID) (*rental.Terms, error) {
	query := `SELECT ` + rentalTermsColumns + ` FROM rental_terms WHERE asset_id = $1 FOR UPDATE`
	return r.queryOne(ctx, query, assetID)
}

func (r *RentalTermsRepository) LockByID(ctx context.Context, id uuid.UUID) (*rental.Terms, error) {
	query := `SELECT ` + rentalTermsColumns + ` FROM rental_terms WHERE id = $1 FOR UPDATE`
	return r.queryOne(ctx, query, id)
}

func (r *RentalTermsRepository) FindByID(ctx context.Context, id uuid.UUID) (*rental.Terms, error) {
	query := `SELECT ` + rentalTermsColumns + ` FROM rental_terms WHERE id = $1`
	return r.queryOne(ctx, query, id)
}

func (r *RentalTermsRepository) UpdateRates(ctx context.Context, t *rental.Terms) error {
	const query = `
		UPDATE rental_terms
		SET daily_rate_cents = $2, weekly_rate_cents = $3, monthly_rate_cents = $4, deposit_cents = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		t.ID(),
		t.DailyRateCents(),
		pgconv.Int64PtrToPgtype(t.WeeklyRateCents()),
		pgconv.Int64PtrToPgtype(t.MonthlyRateCents()),
		pgconv.Int64PtrToPgtype(t.DepositCents()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update rental terms", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "rental terms not found")
	}

	return nil
}

func (r *RentalTermsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rental_terms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete rental terms", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "rental terms not found")
	}

	return nil
}

func (r *RentalTermsRepository) queryOne(ctx context.Context, query string, arg any) (*rental.Terms, error) {
	var (
		id, assetID, ownerID               uuid.UUID
		dailyRateCents                     int64
		weeklyRate, monthlyRate, deposit   pgtype.Int8
		createdAt, updatedAt               pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, query, arg).Scan(
		&id, &assetID, &ownerID,
		&dailyRateCents, &weeklyRate, &monthlyRate, &deposit,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rental terms", err)
	}

	return rental.ReconstructTerms(
		id, assetID, ownerID,
		dailyRateCents,
		pgconv.Int64PtrFromPgtype(weeklyRate),
		pgconv.Int64PtrFromPgtype(monthlyRate),
		pgconv.Int64PtrFromPgtype(deposit),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
