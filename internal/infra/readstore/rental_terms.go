package readstore

import (
	"context"

	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"
	"rentmarket/internal/pkg/pgconv"
	"rentmarket/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RentalTermsReadStore struct {
	db db.DBTX
}

func NewRentalTermsReadStore(dbtx db.DBTX) *RentalTermsReadStore {
	return &RentalTermsReadStore{db: dbtx}
}

func (s *RentalTermsReadStore) FindByAssetID(ctx context.Context, assetID uuid.UUID) (*queries.RentalTermsView, error) {
	const query = `
		SELECT t.id, t.asset_id, t.owner_id, a.title,
			t.daily_rate_cents, t.weekly_rate_cents, t.monthly_rate_cents, t.deposit_cents,
			t.created_at, t.updated_at
		FROM rental_terms t
		JOIN assets a ON a.id = t.asset_id
		WHERE t.asset_id = $1`

	var (
		v                                queries.RentalTermsView
		weeklyRate, monthlyRate, deposit pgtype.Int8
		createdAt, updatedAt             pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, query, assetID).Scan(
		&v.ID, &v.AssetID, &v.OwnerID, &v.AssetTitle,
		&v.DailyRateCents, &weeklyRate, &monthlyRate, &deposit,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rental terms", err)
	}

	v.WeeklyRateCents = pgconv.Int64PtrFromPgtype(weeklyRate)
	v.MonthlyRateCents = pgconv.Int64PtrFromPgtype(monthlyRate)
	v.DepositCents = pgconv.Int64PtrFromPgtype(deposit)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &v, nil
}
