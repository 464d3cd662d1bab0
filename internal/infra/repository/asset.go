package repository

import (
	"context"

	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"
	"rentmarket/internal/pkg/pgconv"
	"rentmarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// AssetRepository resolves catalog rows into the snapshot the commands need
// for ownership checks.
type AssetRepository struct {
	db db.DBTX
}

func NewAssetRepository(dbtx db.DBTX) *AssetRepository {
	return &AssetRepository{db: dbtx}
}

func (r *AssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.AssetSnapshot, error) {
	const query = `SELECT id, owner_id, title, image_url FROM assets WHERE id = $1`

	var (
		assetID, ownerID uuid.UUID
		title            string
		imageURL         pgtype.Text
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&assetID, &ownerID, &title, &imageURL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find asset", err)
	}

	return &shared.AssetSnapshot{
		ID:       assetID,
		OwnerID:  ownerID,
		Title:    title,
		ImageURL: pgconv.StringPtrFromPgtype(imageURL),
	}, nil
}
