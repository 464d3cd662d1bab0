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

type AssetReadStore struct {
	db db.DBTX
}

func NewAssetReadStore(dbtx db.DBTX) *AssetReadStore {
	return &AssetReadStore{db: dbtx}
}

func (s *AssetReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AssetView, error) {
	const query = `SELECT id, owner_id, title, image_url FROM assets WHERE id = $1`

	var (
		v        queries.AssetView
		imageURL pgtype.Text
	)
	err := s.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.OwnerID, &v.Title, &imageURL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find asset", err)
	}

	v.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	return &v, nil
}
