package queries

import (
	"context"

	"rentmarket/internal/infra"
	"rentmarket/internal/pkg/errs"

	"github.com/google/uuid"
)

type RentalTermsQueries interface {
	GetByAssetID(ctx context.Context, assetID uuid.UUID) (*RentalTermsView, error)
}

type rentalTermsQueriesImpl struct {
	terms RentalTermsReadStore
}

func NewRentalTermsQueries(terms RentalTermsReadStore) RentalTermsQueries {
	return &rentalTermsQueriesImpl{terms: terms}
}

func (q *rentalTermsQueriesImpl) GetByAssetID(ctx context.Context, assetID uuid.UUID) (*RentalTermsView, error) {
	view, err := q.terms.FindByAssetID(ctx, assetID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRentalTermsNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
