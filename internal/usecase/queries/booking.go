package queries

import (
	"context"
	"time"

	"rentmarket/internal/domain/booking"
	"rentmarket/internal/domain/rental"
	"rentmarket/internal/domain/shared/daterange"
	"rentmarket/internal/infra"
	"rentmarket/internal/pkg/errs"
	"rentmarket/internal/pkg/identity"

	"github.com/google/uuid"
)

const (
	msgAvailable   = "Available for booking"
	msgUnavailable = "Not available for selected dates"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByAssetID(ctx context.Context, assetID uuid.UUID) ([]*BookingListItem, error)
	ListByRequesterID(ctx context.Context, requesterID uuid.UUID, status *booking.Status) ([]*BookingListItem, error)
	ActiveSnapshotsByAssetID(ctx context.Context, assetID uuid.UUID) ([]booking.Snapshot, error)
}

type RentalTermsReadStore interface {
	FindByAssetID(ctx context.Context, assetID uuid.UUID) (*RentalTermsView, error)
}

type AssetReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AssetView, error)
}

type BookingQueries interface {
	// CheckAvailability never mutates state: it answers whether the range is
	// free and what it would cost at current rates.
	CheckAvailability(ctx context.Context, assetID uuid.UUID, startDate, endDate time.Time) (*AvailabilityResult, error)
	// GetByID is visible to the requester and to the asset owner.
	GetByID(ctx context.Context, actor identity.Actor, id uuid.UUID) (*BookingView, error)
	// ListByAsset is restricted to the asset owner.
	ListByAsset(ctx context.Context, actor identity.Actor, assetID uuid.UUID) ([]*BookingListItem, error)
	ListByRequester(ctx context.Context, actor identity.Actor, status *booking.Status) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	terms    RentalTermsReadStore
	assets   AssetReadStore
}

func NewBookingQueries(bookings BookingReadStore, terms RentalTermsReadStore, assets AssetReadStore) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		terms:    terms,
		assets:   assets,
	}
}

func (q *bookingQueriesImpl) CheckAvailability(ctx context.Context, assetID uuid.UUID, startDate, endDate time.Time) (*AvailabilityResult, error) {
	dr, err := daterange.New(startDate, endDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	termsView, err := q.terms.FindByAssetID(ctx, assetID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRentalTermsNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	existing, err := q.bookings.ActiveSnapshotsByAssetID(ctx, assetID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	terms := rental.ReconstructTerms(
		termsView.ID, termsView.AssetID, termsView.OwnerID,
		termsView.DailyRateCents, termsView.WeeklyRateCents, termsView.MonthlyRateCents, termsView.DepositCents,
		termsView.CreatedAt, termsView.UpdatedAt,
	)
	estimate, err := rental.Quote(terms, dr)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	result := &AvailabilityResult{
		Available:            !booking.HasConflict(dr, existing),
		EstimatedAmountCents: estimate.Cents(),
	}
	if result.Available {
		result.Message = msgAvailable
	} else {
		result.Message = msgUnavailable
	}
	return result, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor identity.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if view.RequesterID == actor.UserID || actor.IsPrivileged() {
		return view, nil
	}

	asset, err := q.assets.FindByID(ctx, view.AssetID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if asset.OwnerID != actor.UserID {
		return nil, errs.ErrUnauthorized
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByAsset(ctx context.Context, actor identity.Actor, assetID uuid.UUID) ([]*BookingListItem, error) {
	asset, err := q.assets.FindByID(ctx, assetID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAssetNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if asset.OwnerID != actor.UserID && !actor.IsPrivileged() {
		return nil, errs.ErrUnauthorized
	}

	items, err := q.bookings.ListByAssetID(ctx, assetID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListByRequester(ctx context.Context, actor identity.Actor, status *booking.Status) ([]*BookingListItem, error) {
	items, err := q.bookings.ListByRequesterID(ctx, actor.UserID, status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
