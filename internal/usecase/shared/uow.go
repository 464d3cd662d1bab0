package shared

import (
	"context"

	"rentmarket/internal/domain/booking"
	"rentmarket/internal/domain/rental"

	"github.com/google/uuid"
)

// UnitOfWork is the transaction boundary the commands run inside. Within
// wraps its callback in a single database transaction with retry on
// serialization failures; every error aborts the whole transaction.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	RentalTerms() RentalTermsRepository
	Assets() AssetLookup
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	// FindByIDForUpdate row-locks the booking so concurrent transitions
	// serialize on it.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// ActiveSnapshotsByTermsID returns the REQUESTED/CONFIRMED bookings a
	// candidate range must be checked against.
	ActiveSnapshotsByTermsID(ctx context.Context, termsID uuid.UUID) ([]booking.Snapshot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	ExistsBlockingByTermsID(ctx context.Context, termsID uuid.UUID) (bool, error)
}

type RentalTermsRepository interface {
	Create(ctx context.Context, t *rental.Terms) (uuid.UUID, error)
	// LockByAssetID takes the per-asset row lock that serializes concurrent
	// booking creations for the same asset.
	LockByAssetID(ctx context.Context, assetID uuid.UUID) (*rental.Terms, error)
	LockByID(ctx context.Context, id uuid.UUID) (*rental.Terms, error)
	FindByID(ctx context.Context, id uuid.UUID) (*rental.Terms, error)
	UpdateRates(ctx context.Context, t *rental.Terms) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssetLookup resolves an opaque asset reference against the catalog.
// Only the owner id participates in decisions; title and image are display
// metadata.
type AssetLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AssetSnapshot, error)
}

type AssetSnapshot struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Title    string
	ImageURL *string
}
