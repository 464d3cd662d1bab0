package booking

import (
	"errors"
	"time"

	"rentmarket/internal/domain/shared/daterange"
	"rentmarket/internal/domain/shared/money"

	"github.com/google/uuid"
)

var (
	ErrRequesterRequired      = errors.New("requester is required")
	ErrNegativeTotal          = errors.New("total amount cannot be negative")
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// Details carries optional side information supplied by the requester.
// The core stores it verbatim and never inspects it.
type Details struct {
	DriverName      *string
	DriverEmail     *string
	DriverPhone     *string
	DriverLicense   *string
	NeedsDriver     bool
	PickupLocation  *string
	DropoffLocation *string
	Notes           *string
}

// Booking is one reservation request against the rental terms of an asset.
// The total is fixed at creation time; later rate changes do not touch it.
// Bookings are never deleted, only cancelled.
type Booking struct {
	id          uuid.UUID
	termsID     uuid.UUID
	assetID     uuid.UUID
	requesterID uuid.UUID
	dateRange   daterange.DateRange
	totalAmount money.Money
	status      Status
	details     Details
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(
	termsID, assetID, requesterID uuid.UUID,
	dr daterange.DateRange,
	total money.Money,
	details Details,
) (*Booking, error) {
	if requesterID == uuid.Nil {
		return nil, ErrRequesterRequired
	}
	if total.Cents() < 0 {
		return nil, ErrNegativeTotal
	}

	return &Booking{
		id:          uuid.New(),
		termsID:     termsID,
		assetID:     assetID,
		requesterID: requesterID,
		dateRange:   dr,
		totalAmount: total,
		status:      StatusRequested,
		details:     details,
	}, nil
}

func ReconstructBooking(
	id, termsID, assetID, requesterID uuid.UUID,
	dr daterange.DateRange,
	total money.Money,
	status Status,
	details Details,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		termsID:     termsID,
		assetID:     assetID,
		requesterID: requesterID,
		dateRange:   dr,
		totalAmount: total,
		status:      status,
		details:     details,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Confirm moves REQUESTED to CONFIRMED. Confirming an already confirmed
// booking is a caller error, not a no-op.
func (b *Booking) Confirm() error {
	if !b.status.CanTransition(StatusConfirmed) {
		return ErrInvalidStateTransition
	}
	b.status = StatusConfirmed
	return nil
}

// Cancel moves REQUESTED or CONFIRMED to CANCELLED.
func (b *Booking) Cancel() error {
	if !b.status.CanTransition(StatusCancelled) {
		return ErrInvalidStateTransition
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsRequestedBy(userID uuid.UUID) bool {
	return b.requesterID == userID
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) TermsID() uuid.UUID            { return b.termsID }
func (b *Booking) AssetID() uuid.UUID            { return b.assetID }
func (b *Booking) RequesterID() uuid.UUID        { return b.requesterID }
func (b *Booking) DateRange() daterange.DateRange { return b.dateRange }
func (b *Booking) TotalAmount() money.Money      { return b.totalAmount }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) Details() Details              { return b.details }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time          { return b.updatedAt }
