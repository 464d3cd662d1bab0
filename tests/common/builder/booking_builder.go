//go:build unit || e2e

package builder

import (
	"time"

	"rentmarket/internal/domain/booking"
	"rentmarket/internal/domain/shared/daterange"
	"rentmarket/internal/domain/shared/money"
	reqdto "rentmarket/internal/handler/dto/request"
	"rentmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	TermsID          uuid.UUID
	AssetID          uuid.UUID
	AssetTitle       string
	RequesterID      uuid.UUID
	StartDate        time.Time
	EndDate          time.Time
	TotalAmountCents int64
	Status           booking.Status
	Details          booking.Details
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		TermsID:          uuid.New(),
		AssetID:          uuid.New(),
		AssetTitle:       "Test Asset",
		RequesterID:      uuid.New(),
		StartDate:        time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		TotalAmountCents: 25000,
		Status:           booking.StatusRequested,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	dr, err := daterange.New(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.TermsID, b.AssetID, b.RequesterID, dr, money.New(b.TotalAmountCents), b.Details)
}

func (b *BookingBuilder) BuildReconstructed() *booking.Booking {
	dr, _ := daterange.New(b.StartDate, b.EndDate)
	return booking.ReconstructBooking(
		uuid.New(), b.TermsID, b.AssetID, b.RequesterID,
		dr, money.New(b.TotalAmountCents), b.Status, b.Details,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildSnapshot() booking.Snapshot {
	dr, _ := daterange.New(b.StartDate, b.EndDate)
	return booking.Snapshot{
		ID:        uuid.New(),
		DateRange: dr,
		Status:    b.Status,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:               uuid.New(),
		AssetID:          b.AssetID,
		AssetTitle:       b.AssetTitle,
		RentalTermsID:    b.TermsID,
		RequesterID:      b.RequesterID,
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		TotalAmountCents: b.TotalAmountCents,
		Status:           b.Status.String(),
		NeedsDriver:      b.Details.NeedsDriver,
		Notes:            b.Details.Notes,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:               uuid.New(),
		AssetID:          b.AssetID,
		AssetTitle:       b.AssetTitle,
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		TotalAmountCents: b.TotalAmountCents,
		Status:           b.Status.String(),
		CreatedAt:        b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		AssetID:     b.AssetID,
		StartDate:   b.StartDate.Format("2006-01-02"),
		EndDate:     b.EndDate.Format("2006-01-02"),
		NeedsDriver: b.Details.NeedsDriver,
		Notes:       b.Details.Notes,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithTermsID(id uuid.UUID) *BookingBuilder {
	b.TermsID = id
	return b
}

func (b *BookingBuilder) WithAssetID(id uuid.UUID) *BookingBuilder {
	b.AssetID = id
	return b
}

func (b *BookingBuilder) WithRequesterID(id uuid.UUID) *BookingBuilder {
	b.RequesterID = id
	return b
}

func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithTotalAmount(cents int64) *BookingBuilder {
	b.TotalAmountCents = cents
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Details.Notes = &notes
	return b
}
