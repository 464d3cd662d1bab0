package repository

import (
	"context"

	"rentmarket/internal/domain/booking"
	"rentmarket/internal/domain/shared/daterange"
	"rentmarket/internal/domain/shared/money"
	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"
	"rentmarket/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, rental_terms_id, asset_id, requester_id, start_date, end_date, total_amount_cents, status,
	driver_name, driver_email, driver_phone, driver_license, needs_driver, pickup_location, dropoff_location, notes,
	created_at, updated_at`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (
			id, rental_terms_id, asset_id, requester_id, start_date, end_date, total_amount_cents, status,
			driver_name, driver_email, driver_phone, driver_license, needs_driver, pickup_location, dropoff_location, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`

	d := b.Details()
	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		b.ID(),
		b.TermsID(),
		b.AssetID(),
		b.RequesterID(),
		pgconv.DateToPgtype(b.DateRange().Start()),
		pgconv.DateToPgtype(b.DateRange().End()),
		b.TotalAmount().Cents(),
		b.Status().String(),
		pgconv.StringPtrToPgtype(d.DriverName),
		pgconv.StringPtrToPgtype(d.DriverEmail),
		pgconv.StringPtrToPgtype(d.DriverPhone),
		pgconv.StringPtrToPgtype(d.DriverLicense),
		d.NeedsDriver,
		pgconv.StringPtrToPgtype(d.PickupLocation),
		pgconv.StringPtrToPgtype(d.DropoffLocation),
		pgconv.StringPtrToPgtype(d.Notes),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

// FindByIDForUpdate row-locks the booking so concurrent status transitions
// serialize instead of both reading the same stale status.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) ActiveSnapshotsByTermsID(ctx context.Context, termsID uuid.UUID) ([]booking.Snapshot, error) {
	const query = `
		SELECT id, start_date, end_date, status
		FROM bookings
		WHERE rental_terms_id = $1 AND status IN ('REQUESTED', 'CONFIRMED')`

	rows, err := r.db.Query(ctx, query, termsID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active bookings", err)
	}
	defer rows.Close()

	var snapshots []booking.Snapshot
	for rows.Next() {
		var (
			id                 uuid.UUID
			startDate, endDate pgtype.Date
			status             string
		)
		if err := rows.Scan(&id, &startDate, &endDate, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking snapshot", err)
		}

		dr, err := daterange.New(pgconv.DateFromPgtype(startDate), pgconv.DateFromPgtype(endDate))
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored date range", err)
		}

		snapshots = append(snapshots, booking.Snapshot{
			ID:        id,
			DateRange: dr,
			Status:    booking.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking snapshots", err)
	}

	return snapshots, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	const query = `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}

	return nil
}

func (r *BookingRepository) ExistsBlockingByTermsID(ctx context.Context, termsID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE rental_terms_id = $1 AND status IN ('REQUESTED', 'CONFIRMED')
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, termsID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check blocking bookings", err)
	}

	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id, termsID, assetID, requesterID                        uuid.UUID
		startDate, endDate                                       pgtype.Date
		totalCents                                               int64
		status                                                   string
		driverName, driverEmail, driverPhone, driverLicense      pgtype.Text
		needsDriver                                              bool
		pickupLocation, dropoffLocation, notes                   pgtype.Text
		createdAt, updatedAt                                     pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &termsID, &assetID, &requesterID,
		&startDate, &endDate, &totalCents, &status,
		&driverName, &driverEmail, &driverPhone, &driverLicense,
		&needsDriver, &pickupLocation, &dropoffLocation, &notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	dr, err := daterange.New(pgconv.DateFromPgtype(startDate), pgconv.DateFromPgtype(endDate))
	if err != nil {
		return nil, err
	}

	details := booking.Details{
		DriverName:      pgconv.StringPtrFromPgtype(driverName),
		DriverEmail:     pgconv.StringPtrFromPgtype(driverEmail),
		DriverPhone:     pgconv.StringPtrFromPgtype(driverPhone),
		DriverLicense:   pgconv.StringPtrFromPgtype(driverLicense),
		NeedsDriver:     needsDriver,
		PickupLocation:  pgconv.StringPtrFromPgtype(pickupLocation),
		DropoffLocation: pgconv.StringPtrFromPgtype(dropoffLocation),
		Notes:           pgconv.StringPtrFromPgtype(notes),
	}

	return booking.ReconstructBooking(
		id, termsID, assetID, requesterID,
		dr,
		money.New(totalCents),
		booking.Status(status),
		details,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
