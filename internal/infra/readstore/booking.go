package readstore

import (
	"context"

	"rentmarket/internal/domain/booking"
	"rentmarket/internal/domain/shared/daterange"
	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"
	"rentmarket/internal/pkg/pgconv"
	"rentmarket/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewQuery = `
	SELECT b.id, b.asset_id, a.title, a.image_url, b.rental_terms_id, b.requester_id,
		b.start_date, b.end_date, b.total_amount_cents, b.status,
		b.driver_name, b.driver_email, b.driver_phone, b.driver_license, b.needs_driver,
		b.pickup_location, b.dropoff_location, b.notes,
		b.created_at, b.updated_at
	FROM bookings b
	JOIN assets a ON a.id = b.asset_id`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx, bookingViewQuery+` WHERE b.id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

func (s *BookingReadStore) ListByAssetID(ctx context.Context, assetID uuid.UUID) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.asset_id, a.title, a.image_url, b.start_date, b.end_date,
			b.total_amount_cents, b.status, b.created_at
		FROM bookings b
		JOIN assets a ON a.id = b.asset_id
		WHERE b.asset_id = $1
		ORDER BY b.created_at DESC`

	rows, err := s.db.Query(ctx, query, assetID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by asset", err)
	}
	defer rows.Close()

	return collectListItems(rows)
}

func (s *BookingReadStore) ListByRequesterID(ctx context.Context, requesterID uuid.UUID, status *booking.Status) ([]*queries.BookingListItem, error) {
	query := `
		SELECT b.id, b.asset_id, a.title, a.image_url, b.start_date, b.end_date,
			b.total_amount_cents, b.status, b.created_at
		FROM bookings b
		JOIN assets a ON a.id = b.asset_id
		WHERE b.requester_id = $1`
	args := []any{requesterID}

	if status != nil {
		query += ` AND b.status = $2`
		args = append(args, status.String())
	}
	query += ` ORDER BY b.created_at DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by requester", err)
	}
	defer rows.Close()

	return collectListItems(rows)
}

func (s *BookingReadStore) ActiveSnapshotsByAssetID(ctx context.Context, assetID uuid.UUID) ([]booking.Snapshot, error) {
	const query = `
		SELECT id, start_date, end_date, status
		FROM bookings
		WHERE asset_id = $1 AND status IN ('REQUESTED', 'CONFIRMED')`

	rows, err := s.db.Query(ctx, query, assetID)
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

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v                                                   queries.BookingView
		assetImage                                          pgtype.Text
		startDate, endDate                                  pgtype.Date
		driverName, driverEmail, driverPhone, driverLicense pgtype.Text
		pickupLocation, dropoffLocation, notes              pgtype.Text
		createdAt, updatedAt                                pgtype.Timestamptz
	)

	err := row.Scan(
		&v.ID, &v.AssetID, &v.AssetTitle, &assetImage, &v.RentalTermsID, &v.RequesterID,
		&startDate, &endDate, &v.TotalAmountCents, &v.Status,
		&driverName, &driverEmail, &driverPhone, &driverLicense, &v.NeedsDriver,
		&pickupLocation, &dropoffLocation, &notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.AssetImage = pgconv.StringPtrFromPgtype(assetImage)
	v.StartDate = pgconv.DateFromPgtype(startDate)
	v.EndDate = pgconv.DateFromPgtype(endDate)
	v.DriverName = pgconv.StringPtrFromPgtype(driverName)
	v.DriverEmail = pgconv.StringPtrFromPgtype(driverEmail)
	v.DriverPhone = pgconv.StringPtrFromPgtype(driverPhone)
	v.DriverLicense = pgconv.StringPtrFromPgtype(driverLicense)
	v.PickupLocation = pgconv.StringPtrFromPgtype(pickupLocation)
	v.DropoffLocation = pgconv.StringPtrFromPgtype(dropoffLocation)
	v.Notes = pgconv.StringPtrFromPgtype(notes)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &v, nil
}

func collectListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			item               queries.BookingListItem
			assetImage         pgtype.Text
			startDate, endDate pgtype.Date
			createdAt          pgtype.Timestamptz
		)
		err := rows.Scan(
			&item.ID, &item.AssetID, &item.AssetTitle, &assetImage,
			&startDate, &endDate, &item.TotalAmountCents, &item.Status, &createdAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}

		item.AssetImage = pgconv.StringPtrFromPgtype(assetImage)
		item.StartDate = pgconv.DateFromPgtype(startDate)
		item.EndDate = pgconv.DateFromPgtype(endDate)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking list", err)
	}

	return items, nil
}
