package commands

import (
	"context"
	"log/slog"
	"time"

	"rentmarket/internal/domain/booking"
	"rentmarket/internal/domain/rental"
	"rentmarket/internal/domain/shared/daterange"
	"rentmarket/internal/infra"
	"rentmarket/internal/pkg/clock"
	"rentmarket/internal/pkg/errs"
	"rentmarket/internal/pkg/identity"
	"rentmarket/internal/usecase/queries"
	"rentmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	AssetID   uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Details   booking.Details
}

type BookingCommands interface {
	Create(ctx context.Context, actor identity.Actor, params CreateBookingParams) (*queries.BookingView, error)
	Confirm(ctx context.Context, actor identity.Actor, bookingID uuid.UUID) (*queries.BookingView, error)
	Cancel(ctx context.Context, actor identity.Actor, bookingID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	bookings queries.BookingReadStore
	clock    clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, bookings queries.BookingReadStore, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		bookings: bookings,
		clock:    clock,
	}
}

// Create validates the range, then runs the conflict check, pricing and
// insert in one transaction. The rental terms row is locked first so two
// concurrent creations for the same asset cannot both pass the conflict
// check; the exclusion constraint on bookings backs this up at the storage
// layer.
func (c *bookingCommandsImpl) Create(ctx context.Context, actor identity.Actor, params CreateBookingParams) (*queries.BookingView, error) {
	dr, err := daterange.New(params.StartDate, params.EndDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}
	today := daterange.Truncate(c.clock.Now())
	if dr.Start().Before(today) {
		return nil, errs.Mark(errs.New("start date is in the past"), errs.ErrInvalidDateRange)
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		terms, err := tx.RentalTerms().LockByAssetID(ctx, params.AssetID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRentalTermsNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		existing, err := tx.Bookings().ActiveSnapshotsByTermsID(ctx, terms.ID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if booking.HasConflict(dr, existing) {
			return errs.ErrBookingConflict
		}

		total, err := rental.Quote(terms, dr)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidDateRange)
		}

		entity, err := booking.NewBooking(terms.ID(), terms.AssetID(), actor.UserID, dr, total, params.Details)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		bookingID, err = tx.Bookings().Create(ctx, entity)
		if err != nil {
			// The exclusion constraint catches overlapping inserts that
			// slipped past the in-transaction check.
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrBookingConflict
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, bookingID)
}

func (c *bookingCommandsImpl) Confirm(ctx context.Context, actor identity.Actor, bookingID uuid.UUID) (*queries.BookingView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		terms, err := tx.RentalTerms().FindByID(ctx, entity.TermsID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !terms.IsOwnedBy(actor.UserID) && !actor.IsPrivileged() {
			return errs.ErrUnauthorized
		}

		if err := entity.Confirm(); err != nil {
			return errs.Mark(err, errs.ErrInvalidStateTransition)
		}
		return tx.Bookings().UpdateStatus(ctx, entity.ID(), entity.Status())
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, bookingID)
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, actor identity.Actor, bookingID uuid.UUID) (*queries.BookingView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if !entity.IsRequestedBy(actor.UserID) {
			return errs.ErrUnauthorized
		}

		if err := entity.Cancel(); err != nil {
			return errs.Mark(err, errs.ErrInvalidStateTransition)
		}
		return tx.Bookings().UpdateStatus(ctx, entity.ID(), entity.Status())
	})
	if err != nil {
		return nil, err
	}

	return c.readBack(ctx, bookingID)
}

// readBack returns the full view after commit so the caller sees the
// joined asset metadata, not just the written row.
func (c *bookingCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := c.bookings.FindByID(ctx, id)
	if err != nil {
		slog.Error("failed to read back booking after commit", "booking_id", id, "error", err.Error())
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
