//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rentmarket/internal/domain/booking"
	"rentmarket/internal/domain/rental"
	"rentmarket/internal/infra"
	"rentmarket/internal/pkg/clock"
	"rentmarket/internal/pkg/errs"
	"rentmarket/internal/pkg/identity"
	"rentmarket/internal/usecase/commands"
	"rentmarket/internal/usecase/shared"
	"rentmarket/tests/common/builder"
	queriesmock "rentmarket/tests/mock/queries"
	sharedmock "rentmarket/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockUoW       *sharedmock.MockUnitOfWork
	mockTx        *sharedmock.MockTx
	mockBookings  *sharedmock.MockBookingRepository
	mockTerms     *sharedmock.MockRentalTermsRepository
	mockAssets    *sharedmock.MockAssetLookup
	mockReadStore *queriesmock.MockBookingReadStore
	clock         *clock.MockClock
	cmds          commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.mockTx = sharedmock.NewMockTx(s.ctrl)
	s.mockBookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.mockTerms = sharedmock.NewMockRentalTermsRepository(s.ctrl)
	s.mockAssets = sharedmock.NewMockAssetLookup(s.ctrl)
	s.mockReadStore = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	s.mockTx.EXPECT().Bookings().Return(s.mockBookings).AnyTimes()
	s.mockTx.EXPECT().RentalTerms().Return(s.mockTerms).AnyTimes()
	s.mockTx.EXPECT().Assets().Return(s.mockAssets).AnyTimes()

	s.cmds = commands.NewBookingCommands(s.mockUoW, s.mockReadStore, s.clock)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// expectTx makes the unit of work run its callback against the mocked
// transaction.
func (s *BookingCommandsTestSuite) expectTx() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).Times(1)
}

func (s *BookingCommandsTestSuite) buildTerms(ownerID uuid.UUID) *rental.Terms {
	weekly := int64(30000)
	monthly := int64(100000)
	return rental.ReconstructTerms(
		uuid.New(), uuid.New(), ownerID,
		5000, &weekly, &monthly, nil,
		time.Now(), time.Now(),
	)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreate() {
	actor := identity.Actor{UserID: uuid.New(), Role: identity.RoleMember}
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)

	s.Run("success: prices the range and stores a requested booking", func() {
		terms := s.buildTerms(uuid.New())
		newID := uuid.New()
		view := builder.NewBookingBuilder().WithRequesterID(actor.UserID).BuildView()

		s.expectTx()
		s.mockTerms.EXPECT().LockByAssetID(gomock.Any(), terms.AssetID()).Return(terms, nil)
		s.mockBookings.EXPECT().ActiveSnapshotsByTermsID(gomock.Any(), terms.ID()).Return(nil, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
				s.Equal(terms.ID(), b.TermsID())
				s.Equal(actor.UserID, b.RequesterID())
				s.Equal(booking.StatusRequested, b.Status())
				// 5 days at the daily rate
				s.Equal(int64(25000), b.TotalAmount().Cents())
				return newID, nil
			})
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), newID).Return(view, nil)

		got, err := s.cmds.Create(context.Background(), actor, commands.CreateBookingParams{
			AssetID:   terms.AssetID(),
			StartDate: start,
			EndDate:   end,
		})
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: end before start fails before any transaction", func() {
		_, err := s.cmds.Create(context.Background(), actor, commands.CreateBookingParams{
			AssetID:   uuid.New(),
			StartDate: end,
			EndDate:   start,
		})
		s.ErrorIs(err, errs.ErrInvalidDateRange)
	})

	s.Run("error: start date in the past is rejected", func() {
		_, err := s.cmds.Create(context.Background(), actor, commands.CreateBookingParams{
			AssetID:   uuid.New(),
			StartDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
		})
		s.ErrorIs(err, errs.ErrInvalidDateRange)
	})

	s.Run("success: booking starting today is accepted", func() {
		terms := s.buildTerms(uuid.New())
		newID := uuid.New()
		view := builder.NewBookingBuilder().WithRequesterID(actor.UserID).BuildView()

		s.expectTx()
		s.mockTerms.EXPECT().LockByAssetID(gomock.Any(), terms.AssetID()).Return(terms, nil)
		s.mockBookings.EXPECT().ActiveSnapshotsByTermsID(gomock.Any(), terms.ID()).Return(nil, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(newID, nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), newID).Return(view, nil)

		_, err := s.cmds.Create(context.Background(), actor, commands.CreateBookingParams{
			AssetID:   terms.AssetID(),
			StartDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		})
		s.NoError(err)
	})

	s.Run("error: asset without rental terms is not bookable", func() {
		assetID := uuid.New()

		s.expectTx()
		s.mockTerms.EXPECT().LockByAssetID(gomock.Any(), assetID).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "rental terms not found"))

		_, err := s.cmds.Create(context.Background(), actor, commands.CreateBookingParams{
			AssetID:   assetID,
			StartDate: start,
			EndDate:   end,
		})
		s.ErrorIs(err, errs.ErrRentalTermsNotFound)
	})

	s.Run("error: overlapping active booking blocks creation", func() {
		terms := s.buildTerms(uuid.New())
		overlapping := builder.NewBookingBuilder().
			WithDates(time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC), time.Date(2026, 10, 8, 0, 0, 0, 0, time.UTC)).
			WithStatus(booking.StatusConfirmed).
			BuildSnapshot()

		s.expectTx()
		s.mockTerms.EXPECT().LockByAssetID(gomock.Any(), terms.AssetID()).Return(terms, nil)
		s.mockBookings.EXPECT().ActiveSnapshotsByTermsID(gomock.Any(), terms.ID()).
			Return([]booking.Snapshot{overlapping}, nil)

		_, err := s.cmds.Create(context.Background(), actor, commands.CreateBookingParams{
			AssetID:   terms.AssetID(),
			StartDate: start,
			EndDate:   end,
		})
		s.ErrorIs(err, errs.ErrBookingConflict)
	})

	s.Run("error: exclusion constraint violation surfaces as conflict", func() {
		terms := s.buildTerms(uuid.New())

		s.expectTx()
		s.mockTerms.EXPECT().LockByAssetID(gomock.Any(), terms.AssetID()).Return(terms, nil)
		s.mockBookings.EXPECT().ActiveSnapshotsByTermsID(gomock.Any(), terms.ID()).Return(nil, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.NewRepoErr(infra.KindConflict, "bookings_no_overlap"))

		_, err := s.cmds.Create(context.Background(), actor, commands.CreateBookingParams{
			AssetID:   terms.AssetID(),
			StartDate: start,
			EndDate:   end,
		})
		s.ErrorIs(err, errs.ErrBookingConflict)
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *BookingCommandsTestSuite) TestConfirm() {
	owner := identity.Actor{UserID: uuid.New(), Role: identity.RoleMember}
	requester := uuid.New()

	s.Run("success: asset owner confirms a requested booking", func() {
		terms := s.buildTerms(owner.UserID)
		entity := builder.NewBookingBuilder().
			WithTermsID(terms.ID()).
			WithRequesterID(requester).
			WithStatus(booking.StatusRequested).
			BuildReconstructed()
		view := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildView()

		s.expectTx()
		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockTerms.EXPECT().FindByID(gomock.Any(), terms.ID()).Return(terms, nil)
		s.mockBookings.EXPECT().UpdateStatus(gomock.Any(), entity.ID(), booking.StatusConfirmed).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(view, nil)

		got, err := s.cmds.Confirm(context.Background(), owner, entity.ID())
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("success: admin confirms on behalf of the owner", func() {
		admin := identity.Actor{UserID: uuid.New(), Role: identity.RoleAdmin}
		terms := s.buildTerms(uuid.New())
		entity := builder.NewBookingBuilder().
			WithTermsID(terms.ID()).
			WithRequesterID(requester).
			WithStatus(booking.StatusRequested).
			BuildReconstructed()
		view := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildView()

		s.expectTx()
		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockTerms.EXPECT().FindByID(gomock.Any(), terms.ID()).Return(terms, nil)
		s.mockBookings.EXPECT().UpdateStatus(gomock.Any(), entity.ID(), booking.StatusConfirmed).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(view, nil)

		_, err := s.cmds.Confirm(context.Background(), admin, entity.ID())
		s.NoError(err)
	})

	s.Run("error: requester cannot confirm their own booking", func() {
		stranger := identity.Actor{UserID: requester, Role: identity.RoleMember}
		terms := s.buildTerms(uuid.New())
		entity := builder.NewBookingBuilder().
			WithTermsID(terms.ID()).
			WithRequesterID(requester).
			WithStatus(booking.StatusRequested).
			BuildReconstructed()

		s.expectTx()
		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockTerms.EXPECT().FindByID(gomock.Any(), terms.ID()).Return(terms, nil)

		_, err := s.cmds.Confirm(context.Background(), stranger, entity.ID())
		s.ErrorIs(err, errs.ErrUnauthorized)
	})

	s.Run("error: cancelled booking cannot be confirmed", func() {
		terms := s.buildTerms(owner.UserID)
		entity := builder.NewBookingBuilder().
			WithTermsID(terms.ID()).
			WithRequesterID(requester).
			WithStatus(booking.StatusCancelled).
			BuildReconstructed()

		s.expectTx()
		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)
		s.mockTerms.EXPECT().FindByID(gomock.Any(), terms.ID()).Return(terms, nil)

		_, err := s.cmds.Confirm(context.Background(), owner, entity.ID())
		s.ErrorIs(err, errs.ErrInvalidStateTransition)
	})

	s.Run("error: unknown booking id", func() {
		id := uuid.New()

		s.expectTx()
		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), id).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "booking not found"))

		_, err := s.cmds.Confirm(context.Background(), owner, id)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingCommandsTestSuite) TestCancel() {
	requester := identity.Actor{UserID: uuid.New(), Role: identity.RoleMember}

	cancellable := []booking.Status{booking.StatusRequested, booking.StatusConfirmed}
	for _, st := range cancellable {
		s.Run("success: requester cancels a "+st.String()+" booking", func() {
			entity := builder.NewBookingBuilder().
				WithRequesterID(requester.UserID).
				WithStatus(st).
				BuildReconstructed()
			view := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildView()

			s.expectTx()
			s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)
			s.mockBookings.EXPECT().UpdateStatus(gomock.Any(), entity.ID(), booking.StatusCancelled).Return(nil)
			s.mockReadStore.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(view, nil)

			got, err := s.cmds.Cancel(context.Background(), requester, entity.ID())
			s.NoError(err)
			s.Equal(view, got)
		})
	}

	s.Run("error: only the requester may cancel", func() {
		other := identity.Actor{UserID: uuid.New(), Role: identity.RoleAdmin}
		entity := builder.NewBookingBuilder().
			WithRequesterID(requester.UserID).
			WithStatus(booking.StatusRequested).
			BuildReconstructed()

		s.expectTx()
		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.cmds.Cancel(context.Background(), other, entity.ID())
		s.ErrorIs(err, errs.ErrUnauthorized)
	})

	s.Run("error: completed booking cannot be cancelled", func() {
		entity := builder.NewBookingBuilder().
			WithRequesterID(requester.UserID).
			WithStatus(booking.StatusCompleted).
			BuildReconstructed()

		s.expectTx()
		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), entity.ID()).Return(entity, nil)

		_, err := s.cmds.Cancel(context.Background(), requester, entity.ID())
		s.ErrorIs(err, errs.ErrInvalidStateTransition)
	})

	s.Run("error: unknown booking id", func() {
		id := uuid.New()

		s.expectTx()
		s.mockBookings.EXPECT().FindByIDForUpdate(gomock.Any(), id).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "booking not found"))

		_, err := s.cmds.Cancel(context.Background(), requester, id)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})
}
