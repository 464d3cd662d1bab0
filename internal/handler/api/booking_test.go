//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"rentmarket/internal/domain/booking"
	"rentmarket/internal/handler/api"
	resdto "rentmarket/internal/handler/dto/response"
	"rentmarket/internal/pkg/errs"
	"rentmarket/internal/pkg/identity"
	"rentmarket/internal/usecase/queries"
	"rentmarket/tests/common/builder"
	"rentmarket/tests/common/httptest"
	"rentmarket/tests/common/testutil"
	commandsmock "rentmarket/tests/mock/commands"
	queriesmock "rentmarket/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	actorID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("actor", identity.Actor{UserID: s.actorID, Role: identity.RoleMember})
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings", authMiddleware, s.handler.ListMine)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.POST("/bookings/:id/confirm", authMiddleware, s.handler.Confirm)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.GET("/assets/:assetId/bookings", authMiddleware, s.handler.ListByAsset)
	s.router.GET("/assets/:assetId/availability", s.handler.CheckAvailability)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	missing := []testCaseBooking{
		{name: "missing field: asset_id (required)", mutate: testutil.Field("asset_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: start_date (required)", mutate: testutil.Field("start_date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: end_date (required)", mutate: testutil.Field("end_date", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseBooking{
		{name: "start_date not a date", mutate: testutil.Field("start_date", "October 1st"), expectCode: http.StatusBadRequest, expectInBody: "YYYY-MM-DD"},
		{name: "end_date wrong layout", mutate: testutil.Field("end_date", "05-10-2026"), expectCode: http.StatusBadRequest, expectInBody: "YYYY-MM-DD"},
	}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.Status, body.Status)
		s.Equal(returnView.StartDate.Format("2006-01-02"), body.StartDate)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseBooking{missing, malformed} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
				})
			}
		}
	})

	s.Run("error: 404 when the asset has no rental terms", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrRentalTermsNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not available for rent")
	})

	s.Run("error: 400 when the range is invalid", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidDateRange).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})

	s.Run("error: 409 when the dates are already booked", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrBookingConflict).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+returnView.ID.String(), nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 on unknown id", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).
			Return(nil, errs.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 for an unrelated user", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), id).
			Return(nil, errs.ErrUnauthorized).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("success: returns own bookings", func() {
		items := []*queries.BookingListItem{builder.NewBookingBuilder().BuildListItem()}
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), gomock.Any(), nil).
			Return(items, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var body []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(items[0].ID, body[0].ID)
	})

	s.Run("success: passes a valid status filter", func() {
		status := booking.StatusConfirmed
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), gomock.Any(), &status).
			Return([]*queries.BookingListItem{}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=CONFIRMED", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=SHIPPED", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown booking status")
	})
}

// ================================================================================
// TestConfirm / TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirm() {
	returnView := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildView()

	s.Run("success: returns the confirmed booking", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+returnView.ID.String()+"/confirm", nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CONFIRMED", body.Status)
	})

	s.Run("error: 409 on invalid transition", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), id).
			Return(nil, errs.ErrInvalidStateTransition).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot change")
	})

	s.Run("error: 403 when not the asset owner", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), id).
			Return(nil, errs.ErrUnauthorized).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	returnView := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildView()

	s.Run("success: returns the cancelled booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+returnView.ID.String()+"/cancel", nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELLED", body.Status)
	})

	s.Run("error: 404 on unknown id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).
			Return(nil, errs.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestListByAsset
// ================================================================================

func (s *BookingHandlerTestSuite) TestListByAsset() {
	assetID := uuid.New()

	s.Run("success: owner lists asset bookings", func() {
		items := []*queries.BookingListItem{builder.NewBookingBuilder().WithAssetID(assetID).BuildListItem()}
		s.mockQueries.EXPECT().ListByAsset(gomock.Any(), gomock.Any(), assetID).
			Return(items, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/assets/"+assetID.String()+"/bookings", nil, "bearer-token")

		var body []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("error: 404 on unknown asset", func() {
		s.mockQueries.EXPECT().ListByAsset(gomock.Any(), gomock.Any(), assetID).
			Return(nil, errs.ErrAssetNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/assets/"+assetID.String()+"/bookings", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Asset not found")
	})

	s.Run("error: 403 for non-owner", func() {
		s.mockQueries.EXPECT().ListByAsset(gomock.Any(), gomock.Any(), assetID).
			Return(nil, errs.ErrUnauthorized).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/assets/"+assetID.String()+"/bookings", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckAvailability() {
	assetID := uuid.New()
	url := "/assets/" + assetID.String() + "/availability?start_date=2026-10-01&end_date=2026-10-05"

	s.Run("success: no authentication required", func() {
		result := &queries.AvailabilityResult{Available: true, EstimatedAmountCents: 25000, Message: "Available for booking"}
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), assetID, gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.Equal(int64(25000), body.EstimatedAmountCents)
	})

	s.Run("error: 400 on missing dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/assets/"+assetID.String()+"/availability", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "start_date")
	})

	s.Run("error: 404 when the asset has no rental terms", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), assetID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrRentalTermsNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not available for rent")
	})
}
