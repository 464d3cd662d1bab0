//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"rentmarket/internal/handler/dto/request"
	"rentmarket/internal/handler/dto/response"
	"rentmarket/internal/pkg/identity"
	"rentmarket/tests/common/authtest"
	"rentmarket/tests/common/dbtest"
	"rentmarket/tests/common/httptest"
	"rentmarket/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/bookings"
	availabilityURL = "/api/assets/%s/availability?start_date=%s&end_date=%s"
	assetBookingsURL = "/api/assets/%s/bookings"

	dateLayout = "2006-01-02"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// rentable seeds an asset with daily-only rates and returns asset and terms ids.
func (s *BookingSuite) rentable(t *testing.T, ownerID uuid.UUID, dailyRateCents int64) (uuid.UUID, uuid.UUID) {
	t.Helper()
	assetID := dbtest.CreateTestAsset(t, s.DB, ownerID, "Campervan")
	termsID := dbtest.CreateTestRentalTerms(t, s.DB, assetID, ownerID, dailyRateCents)
	return assetID, termsID
}

func futureDate(daysAhead int) time.Time {
	return time.Now().UTC().AddDate(0, 0, daysAhead).Truncate(24 * time.Hour)
}

func bookingRequest(assetID uuid.UUID, start, end time.Time) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		AssetID:   assetID,
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
	}
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: user books a free range and gets a priced booking", func() {
		t := s.T()

		ownerID := uuid.New()
		requesterID := uuid.New()
		assetID, termsID := s.rentable(t, ownerID, 5000)
		token := s.jwt.GenerateToken(t, requesterID, identity.RoleMember)

		start := futureDate(30)
		end := futureDate(34) // 5 days inclusive

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, bookingRequest(assetID, start, end), token)
		require.Equal(t, http.StatusCreated, w.Code, "should create booking: %s", w.Body.String())

		var actual response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)

		expected := &response.BookingResponse{
			AssetID:          assetID,
			AssetTitle:       "Campervan",
			RentalTermsID:    termsID,
			RequesterID:      requesterID,
			StartDate:        start.Format(dateLayout),
			EndDate:          end.Format(dateLayout),
			TotalAmountCents: 25000,
			Status:           "REQUESTED",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: range adjacent to an existing booking is accepted", func() {
		t := s.T()

		ownerID := uuid.New()
		assetID, termsID := s.rentable(t, ownerID, 5000)
		dbtest.CreateTestBooking(t, s.DB, termsID, assetID, uuid.New(),
			futureDate(10), futureDate(14), 25000, "CONFIRMED")

		token := s.jwt.GenerateToken(t, uuid.New(), identity.RoleMember)

		// Starts the day after the existing booking ends
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(assetID, futureDate(15), futureDate(18)), token)
		require.Equal(t, http.StatusCreated, w.Code, "adjacent range must not conflict: %s", w.Body.String())
	})

	s.Run("Error case: overlapping range is rejected with 409", func() {
		t := s.T()

		ownerID := uuid.New()
		assetID, termsID := s.rentable(t, ownerID, 5000)
		dbtest.CreateTestBooking(t, s.DB, termsID, assetID, uuid.New(),
			futureDate(10), futureDate(14), 25000, "REQUESTED")

		token := s.jwt.GenerateToken(t, uuid.New(), identity.RoleMember)

		// Shares the last day of the existing booking
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(assetID, futureDate(14), futureDate(16)), token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Normal case: cancelled booking does not block the range", func() {
		t := s.T()

		ownerID := uuid.New()
		assetID, termsID := s.rentable(t, ownerID, 5000)
		dbtest.CreateTestBooking(t, s.DB, termsID, assetID, uuid.New(),
			futureDate(10), futureDate(14), 25000, "CANCELLED")

		token := s.jwt.GenerateToken(t, uuid.New(), identity.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(assetID, futureDate(12), futureDate(13)), token)
		require.Equal(t, http.StatusCreated, w.Code, "cancelled bookings release their dates: %s", w.Body.String())
	})

	s.Run("Error case: asset without rental terms returns 404", func() {
		t := s.T()

		assetID := dbtest.CreateTestAsset(t, s.DB, uuid.New(), "Unlisted asset")
		token := s.jwt.GenerateToken(t, uuid.New(), identity.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(assetID, futureDate(10), futureDate(12)), token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: start date in the past returns 400", func() {
		t := s.T()

		ownerID := uuid.New()
		assetID, _ := s.rentable(t, ownerID, 5000)
		token := s.jwt.GenerateToken(t, uuid.New(), identity.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(assetID, futureDate(-5), futureDate(-2)), token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: missing token returns 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(uuid.New(), futureDate(10), futureDate(12)), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestConcurrentBooking - at most one booking wins an overlapping range
// =============================================================================

func (s *BookingSuite) TestConcurrentBooking() {
	s.Run("Concurrency: N requests for the same range produce exactly one booking", func() {
		t := s.T()

		ownerID := uuid.New()
		assetID, termsID := s.rentable(t, ownerID, 5000)

		const workers = 8
		start := futureDate(20)
		end := futureDate(24)

		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			token := s.jwt.GenerateToken(t, uuid.New(), identity.RoleMember)
			go func(idx int, token string) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
					bookingRequest(assetID, start, end), token)
				codes[idx] = w.Code
			}(i, token)
		}
		wg.Wait()

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				t.Errorf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, created, "exactly one request must win the range")
		require.Equal(t, workers-1, conflicted, "all others must see a conflict")

		var active int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM bookings WHERE rental_terms_id = $1 AND status IN ('REQUESTED','CONFIRMED')",
			termsID).Scan(&active)
		require.NoError(t, err)
		require.Equal(t, 1, active)
	})
}

// =============================================================================
// TestBookingLifecycle - confirm and cancel transitions over HTTP
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: requested booking is confirmed by the owner then cancelled by the requester", func() {
		t := s.T()

		ownerID := uuid.New()
		requesterID := uuid.New()
		assetID, _ := s.rentable(t, ownerID, 5000)

		requesterToken := s.jwt.GenerateToken(t, requesterID, identity.RoleMember)
		ownerToken := s.jwt.GenerateToken(t, ownerID, identity.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(assetID, futureDate(10), futureDate(12)), requesterToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		confirmURL := bookingsURL + "/" + created.ID.String() + "/confirm"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL, nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, "owner confirms: %s", w.Body.String())

		var confirmed response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &confirmed))
		require.Equal(t, "CONFIRMED", confirmed.Status)

		cancelURL := bookingsURL + "/" + created.ID.String() + "/cancel"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, requesterToken)
		require.Equal(t, http.StatusOK, w.Code, "requester cancels: %s", w.Body.String())

		var cancelled response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cancelled))
		require.Equal(t, "CANCELLED", cancelled.Status)

		// Cancelled is terminal
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL, nil, ownerToken)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: requester cannot confirm, stranger cannot cancel", func() {
		t := s.T()

		ownerID := uuid.New()
		requesterID := uuid.New()
		assetID, _ := s.rentable(t, ownerID, 5000)

		requesterToken := s.jwt.GenerateToken(t, requesterID, identity.RoleMember)
		strangerToken := s.jwt.GenerateToken(t, uuid.New(), identity.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(assetID, futureDate(10), futureDate(12)), requesterToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/confirm", nil, requesterToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/cancel", nil, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Normal case: admin can confirm on behalf of the owner", func() {
		t := s.T()

		ownerID := uuid.New()
		assetID, _ := s.rentable(t, ownerID, 5000)

		requesterToken := s.jwt.GenerateToken(t, uuid.New(), identity.RoleMember)
		adminToken := s.jwt.GenerateToken(t, uuid.New(), identity.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequest(assetID, futureDate(10), futureDate(12)), requesterToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/confirm", nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

// =============================================================================
// TestAvailability - public availability and listing endpoints
// =============================================================================

func (s *BookingSuite) TestAvailability() {
	s.Run("Normal case: free range reports available with an estimate", func() {
		t := s.T()

		ownerID := uuid.New()
		assetID, _ := s.rentable(t, ownerID, 5000)

		url := fmt.Sprintf(availabilityURL, assetID,
			futureDate(10).Format(dateLayout), futureDate(14).Format(dateLayout))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var result response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &result))
		require.True(t, result.Available)
		require.Equal(t, int64(25000), result.EstimatedAmountCents)
	})

	s.Run("Normal case: booked range reports unavailable", func() {
		t := s.T()

		ownerID := uuid.New()
		assetID, termsID := s.rentable(t, ownerID, 5000)
		dbtest.CreateTestBooking(t, s.DB, termsID, assetID, uuid.New(),
			futureDate(10), futureDate(14), 25000, "REQUESTED")

		url := fmt.Sprintf(availabilityURL, assetID,
			futureDate(14).Format(dateLayout), futureDate(16).Format(dateLayout))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var result response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &result))
		require.False(t, result.Available)
	})

	s.Run("Normal case: owner lists bookings for their asset, stranger is refused", func() {
		t := s.T()

		ownerID := uuid.New()
		assetID, termsID := s.rentable(t, ownerID, 5000)
		dbtest.CreateTestBooking(t, s.DB, termsID, assetID, uuid.New(),
			futureDate(10), futureDate(14), 25000, "REQUESTED")

		url := fmt.Sprintf(assetBookingsURL, assetID)

		ownerToken := s.jwt.GenerateToken(t, ownerID, identity.RoleMember)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code)

		var items []response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 1)

		strangerToken := s.jwt.GenerateToken(t, uuid.New(), identity.RoleMember)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Normal case: requester lists own bookings with a status filter", func() {
		t := s.T()

		ownerID := uuid.New()
		requesterID := uuid.New()
		assetID, termsID := s.rentable(t, ownerID, 5000)
		dbtest.CreateTestBooking(t, s.DB, termsID, assetID, requesterID,
			futureDate(10), futureDate(12), 15000, "REQUESTED")
		dbtest.CreateTestBooking(t, s.DB, termsID, assetID, requesterID,
			futureDate(20), futureDate(22), 15000, "CANCELLED")

		token := s.jwt.GenerateToken(t, requesterID, identity.RoleMember)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?status=REQUESTED", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var items []response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 1)
		require.Equal(t, "REQUESTED", items[0].Status)
	})
}
