package api

import (
	"context"
	"errors"
	"net/http"

	"rentmarket/internal/domain/booking"
	reqdto "rentmarket/internal/handler/dto/request"
	resdto "rentmarket/internal/handler/dto/response"
	"rentmarket/internal/handler/httperr"
	"rentmarket/internal/handler/middleware"
	"rentmarket/internal/pkg/errs"
	"rentmarket/internal/pkg/identity"
	"rentmarket/internal/usecase/commands"
	"rentmarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Request a booking for an asset over an inclusive date range
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), actor, params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRentalTermsNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Asset is not available for rent", nil)
		case errors.Is(err, errs.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		case errors.Is(err, errs.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Asset is already booked for the selected dates", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking by ID (requester, asset owner or admin)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, errs.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List bookings made by the current user, optionally filtered by status
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status filter"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var statusFilter *booking.Status
	if v := c.Query("status"); v != "" {
		status := booking.Status(v)
		if !status.IsValid() {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("unknown status"), "Unknown booking status", nil)
			return
		}
		statusFilter = &status
	}

	items, err := h.q.ListByRequester(c.Request.Context(), actor, statusFilter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}

// @Summary Confirm booking
// @Description Confirm a requested booking (asset owner or admin)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.cmds.Confirm)
}

// @Summary Cancel booking
// @Description Cancel an own booking before it is completed
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.Cancel)
}

// @Summary List asset bookings
// @Description List bookings for an asset (asset owner or admin)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param assetId path string true "Asset ID"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /assets/{assetId}/bookings [get]
func (h *BookingHandler) ListByAsset(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	assetID, err := uuid.Parse(c.Param("assetId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid asset ID format", nil)
		return
	}

	items, err := h.q.ListByAsset(c.Request.Context(), actor, assetID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAssetNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Asset not found", nil)
		case errors.Is(err, errs.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}

// @Summary Check availability
// @Description Check whether an asset is free over a date range and estimate the cost
// @Tags bookings
// @Produce json
// @Param assetId path string true "Asset ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /assets/{assetId}/availability [get]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("assetId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid asset ID format", nil)
		return
	}

	start, err := reqdto.ParseDate(c.Query("start_date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start_date", nil)
		return
	}
	end, err := reqdto.ParseDate(c.Query("end_date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid end_date", nil)
		return
	}

	result, err := h.q.CheckAvailability(c.Request.Context(), assetID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRentalTermsNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Asset is not available for rent", nil)
		case errors.Is(err, errs.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityResult(result))
}

func (h *BookingHandler) transition(c *gin.Context, op func(ctx context.Context, actor identity.Actor, id uuid.UUID) (*queries.BookingView, error)) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := op(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, errs.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, errs.ErrInvalidStateTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking cannot change to the requested status", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
