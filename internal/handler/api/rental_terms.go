package api

import (
	"errors"
	"net/http"

	reqdto "rentmarket/internal/handler/dto/request"
	resdto "rentmarket/internal/handler/dto/response"
	"rentmarket/internal/handler/httperr"
	"rentmarket/internal/handler/middleware"
	"rentmarket/internal/pkg/errs"
	"rentmarket/internal/usecase/commands"
	"rentmarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RentalTermsHandler struct {
	cmds commands.RentalTermsCommands
	q    queries.RentalTermsQueries
}

func NewRentalTermsHandler(cmds commands.RentalTermsCommands, q queries.RentalTermsQueries) *RentalTermsHandler {
	return &RentalTermsHandler{cmds: cmds, q: q}
}

// @Summary Create rental terms
// @Description Publish rental rates for an owned asset
// @Tags rental-terms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRentalTermsRequest true "Rental terms"
// @Success 201 {object} resdto.RentalTermsResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rental-terms [post]
func (h *RentalTermsHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateRentalTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), actor, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAssetNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Asset not found", nil)
		case errors.Is(err, errs.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the asset owner can publish rental terms", nil)
		case errors.Is(err, errs.ErrInvalidRates):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental rates", nil)
		case errors.Is(err, errs.ErrTermsAlreadyExist):
			httperr.AbortWithError(c, http.StatusConflict, err, "Rental terms already exist for this asset", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRentalTermsView(view))
}

// @Summary Get rental terms
// @Description Get the rental terms published for an asset
// @Tags rental-terms
// @Produce json
// @Param assetId path string true "Asset ID"
// @Success 200 {object} resdto.RentalTermsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /assets/{assetId}/rental-terms [get]
func (h *RentalTermsHandler) GetByAsset(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("assetId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid asset ID format", nil)
		return
	}

	view, err := h.q.GetByAssetID(c.Request.Context(), assetID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRentalTermsNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Rental terms not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalTermsView(view))
}

// @Summary Update rental terms
// @Description Update rates on own rental terms; existing bookings keep their price
// @Tags rental-terms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental terms ID"
// @Param request body reqdto.UpdateRentalTermsRequest true "Rate changes"
// @Success 200 {object} resdto.RentalTermsResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rental-terms/{id} [patch]
func (h *RentalTermsHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental terms ID format", nil)
		return
	}

	var req reqdto.UpdateRentalTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), actor, id, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRentalTermsNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Rental terms not found", nil)
		case errors.Is(err, errs.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the asset owner can update rental terms", nil)
		case errors.Is(err, errs.ErrInvalidRates):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental rates", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalTermsView(view))
}

// @Summary Delete rental terms
// @Description Withdraw an asset from rental; blocked while active bookings exist
// @Tags rental-terms
// @Security BearerAuth
// @Param id path string true "Rental terms ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rental-terms/{id} [delete]
func (h *RentalTermsHandler) Delete(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental terms ID format", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrRentalTermsNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Rental terms not found", nil)
		case errors.Is(err, errs.ErrUnauthorized):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the asset owner can delete rental terms", nil)
		case errors.Is(err, errs.ErrActiveBookingsExist):
			httperr.AbortWithError(c, http.StatusConflict, err, "Asset has active bookings", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
