package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/dto"
)

// taxHandler holds dependencies for recurring tax endpoints.
type taxHandler struct {
	taxService portssvc.RecurringTaxSvcFacade
}

func newTaxHandler(svc portssvc.RecurringTaxSvcFacade) *taxHandler {
	return &taxHandler{taxService: svc}
}

// registerTaxRoutes sets up the recurring tax endpoints under /taxes.
func registerTaxRoutes(rg *gin.RouterGroup, svc portssvc.RecurringTaxSvcFacade) {
	h := newTaxHandler(svc)
	taxes := rg.Group("/taxes")
	{
		taxes.POST("", h.createRecurringTax)
		taxes.GET("", h.listRecurringTaxes)
		taxes.PUT("/:taxID", h.updateRecurringTax)
		taxes.DELETE("/:taxID", h.deleteRecurringTax)
	}
}

// createRecurringTax godoc
// @Summary Create a recurring tax
// @Description Registers a fixed monthly obligation due on a given day of the month.
// @Tags taxes
// @Accept json
// @Produce json
// @Param tax body dto.CreateRecurringTaxRequest true "Tax details"
// @Success 201 {object} dto.RecurringTaxResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /taxes [post]
func (h *taxHandler) createRecurringTax(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	var req dto.CreateRecurringTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	tax, err := h.taxService.CreateRecurringTax(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToRecurringTaxResponse(*tax))
}

// listRecurringTaxes godoc
// @Summary List recurring taxes
// @Description Returns all recurring taxes owned by the authenticated user, ordered by due day.
// @Tags taxes
// @Produce json
// @Success 200 {array} dto.RecurringTaxResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /taxes [get]
func (h *taxHandler) listRecurringTaxes(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	taxes, err := h.taxService.ListRecurringTaxes(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRecurringTaxResponseSlice(taxes))
}

// updateRecurringTax godoc
// @Summary Update a recurring tax
// @Description Updates a recurring tax owned by the authenticated user.
// @Tags taxes
// @Accept json
// @Produce json
// @Param taxID path string true "Tax ID"
// @Param tax body dto.UpdateRecurringTaxRequest true "Fields to update"
// @Success 200 {object} dto.RecurringTaxResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /taxes/{taxID} [put]
func (h *taxHandler) updateRecurringTax(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateRecurringTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	tax, err := h.taxService.UpdateRecurringTax(c.Request.Context(), c.Param("taxID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRecurringTaxResponse(*tax))
}

// deleteRecurringTax godoc
// @Summary Delete a recurring tax
// @Description Removes a recurring tax owned by the authenticated user.
// @Tags taxes
// @Param taxID path string true "Tax ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /taxes/{taxID} [delete]
func (h *taxHandler) deleteRecurringTax(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	if err := h.taxService.DeleteRecurringTax(c.Request.Context(), c.Param("taxID"), userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
