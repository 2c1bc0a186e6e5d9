package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/dto"
)

// billingCycleHandler holds dependencies for billing cycle endpoints.
type billingCycleHandler struct {
	cycleService portssvc.BillingCycleSvcFacade
}

func newBillingCycleHandler(svc portssvc.BillingCycleSvcFacade) *billingCycleHandler {
	return &billingCycleHandler{cycleService: svc}
}

// registerBillingCycleRoutes sets up the endpoints under /billing-cycles.
func registerBillingCycleRoutes(rg *gin.RouterGroup, svc portssvc.BillingCycleSvcFacade) {
	h := newBillingCycleHandler(svc)
	cycles := rg.Group("/billing-cycles")
	{
		cycles.POST("", h.createBillingCycle)
		cycles.GET("", h.listBillingCycles)
		cycles.PUT("/:cycleID", h.updateBillingCycle)
		cycles.DELETE("/:cycleID", h.deleteBillingCycle)
	}
}

// createBillingCycle godoc
// @Summary Create a billing cycle
// @Description Opens a new billing cycle for the authenticated user.
// @Tags billing-cycles
// @Accept json
// @Produce json
// @Param cycle body dto.CreateBillingCycleRequest true "Cycle details"
// @Success 201 {object} dto.BillingCycleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /billing-cycles [post]
func (h *billingCycleHandler) createBillingCycle(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	var req dto.CreateBillingCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	cycle, err := h.cycleService.CreateBillingCycle(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToBillingCycleResponse(*cycle))
}

// listBillingCycles godoc
// @Summary List billing cycles
// @Description Returns all billing cycles owned by the authenticated user, newest first.
// @Tags billing-cycles
// @Produce json
// @Success 200 {array} dto.BillingCycleResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /billing-cycles [get]
func (h *billingCycleHandler) listBillingCycles(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	cycles, err := h.cycleService.ListBillingCycles(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBillingCycleResponseSlice(cycles))
}

// updateBillingCycle godoc
// @Summary Update a billing cycle
// @Description Updates a billing cycle owned by the authenticated user.
// @Tags billing-cycles
// @Accept json
// @Produce json
// @Param cycleID path string true "Cycle ID"
// @Param cycle body dto.UpdateBillingCycleRequest true "Fields to update"
// @Success 200 {object} dto.BillingCycleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /billing-cycles/{cycleID} [put]
func (h *billingCycleHandler) updateBillingCycle(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateBillingCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	cycle, err := h.cycleService.UpdateBillingCycle(c.Request.Context(), c.Param("cycleID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBillingCycleResponse(*cycle))
}

// deleteBillingCycle godoc
// @Summary Delete a billing cycle
// @Description Removes a billing cycle owned by the authenticated user.
// @Tags billing-cycles
// @Param cycleID path string true "Cycle ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /billing-cycles/{cycleID} [delete]
func (h *billingCycleHandler) deleteBillingCycle(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	if err := h.cycleService.DeleteBillingCycle(c.Request.Context(), c.Param("cycleID"), userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
