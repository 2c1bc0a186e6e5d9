package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/dto"
)

// paymentMethodHandler holds dependencies for payment method endpoints.
type paymentMethodHandler struct {
	paymentMethodService portssvc.PaymentMethodSvcFacade
}

func newPaymentMethodHandler(svc portssvc.PaymentMethodSvcFacade) *paymentMethodHandler {
	return &paymentMethodHandler{paymentMethodService: svc}
}

// registerPaymentMethodRoutes sets up the endpoints under /payment-methods.
func registerPaymentMethodRoutes(rg *gin.RouterGroup, svc portssvc.PaymentMethodSvcFacade) {
	h := newPaymentMethodHandler(svc)
	methods := rg.Group("/payment-methods")
	{
		methods.POST("", h.createPaymentMethod)
		methods.GET("", h.listPaymentMethods)
		methods.PUT("/:paymentMethodID", h.updatePaymentMethod)
		methods.DELETE("/:paymentMethodID", h.deletePaymentMethod)
	}
}

// createPaymentMethod godoc
// @Summary Create a payment method
// @Description Creates a new payment method for the authenticated user.
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param paymentMethod body dto.CreatePaymentMethodRequest true "Payment method details"
// @Success 201 {object} dto.PaymentMethodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-methods [post]
func (h *paymentMethodHandler) createPaymentMethod(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	method, err := h.paymentMethodService.CreatePaymentMethod(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(*method))
}

// listPaymentMethods godoc
// @Summary List payment methods
// @Description Returns all payment methods owned by the authenticated user.
// @Tags payment-methods
// @Produce json
// @Success 200 {array} dto.PaymentMethodResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-methods [get]
func (h *paymentMethodHandler) listPaymentMethods(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	methods, err := h.paymentMethodService.ListPaymentMethods(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentMethodResponseSlice(methods))
}

// updatePaymentMethod godoc
// @Summary Update a payment method
// @Description Updates a payment method owned by the authenticated user.
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param paymentMethodID path string true "Payment method ID"
// @Param paymentMethod body dto.UpdatePaymentMethodRequest true "Fields to update"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-methods/{paymentMethodID} [put]
func (h *paymentMethodHandler) updatePaymentMethod(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	var req dto.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	method, err := h.paymentMethodService.UpdatePaymentMethod(c.Request.Context(), c.Param("paymentMethodID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(*method))
}

// deletePaymentMethod godoc
// @Summary Delete a payment method
// @Description Removes a payment method owned by the authenticated user.
// @Tags payment-methods
// @Param paymentMethodID path string true "Payment method ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payment-methods/{paymentMethodID} [delete]
func (h *paymentMethodHandler) deletePaymentMethod(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	if err := h.paymentMethodService.DeletePaymentMethod(c.Request.Context(), c.Param("paymentMethodID"), userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
