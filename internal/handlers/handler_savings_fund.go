package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/dto"
)

// savingsFundHandler holds dependencies for savings fund endpoints.
type savingsFundHandler struct {
	fundService portssvc.SavingsFundSvcFacade
}

func newSavingsFundHandler(svc portssvc.SavingsFundSvcFacade) *savingsFundHandler {
	return &savingsFundHandler{fundService: svc}
}

// registerSavingsFundRoutes sets up the endpoints under /savings-funds.
func registerSavingsFundRoutes(rg *gin.RouterGroup, svc portssvc.SavingsFundSvcFacade) {
	h := newSavingsFundHandler(svc)
	funds := rg.Group("/savings-funds")
	{
		funds.POST("", h.createSavingsFund)
		funds.GET("", h.listSavingsFunds)
		funds.PUT("/:fundID", h.updateSavingsFund)
		funds.DELETE("/:fundID", h.deleteSavingsFund)
		funds.POST("/:fundID/deposit", h.deposit)
		funds.POST("/:fundID/withdraw", h.withdraw)
	}
}

// createSavingsFund godoc
// @Summary Create a savings fund
// @Description Creates a new savings goal for the authenticated user. The balance starts at zero.
// @Tags savings-funds
// @Accept json
// @Produce json
// @Param fund body dto.CreateSavingsFundRequest true "Fund details"
// @Success 201 {object} dto.SavingsFundResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings-funds [post]
func (h *savingsFundHandler) createSavingsFund(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	var req dto.CreateSavingsFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	fund, err := h.fundService.CreateSavingsFund(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSavingsFundResponse(*fund))
}

// listSavingsFunds godoc
// @Summary List savings funds
// @Description Returns all savings funds owned by the authenticated user.
// @Tags savings-funds
// @Produce json
// @Success 200 {array} dto.SavingsFundResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings-funds [get]
func (h *savingsFundHandler) listSavingsFunds(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	funds, err := h.fundService.ListSavingsFunds(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSavingsFundResponseSlice(funds))
}

// updateSavingsFund godoc
// @Summary Update a savings fund
// @Description Updates the name, target amount or target date of a fund. The balance only changes through deposits and withdrawals.
// @Tags savings-funds
// @Accept json
// @Produce json
// @Param fundID path string true "Fund ID"
// @Param fund body dto.UpdateSavingsFundRequest true "Fields to update"
// @Success 200 {object} dto.SavingsFundResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings-funds/{fundID} [put]
func (h *savingsFundHandler) updateSavingsFund(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateSavingsFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	fund, err := h.fundService.UpdateSavingsFund(c.Request.Context(), c.Param("fundID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSavingsFundResponse(*fund))
}

// deposit godoc
// @Summary Deposit into a savings fund
// @Description Moves money into the fund and records a DEPOSIT transaction.
// @Tags savings-funds
// @Accept json
// @Produce json
// @Param fundID path string true "Fund ID"
// @Param transfer body dto.FundTransferRequest true "Amount to deposit"
// @Success 200 {object} dto.SavingsFundResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings-funds/{fundID}/deposit [post]
func (h *savingsFundHandler) deposit(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	var req dto.FundTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	fund, err := h.fundService.Deposit(c.Request.Context(), c.Param("fundID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSavingsFundResponse(*fund))
}

// withdraw godoc
// @Summary Withdraw from a savings fund
// @Description Moves money out of the fund and records a WITHDRAWAL transaction. Fails if it would overdraw the balance.
// @Tags savings-funds
// @Accept json
// @Produce json
// @Param fundID path string true "Fund ID"
// @Param transfer body dto.FundTransferRequest true "Amount to withdraw"
// @Success 200 {object} dto.SavingsFundResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings-funds/{fundID}/withdraw [post]
func (h *savingsFundHandler) withdraw(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	var req dto.FundTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	fund, err := h.fundService.Withdraw(c.Request.Context(), c.Param("fundID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSavingsFundResponse(*fund))
}

// deleteSavingsFund godoc
// @Summary Delete a savings fund
// @Description Removes a savings fund owned by the authenticated user.
// @Tags savings-funds
// @Param fundID path string true "Fund ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /savings-funds/{fundID} [delete]
func (h *savingsFundHandler) deleteSavingsFund(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	if err := h.fundService.DeleteSavingsFund(c.Request.Context(), c.Param("fundID"), userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
