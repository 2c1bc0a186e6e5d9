package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
	"github.com/PFTrackr/fin_tracker_app/internal/dto"
)

// linkingHandler holds dependencies for messaging-channel linking endpoints.
type linkingHandler struct {
	linkingService portssvc.LinkingSvcFacade
}

func newLinkingHandler(svc portssvc.LinkingSvcFacade) *linkingHandler {
	return &linkingHandler{linkingService: svc}
}

// registerLinkingRoutes sets up the authenticated linking endpoints under /linking.
func registerLinkingRoutes(rg *gin.RouterGroup, svc portssvc.LinkingSvcFacade) {
	h := newLinkingHandler(svc)
	linking := rg.Group("/linking")
	{
		linking.POST("/code", h.issueCode)
		linking.GET("/status", h.linkStatus)
	}
}

// registerLinkingRedeemRoute exposes the redeem endpoint without JWT auth. The
// channel side (a bot service) authenticates with the one-time code itself.
func registerLinkingRedeemRoute(r *gin.Engine, svc portssvc.LinkingSvcFacade) {
	h := newLinkingHandler(svc)
	r.POST("/api/v1/linking/redeem", h.redeemCode)
}

// issueCode godoc
// @Summary Issue a linking code
// @Description Generates a short-lived one-time code to link a messaging channel account to the authenticated user.
// @Tags linking
// @Accept json
// @Produce json
// @Param request body dto.IssueLinkingCodeRequest true "Channel to link"
// @Success 201 {object} dto.IssueLinkingCodeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /linking/code [post]
func (h *linkingHandler) issueCode(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	var req dto.IssueLinkingCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	code, err := h.linkingService.IssueCode(c.Request.Context(), userID, req.Channel)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.IssueLinkingCodeResponse{Code: code.Code, ExpiresAt: code.ExpiresAt})
}

// redeemCode godoc
// @Summary Redeem a linking code
// @Description Consumes a one-time code presented from the channel side and records the link.
// @Tags linking
// @Accept json
// @Produce json
// @Param request body dto.RedeemLinkingCodeRequest true "Code and channel account"
// @Success 200 {object} dto.LinkStatusResponse
// @Failure 400 {object} ErrorResponse
// @Router /linking/redeem [post]
func (h *linkingHandler) redeemCode(c *gin.Context) {
	var req dto.RedeemLinkingCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	link, err := h.linkingService.RedeemCode(c.Request.Context(), req.Code, req.ChannelAccountID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LinkStatusResponse{Channel: link.Channel, Linked: true})
}

// linkStatus godoc
// @Summary Check link status
// @Description Reports whether the authenticated user has linked the given channel.
// @Tags linking
// @Produce json
// @Param channel query string true "Channel name"
// @Success 200 {object} dto.LinkStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /linking/status [get]
func (h *linkingHandler) linkStatus(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	channel := c.Query("channel")
	if channel == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "channel query parameter is required"})
		return
	}
	linked, err := h.linkingService.IsLinked(c.Request.Context(), userID, channel)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LinkStatusResponse{Channel: channel, Linked: linked})
}
