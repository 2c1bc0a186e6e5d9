package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/PFTrackr/fin_tracker_app/internal/core/ports/services"
)

// analyticsHandler holds dependencies for derived analytics endpoints.
type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvcFacade
}

func newAnalyticsHandler(svc portssvc.AnalyticsSvcFacade) *analyticsHandler {
	return &analyticsHandler{analyticsService: svc}
}

// registerAnalyticsRoutes sets up the analytics endpoints under /analytics.
func registerAnalyticsRoutes(rg *gin.RouterGroup, svc portssvc.AnalyticsSvcFacade) {
	h := newAnalyticsHandler(svc)
	analytics := rg.Group("/analytics")
	{
		analytics.GET("/summary", h.getSummary)
		analytics.GET("/daily-comparison", h.getDailyComparison)
		analytics.GET("/trend", h.getTrend)
		analytics.GET("/category-breakdown", h.getCategoryBreakdown)
		analytics.GET("/fund-progress", h.getFundProgress)
		analytics.GET("/installment-projections", h.getInstallmentProjections)
	}
}

// cycleScope reads the optional cycleID query parameter; absent means all.
func cycleScope(c *gin.Context) string {
	return c.DefaultQuery("cycleID", "all")
}

// getSummary godoc
// @Summary Cycle summary totals
// @Description Returns income and expense totals and the balance for the selected cycle scope.
// @Tags analytics
// @Produce json
// @Param cycleID query string false "Billing cycle ID or 'all'" default(all)
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/summary [get]
func (h *analyticsHandler) getSummary(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	resp, err := h.analyticsService.Summary(c.Request.Context(), userID, cycleScope(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getDailyComparison godoc
// @Summary Today vs yesterday
// @Description Compares today's expense total against yesterday's.
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.DailyComparisonResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/daily-comparison [get]
func (h *analyticsHandler) getDailyComparison(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	resp, err := h.analyticsService.DailyComparison(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTrend godoc
// @Summary Income vs expense trend
// @Description Returns current and previous cycle income/expense points.
// @Tags analytics
// @Produce json
// @Param cycleID query string false "Billing cycle ID or 'all'" default(all)
// @Success 200 {object} dto.TrendResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/trend [get]
func (h *analyticsHandler) getTrend(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	resp, err := h.analyticsService.Trend(c.Request.Context(), userID, cycleScope(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getCategoryBreakdown godoc
// @Summary Expenses by category
// @Description Buckets cycle-scoped expenses by category, largest first.
// @Tags analytics
// @Produce json
// @Param cycleID query string false "Billing cycle ID or 'all'" default(all)
// @Success 200 {object} dto.CategoryBreakdownResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/category-breakdown [get]
func (h *analyticsHandler) getCategoryBreakdown(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	resp, err := h.analyticsService.CategoryBreakdown(c.Request.Context(), userID, cycleScope(c))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getFundProgress godoc
// @Summary Savings fund progress
// @Description Ranks the user's savings funds by progress toward their targets.
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.FundProgressResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/fund-progress [get]
func (h *analyticsHandler) getFundProgress(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	resp, err := h.analyticsService.FundProgress(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getInstallmentProjections godoc
// @Summary Installment projections
// @Description Projects remaining balances for active installment purchases.
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.InstallmentProjectionResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /analytics/installment-projections [get]
func (h *analyticsHandler) getInstallmentProjections(c *gin.Context) {
	userID, ok := middlewareUserID(c)
	if !ok {
		return
	}
	resp, err := h.analyticsService.InstallmentProjections(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
