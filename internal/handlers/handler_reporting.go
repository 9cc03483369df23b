package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pharmastock/pharmastock_backend/internal/core/domain"
	portssvc "github.com/pharmastock/pharmastock_backend/internal/core/ports/services"
	"github.com/pharmastock/pharmastock_backend/internal/dto"
	"github.com/pharmastock/pharmastock_backend/internal/middleware"
)

// topSellingLimit caps the ranked top-sellers report.
const topSellingLimit = 10

// reportingHandler handles HTTP requests for the derived report views.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: reportingService,
	}
}

// registerReportingRoutes sets up the routes for reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/sales", h.getSalesReport)
		reports.GET("/purchases", h.getPurchaseReport)
		reports.GET("/profit", h.getProfit)
		reports.GET("/stock", h.getStockReport)
		reports.GET("/top-selling", h.getTopSelling)
		reports.GET("/daily", h.getDailyBreakdown)
		reports.GET("/dashboard", h.getDashboardStats)
	}
}

// bindReportParams parses the shared period query parameter.
func bindReportParams(c *gin.Context) (domain.ReportPeriod, bool) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Invalid report parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return "", false
	}
	return domain.ReportPeriod(params.Period), true
}

// getSalesReport godoc
// @Summary Windowed sales summary
// @Description Aggregates sale transactions dated inside the reporting window
// @Tags reports
// @Accept json
// @Produce json
// @Param period query string false "Reporting window" Enums(week, month, year, all) default(month)
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/sales [get]
func (h *reportingHandler) getSalesReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, ok := bindReportParams(c)
	if !ok {
		return
	}

	now := time.Now()
	summary, err := h.reportingService.SalesReport(c.Request.Context(), period, now)
	if err != nil {
		logger.Error("Failed to build sales report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesReportResponse(summary, period, now))
}

// getPurchaseReport godoc
// @Summary Windowed purchase summary
// @Description Aggregates purchase transactions dated inside the reporting window
// @Tags reports
// @Accept json
// @Produce json
// @Param period query string false "Reporting window" Enums(week, month, year, all) default(month)
// @Success 200 {object} dto.PurchaseReportResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/purchases [get]
func (h *reportingHandler) getPurchaseReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, ok := bindReportParams(c)
	if !ok {
		return
	}

	now := time.Now()
	summary, err := h.reportingService.PurchaseReport(c.Request.Context(), period, now)
	if err != nil {
		logger.Error("Failed to build purchase report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseReportResponse(summary, period, now))
}

// getProfit godoc
// @Summary Windowed profit
// @Description Sale totals minus purchase totals over transactions dated inside the window
// @Tags reports
// @Accept json
// @Produce json
// @Param period query string false "Reporting window" Enums(week, month, year, all) default(month)
// @Success 200 {object} dto.ProfitResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/profit [get]
func (h *reportingHandler) getProfit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, ok := bindReportParams(c)
	if !ok {
		return
	}

	now := time.Now()
	profit, err := h.reportingService.Profit(c.Request.Context(), period, now)
	if err != nil {
		logger.Error("Failed to compute profit", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ProfitResponse{
		Period:   string(period),
		FromDate: period.StartDate(now).Format("2006-01-02"),
		ToDate:   now.Format("2006-01-02"),
		Profit:   profit,
	})
}

// getStockReport godoc
// @Summary Current stock report
// @Description Lists every item with its valuation and expiry flags
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} dto.StockReportResponse
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/stock [get]
func (h *reportingHandler) getStockReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.StockReport(c.Request.Context(), time.Now())
	if err != nil {
		logger.Error("Failed to build stock report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStockReportResponse(rows))
}

// getTopSelling godoc
// @Summary Top selling items
// @Description Ranks items by sale revenue inside the window, capped at ten rows
// @Tags reports
// @Accept json
// @Produce json
// @Param period query string false "Reporting window" Enums(week, month, year, all) default(month)
// @Success 200 {array} dto.TopSellingItemResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/top-selling [get]
func (h *reportingHandler) getTopSelling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, ok := bindReportParams(c)
	if !ok {
		return
	}

	ranked, err := h.reportingService.TopSellingItems(c.Request.Context(), period, time.Now(), topSellingLimit)
	if err != nil {
		logger.Error("Failed to build top sellers report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTopSellingResponse(ranked))
}

// getDailyBreakdown godoc
// @Summary Daily sales and purchase totals
// @Description Groups windowed transactions by calendar day for trend views
// @Tags reports
// @Accept json
// @Produce json
// @Param period query string false "Reporting window" Enums(week, month, year, all) default(month)
// @Success 200 {object} dto.DailyBreakdownResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/daily [get]
func (h *reportingHandler) getDailyBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, ok := bindReportParams(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.DailyBreakdown(c.Request.Context(), period, time.Now())
	if err != nil {
		logger.Error("Failed to build daily breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.DailyBreakdownResponse{
		Period: string(period),
		Days:   rows,
	})
}

// getDashboardStats godoc
// @Summary Dashboard snapshot
// @Description Summarizes both ledgers for the landing view
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboardStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.reportingService.DashboardStats(c.Request.Context(), time.Now())
	if err != nil {
		logger.Error("Failed to build dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
