package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jewelsoft/saraf-api/internal/application/service"
	"github.com/jewelsoft/saraf-api/internal/presentation/http/dto/response"
)

// ReportHandler handles dashboard and report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetDashboard returns the shop's dashboard statistics
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	stats, err := h.reportService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// GetForecast returns a moving-average sales projection
func (h *ReportHandler) GetForecast(c *gin.Context) {
	horizon, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	forecast, err := h.reportService.GetSalesForecast(c.Request.Context(), horizon)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales forecast retrieved successfully", forecast)
}

// GetCashFlow reports cash collected against expenses for a window
func (h *ReportHandler) GetCashFlow(c *gin.Context) {
	to := parseDate(c.Query("to"))
	if to.IsZero() {
		to = time.Now()
	}
	from := parseDate(c.Query("from"))
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}

	report, err := h.reportService.GetCashFlow(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cash flow report retrieved successfully", report)
}
