package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodmeal/backend/internal/apierror"
	"github.com/moodmeal/backend/internal/service"
)

const (
	defaultCorrelationDays = 30
	defaultTrendMonths     = 6
	defaultInsightDays     = 30
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetCorrelations handles GET /api/v1/analytics/correlations
func (h *AnalyticsHandler) GetCorrelations(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	days := intQuery(c, "days", defaultCorrelationDays)
	if days < 1 {
		days = defaultCorrelationDays
	}

	resp, err := h.analyticsService.GetCorrelations(c.Request.Context(), userID, days)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTrends handles GET /api/v1/analytics/trends
func (h *AnalyticsHandler) GetTrends(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", "monthly")
	months := intQuery(c, "months", defaultTrendMonths)
	if months < 1 {
		months = defaultTrendMonths
	}

	resp, err := h.analyticsService.GetTrends(c.Request.Context(), userID, period, months)
	if err != nil {
		requestID := apierror.GetRequestID(c)
		if errors.Is(err, service.ErrInvalidPeriod) {
			apierror.WriteProblem(c, apierror.NewInvalidPeriodError(requestID, period))
			return
		}
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetInsights handles GET /api/v1/analytics/insights
func (h *AnalyticsHandler) GetInsights(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	days := intQuery(c, "days", defaultInsightDays)
	if days < 1 {
		days = defaultInsightDays
	}

	resp, err := h.analyticsService.GetInsights(c.Request.Context(), userID, days)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Export handles GET /api/v1/analytics/export
func (h *AnalyticsHandler) Export(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{{
			Field:   "format",
			Message: "must be one of: json, csv",
			Code:    "oneof",
		}}))
		return
	}

	startDate, ok := optionalTimeQuery(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := optionalTimeQuery(c, "end_date")
	if !ok {
		return
	}

	payload, err := h.analyticsService.ExportData(c.Request.Context(), userID, startDate, endDate)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	if format == "csv" {
		filename := "moodmeal-export-" + time.Now().UTC().Format("2006-01-02") + ".csv"
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "text/csv", []byte(service.ConvertToCSV(payload)))
		return
	}

	c.JSON(http.StatusOK, payload)
}

// optionalTimeQuery parses an optional RFC3339 or YYYY-MM-DD query
// parameter.
func optionalTimeQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, true
	}

	requestID := apierror.GetRequestID(c)
	apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{{
		Field:   name,
		Message: "must be an RFC3339 timestamp or YYYY-MM-DD date",
		Code:    "invalid_format",
	}}))
	return nil, false
}
