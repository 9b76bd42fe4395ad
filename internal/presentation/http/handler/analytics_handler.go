package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/analytics"
	"github.com/wangari/glowdesk-api/internal/application/service"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
	"github.com/wangari/glowdesk-api/internal/presentation/http/dto/response"
)

// AnalyticsHandler handles reporting and analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// parseAnalyticsFilters reads window and scoping filters from the query
// string. Date fields accept both canonical and legacy aliases; the first
// non-empty alias wins and everything downstream sees only the canonical
// filter shape.
func parseAnalyticsFilters(c *gin.Context) analytics.Filters {
	filters := analytics.Filters{}

	if startStr := firstQuery(c, "start_date", "from", "date_from"); startStr != "" {
		if start, err := time.Parse("2006-01-02", startStr); err == nil {
			filters.StartDate = &start
		}
	}
	if endStr := firstQuery(c, "end_date", "to", "date_to"); endStr != "" {
		if end, err := time.Parse("2006-01-02", endStr); err == nil {
			// End dates are inclusive at day granularity
			end = end.AddDate(0, 0, 1)
			filters.EndDate = &end
		}
	}
	if periodStr := firstQuery(c, "period", "range"); periodStr != "" {
		filters.Period = enum.Period(periodStr)
	}

	if staffIDStr := c.Query("staff_id"); staffIDStr != "" {
		if staffID, err := uuid.Parse(staffIDStr); err == nil {
			filters.StaffID = &staffID
		}
	}
	if serviceIDStr := c.Query("service_id"); serviceIDStr != "" {
		if serviceID, err := uuid.Parse(serviceIDStr); err == nil {
			filters.ServiceID = &serviceID
		}
	}
	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			filters.CustomerID = &customerID
		}
	}

	return filters
}

// firstQuery returns the first non-empty value among the given query keys
func firstQuery(c *gin.Context, keys ...string) string {
	for _, key := range keys {
		if v := c.Query(key); v != "" {
			return v
		}
	}
	return ""
}

// GetDashboard handles getting headline dashboard metrics
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	metrics, err := h.analyticsService.ComputeDashboardMetrics(c.Request.Context(), parseAnalyticsFilters(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard metrics retrieved successfully", metrics)
}

// GetRevenue handles getting revenue analytics
func (h *AnalyticsHandler) GetRevenue(c *gin.Context) {
	revenue, err := h.analyticsService.ComputeRevenueAnalytics(c.Request.Context(), parseAnalyticsFilters(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Revenue analytics retrieved successfully", revenue)
}

// GetCustomerInsights handles getting customer retention insights
func (h *AnalyticsHandler) GetCustomerInsights(c *gin.Context) {
	insights, err := h.analyticsService.ComputeCustomerInsights(c.Request.Context(), parseAnalyticsFilters(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer insights retrieved successfully", insights)
}

// GetStaffMetrics handles getting per-staff performance metrics
func (h *AnalyticsHandler) GetStaffMetrics(c *gin.Context) {
	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	metrics, err := h.analyticsService.ComputeStaffMetrics(c.Request.Context(), staffID, parseAnalyticsFilters(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff metrics retrieved successfully", metrics)
}

// GetPerformance handles getting salon-wide performance metrics
func (h *AnalyticsHandler) GetPerformance(c *gin.Context) {
	metrics, err := h.analyticsService.ComputePerformanceMetrics(c.Request.Context(), parseAnalyticsFilters(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Performance metrics retrieved successfully", metrics)
}

// GetHeatmap handles getting the booking heatmap
func (h *AnalyticsHandler) GetHeatmap(c *gin.Context) {
	heatmap, err := h.analyticsService.ComputeBookingHeatmap(c.Request.Context(), parseAnalyticsFilters(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Booking heatmap retrieved successfully", heatmap)
}

// GetChart handles getting daily chart series data
func (h *AnalyticsHandler) GetChart(c *gin.Context) {
	kind := analytics.ChartKind(c.DefaultQuery("type", string(analytics.ChartKindRevenue)))

	chart, err := h.analyticsService.ComputeChartData(c.Request.Context(), kind, parseAnalyticsFilters(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Chart data retrieved successfully", chart)
}
