package analytics

import (
	"sort"
	"time"

	"github.com/wangari/glowdesk-api/internal/domain/enum"
)

// DashboardMetrics is the headline aggregate for the salon dashboard.
type DashboardMetrics struct {
	Revenue      RevenueSummary     `json:"revenue"`
	Appointments AppointmentSummary `json:"appointments"`
	Customers    CustomerSummary    `json:"customers"`
	Services     ServiceSummary     `json:"services"`
	Staff        StaffSummary       `json:"staff"`
}

// RevenueSummary holds the window's revenue figures. Growth is an unbounded
// percentage and may be negative.
type RevenueSummary struct {
	Total   float64 `json:"total"`
	Daily   float64 `json:"daily"`
	Monthly float64 `json:"monthly"`
	Growth  float64 `json:"growth"`
}

// AppointmentSummary partitions the window's appointments by outcome.
type AppointmentSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	NoShow    int `json:"no_show"`
}

// CustomerSummary partitions the window's customers into new and returning.
type CustomerSummary struct {
	Total         int     `json:"total"`
	New           int     `json:"new"`
	Returning     int     `json:"returning"`
	RetentionRate float64 `json:"retention_rate"`
}

// ServiceSummary describes the service mix for the window.
type ServiceSummary struct {
	Total   int      `json:"total"`
	Popular []string `json:"popular"`
	Revenue float64  `json:"revenue"`
}

// StaffSummary describes staffing levels and performance for the window.
type StaffSummary struct {
	Total         int              `json:"total"`
	Utilization   float64          `json:"utilization"`
	TopPerformers []StaffHighlight `json:"top_performers"`
}

// StaffHighlight is one entry of the top-performer list.
type StaffHighlight struct {
	StaffID       string  `json:"staff_id"`
	Name          string  `json:"name"`
	Revenue       float64 `json:"revenue"`
	Appointments  int     `json:"appointments"`
	AverageRating float64 `json:"average_rating"`
}

const topListSize = 5

// BuildDashboardMetrics assembles the dashboard aggregate from the window's
// appointments, customer histories and staff rollups.
func BuildDashboardMetrics(
	appointments []AppointmentRecord,
	histories []CustomerVisitHistory,
	staff []StaffPerformanceRecord,
	w Window,
	now time.Time,
) DashboardMetrics {
	c := ClassifyAppointments(appointments, w.Start)

	total := RevenueTotal(appointments)
	projections := ProjectRevenue(total, w.Days())

	byService := RevenueByService(appointments)
	popular := make([]string, 0, topListSize)
	for _, e := range byService {
		if len(popular) == topListSize {
			break
		}
		popular = append(popular, e.Label)
	}

	var utilizationSum float64
	for _, s := range staff {
		utilizationSum += s.UtilizationRate
	}
	utilization := 0.0
	if len(staff) > 0 {
		utilization = utilizationSum / float64(len(staff))
	}

	return DashboardMetrics{
		Revenue: RevenueSummary{
			Total:   total,
			Daily:   projections.Daily,
			Monthly: projections.Monthly,
			Growth:  Trend(DailyRevenueSeries(appointments, w, now)),
		},
		Appointments: AppointmentSummary{
			Total:     c.Total(),
			Completed: c.ByStatus[enum.AppointmentStatusCompleted],
			Cancelled: c.ByStatus[enum.AppointmentStatusCancelled],
			NoShow:    c.ByStatus[enum.AppointmentStatusNoShow],
		},
		Customers: CustomerSummary{
			Total:         c.TotalCustomers,
			New:           c.NewCustomers,
			Returning:     c.ReturningCustomers,
			RetentionRate: RetentionRate(histories),
		},
		Services: ServiceSummary{
			Total:   len(byService),
			Popular: popular,
			Revenue: total,
		},
		Staff: StaffSummary{
			Total:         len(staff),
			Utilization:   utilization,
			TopPerformers: topPerformers(staff),
		},
	}
}

func topPerformers(staff []StaffPerformanceRecord) []StaffHighlight {
	sorted := make([]StaffPerformanceRecord, len(staff))
	copy(sorted, staff)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalRevenue > sorted[j].TotalRevenue
	})
	if len(sorted) > topListSize {
		sorted = sorted[:topListSize]
	}
	highlights := make([]StaffHighlight, 0, len(sorted))
	for _, s := range sorted {
		highlights = append(highlights, StaffHighlight{
			StaffID:       s.StaffID.String(),
			Name:          s.StaffName,
			Revenue:       s.TotalRevenue,
			Appointments:  s.TotalAppointments,
			AverageRating: s.AverageRating,
		})
	}
	return highlights
}
