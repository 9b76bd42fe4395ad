package analytics

import (
	"time"

	"github.com/wangari/glowdesk-api/internal/domain/enum"
)

// StaffMetrics is the per-staff aggregate.
type StaffMetrics struct {
	StaffID             string    `json:"staff_id"`
	Name                string    `json:"name"`
	TotalAppointments   int       `json:"total_appointments"`
	Completed           int       `json:"completed"`
	Revenue             float64   `json:"revenue"`
	AverageRating       float64   `json:"average_rating"`
	UtilizationRate     float64   `json:"utilization_rate"`
	CancelledByStaff    int       `json:"cancelled_by_staff"`
	CancelledByCustomer int       `json:"cancelled_by_customer"`
	BusiestDays         [7]int    `json:"busiest_days"`
	RevenueTrend        float64   `json:"revenue_trend"`
	TopServices         []string  `json:"top_services"`
}

// BuildStaffMetrics assembles one staff member's aggregate from the store's
// rollup plus that staff member's appointments and reviews in the window.
func BuildStaffMetrics(
	perf StaffPerformanceRecord,
	appointments []AppointmentRecord,
	reviews []ReviewRecord,
	w Window,
	now time.Time,
) StaffMetrics {
	c := ClassifyAppointments(appointments, w.Start)

	byService := RevenueByService(appointments)
	top := make([]string, 0, topListSize)
	for _, e := range byService {
		if len(top) == topListSize {
			break
		}
		top = append(top, e.Label)
	}

	return StaffMetrics{
		StaffID:             perf.StaffID.String(),
		Name:                perf.StaffName,
		TotalAppointments:   perf.TotalAppointments,
		Completed:           c.ByStatus[enum.AppointmentStatusCompleted],
		Revenue:             perf.TotalRevenue,
		AverageRating:       AverageRating(reviews),
		UtilizationRate:     perf.UtilizationRate,
		CancelledByStaff:    perf.CancelledByStaff,
		CancelledByCustomer: perf.CancelledByCustomer,
		BusiestDays:         c.ByDayOfWeek,
		RevenueTrend:        Trend(DailyRevenueSeries(appointments, w, now)),
		TopServices:         top,
	}
}

// PerformanceMetrics is the salon-wide operational aggregate for a window,
// with period-over-period comparison against the preceding window.
type PerformanceMetrics struct {
	CompletionRate    float64 `json:"completion_rate"`
	CancellationRate  float64 `json:"cancellation_rate"`
	NoShowRate        float64 `json:"no_show_rate"`
	OccupancyRate     float64 `json:"occupancy_rate"`
	AverageRating     float64 `json:"average_rating"`
	ReviewCount       int     `json:"review_count"`
	AverageTicket     float64 `json:"average_ticket"`
	RevenueGrowth     float64 `json:"revenue_growth"`
	AppointmentGrowth float64 `json:"appointment_growth"`
}

// BuildPerformanceMetrics assembles the operational aggregate.
// capacityMinutes is the salon's total capacity over the window
// (chairs x open minutes x days); zero capacity yields occupancy 0.
func BuildPerformanceMetrics(
	appointments []AppointmentRecord,
	prevAppointments []AppointmentRecord,
	reviews []ReviewRecord,
	capacityMinutes float64,
	w Window,
) PerformanceMetrics {
	c := ClassifyAppointments(appointments, w.Start)
	total := float64(c.Total())

	completed := c.ByStatus[enum.AppointmentStatusCompleted]
	var completedRevenue float64
	for _, r := range appointments {
		if r.Status == enum.AppointmentStatusCompleted {
			completedRevenue += r.Amount()
		}
	}
	averageTicket := 0.0
	if completed > 0 {
		averageTicket = completedRevenue / float64(completed)
	}

	return PerformanceMetrics{
		CompletionRate:    Rate(float64(completed), total),
		CancellationRate:  Rate(float64(c.ByStatus[enum.AppointmentStatusCancelled]), total),
		NoShowRate:        Rate(float64(c.ByStatus[enum.AppointmentStatusNoShow]), total),
		OccupancyRate:     OccupancyRate(appointments, capacityMinutes),
		AverageRating:     AverageRating(reviews),
		ReviewCount:       len(reviews),
		AverageTicket:     averageTicket,
		RevenueGrowth:     GrowthPercent(RevenueTotal(appointments), RevenueTotal(prevAppointments)),
		AppointmentGrowth: GrowthPercent(total, float64(len(prevAppointments))),
	}
}
