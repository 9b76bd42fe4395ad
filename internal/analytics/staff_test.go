package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
)

func TestBuildStaffMetrics(t *testing.T) {
	staffID := uuid.New()
	w := ResolveWindow(datePtr("2024-05-01"), datePtr("2024-05-31"))
	now := date("2024-05-31")

	perf := StaffPerformanceRecord{
		StaffID:             staffID,
		StaffName:           "Amina",
		TotalAppointments:   24,
		TotalRevenue:        2400,
		UtilizationRate:     75,
		CancelledByStaff:    1,
		CancelledByCustomer: 3,
	}

	start := date("2024-05-06").Add(10 * time.Hour)
	appointments := []AppointmentRecord{
		{StaffID: staffID, ServiceID: uuid.New(), ServiceName: "Cut",
			Status: enum.AppointmentStatusCompleted, StartTime: &start, TotalAmount: amount(100), CreatedAt: start},
	}
	reviews := []ReviewRecord{
		{OverallRating: 5}, {OverallRating: 4},
	}

	m := BuildStaffMetrics(perf, appointments, reviews, w, now)

	assert.Equal(t, staffID.String(), m.StaffID)
	assert.Equal(t, 24, m.TotalAppointments)
	assert.Equal(t, 1, m.Completed)
	assert.InDelta(t, 4.5, m.AverageRating, 1e-6)
	assert.InDelta(t, 75.0, m.UtilizationRate, 1e-6)
	assert.Equal(t, []string{"Cut"}, m.TopServices)
	assert.Equal(t, 1, m.BusiestDays[int(time.Monday)])
}

func TestBuildPerformanceMetrics(t *testing.T) {
	w := ResolveWindow(datePtr("2024-05-01"), datePtr("2024-05-11"))

	start := date("2024-05-02").Add(9 * time.Hour)
	end := start.Add(time.Hour)
	current := []AppointmentRecord{
		{Status: enum.AppointmentStatusCompleted, StartTime: &start, EndTime: &end, TotalAmount: amount(200)},
		{Status: enum.AppointmentStatusCompleted, StartTime: &start, EndTime: &end, TotalAmount: amount(100)},
		{Status: enum.AppointmentStatusCancelled},
		{Status: enum.AppointmentStatusNoShow},
	}
	previous := []AppointmentRecord{
		{Status: enum.AppointmentStatusCompleted, TotalAmount: amount(150)},
	}
	reviews := []ReviewRecord{{OverallRating: 4}}

	m := BuildPerformanceMetrics(current, previous, reviews, 480, w)

	assert.InDelta(t, 50.0, m.CompletionRate, 1e-6)
	assert.InDelta(t, 25.0, m.CancellationRate, 1e-6)
	assert.InDelta(t, 25.0, m.NoShowRate, 1e-6)
	assert.InDelta(t, 25.0, m.OccupancyRate, 1e-6, "120 booked minutes of 480")
	assert.InDelta(t, 150.0, m.AverageTicket, 1e-6)
	assert.Equal(t, 1, m.ReviewCount)
	assert.InDelta(t, 100.0, m.RevenueGrowth, 1e-6, "300 vs 150")
	assert.InDelta(t, 300.0, m.AppointmentGrowth, 1e-6, "4 vs 1")
}

func TestBuildPerformanceMetricsEmpty(t *testing.T) {
	m := BuildPerformanceMetrics(nil, nil, nil, 0, Window{})

	assert.Zero(t, m.CompletionRate)
	assert.Zero(t, m.OccupancyRate)
	assert.Zero(t, m.AverageTicket)
	assert.Zero(t, m.RevenueGrowth)
}
