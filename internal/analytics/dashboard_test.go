package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
)

// TestBuildDashboardMetricsScenario covers 10 appointments over a 10-day
// window: 6 completed at 100 each, 2 cancelled, 2 no-show.
func TestBuildDashboardMetricsScenario(t *testing.T) {
	w := ResolveWindow(datePtr("2024-05-01"), datePtr("2024-05-11"))
	now := date("2024-05-11")

	var records []AppointmentRecord
	for i := 0; i < 6; i++ {
		start := date("2024-05-01").AddDate(0, 0, i).Add(10 * time.Hour)
		records = append(records, AppointmentRecord{
			ID:          uuid.New(),
			CustomerID:  uuid.New(),
			Status:      enum.AppointmentStatusCompleted,
			StartTime:   &start,
			TotalAmount: amount(100),
			CreatedAt:   start,
		})
	}
	for i := 0; i < 2; i++ {
		start := date("2024-05-08").AddDate(0, 0, i).Add(11 * time.Hour)
		records = append(records, AppointmentRecord{
			ID: uuid.New(), CustomerID: uuid.New(),
			Status: enum.AppointmentStatusCancelled, StartTime: &start, CreatedAt: start,
		})
	}
	for i := 0; i < 2; i++ {
		start := date("2024-05-09").AddDate(0, 0, i).Add(12 * time.Hour)
		records = append(records, AppointmentRecord{
			ID: uuid.New(), CustomerID: uuid.New(),
			Status: enum.AppointmentStatusNoShow, StartTime: &start, CreatedAt: start,
		})
	}

	m := BuildDashboardMetrics(records, nil, nil, w, now)

	assert.Equal(t, 10, m.Appointments.Total)
	assert.Equal(t, 6, m.Appointments.Completed)
	assert.Equal(t, 2, m.Appointments.Cancelled)
	assert.Equal(t, 2, m.Appointments.NoShow)

	assert.InDelta(t, 600.0, m.Revenue.Total, 1e-6)
	assert.InDelta(t, 60.0, m.Revenue.Daily, 1e-6)

	// Window-relative: every customer first appears inside the window
	assert.Equal(t, 10, m.Customers.Total)
	assert.Equal(t, 10, m.Customers.New)
	assert.Zero(t, m.Customers.Returning)
}

func TestBuildDashboardMetricsEmptyInput(t *testing.T) {
	m := BuildDashboardMetrics(nil, nil, nil, Window{}, date("2024-05-11"))

	assert.Zero(t, m.Revenue.Total)
	assert.Zero(t, m.Appointments.Total)
	assert.Zero(t, m.Customers.Total)
	assert.Zero(t, m.Staff.Total)
	assert.Empty(t, m.Staff.TopPerformers)
	assert.Empty(t, m.Services.Popular)
}

func TestBuildDashboardMetricsStaffSummary(t *testing.T) {
	staff := []StaffPerformanceRecord{
		{StaffID: uuid.New(), StaffName: "Amina", TotalRevenue: 900, UtilizationRate: 80},
		{StaffID: uuid.New(), StaffName: "Brian", TotalRevenue: 1200, UtilizationRate: 60},
	}

	m := BuildDashboardMetrics(nil, nil, staff, Window{}, date("2024-05-11"))

	assert.Equal(t, 2, m.Staff.Total)
	assert.InDelta(t, 70.0, m.Staff.Utilization, 1e-6)
	assert.Equal(t, "Brian", m.Staff.TopPerformers[0].Name, "top performers sorted by revenue")
}
