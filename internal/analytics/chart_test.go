package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChartDataRevenue(t *testing.T) {
	w := ResolveWindow(datePtr("2024-05-01"), datePtr("2024-05-04"))
	day1 := date("2024-05-01").Add(10 * time.Hour)
	day2 := date("2024-05-02").Add(10 * time.Hour)

	records := []AppointmentRecord{
		{StartTime: &day1, TotalAmount: amount(100), CreatedAt: day1},
		{StartTime: &day2, TotalAmount: amount(40), CreatedAt: day2},
		{StartTime: &day2, TotalAmount: amount(10), CreatedAt: day2},
	}

	chart := BuildChartData(ChartKindRevenue, records, w, date("2024-05-04"))

	require.Len(t, chart.Points, 3)
	assert.Equal(t, "2024-05-01", chart.Points[0].Date)
	assert.InDelta(t, 100.0, chart.Points[0].Value, 1e-6)
	assert.InDelta(t, 50.0, chart.Points[1].Value, 1e-6)
	assert.Zero(t, chart.Points[2].Value)
}

func TestBuildChartDataCustomersCountsDistinct(t *testing.T) {
	w := ResolveWindow(datePtr("2024-05-01"), datePtr("2024-05-03"))
	day1 := date("2024-05-01").Add(10 * time.Hour)
	repeat := uuid.New()

	records := []AppointmentRecord{
		{CustomerID: repeat, StartTime: &day1, CreatedAt: day1},
		{CustomerID: repeat, StartTime: &day1, CreatedAt: day1},
		{CustomerID: uuid.New(), StartTime: &day1, CreatedAt: day1},
	}

	chart := BuildChartData(ChartKindCustomers, records, w, date("2024-05-03"))

	require.Len(t, chart.Points, 2)
	assert.InDelta(t, 2.0, chart.Points[0].Value, 1e-6, "same customer twice counts once")
}

func TestBuildChartDataUnboundedWindow(t *testing.T) {
	now := date("2024-05-31")
	chart := BuildChartData(ChartKindAppointments, nil, Window{}, now)

	require.Len(t, chart.Points, DefaultWindowDays)
	assert.Equal(t, "2024-05-01", chart.Points[0].Date)
}

func TestChartKindValidation(t *testing.T) {
	assert.True(t, ChartKindRevenue.IsValid())
	assert.True(t, ChartKindCustomers.IsValid())
	assert.False(t, ChartKind("bookings").IsValid())
}
