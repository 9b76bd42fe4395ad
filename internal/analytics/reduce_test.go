package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
)

func amount(v float64) *float64 { return &v }

func TestRevenueTotal(t *testing.T) {
	records := []AppointmentRecord{
		{TotalAmount: amount(100)},
		{TotalAmount: amount(50.5)},
		{TotalAmount: nil}, // missing amount counts as zero, not excluded
	}
	assert.InDelta(t, 150.5, RevenueTotal(records), 1e-6)
	assert.Zero(t, RevenueTotal(nil))
}

func TestRateZeroDenominator(t *testing.T) {
	tests := []struct {
		name string
		num  float64
		den  float64
		want float64
	}{
		{"zero denominator yields zero", 5, 0, 0},
		{"zero over zero yields zero", 0, 0, 0},
		{"half", 1, 2, 50},
		{"full", 10, 10, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rate(tt.num, tt.den)
			assert.InDelta(t, tt.want, got, 1e-6)
			assert.False(t, got != got, "rate must never be NaN")
		})
	}
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single element", []float64{5}, 0},
		{"flat", []float64{10, 10, 10, 10}, 0},
		{"doubling", []float64{10, 10, 20, 20}, 100},
		{"decline", []float64{20, 20, 10, 10}, -50},
		{"zero first half", []float64{0, 0, 10, 10}, 0},
		{"odd length puts extra in second half", []float64{10, 20, 20}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Trend(tt.series), 1e-6)
		})
	}
}

func TestGrowthPercent(t *testing.T) {
	assert.InDelta(t, 100.0, GrowthPercent(20, 10), 1e-6)
	assert.InDelta(t, -50.0, GrowthPercent(5, 10), 1e-6)
	assert.Zero(t, GrowthPercent(20, 0))
}

func TestBreakdownSumInvariant(t *testing.T) {
	cut, color, blowout := uuid.New(), uuid.New(), uuid.New()
	records := []AppointmentRecord{
		{ServiceID: cut, ServiceName: "Cut", TotalAmount: amount(40)},
		{ServiceID: cut, ServiceName: "Cut", TotalAmount: amount(45)},
		{ServiceID: color, ServiceName: "Color", TotalAmount: amount(120.25)},
		{ServiceID: blowout, ServiceName: "Blowout", TotalAmount: amount(35)},
		{ServiceID: blowout, ServiceName: "Blowout", TotalAmount: nil},
	}

	total := RevenueTotal(records)

	for name, entries := range map[string][]BreakdownEntry{
		"by_service":        RevenueByService(records),
		"by_payment_method": RevenueByPaymentMethod(records),
		"by_staff":          RevenueByStaff(records),
	} {
		var sum float64
		var count int
		for _, e := range entries {
			sum += e.Amount
			count += e.Count
		}
		assert.InDelta(t, total, sum, 1e-6, "%s amounts must sum to total", name)
		assert.Equal(t, len(records), count, "%s counts must cover every record", name)
	}
}

func TestBreakdownOrdering(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	records := []AppointmentRecord{
		{ServiceID: a, ServiceName: "Low", TotalAmount: amount(10)},
		{ServiceID: b, ServiceName: "High", TotalAmount: amount(90)},
	}
	entries := RevenueByService(records)
	assert.Equal(t, "High", entries[0].Label)
	assert.Equal(t, "Low", entries[1].Label)
}

func TestRetentionRate(t *testing.T) {
	histories := []CustomerVisitHistory{
		{TotalVisits: 1},
		{TotalVisits: 3},
		{TotalVisits: 2},
		{TotalVisits: 1},
	}
	assert.InDelta(t, 50.0, RetentionRate(histories), 1e-6)
	assert.Zero(t, RetentionRate(nil))
}

func TestChurnRate(t *testing.T) {
	now := date("2024-06-01")
	histories := []CustomerVisitHistory{
		{LastVisit: date("2024-05-20")}, // active
		{LastVisit: date("2024-01-01")}, // churned
	}
	assert.InDelta(t, 50.0, ChurnRate(histories, now), 1e-6)
	assert.Zero(t, ChurnRate(nil, now))
}

func TestOccupancyRate(t *testing.T) {
	start := date("2024-03-04").Add(9 * time.Hour)
	end := start.Add(60 * time.Minute)
	cancelledEnd := start.Add(90 * time.Minute)

	records := []AppointmentRecord{
		{Status: enum.AppointmentStatusCompleted, StartTime: &start, EndTime: &end},
		{Status: enum.AppointmentStatusConfirmed, StartTime: &start, EndTime: &end},
		{Status: enum.AppointmentStatusCancelled, StartTime: &start, EndTime: &cancelledEnd},
	}

	// 120 booked minutes out of 480 capacity; the cancelled booking does not count.
	assert.InDelta(t, 25.0, OccupancyRate(records, 480), 1e-6)
	assert.Zero(t, OccupancyRate(records, 0), "zero capacity yields zero, not Inf")
}

func TestDailyRevenueSeries(t *testing.T) {
	w := ResolveWindow(datePtr("2024-01-01"), datePtr("2024-01-04"))
	day1 := date("2024-01-01").Add(10 * time.Hour)
	day3 := date("2024-01-03").Add(14 * time.Hour)

	records := []AppointmentRecord{
		{StartTime: &day1, TotalAmount: amount(100)},
		{StartTime: &day1, TotalAmount: amount(20)},
		{StartTime: &day3, TotalAmount: amount(55)},
	}

	series := DailyRevenueSeries(records, w, date("2024-06-01"))
	assert.Equal(t, []float64{120, 0, 55}, series)
}
