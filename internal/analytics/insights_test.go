package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCustomerInsightsSegments(t *testing.T) {
	w := ResolveWindow(datePtr("2024-05-01"), datePtr("2024-05-31"))
	now := date("2024-05-31")

	newCustomer, regular := uuid.New(), uuid.New()
	current := []AppointmentRecord{
		{CustomerID: newCustomer, CreatedAt: date("2024-05-10"), TotalAmount: amount(80)},
		{CustomerID: regular, CreatedAt: date("2024-04-15"), TotalAmount: amount(120)},
		{CustomerID: regular, CreatedAt: date("2024-05-20"), TotalAmount: amount(60)},
	}
	previous := []AppointmentRecord{
		{CustomerID: uuid.New(), CreatedAt: date("2024-04-10"), TotalAmount: amount(50)},
	}
	histories := []CustomerVisitHistory{
		{CustomerID: regular, FirstVisit: date("2023-06-01"), LastVisit: date("2024-05-20"), TotalVisits: 8, TotalSpent: 900},
		{CustomerID: newCustomer, FirstVisit: date("2024-05-10"), LastVisit: date("2024-05-10"), TotalVisits: 1, TotalSpent: 80},
		{CustomerID: uuid.New(), FirstVisit: date("2023-01-01"), LastVisit: date("2023-11-01"), TotalVisits: 4, TotalSpent: 300},
	}

	insights := BuildCustomerInsights(current, previous, histories, w, now)

	byName := make(map[string]CustomerSegment)
	for _, s := range insights.Segments {
		byName[s.Name] = s
	}

	// regular predates the window; the record with CreatedAt 2024-04-15 is
	// the customer's earliest in the set, so regular is returning.
	assert.Equal(t, 1, byName["new"].Count)
	assert.Equal(t, 1, byName["returning"].Count)
	assert.Equal(t, 1, byName["loyal"].Count)
	assert.Equal(t, 1, byName["at_risk"].Count)

	// Previous window had one new customer; still one now: no growth.
	assert.Zero(t, byName["new"].Growth)

	assert.InDelta(t, (900.0+80+300)/3, insights.Lifetime.AverageValue, 1e-6)
	assert.InDelta(t, 13.0/3, insights.Lifetime.AverageVisits, 1e-6)
}

func TestBuildCustomerInsightsSegmentSpendSplit(t *testing.T) {
	w := ResolveWindow(datePtr("2024-05-01"), datePtr("2024-05-31"))
	now := date("2024-05-31")

	newCustomer, regular := uuid.New(), uuid.New()
	current := []AppointmentRecord{
		{CustomerID: newCustomer, CreatedAt: date("2024-05-10"), TotalAmount: amount(80)},
		{CustomerID: regular, CreatedAt: date("2024-04-15"), TotalAmount: amount(120)},
		{CustomerID: regular, CreatedAt: date("2024-05-20"), TotalAmount: amount(60)},
	}

	insights := BuildCustomerInsights(current, nil, nil, w, now)

	byName := make(map[string]CustomerSegment)
	for _, s := range insights.Segments {
		byName[s.Name] = s
	}

	// Each cohort carries only its own customers' spend, and together the
	// two cohorts cover the whole window.
	assert.InDelta(t, 80.0, byName["new"].Value, 1e-6)
	assert.InDelta(t, 180.0, byName["returning"].Value, 1e-6)

	windowSpend := RevenueTotal(current)
	assert.InDelta(t, windowSpend, byName["new"].Value+byName["returning"].Value, 1e-6)
}

func TestBuildCustomerInsightsBookingPatterns(t *testing.T) {
	w := ResolveWindow(datePtr("2024-03-01"), datePtr("2024-03-31"))

	// 4 bookings on Mondays, 2 on Wednesdays
	var records []AppointmentRecord
	for i := 0; i < 4; i++ {
		start := date("2024-03-04").AddDate(0, 0, 7*i%28).Add(10 * time.Hour)
		records = append(records, AppointmentRecord{CustomerID: uuid.New(), StartTime: &start, CreatedAt: start})
	}
	for i := 0; i < 2; i++ {
		start := date("2024-03-06").AddDate(0, 0, 7*i).Add(10 * time.Hour)
		records = append(records, AppointmentRecord{CustomerID: uuid.New(), StartTime: &start, CreatedAt: start})
	}

	insights := BuildCustomerInsights(records, nil, nil, w, date("2024-03-31"))
	patterns := insights.Behavior.BookingPatterns

	require.Len(t, patterns, 7)
	assert.InDelta(t, 100.0, patterns["Monday"], 1e-6, "busiest day is the baseline")
	assert.InDelta(t, 50.0, patterns["Wednesday"], 1e-6)
	assert.Zero(t, patterns["Sunday"])

	// The per-day figures are independent values, not a distribution.
	var sum float64
	for _, v := range patterns {
		sum += v
	}
	assert.Greater(t, sum, 100.0)
}

func TestBuildCustomerInsightsPreferredTimes(t *testing.T) {
	w := ResolveWindow(datePtr("2024-03-01"), datePtr("2024-03-31"))

	mk := func(day string, hour, n int) []AppointmentRecord {
		var out []AppointmentRecord
		for i := 0; i < n; i++ {
			start := date(day).Add(time.Duration(hour) * time.Hour)
			out = append(out, AppointmentRecord{CustomerID: uuid.New(), StartTime: &start, CreatedAt: start})
		}
		return out
	}

	records := append(mk("2024-03-04", 10, 5), mk("2024-03-05", 14, 3)...)
	records = append(records, mk("2024-03-06", 16, 2)...)

	insights := BuildCustomerInsights(records, nil, nil, w, date("2024-03-31"))
	times := insights.Behavior.PreferredTimes

	require.Len(t, times, 3)
	assert.Equal(t, 10, times[0].Hour)
	assert.InDelta(t, 50.0, times[0].Percentage, 1e-6)
}

func TestBuildCustomerInsightsEmpty(t *testing.T) {
	insights := BuildCustomerInsights(nil, nil, nil, Window{}, date("2024-03-31"))

	assert.Len(t, insights.Segments, 4)
	for _, s := range insights.Segments {
		assert.Zero(t, s.Count)
	}
	assert.Zero(t, insights.Lifetime.AverageValue)
	assert.Zero(t, insights.Lifetime.ChurnRate)
	assert.Empty(t, insights.Behavior.PreferredTimes)
}
