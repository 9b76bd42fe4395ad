package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
)

func TestBuildRevenueAnalytics(t *testing.T) {
	cut, color := uuid.New(), uuid.New()
	w := ResolveWindow(datePtr("2024-05-01"), datePtr("2024-05-08"))

	records := []AppointmentRecord{
		{ServiceID: cut, ServiceName: "Cut", Status: enum.AppointmentStatusCompleted,
			TotalAmount: amount(400), PaymentMethod: "card"},
		{ServiceID: color, ServiceName: "Color", Status: enum.AppointmentStatusCompleted,
			TotalAmount: amount(200), PaymentMethod: "cash"},
		{ServiceID: cut, ServiceName: "Cut", Status: enum.AppointmentStatusCancelled,
			TotalAmount: amount(100), PaymentMethod: "card"},
	}

	a := BuildRevenueAnalytics(records, w)

	assert.InDelta(t, 700.0, a.Gross, 1e-6)
	assert.InDelta(t, 600.0, a.Net, 1e-6, "net excludes uncollected cancellations")

	for name, entries := range map[string][]BreakdownEntry{
		"by_service":        a.ByService,
		"by_staff":          a.ByStaff,
		"by_payment_method": a.ByPaymentMethod,
	} {
		var sum float64
		for _, e := range entries {
			sum += e.Amount
		}
		assert.InDelta(t, a.Gross, sum, 1e-6, "%s must sum to gross", name)
	}

	// 700 over 7 days
	assert.InDelta(t, 100.0, a.Projections.Daily, 1e-6)
	assert.InDelta(t, 3000.0, a.Projections.Monthly, 1e-6)
}

func TestBuildRevenueAnalyticsEmpty(t *testing.T) {
	a := BuildRevenueAnalytics(nil, Window{})
	assert.Zero(t, a.Gross)
	assert.Zero(t, a.Net)
	assert.Empty(t, a.ByService)
	assert.Zero(t, a.Projections.Daily)
}
