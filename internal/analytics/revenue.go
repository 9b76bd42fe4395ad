package analytics

import "github.com/wangari/glowdesk-api/internal/domain/enum"

// RevenueAnalytics is the revenue aggregate with breakdowns and projections.
// Each breakdown's amounts sum to Gross.
type RevenueAnalytics struct {
	Gross           float64            `json:"gross"`
	Net             float64            `json:"net"`
	ByService       []BreakdownEntry   `json:"by_service"`
	ByStaff         []BreakdownEntry   `json:"by_staff"`
	ByPaymentMethod []BreakdownEntry   `json:"by_payment_method"`
	Projections     RevenueProjections `json:"projections"`
}

// BuildRevenueAnalytics assembles the revenue aggregate. Gross covers every
// record; net covers only completed appointments, since cancelled and no-show
// bookings carry amounts that were never collected.
func BuildRevenueAnalytics(appointments []AppointmentRecord, w Window) RevenueAnalytics {
	gross := RevenueTotal(appointments)

	var net float64
	for _, r := range appointments {
		if r.Status == enum.AppointmentStatusCompleted {
			net += r.Amount()
		}
	}

	return RevenueAnalytics{
		Gross:           gross,
		Net:             net,
		ByService:       RevenueByService(appointments),
		ByStaff:         RevenueByStaff(appointments),
		ByPaymentMethod: RevenueByPaymentMethod(appointments),
		Projections:     ProjectRevenue(gross, w.Days()),
	}
}
