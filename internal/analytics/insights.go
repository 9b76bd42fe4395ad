package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// CustomerInsights is the customer-base aggregate: cohort segments, lifetime
// figures and booking behavior.
type CustomerInsights struct {
	Segments []CustomerSegment `json:"segments"`
	Lifetime LifetimeMetrics   `json:"lifetime"`
	Behavior BehaviorMetrics   `json:"behavior"`
}

// CustomerSegment is a named cohort with its size, spend and period-over-period growth.
type CustomerSegment struct {
	Name   string  `json:"name"`
	Count  int     `json:"count"`
	Value  float64 `json:"value"`
	Growth float64 `json:"growth"`
}

// LifetimeMetrics are averages over the full visit histories in scope.
type LifetimeMetrics struct {
	AverageValue  float64 `json:"average_value"`
	AverageVisits float64 `json:"average_visits"`
	ChurnRate     float64 `json:"churn_rate"`
}

// BehaviorMetrics describe when customers book.
//
// BookingPatterns maps weekday name to a percentage relative to the busiest
// weekday. The figures are independent per-day values and are not a
// distribution: they do not sum to 100.
type BehaviorMetrics struct {
	PreferredTimes  []TimeSlot         `json:"preferred_times"`
	BookingPatterns map[string]float64 `json:"booking_patterns"`
}

// TimeSlot is one hour-of-day bucket with its share of bookings.
type TimeSlot struct {
	Hour       int     `json:"hour"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

const (
	loyalVisitThreshold = 5
	atRiskInactiveDays  = 60
	preferredTimeSlots  = 3
)

// BuildCustomerInsights assembles the customer aggregate. Previous-window
// appointments feed the new/returning segment growth figures; segments
// without a prior-period counterpart report growth 0.
func BuildCustomerInsights(
	appointments []AppointmentRecord,
	prevAppointments []AppointmentRecord,
	histories []CustomerVisitHistory,
	w Window,
	now time.Time,
) CustomerInsights {
	c := ClassifyAppointments(appointments, w.Start)
	prev := ClassifyAppointments(prevAppointments, w.Previous().Start)

	// Window spend split by the classifier's cohort verdict. The two
	// segments together account for every record with an attributed
	// customer.
	var newSpend, returningSpend float64
	for _, r := range appointments {
		if r.CustomerID == uuid.Nil {
			continue
		}
		if c.IsNewCustomer[r.CustomerID] {
			newSpend += r.Amount()
		} else {
			returningSpend += r.Amount()
		}
	}

	var loyalCount, atRiskCount int
	var loyalValue, atRiskValue float64
	atRiskCutoff := now.AddDate(0, 0, -atRiskInactiveDays)
	for _, h := range histories {
		if h.TotalVisits >= loyalVisitThreshold {
			loyalCount++
			loyalValue += h.TotalSpent
		}
		if h.LastVisit.Before(atRiskCutoff) {
			atRiskCount++
			atRiskValue += h.TotalSpent
		}
	}

	segments := []CustomerSegment{
		{
			Name:   "new",
			Count:  c.NewCustomers,
			Value:  newSpend,
			Growth: GrowthPercent(float64(c.NewCustomers), float64(prev.NewCustomers)),
		},
		{
			Name:   "returning",
			Count:  c.ReturningCustomers,
			Value:  returningSpend,
			Growth: GrowthPercent(float64(c.ReturningCustomers), float64(prev.ReturningCustomers)),
		},
		{Name: "loyal", Count: loyalCount, Value: loyalValue},
		{Name: "at_risk", Count: atRiskCount, Value: atRiskValue},
	}

	var totalVisits int
	var totalSpent float64
	for _, h := range histories {
		totalVisits += h.TotalVisits
		totalSpent += h.TotalSpent
	}
	lifetime := LifetimeMetrics{ChurnRate: ChurnRate(histories, now)}
	if len(histories) > 0 {
		lifetime.AverageValue = totalSpent / float64(len(histories))
		lifetime.AverageVisits = float64(totalVisits) / float64(len(histories))
	}

	return CustomerInsights{
		Segments: segments,
		Lifetime: lifetime,
		Behavior: BehaviorMetrics{
			PreferredTimes:  preferredTimes(c),
			BookingPatterns: bookingPatterns(c),
		},
	}
}

func preferredTimes(c Classification) []TimeSlot {
	timed := 0
	for _, n := range c.ByHour {
		timed += n
	}
	slots := make([]TimeSlot, 0, 24)
	for hour, count := range c.ByHour {
		if count == 0 {
			continue
		}
		slots = append(slots, TimeSlot{
			Hour:       hour,
			Count:      count,
			Percentage: Rate(float64(count), float64(timed)),
		})
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Count > slots[j].Count
	})
	if len(slots) > preferredTimeSlots {
		slots = slots[:preferredTimeSlots]
	}
	return slots
}

func bookingPatterns(c Classification) map[string]float64 {
	peak := 0
	for _, n := range c.ByDayOfWeek {
		if n > peak {
			peak = n
		}
	}
	patterns := make(map[string]float64, 7)
	for day, count := range c.ByDayOfWeek {
		patterns[time.Weekday(day).String()] = Rate(float64(count), float64(peak))
	}
	return patterns
}
