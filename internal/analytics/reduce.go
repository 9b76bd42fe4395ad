package analytics

import (
	"sort"
	"time"
)

// RevenueTotal sums appointment amounts. Records with a missing amount
// contribute zero but are never excluded from the count.
func RevenueTotal(records []AppointmentRecord) float64 {
	var total float64
	for _, r := range records {
		total += r.Amount()
	}
	return total
}

// Rate computes numerator/denominator as a percentage. A zero denominator
// yields exactly 0; the same rule applies to every rate in the system.
func Rate(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator * 100
}

// Trend splits an ordered series into halves (integer floor split, the odd
// extra element going to the second half) and returns the percentage change
// of the second-half average over the first-half average. Series shorter
// than 2 and series with a zero first-half average yield 0 by policy.
func Trend(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	half := len(series) / 2
	firstAvg := mean(series[:half])
	secondAvg := mean(series[half:])
	if firstAvg == 0 {
		return 0
	}
	return (secondAvg - firstAvg) / firstAvg * 100
}

// GrowthPercent is the percentage change of current over previous. A zero
// previous value yields 0, matching the system-wide zero-denominator rule.
func GrowthPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func mean(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}

// BreakdownEntry is one named slice of a revenue partition. The amounts of a
// breakdown always sum to the total of the records it was built from.
type BreakdownEntry struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

func breakdown(records []AppointmentRecord, keyOf func(AppointmentRecord) (string, string)) []BreakdownEntry {
	index := make(map[string]int)
	entries := make([]BreakdownEntry, 0)
	for _, r := range records {
		key, label := keyOf(r)
		i, ok := index[key]
		if !ok {
			i = len(entries)
			index[key] = i
			entries = append(entries, BreakdownEntry{Key: key, Label: label})
		}
		entries[i].Amount += r.Amount()
		entries[i].Count++
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Amount > entries[j].Amount
	})
	return entries
}

// RevenueByService partitions revenue by service.
func RevenueByService(records []AppointmentRecord) []BreakdownEntry {
	return breakdown(records, func(r AppointmentRecord) (string, string) {
		return r.ServiceID.String(), r.ServiceName
	})
}

// RevenueByStaff partitions revenue by staff member.
func RevenueByStaff(records []AppointmentRecord) []BreakdownEntry {
	return breakdown(records, func(r AppointmentRecord) (string, string) {
		return r.StaffID.String(), r.StaffName
	})
}

// RevenueByPaymentMethod partitions revenue by payment method. An empty
// method is grouped under "unknown".
func RevenueByPaymentMethod(records []AppointmentRecord) []BreakdownEntry {
	return breakdown(records, func(r AppointmentRecord) (string, string) {
		method := r.PaymentMethod
		if method == "" {
			method = "unknown"
		}
		return method, method
	})
}

// RetentionRate is the percentage of customers with more than one visit.
func RetentionRate(histories []CustomerVisitHistory) float64 {
	retained := 0
	for _, h := range histories {
		if h.TotalVisits > 1 {
			retained++
		}
	}
	return Rate(float64(retained), float64(len(histories)))
}

// churnInactiveDays is how long a customer may go without a visit before
// counting as churned.
const churnInactiveDays = 90

// ChurnRate is the percentage of customers whose last visit is older than
// the inactivity cutoff relative to asOf.
func ChurnRate(histories []CustomerVisitHistory, asOf time.Time) float64 {
	cutoff := asOf.AddDate(0, 0, -churnInactiveDays)
	churned := 0
	for _, h := range histories {
		if h.LastVisit.Before(cutoff) {
			churned++
		}
	}
	return Rate(float64(churned), float64(len(histories)))
}

// OccupancyRate is booked minutes as a percentage of capacity minutes.
// Cancelled and no-show appointments do not occupy capacity.
func OccupancyRate(records []AppointmentRecord, capacityMinutes float64) float64 {
	var booked float64
	for _, r := range records {
		if r.Status.CountsAsBooked() {
			booked += r.DurationMinutes()
		}
	}
	return Rate(booked, capacityMinutes)
}

// AverageRating is the mean overall rating of the given reviews, 0 when empty.
func AverageRating(reviews []ReviewRecord) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += float64(r.OverallRating)
	}
	return sum / float64(len(reviews))
}

// DailyRevenueSeries returns revenue bucketed per calendar day across the
// window, oldest day first. Records without a start time fall on their
// created-at day. The series always has exactly w.Days() points.
func DailyRevenueSeries(records []AppointmentRecord, w Window, now time.Time) []float64 {
	start, days := seriesStart(w, now)
	series := make([]float64, days)
	for _, r := range records {
		if i, ok := seriesIndex(r, start, days); ok {
			series[i] += r.Amount()
		}
	}
	return series
}

// DailyCountSeries returns appointment counts bucketed per calendar day
// across the window, oldest day first.
func DailyCountSeries(records []AppointmentRecord, w Window, now time.Time) []float64 {
	start, days := seriesStart(w, now)
	series := make([]float64, days)
	for _, r := range records {
		if i, ok := seriesIndex(r, start, days); ok {
			series[i]++
		}
	}
	return series
}

func seriesStart(w Window, now time.Time) (time.Time, int) {
	days := w.Days()
	var end time.Time
	if w.Bounded() {
		end = *w.End
	} else {
		end = now
	}
	start := end.AddDate(0, 0, -days)
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()), days
}

func seriesIndex(r AppointmentRecord, start time.Time, days int) (int, bool) {
	t := r.CreatedAt
	if r.StartTime != nil {
		t = *r.StartTime
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	i := int(day.Sub(start).Hours() / 24)
	if i < 0 || i >= days {
		return 0, false
	}
	return i, true
}
