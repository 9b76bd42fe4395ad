package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
)

// Classification is the result of partitioning a set of appointment records
// by status, customer first-visit and time bucket.
type Classification struct {
	ByStatus map[enum.AppointmentStatus]int

	// NewCustomers counts customers whose earliest record in the input set
	// falls on or after the window start. The classification is
	// window-relative: the same customer can be new in one call and
	// returning in another. IsNewCustomer records the same verdict per
	// customer for callers that need to split other figures by cohort.
	NewCustomers       int
	ReturningCustomers int
	TotalCustomers     int
	IsNewCustomer      map[uuid.UUID]bool

	// ByDayOfWeek and ByHour bucket records by their local calendar day
	// (0=Sunday) and hour. Records without a start time are excluded from
	// these two buckets but still counted in ByStatus.
	ByDayOfWeek [7]int
	ByHour      [24]int
}

// Total returns the total record count, equal to the sum of the status partition.
func (c Classification) Total() int {
	total := 0
	for _, n := range c.ByStatus {
		total += n
	}
	return total
}

// ClassifyAppointments partitions records by status, labels each distinct
// customer as new or returning relative to windowStart, and buckets records
// by day-of-week and hour-of-day. Unknown statuses land in the explicit
// unknown bucket. A nil windowStart labels every customer as new, since an
// unbounded window has no boundary for a first visit to precede.
func ClassifyAppointments(records []AppointmentRecord, windowStart *time.Time) Classification {
	c := Classification{ByStatus: make(map[enum.AppointmentStatus]int)}

	earliest := make(map[uuid.UUID]time.Time)
	for _, r := range records {
		status := r.Status
		if !status.IsValid() {
			status = enum.AppointmentStatusUnknown
		}
		c.ByStatus[status]++

		if r.StartTime != nil {
			c.ByDayOfWeek[int(r.StartTime.Weekday())]++
			c.ByHour[r.StartTime.Hour()]++
		}

		if r.CustomerID == uuid.Nil {
			continue
		}
		seen := r.CreatedAt
		if r.StartTime != nil && r.StartTime.Before(seen) {
			seen = *r.StartTime
		}
		if first, ok := earliest[r.CustomerID]; !ok || seen.Before(first) {
			earliest[r.CustomerID] = seen
		}
	}

	c.TotalCustomers = len(earliest)
	c.IsNewCustomer = make(map[uuid.UUID]bool, len(earliest))
	for id, first := range earliest {
		if windowStart == nil || !first.Before(*windowStart) {
			c.NewCustomers++
			c.IsNewCustomer[id] = true
		} else {
			c.ReturningCustomers++
			c.IsNewCustomer[id] = false
		}
	}

	return c
}
