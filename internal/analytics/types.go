// Package analytics is the pure metrics aggregation core. Every function
// operates on in-memory record slices, performs no I/O, and is total over
// its input domain: empty slices, missing amounts and zero-length windows
// all yield zero-valued aggregates rather than errors.
package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
)

// AppointmentRecord is a booked or serviced visit as supplied by the record store.
type AppointmentRecord struct {
	ID            uuid.UUID
	SalonID       uuid.UUID
	CustomerID    uuid.UUID
	StaffID       uuid.UUID
	ServiceID     uuid.UUID
	ServiceName   string
	StaffName     string
	Status        enum.AppointmentStatus
	StartTime     *time.Time
	EndTime       *time.Time
	TotalAmount   *float64
	PaymentMethod string
	CreatedAt     time.Time
}

// Amount returns the appointment amount, treating a missing amount as zero.
func (r AppointmentRecord) Amount() float64 {
	if r.TotalAmount == nil {
		return 0
	}
	return *r.TotalAmount
}

// DurationMinutes returns the booked minutes, or zero when either bound is missing.
func (r AppointmentRecord) DurationMinutes() float64 {
	if r.StartTime == nil || r.EndTime == nil {
		return 0
	}
	d := r.EndTime.Sub(*r.StartTime)
	if d < 0 {
		return 0
	}
	return d.Minutes()
}

// ReviewRecord is a customer rating of a visit.
type ReviewRecord struct {
	ID                uuid.UUID
	SalonID           uuid.UUID
	AppointmentID     uuid.UUID
	CustomerID        uuid.UUID
	StaffID           uuid.UUID
	OverallRating     int
	ServiceRating     *int
	CleanlinessRating *int
	ValueRating       *int
	Status            enum.ReviewStatus
	CreatedAt         time.Time
}

// CustomerVisitHistory is the per-customer visit rollup supplied by the record store.
type CustomerVisitHistory struct {
	CustomerID  uuid.UUID
	FirstVisit  time.Time
	LastVisit   time.Time
	TotalVisits int
	TotalSpent  float64
}

// StaffPerformanceRecord is the per-staff rollup supplied by the record store.
// Counts are non-negative and rates are percentages in [0,100].
type StaffPerformanceRecord struct {
	StaffID             uuid.UUID
	StaffName           string
	TotalAppointments   int
	TotalRevenue        float64
	AverageRating       float64
	UtilizationRate     float64
	CancelledByStaff    int
	CancelledByCustomer int
}

// Filters is the canonical analytics filter. Request-level field aliases are
// normalized into this shape once at the boundary; the core never sees any
// other filter representation.
type Filters struct {
	SalonID    *uuid.UUID
	StaffID    *uuid.UUID
	ServiceID  *uuid.UUID
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Period     enum.Period
}

// Normalize resolves a named period into explicit date bounds when the caller
// supplied no dates. Explicit bounds always win over the period name.
func (f Filters) Normalize(now time.Time) Filters {
	if f.StartDate != nil && f.EndDate != nil {
		return f
	}
	if f.Period.IsValid() {
		start := now.AddDate(0, 0, -f.Period.Days())
		f.StartDate = &start
		f.EndDate = &now
	}
	return f
}

// Window returns the resolved computation window for the filter.
func (f Filters) Window() Window {
	return ResolveWindow(f.StartDate, f.EndDate)
}

// Matches reports whether the record passes the filter's entity scoping.
// Date bounds are handled by the window, not here.
func (f Filters) Matches(r AppointmentRecord) bool {
	if f.StaffID != nil && r.StaffID != *f.StaffID {
		return false
	}
	if f.ServiceID != nil && r.ServiceID != *f.ServiceID {
		return false
	}
	if f.CustomerID != nil && r.CustomerID != *f.CustomerID {
		return false
	}
	return true
}

// ScopeAppointments returns the records that pass the filter's entity scoping.
// A filter with no entity fields set returns the input unchanged.
func ScopeAppointments(records []AppointmentRecord, f Filters) []AppointmentRecord {
	if f.StaffID == nil && f.ServiceID == nil && f.CustomerID == nil {
		return records
	}
	scoped := make([]AppointmentRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			scoped = append(scoped, r)
		}
	}
	return scoped
}
