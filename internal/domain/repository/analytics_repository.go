package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/analytics"
)

// AnalyticsRepository defines the read-side fetch layer for metric computation.
// Implementations resolve the current salon from context and return flat
// records the analytics package can reduce without further I/O.
type AnalyticsRepository interface {
	// AppointmentRecords returns appointment rows within the window.
	// Nil bounds leave that side of the window open.
	AppointmentRecords(ctx context.Context, start, end *time.Time) ([]analytics.AppointmentRecord, error)

	// ReviewRecords returns approved review rows within the window.
	ReviewRecords(ctx context.Context, start, end *time.Time) ([]analytics.ReviewRecord, error)

	// CustomerVisitHistories returns one row per customer with lifetime
	// visit counts, spend and first/last visit times.
	CustomerVisitHistories(ctx context.Context) ([]analytics.CustomerVisitHistory, error)

	// StaffPerformance returns per-staff rollups for the window.
	StaffPerformance(ctx context.Context, start, end *time.Time) ([]analytics.StaffPerformanceRecord, error)

	// StaffPerformanceByID returns the rollup for a single staff member.
	StaffPerformanceByID(ctx context.Context, staffID uuid.UUID, start, end *time.Time) (*analytics.StaffPerformanceRecord, error)

	// ActiveServiceCount returns the number of active catalog services.
	ActiveServiceCount(ctx context.Context) (int64, error)

	// ActiveStaffCount returns the number of active staff members.
	ActiveStaffCount(ctx context.Context) (int64, error)
}
