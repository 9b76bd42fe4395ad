package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/analytics"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	infraRepo "github.com/wangari/glowdesk-api/internal/infrastructure/repository"
	"github.com/wangari/glowdesk-api/pkg/apperror"
)

// AnalyticsService computes salon metrics. It owns the fetch-then-reduce
// orchestration: repositories supply window-bounded records, the analytics
// package does all arithmetic.
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	salonRepo     repository.SalonRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, salonRepo repository.SalonRepository) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		salonRepo:     salonRepo,
	}
}

// resolve normalizes the filter once at the boundary and requires a salon in
// context. Everything downstream sees explicit date bounds only.
func (s *AnalyticsService) resolve(ctx context.Context, filters analytics.Filters) (analytics.Filters, analytics.Window, error) {
	if _, ok := infraRepo.GetSalonID(ctx); !ok {
		return filters, analytics.Window{}, apperror.ErrForbidden
	}
	filters = filters.Normalize(time.Now())
	return filters, filters.Window(), nil
}

// gather runs the given fetches concurrently and reports the first error.
func gather(fns ...func() error) error {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for _, fn := range fns {
		wg.Add(1)
		go func(fn func() error) {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(fn)
	}
	wg.Wait()
	return firstErr
}

// ComputeDashboardMetrics returns the headline dashboard aggregate for the window.
func (s *AnalyticsService) ComputeDashboardMetrics(ctx context.Context, filters analytics.Filters) (*analytics.DashboardMetrics, error) {
	f, w, err := s.resolve(ctx, filters)
	if err != nil {
		return nil, err
	}

	var (
		appointments []analytics.AppointmentRecord
		histories    []analytics.CustomerVisitHistory
		staff        []analytics.StaffPerformanceRecord
		serviceCount int64
		staffCount   int64
	)
	err = gather(
		func() (err error) {
			appointments, err = s.analyticsRepo.AppointmentRecords(ctx, w.Start, w.End)
			return
		},
		func() (err error) {
			histories, err = s.analyticsRepo.CustomerVisitHistories(ctx)
			return
		},
		func() (err error) {
			staff, err = s.analyticsRepo.StaffPerformance(ctx, w.Start, w.End)
			return
		},
		func() (err error) {
			serviceCount, err = s.analyticsRepo.ActiveServiceCount(ctx)
			return
		},
		func() (err error) {
			staffCount, err = s.analyticsRepo.ActiveStaffCount(ctx)
			return
		},
	)
	if err != nil {
		return nil, err
	}

	metrics := analytics.BuildDashboardMetrics(analytics.ScopeAppointments(appointments, f), histories, staff, w, time.Now())
	// Report roster and catalog sizes rather than only what was booked in the window.
	metrics.Services.Total = int(serviceCount)
	metrics.Staff.Total = int(staffCount)
	return &metrics, nil
}

// ComputeRevenueAnalytics returns the revenue aggregate with projections.
func (s *AnalyticsService) ComputeRevenueAnalytics(ctx context.Context, filters analytics.Filters) (*analytics.RevenueAnalytics, error) {
	f, w, err := s.resolve(ctx, filters)
	if err != nil {
		return nil, err
	}

	appointments, err := s.analyticsRepo.AppointmentRecords(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}

	result := analytics.BuildRevenueAnalytics(analytics.ScopeAppointments(appointments, f), w)
	return &result, nil
}

// ComputeCustomerInsights returns customer segments, lifetime figures and
// booking behavior for the window.
func (s *AnalyticsService) ComputeCustomerInsights(ctx context.Context, filters analytics.Filters) (*analytics.CustomerInsights, error) {
	f, w, err := s.resolve(ctx, filters)
	if err != nil {
		return nil, err
	}
	prev := w.Previous()

	var (
		appointments     []analytics.AppointmentRecord
		prevAppointments []analytics.AppointmentRecord
		histories        []analytics.CustomerVisitHistory
	)
	err = gather(
		func() (err error) {
			appointments, err = s.analyticsRepo.AppointmentRecords(ctx, w.Start, w.End)
			return
		},
		func() (err error) {
			if !w.Bounded() {
				return nil
			}
			prevAppointments, err = s.analyticsRepo.AppointmentRecords(ctx, prev.Start, prev.End)
			return
		},
		func() (err error) {
			histories, err = s.analyticsRepo.CustomerVisitHistories(ctx)
			return
		},
	)
	if err != nil {
		return nil, err
	}

	result := analytics.BuildCustomerInsights(
		analytics.ScopeAppointments(appointments, f),
		analytics.ScopeAppointments(prevAppointments, f),
		histories, w, time.Now(),
	)
	return &result, nil
}

// ComputeStaffMetrics returns one staff member's aggregate for the window.
func (s *AnalyticsService) ComputeStaffMetrics(ctx context.Context, staffID uuid.UUID, filters analytics.Filters) (*analytics.StaffMetrics, error) {
	_, w, err := s.resolve(ctx, filters)
	if err != nil {
		return nil, err
	}

	var (
		perf         *analytics.StaffPerformanceRecord
		appointments []analytics.AppointmentRecord
		reviews      []analytics.ReviewRecord
	)
	err = gather(
		func() (err error) {
			perf, err = s.analyticsRepo.StaffPerformanceByID(ctx, staffID, w.Start, w.End)
			return
		},
		func() (err error) {
			appointments, err = s.analyticsRepo.AppointmentRecords(ctx, w.Start, w.End)
			return
		},
		func() (err error) {
			reviews, err = s.analyticsRepo.ReviewRecords(ctx, w.Start, w.End)
			return
		},
	)
	if err != nil {
		return nil, err
	}
	if perf == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}

	staffAppointments := make([]analytics.AppointmentRecord, 0, len(appointments))
	for _, r := range appointments {
		if r.StaffID == staffID {
			staffAppointments = append(staffAppointments, r)
		}
	}
	staffReviews := make([]analytics.ReviewRecord, 0, len(reviews))
	for _, r := range reviews {
		if r.StaffID == staffID {
			staffReviews = append(staffReviews, r)
		}
	}

	result := analytics.BuildStaffMetrics(*perf, staffAppointments, staffReviews, w, time.Now())
	return &result, nil
}

// ComputePerformanceMetrics returns the salon-wide operational aggregate with
// period-over-period comparison.
func (s *AnalyticsService) ComputePerformanceMetrics(ctx context.Context, filters analytics.Filters) (*analytics.PerformanceMetrics, error) {
	f, w, err := s.resolve(ctx, filters)
	if err != nil {
		return nil, err
	}
	prev := w.Previous()
	salonID, _ := infraRepo.GetSalonID(ctx)

	var (
		appointments     []analytics.AppointmentRecord
		prevAppointments []analytics.AppointmentRecord
		reviews          []analytics.ReviewRecord
		capacityMinutes  float64
	)
	err = gather(
		func() (err error) {
			appointments, err = s.analyticsRepo.AppointmentRecords(ctx, w.Start, w.End)
			return
		},
		func() (err error) {
			if !w.Bounded() {
				return nil
			}
			prevAppointments, err = s.analyticsRepo.AppointmentRecords(ctx, prev.Start, prev.End)
			return
		},
		func() (err error) {
			reviews, err = s.analyticsRepo.ReviewRecords(ctx, w.Start, w.End)
			return
		},
		func() error {
			salon, err := s.salonRepo.GetByID(ctx, salonID)
			if err != nil {
				return err
			}
			if salon != nil {
				capacityMinutes = salon.DailyCapacityMinutes() * float64(w.Days())
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	result := analytics.BuildPerformanceMetrics(
		analytics.ScopeAppointments(appointments, f),
		analytics.ScopeAppointments(prevAppointments, f),
		reviews, capacityMinutes, w,
	)
	return &result, nil
}

// ComputeBookingHeatmap returns the day-of-week by hour booking density grid.
func (s *AnalyticsService) ComputeBookingHeatmap(ctx context.Context, filters analytics.Filters) (*analytics.HeatmapData, error) {
	f, w, err := s.resolve(ctx, filters)
	if err != nil {
		return nil, err
	}

	appointments, err := s.analyticsRepo.AppointmentRecords(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}

	result := analytics.BuildBookingHeatmap(analytics.ScopeAppointments(appointments, f))
	return &result, nil
}

// ComputeChartData returns a daily time series of the requested kind.
func (s *AnalyticsService) ComputeChartData(ctx context.Context, kind analytics.ChartKind, filters analytics.Filters) (*analytics.ChartData, error) {
	if !kind.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown chart type: " + string(kind))
	}

	f, w, err := s.resolve(ctx, filters)
	if err != nil {
		return nil, err
	}

	appointments, err := s.analyticsRepo.AppointmentRecords(ctx, w.Start, w.End)
	if err != nil {
		return nil, err
	}

	result := analytics.BuildChartData(kind, analytics.ScopeAppointments(appointments, f), w, time.Now())
	return &result, nil
}
