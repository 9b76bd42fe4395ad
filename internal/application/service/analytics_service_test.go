package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wangari/glowdesk-api/internal/analytics"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
	"github.com/wangari/glowdesk-api/pkg/apperror"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

type fakeAnalyticsRepo struct {
	appointments []analytics.AppointmentRecord
	reviews      []analytics.ReviewRecord
	histories    []analytics.CustomerVisitHistory
	staff        []analytics.StaffPerformanceRecord
	serviceCount int64
	staffCount   int64
	fetchCalls   int
}

func (f *fakeAnalyticsRepo) inWindow(t time.Time, start, end *time.Time) bool {
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && !t.Before(*end) {
		return false
	}
	return true
}

func (f *fakeAnalyticsRepo) AppointmentRecords(ctx context.Context, start, end *time.Time) ([]analytics.AppointmentRecord, error) {
	f.fetchCalls++
	var out []analytics.AppointmentRecord
	for _, r := range f.appointments {
		if f.inWindow(r.CreatedAt, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAnalyticsRepo) ReviewRecords(ctx context.Context, start, end *time.Time) ([]analytics.ReviewRecord, error) {
	var out []analytics.ReviewRecord
	for _, r := range f.reviews {
		if f.inWindow(r.CreatedAt, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAnalyticsRepo) CustomerVisitHistories(ctx context.Context) ([]analytics.CustomerVisitHistory, error) {
	return f.histories, nil
}

func (f *fakeAnalyticsRepo) StaffPerformance(ctx context.Context, start, end *time.Time) ([]analytics.StaffPerformanceRecord, error) {
	return f.staff, nil
}

func (f *fakeAnalyticsRepo) StaffPerformanceByID(ctx context.Context, staffID uuid.UUID, start, end *time.Time) (*analytics.StaffPerformanceRecord, error) {
	for _, s := range f.staff {
		if s.StaffID == staffID {
			cp := s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAnalyticsRepo) ActiveServiceCount(ctx context.Context) (int64, error) {
	return f.serviceCount, nil
}

func (f *fakeAnalyticsRepo) ActiveStaffCount(ctx context.Context) (int64, error) {
	return f.staffCount, nil
}

type fakeSalonRepo struct {
	salon *entity.Salon
}

func (f *fakeSalonRepo) Create(ctx context.Context, salon *entity.Salon) error { return nil }

func (f *fakeSalonRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Salon, error) {
	if f.salon != nil && f.salon.ID == id {
		return f.salon, nil
	}
	return nil, nil
}

func (f *fakeSalonRepo) GetBySlug(ctx context.Context, slug string) (*entity.Salon, error) {
	return nil, nil
}

func (f *fakeSalonRepo) Update(ctx context.Context, salon *entity.Salon) error { return nil }
func (f *fakeSalonRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }

func (f *fakeSalonRepo) GetUserSalons(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Salon, int64, error) {
	return nil, 0, nil
}

func (f *fakeSalonRepo) AddMember(ctx context.Context, membership *entity.SalonMembership) error {
	return nil
}

func (f *fakeSalonRepo) RemoveMember(ctx context.Context, salonID, userID uuid.UUID) error {
	return nil
}

func (f *fakeSalonRepo) GetMembers(ctx context.Context, salonID uuid.UUID) ([]entity.SalonMembership, error) {
	return nil, nil
}

func (f *fakeSalonRepo) IsMember(ctx context.Context, salonID, userID uuid.UUID) (bool, error) {
	return true, nil
}

func (f *fakeSalonRepo) GetMembership(ctx context.Context, salonID, userID uuid.UUID) (*entity.SalonMembership, error) {
	return nil, nil
}

func (f *fakeSalonRepo) UpdateMemberRole(ctx context.Context, salonID, userID uuid.UUID, role string) error {
	return nil
}

func (f *fakeSalonRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return false, nil
}

func (f *fakeSalonRepo) ListAll(ctx context.Context, params *pagination.PaginationParams) ([]entity.Salon, int64, error) {
	return nil, 0, nil
}

func (f *fakeSalonRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func analyticsDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func analyticsDatePtr(s string) *time.Time {
	t := analyticsDate(s)
	return &t
}

func amountPtr(v float64) *float64 { return &v }

func completedAppointment(day string, amount float64) analytics.AppointmentRecord {
	start := analyticsDate(day).Add(10 * time.Hour)
	return analytics.AppointmentRecord{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		StaffID:     uuid.New(),
		ServiceID:   uuid.New(),
		Status:      enum.AppointmentStatusCompleted,
		StartTime:   &start,
		TotalAmount: amountPtr(amount),
		CreatedAt:   start,
	}
}

func TestComputeDashboardMetricsEndToEnd(t *testing.T) {
	salonID := uuid.New()
	repo := &fakeAnalyticsRepo{
		appointments: []analytics.AppointmentRecord{
			completedAppointment("2024-05-01", 100),
			completedAppointment("2024-05-03", 150),
			completedAppointment("2024-05-05", 250),
		},
		serviceCount: 12,
		staffCount:   4,
	}
	svc := NewAnalyticsService(repo, &fakeSalonRepo{})
	ctx := salonContext(salonID)

	metrics, err := svc.ComputeDashboardMetrics(ctx, analytics.Filters{
		StartDate: analyticsDatePtr("2024-05-01"),
		EndDate:   analyticsDatePtr("2024-05-11"),
	})
	require.NoError(t, err)

	assert.InDelta(t, 500.0, metrics.Revenue.Total, 1e-6)
	assert.Equal(t, 3, metrics.Appointments.Total)
	assert.Equal(t, 3, metrics.Appointments.Completed)

	// Roster and catalog sizes come from the live counts, not the window
	assert.Equal(t, 12, metrics.Services.Total)
	assert.Equal(t, 4, metrics.Staff.Total)
}

func TestComputeDashboardMetricsRequiresSalonContext(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, &fakeSalonRepo{})

	_, err := svc.ComputeDashboardMetrics(context.Background(), analytics.Filters{})
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}

func TestComputeRevenueAnalyticsScopesByStaff(t *testing.T) {
	target := completedAppointment("2024-05-02", 300)
	other := completedAppointment("2024-05-03", 999)

	repo := &fakeAnalyticsRepo{appointments: []analytics.AppointmentRecord{target, other}}
	svc := NewAnalyticsService(repo, &fakeSalonRepo{})
	ctx := salonContext(uuid.New())

	revenue, err := svc.ComputeRevenueAnalytics(ctx, analytics.Filters{
		StartDate: analyticsDatePtr("2024-05-01"),
		EndDate:   analyticsDatePtr("2024-05-11"),
		StaffID:   &target.StaffID,
	})
	require.NoError(t, err)

	assert.InDelta(t, 300.0, revenue.Gross, 1e-6)
}

func TestComputeStaffMetricsUnknownStaff(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, &fakeSalonRepo{})
	ctx := salonContext(uuid.New())

	_, err := svc.ComputeStaffMetrics(ctx, uuid.New(), analytics.Filters{Period: enum.PeriodMonth})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestComputePerformanceMetricsUsesSalonCapacity(t *testing.T) {
	salonID := uuid.New()
	salon := &entity.Salon{
		ID:   salonID,
		Name: "Glow Studio",
		Settings: entity.SalonSettings{
			OpeningHour: 9,
			ClosingHour: 17,
			Chairs:      2,
		},
	}

	start := analyticsDate("2024-05-01").Add(10 * time.Hour)
	end := start.Add(2 * time.Hour)
	booked := analytics.AppointmentRecord{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Status:     enum.AppointmentStatusCompleted,
		StartTime:  &start,
		EndTime:    &end,
		CreatedAt:  start,
	}

	repo := &fakeAnalyticsRepo{appointments: []analytics.AppointmentRecord{booked}}
	svc := NewAnalyticsService(repo, &fakeSalonRepo{salon: salon})
	ctx := salonContext(salonID)

	metrics, err := svc.ComputePerformanceMetrics(ctx, analytics.Filters{
		StartDate: analyticsDatePtr("2024-05-01"),
		EndDate:   analyticsDatePtr("2024-05-02"),
	})
	require.NoError(t, err)

	// 120 booked minutes against 2 chairs * 8 hours = 960 capacity minutes
	assert.InDelta(t, 12.5, metrics.OccupancyRate, 1e-6)
}

func TestComputeChartDataRejectsUnknownKind(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, &fakeSalonRepo{})
	ctx := salonContext(uuid.New())

	_, err := svc.ComputeChartData(ctx, analytics.ChartKind("pie"), analytics.Filters{})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestComputeBookingHeatmapScopesByService(t *testing.T) {
	target := completedAppointment("2024-05-06", 100)
	other := completedAppointment("2024-05-06", 100)

	repo := &fakeAnalyticsRepo{appointments: []analytics.AppointmentRecord{target, other}}
	svc := NewAnalyticsService(repo, &fakeSalonRepo{})
	ctx := salonContext(uuid.New())

	heatmap, err := svc.ComputeBookingHeatmap(ctx, analytics.Filters{
		StartDate: analyticsDatePtr("2024-05-01"),
		EndDate:   analyticsDatePtr("2024-05-11"),
		ServiceID: &target.ServiceID,
	})
	require.NoError(t, err)

	var total float64
	for _, cell := range heatmap.Cells {
		total += cell.Value
	}
	assert.InDelta(t, 1.0, total, 1e-6)
}
