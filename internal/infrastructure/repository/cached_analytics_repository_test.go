package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wangari/glowdesk-api/internal/analytics"
	"github.com/wangari/glowdesk-api/internal/infrastructure/cache"
)

type countingAnalyticsSource struct {
	appointments []analytics.AppointmentRecord
	calls        int
}

func (s *countingAnalyticsSource) AppointmentRecords(ctx context.Context, start, end *time.Time) ([]analytics.AppointmentRecord, error) {
	s.calls++
	return s.appointments, nil
}

func (s *countingAnalyticsSource) ReviewRecords(ctx context.Context, start, end *time.Time) ([]analytics.ReviewRecord, error) {
	s.calls++
	return nil, nil
}

func (s *countingAnalyticsSource) CustomerVisitHistories(ctx context.Context) ([]analytics.CustomerVisitHistory, error) {
	s.calls++
	return nil, nil
}

func (s *countingAnalyticsSource) StaffPerformance(ctx context.Context, start, end *time.Time) ([]analytics.StaffPerformanceRecord, error) {
	s.calls++
	return nil, nil
}

func (s *countingAnalyticsSource) StaffPerformanceByID(ctx context.Context, staffID uuid.UUID, start, end *time.Time) (*analytics.StaffPerformanceRecord, error) {
	s.calls++
	return nil, nil
}

func (s *countingAnalyticsSource) ActiveServiceCount(ctx context.Context) (int64, error) {
	s.calls++
	return 0, nil
}

func (s *countingAnalyticsSource) ActiveStaffCount(ctx context.Context) (int64, error) {
	s.calls++
	return 0, nil
}

func timeRange() (*time.Time, *time.Time) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)
	return &start, &end
}

func TestCachedAnalyticsRepositoryServesRepeatedReadsFromCache(t *testing.T) {
	createdAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	source := &countingAnalyticsSource{
		appointments: []analytics.AppointmentRecord{
			{ID: uuid.New(), CustomerID: uuid.New(), CreatedAt: createdAt},
		},
	}
	repo := NewCachedAnalyticsRepository(source, cache.NewMemoryCache(), time.Minute)
	ctx := WithSalon(context.Background(), uuid.New())
	start, end := timeRange()

	first, err := repo.AppointmentRecords(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, source.calls)

	second, err := repo.AppointmentRecords(ctx, start, end)
	require.NoError(t, err)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, 1, source.calls, "second read should hit the cache")
}

func TestCachedAnalyticsRepositoryKeysBySalon(t *testing.T) {
	source := &countingAnalyticsSource{}
	repo := NewCachedAnalyticsRepository(source, cache.NewMemoryCache(), time.Minute)
	start, end := timeRange()

	_, err := repo.AppointmentRecords(WithSalon(context.Background(), uuid.New()), start, end)
	require.NoError(t, err)
	_, err = repo.AppointmentRecords(WithSalon(context.Background(), uuid.New()), start, end)
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls, "different salons must not share cache entries")
}

func TestCachedAnalyticsRepositoryKeysByWindow(t *testing.T) {
	source := &countingAnalyticsSource{}
	repo := NewCachedAnalyticsRepository(source, cache.NewMemoryCache(), time.Minute)
	ctx := WithSalon(context.Background(), uuid.New())
	start, end := timeRange()

	_, err := repo.AppointmentRecords(ctx, start, end)
	require.NoError(t, err)

	otherEnd := end.AddDate(0, 0, 7)
	_, err = repo.AppointmentRecords(ctx, start, &otherEnd)
	require.NoError(t, err)

	assert.Equal(t, 2, source.calls, "different windows must not share cache entries")
}
