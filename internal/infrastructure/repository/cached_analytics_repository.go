package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/analytics"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	"github.com/wangari/glowdesk-api/internal/infrastructure/cache"
)

// DefaultAnalyticsCacheTTL bounds how stale cached metric inputs may be.
const DefaultAnalyticsCacheTTL = 5 * time.Minute

type cachedAnalyticsRepository struct {
	source repository.AnalyticsRepository
	cache  cache.Cache
	ttl    time.Duration
}

// NewCachedAnalyticsRepository wraps an analytics repository with a read-through
// cache. Cache failures are swallowed: the source query always wins.
func NewCachedAnalyticsRepository(source repository.AnalyticsRepository, c cache.Cache, ttl time.Duration) repository.AnalyticsRepository {
	if ttl <= 0 {
		ttl = DefaultAnalyticsCacheTTL
	}
	return &cachedAnalyticsRepository{source: source, cache: c, ttl: ttl}
}

// cacheKey scopes an entry to the salon and window so tenants never share entries.
func (r *cachedAnalyticsRepository) cacheKey(ctx context.Context, method string, start, end *time.Time) string {
	salonID, _ := GetSalonID(ctx)
	lo, hi := windowBounds(start, end)
	return fmt.Sprintf("analytics:%s:%s:%d:%d", salonID, method, lo.Unix(), hi.Unix())
}

func cachedFetch[T any](ctx context.Context, r *cachedAnalyticsRepository, key string, fetch func() (T, error)) (T, error) {
	if raw, err := r.cache.Get(ctx, key); err == nil && raw != nil {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	result, err := fetch()
	if err != nil {
		return result, err
	}

	if raw, err := json.Marshal(result); err == nil {
		_ = r.cache.Set(ctx, key, raw, r.ttl)
	}
	return result, nil
}

func (r *cachedAnalyticsRepository) AppointmentRecords(ctx context.Context, start, end *time.Time) ([]analytics.AppointmentRecord, error) {
	key := r.cacheKey(ctx, "appointments", start, end)
	return cachedFetch(ctx, r, key, func() ([]analytics.AppointmentRecord, error) {
		return r.source.AppointmentRecords(ctx, start, end)
	})
}

func (r *cachedAnalyticsRepository) ReviewRecords(ctx context.Context, start, end *time.Time) ([]analytics.ReviewRecord, error) {
	key := r.cacheKey(ctx, "reviews", start, end)
	return cachedFetch(ctx, r, key, func() ([]analytics.ReviewRecord, error) {
		return r.source.ReviewRecords(ctx, start, end)
	})
}

func (r *cachedAnalyticsRepository) CustomerVisitHistories(ctx context.Context) ([]analytics.CustomerVisitHistory, error) {
	key := r.cacheKey(ctx, "visit_histories", nil, nil)
	return cachedFetch(ctx, r, key, func() ([]analytics.CustomerVisitHistory, error) {
		return r.source.CustomerVisitHistories(ctx)
	})
}

func (r *cachedAnalyticsRepository) StaffPerformance(ctx context.Context, start, end *time.Time) ([]analytics.StaffPerformanceRecord, error) {
	key := r.cacheKey(ctx, "staff_performance", start, end)
	return cachedFetch(ctx, r, key, func() ([]analytics.StaffPerformanceRecord, error) {
		return r.source.StaffPerformance(ctx, start, end)
	})
}

func (r *cachedAnalyticsRepository) StaffPerformanceByID(ctx context.Context, staffID uuid.UUID, start, end *time.Time) (*analytics.StaffPerformanceRecord, error) {
	key := r.cacheKey(ctx, "staff_performance:"+staffID.String(), start, end)
	return cachedFetch(ctx, r, key, func() (*analytics.StaffPerformanceRecord, error) {
		return r.source.StaffPerformanceByID(ctx, staffID, start, end)
	})
}

func (r *cachedAnalyticsRepository) ActiveServiceCount(ctx context.Context) (int64, error) {
	key := r.cacheKey(ctx, "service_count", nil, nil)
	return cachedFetch(ctx, r, key, func() (int64, error) {
		return r.source.ActiveServiceCount(ctx)
	})
}

func (r *cachedAnalyticsRepository) ActiveStaffCount(ctx context.Context) (int64, error) {
	key := r.cacheKey(ctx, "staff_count", nil, nil)
	return cachedFetch(ctx, r, key, func() (int64, error) {
		return r.source.ActiveStaffCount(ctx)
	})
}
