package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/analytics"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
	domainRepo "github.com/wangari/glowdesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// windowBounds substitutes sentinel times for open window sides so queries
// always carry both bounds. Records without a start time fall back to their
// creation time for window placement.
func windowBounds(start, end *time.Time) (time.Time, time.Time) {
	lo := time.Time{}
	hi := time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)
	if start != nil {
		lo = *start
	}
	if end != nil {
		hi = *end
	}
	return lo, hi
}

type appointmentRow struct {
	ID            uuid.UUID
	SalonID       uuid.UUID
	CustomerID    *uuid.UUID
	StaffID       *uuid.UUID
	ServiceID     *uuid.UUID
	ServiceName   *string
	StaffName     *string
	Status        enum.AppointmentStatus
	StartTime     *time.Time
	EndTime       *time.Time
	TotalAmount   int64
	PaymentMethod string
	CreatedAt     time.Time
}

func (r *analyticsRepository) AppointmentRecords(ctx context.Context, start, end *time.Time) ([]analytics.AppointmentRecord, error) {
	lo, hi := windowBounds(start, end)

	var rows []appointmentRow
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).Scopes(SalonScope(ctx)).
		Select(`appointments.id, appointments.salon_id, appointments.customer_id, appointments.staff_id,
			appointments.service_id, services.name as service_name, staff.name as staff_name,
			appointments.status, appointments.start_time, appointments.end_time,
			appointments.total_amount, appointments.payment_method, appointments.created_at`).
		Joins("LEFT JOIN services ON services.id = appointments.service_id").
		Joins("LEFT JOIN staff ON staff.id = appointments.staff_id").
		Where("COALESCE(appointments.start_time, appointments.created_at) >= ?", lo).
		Where("COALESCE(appointments.start_time, appointments.created_at) < ?", hi).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]analytics.AppointmentRecord, 0, len(rows))
	for _, row := range rows {
		amount := float64(row.TotalAmount) / 100
		rec := analytics.AppointmentRecord{
			ID:            row.ID,
			SalonID:       row.SalonID,
			Status:        row.Status,
			StartTime:     row.StartTime,
			EndTime:       row.EndTime,
			TotalAmount:   &amount,
			PaymentMethod: row.PaymentMethod,
			CreatedAt:     row.CreatedAt,
		}
		if row.CustomerID != nil {
			rec.CustomerID = *row.CustomerID
		}
		if row.StaffID != nil {
			rec.StaffID = *row.StaffID
		}
		if row.ServiceID != nil {
			rec.ServiceID = *row.ServiceID
		}
		if row.ServiceName != nil {
			rec.ServiceName = *row.ServiceName
		}
		if row.StaffName != nil {
			rec.StaffName = *row.StaffName
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *analyticsRepository) ReviewRecords(ctx context.Context, start, end *time.Time) ([]analytics.ReviewRecord, error) {
	lo, hi := windowBounds(start, end)

	var reviews []entity.Review
	err := r.db.WithContext(ctx).Model(&entity.Review{}).Scopes(SalonScope(ctx)).
		Where("status = ?", enum.ReviewStatusApproved).
		Where("created_at >= ? AND created_at < ?", lo, hi).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	records := make([]analytics.ReviewRecord, 0, len(reviews))
	for _, review := range reviews {
		rec := analytics.ReviewRecord{
			ID:                review.ID,
			SalonID:           review.SalonID,
			OverallRating:     review.Rating,
			ServiceRating:     review.ServiceRating,
			CleanlinessRating: review.CleanlinessRating,
			ValueRating:       review.ValueRating,
			Status:            review.Status,
			CreatedAt:         review.CreatedAt,
		}
		if review.AppointmentID != nil {
			rec.AppointmentID = *review.AppointmentID
		}
		if review.CustomerID != nil {
			rec.CustomerID = *review.CustomerID
		}
		if review.StaffID != nil {
			rec.StaffID = *review.StaffID
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *analyticsRepository) CustomerVisitHistories(ctx context.Context) ([]analytics.CustomerVisitHistory, error) {
	salonID, ok := GetSalonID(ctx)
	if !ok {
		return nil, nil
	}

	var results []analytics.CustomerVisitHistory
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			a.customer_id,
			MIN(COALESCE(a.start_time, a.created_at)) as first_visit,
			MAX(COALESCE(a.start_time, a.created_at)) as last_visit,
			COUNT(a.id) as total_visits,
			COALESCE(SUM(CASE WHEN a.status = 'completed' THEN a.total_amount ELSE 0 END), 0) / 100.0 as total_spent
		FROM appointments a
		WHERE a.salon_id = ? AND a.customer_id IS NOT NULL AND a.deleted_at IS NULL
		GROUP BY a.customer_id
	`, salonID).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

type staffPerformanceRow struct {
	StaffID             uuid.UUID
	StaffName           string
	TotalAppointments   int
	TotalRevenue        float64
	BookedMinutes       float64
	AvailableMinutes    int
	CancelledByStaff    int
	CancelledByCustomer int
}

func (r *analyticsRepository) StaffPerformance(ctx context.Context, start, end *time.Time) ([]analytics.StaffPerformanceRecord, error) {
	return r.staffPerformance(ctx, nil, start, end)
}

func (r *analyticsRepository) StaffPerformanceByID(ctx context.Context, staffID uuid.UUID, start, end *time.Time) (*analytics.StaffPerformanceRecord, error) {
	records, err := r.staffPerformance(ctx, &staffID, start, end)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (r *analyticsRepository) staffPerformance(ctx context.Context, staffID *uuid.UUID, start, end *time.Time) ([]analytics.StaffPerformanceRecord, error) {
	salonID, ok := GetSalonID(ctx)
	if !ok {
		return nil, nil
	}
	lo, hi := windowBounds(start, end)

	query := `
		SELECT
			s.id as staff_id,
			s.name as staff_name,
			s.available_minutes,
			COUNT(a.id) as total_appointments,
			COALESCE(SUM(CASE WHEN a.status = 'completed' THEN a.total_amount ELSE 0 END), 0) / 100.0 as total_revenue,
			COALESCE(SUM(CASE WHEN a.status IN ('pending', 'confirmed', 'completed')
				AND a.start_time IS NOT NULL AND a.end_time IS NOT NULL AND a.end_time > a.start_time
				THEN EXTRACT(EPOCH FROM (a.end_time - a.start_time)) / 60 ELSE 0 END), 0) as booked_minutes,
			COUNT(CASE WHEN a.status = 'cancelled' AND a.cancelled_by = 'staff' THEN 1 END) as cancelled_by_staff,
			COUNT(CASE WHEN a.status = 'cancelled' AND a.cancelled_by = 'customer' THEN 1 END) as cancelled_by_customer
		FROM staff s
		LEFT JOIN appointments a ON a.staff_id = s.id AND a.deleted_at IS NULL
			AND COALESCE(a.start_time, a.created_at) >= ? AND COALESCE(a.start_time, a.created_at) < ?
		WHERE s.salon_id = ? AND s.deleted_at IS NULL`
	args := []interface{}{lo, hi, salonID}
	if staffID != nil {
		query += ` AND s.id = ?`
		args = append(args, *staffID)
	}
	query += `
		GROUP BY s.id, s.name, s.available_minutes
		ORDER BY total_revenue DESC`

	var rows []staffPerformanceRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	ratings, err := r.staffAverageRatings(ctx, salonID, lo, hi)
	if err != nil {
		return nil, err
	}

	windowDays := analytics.ResolveWindow(start, end).Days()
	records := make([]analytics.StaffPerformanceRecord, 0, len(rows))
	for _, row := range rows {
		capacity := float64(row.AvailableMinutes * windowDays)
		records = append(records, analytics.StaffPerformanceRecord{
			StaffID:             row.StaffID,
			StaffName:           row.StaffName,
			TotalAppointments:   row.TotalAppointments,
			TotalRevenue:        row.TotalRevenue,
			AverageRating:       ratings[row.StaffID],
			UtilizationRate:     analytics.Rate(row.BookedMinutes, capacity),
			CancelledByStaff:    row.CancelledByStaff,
			CancelledByCustomer: row.CancelledByCustomer,
		})
	}
	return records, nil
}

func (r *analyticsRepository) staffAverageRatings(ctx context.Context, salonID uuid.UUID, lo, hi time.Time) (map[uuid.UUID]float64, error) {
	var rows []struct {
		StaffID uuid.UUID
		Avg     float64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT staff_id, AVG(rating) as avg
		FROM reviews
		WHERE salon_id = ? AND staff_id IS NOT NULL AND status = 'approved' AND deleted_at IS NULL
			AND created_at >= ? AND created_at < ?
		GROUP BY staff_id
	`, salonID, lo, hi).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	ratings := make(map[uuid.UUID]float64, len(rows))
	for _, row := range rows {
		ratings[row.StaffID] = row.Avg
	}
	return ratings, nil
}

func (r *analyticsRepository) ActiveServiceCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Service{}).Scopes(SalonScope(ctx)).
		Where("active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) ActiveStaffCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Staff{}).Scopes(SalonScope(ctx)).
		Where("active = ?", true).
		Count(&count).Error
	return count, err
}
