package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
	domainRepo "github.com/wangari/glowdesk-api/internal/domain/repository"
	"github.com/wangari/glowdesk-api/pkg/pagination"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Scopes(SalonScope(ctx)).
		Preload("Customer").
		First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &appointment, err
}

func (r *appointmentRepository) GetByBookingNo(ctx context.Context, bookingNo string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Scopes(SalonScope(ctx)).First(&appointment, "booking_no = ?", bookingNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &appointment, err
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Appointment{}, "id = ?", id).Error
}

func (r *appointmentRepository) List(ctx context.Context, params *domainRepo.AppointmentFilterParams) ([]entity.Appointment, int64, error) {
	var appointments []entity.Appointment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Appointment{}).Scopes(SalonScope(ctx))

	if params.Search != "" {
		query = query.Where("booking_no ILIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.StaffID != nil {
		query = query.Where("staff_id = ?", *params.StaffID)
	}

	if params.ServiceID != nil {
		query = query.Where("service_id = ?", *params.ServiceID)
	}

	if params.StartDate != nil {
		query = query.Where("start_time >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("start_time < ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder != "" && (params.SortOrder == "ASC" || params.SortOrder == "asc") {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Preload("Staff").
		Preload("Service").
		Order(sortBy + " " + sortOrder).
		Find(&appointments).Error

	return appointments, total, err
}

func (r *appointmentRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Scopes(SalonScope(ctx)).
		Preload("Customer").
		Preload("Staff").
		Preload("Service").
		First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &appointment, err
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.AppointmentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *appointmentRepository) GetUpcoming(ctx context.Context, params *pagination.PaginationParams) ([]entity.Appointment, int64, error) {
	var appointments []entity.Appointment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Appointment{}).Scopes(SalonScope(ctx)).
		Where("status IN ?", []enum.AppointmentStatus{enum.AppointmentStatusPending, enum.AppointmentStatusConfirmed}).
		Where("start_time > ?", time.Now())

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Customer").
		Preload("Staff").
		Order("start_time ASC").
		Find(&appointments).Error

	return appointments, total, err
}

func (r *appointmentRepository) CountOverlapping(ctx context.Context, staffID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entity.Appointment{}).Scopes(SalonScope(ctx)).
		Where("staff_id = ?", staffID).
		Where("status IN ?", []enum.AppointmentStatus{enum.AppointmentStatusPending, enum.AppointmentStatusConfirmed}).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count, err
}

// ListWithCursor returns appointments using cursor-based pagination
func (r *appointmentRepository) ListWithCursor(ctx context.Context, params *domainRepo.AppointmentCursorFilterParams) ([]entity.Appointment, error) {
	var appointments []entity.Appointment

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Appointment{}).Scopes(SalonScope(ctx))

	if params.Search != "" {
		query = query.Where("booking_no ILIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.StaffID != nil {
		query = query.Where("staff_id = ?", *params.StaffID)
	}

	if params.StartDate != nil {
		query = query.Where("start_time >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("start_time < ?", *params.EndDate)
	}

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Cursor.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Preload("Customer").
		Order("created_at ASC, id ASC").
		Find(&appointments).Error

	return appointments, err
}
