package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	GetByBookingNo(ctx context.Context, bookingNo string) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *AppointmentFilterParams) ([]entity.Appointment, int64, error)
	ListWithCursor(ctx context.Context, params *AppointmentCursorFilterParams) ([]entity.Appointment, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.AppointmentStatus) error
	// GetUpcoming returns confirmed and pending appointments starting after now
	GetUpcoming(ctx context.Context, params *pagination.PaginationParams) ([]entity.Appointment, int64, error)
	// CountOverlapping counts booked appointments for a staff member overlapping
	// the given slot, excluding the appointment with excludeID when non-nil
	CountOverlapping(ctx context.Context, staffID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (int64, error)
}

// AppointmentFilterParams contains filtering parameters for appointment queries
type AppointmentFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.AppointmentStatus
	CustomerID *uuid.UUID
	StaffID    *uuid.UUID
	ServiceID  *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// AppointmentCursorFilterParams contains cursor-based filtering for appointment queries
type AppointmentCursorFilterParams struct {
	Cursor     *pagination.CursorParams
	Search     string
	Status     *enum.AppointmentStatus
	CustomerID *uuid.UUID
	StaffID    *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
