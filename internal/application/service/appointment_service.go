package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	infraRepo "github.com/wangari/glowdesk-api/internal/infrastructure/repository"
	"github.com/wangari/glowdesk-api/pkg/apperror"
	"github.com/wangari/glowdesk-api/pkg/pagination"
	"github.com/wangari/glowdesk-api/pkg/utils"
)

// AppointmentService handles appointment booking and lifecycle
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	serviceRepo     repository.ServiceRepository
	staffRepo       repository.StaffRepository
	customerRepo    repository.CustomerRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	serviceRepo repository.ServiceRepository,
	staffRepo repository.StaffRepository,
	customerRepo repository.CustomerRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		staffRepo:       staffRepo,
		customerRepo:    customerRepo,
	}
}

// CreateAppointmentInput represents the create appointment input
type CreateAppointmentInput struct {
	UserID        uuid.UUID
	CustomerID    *uuid.UUID
	StaffID       *uuid.UUID
	ServiceID     *uuid.UUID
	StartTime     *time.Time
	PaymentMethod string
	Notes         *string
}

// CreateAppointment books a new appointment. The end time and amount are
// derived from the service catalog entry when one is given.
func (s *AppointmentService) CreateAppointment(ctx context.Context, input *CreateAppointmentInput) (*entity.Appointment, error) {
	// Extract salon ID from context
	salonID, ok := infraRepo.GetSalonID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Salon context required")
	}

	// Validate customer if provided
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	// Validate staff if provided
	if input.StaffID != nil {
		staff, err := s.staffRepo.GetByID(ctx, *input.StaffID)
		if err != nil {
			return nil, err
		}
		if staff == nil {
			return nil, apperror.NewNotFoundError("Staff member")
		}
		if !staff.Active {
			return nil, apperror.NewBadRequestError("Staff member is not active")
		}
	}

	appointment := &entity.Appointment{
		SalonID:       salonID,
		UserID:        input.UserID,
		CustomerID:    input.CustomerID,
		StaffID:       input.StaffID,
		ServiceID:     input.ServiceID,
		Status:        enum.AppointmentStatusPending,
		StartTime:     input.StartTime,
		PaymentMethod: input.PaymentMethod,
		BookingNo:     utils.GenerateBookingNo(),
		Notes:         input.Notes,
	}

	// Derive end time and amount from the catalog entry
	if input.ServiceID != nil {
		service, err := s.serviceRepo.GetByID(ctx, *input.ServiceID)
		if err != nil {
			return nil, err
		}
		if service == nil {
			return nil, apperror.NewNotFoundError("Service")
		}
		appointment.TotalAmount = service.Price
		if input.StartTime != nil {
			end := input.StartTime.Add(time.Duration(service.DurationMinutes) * time.Minute)
			appointment.EndTime = &end
		}
	}

	// Reject double bookings for the same staff member
	if input.StaffID != nil && appointment.StartTime != nil && appointment.EndTime != nil {
		overlapping, err := s.appointmentRepo.CountOverlapping(ctx, *input.StaffID, *appointment.StartTime, *appointment.EndTime, nil)
		if err != nil {
			return nil, err
		}
		if overlapping > 0 {
			return nil, apperror.NewConflictError("Staff member is already booked for this time slot")
		}
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	return s.appointmentRepo.GetWithDetails(ctx, appointment.ID)
}

// GetAppointment retrieves an appointment by ID
func (s *AppointmentService) GetAppointment(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	return appointment, nil
}

// ListAppointments lists appointments with filtering
func (s *AppointmentService) ListAppointments(ctx context.Context, params *repository.AppointmentFilterParams) (*pagination.PaginatedResult[entity.Appointment], error) {
	appointments, total, err := s.appointmentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(appointments, pag), nil
}

// ListAppointmentsWithCursor lists appointments with cursor-based pagination
func (s *AppointmentService) ListAppointmentsWithCursor(ctx context.Context, params *repository.AppointmentCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Appointment], error) {
	appointments, err := s.appointmentRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(appointments, params.Cursor.Limit,
		func(a entity.Appointment) string { return a.ID.String() },
		func(a entity.Appointment) time.Time { return a.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateAppointmentStatus updates the status of an appointment
func (s *AppointmentService) UpdateAppointmentStatus(ctx context.Context, id uuid.UUID, status enum.AppointmentStatus) error {
	if !status.IsValid() {
		return apperror.NewBadRequestError("Unknown appointment status: " + string(status))
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return apperror.NewNotFoundError("Appointment")
	}

	return s.appointmentRepo.UpdateStatus(ctx, id, status)
}

// CancelAppointment cancels an appointment, recording who cancelled it
func (s *AppointmentService) CancelAppointment(ctx context.Context, id uuid.UUID, cancelledBy string) error {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return apperror.NewNotFoundError("Appointment")
	}

	if appointment.Status == enum.AppointmentStatusCancelled {
		return apperror.NewAppError(400, "Appointment is already cancelled")
	}
	if appointment.Status == enum.AppointmentStatusCompleted {
		return apperror.NewAppError(400, "Completed appointments cannot be cancelled")
	}

	if cancelledBy != "staff" && cancelledBy != "customer" {
		cancelledBy = "customer"
	}

	appointment.Status = enum.AppointmentStatusCancelled
	appointment.CancelledBy = &cancelledBy
	return s.appointmentRepo.Update(ctx, appointment)
}

// RescheduleAppointmentInput represents the reschedule input
type RescheduleAppointmentInput struct {
	ID        uuid.UUID
	StartTime time.Time
}

// RescheduleAppointment moves an appointment to a new time slot
func (s *AppointmentService) RescheduleAppointment(ctx context.Context, input *RescheduleAppointmentInput) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}

	if appointment.Status == enum.AppointmentStatusCancelled || appointment.Status == enum.AppointmentStatusCompleted {
		return nil, apperror.NewBadRequestError("Only upcoming appointments can be rescheduled")
	}

	// Preserve the booked duration
	duration := 0 * time.Minute
	if appointment.StartTime != nil && appointment.EndTime != nil {
		duration = appointment.EndTime.Sub(*appointment.StartTime)
	}

	start := input.StartTime
	appointment.StartTime = &start
	if duration > 0 {
		end := start.Add(duration)
		appointment.EndTime = &end
	}

	// Reject double bookings for the same staff member
	if appointment.StaffID != nil && appointment.EndTime != nil {
		overlapping, err := s.appointmentRepo.CountOverlapping(ctx, *appointment.StaffID, *appointment.StartTime, *appointment.EndTime, &appointment.ID)
		if err != nil {
			return nil, err
		}
		if overlapping > 0 {
			return nil, apperror.NewConflictError("Staff member is already booked for this time slot")
		}
	}

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}

	return s.appointmentRepo.GetWithDetails(ctx, appointment.ID)
}

// GetUpcomingAppointments returns confirmed and pending future appointments
func (s *AppointmentService) GetUpcomingAppointments(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Appointment], error) {
	appointments, total, err := s.appointmentRepo.GetUpcoming(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(appointments, pag), nil
}
