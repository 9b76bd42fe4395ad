package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	infraRepo "github.com/wangari/glowdesk-api/internal/infrastructure/repository"
	"github.com/wangari/glowdesk-api/pkg/apperror"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

// StaffService handles staff roster operations
type StaffService struct {
	staffRepo repository.StaffRepository
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo repository.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

// CreateStaffInput represents the create staff input
type CreateStaffInput struct {
	UserID           *uuid.UUID
	Name             string
	Title            string
	Email            *string
	Phone            *string
	AvailableMinutes int
}

// CreateStaff adds a staff member to the roster
func (s *StaffService) CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.Staff, error) {
	// Extract salon ID from context
	salonID, ok := infraRepo.GetSalonID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Salon context required")
	}

	available := input.AvailableMinutes
	if available <= 0 {
		available = entity.DefaultStaffAvailableMinutes
	}

	staff := &entity.Staff{
		SalonID:          salonID,
		UserID:           input.UserID,
		Name:             input.Name,
		Title:            input.Title,
		Email:            input.Email,
		Phone:            input.Phone,
		Active:           true,
		AvailableMinutes: available,
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// GetStaff retrieves a staff member by ID
func (s *StaffService) GetStaff(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}
	return staff, nil
}

// ListStaff lists the salon's staff roster
func (s *StaffService) ListStaff(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) (*pagination.PaginatedResult[entity.Staff], error) {
	staff, total, err := s.staffRepo.List(ctx, params, search, activeOnly)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(staff, pag), nil
}

// UpdateStaffInput represents the update staff input
type UpdateStaffInput struct {
	ID               uuid.UUID
	Name             *string
	Title            *string
	Email            *string
	Phone            *string
	Active           *bool
	AvailableMinutes *int
}

// UpdateStaff updates a staff member
func (s *StaffService) UpdateStaff(ctx context.Context, input *UpdateStaffInput) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff member")
	}

	if input.Name != nil {
		staff.Name = *input.Name
	}
	if input.Title != nil {
		staff.Title = *input.Title
	}
	if input.Email != nil {
		staff.Email = input.Email
	}
	if input.Phone != nil {
		staff.Phone = input.Phone
	}
	if input.Active != nil {
		staff.Active = *input.Active
	}
	if input.AvailableMinutes != nil && *input.AvailableMinutes > 0 {
		staff.AvailableMinutes = *input.AvailableMinutes
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

// DeleteStaff removes a staff member from the roster
func (s *StaffService) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if staff == nil {
		return apperror.NewNotFoundError("Staff member")
	}

	return s.staffRepo.Delete(ctx, id)
}
