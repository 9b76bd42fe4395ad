package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	"github.com/wangari/glowdesk-api/pkg/apperror"
	"github.com/wangari/glowdesk-api/pkg/pagination"
	"github.com/wangari/glowdesk-api/pkg/utils"
)

// SalonService handles salon-related operations
type SalonService struct {
	salonRepo repository.SalonRepository
}

// NewSalonService creates a new salon service
func NewSalonService(salonRepo repository.SalonRepository) *SalonService {
	return &SalonService{salonRepo: salonRepo}
}

// CreateSalonInput represents input for creating a salon
type CreateSalonInput struct {
	Name     string
	Slug     string
	OwnerID  uuid.UUID
	Settings *entity.SalonSettings
}

// CreateSalon creates a new salon
func (s *SalonService) CreateSalon(ctx context.Context, input *CreateSalonInput) (*entity.Salon, error) {
	if input.Slug == "" {
		input.Slug = utils.Slugify(input.Name)
	}
	if input.Slug == "" {
		return nil, apperror.NewBadRequestError("Salon slug is required")
	}

	existing, err := s.salonRepo.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Salon slug already exists")
	}

	settings := entity.DefaultSalonSettings()
	if input.Settings != nil {
		settings = *input.Settings
	}

	salon := &entity.Salon{
		Name:     input.Name,
		Slug:     input.Slug,
		OwnerID:  input.OwnerID,
		Settings: settings,
	}

	if err := s.salonRepo.Create(ctx, salon); err != nil {
		return nil, err
	}

	// Add owner as member
	membership := &entity.SalonMembership{
		SalonID: salon.ID,
		UserID:  input.OwnerID,
		Role:    "owner",
	}
	_ = s.salonRepo.AddMember(ctx, membership)

	return salon, nil
}

// GetSalon retrieves a salon by ID
func (s *SalonService) GetSalon(ctx context.Context, id uuid.UUID) (*entity.Salon, error) {
	salon, err := s.salonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if salon == nil {
		return nil, apperror.ErrNotFound
	}
	return salon, nil
}

// GetUserSalons retrieves all salons a user belongs to
func (s *SalonService) GetUserSalons(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Salon, int64, error) {
	return s.salonRepo.GetUserSalons(ctx, userID, params)
}

// UpdateSalonInput represents input for updating a salon
type UpdateSalonInput struct {
	ID       uuid.UUID
	Name     string
	Settings *entity.SalonSettings
}

// UpdateSalon updates a salon
func (s *SalonService) UpdateSalon(ctx context.Context, input *UpdateSalonInput) (*entity.Salon, error) {
	salon, err := s.salonRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if salon == nil {
		return nil, apperror.ErrNotFound
	}

	if input.Name != "" {
		salon.Name = input.Name
	}
	if input.Settings != nil {
		salon.Settings = *input.Settings
	}

	if err := s.salonRepo.Update(ctx, salon); err != nil {
		return nil, err
	}

	return salon, nil
}

// InviteMemberInput represents input for inviting a user to a salon
type InviteMemberInput struct {
	SalonID uuid.UUID
	UserID  uuid.UUID
	Role    string
}

// InviteMember adds a user to a salon
func (s *SalonService) InviteMember(ctx context.Context, input *InviteMemberInput) error {
	// Check if user is already a member
	isMember, _ := s.salonRepo.IsMember(ctx, input.SalonID, input.UserID)
	if isMember {
		return apperror.NewConflictError("User is already a member of this salon")
	}

	membership := &entity.SalonMembership{
		SalonID: input.SalonID,
		UserID:  input.UserID,
		Role:    input.Role,
	}

	return s.salonRepo.AddMember(ctx, membership)
}

// RemoveMember removes a user from a salon
func (s *SalonService) RemoveMember(ctx context.Context, salonID, userID uuid.UUID) error {
	return s.salonRepo.RemoveMember(ctx, salonID, userID)
}

// GetSalonMembers retrieves all members of a salon
func (s *SalonService) GetSalonMembers(ctx context.Context, salonID uuid.UUID) ([]entity.SalonMembership, error) {
	members, err := s.salonRepo.GetMembers(ctx, salonID)
	if err != nil {
		return nil, err
	}

	// Populate user details for JSON response
	for i := range members {
		members[i].PopulateUserDetails()
	}

	return members, nil
}

// UpdateMemberRole updates a member's role in a salon
func (s *SalonService) UpdateMemberRole(ctx context.Context, salonID, userID uuid.UUID, role string) error {
	return s.salonRepo.UpdateMemberRole(ctx, salonID, userID, role)
}

// ListAllSalons retrieves all salons (for super admin use)
func (s *SalonService) ListAllSalons(ctx context.Context, params *pagination.PaginationParams) ([]entity.Salon, int64, error) {
	return s.salonRepo.ListAll(ctx, params)
}

// AssignUserToSalonInput represents input for assigning a user to a salon
type AssignUserToSalonInput struct {
	SalonID uuid.UUID
	UserID  uuid.UUID
	Role    string
}

// AssignUserToSalon assigns a user to a salon (for super admin use)
func (s *SalonService) AssignUserToSalon(ctx context.Context, input *AssignUserToSalonInput) error {
	// Check if salon exists
	salon, err := s.salonRepo.GetByID(ctx, input.SalonID)
	if err != nil {
		return err
	}
	if salon == nil {
		return apperror.ErrNotFound
	}

	// Check if user is already a member
	isMember, _ := s.salonRepo.IsMember(ctx, input.SalonID, input.UserID)
	if isMember {
		return apperror.NewConflictError("User is already a member of this salon")
	}

	// Default role to member if not specified
	role := input.Role
	if role == "" {
		role = "member"
	}

	membership := &entity.SalonMembership{
		SalonID: input.SalonID,
		UserID:  input.UserID,
		Role:    role,
	}

	return s.salonRepo.AddMember(ctx, membership)
}
