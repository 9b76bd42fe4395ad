package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

// SalonRepository defines the interface for salon data operations
type SalonRepository interface {
	// Create creates a new salon
	Create(ctx context.Context, salon *entity.Salon) error

	// GetByID retrieves a salon by ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Salon, error)

	// GetBySlug retrieves a salon by slug (subdomain identifier)
	GetBySlug(ctx context.Context, slug string) (*entity.Salon, error)

	// Update updates an existing salon
	Update(ctx context.Context, salon *entity.Salon) error

	// Delete soft-deletes a salon
	Delete(ctx context.Context, id uuid.UUID) error

	// GetUserSalons retrieves all salons a user belongs to with pagination
	GetUserSalons(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Salon, int64, error)

	// AddMember adds a user as a member of a salon
	AddMember(ctx context.Context, membership *entity.SalonMembership) error

	// RemoveMember removes a user from a salon
	RemoveMember(ctx context.Context, salonID, userID uuid.UUID) error

	// GetMembers retrieves all members of a salon
	GetMembers(ctx context.Context, salonID uuid.UUID) ([]entity.SalonMembership, error)

	// IsMember checks if a user is a member of a salon
	IsMember(ctx context.Context, salonID, userID uuid.UUID) (bool, error)

	// GetMembership retrieves a specific membership
	GetMembership(ctx context.Context, salonID, userID uuid.UUID) (*entity.SalonMembership, error)

	// UpdateMemberRole updates a member's role in a salon
	UpdateMemberRole(ctx context.Context, salonID, userID uuid.UUID, role string) error

	// SlugExists checks if a slug is already taken
	SlugExists(ctx context.Context, slug string) (bool, error)

	// ListAll retrieves all salons (for super admin use)
	ListAll(ctx context.Context, params *pagination.PaginationParams) ([]entity.Salon, int64, error)

	// Count returns the total number of salons
	Count(ctx context.Context) (int64, error)
}
