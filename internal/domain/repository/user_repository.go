package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.User, int64, error)
	GetWithRoles(ctx context.Context, id uuid.UUID) (*entity.User, error)
	AssignRole(ctx context.Context, userID uuid.UUID, roleID uint) error
	RemoveRole(ctx context.Context, userID uuid.UUID, roleID uint) error
}

// RoleRepository reads the RBAC roles. Roles and permissions are seeded at
// startup and managed there, so no write methods are exposed.
type RoleRepository interface {
	GetByID(ctx context.Context, id uint) (*entity.Role, error)
	GetByName(ctx context.Context, name string) (*entity.Role, error)
	List(ctx context.Context) ([]entity.Role, error)
}

// PermissionRepository reads the RBAC permissions.
type PermissionRepository interface {
	List(ctx context.Context) ([]entity.Permission, error)
}
