package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	"github.com/wangari/glowdesk-api/pkg/apperror"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

// UserService handles staff account administration.
type UserService struct {
	userRepo       repository.UserRepository
	roleRepo       repository.RoleRepository
	permissionRepo repository.PermissionRepository
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	permissionRepo repository.PermissionRepository,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
	}
}

// ListUsersInput represents the input for listing users
type ListUsersInput struct {
	Page    int
	PerPage int
	Search  string
}

// ListUsersOutput represents the output for listing users
type ListUsersOutput struct {
	Users      []entity.User
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}

// ListUsers returns a page of accounts, optionally filtered by a search term.
func (s *UserService) ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	params := &pagination.PaginationParams{
		Page:    input.Page,
		PerPage: input.PerPage,
	}
	params.Validate()

	users, total, err := s.userRepo.List(ctx, params, input.Search)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / params.PerPage
	if int(total)%params.PerPage > 0 {
		totalPages++
	}

	return &ListUsersOutput{
		Users:      users,
		Total:      total,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
	}, nil
}

// GetUser returns an account with its roles and permissions loaded.
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetWithRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

// UpdateUserRolesInput represents the input for updating user roles
type UpdateUserRolesInput struct {
	UserID  uuid.UUID
	RoleIDs []uint
}

// UpdateUserRoles reconciles an account's role assignments against the
// requested set. Role IDs that do not exist are ignored.
func (s *UserService) UpdateUserRoles(ctx context.Context, input *UpdateUserRolesInput) (*entity.User, error) {
	user, err := s.userRepo.GetWithRoles(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	desired := make(map[uint]bool, len(input.RoleIDs))
	for _, roleID := range input.RoleIDs {
		desired[roleID] = true
	}
	current := make(map[uint]bool, len(user.Roles))
	for _, role := range user.Roles {
		current[role.ID] = true
	}

	for _, role := range user.Roles {
		if desired[role.ID] {
			continue
		}
		if err := s.userRepo.RemoveRole(ctx, input.UserID, role.ID); err != nil {
			return nil, err
		}
	}

	for roleID := range desired {
		if current[roleID] {
			continue
		}
		role, err := s.roleRepo.GetByID(ctx, roleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			continue
		}
		if err := s.userRepo.AssignRole(ctx, input.UserID, roleID); err != nil {
			return nil, err
		}
	}

	return s.userRepo.GetWithRoles(ctx, input.UserID)
}

// DeleteUser soft deletes an account.
func (s *UserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrNotFound
	}

	return s.userRepo.Delete(ctx, userID)
}

// ListRoles returns all available roles
func (s *UserService) ListRoles(ctx context.Context) ([]entity.Role, error) {
	return s.roleRepo.List(ctx)
}

// ListPermissions returns all available permissions
func (s *UserService) ListPermissions(ctx context.Context) ([]entity.Permission, error) {
	return s.permissionRepo.List(ctx)
}
