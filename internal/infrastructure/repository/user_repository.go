package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	domainRepo "github.com/wangari/glowdesk-api/internal/domain/repository"
	"github.com/wangari/glowdesk-api/pkg/pagination"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return firstOrNil[entity.User](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return firstOrNil[entity.User](r.db.WithContext(ctx).Where("email = ?", email))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return firstOrNil[entity.User](r.db.WithContext(ctx).Where("username = ?", username))
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.User{}, "id = ?", id).Error
}

// List returns a page of accounts ordered by newest first. The search term
// matches names, email and username so the front desk can find a colleague
// by whatever they remember.
func (r *userRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.User, int64, error) {
	var users []entity.User
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.User{})

	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR username ILIKE ?",
			like, like, like, like,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Roles").
		Order("created_at DESC").
		Find(&users).Error

	return users, total, err
}

// GetWithRoles loads an account with roles and their permissions, the shape
// token issuance needs.
func (r *userRepository) GetWithRoles(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return firstOrNil[entity.User](
		r.db.WithContext(ctx).Preload("Roles.Permissions").Where("id = ?", id),
	)
}

func (r *userRepository) AssignRole(ctx context.Context, userID uuid.UUID, roleID uint) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO user_roles (user_id, role_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		userID, roleID,
	).Error
}

func (r *userRepository) RemoveRole(ctx context.Context, userID uuid.UUID, roleID uint) error {
	return r.db.WithContext(ctx).Exec(
		"DELETE FROM user_roles WHERE user_id = ? AND role_id = ?",
		userID, roleID,
	).Error
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) domainRepo.RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) GetByID(ctx context.Context, id uint) (*entity.Role, error) {
	return firstOrNil[entity.Role](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	return firstOrNil[entity.Role](r.db.WithContext(ctx).Where("name = ?", name))
}

func (r *roleRepository) List(ctx context.Context) ([]entity.Role, error) {
	var roles []entity.Role
	err := r.db.WithContext(ctx).Preload("Permissions").Find(&roles).Error
	return roles, err
}

type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository creates a new permission repository
func NewPermissionRepository(db *gorm.DB) domainRepo.PermissionRepository {
	return &permissionRepository{db: db}
}

func (r *permissionRepository) List(ctx context.Context) ([]entity.Permission, error) {
	var permissions []entity.Permission
	err := r.db.WithContext(ctx).Order("name ASC").Find(&permissions).Error
	return permissions, err
}
