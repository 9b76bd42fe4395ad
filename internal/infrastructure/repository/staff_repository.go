package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	domainRepo "github.com/wangari/glowdesk-api/internal/domain/repository"
	"github.com/wangari/glowdesk-api/pkg/pagination"
	"gorm.io/gorm"
)

type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) domainRepo.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	var staff entity.Staff
	err := r.db.WithContext(ctx).Scopes(SalonScope(ctx)).First(&staff, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &staff, err
}

func (r *staffRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Staff, error) {
	var staff entity.Staff
	err := r.db.WithContext(ctx).Scopes(SalonScope(ctx)).First(&staff, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &staff, err
}

func (r *staffRepository) Update(ctx context.Context, staff *entity.Staff) error {
	return r.db.WithContext(ctx).Save(staff).Error
}

func (r *staffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Staff{}, "id = ?", id).Error
}

func (r *staffRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.Staff, int64, error) {
	var staff []entity.Staff
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Staff{}).Scopes(SalonScope(ctx))
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	if search != "" {
		query = query.Where("name ILIKE ? OR title ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&staff).Error

	return staff, total, err
}
