package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	domainRepo "github.com/wangari/glowdesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) domainRepo.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepository) CreateBatch(ctx context.Context, services []entity.Service) error {
	return r.db.WithContext(ctx).Create(&services).Error
}

func (r *serviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var service entity.Service
	err := r.db.WithContext(ctx).Scopes(SalonScope(ctx)).First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &service, err
}

func (r *serviceRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Service, error) {
	var services []entity.Service
	if len(ids) == 0 {
		return services, nil
	}
	err := r.db.WithContext(ctx).Scopes(SalonScope(ctx)).Where("id IN ?", ids).Find(&services).Error
	return services, err
}

func (r *serviceRepository) GetByCode(ctx context.Context, code string) (*entity.Service, error) {
	var service entity.Service
	err := r.db.WithContext(ctx).Scopes(SalonScope(ctx)).First(&service, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &service, err
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Service{}, "id = ?", id).Error
}

func (r *serviceRepository) List(ctx context.Context, params *domainRepo.ServiceFilterParams) ([]entity.Service, int64, error) {
	var services []entity.Service
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Service{}).Scopes(SalonScope(ctx))

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "name"
	sortOrder := "ASC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "DESC" || params.SortOrder == "desc" {
		sortOrder = "DESC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&services).Error

	return services, total, err
}
