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

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).Scopes(SalonScope(ctx)).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).Scopes(SalonScope(ctx)).First(&customer, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).Scopes(SalonScope(ctx)).First(&customer, "phone = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}

func (r *customerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{}).Scopes(SalonScope(ctx))

	if search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&customers).Error

	return customers, total, err
}

// ListWithCursor returns customers using cursor-based pagination
// Fetches limit+1 items to detect if there are more results
func (r *customerRepository) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Customer, error) {
	var customers []entity.Customer

	params.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Customer{}).Scopes(SalonScope(ctx))

	if search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	// Decode cursor if provided
	cursor, err := params.DecodeCursor()
	if err != nil {
		return nil, err
	}

	// Apply cursor-based filtering using created_at and id
	if cursor != nil {
		if params.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	// Fetch limit+1 to detect hasMore
	err = query.Limit(params.Limit + 1).
		Order("created_at ASC, id ASC").
		Find(&customers).Error

	return customers, err
}
