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

type salonRepository struct {
	db *gorm.DB
}

// NewSalonRepository creates a new salon repository
func NewSalonRepository(db *gorm.DB) domainRepo.SalonRepository {
	return &salonRepository{db: db}
}

func (r *salonRepository) Create(ctx context.Context, salon *entity.Salon) error {
	return r.db.WithContext(ctx).Create(salon).Error
}

func (r *salonRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Salon, error) {
	var salon entity.Salon
	err := r.db.WithContext(ctx).First(&salon, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &salon, err
}

func (r *salonRepository) GetBySlug(ctx context.Context, slug string) (*entity.Salon, error) {
	var salon entity.Salon
	err := r.db.WithContext(ctx).First(&salon, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &salon, err
}

func (r *salonRepository) Update(ctx context.Context, salon *entity.Salon) error {
	return r.db.WithContext(ctx).Save(salon).Error
}

func (r *salonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Salon{}, "id = ?", id).Error
}

func (r *salonRepository) GetUserSalons(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Salon, int64, error) {
	var salons []entity.Salon
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Salon{}).
		Joins("JOIN salon_memberships ON salon_memberships.salon_id = salons.id").
		Where("salon_memberships.user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("salons.created_at DESC").
		Find(&salons).Error

	return salons, total, err
}

func (r *salonRepository) AddMember(ctx context.Context, membership *entity.SalonMembership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *salonRepository) RemoveMember(ctx context.Context, salonID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.SalonMembership{}, "salon_id = ? AND user_id = ?", salonID, userID).Error
}

func (r *salonRepository) GetMembers(ctx context.Context, salonID uuid.UUID) ([]entity.SalonMembership, error) {
	var members []entity.SalonMembership
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("salon_id = ?", salonID).
		Find(&members).Error
	return members, err
}

func (r *salonRepository) IsMember(ctx context.Context, salonID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.SalonMembership{}).
		Where("salon_id = ? AND user_id = ?", salonID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *salonRepository) GetMembership(ctx context.Context, salonID, userID uuid.UUID) (*entity.SalonMembership, error) {
	var membership entity.SalonMembership
	err := r.db.WithContext(ctx).
		First(&membership, "salon_id = ? AND user_id = ?", salonID, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &membership, err
}

func (r *salonRepository) UpdateMemberRole(ctx context.Context, salonID, userID uuid.UUID, role string) error {
	return r.db.WithContext(ctx).
		Model(&entity.SalonMembership{}).
		Where("salon_id = ? AND user_id = ?", salonID, userID).
		Update("role", role).Error
}

func (r *salonRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Salon{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

func (r *salonRepository) ListAll(ctx context.Context, params *pagination.PaginationParams) ([]entity.Salon, int64, error) {
	var salons []entity.Salon
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Salon{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&salons).Error

	return salons, total, err
}

func (r *salonRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Salon{}).Count(&count).Error
	return count, err
}
