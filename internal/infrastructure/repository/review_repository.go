package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	err := r.db.WithContext(ctx).
		Scopes(SalonScope(ctx)).
		Preload("Customer").
		Preload("Staff").
		Where("id = ?", id).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	err := r.db.WithContext(ctx).
		Scopes(SalonScope(ctx)).
		Where("appointment_id = ?", appointmentID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(SalonScope(ctx)).
		Delete(&entity.Review{}, "id = ?", id).Error
}

func (r *reviewRepository) List(ctx context.Context, params *repository.ReviewFilterParams) ([]entity.Review, int64, error) {
	var reviews []entity.Review
	var total int64

	query := r.db.WithContext(ctx).
		Scopes(SalonScope(ctx)).
		Model(&entity.Review{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.StaffID != nil {
		query = query.Where("staff_id = ?", *params.StaffID)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.MinRating != nil {
		query = query.Where("rating >= ?", *params.MinRating)
	}
	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("created_at < ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.
		Preload("Customer").
		Preload("Staff").
		Order("created_at DESC").
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *reviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ReviewStatus) error {
	return r.db.WithContext(ctx).
		Scopes(SalonScope(ctx)).
		Model(&entity.Review{}).
		Where("id = ?", id).
		Update("status", status).Error
}
