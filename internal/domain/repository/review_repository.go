package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	GetByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ReviewFilterParams) ([]entity.Review, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ReviewStatus) error
}

// ReviewFilterParams contains filtering parameters for review queries
type ReviewFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.ReviewStatus
	StaffID    *uuid.UUID
	CustomerID *uuid.UUID
	MinRating  *int
	StartDate  *time.Time
	EndDate    *time.Time
}
