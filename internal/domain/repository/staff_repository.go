package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

// StaffRepository defines the interface for staff data operations
type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Staff, error)
	Update(ctx context.Context, staff *entity.Staff) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.Staff, int64, error)
}
