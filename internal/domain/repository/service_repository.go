package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

// ServiceRepository defines the interface for service catalog operations
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	CreateBatch(ctx context.Context, services []entity.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	// GetByIDs retrieves multiple services by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Service, error)
	GetByCode(ctx context.Context, code string) (*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ServiceFilterParams) ([]entity.Service, int64, error)
}

// ServiceFilterParams contains filtering parameters for service queries
type ServiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	ActiveOnly bool
	SortBy     string
	SortOrder  string
}
