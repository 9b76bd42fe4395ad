package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns customers with page-based pagination
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// ListWithCursor returns customers using cursor-based pagination
	ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Customer, error)
}
