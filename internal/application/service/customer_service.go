package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	infraRepo "github.com/wangari/glowdesk-api/internal/infrastructure/repository"
	"github.com/wangari/glowdesk-api/pkg/apperror"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name  string
	Email *string
	Phone *string
	Notes *string
	Photo *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	// Extract salon ID from context
	salonID, ok := infraRepo.GetSalonID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Salon context required")
	}

	// Reject duplicate phone numbers within the salon
	if input.Phone != nil && *input.Phone != "" {
		existing, err := s.customerRepo.GetByPhone(ctx, *input.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A customer with this phone number already exists")
		}
	}

	customer := &entity.Customer{
		SalonID: salonID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Notes:   input.Notes,
		Photo:   input.Photo,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists the salon's customers
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// ListCustomersWithCursor lists customers using cursor-based pagination
func (s *CustomerService) ListCustomersWithCursor(ctx context.Context, params *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Customer], error) {
	customers, err := s.customerRepo.ListWithCursor(ctx, params, search)
	if err != nil {
		return nil, err
	}

	// Determine if there was a cursor provided (meaning we're not on first page)
	hasPrev := params.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(customers, params.Limit,
		func(c entity.Customer) string { return c.ID.String() },
		func(c entity.Customer) time.Time { return c.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID    uuid.UUID
	Name  *string
	Email *string
	Phone *string
	Notes *string
	Photo *string
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Notes != nil {
		customer.Notes = input.Notes
	}
	if input.Photo != nil {
		customer.Photo = input.Photo
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.Delete(ctx, id)
}
