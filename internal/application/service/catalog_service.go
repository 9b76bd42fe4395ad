package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	infraRepo "github.com/wangari/glowdesk-api/internal/infrastructure/repository"
	"github.com/wangari/glowdesk-api/pkg/apperror"
	"github.com/wangari/glowdesk-api/pkg/pagination"
	"github.com/wangari/glowdesk-api/pkg/utils"
)

// CatalogService manages the salon's bookable service catalog
type CatalogService struct {
	serviceRepo repository.ServiceRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo repository.ServiceRepository) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo}
}

// CreateServiceInput represents the create service input
type CreateServiceInput struct {
	Name            string
	Code            string
	Category        string
	Description     *string
	Price           float64
	DurationMinutes int
}

// CreateService creates a new catalog service
func (s *CatalogService) CreateService(ctx context.Context, input *CreateServiceInput) (*entity.Service, error) {
	// Extract salon ID from context
	salonID, ok := infraRepo.GetSalonID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Salon context required")
	}

	// Auto-generate code if not provided
	code := input.Code
	if code == "" {
		code = utils.GenerateServiceCode()
	}

	// Check if code already exists
	existing, err := s.serviceRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Service code already exists")
	}

	duration := input.DurationMinutes
	if duration <= 0 {
		duration = 30
	}

	service := &entity.Service{
		SalonID:         salonID,
		Name:            input.Name,
		Code:            code,
		Category:        input.Category,
		Description:     input.Description,
		DurationMinutes: duration,
		Active:          true,
	}
	service.SetPriceFromDecimal(input.Price)

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, err
	}

	return service, nil
}

// GetService retrieves a service by ID
func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return service, nil
}

// ListServices lists catalog services with filtering
func (s *CatalogService) ListServices(ctx context.Context, params *repository.ServiceFilterParams) (*pagination.PaginatedResult[entity.Service], error) {
	services, total, err := s.serviceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(services, pag), nil
}

// UpdateServiceInput represents the update service input
type UpdateServiceInput struct {
	ID              uuid.UUID
	Name            *string
	Code            *string
	Category        *string
	Description     *string
	Price           *float64
	DurationMinutes *int
	Active          *bool
}

// UpdateService updates a catalog service
func (s *CatalogService) UpdateService(ctx context.Context, input *UpdateServiceInput) (*entity.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, apperror.NewNotFoundError("Service")
	}

	// Check if new code is unique
	if input.Code != nil && *input.Code != service.Code {
		existing, err := s.serviceRepo.GetByCode(ctx, *input.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != service.ID {
			return nil, apperror.NewConflictError("Service code already exists")
		}
		service.Code = *input.Code
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.Description != nil {
		service.Description = input.Description
	}
	if input.Price != nil {
		service.SetPriceFromDecimal(*input.Price)
	}
	if input.DurationMinutes != nil && *input.DurationMinutes > 0 {
		service.DurationMinutes = *input.DurationMinutes
	}
	if input.Active != nil {
		service.Active = *input.Active
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, err
	}

	return service, nil
}

// DeleteService deletes a catalog service
func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if service == nil {
		return apperror.NewNotFoundError("Service")
	}

	return s.serviceRepo.Delete(ctx, id)
}

// ImportServiceRow represents a single row from the import file
type ImportServiceRow struct {
	Name            string
	Code            string
	Category        string
	Price           float64
	DurationMinutes int
	Description     string
}

// ImportResult contains the result of a catalog import operation
type ImportResult struct {
	TotalRows  int              `json:"total_rows"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Errors     []ImportRowError `json:"errors,omitempty"`
}

// ImportRowError describes an error for a specific row during import
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportServices validates and bulk-creates catalog services from parsed import rows
func (s *CatalogService) ImportServices(ctx context.Context, rows []ImportServiceRow) (*ImportResult, error) {
	salonID, ok := infraRepo.GetSalonID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Salon context required")
	}

	result := &ImportResult{TotalRows: len(rows)}
	var rowErrors []ImportRowError

	// Track codes seen in this import batch to detect duplicates within the file
	seenCodes := make(map[string]int) // code -> row number (1-indexed)

	var validServices []entity.Service

	for i, row := range rows {
		rowNum := i + 2 // +2 because row 1 is the header, data starts at row 2

		if strings.TrimSpace(row.Name) == "" {
			rowErrors = append(rowErrors, ImportRowError{Row: rowNum, Field: "name", Message: "Name is required"})
			continue
		}

		code := strings.TrimSpace(row.Code)
		if code == "" {
			code = utils.GenerateServiceCode()
		}

		if prevRow, exists := seenCodes[code]; exists {
			rowErrors = append(rowErrors, ImportRowError{
				Row:     rowNum,
				Field:   "code",
				Message: fmt.Sprintf("Duplicate code '%s' (same as row %d)", code, prevRow),
			})
			continue
		}

		existing, err := s.serviceRepo.GetByCode(ctx, code)
		if err != nil {
			rowErrors = append(rowErrors, ImportRowError{Row: rowNum, Field: "code", Message: "Error checking code: " + err.Error()})
			continue
		}
		if existing != nil {
			rowErrors = append(rowErrors, ImportRowError{
				Row:     rowNum,
				Field:   "code",
				Message: fmt.Sprintf("Service code '%s' already exists", code),
			})
			continue
		}

		seenCodes[code] = rowNum

		duration := row.DurationMinutes
		if duration <= 0 {
			duration = 30
		}

		service := entity.Service{
			SalonID:         salonID,
			Name:            strings.TrimSpace(row.Name),
			Code:            code,
			Category:        strings.TrimSpace(row.Category),
			DurationMinutes: duration,
			Active:          true,
		}
		service.SetPriceFromDecimal(row.Price)

		if row.Description != "" {
			description := row.Description
			service.Description = &description
		}

		validServices = append(validServices, service)
	}

	// Batch create valid services
	if len(validServices) > 0 {
		if err := s.serviceRepo.CreateBatch(ctx, validServices); err != nil {
			return nil, apperror.NewAppError(500, "Failed to import services: "+err.Error())
		}
	}

	result.Successful = len(validServices)
	result.Failed = len(rowErrors)
	result.Errors = rowErrors

	return result, nil
}
