package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/application/service"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	"github.com/wangari/glowdesk-api/internal/presentation/http/dto/request"
	"github.com/wangari/glowdesk-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles service catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List handles listing catalog services
func (h *CatalogHandler) List(c *gin.Context) {
	params := &repository.ServiceFilterParams{
		Pagination: getPaginationParams(c),
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		ActiveOnly: c.Query("active") == "true",
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	result, err := h.catalogService.ListServices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Services retrieved successfully", result)
}

// Create handles creating a catalog service
func (h *CatalogHandler) Create(c *gin.Context) {
	var req request.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), &service.CreateServiceInput{
		Name:            req.Name,
		Code:            req.Code,
		Category:        req.Category,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service created successfully", svc)
}

// Get handles getting a single catalog service
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	svc, err := h.catalogService.GetService(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service retrieved successfully", svc)
}

// Update handles updating a catalog service
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	var req request.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), &service.UpdateServiceInput{
		ID:              id,
		Name:            req.Name,
		Code:            req.Code,
		Category:        req.Category,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Active:          req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service updated successfully", svc)
}

// Delete handles deleting a catalog service
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Import handles bulk importing catalog services
func (h *CatalogHandler) Import(c *gin.Context) {
	var req struct {
		Services []request.ImportServiceRow `json:"services" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	rows := make([]service.ImportServiceRow, 0, len(req.Services))
	for _, row := range req.Services {
		rows = append(rows, service.ImportServiceRow{
			Name:            row.Name,
			Code:            row.Code,
			Category:        row.Category,
			Price:           row.Price,
			DurationMinutes: row.DurationMinutes,
			Description:     row.Description,
		})
	}

	result, err := h.catalogService.ImportServices(c.Request.Context(), rows)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Import completed", result)
}
