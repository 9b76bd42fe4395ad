package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/application/service"
	"github.com/wangari/glowdesk-api/internal/presentation/http/dto/response"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers (supports both page-based and cursor-based pagination)
func (h *CustomerHandler) List(c *gin.Context) {
	search := c.Query("search")

	// Check if cursor-based pagination is requested
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, search)
		return
	}

	params := getPaginationParams(c)

	result, err := h.customerService.ListCustomers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// listWithCursor handles listing customers with cursor-based pagination
func (h *CustomerHandler) listWithCursor(c *gin.Context, search string) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	cursor := c.Query("cursor")
	direction := c.DefaultQuery("direction", "next")

	params := &pagination.CursorParams{
		Cursor:    cursor,
		Direction: pagination.CursorDirection(direction),
		Limit:     limit,
	}

	result, err := h.customerService.ListCustomersWithCursor(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Customers retrieved successfully", result)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req struct {
		Name  string  `json:"name" binding:"required"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
		Notes *string `json:"notes"`
		Photo *string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
		Photo: req.Photo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
		Notes *string `json:"notes"`
		Photo *string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &service.UpdateCustomerInput{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
		Photo: req.Photo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
