package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/application/service"
	"github.com/wangari/glowdesk-api/internal/presentation/http/dto/response"
)

// StaffHandler handles staff roster HTTP requests
type StaffHandler struct {
	staffService *service.StaffService
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// List handles listing the staff roster
func (h *StaffHandler) List(c *gin.Context) {
	params := getPaginationParams(c)
	search := c.Query("search")
	activeOnly := c.Query("active") == "true"

	result, err := h.staffService.ListStaff(c.Request.Context(), params, search, activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Staff retrieved successfully", result)
}

// Create handles adding a staff member
func (h *StaffHandler) Create(c *gin.Context) {
	var req struct {
		UserID           *uuid.UUID `json:"user_id"`
		Name             string     `json:"name" binding:"required"`
		Title            string     `json:"title"`
		Email            *string    `json:"email"`
		Phone            *string    `json:"phone"`
		AvailableMinutes int        `json:"available_minutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	staff, err := h.staffService.CreateStaff(c.Request.Context(), &service.CreateStaffInput{
		UserID:           req.UserID,
		Name:             req.Name,
		Title:            req.Title,
		Email:            req.Email,
		Phone:            req.Phone,
		AvailableMinutes: req.AvailableMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Staff member created successfully", staff)
}

// Get handles getting a single staff member
func (h *StaffHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	staff, err := h.staffService.GetStaff(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff member retrieved successfully", staff)
}

// Update handles updating a staff member
func (h *StaffHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	var req struct {
		Name             *string `json:"name"`
		Title            *string `json:"title"`
		Email            *string `json:"email"`
		Phone            *string `json:"phone"`
		Active           *bool   `json:"active"`
		AvailableMinutes *int    `json:"available_minutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	staff, err := h.staffService.UpdateStaff(c.Request.Context(), &service.UpdateStaffInput{
		ID:               id,
		Name:             req.Name,
		Title:            req.Title,
		Email:            req.Email,
		Phone:            req.Phone,
		Active:           req.Active,
		AvailableMinutes: req.AvailableMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff member updated successfully", staff)
}

// Delete handles removing a staff member
func (h *StaffHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	if err := h.staffService.DeleteStaff(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
