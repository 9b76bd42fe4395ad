package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/application/service"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/presentation/http/dto/response"
	"github.com/wangari/glowdesk-api/internal/presentation/http/middleware"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

// SalonHandler handles salon-related HTTP requests
type SalonHandler struct {
	salonService *service.SalonService
}

// NewSalonHandler creates a new salon handler
func NewSalonHandler(salonService *service.SalonService) *SalonHandler {
	return &SalonHandler{salonService: salonService}
}

// CreateSalon registers a new salon owned by the current user
func (h *SalonHandler) CreateSalon(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Name     string                `json:"name" binding:"required"`
		Slug     string                `json:"slug"`
		Settings *entity.SalonSettings `json:"settings"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	salon, err := h.salonService.CreateSalon(c.Request.Context(), &service.CreateSalonInput{
		Name:     req.Name,
		Slug:     req.Slug,
		OwnerID:  *userID,
		Settings: req.Settings,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Salon created successfully", gin.H{
		"salon": salon,
	})
}

// GetCurrentSalon returns the current request's active salon
func (h *SalonHandler) GetCurrentSalon(c *gin.Context) {
	salonID := middleware.GetSalonID(c)
	if salonID == uuid.Nil {
		response.BadRequest(c, "No active salon")
		return
	}

	salon, err := h.salonService.GetSalon(c.Request.Context(), salonID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Salon retrieved successfully", gin.H{
		"salon": salon,
	})
}

// ListSalons returns all salons for super admins, or only salons the user belongs to
func (h *SalonHandler) ListSalons(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := getPaginationParams(c)

	var salons []entity.Salon
	var total int64
	var err error

	// Super admins can see all salons
	if IsSuperAdmin(c) {
		salons, total, err = h.salonService.ListAllSalons(c.Request.Context(), params)
	} else {
		salons, total, err = h.salonService.GetUserSalons(c.Request.Context(), *userID, params)
	}

	if err != nil {
		response.Error(c, err)
		return
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	response.SuccessWithPagination(c, 200, "Salons retrieved successfully", pagination.NewPaginatedResult(salons, pag))
}

// UpdateSalon updates the current salon's profile and settings
func (h *SalonHandler) UpdateSalon(c *gin.Context) {
	salonID := middleware.GetSalonID(c)
	if salonID == uuid.Nil {
		response.BadRequest(c, "No active salon")
		return
	}

	var req struct {
		Name     string                `json:"name"`
		Settings *entity.SalonSettings `json:"settings"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	salon, err := h.salonService.UpdateSalon(c.Request.Context(), &service.UpdateSalonInput{
		ID:       salonID,
		Name:     req.Name,
		Settings: req.Settings,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Salon updated successfully", gin.H{
		"salon": salon,
	})
}

// ListMembers returns all members of the current salon
func (h *SalonHandler) ListMembers(c *gin.Context) {
	salonID := middleware.GetSalonID(c)
	if salonID == uuid.Nil {
		response.BadRequest(c, "No active salon")
		return
	}

	members, err := h.salonService.GetSalonMembers(c.Request.Context(), salonID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Members retrieved successfully", gin.H{
		"members": members,
	})
}

// InviteMember invites a user to the current salon
func (h *SalonHandler) InviteMember(c *gin.Context) {
	salonID := middleware.GetSalonID(c)
	if salonID == uuid.Nil {
		response.BadRequest(c, "No active salon")
		return
	}

	var req struct {
		UserID uuid.UUID `json:"user_id" binding:"required"`
		Role   string    `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.salonService.InviteMember(c.Request.Context(), &service.InviteMemberInput{
		SalonID: salonID,
		UserID:  req.UserID,
		Role:    req.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Member invited successfully", nil)
}

// RemoveMember removes a user from the current salon
func (h *SalonHandler) RemoveMember(c *gin.Context) {
	salonID := middleware.GetSalonID(c)
	if salonID == uuid.Nil {
		response.BadRequest(c, "No active salon")
		return
	}

	userIDStr := c.Param("user_id")
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.salonService.RemoveMember(c.Request.Context(), salonID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member removed successfully", nil)
}

// UpdateMemberRole updates a member's role in the current salon
func (h *SalonHandler) UpdateMemberRole(c *gin.Context) {
	salonID := middleware.GetSalonID(c)
	if salonID == uuid.Nil {
		response.BadRequest(c, "No active salon")
		return
	}

	userIDStr := c.Param("user_id")
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.salonService.UpdateMemberRole(c.Request.Context(), salonID, userID, req.Role); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member role updated successfully", nil)
}

// AssignUserToSalon assigns a user to a salon (super admin only)
func (h *SalonHandler) AssignUserToSalon(c *gin.Context) {
	var req struct {
		SalonID uuid.UUID `json:"salon_id" binding:"required"`
		UserID  uuid.UUID `json:"user_id" binding:"required"`
		Role    string    `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// Default role to member if not specified
	if req.Role == "" {
		req.Role = "member"
	}

	err := h.salonService.AssignUserToSalon(c.Request.Context(), &service.AssignUserToSalonInput{
		SalonID: req.SalonID,
		UserID:  req.UserID,
		Role:    req.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User assigned to salon successfully", nil)
}
