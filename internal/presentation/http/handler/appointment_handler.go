package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/application/service"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	"github.com/wangari/glowdesk-api/internal/presentation/http/dto/response"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

// AppointmentHandler handles appointment-related HTTP requests
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// List handles listing appointments (supports both page-based and cursor-based pagination)
func (h *AppointmentHandler) List(c *gin.Context) {
	// Check if cursor-based pagination is requested
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c)
		return
	}

	params := &repository.AppointmentFilterParams{
		Pagination: getPaginationParams(c),
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.AppointmentStatus(statusStr)
		if status.IsValid() {
			params.Status = &status
		}
	}

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			params.CustomerID = &customerID
		}
	}

	if staffIDStr := c.Query("staff_id"); staffIDStr != "" {
		if staffID, err := uuid.Parse(staffIDStr); err == nil {
			params.StaffID = &staffID
		}
	}

	if serviceIDStr := c.Query("service_id"); serviceIDStr != "" {
		if serviceID, err := uuid.Parse(serviceIDStr); err == nil {
			params.ServiceID = &serviceID
		}
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	result, err := h.appointmentService.ListAppointments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Appointments retrieved successfully", result)
}

// listWithCursor handles listing appointments with cursor-based pagination
func (h *AppointmentHandler) listWithCursor(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	cursor := c.Query("cursor")
	direction := c.DefaultQuery("direction", "next")

	params := &repository.AppointmentCursorFilterParams{
		Cursor: &pagination.CursorParams{
			Cursor:    cursor,
			Direction: pagination.CursorDirection(direction),
			Limit:     limit,
		},
		Search: c.Query("search"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.AppointmentStatus(statusStr)
		if status.IsValid() {
			params.Status = &status
		}
	}

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			params.CustomerID = &customerID
		}
	}

	if staffIDStr := c.Query("staff_id"); staffIDStr != "" {
		if staffID, err := uuid.Parse(staffIDStr); err == nil {
			params.StaffID = &staffID
		}
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	result, err := h.appointmentService.ListAppointmentsWithCursor(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Appointments retrieved successfully", result)
}

// Create handles booking an appointment
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		CustomerID    *uuid.UUID `json:"customer_id"`
		StaffID       *uuid.UUID `json:"staff_id"`
		ServiceID     *uuid.UUID `json:"service_id" binding:"required"`
		StartTime     *time.Time `json:"start_time" binding:"required"`
		PaymentMethod string     `json:"payment_method"`
		Notes         *string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(c.Request.Context(), &service.CreateAppointmentInput{
		UserID:        *userID,
		CustomerID:    req.CustomerID,
		StaffID:       req.StaffID,
		ServiceID:     req.ServiceID,
		StartTime:     req.StartTime,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Appointment booked successfully", appointment)
}

// Get handles getting a single appointment
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentService.GetAppointment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment retrieved successfully", appointment)
}

// UpdateStatus handles updating appointment status
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.appointmentService.UpdateAppointmentStatus(c.Request.Context(), id, enum.AppointmentStatus(req.Status)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment status updated successfully", nil)
}

// Cancel handles cancelling an appointment
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req struct {
		CancelledBy string `json:"cancelled_by"`
	}
	_ = c.ShouldBindJSON(&req)

	if err := h.appointmentService.CancelAppointment(c.Request.Context(), id, req.CancelledBy); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment cancelled successfully", nil)
}

// Reschedule handles moving an appointment to a new time slot
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req struct {
		StartTime time.Time `json:"start_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	appointment, err := h.appointmentService.RescheduleAppointment(c.Request.Context(), &service.RescheduleAppointmentInput{
		ID:        id,
		StartTime: req.StartTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment rescheduled successfully", appointment)
}

// GetUpcoming handles getting upcoming appointments
func (h *AppointmentHandler) GetUpcoming(c *gin.Context) {
	params := getPaginationParams(c)

	result, err := h.appointmentService.GetUpcomingAppointments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Upcoming appointments retrieved successfully", result)
}
