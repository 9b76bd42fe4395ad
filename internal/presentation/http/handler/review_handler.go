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
)

// ReviewHandler handles review HTTP requests
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// List handles listing reviews with filters
func (h *ReviewHandler) List(c *gin.Context) {
	params := &repository.ReviewFilterParams{
		Pagination: getPaginationParams(c),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.ReviewStatus(statusStr)
		if status.IsValid() {
			params.Status = &status
		}
	}

	if staffIDStr := c.Query("staff_id"); staffIDStr != "" {
		if staffID, err := uuid.Parse(staffIDStr); err == nil {
			params.StaffID = &staffID
		}
	}

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			params.CustomerID = &customerID
		}
	}

	if minRatingStr := c.Query("min_rating"); minRatingStr != "" {
		if minRating, err := strconv.Atoi(minRatingStr); err == nil {
			params.MinRating = &minRating
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

	result, err := h.reviewService.ListReviews(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Reviews retrieved successfully", result)
}

// Create handles submitting a review
func (h *ReviewHandler) Create(c *gin.Context) {
	var req struct {
		AppointmentID     *uuid.UUID `json:"appointment_id"`
		CustomerID        *uuid.UUID `json:"customer_id"`
		StaffID           *uuid.UUID `json:"staff_id"`
		Rating            int        `json:"rating" binding:"required"`
		ServiceRating     *int       `json:"service_rating"`
		CleanlinessRating *int       `json:"cleanliness_rating"`
		ValueRating       *int       `json:"value_rating"`
		Comment           *string    `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), &service.CreateReviewInput{
		AppointmentID:     req.AppointmentID,
		CustomerID:        req.CustomerID,
		StaffID:           req.StaffID,
		Rating:            req.Rating,
		ServiceRating:     req.ServiceRating,
		CleanlinessRating: req.CleanlinessRating,
		ValueRating:       req.ValueRating,
		Comment:           req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Review submitted successfully", review)
}

// Get handles getting a single review
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Review retrieved successfully", review)
}

// Moderate handles updating a review's moderation status
func (h *ReviewHandler) Moderate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	review, err := h.reviewService.ModerateReview(c.Request.Context(), id, enum.ReviewStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Review status updated successfully", review)
}

// Delete handles removing a review
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
