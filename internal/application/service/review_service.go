package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	infraRepo "github.com/wangari/glowdesk-api/internal/infrastructure/repository"
	"github.com/wangari/glowdesk-api/pkg/apperror"
	"github.com/wangari/glowdesk-api/pkg/pagination"
)

// ReviewService handles review submission and moderation
type ReviewService struct {
	reviewRepo      repository.ReviewRepository
	appointmentRepo repository.AppointmentRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviewRepo repository.ReviewRepository, appointmentRepo repository.AppointmentRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:      reviewRepo,
		appointmentRepo: appointmentRepo,
	}
}

// CreateReviewInput represents the create review input
type CreateReviewInput struct {
	AppointmentID     *uuid.UUID
	CustomerID        *uuid.UUID
	StaffID           *uuid.UUID
	Rating            int
	ServiceRating     *int
	CleanlinessRating *int
	ValueRating       *int
	Comment           *string
}

func validRating(r int) bool {
	return r >= 1 && r <= 5
}

// CreateReview submits a review, pending moderation
func (s *ReviewService) CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error) {
	// Extract salon ID from context
	salonID, ok := infraRepo.GetSalonID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Salon context required")
	}

	if !validRating(input.Rating) {
		return nil, apperror.NewBadRequestError("Rating must be between 1 and 5")
	}
	for _, sub := range []*int{input.ServiceRating, input.CleanlinessRating, input.ValueRating} {
		if sub != nil && !validRating(*sub) {
			return nil, apperror.NewBadRequestError("Ratings must be between 1 and 5")
		}
	}

	review := &entity.Review{
		SalonID:           salonID,
		AppointmentID:     input.AppointmentID,
		CustomerID:        input.CustomerID,
		StaffID:           input.StaffID,
		Rating:            input.Rating,
		ServiceRating:     input.ServiceRating,
		CleanlinessRating: input.CleanlinessRating,
		ValueRating:       input.ValueRating,
		Comment:           input.Comment,
		Status:            enum.ReviewStatusPending,
	}

	// Reviews tied to an appointment inherit its customer and staff,
	// and require the appointment to be completed
	if input.AppointmentID != nil {
		appointment, err := s.appointmentRepo.GetByID(ctx, *input.AppointmentID)
		if err != nil {
			return nil, err
		}
		if appointment == nil {
			return nil, apperror.NewNotFoundError("Appointment")
		}
		if appointment.Status != enum.AppointmentStatusCompleted {
			return nil, apperror.NewBadRequestError("Only completed appointments can be reviewed")
		}

		existing, err := s.reviewRepo.GetByAppointmentID(ctx, *input.AppointmentID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("This appointment has already been reviewed")
		}

		if review.CustomerID == nil {
			review.CustomerID = appointment.CustomerID
		}
		if review.StaffID == nil {
			review.StaffID = appointment.StaffID
		}
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// GetReview retrieves a review by ID
func (s *ReviewService) GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperror.NewNotFoundError("Review")
	}
	return review, nil
}

// ListReviews lists reviews with filtering
func (s *ReviewService) ListReviews(ctx context.Context, params *repository.ReviewFilterParams) (*pagination.PaginatedResult[entity.Review], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	reviews, total, err := s.reviewRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(reviews, pag), nil
}

// ModerateReview transitions a review's moderation status
func (s *ReviewService) ModerateReview(ctx context.Context, id uuid.UUID, status enum.ReviewStatus) (*entity.Review, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid review status: " + string(status))
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperror.NewNotFoundError("Review")
	}

	if err := s.reviewRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	review.Status = status
	return review, nil
}

// DeleteReview removes a review
func (s *ReviewService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if review == nil {
		return apperror.NewNotFoundError("Review")
	}

	return s.reviewRepo.Delete(ctx, id)
}
