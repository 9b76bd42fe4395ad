package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Review represents customer feedback on a completed appointment
type Review struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	SalonID           uuid.UUID         `gorm:"type:uuid;not null;index" json:"salon_id"`
	CustomerID        *uuid.UUID        `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	StaffID           *uuid.UUID        `gorm:"type:uuid;index" json:"staff_id,omitempty"`
	AppointmentID     *uuid.UUID        `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	Rating            int               `gorm:"not null" json:"rating"`
	ServiceRating     *int              `json:"service_rating,omitempty"`
	CleanlinessRating *int              `json:"cleanliness_rating,omitempty"`
	ValueRating       *int              `json:"value_rating,omitempty"`
	Comment           *string           `gorm:"type:text" json:"comment,omitempty"`
	Status            enum.ReviewStatus `gorm:"size:20;default:'pending';index" json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	DeletedAt         gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Salon       Salon        `gorm:"foreignKey:SalonID" json:"-"`
	Customer    *Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Staff       *Staff       `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new review
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}

// IsVisible reports whether the review should appear in public listings
func (r *Review) IsVisible() bool {
	return r.Status == enum.ReviewStatusApproved
}
