package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultStaffAvailableMinutes is an 8 hour working day
const DefaultStaffAvailableMinutes = 480

// Staff represents a staff member (stylist, therapist, technician) at a salon
type Staff struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SalonID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"salon_id"`
	UserID    *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Title     string         `gorm:"size:100" json:"title"`
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Photo     *string        `gorm:"size:255" json:"photo,omitempty"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Daily available minutes, the denominator for utilization
	AvailableMinutes int `gorm:"default:480" json:"available_minutes"`

	// Relationships
	Salon        Salon         `gorm:"foreignKey:SalonID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:StaffID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new staff member
func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Staff model
func (Staff) TableName() string {
	return "staff"
}
