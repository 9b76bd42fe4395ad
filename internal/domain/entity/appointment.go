package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Appointment represents a booked visit
type Appointment struct {
	ID            uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	SalonID       uuid.UUID              `gorm:"type:uuid;not null;index" json:"salon_id"`
	UserID        uuid.UUID              `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID    *uuid.UUID             `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	StaffID       *uuid.UUID             `gorm:"type:uuid;index" json:"staff_id,omitempty"`
	ServiceID     *uuid.UUID             `gorm:"type:uuid;index" json:"service_id,omitempty"`
	Status        enum.AppointmentStatus `gorm:"size:20;default:'pending';index" json:"status"`
	StartTime     *time.Time             `gorm:"index" json:"start_time,omitempty"`
	EndTime       *time.Time             `json:"end_time,omitempty"`
	TotalAmount   int64                  `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	PaymentMethod string                 `gorm:"size:50" json:"payment_method"`
	CancelledBy   *string                `gorm:"size:20" json:"cancelled_by,omitempty"` // "staff" or "customer"
	BookingNo     string                 `gorm:"size:100;unique;not null" json:"booking_no"`
	Notes         *string                `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	DeletedAt     gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Salon    Salon     `gorm:"foreignKey:SalonID" json:"-"`
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Staff    *Staff    `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	Service  *Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (a Appointment) MarshalJSON() ([]byte, error) {
	type Alias Appointment
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"total_amount"`
	}{
		Alias:       Alias(a),
		TotalAmount: float64(a.TotalAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new appointment
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// GetTotalDecimal returns the total amount as a decimal
func (a *Appointment) GetTotalDecimal() float64 {
	return float64(a.TotalAmount) / 100
}
