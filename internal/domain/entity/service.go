package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service represents a bookable service in a salon's catalog
type Service struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SalonID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"salon_id"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Code            string         `gorm:"size:100;unique" json:"code"`
	Category        string         `gorm:"size:100" json:"category"`
	Description     *string        `gorm:"type:text" json:"description,omitempty"`
	Price           int64          `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	DurationMinutes int            `gorm:"not null;default:30" json:"duration_minutes"`
	Active          bool           `gorm:"default:true" json:"active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Salon Salon `gorm:"foreignKey:SalonID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Service) MarshalJSON() ([]byte, error) {
	type Alias Service
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(s),
		Price: float64(s.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new service
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "services"
}

// GetPriceDecimal returns the price as a decimal
func (s *Service) GetPriceDecimal() float64 {
	return float64(s.Price) / 100
}

// SetPriceFromDecimal sets the price from a decimal value
func (s *Service) SetPriceFromDecimal(price float64) {
	s.Price = int64(price * 100)
}
