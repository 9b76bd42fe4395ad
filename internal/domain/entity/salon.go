package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Salon represents a salon/spa location in the multitenant system
type Salon struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Settings  SalonSettings  `gorm:"type:jsonb;serializer:json" json:"settings"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Owner   User              `gorm:"foreignKey:OwnerID" json:"-"`
	Members []SalonMembership `gorm:"foreignKey:SalonID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new salon
func (s *Salon) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Salon model
func (Salon) TableName() string {
	return "salons"
}

// DailyCapacityMinutes returns the salon's bookable minutes per day:
// chairs times open minutes. Zero when hours are not configured.
func (s *Salon) DailyCapacityMinutes() float64 {
	open := s.Settings.ClosingHour - s.Settings.OpeningHour
	if open <= 0 || s.Settings.Chairs <= 0 {
		return 0
	}
	return float64(s.Settings.Chairs) * float64(open) * 60
}

// MemberUser represents a subset of user fields for membership responses
type MemberUser struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// SalonMembership represents a user's membership in a salon
type SalonMembership struct {
	SalonID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"salon_id"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role      string    `gorm:"size:50;default:'member'" json:"role"` // owner, admin, member
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Salon Salon `gorm:"foreignKey:SalonID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`

	// Computed field for JSON response
	MemberUser *MemberUser `gorm:"-" json:"user,omitempty"`
}

// PopulateUserDetails populates the MemberUser field from the User relationship
func (sm *SalonMembership) PopulateUserDetails() {
	if sm.User.ID != uuid.Nil {
		sm.MemberUser = &MemberUser{
			ID:        sm.User.ID,
			FirstName: sm.User.FirstName,
			LastName:  sm.User.LastName,
			Email:     sm.User.Email,
		}
	}
}

// TableName returns the table name for the SalonMembership model
func (SalonMembership) TableName() string {
	return "salon_memberships"
}

// SalonSettings holds all customizable salon configurations
type SalonSettings struct {
	// Branding & Appearance
	LogoURL      string `json:"logo_url,omitempty"`
	PrimaryColor string `json:"primary_color,omitempty"`

	// Localization
	Currency   string `json:"currency,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
	Locale     string `json:"locale,omitempty"`
	DateFormat string `json:"date_format,omitempty"`

	// Capacity configuration: chairs (stations) and daily opening hours,
	// the denominator for occupancy metrics
	Chairs      int `json:"chairs,omitempty"`
	OpeningHour int `json:"opening_hour,omitempty"`
	ClosingHour int `json:"closing_hour,omitempty"`

	// Booking configuration
	SlotMinutes        int  `json:"slot_minutes,omitempty"`
	AllowOnlineBooking bool `json:"allow_online_booking,omitempty"`

	// Notification Settings
	EmailNotifications bool   `json:"email_notifications,omitempty"`
	SMSNotifications   bool   `json:"sms_notifications,omitempty"`
	WebhookURL         string `json:"webhook_url,omitempty"`

	// Feature Flags
	Features SalonFeatures `json:"features,omitempty"`
}

// Scan implements the sql.Scanner interface for SalonSettings
func (ss *SalonSettings) Scan(value interface{}) error {
	if value == nil {
		*ss = SalonSettings{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan SalonSettings: unsupported type")
	}

	return json.Unmarshal(bytes, ss)
}

// Value implements the driver.Valuer interface for SalonSettings
func (ss SalonSettings) Value() (driver.Value, error) {
	return json.Marshal(ss)
}

// SalonFeatures holds feature flags for a salon
type SalonFeatures struct {
	EnableReviews   bool `json:"reviews"`
	EnableAnalytics bool `json:"analytics"`
	EnableMultiUser bool `json:"multi_user"`
	EnableAPIAccess bool `json:"api_access"`
}

// DefaultSalonSettings returns default settings for new salons
func DefaultSalonSettings() SalonSettings {
	return SalonSettings{
		Currency:           "KES",
		Timezone:           "Africa/Nairobi",
		Locale:             "en-KE",
		DateFormat:         "DD/MM/YYYY",
		Chairs:             4,
		OpeningHour:        8,
		ClosingHour:        18,
		SlotMinutes:        30,
		AllowOnlineBooking: true,
		EmailNotifications: true,
		Features: SalonFeatures{
			EnableReviews:   true,
			EnableAnalytics: true,
			EnableMultiUser: true,
			EnableAPIAccess: false,
		},
	}
}
