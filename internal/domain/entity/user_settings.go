package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSettings are per-account preferences. One row per account, created
// lazily on first read. Booking and review alerts control the notifications
// a salon owner or staff member receives about their own salon's activity.
type UserSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Locale
	Language   string `gorm:"size:10;default:'en'" json:"language"`
	Timezone   string `gorm:"size:50;default:'Africa/Nairobi'" json:"timezone"`
	Currency   string `gorm:"size:10;default:'KES'" json:"currency"`
	DateFormat string `gorm:"size:20;default:'DD/MM/YYYY'" json:"date_format"`

	// Notifications
	EmailNotifications bool `gorm:"default:true" json:"email_notifications"`
	PushNotifications  bool `gorm:"default:true" json:"push_notifications"`
	BookingAlerts      bool `gorm:"default:true" json:"booking_alerts"`
	ReviewAlerts       bool `gorm:"default:true" json:"review_alerts"`
	MarketingEmails    bool `gorm:"default:false" json:"marketing_emails"`

	// Appearance
	Theme          string `gorm:"size:20;default:'light'" json:"theme"`
	CompactMode    bool   `gorm:"default:false" json:"compact_mode"`
	ShowAnimations bool   `gorm:"default:true" json:"show_animations"`

	// Security
	TwoFactorAuth  bool   `gorm:"default:false" json:"two_factor_auth"`
	SessionTimeout string `gorm:"size:10;default:'30'" json:"session_timeout"`
	LoginAlerts    bool   `gorm:"default:true" json:"login_alerts"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (UserSettings) TableName() string {
	return "user_settings"
}
