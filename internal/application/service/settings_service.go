package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
)

// SettingsService handles settings-related business logic
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// defaultSettings returns the settings a fresh account starts with.
func defaultSettings(userID uuid.UUID) *entity.UserSettings {
	return &entity.UserSettings{
		UserID:             userID,
		Language:           "en",
		Timezone:           "Africa/Nairobi",
		Currency:           "KES",
		DateFormat:         "DD/MM/YYYY",
		EmailNotifications: true,
		PushNotifications:  true,
		BookingAlerts:      true,
		ReviewAlerts:       true,
		Theme:              "light",
		ShowAnimations:     true,
		SessionTimeout:     "30",
		LoginAlerts:        true,
	}
}

// GetSettings returns the user's settings, materializing defaults on first read.
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = defaultSettings(userID)
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings
type UpdateSettingsInput struct {
	UserID             uuid.UUID
	Language           string
	Timezone           string
	Currency           string
	DateFormat         string
	EmailNotifications bool
	PushNotifications  bool
	BookingAlerts      bool
	ReviewAlerts       bool
	MarketingEmails    bool
	Theme              string
	CompactMode        bool
	ShowAnimations     bool
	TwoFactorAuth      bool
	SessionTimeout     string
	LoginAlerts        bool
}

// UpdateSettings replaces the user's settings with the submitted values.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.UserSettings{UserID: input.UserID}
	}

	settings.Language = input.Language
	settings.Timezone = input.Timezone
	settings.Currency = input.Currency
	settings.DateFormat = input.DateFormat
	settings.EmailNotifications = input.EmailNotifications
	settings.PushNotifications = input.PushNotifications
	settings.BookingAlerts = input.BookingAlerts
	settings.ReviewAlerts = input.ReviewAlerts
	settings.MarketingEmails = input.MarketingEmails
	settings.Theme = input.Theme
	settings.CompactMode = input.CompactMode
	settings.ShowAnimations = input.ShowAnimations
	settings.TwoFactorAuth = input.TwoFactorAuth
	settings.SessionTimeout = input.SessionTimeout
	settings.LoginAlerts = input.LoginAlerts

	if settings.ID == uuid.Nil {
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	} else {
		if err := s.settingsRepo.Update(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}
