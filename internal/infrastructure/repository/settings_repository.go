package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetByUserID returns the user's settings row, nil before first
// materialization.
func (r *settingsRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	return firstOrNil[entity.UserSettings](
		r.db.WithContext(ctx).Where("user_id = ?", userID),
	)
}

func (r *settingsRepository) Create(ctx context.Context, settings *entity.UserSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *settingsRepository) Update(ctx context.Context, settings *entity.UserSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
