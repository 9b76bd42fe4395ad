package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// SalonIDKey is the context key for salon ID
	SalonIDKey ctxKey = "salon_id"
	// SkipSalonScopeKey is the context key for skipping salon scope (super admin)
	SkipSalonScopeKey ctxKey = "skip_salon_scope"
)

// SalonScope returns a GORM scope that filters by salon
// This should be applied to all queries for salon-scoped entities
// If SkipSalonScopeKey is true in context (super admin), returns all records
func SalonScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		// Check if salon scope should be skipped (super admin)
		if skipScope, ok := ctx.Value(SkipSalonScopeKey).(bool); ok && skipScope {
			return db // Return unfiltered query for super admins
		}

		salonID, ok := ctx.Value(SalonIDKey).(uuid.UUID)
		if !ok {
			// Fail-safe: return no results if salon context missing
			// This prevents accidental cross-salon data access
			return db.Where("1 = 0")
		}
		return db.Where("salon_id = ?", salonID)
	}
}

// WithSkipSalonScope adds skip salon scope flag to context (for super admins)
func WithSkipSalonScope(ctx context.Context, skip bool) context.Context {
	return context.WithValue(ctx, SkipSalonScopeKey, skip)
}

// WithSalon adds salon ID to context
func WithSalon(ctx context.Context, salonID uuid.UUID) context.Context {
	return context.WithValue(ctx, SalonIDKey, salonID)
}

// GetSalonID extracts salon ID from context
func GetSalonID(ctx context.Context) (uuid.UUID, bool) {
	salonID, ok := ctx.Value(SalonIDKey).(uuid.UUID)
	return salonID, ok
}
