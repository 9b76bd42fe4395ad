package database

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/wangari/glowdesk-api/internal/config"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	applog "github.com/wangari/glowdesk-api/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	applog.Get().Info("connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	applog.Get().Info("running database migrations")

	err := db.AutoMigrate(
		// Accounts and access control
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},

		// Salon tenancy
		&entity.Salon{},
		&entity.SalonMembership{},
		&entity.Staff{},
		&entity.Service{},

		// Clients and bookings
		&entity.Customer{},
		&entity.Appointment{},
		&entity.Review{},

		// System
		&entity.IdempotencyKey{},
		&entity.UserSettings{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	applog.Get().Info("database migrations completed")
	return nil
}

// seedPermissions creates any missing permissions and returns the full set.
func seedPermissions(db *gorm.DB, names []string) []entity.Permission {
	log := applog.Get()
	for _, name := range names {
		var existing entity.Permission
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			perm := entity.Permission{Name: name, GuardName: "web"}
			if err := db.Create(&perm).Error; err != nil {
				log.Warn("failed to create permission", zap.String("permission", name), zap.Error(err))
			}
		}
	}

	var all []entity.Permission
	db.Find(&all)
	return all
}

// seedRole creates the role with the named permissions if it does not exist.
func seedRole(db *gorm.DB, name string, pool []entity.Permission, grant []string) {
	var existing entity.Role
	if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
		return
	}

	var perms []entity.Permission
	for _, p := range pool {
		for _, want := range grant {
			if p.Name == want {
				perms = append(perms, p)
				break
			}
		}
	}

	role := entity.Role{Name: name, GuardName: "web", Permissions: perms}
	if err := db.Create(&role).Error; err != nil {
		applog.Get().Warn("failed to create role", zap.String("role", name), zap.Error(err))
	}
}

// SeedDefaultData seeds roles, permissions and the optional bootstrap admin.
func SeedDefaultData(db *gorm.DB) error {
	log := applog.Get()
	log.Info("seeding default data")

	permissionNames := []string{
		"view-dashboard",
		"manage-staff",
		"manage-services",
		"manage-appointments",
		"manage-customers",
		"manage-reviews",
		"manage-users",
		"view-reports",
	}
	allPermissions := seedPermissions(db, permissionNames)

	all := permissionNames
	seedRole(db, "super-admin", allPermissions, all)
	seedRole(db, "admin", allPermissions, all)

	// Front-desk staff handle bookings and walk-ins only.
	seedRole(db, "staff", allPermissions, []string{
		"view-dashboard",
		"manage-appointments",
		"manage-customers",
	})

	// Salon owners registering through the API get everything except user admin.
	seedRole(db, "user", allPermissions, []string{
		"view-dashboard",
		"manage-staff",
		"manage-services",
		"manage-appointments",
		"manage-customers",
		"manage-reviews",
		"view-reports",
	})

	if err := seedBootstrapAdmin(db); err != nil {
		return err
	}

	log.Info("default data seeding completed")
	return nil
}

// seedBootstrapAdmin creates the super admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no account with that email exists.
func seedBootstrapAdmin(db *gorm.DB) error {
	log := applog.Get()

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var existing entity.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Info("super admin user already exists", zap.String("email", adminEmail))
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Warn("failed to hash admin password", zap.Error(err))
		return nil
	}

	var saRole entity.Role
	if err := db.Where("name = ?", "super-admin").First(&saRole).Error; err != nil {
		return nil
	}

	adminName := viper.GetString("ADMIN_NAME")
	if adminName == "" {
		adminName = "Super Admin"
	}
	firstName, lastName, _ := strings.Cut(adminName, " ")

	adminUser := entity.User{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     adminEmail,
		Password:  string(hashed),
		Roles:     []entity.Role{saRole},
	}
	if err := db.Create(&adminUser).Error; err != nil {
		log.Warn("failed to create super admin user", zap.Error(err))
		return nil
	}

	log.Info("super admin user created", zap.String("email", adminEmail))
	return nil
}
