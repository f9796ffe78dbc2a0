package storage

import (
	"fmt"
	"time"

	"studio-backoffice/internal/config"
	"studio-backoffice/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store wraps the database behind typed per-entity methods. The backend is
// chosen exactly once, here, from configuration; callers never branch on it.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

func Open(cfg *config.Config, log *zap.Logger) (*Store, error) {
	dialector, err := dialectorFor(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		if err == nil {
			break
		}
		log.Warn("db connect failed",
			zap.Int("attempt", i),
			zap.Int("max_attempts", maxAttempts),
			zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect after %d attempts: %w", maxAttempts, err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Lead{},
		&models.Task{},
		&models.Project{},
		&models.Recommendation{},
		&models.Invoice{},
		&models.PortfolioItem{},
		&models.BlogPost{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s := &Store{db: db, log: log}
	s.seedDefaultAdmin(cfg)
	return s, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// seedDefaultAdmin makes sure at least one admin account exists. Admins are
// created only from configuration, never through the API.
func (s *Store) seedDefaultAdmin(cfg *config.Config) {
	email := cfg.AdminEmail
	if email == "" {
		email = "admin@studio.local"
	}
	password := cfg.AdminPassword
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		s.log.Warn("admin check failed", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Warn("admin password hash failed", zap.Error(err))
		return
	}

	admin := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         models.RoleAdmin,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		s.log.Warn("default admin create failed", zap.Error(err))
		return
	}

	s.log.Info("created default admin user", zap.String("email", email))
}
