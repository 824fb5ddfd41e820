package config

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alfredoptarigan/resumeiq/internal/models"
)

const (
	historyMaxOpenConns    = 10
	historyMaxIdleConns    = 2
	historyConnMaxLifetime = 30 * time.Minute
)

// InitDatabase opens the analysis history store, checks it is reachable and
// migrates the analyses table. Only called when HISTORY_ENABLED is set.
func InitDatabase(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(historyLogLevel(cfg.Server.Env)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access history connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(historyMaxOpenConns)
	sqlDB.SetMaxIdleConns(historyMaxIdleConns)
	sqlDB.SetConnMaxLifetime(historyConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("history database unreachable at %s:%s: %w", cfg.Database.Host, cfg.Database.Port, err)
	}
	log.Printf("✅ History database connected (%s)", cfg.Database.DBName)

	if err := db.AutoMigrate(&models.Analysis{}); err != nil {
		return nil, fmt.Errorf("failed to migrate analyses table: %w", err)
	}

	return db, nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("⚠️  Could not access history connection pool: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("⚠️  Failed to close history database: %v", err)
	}
}

func historyLogLevel(env string) logger.LogLevel {
	if env == "development" {
		return logger.Info
	}
	return logger.Silent
}
