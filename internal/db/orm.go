package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"airline-ops/seatcrew/internal/logging"
)

// InitPostgresORM opens the gorm handle used for all writes.
// TranslateError turns unique violations into gorm.ErrDuplicatedKey.
func InitPostgresORM(dsn string, production bool) (*gorm.DB, error) {
	level := logger.Warn
	if production {
		level = logger.Error
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	logging.Info("Connected to Postgres via GORM")
	return db, nil
}
