package db

import (
	"time"

	"shop_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
	"gorm.io/gorm/logger"
)

// Models lists every table owned by the service, in dependency order
func Models() []any {
	return []any{
		&domain.User{},
		&domain.Wallet{},
		&domain.Transaction{},
		&domain.Product{},
		&domain.CartLine{},
		&domain.Order{},
	}
}

// Open connects to MySQL with timestamps pinned to UTC
func Open(dsn string, isProd bool) (*gorm.DB, error) {
	level := logger.Info // Log SQL in development
	if isProd {
		level = logger.Warn
	}
	return gorm.Open(mysql.Open(dsn), Config(level))
}

// Config is the gorm configuration shared by every dialect the service runs on
func Config(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:  logger.Default.LogMode(level),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}
}

// Migrate performs automatic migration for the database schema
func Migrate(gdb *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := gdb.AutoMigrate(Models()...); err != nil {
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
