package database

import (
	"fmt"
	"github.com/coopgretz/HomeStorage/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"log"
	"os"
	"time"
)

func SetupDatabase() (*gorm.DB, error) {
	if os.Getenv("DB_DRIVER") == "sqlite" {
		name := os.Getenv("DB_NAME")
		if name == "" {
			name = "homestorage.db"
		}
		return OpenSQLite(name)
	}
	var envVariables = [...]string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_TZ"}
	for _, envVariable := range envVariables {
		if os.Getenv(envVariable) != "" {
			continue
		}
		switch envVariable {
		case "DB_SSLMODE":
			if err := os.Setenv("DB_SSLMODE", "disable"); err != nil {
				return nil, err
			}
		case "DB_TZ":
			if err := os.Setenv("DB_TZ", "UTC"); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%s environment variable not set", envVariable)
		}
	}
	dsn := os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}")

	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}
	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenSQLite opens a sqlite database with foreign keys enforced. Used for
// local development and tests.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn+"?_foreign_keys=on"), gormConfig())
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// every new connection to :memory: is a new, empty database
	sqlDB.SetMaxOpenConns(1)
	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the schema. Boxes and categories come before items so the
// item foreign keys have something to point at.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Box{}, &models.Category{}, &models.Item{})
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
