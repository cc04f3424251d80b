package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ncongwana-808/autorepair-erp/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// for the workshop schema. TranslateError turns driver-level unique and
// foreign-key violations into gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated
// so the service layer can map them to domain outcomes instead of parsing
// SQLSTATE strings.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates all tables. Also used by integration
// setups that open their own connection.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Vehicle{},
		&model.Job{},
		&model.JobNote{},
		&model.Invoice{},
	)
}
