package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/anjiri1684/tutor_market_seeder/models"
)

// Connect opens the shared Postgres connection for the whole workflow.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := Open(postgres.Open(dsn))
	if err != nil {
		return nil, &StoreError{Op: "connect", Err: err}
	}
	return db, nil
}

// Open builds a *gorm.DB from any dialector. Error translation is enabled
// so constraint failures surface as gorm sentinel errors regardless of the
// underlying driver.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// Migrate creates or updates every table, parents before children so the
// generated foreign-key constraints always have a target.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.City{},
		&models.Subject{},
		&models.TeachingLevel{},
		&models.User{},
		&models.Student{},
		&models.Tutor{},
		&models.TutorSubject{},
		&models.Schedule{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
	)
	if err != nil {
		return &StoreError{Op: "migrate", Err: err}
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return &StoreError{Op: "close", Err: err}
	}
	if err := sqlDB.Close(); err != nil {
		return &StoreError{Op: "close", Err: err}
	}
	return nil
}
