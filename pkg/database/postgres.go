package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"venue-booking/internal/models"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Venue{}, &models.Package{}, &models.Booking{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial index covering the conflict probe: only pending/confirmed
	// bookings occupy the venue calendar
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_booking_active_calendar
		ON bookings (venue_id, event_date, start_time, end_time)
		WHERE status IN ('pending', 'confirmed')
	`)

	return db
}
