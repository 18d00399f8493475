package database

import (
	"log"

	"roombook/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate applies the schema. AutoMigrate covers tables and the FK; the
// exclusion constraint and its supporting index are raw DDL, since gorm
// has no EXCLUDE support. btree_gist is required for `room_id WITH =`
// inside a GIST constraint.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	if err := db.AutoMigrate(&models.Room{}, &models.Booking{}); err != nil {
		return err
	}

	// No two bookings for the same room may hold intersecting closed
	// [start_at, end_at] ranges; boundary-touching intervals conflict.
	if err := db.Exec(`
		DO $$
		BEGIN
			ALTER TABLE bookings
				ADD CONSTRAINT bookings_no_overlap
				EXCLUDE USING GIST (
					room_id WITH =,
					tstzrange(start_at, end_at, '[]') WITH &&
				);
		EXCEPTION
			WHEN duplicate_object THEN NULL;
			WHEN duplicate_table THEN NULL;
		END $$
	`).Error; err != nil {
		return err
	}

	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_room_period
		ON bookings
		USING GIST (room_id, tstzrange(start_at, end_at, '[]'))
	`).Error
}
