package db

import (
	"log"
	"time"

	"github.com/barberia-app/booking-api/internal/config"
	"github.com/barberia-app/booking-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.BarberAvailability{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// At most one active appointment per (barber, date, time). Cancelled
	// rows are kept for history and must not block rebooking the slot.
	// Without this index double bookings go undetected, so a failure here
	// (e.g. duplicate rows after a restore) is fatal.
	if err := db.Exec(activeSlotIndexSQL).Error; err != nil {
		log.Fatalf("failed to create active slot index: %v", err)
	}

	return db
}

const activeSlotIndexSQL = `
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
        ON appointments (barber_id, date, "time")
        WHERE status <> 'cancelled'
    `
