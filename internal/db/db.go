package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db, cfg.DefaultTimezone); err != nil {
		return nil, err
	}

	log.Info("database ready")
	return db, nil
}

// constraints are applied after AutoMigrate. Each statement is idempotent.
var constraints = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,

	// Backstop for the booking lock: two scheduled appointments of one
	// doctor on one day can never overlap.
	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
		) THEN
			ALTER TABLE appointments
				ADD CONSTRAINT appointments_no_overlap
				EXCLUDE USING gist (
					doctor_id WITH =,
					date WITH =,
					int4range(starts_at, ends_at) WITH &&
				) WHERE (status = 'scheduled');
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'appointments_slot_in_day'
		) THEN
			ALTER TABLE appointments
				ADD CONSTRAINT appointments_slot_in_day
				CHECK (starts_at >= 0 AND starts_at < ends_at AND ends_at <= 1440);
		END IF;
	END $$`,

	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'doctor_shifts_in_day'
		) THEN
			ALTER TABLE doctor_shifts
				ADD CONSTRAINT doctor_shifts_in_day
				CHECK (starts_at >= 0 AND starts_at < ends_at AND ends_at <= 1440);
		END IF;
	END $$`,
}

func Migrate(db *gorm.DB, defaultTimezone string) error {
	if err := db.AutoMigrate(
		&models.Clinic{},
		&models.User{},
		&models.ClinicService{},
		&models.ServiceDoctor{},
		&models.DoctorShift{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for _, stmt := range constraints {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply constraint: %w", err)
		}
	}

	if err := db.Exec(`
        UPDATE clinics
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, defaultTimezone).Error; err != nil {
		return fmt.Errorf("backfill clinic timezone: %w", err)
	}

	return nil
}
