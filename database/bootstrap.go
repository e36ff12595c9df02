// database/bootstrap.go
package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"potager/config"
	"potager/entities"
)

// Open connects to the configured store and brings the schema up to date.
// The caller owns the handle and must Close it on shutdown.
func Open(cfg config.AppConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("open postgres: DB_DSN not set")
		}
		dialector = postgres.Open(cfg.DBDSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn), TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}
	if err := Migrate(db); err != nil {
		_ = Close(db)
		return nil, err
	}
	return db, nil
}

// Migrate runs the pre-migrations then AutoMigrate for every entity.
func Migrate(db *gorm.DB) error {
	// must run BEFORE AutoMigrate: the unique index cannot be created over duplicates
	if err := collapseDuplicateSchedules(db); err != nil {
		return fmt.Errorf("migrate watering_schedules: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Plant{},
		&entities.GardenEntry{},
		&entities.WateringEvent{},
		&entities.WateringSchedule{},
		&entities.AIAnalysis{},
		&entities.CommunityPost{},
		&entities.PostLike{},
		&entities.CommunityComment{},
		&entities.TipDocument{},
		&entities.TipChunk{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// collapseDuplicateSchedules keeps only the most recent schedule per
// (user_id, garden_entry_id). Databases written by the old delete-then-insert
// scheme can hold several rows for one garden entry.
func collapseDuplicateSchedules(db *gorm.DB) error {
	m := db.Migrator()
	if !m.HasTable(&entities.WateringSchedule{}) {
		// fresh DB, nothing to do
		return nil
	}
	if m.HasIndex(&entities.WateringSchedule{}, "idx_watering_owner_entry") {
		// already good
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Exec(`
DELETE FROM watering_schedules
WHERE id NOT IN (
    SELECT id FROM (
        SELECT id, ROW_NUMBER() OVER (
            PARTITION BY user_id, garden_entry_id
            ORDER BY updated_at DESC, created_at DESC, id DESC
        ) AS rn
        FROM watering_schedules
    ) ranked
    WHERE rn = 1
)`).Error
	})
}
