package database

import (
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"potager/config"
	"potager/entities"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestMigrateCollapsesLegacyDuplicateSchedules(t *testing.T) {
	db := openMemory(t)

	// legacy layout: no unique index on (user_id, garden_entry_id)
	require.NoError(t, db.Exec(`
CREATE TABLE watering_schedules (
    id TEXT PRIMARY KEY,
    user_id TEXT,
    garden_entry_id TEXT,
    mode TEXT,
    custom_days TEXT,
    auto_frequency INTEGER,
    created_at DATETIME,
    updated_at DATETIME
)`).Error)

	old := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	recent := old.Add(time.Hour)
	rows := []struct {
		id, user, entry, mode string
		at                    time.Time
	}{
		{"a", "u1", "g1", "auto", old},
		{"b", "u1", "g1", "custom", recent},
		{"c", "u1", "g2", "auto", old},
	}
	for _, r := range rows {
		require.NoError(t, db.Exec(
			`INSERT INTO watering_schedules (id, user_id, garden_entry_id, mode, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
			r.id, r.user, r.entry, r.mode, r.at, r.at).Error)
	}

	require.NoError(t, Migrate(db))

	var got []entities.WateringSchedule
	require.NoError(t, db.Order("id").Find(&got).Error)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "custom", got[0].Mode)
	assert.Equal(t, "c", got[1].ID)
	assert.True(t, db.Migrator().HasIndex(&entities.WateringSchedule{}, "idx_watering_owner_entry"))
}

func TestMigrateFreshDatabase(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, Migrate(db))
	// second run is a no-op
	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&entities.GardenEntry{}))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(config.AppConfig{DBDriver: "mongo"})
	assert.Error(t, err)

	_, err = Open(config.AppConfig{DBDriver: "postgres"})
	assert.ErrorContains(t, err, "DB_DSN")
}
