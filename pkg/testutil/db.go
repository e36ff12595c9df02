// Package testutil holds helpers shared by package tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"potager/database"
	"potager/entities"
)

var dbSeq atomic.Int64

// NewDB returns a migrated in-memory sqlite database private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent), TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// SeedUser inserts an active user.
func SeedUser(t *testing.T, db *gorm.DB, email string, premium bool) *entities.User {
	t.Helper()
	u := &entities.User{Email: email, Name: strings.Split(email, "@")[0], IsPremium: premium, IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

// SeedPlant inserts a catalog entry.
func SeedPlant(t *testing.T, db *gorm.DB, id, name, monthlyWatering string) *entities.Plant {
	t.Helper()
	p := &entities.Plant{ID: id, NameFR: name, Category: "potager", MonthlyWatering: monthlyWatering}
	require.NoError(t, db.Create(p).Error)
	return p
}

// SeedGardenEntry inserts a garden entry for user referencing plant.
func SeedGardenEntry(t *testing.T, db *gorm.DB, user *entities.User, plant *entities.Plant) *entities.GardenEntry {
	t.Helper()
	g := &entities.GardenEntry{UserID: user.ID, PlantID: plant.ID, PlantName: plant.NameFR, HealthStatus: "bonne"}
	require.NoError(t, db.Create(g).Error)
	return g
}
