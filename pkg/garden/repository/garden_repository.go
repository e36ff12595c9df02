package repository

import (
	"context"
	"time"

	"potager/entities"
)

// GardenRepository scopes every per-entry call to its owner; an entry owned
// by someone else is reported as not found.
type GardenRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entities.GardenEntry, error)
	Create(ctx context.Context, g *entities.GardenEntry) error
	FindOwned(ctx context.Context, id, userID string) (*entities.GardenEntry, error)
	Save(ctx context.Context, g *entities.GardenEntry) error
	// Delete removes the entry with its schedule and watering log.
	Delete(ctx context.Context, id, userID string) error
	SetNextWatering(ctx context.Context, id string, next *time.Time) error

	// RecordWatering appends ev and moves last_watered/next_watering in one transaction.
	RecordWatering(ctx context.Context, ev *entities.WateringEvent, next *time.Time) error
	ListWaterings(ctx context.Context, entryID, userID string) ([]entities.WateringEvent, error)

	// DedupeByPlant keeps one entry per (user, plant, custom name), preferring
	// the oldest one that has a watering schedule, moves the others' watering
	// history onto it and returns how many rows were removed.
	DedupeByPlant(ctx context.Context) (int, error)
}
