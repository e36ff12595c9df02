package repository

import (
	"context"

	"potager/entities"
)

type ScheduleRepository interface {
	// Upsert writes s keyed on (user_id, garden_entry_id) in one statement.
	Upsert(ctx context.Context, s *entities.WateringSchedule) error
	// Get returns nil, nil when the entry has no schedule.
	Get(ctx context.Context, userID, entryID string) (*entities.WateringSchedule, error)
	Delete(ctx context.Context, userID, entryID string) error
	ListAll(ctx context.Context) ([]entities.WateringSchedule, error)
}
