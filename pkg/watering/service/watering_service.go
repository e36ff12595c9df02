package service

import (
	"context"

	"potager/entities"
)

type CreateInput struct {
	GardenEntryID string `json:"garden_entry_id"`
	Mode          string `json:"mode"`
	CustomDays    []int  `json:"custom_days"`
}

// SchedulePatch merges into an existing schedule; nil fields are kept.
type SchedulePatch struct {
	Mode       *string `json:"mode"`
	CustomDays *[]int  `json:"custom_days"`
}

type WateringService interface {
	Create(ctx context.Context, user *entities.User, in CreateInput) (*entities.WateringSchedule, error)
	Update(ctx context.Context, user *entities.User, gardenEntryID string, p SchedulePatch) (*entities.WateringSchedule, error)
	// Get returns nil, nil when the entry has no schedule.
	Get(ctx context.Context, user *entities.User, gardenEntryID string) (*entities.WateringSchedule, error)
	Delete(ctx context.Context, user *entities.User, gardenEntryID string) error
}
