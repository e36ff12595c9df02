package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	WateringModeAuto   = "auto"
	WateringModeCustom = "custom"
)

// WateringSchedule is one-to-one with a GardenEntry; the composite unique
// index is what the upsert conflicts on.
type WateringSchedule struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        string    `gorm:"size:36;uniqueIndex:idx_watering_owner_entry" json:"user_id"`
	GardenEntryID string    `gorm:"size:36;uniqueIndex:idx_watering_owner_entry" json:"garden_entry_id"`
	Mode          string    `gorm:"size:16" json:"mode"`
	CustomDays    []int     `gorm:"serializer:json" json:"custom_days"`
	AutoFrequency *int      `json:"auto_frequency"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (w *WateringSchedule) BeforeCreate(*gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
