package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GardenEntry struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	UserID       string     `gorm:"index;size:36" json:"user_id"`
	PlantID      string     `gorm:"size:36" json:"plant_id"`
	PlantName    string     `json:"plant_name"`
	CustomName   string     `json:"custom_name,omitempty"`
	PlantedDate  *time.Time `json:"planted_date"`
	Location     string     `json:"location,omitempty"` // intérieur|extérieur|serre
	Notes        string     `json:"notes,omitempty"`
	ImageBase64  string     `json:"image_base64,omitempty"`
	LastWatered  *time.Time `json:"last_watered"`
	NextWatering *time.Time `gorm:"index" json:"next_watering"`
	HealthStatus string     `gorm:"default:bonne" json:"health_status"` // excellente|bonne|préoccupante|malade
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (g *GardenEntry) BeforeCreate(*gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// WateringEvent records one "I watered it" action on a garden entry.
type WateringEvent struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	GardenEntryID string    `gorm:"index;size:36" json:"garden_entry_id"`
	UserID        string    `gorm:"index;size:36" json:"user_id"`
	WateredAt     time.Time `json:"watered_at"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
