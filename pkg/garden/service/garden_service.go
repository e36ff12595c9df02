package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"potager/entities"
)

// Timestamp accepts RFC 3339, a naive "2006-01-02T15:04:05" or a bare date.
type Timestamp struct{ time.Time }

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if v, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			t.Time = v
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// Ptr is nil-safe.
func (t *Timestamp) Ptr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

type AddInput struct {
	PlantID     string     `json:"plant_id"`
	CustomName  string     `json:"custom_name"`
	PlantedDate *Timestamp `json:"planted_date"`
	Location    string     `json:"location"`
	Notes       string     `json:"notes"`
	ImageBase64 string     `json:"image_base64"`
}

// GardenPatch holds the fields a PUT may change; nil means untouched.
type GardenPatch struct {
	CustomName   *string    `json:"custom_name"`
	PlantedDate  *Timestamp `json:"planted_date"`
	Location     *string    `json:"location"`
	Notes        *string    `json:"notes"`
	ImageBase64  *string    `json:"image_base64"`
	HealthStatus *string    `json:"health_status"`
	LastWatered  *Timestamp `json:"last_watered"`
	NextWatering *Timestamp `json:"next_watering"`
}

type WaterInput struct {
	WateredAt *Timestamp `json:"watered_at"`
	Note      string     `json:"note"`
}

type GardenService interface {
	List(ctx context.Context, user *entities.User) ([]entities.GardenEntry, error)
	Add(ctx context.Context, user *entities.User, in AddInput) (*entities.GardenEntry, error)
	Update(ctx context.Context, user *entities.User, id string, p GardenPatch) (*entities.GardenEntry, error)
	Remove(ctx context.Context, user *entities.User, id string) error
	MarkWatered(ctx context.Context, user *entities.User, id string, in WaterInput) (*entities.GardenEntry, error)
	History(ctx context.Context, user *entities.User, id string) ([]entities.WateringEvent, error)
}
