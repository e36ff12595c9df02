package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AIAnalysis struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	UserID       string         `gorm:"index;size:36" json:"user_id"`
	ImageBase64  string         `json:"image_base64"`
	AnalysisType string         `json:"analysis_type"` // identification|diagnostic|soins
	Result       map[string]any `gorm:"serializer:json" json:"result"`
	Confidence   *float64       `json:"confidence"`
	UserPlantID  *string        `json:"user_plant_id"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
}

func (a *AIAnalysis) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
