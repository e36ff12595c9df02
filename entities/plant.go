package entities

import "time"

// Plant is a catalog entry. Rows are written by the seeder only.
type Plant struct {
	ID                   string    `gorm:"primaryKey;size:36" json:"id"`
	NameFR               string    `gorm:"index" json:"name_fr"`
	NameLatin            string    `json:"name_latin,omitempty"`
	Variety              string    `json:"variety,omitempty"`
	Category             string    `gorm:"index" json:"category"`        // potager|ornement
	Subcategory          string    `json:"subcategory,omitempty"`        // legumes|herbes|fruits|fleurs|arbustes
	ImageURL             string    `json:"image_url,omitempty"`
	Description          string    `json:"description,omitempty"`
	CareInstructions     string    `json:"care_instructions,omitempty"`
	GrowingSeason        []string  `gorm:"serializer:json" json:"growing_season,omitempty"`
	Difficulty           string    `json:"difficulty,omitempty"`
	Sunlight             string    `json:"sunlight,omitempty"`
	Watering             string    `json:"watering,omitempty"`
	SoilType             string    `json:"soil_type,omitempty"`
	MonthlyWatering      string    `json:"monthly_watering,omitempty"`
	SpacingBetweenPlants string    `json:"spacing_between_plants,omitempty"`
	SpacingBetweenRows   string    `json:"spacing_between_rows,omitempty"`
	PlantingDepth        string    `json:"planting_depth,omitempty"`
	PlantingType         string    `json:"planting_type,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}
