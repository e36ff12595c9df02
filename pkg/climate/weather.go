// Package climate produces the premium weather outlook and lunar calendar.
// Both are computed locally; no external service is queried.
package climate

import (
	"hash/fnv"
	"math"
	"strings"
	"time"
)

const (
	DefaultCity = "Paris"
	MaxDays     = 14
)

type DayForecast struct {
	Date          string  `json:"date"`
	Condition     string  `json:"condition"`
	TempMinC      float64 `json:"temp_min_c"`
	TempMaxC      float64 `json:"temp_max_c"`
	RainMM        float64 `json:"rain_mm"`
	RainChance    int     `json:"rain_chance"`
	WateringHint  string  `json:"watering_hint"`
	ShouldWaterAt string  `json:"should_water_at,omitempty"`
}

type Forecast struct {
	City string        `json:"city"`
	Days []DayForecast `json:"days"`
}

func hash32(parts ...string) uint32 {
	h := fnv.New32a()
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum32()
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// seasonalMean peaks mid-July and bottoms out mid-January.
func seasonalMean(t time.Time) float64 {
	return 12.5 + 8.5*math.Sin(2*math.Pi*float64(t.YearDay()-105)/365)
}

// NewForecast returns days daily outlooks starting at from's date. The same city
// and date always yield the same numbers.
func NewForecast(city string, from time.Time, days int) Forecast {
	city = strings.TrimSpace(city)
	if city == "" {
		city = DefaultCity
	}
	if days < 1 {
		days = 1
	}
	if days > MaxDays {
		days = MaxDays
	}
	key := strings.ToLower(city)
	cityOffset := float64(int(hash32(key)%7) - 3)

	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	out := Forecast{City: city, Days: make([]DayForecast, 0, days)}
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		date := d.Format("2006-01-02")
		h := hash32(key, date)

		mean := seasonalMean(d) + cityOffset + float64(int(h%5)-2)
		chance := int((h >> 8) % 100)
		rain := 0.0
		if chance > 60 {
			rain = round1(float64(chance-60) / 4)
		}

		day := DayForecast{
			Date:       date,
			TempMinC:   round1(mean - 4),
			TempMaxC:   round1(mean + 4),
			RainMM:     rain,
			RainChance: chance,
		}
		day.Condition = condition(chance, rain)
		day.WateringHint, day.ShouldWaterAt = wateringHint(day)
		out.Days = append(out.Days, day)
	}
	return out
}

func condition(chance int, rain float64) string {
	switch {
	case rain >= 5:
		return "Pluie"
	case rain > 0:
		return "Pluie légère"
	case chance > 35:
		return "Nuageux"
	default:
		return "Ensoleillé"
	}
}

func wateringHint(d DayForecast) (hint, when string) {
	switch {
	case d.RainMM >= 5:
		return "Inutile d'arroser, la pluie s'en charge", ""
	case d.TempMaxC >= 28:
		return "Arrosage abondant conseillé", "soir"
	case d.RainMM > 0:
		return "Arrosage léger si le sol est sec", "matin"
	default:
		return "Arrosage normal", "matin"
	}
}
