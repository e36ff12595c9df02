package climate

import (
	"fmt"
	"math"
	"time"
)

const synodicMonth = 29.530588853

// reference new moon
var knownNewMoon = time.Date(2000, 1, 6, 18, 14, 0, 0, time.UTC)

var phaseNames = [8]string{
	"Nouvelle lune",
	"Premier croissant",
	"Premier quartier",
	"Gibbeuse croissante",
	"Pleine lune",
	"Gibbeuse décroissante",
	"Dernier quartier",
	"Dernier croissant",
}

type MoonDay struct {
	Date         string  `json:"date"`
	Phase        string  `json:"phase"`
	AgeDays      float64 `json:"age_days"`
	Illumination float64 `json:"illumination"`
	Waxing       bool    `json:"waxing"`
	Advice       string  `json:"advice"`
}

type LunarCalendar struct {
	Month string    `json:"month"`
	Days  []MoonDay `json:"days"`
}

// MoonAt describes the moon at instant t.
func MoonAt(t time.Time) MoonDay {
	days := t.Sub(knownNewMoon).Hours() / 24
	age := math.Mod(days, synodicMonth)
	if age < 0 {
		age += synodicMonth
	}
	frac := age / synodicMonth
	idx := int(math.Floor(frac*8+0.5)) % 8
	waxing := frac < 0.5

	return MoonDay{
		Date:         t.Format("2006-01-02"),
		Phase:        phaseNames[idx],
		AgeDays:      math.Round(age*10) / 10,
		Illumination: math.Round((1-math.Cos(2*math.Pi*frac))/2*100) / 100,
		Waxing:       waxing,
		Advice:       lunarAdvice(idx, waxing),
	}
}

func lunarAdvice(idx int, waxing bool) string {
	switch idx {
	case 0:
		return "Jour de repos au jardin, évitez semis et plantations"
	case 4:
		return "Récoltez les fruits et légumes feuilles, la sève est haute"
	}
	if waxing {
		return "Lune croissante : semez et greffez les plantes à fruits et à feuilles"
	}
	return "Lune décroissante : plantez les légumes racines, taillez et désherbez"
}

// NewLunarCalendar lists every day of month ("2006-01"), sampled at noon UTC.
func NewLunarCalendar(month string) (LunarCalendar, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return LunarCalendar{}, fmt.Errorf("month must be YYYY-MM: %w", err)
	}
	cal := LunarCalendar{Month: first.Format("2006-01")}
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		cal.Days = append(cal.Days, MoonAt(d.Add(12*time.Hour)))
	}
	return cal, nil
}
