package climate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoonAtKnownPhases(t *testing.T) {
	tests := []struct {
		at   time.Time
		want string
	}{
		{time.Date(2024, 1, 25, 18, 0, 0, 0, time.UTC), "Pleine lune"},
		{time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC), "Nouvelle lune"},
		{time.Date(2024, 1, 18, 3, 0, 0, 0, time.UTC), "Premier quartier"},
		{time.Date(2024, 2, 2, 23, 0, 0, 0, time.UTC), "Dernier quartier"},
		{knownNewMoon, "Nouvelle lune"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MoonAt(tt.at).Phase, tt.at.String())
	}

	full := MoonAt(time.Date(2024, 1, 25, 18, 0, 0, 0, time.UTC))
	assert.Greater(t, full.Illumination, 0.95)
	assert.Equal(t, "Récoltez les fruits et légumes feuilles, la sève est haute", full.Advice)

	assert.True(t, MoonAt(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)).Waxing)
	assert.False(t, MoonAt(time.Date(2024, 1, 29, 12, 0, 0, 0, time.UTC)).Waxing)
}

func TestMoonBeforeReference(t *testing.T) {
	m := MoonAt(time.Date(1999, 12, 22, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, "Pleine lune", m.Phase)
	assert.GreaterOrEqual(t, m.AgeDays, 0.0)
}

func TestLunarCalendar(t *testing.T) {
	cal, err := NewLunarCalendar("2024-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-02", cal.Month)
	require.Len(t, cal.Days, 29)
	assert.Equal(t, "2024-02-01", cal.Days[0].Date)
	assert.Equal(t, "2024-02-29", cal.Days[28].Date)

	_, err = NewLunarCalendar("février")
	assert.Error(t, err)
}

func TestForecastIsDeterministic(t *testing.T) {
	from := time.Date(2025, 7, 14, 9, 30, 0, 0, time.UTC)
	a := NewForecast("Lyon", from, 7)
	b := NewForecast("lyon", from, 7)
	require.Len(t, a.Days, 7)
	assert.Equal(t, a.Days, b.Days)
	assert.Equal(t, "2025-07-14", a.Days[0].Date)
	assert.Equal(t, "2025-07-20", a.Days[6].Date)

	for _, d := range a.Days {
		assert.Less(t, d.TempMinC, d.TempMaxC)
		assert.NotEmpty(t, d.WateringHint)
		if d.RainMM >= 5 {
			assert.Equal(t, "Pluie", d.Condition)
			assert.Empty(t, d.ShouldWaterAt)
		}
	}
}

func TestForecastBounds(t *testing.T) {
	from := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.Len(t, NewForecast("", from, 0).Days, 1)
	assert.Len(t, NewForecast("", from, 40).Days, MaxDays)
	assert.Equal(t, DefaultCity, NewForecast("  ", from, 1).City)

	summer := NewForecast("Nice", time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), 1).Days[0]
	winter := NewForecast("Nice", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 1).Days[0]
	assert.Greater(t, summer.TempMaxC, winter.TempMaxC)
}
