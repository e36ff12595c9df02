package watering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"potager/entities"
)

func intPtr(v int) *int { return &v }

func TestISOWeekday(t *testing.T) {
	// 2025-06-02 is a Monday
	monday := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i+1, ISOWeekday(monday.AddDate(0, 0, i)))
	}
}

func TestNextWateringAuto(t *testing.T) {
	from := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		freq *int
		want time.Duration
	}{
		{intPtr(1), 168 * time.Hour},
		{intPtr(2), 84 * time.Hour},
		{intPtr(3), 56 * time.Hour},
		{intPtr(4), 42 * time.Hour},
		{nil, 84 * time.Hour},
	}
	for _, tt := range tests {
		s := &entities.WateringSchedule{Mode: entities.WateringModeAuto, AutoFrequency: tt.freq}
		got := NextWatering(s, from)
		require.NotNil(t, got)
		assert.Equal(t, from.Add(tt.want), *got)
	}
}

func TestNextWateringCustom(t *testing.T) {
	wednesday := time.Date(2025, 6, 4, 18, 30, 0, 0, time.UTC)
	s := &entities.WateringSchedule{Mode: entities.WateringModeCustom, CustomDays: []int{1, 3, 5}}

	got := NextWatering(s, wednesday)
	require.NotNil(t, got)
	// strictly after the current day: Friday, same clock time
	assert.Equal(t, time.Date(2025, 6, 6, 18, 30, 0, 0, time.UTC), *got)

	// only Wednesday listed: one week later
	s.CustomDays = []int{3}
	got = NextWatering(s, wednesday)
	require.NotNil(t, got)
	assert.Equal(t, wednesday.AddDate(0, 0, 7), *got)

	// Sunday is 7
	s.CustomDays = []int{7}
	got = NextWatering(s, wednesday)
	require.NotNil(t, got)
	assert.Equal(t, time.Sunday, got.Weekday())
}

func TestNextWateringWithoutDate(t *testing.T) {
	from := time.Now()
	assert.Nil(t, NextWatering(nil, from))
	assert.Nil(t, NextWatering(&entities.WateringSchedule{Mode: entities.WateringModeCustom}, from))
	assert.Nil(t, NextWatering(&entities.WateringSchedule{Mode: "weekly"}, from))
}

func TestValidateCustomDays(t *testing.T) {
	assert.True(t, ValidateCustomDays([]int{1, 3, 5}))
	assert.True(t, ValidateCustomDays([]int{7}))
	assert.True(t, ValidateCustomDays([]int{1, 2, 3, 4, 5, 6, 7}))

	assert.False(t, ValidateCustomDays(nil))
	assert.False(t, ValidateCustomDays([]int{}))
	assert.False(t, ValidateCustomDays([]int{0}))
	assert.False(t, ValidateCustomDays([]int{8}))
	assert.False(t, ValidateCustomDays([]int{1, 1}))
}
