package watering

import (
	"time"

	"potager/entities"
)

// ISOWeekday numbers Monday 1 through Sunday 7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// NextWatering returns when an entry on schedule s is next due after from.
// Auto schedules spread their frequency evenly over the week; custom
// schedules land on the next listed weekday strictly after from's date, at
// from's clock time. It returns nil when s gives no date.
func NextWatering(s *entities.WateringSchedule, from time.Time) *time.Time {
	if s == nil {
		return nil
	}
	switch s.Mode {
	case entities.WateringModeAuto:
		freq := DefaultFrequency
		if s.AutoFrequency != nil && *s.AutoFrequency > 0 {
			freq = *s.AutoFrequency
		}
		next := from.Add(time.Duration(7*24/freq) * time.Hour)
		return &next
	case entities.WateringModeCustom:
		days := make(map[int]bool, len(s.CustomDays))
		for _, d := range s.CustomDays {
			days[d] = true
		}
		for i := 1; i <= 7; i++ {
			next := from.AddDate(0, 0, i)
			if days[ISOWeekday(next)] {
				return &next
			}
		}
	}
	return nil
}

// ValidateCustomDays reports whether days is a non-empty set of distinct
// ISO weekdays.
func ValidateCustomDays(days []int) bool {
	if len(days) == 0 || len(days) > 7 {
		return false
	}
	seen := make(map[int]bool, len(days))
	for _, d := range days {
		if d < 1 || d > 7 || seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}
