// Package watering derives watering cadences from the catalog and computes
// when a garden entry is next due.
package watering

import "strings"

// DefaultFrequency is used whenever the catalog text gives nothing usable.
const DefaultFrequency = 2

// DeriveAutoFrequency reads a weekly count out of a catalog string such as
// "Juin: 2-3 fois par semaine". Ranges round up, except "1-2" which stays at 2.
func DeriveAutoFrequency(text string) int {
	if !strings.Contains(text, "fois par semaine") {
		return DefaultFrequency
	}
	_, after, ok := strings.Cut(text, ":")
	if !ok {
		return DefaultFrequency
	}
	part := strings.TrimSpace(after)

	switch {
	case strings.Contains(part, "2-3"):
		return 3
	case strings.Contains(part, "3-4"):
		return 4
	case strings.Contains(part, "1-2"):
		return 2
	}
	for _, d := range []string{"1", "2", "3", "4"} {
		if strings.HasPrefix(part, d) {
			return int(d[0] - '0')
		}
	}
	return DefaultFrequency
}
