package scheduling

import "fmt"

// AllowedDurations is the closed set of lesson lengths (minutes) the product
// offers. Anything else indicates a client or data bug upstream.
var AllowedDurations = []int{15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 75, 90, 105, 120, 150, 180, 210, 240}

// ValidDuration reports whether minutes is a member of the allowed set.
func ValidDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// FormatDuration renders minutes as "1hr 15min", "2hr" or "45min", omitting
// any zero component.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dhr %dmin", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dhr", hours)
	default:
		return fmt.Sprintf("%dmin", mins)
	}
}
