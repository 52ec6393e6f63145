package scheduling

import "time"

// RecurrenceRule describes how one class definition expands into many: repeat
// on the given weekdays, at the anchor's wall-clock time, through EndDate
// inclusive.
type RecurrenceRule struct {
	Anchor   LocalDateTime
	Weekdays []time.Weekday // Sunday = 0; nonempty, validated upstream
	EndDate  Date           // inclusive
}

// Expand produces the ordered list of wall-clock start times satisfying the
// rule. It is eager: downstream batching needs the total count before
// anything is committed.
//
// includeAnchor selects the anchor policy. The create flow passes true: the
// user's chosen start time is always the first instance, whether or not its
// weekday is in the set. The copy-from-existing flow passes false: copies
// begin scanning the day after the source class. Either way the scan visits
// each calendar day exactly once, so the output is strictly chronological
// with no duplicates, and every scanned emission carries the anchor's
// time-of-day.
func Expand(rule RecurrenceRule, includeAnchor bool) []LocalDateTime {
	set := make(map[time.Weekday]bool, len(rule.Weekdays))
	for _, wd := range rule.Weekdays {
		set[wd] = true
	}

	out := make([]LocalDateTime, 0, 8)
	if includeAnchor {
		out = append(out, rule.Anchor)
	}

	for d := rule.Anchor.Date().Next(); !d.After(rule.EndDate); d = d.Next() {
		if set[d.Weekday()] {
			out = append(out, d.At(rule.Anchor.Hour, rule.Anchor.Minute))
		}
	}
	return out
}
