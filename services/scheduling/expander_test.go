package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandExcludingAnchor(t *testing.T) {
	// Anchor Monday 2024-01-01 18:00, Mondays and Wednesdays through Jan 15.
	rule := RecurrenceRule{
		Anchor:   LocalDateTime{Year: 2024, Month: time.January, Day: 1, Hour: 18, Minute: 0},
		Weekdays: []time.Weekday{time.Monday, time.Wednesday},
		EndDate:  Date{Year: 2024, Month: time.January, Day: 15},
	}

	got := Expand(rule, false)
	want := []LocalDateTime{
		{2024, time.January, 3, 18, 0},
		{2024, time.January, 8, 18, 0},
		{2024, time.January, 10, 18, 0},
		{2024, time.January, 15, 18, 0},
	}
	assert.Equal(t, want, got, "anchor date itself must not appear")
}

func TestExpandIncludingAnchor(t *testing.T) {
	rule := RecurrenceRule{
		Anchor:   LocalDateTime{Year: 2024, Month: time.January, Day: 1, Hour: 18, Minute: 0},
		Weekdays: []time.Weekday{time.Monday, time.Wednesday},
		EndDate:  Date{Year: 2024, Month: time.January, Day: 15},
	}

	got := Expand(rule, true)
	require.Len(t, got, 5)
	assert.Equal(t, rule.Anchor, got[0], "anchor is always the first instance")
}

func TestExpandAnchorIncludedRegardlessOfWeekday(t *testing.T) {
	// Anchor is a Monday but only Fridays are selected; the anchor still
	// leads the series in the create flow.
	rule := RecurrenceRule{
		Anchor:   LocalDateTime{Year: 2024, Month: time.January, Day: 1, Hour: 10, Minute: 30},
		Weekdays: []time.Weekday{time.Friday},
		EndDate:  Date{Year: 2024, Month: time.January, Day: 12},
	}

	got := Expand(rule, true)
	want := []LocalDateTime{
		{2024, time.January, 1, 10, 30},
		{2024, time.January, 5, 10, 30},
		{2024, time.January, 12, 10, 30},
	}
	assert.Equal(t, want, got)
}

func TestExpandEndDateBeforeAnchor(t *testing.T) {
	rule := RecurrenceRule{
		Anchor:   LocalDateTime{Year: 2024, Month: time.June, Day: 15, Hour: 9, Minute: 0},
		Weekdays: []time.Weekday{time.Saturday},
		EndDate:  Date{Year: 2024, Month: time.June, Day: 1},
	}

	assert.Empty(t, Expand(rule, false))
	assert.Equal(t, []LocalDateTime{rule.Anchor}, Expand(rule, true),
		"only the anchor-inclusion policy contributes")
}

func TestExpandProperties(t *testing.T) {
	// Every weekday, across a leap-year February and a month boundary.
	rule := RecurrenceRule{
		Anchor:   LocalDateTime{Year: 2024, Month: time.February, Day: 1, Hour: 17, Minute: 45},
		Weekdays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		EndDate:  Date{Year: 2024, Month: time.March, Day: 15},
	}

	got := Expand(rule, false)
	require.NotEmpty(t, got)

	set := map[time.Weekday]bool{}
	for _, wd := range rule.Weekdays {
		set[wd] = true
	}

	prev := rule.Anchor.Date()
	for _, inst := range got {
		assert.True(t, set[inst.Date().Weekday()], "weekday of %+v must be in the rule", inst)
		assert.True(t, inst.Date().After(prev), "sequence must be strictly chronological")
		assert.False(t, inst.Date().After(rule.EndDate), "no instance past the end date")
		assert.Equal(t, 17, inst.Hour, "time of day is invariant")
		assert.Equal(t, 45, inst.Minute)
		prev = inst.Date()
	}

	// Feb 29 2024 is a Thursday and must be present.
	assert.Contains(t, got, LocalDateTime{2024, time.February, 29, 17, 45})

	// 2024-02-01 anchor, end 2024-03-15: 31 weekdays follow the anchor.
	assert.Len(t, got, 31)
}

func TestExpandYearRollover(t *testing.T) {
	rule := RecurrenceRule{
		Anchor:   LocalDateTime{Year: 2024, Month: time.December, Day: 30, Hour: 8, Minute: 0},
		Weekdays: []time.Weekday{time.Monday},
		EndDate:  Date{Year: 2025, Month: time.January, Day: 13},
	}

	// Dec 30 2024 is a Monday; excluding it leaves Jan 6 and Jan 13.
	got := Expand(rule, false)
	want := []LocalDateTime{
		{2025, time.January, 6, 8, 0},
		{2025, time.January, 13, 8, 0},
	}
	assert.Equal(t, want, got)
}
