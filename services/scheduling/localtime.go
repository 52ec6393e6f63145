package scheduling

import (
	"fmt"
	"time"

	// Embed tzdata so DST-correct conversion works in containers without a
	// system zoneinfo database.
	_ "time/tzdata"
)

// eastern is the fixed business timezone. All wall-clock input is interpreted
// here; the UTC offset is resolved per calendar date (DST included) rather
// than held constant.
var eastern *time.Location

func init() {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic(fmt.Sprintf("scheduling: failed to load America/New_York tzdata: %v", err))
	}
	eastern = loc
}

// Date is a plain calendar date with no time-of-day.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// LocalDateTime is a calendar date plus wall-clock time in the business's
// Eastern timezone. It never carries a UTC offset; the offset is applied only
// at conversion time.
//
// DST policy: conversions delegate to tzdata via time.Date. A nonexistent
// local time at the spring-forward gap is normalized forward by the gap; an
// ambiguous local time at fall-back resolves to the earlier (daylight) UTC
// instant. Round-trip holds everywhere else.
type LocalDateTime struct {
	Year   int        `json:"year"`
	Month  time.Month `json:"month"`
	Day    int        `json:"day"`
	Hour   int        `json:"hour"`
	Minute int        `json:"minute"`
}

// Validate rejects impossible calendar dates and clock values before they can
// reach conversion or expansion.
func (l LocalDateTime) Validate() error {
	if l.Month < time.January || l.Month > time.December {
		return fmt.Errorf("invalid month %d", l.Month)
	}
	if l.Day < 1 || l.Day > daysInMonth(l.Year, l.Month) {
		return fmt.Errorf("invalid day %d for %s %d", l.Day, l.Month, l.Year)
	}
	if l.Hour < 0 || l.Hour > 23 {
		return fmt.Errorf("invalid hour %d", l.Hour)
	}
	if l.Minute < 0 || l.Minute > 59 {
		return fmt.Errorf("invalid minute %d", l.Minute)
	}
	return nil
}

// ToUTC converts the wall-clock value to an absolute instant using the
// Eastern offset in effect on that calendar date.
func (l LocalDateTime) ToUTC() time.Time {
	return time.Date(l.Year, l.Month, l.Day, l.Hour, l.Minute, 0, 0, eastern).UTC()
}

// FromUTC converts an absolute instant back to the Eastern wall clock.
func FromUTC(t time.Time) LocalDateTime {
	e := t.In(eastern)
	return LocalDateTime{
		Year:   e.Year(),
		Month:  e.Month(),
		Day:    e.Day(),
		Hour:   e.Hour(),
		Minute: e.Minute(),
	}
}

// Add returns the wall-clock value minutes later, rolling over hours, days,
// months and years (leap years included). This is calendar arithmetic on the
// wall clock, not instant arithmetic: the result is the time a wall clock
// would show, independent of any DST transition in between.
func (l LocalDateTime) Add(minutes int) LocalDateTime {
	t := time.Date(l.Year, l.Month, l.Day, l.Hour, l.Minute, 0, 0, time.UTC).
		Add(time.Duration(minutes) * time.Minute)
	return LocalDateTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

// Date returns the calendar-date part, dropping the time of day.
func (l LocalDateTime) Date() Date {
	return Date{Year: l.Year, Month: l.Month, Day: l.Day}
}

// At combines the date with a wall-clock time-of-day.
func (d Date) At(hour, minute int) LocalDateTime {
	return LocalDateTime{Year: d.Year, Month: d.Month, Day: d.Day, Hour: hour, Minute: minute}
}

// Next returns the following calendar day, rolling over month and year
// boundaries.
func (d Date) Next() Date {
	t := time.Date(d.Year, d.Month, d.Day+1, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Weekday returns the day of week for the calendar date (Sunday = 0).
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// After reports whether d is strictly later than other, comparing dates only.
func (d Date) After(other Date) bool {
	if d.Year != other.Year {
		return d.Year > other.Year
	}
	if d.Month != other.Month {
		return d.Month > other.Month
	}
	return d.Day > other.Day
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return other.After(d)
}

// Validate rejects impossible calendar dates.
func (d Date) Validate() error {
	return d.At(0, 0).Validate()
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
