package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDateTimeRoundTrip(t *testing.T) {
	// Dates on both sides of the DST transitions, away from the edge hours.
	cases := []LocalDateTime{
		{Year: 2024, Month: time.January, Day: 15, Hour: 18, Minute: 0},   // EST
		{Year: 2024, Month: time.July, Day: 4, Hour: 9, Minute: 30},       // EDT
		{Year: 2024, Month: time.March, Day: 9, Hour: 23, Minute: 45},     // night before spring forward
		{Year: 2024, Month: time.March, Day: 10, Hour: 12, Minute: 0},     // afternoon after spring forward
		{Year: 2024, Month: time.November, Day: 3, Hour: 15, Minute: 30},  // afternoon after fall back
		{Year: 2024, Month: time.February, Day: 29, Hour: 6, Minute: 15},  // leap day
		{Year: 2025, Month: time.December, Day: 31, Hour: 23, Minute: 59}, // year boundary
	}
	for _, local := range cases {
		got := FromUTC(local.ToUTC())
		assert.Equal(t, local, got, "round trip for %+v", local)
	}
}

func TestToUTCUsesOffsetForDate(t *testing.T) {
	// Same wall-clock time, different offsets depending on the calendar date.
	winter := LocalDateTime{Year: 2024, Month: time.January, Day: 15, Hour: 18, Minute: 0}
	summer := LocalDateTime{Year: 2024, Month: time.July, Day: 15, Hour: 18, Minute: 0}

	assert.Equal(t, 23, winter.ToUTC().Hour(), "18:00 EST is 23:00 UTC")
	assert.Equal(t, 22, summer.ToUTC().Hour(), "18:00 EDT is 22:00 UTC")
}

func TestLocalDateTimeValidate(t *testing.T) {
	tests := []struct {
		name    string
		value   LocalDateTime
		wantErr bool
	}{
		{"valid", LocalDateTime{2024, time.June, 10, 14, 30}, false},
		{"leap day on leap year", LocalDateTime{2024, time.February, 29, 0, 0}, false},
		{"leap day on non-leap year", LocalDateTime{2023, time.February, 29, 0, 0}, true},
		{"month 13", LocalDateTime{2024, time.Month(13), 1, 0, 0}, true},
		{"day 32", LocalDateTime{2024, time.January, 32, 0, 0}, true},
		{"day 31 in april", LocalDateTime{2024, time.April, 31, 0, 0}, true},
		{"hour 24", LocalDateTime{2024, time.January, 1, 24, 0}, true},
		{"minute 60", LocalDateTime{2024, time.January, 1, 0, 60}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLocalDateTimeAdd(t *testing.T) {
	tests := []struct {
		name    string
		start   LocalDateTime
		minutes int
		want    LocalDateTime
	}{
		{
			name:    "within the hour",
			start:   LocalDateTime{2024, time.June, 10, 14, 0},
			minutes: 45,
			want:    LocalDateTime{2024, time.June, 10, 14, 45},
		},
		{
			name:    "75 minutes at 11:30 PM rolls to the next day",
			start:   LocalDateTime{2024, time.June, 10, 23, 30},
			minutes: 75,
			want:    LocalDateTime{2024, time.June, 11, 0, 45},
		},
		{
			name:    "month rollover Jan 31 to Feb 1",
			start:   LocalDateTime{2024, time.January, 31, 23, 30},
			minutes: 75,
			want:    LocalDateTime{2024, time.February, 1, 0, 45},
		},
		{
			name:    "leap year Feb 28 to Feb 29",
			start:   LocalDateTime{2024, time.February, 28, 23, 45},
			minutes: 30,
			want:    LocalDateTime{2024, time.February, 29, 0, 15},
		},
		{
			name:    "non-leap year Feb 28 to Mar 1",
			start:   LocalDateTime{2023, time.February, 28, 23, 45},
			minutes: 30,
			want:    LocalDateTime{2023, time.March, 1, 0, 15},
		},
		{
			name:    "year rollover",
			start:   LocalDateTime{2024, time.December, 31, 23, 0},
			minutes: 120,
			want:    LocalDateTime{2025, time.January, 1, 1, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.Add(tt.minutes))
		})
	}
}

func TestDateNextAndWeekday(t *testing.T) {
	d := Date{Year: 2024, Month: time.February, Day: 28}
	d = d.Next()
	require.Equal(t, Date{Year: 2024, Month: time.February, Day: 29}, d)
	d = d.Next()
	require.Equal(t, Date{Year: 2024, Month: time.March, Day: 1}, d)

	// 2024-01-01 was a Monday.
	assert.Equal(t, time.Monday, Date{Year: 2024, Month: time.January, Day: 1}.Weekday())
	assert.Equal(t, time.Sunday, Date{Year: 2024, Month: time.January, Day: 7}.Weekday())
}

func TestDateOrdering(t *testing.T) {
	early := Date{Year: 2024, Month: time.January, Day: 15}
	late := Date{Year: 2024, Month: time.February, Day: 1}

	assert.True(t, late.After(early))
	assert.False(t, early.After(late))
	assert.True(t, early.Before(late))
	assert.False(t, early.After(early))
	assert.False(t, early.Before(early))
}
