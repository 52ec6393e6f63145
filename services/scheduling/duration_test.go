package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDuration(t *testing.T) {
	for _, d := range AllowedDurations {
		assert.True(t, ValidDuration(d), "%d should be allowed", d)
	}
	for _, d := range []int{0, -15, 10, 17, 65, 70, 135, 300} {
		assert.False(t, ValidDuration(d), "%d should be rejected", d)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{15, "15min"},
		{45, "45min"},
		{60, "1hr"},
		{75, "1hr 15min"},
		{90, "1hr 30min"},
		{120, "2hr"},
		{150, "2hr 30min"},
		{240, "4hr"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.minutes))
	}
}
