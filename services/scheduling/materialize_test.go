package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pirouette/models"
)

func classTemplate() models.Class {
	return models.Class{
		StudioID:     "studio-1",
		InstructorID: "instructor-1",
		StudentID:    "student-1",
		Title:        "Beginner Ballet",
		Description:  "Barre and floor work",
		Location:     "Room A",
		Capacity:     12,
		Visibility:   "public",
		PriceCents:   2500,
		PricingTier:  "standard",
	}
}

func TestMaterializeCopiesTemplateFields(t *testing.T) {
	starts := []LocalDateTime{
		{2024, time.June, 3, 18, 0},
		{2024, time.June, 5, 18, 0},
		{2024, time.June, 10, 18, 0},
	}

	drafts := Materialize(classTemplate(), starts, 60)
	require.Len(t, drafts, 3)

	seen := map[string]bool{}
	for i, d := range drafts {
		assert.Equal(t, "studio-1", d.StudioID)
		assert.Equal(t, "instructor-1", d.InstructorID)
		assert.Equal(t, "student-1", d.StudentID)
		assert.Equal(t, "Beginner Ballet", d.Title)
		assert.Equal(t, "Barre and floor work", d.Description)
		assert.Equal(t, "Room A", d.Location)
		assert.Equal(t, 12, d.Capacity)
		assert.Equal(t, "public", d.Visibility)
		assert.Equal(t, 2500, d.PriceCents)
		assert.Equal(t, "standard", d.PricingTier)
		assert.Equal(t, 60, d.DurationMinutes)

		assert.Equal(t, starts[i].ToUTC(), d.StartUTC)
		require.NotEmpty(t, d.ID)
		assert.False(t, seen[d.ID], "draft IDs must be unique")
		seen[d.ID] = true
	}
}

func TestMaterializeDurationConsistency(t *testing.T) {
	// Away from DST edges, end minus start equals the duration exactly.
	starts := []LocalDateTime{
		{2024, time.January, 8, 18, 0},
		{2024, time.June, 10, 23, 30}, // end rolls to the next calendar day
		{2024, time.February, 28, 23, 45},
	}

	for _, minutes := range []int{15, 75, 120} {
		drafts := Materialize(classTemplate(), starts, minutes)
		for _, d := range drafts {
			got := d.EndUTC.Sub(d.StartUTC)
			assert.Equal(t, time.Duration(minutes)*time.Minute, got,
				"duration for start %v at %d minutes", d.StartUTC, minutes)
		}
	}
}

func TestMaterializeEndCrossesMidnight(t *testing.T) {
	start := LocalDateTime{2024, time.January, 31, 23, 30}
	drafts := Materialize(classTemplate(), []LocalDateTime{start}, 75)
	require.Len(t, drafts, 1)

	endLocal := FromUTC(drafts[0].EndUTC)
	assert.Equal(t, LocalDateTime{2024, time.February, 1, 0, 45}, endLocal)
}
