package scheduling

import (
	"github.com/google/uuid"

	"pirouette/models"
)

// Materialize maps each start time to a full class-instance draft: start and
// end converted to UTC, the end derived from the duration, and every other
// template field copied verbatim. One rule, one template, N time-shifted
// copies.
func Materialize(template models.Class, starts []LocalDateTime, minutes int) []models.ClassDraft {
	drafts := make([]models.ClassDraft, 0, len(starts))
	for _, start := range starts {
		end := start.Add(minutes)
		drafts = append(drafts, models.ClassDraft{
			ID:              uuid.New().String(),
			StudioID:        template.StudioID,
			InstructorID:    template.InstructorID,
			StudentID:       template.StudentID,
			Title:           template.Title,
			Description:     template.Description,
			Location:        template.Location,
			Capacity:        template.Capacity,
			Visibility:      template.Visibility,
			PriceCents:      template.PriceCents,
			PricingTier:     template.PricingTier,
			StartUTC:        start.ToUTC(),
			EndUTC:          end.ToUTC(),
			DurationMinutes: minutes,
		})
	}
	return drafts
}
