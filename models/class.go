package models

import "time"

// Class represents a persisted class record.
type Class struct {
	ID              string    `bson:"id" json:"id"`                                     // Unique class identifier (UUID)
	StudioID        string    `bson:"studio_id" json:"studio_id"`                       // Studio the class belongs to
	InstructorID    string    `bson:"instructor_id" json:"instructor_id"`               // Instructor teaching the class
	StudentID       string    `bson:"student_id,omitempty" json:"student_id,omitempty"` // Set only for private lessons
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Location        string    `bson:"location,omitempty" json:"location,omitempty"`
	Capacity        int       `bson:"capacity" json:"capacity"`
	Visibility      string    `bson:"visibility" json:"visibility"` // "public" or "private"
	PriceCents      int       `bson:"price_cents" json:"price_cents"`
	PricingTier     string    `bson:"pricing_tier,omitempty" json:"pricing_tier,omitempty"`
	StartUTC        time.Time `bson:"start_utc" json:"start_utc"` // Absolute start instant (RFC 3339)
	EndUTC          time.Time `bson:"end_utc" json:"end_utc"`     // Absolute end instant (RFC 3339)
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// ClassDraft is a fully computed, not-yet-persisted class instance. Drafts are
// generated in bulk from one recurrence rule, optionally held for user
// confirmation, then either submitted or discarded. They are never mutated
// after materialization.
type ClassDraft struct {
	ID              string    `bson:"id" json:"id"`
	StudioID        string    `bson:"studio_id" json:"studio_id"`
	InstructorID    string    `bson:"instructor_id" json:"instructor_id"`
	StudentID       string    `bson:"student_id,omitempty" json:"student_id,omitempty"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Location        string    `bson:"location,omitempty" json:"location,omitempty"`
	Capacity        int       `bson:"capacity" json:"capacity"`
	Visibility      string    `bson:"visibility" json:"visibility"`
	PriceCents      int       `bson:"price_cents" json:"price_cents"`
	PricingTier     string    `bson:"pricing_tier,omitempty" json:"pricing_tier,omitempty"`
	StartUTC        time.Time `bson:"start_utc" json:"start_utc"`
	EndUTC          time.Time `bson:"end_utc" json:"end_utc"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
}

// Record converts a draft into the Class record persisted on submission.
func (d ClassDraft) Record(now time.Time) Class {
	return Class{
		ID:              d.ID,
		StudioID:        d.StudioID,
		InstructorID:    d.InstructorID,
		StudentID:       d.StudentID,
		Title:           d.Title,
		Description:     d.Description,
		Location:        d.Location,
		Capacity:        d.Capacity,
		Visibility:      d.Visibility,
		PriceCents:      d.PriceCents,
		PricingTier:     d.PricingTier,
		StartUTC:        d.StartUTC,
		EndUTC:          d.EndUTC,
		DurationMinutes: d.DurationMinutes,
		CreatedAt:       now,
	}
}
