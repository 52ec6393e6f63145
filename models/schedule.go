package models

import "time"

// ScheduleSession is a materialized batch parked in Redis awaiting explicit
// user confirmation before submission. It exists only for the lifetime of one
// schedule request and is deleted on confirm or cancel.
type ScheduleSession struct {
	ID        string       `json:"id"`
	StudioID  string       `json:"studio_id"`
	Drafts    []ClassDraft `json:"drafts"`
	CreatedAt time.Time    `json:"created_at"`
}

// BatchResult reports the outcome of one batch submission. It is ephemeral:
// built during a single submission call, reported to the caller, then
// discarded.
type BatchResult struct {
	Submitted int      `json:"submitted"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Failures  []string `json:"failures,omitempty"` // One message per failed draft
}

// ReminderPayload is the asynq task payload for a class-start reminder.
type ReminderPayload struct {
	ClassID  string `json:"classId"`
	StudioID string `json:"studioId"`
	Title    string `json:"title"`
	StartUTC string `json:"startUtc"`
}
