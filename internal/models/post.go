package models

import "time"

// Post is the permanent receipt that a draft was published via a schedule.
// It is created once on a successful finalize and never mutated.
type Post struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	DraftID        string    `json:"draftId"`
	ScheduleID     string    `json:"scheduleId"`
	Provider       string    `json:"provider"`
	ProviderPostID string    `json:"providerPostId"`
	URL            string    `json:"url,omitempty"`
	PublishedAt    time.Time `json:"publishedAt"`
}

const ProviderLinkedIn = "linkedin"
