package models

import "time"

// ActionLog is an append-only audit entry. One is written per worker claim
// and one per terminal outcome.
type ActionLog struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	ScheduleID string    `json:"scheduleId,omitempty"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

const (
	ActionTypePublish        = "publish"
	ActionTypeFetchAnalytics = "fetch_analytics"
)

const (
	ActionStatusOK    = "ok"
	ActionStatusError = "error"
)
