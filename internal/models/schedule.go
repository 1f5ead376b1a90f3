package models

import "time"

type Schedule struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	DraftID       string     `json:"draftId"`
	RunAt         time.Time  `json:"runAt"`
	Timezone      string     `json:"timezone"`
	ApprovalState string     `json:"approvalState"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	ExecutedAt    *time.Time `json:"executedAt,omitempty"`
	LastError     string     `json:"lastError,omitempty"`
}

const (
	ApprovalStatePending  = "pending"
	ApprovalStateApproved = "approved"
	ApprovalStateRejected = "rejected"
)

const (
	ScheduleStatusQueued    = "queued"
	ScheduleStatusRunning   = "running"
	ScheduleStatusSucceeded = "succeeded"
	ScheduleStatusFailed    = "failed"
	ScheduleStatusCanceled  = "canceled"
)

// IsTerminal reports whether the schedule can make no further progress.
func (s *Schedule) IsTerminal() bool {
	switch s.Status {
	case ScheduleStatusSucceeded, ScheduleStatusFailed, ScheduleStatusCanceled:
		return true
	}
	return false
}

func ValidScheduleStatus(status string) bool {
	switch status {
	case ScheduleStatusQueued, ScheduleStatusRunning, ScheduleStatusSucceeded,
		ScheduleStatusFailed, ScheduleStatusCanceled:
		return true
	}
	return false
}

func ValidApprovalState(state string) bool {
	switch state {
	case ApprovalStatePending, ApprovalStateApproved, ApprovalStateRejected:
		return true
	}
	return false
}
