package store

import (
	"context"
	"time"

	"github.com/Vajbratya/automnator/internal/models"
)

type DraftCreateInput struct {
	Title    string
	Content  string
	Language string
}

// DraftUpdateInput carries partial updates; nil fields are left unchanged.
type DraftUpdateInput struct {
	Title         *string
	Content       *string
	Language      *string
	Status        *string
	PromptVersion *string
}

type ScheduleCreateInput struct {
	DraftID  string
	RunAt    time.Time
	Timezone string
}

type SourceCreateInput struct {
	Type       string
	Name       string
	ProfileURL string
	Keyword    string
}

type CaptureCreateInput struct {
	SourceID   string
	AuthorName string
	AuthorURL  string
	PostURL    string
	Text       string
	CapturedAt *time.Time
}

// PublishResult finalizes a schedule as succeeded.
type PublishResult struct {
	ExecutedAt     time.Time
	ProviderPostID string
	URL            string
}

// FailureResult finalizes a schedule as failed.
type FailureResult struct {
	ExecutedAt time.Time
	Error      string
}

// Store is the durable database consumed by the API handlers and the
// worker. Every mutating operation runs as a single serialized
// transaction; list/get operations read the latest persisted snapshot and
// may trail an in-flight transaction.
type Store interface {
	GetOrCreateUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	ListDrafts(ctx context.Context, userID string) ([]*models.Draft, error)
	GetDraft(ctx context.Context, userID, draftID string) (*models.Draft, error)
	CreateDraft(ctx context.Context, userID string, input DraftCreateInput) (*models.Draft, error)
	UpdateDraft(ctx context.Context, userID, draftID string, input DraftUpdateInput) (*models.Draft, error)
	DeleteDraft(ctx context.Context, userID, draftID string) error

	ListSchedules(ctx context.Context, userID string) ([]*models.Schedule, error)
	CreateSchedule(ctx context.Context, userID string, input ScheduleCreateInput) (*models.Schedule, error)
	ApproveSchedule(ctx context.Context, userID, scheduleID string) (*models.Schedule, error)
	RejectSchedule(ctx context.Context, userID, scheduleID string) (*models.Schedule, error)

	ListPosts(ctx context.Context, userID string) ([]*models.Post, error)
	ListActionLogs(ctx context.Context, userID string) ([]*models.ActionLog, error)

	ListSources(ctx context.Context, userID string) ([]*models.ResearchSource, error)
	CreateSource(ctx context.Context, userID string, input SourceCreateInput) (*models.ResearchSource, error)
	DeleteSource(ctx context.Context, userID, sourceID string) error

	ListCaptures(ctx context.Context, userID string) ([]*models.CapturedPost, error)
	CreateCapture(ctx context.Context, userID string, input CaptureCreateInput) (*models.CapturedPost, error)
	DeleteCapture(ctx context.Context, userID, captureID string) error

	// ClaimDueSchedules selects due, approved, queued schedules ordered by
	// runAt and transitions them to running inside one transaction. Two
	// callers can never both claim the same schedule.
	ClaimDueSchedules(ctx context.Context, now time.Time, limit int) ([]*models.Schedule, error)
	MarkScheduleSucceeded(ctx context.Context, scheduleID string, result PublishResult) error
	MarkScheduleFailed(ctx context.Context, scheduleID string, result FailureResult) error
}
