package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/Vajbratya/automnator/internal/models"
)

// FileStore persists the whole database as a single JSON document. Every
// mutation is a serialized read-modify-write transaction: the document is
// loaded, mutated in memory, then written to a temporary file and renamed
// over the canonical path, so a crash mid-write never leaves a torn file.
//
// The serialization is process-local only. Running two processes against
// the same file is outside the safe envelope.
type FileStore struct {
	path string

	// mu is the transaction queue: transactions acquire it in submission
	// order, and a transaction's read phase cannot begin until the
	// previous transaction's write phase has finished.
	mu sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) readDB() (*database, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return newDatabase(), nil
		}
		return nil, fmt.Errorf("read database: %w", err)
	}

	db := newDatabase()
	if err := json.Unmarshal(raw, db); err != nil {
		// Lossy-but-safe recovery: a corrupted document is treated as
		// absent rather than failing startup. Known data-loss risk.
		slog.Warn("database file is not valid JSON, starting empty", "path", s.path, "error", err)
		return newDatabase(), nil
	}
	if err := db.validate(); err != nil {
		slog.Warn("database file failed validation, starting empty", "path", s.path, "error", err)
		return newDatabase(), nil
	}
	return db, nil
}

func (s *FileStore) writeDB(db *database) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}

	raw, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("encode database: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write database: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace database: %w", err)
	}
	return nil
}

// withTx runs fn against a fresh snapshot and persists the result. If fn
// returns an error nothing is persisted, and the queue still advances for
// subsequent transactions.
func (s *FileStore) withTx(fn func(db *database) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.readDB()
	if err != nil {
		return err
	}
	if err := fn(db); err != nil {
		return err
	}
	return s.writeDB(db)
}

func newID() (string, error) {
	return gonanoid.New()
}

func titleFromContent(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > 80 {
			return line[:80]
		}
		return line
	}
	return "Untitled draft"
}

func (s *FileStore) GetOrCreateUserByEmail(ctx context.Context, email string) (*models.User, error) {
	norm := strings.ToLower(strings.TrimSpace(email))
	if norm == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	var user *models.User
	err := s.withTx(func(db *database) error {
		for _, u := range db.Users {
			if strings.ToLower(u.Email) == norm {
				user = u
				return nil
			}
		}

		id, err := newID()
		if err != nil {
			return err
		}
		user = &models.User{ID: id, Email: norm, CreatedAt: time.Now().UTC()}
		db.Users[user.ID] = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *FileStore) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	db, err := s.readDB()
	if err != nil {
		return nil, err
	}
	user, ok := db.Users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	return user, nil
}

func (s *FileStore) ListDrafts(ctx context.Context, userID string) ([]*models.Draft, error) {
	db, err := s.readDB()
	if err != nil {
		return nil, err
	}
	var drafts []*models.Draft
	for _, d := range db.Drafts {
		if d.UserID == userID {
			drafts = append(drafts, d)
		}
	}
	sort.Slice(drafts, func(i, j int) bool {
		return drafts[i].UpdatedAt.After(drafts[j].UpdatedAt)
	})
	return drafts, nil
}

func (s *FileStore) GetDraft(ctx context.Context, userID, draftID string) (*models.Draft, error) {
	db, err := s.readDB()
	if err != nil {
		return nil, err
	}
	draft, ok := db.Drafts[draftID]
	if !ok || draft.UserID != userID {
		return nil, fmt.Errorf("%w: draft %s", ErrNotFound, draftID)
	}
	return draft, nil
}

func (s *FileStore) CreateDraft(ctx context.Context, userID string, input DraftCreateInput) (*models.Draft, error) {
	var draft *models.Draft
	err := s.withTx(func(db *database) error {
		id, err := newID()
		if err != nil {
			return err
		}

		title := strings.TrimSpace(input.Title)
		if title == "" {
			title = "Untitled draft"
		}
		language := input.Language
		if language == "" {
			language = models.LanguageEnglish
		}
		if !models.ValidLanguage(language) {
			return fmt.Errorf("%w: unknown language %q", ErrValidation, language)
		}

		now := time.Now().UTC()
		draft = &models.Draft{
			ID:        id,
			UserID:    userID,
			Title:     title,
			Content:   input.Content,
			Language:  language,
			Status:    models.DraftStatusDraft,
			CreatedAt: now,
			UpdatedAt: now,
		}
		db.Drafts[draft.ID] = draft
		return nil
	})
	if err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *FileStore) UpdateDraft(ctx context.Context, userID, draftID string, input DraftUpdateInput) (*models.Draft, error) {
	var draft *models.Draft
	err := s.withTx(func(db *database) error {
		d, ok := db.Drafts[draftID]
		if !ok || d.UserID != userID {
			return fmt.Errorf("%w: draft %s", ErrNotFound, draftID)
		}

		if input.Status != nil && !models.ValidDraftStatus(*input.Status) {
			return fmt.Errorf("%w: unknown draft status %q", ErrValidation, *input.Status)
		}
		if input.Language != nil && !models.ValidLanguage(*input.Language) {
			return fmt.Errorf("%w: unknown language %q", ErrValidation, *input.Language)
		}

		if input.Content != nil {
			d.Content = *input.Content
		}
		if input.Title != nil {
			title := strings.TrimSpace(*input.Title)
			if title == "" {
				title = titleFromContent(d.Content)
			}
			d.Title = title
		}
		if input.Language != nil {
			d.Language = *input.Language
		}
		if input.Status != nil {
			d.Status = *input.Status
		}
		if input.PromptVersion != nil {
			d.PromptVersion = *input.PromptVersion
		}
		d.UpdatedAt = time.Now().UTC()
		draft = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return draft, nil
}

// DeleteDraft removes the draft and cancels every queued schedule that
// references it, recording the reason. Running and terminal schedules are
// left untouched so their status history stays monotonic.
func (s *FileStore) DeleteDraft(ctx context.Context, userID, draftID string) error {
	return s.withTx(func(db *database) error {
		draft, ok := db.Drafts[draftID]
		if !ok || draft.UserID != userID {
			return fmt.Errorf("%w: draft %s", ErrNotFound, draftID)
		}
		delete(db.Drafts, draftID)

		now := time.Now().UTC()
		for _, sched := range db.Schedules {
			if sched.UserID != userID || sched.DraftID != draftID {
				continue
			}
			if sched.Status != models.ScheduleStatusQueued {
				continue
			}
			sched.Status = models.ScheduleStatusCanceled
			sched.LastError = "Draft deleted."
			sched.UpdatedAt = now
		}
		return nil
	})
}

func (s *FileStore) ListSchedules(ctx context.Context, userID string) ([]*models.Schedule, error) {
	db, err := s.readDB()
	if err != nil {
		return nil, err
	}
	var schedules []*models.Schedule
	for _, sched := range db.Schedules {
		if sched.UserID == userID {
			schedules = append(schedules, sched)
		}
	}
	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].RunAt.After(schedules[j].RunAt)
	})
	return schedules, nil
}

func (s *FileStore) CreateSchedule(ctx context.Context, userID string, input ScheduleCreateInput) (*models.Schedule, error) {
	if input.RunAt.IsZero() {
		return nil, fmt.Errorf("%w: runAt is required", ErrValidation)
	}
	if strings.TrimSpace(input.Timezone) == "" {
		return nil, fmt.Errorf("%w: timezone is required", ErrValidation)
	}

	var schedule *models.Schedule
	err := s.withTx(func(db *database) error {
		draft, ok := db.Drafts[input.DraftID]
		if !ok || draft.UserID != userID {
			return fmt.Errorf("%w: draft %s", ErrNotFound, input.DraftID)
		}

		id, err := newID()
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		schedule = &models.Schedule{
			ID:            id,
			UserID:        userID,
			DraftID:       input.DraftID,
			RunAt:         input.RunAt.UTC(),
			Timezone:      input.Timezone,
			ApprovalState: models.ApprovalStatePending,
			Status:        models.ScheduleStatusQueued,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		db.Schedules[schedule.ID] = schedule

		draft.Status = models.DraftStatusScheduled
		draft.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *FileStore) ApproveSchedule(ctx context.Context, userID, scheduleID string) (*models.Schedule, error) {
	var schedule *models.Schedule
	err := s.withTx(func(db *database) error {
		sched, ok := db.Schedules[scheduleID]
		if !ok || sched.UserID != userID {
			return fmt.Errorf("%w: schedule %s", ErrNotFound, scheduleID)
		}
		if sched.Status != models.ScheduleStatusQueued {
			return fmt.Errorf("%w: schedule %s is %s, not queued", ErrInvalidState, scheduleID, sched.Status)
		}
		sched.ApprovalState = models.ApprovalStateApproved
		sched.UpdatedAt = time.Now().UTC()
		schedule = sched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *FileStore) RejectSchedule(ctx context.Context, userID, scheduleID string) (*models.Schedule, error) {
	var schedule *models.Schedule
	err := s.withTx(func(db *database) error {
		sched, ok := db.Schedules[scheduleID]
		if !ok || sched.UserID != userID {
			return fmt.Errorf("%w: schedule %s", ErrNotFound, scheduleID)
		}
		if sched.Status != models.ScheduleStatusQueued {
			return fmt.Errorf("%w: schedule %s is %s, not queued", ErrInvalidState, scheduleID, sched.Status)
		}
		sched.ApprovalState = models.ApprovalStateRejected
		sched.Status = models.ScheduleStatusCanceled
		sched.UpdatedAt = time.Now().UTC()
		schedule = sched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *FileStore) ListPosts(ctx context.Context, userID string) ([]*models.Post, error) {
	db, err := s.readDB()
	if err != nil {
		return nil, err
	}
	var posts []*models.Post
	for _, p := range db.Posts {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts, nil
}

func (s *FileStore) ListActionLogs(ctx context.Context, userID string) ([]*models.ActionLog, error) {
	db, err := s.readDB()
	if err != nil {
		return nil, err
	}
	var logs []*models.ActionLog
	for _, l := range db.ActionLogs {
		if l.UserID == userID {
			logs = append(logs, l)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	return logs, nil
}

func (s *FileStore) ListSources(ctx context.Context, userID string) ([]*models.ResearchSource, error) {
	db, err := s.readDB()
	if err != nil {
		return nil, err
	}
	var sources []*models.ResearchSource
	for _, src := range db.Sources {
		if src.UserID == userID {
			sources = append(sources, src)
		}
	}
	sort.Slice(sources, func(i, j int) bool {
		return sources[i].CreatedAt.After(sources[j].CreatedAt)
	})
	return sources, nil
}

func (s *FileStore) CreateSource(ctx context.Context, userID string, input SourceCreateInput) (*models.ResearchSource, error) {
	if input.Type != models.SourceTypePerson && input.Type != models.SourceTypeKeyword {
		return nil, fmt.Errorf("%w: unknown source type %q", ErrValidation, input.Type)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	var source *models.ResearchSource
	err := s.withTx(func(db *database) error {
		id, err := newID()
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		source = &models.ResearchSource{
			ID:         id,
			UserID:     userID,
			Type:       input.Type,
			Name:       input.Name,
			ProfileURL: input.ProfileURL,
			Keyword:    input.Keyword,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		db.Sources[source.ID] = source
		return nil
	})
	if err != nil {
		return nil, err
	}
	return source, nil
}

func (s *FileStore) DeleteSource(ctx context.Context, userID, sourceID string) error {
	return s.withTx(func(db *database) error {
		src, ok := db.Sources[sourceID]
		if !ok || src.UserID != userID {
			return fmt.Errorf("%w: source %s", ErrNotFound, sourceID)
		}
		delete(db.Sources, sourceID)
		return nil
	})
}

func (s *FileStore) ListCaptures(ctx context.Context, userID string) ([]*models.CapturedPost, error) {
	db, err := s.readDB()
	if err != nil {
		return nil, err
	}
	var captures []*models.CapturedPost
	for _, c := range db.Captures {
		if c.UserID == userID {
			captures = append(captures, c)
		}
	}
	sort.Slice(captures, func(i, j int) bool {
		return captures[i].CapturedAt.After(captures[j].CapturedAt)
	})
	return captures, nil
}

func (s *FileStore) CreateCapture(ctx context.Context, userID string, input CaptureCreateInput) (*models.CapturedPost, error) {
	if strings.TrimSpace(input.AuthorName) == "" {
		return nil, fmt.Errorf("%w: authorName is required", ErrValidation)
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrValidation)
	}

	var capture *models.CapturedPost
	err := s.withTx(func(db *database) error {
		if input.SourceID != "" {
			src, ok := db.Sources[input.SourceID]
			if !ok || src.UserID != userID {
				return fmt.Errorf("%w: source %s", ErrNotFound, input.SourceID)
			}
		}

		id, err := newID()
		if err != nil {
			return err
		}
		capturedAt := time.Now().UTC()
		if input.CapturedAt != nil {
			capturedAt = input.CapturedAt.UTC()
		}
		capture = &models.CapturedPost{
			ID:         id,
			UserID:     userID,
			SourceID:   input.SourceID,
			AuthorName: input.AuthorName,
			AuthorURL:  input.AuthorURL,
			PostURL:    input.PostURL,
			Text:       input.Text,
			CapturedAt: capturedAt,
		}
		db.Captures[capture.ID] = capture
		return nil
	})
	if err != nil {
		return nil, err
	}
	return capture, nil
}

func (s *FileStore) DeleteCapture(ctx context.Context, userID, captureID string) error {
	return s.withTx(func(db *database) error {
		c, ok := db.Captures[captureID]
		if !ok || c.UserID != userID {
			return fmt.Errorf("%w: capture %s", ErrNotFound, captureID)
		}
		delete(db.Captures, captureID)
		return nil
	})
}

// ClaimDueSchedules selects up to limit schedules that are approved,
// queued, and due at now, and flips them to running. Selection and
// mutation share one transaction, so no other caller can observe a
// claimed schedule as queued afterwards.
func (s *FileStore) ClaimDueSchedules(ctx context.Context, now time.Time, limit int) ([]*models.Schedule, error) {
	if limit < 1 {
		limit = 1
	}

	var claimed []*models.Schedule
	err := s.withTx(func(db *database) error {
		var due []*models.Schedule
		for _, sched := range db.Schedules {
			if sched.ApprovalState != models.ApprovalStateApproved {
				continue
			}
			if sched.Status != models.ScheduleStatusQueued {
				continue
			}
			if sched.RunAt.After(now) {
				continue
			}
			due = append(due, sched)
		}

		sort.Slice(due, func(i, j int) bool {
			if due[i].RunAt.Equal(due[j].RunAt) {
				return due[i].ID < due[j].ID
			}
			return due[i].RunAt.Before(due[j].RunAt)
		})
		if len(due) > limit {
			due = due[:limit]
		}

		claimedAt := time.Now().UTC()
		for _, sched := range due {
			sched.Status = models.ScheduleStatusRunning
			sched.UpdatedAt = claimedAt

			logID, err := newID()
			if err != nil {
				return err
			}
			db.ActionLogs[logID] = &models.ActionLog{
				ID:         logID,
				UserID:     sched.UserID,
				ScheduleID: sched.ID,
				Type:       models.ActionTypePublish,
				Status:     models.ActionStatusOK,
				Message:    "Claimed by worker.",
				CreatedAt:  claimedAt,
			}
		}

		claimed = due
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

// MarkScheduleSucceeded finalizes a schedule, projects the draft to
// published, and writes the post receipt. A schedule that is already
// terminal cannot be finalized again, which keeps at most one post per
// schedule.
func (s *FileStore) MarkScheduleSucceeded(ctx context.Context, scheduleID string, result PublishResult) error {
	return s.withTx(func(db *database) error {
		sched, ok := db.Schedules[scheduleID]
		if !ok {
			return fmt.Errorf("%w: schedule %s", ErrNotFound, scheduleID)
		}
		if sched.IsTerminal() {
			return fmt.Errorf("%w: schedule %s already finalized as %s", ErrInvalidState, scheduleID, sched.Status)
		}

		executedAt := result.ExecutedAt.UTC()
		sched.Status = models.ScheduleStatusSucceeded
		sched.ExecutedAt = &executedAt
		sched.UpdatedAt = executedAt
		sched.LastError = ""

		if draft, ok := db.Drafts[sched.DraftID]; ok {
			draft.Status = models.DraftStatusPublished
			draft.UpdatedAt = executedAt
		}

		postID, err := newID()
		if err != nil {
			return err
		}
		db.Posts[postID] = &models.Post{
			ID:             postID,
			UserID:         sched.UserID,
			DraftID:        sched.DraftID,
			ScheduleID:     sched.ID,
			Provider:       models.ProviderLinkedIn,
			ProviderPostID: result.ProviderPostID,
			URL:            result.URL,
			PublishedAt:    executedAt,
		}

		logID, err := newID()
		if err != nil {
			return err
		}
		db.ActionLogs[logID] = &models.ActionLog{
			ID:         logID,
			UserID:     sched.UserID,
			ScheduleID: sched.ID,
			Type:       models.ActionTypePublish,
			Status:     models.ActionStatusOK,
			Message:    fmt.Sprintf("Published as %s.", result.ProviderPostID),
			CreatedAt:  executedAt,
		}
		return nil
	})
}

func (s *FileStore) MarkScheduleFailed(ctx context.Context, scheduleID string, result FailureResult) error {
	return s.withTx(func(db *database) error {
		sched, ok := db.Schedules[scheduleID]
		if !ok {
			return fmt.Errorf("%w: schedule %s", ErrNotFound, scheduleID)
		}
		if sched.IsTerminal() {
			return fmt.Errorf("%w: schedule %s already finalized as %s", ErrInvalidState, scheduleID, sched.Status)
		}

		executedAt := result.ExecutedAt.UTC()
		sched.Status = models.ScheduleStatusFailed
		sched.ExecutedAt = &executedAt
		sched.UpdatedAt = executedAt
		sched.LastError = result.Error

		logID, err := newID()
		if err != nil {
			return err
		}
		db.ActionLogs[logID] = &models.ActionLog{
			ID:         logID,
			UserID:     sched.UserID,
			ScheduleID: sched.ID,
			Type:       models.ActionTypePublish,
			Status:     models.ActionStatusError,
			Message:    result.Error,
			CreatedAt:  executedAt,
		}
		return nil
	})
}
