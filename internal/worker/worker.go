// Package worker drives claimed schedules to a terminal state: claim due
// approved schedules, publish each draft, then finalize success or failure
// per item. A batch always runs to completion once claimed; the stop
// signal is only honored between ticks.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Vajbratya/automnator/internal/publisher"
	"github.com/Vajbratya/automnator/internal/store"
)

type Result struct {
	Claimed   int      `json:"claimed"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

type Worker struct {
	store store.Store
	pub   publisher.Publisher
	limit int
}

func New(s store.Store, pub publisher.Publisher, limit int) *Worker {
	if limit < 1 {
		limit = 10
	}
	return &Worker{store: s, pub: pub, limit: limit}
}

// RunOnce performs exactly one claim-and-process cycle. It is safe to call
// repeatedly; claim exclusivity comes from the store's transaction
// serialization. One schedule's failure never aborts the rest of the
// batch.
func (w *Worker) RunOnce(ctx context.Context) (*Result, error) {
	claimed, err := w.store.ClaimDueSchedules(ctx, time.Now().UTC(), w.limit)
	if err != nil {
		return nil, err
	}

	result := &Result{Claimed: len(claimed)}
	for _, sched := range claimed {
		executedAt := time.Now().UTC()
		if err := w.publishOne(ctx, sched.ID, sched.UserID, sched.DraftID, executedAt); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", sched.ID, err))
			slog.Error("schedule failed", "schedule_id", sched.ID, "error", err)

			if markErr := w.store.MarkScheduleFailed(ctx, sched.ID, store.FailureResult{
				ExecutedAt: executedAt,
				Error:      err.Error(),
			}); markErr != nil {
				slog.Error("unable to mark schedule failed", "schedule_id", sched.ID, "error", markErr)
			}
			continue
		}
		result.Succeeded++
	}
	return result, nil
}

func (w *Worker) publishOne(ctx context.Context, scheduleID, userID, draftID string, executedAt time.Time) error {
	user, err := w.store.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user not found for schedule: %w", err)
	}

	draft, err := w.store.GetDraft(ctx, userID, draftID)
	if err != nil {
		return fmt.Errorf("draft not found for schedule: %w", err)
	}
	if strings.TrimSpace(draft.Content) == "" {
		return fmt.Errorf("draft content is empty")
	}

	res, err := w.pub.CreatePost(ctx, user.Email, draft.Content)
	if err != nil {
		return err
	}

	return w.store.MarkScheduleSucceeded(ctx, scheduleID, store.PublishResult{
		ExecutedAt:     executedAt,
		ProviderPostID: res.PostID,
		URL:            res.URL,
	})
}

// Run polls on a fixed interval until ctx is canceled. Cancellation is
// checked between ticks only, so a claimed batch is never abandoned by a
// clean shutdown.
func (w *Worker) Run(ctx context.Context, interval time.Duration) {
	slog.Info("worker started", "interval", interval, "limit", w.limit)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		result, err := w.RunOnce(ctx)
		if err != nil {
			slog.Error("worker tick failed", "error", err)
		} else if result.Claimed > 0 {
			slog.Info("worker tick",
				"claimed", result.Claimed,
				"succeeded", result.Succeeded,
				"failed", result.Failed)
		}

		select {
		case <-ctx.Done():
			slog.Info("worker stopped")
			return
		case <-ticker.C:
		}
	}
}
