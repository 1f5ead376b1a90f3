package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Vajbratya/automnator/internal/models"
	"github.com/Vajbratya/automnator/internal/store"
	"github.com/Vajbratya/automnator/internal/transfer"
)

type ScheduleService interface {
	List(ctx context.Context, userID string) ([]*models.Schedule, error)
	Create(ctx context.Context, userID string, sc *transfer.ScheduleCreation) (*models.Schedule, error)
	ListPendingApproval(ctx context.Context, userID string) ([]*models.Schedule, error)
	Approve(ctx context.Context, userID, scheduleID string) (*models.Schedule, error)
	Reject(ctx context.Context, userID, scheduleID string) (*models.Schedule, error)
	ListPosts(ctx context.Context, userID string) ([]*models.Post, error)
	ListActionLogs(ctx context.Context, userID string) ([]*models.ActionLog, error)
}

type scheduleService struct {
	s store.Store
}

func NewScheduleService(s store.Store) ScheduleService {
	return &scheduleService{s: s}
}

func (ss *scheduleService) List(ctx context.Context, userID string) ([]*models.Schedule, error) {
	return ss.s.ListSchedules(ctx, userID)
}

func (ss *scheduleService) Create(ctx context.Context, userID string, sc *transfer.ScheduleCreation) (*models.Schedule, error) {
	runAt, err := time.Parse(time.RFC3339, sc.RunAt)
	if err != nil {
		err = fmt.Errorf("%w: invalid runAt datetime", store.ErrValidation)
		slog.Info(err.Error())
		return nil, err
	}

	return ss.s.CreateSchedule(ctx, userID, store.ScheduleCreateInput{
		DraftID:  sc.DraftID,
		RunAt:    runAt,
		Timezone: sc.Timezone,
	})
}

// ListPendingApproval returns the approval inbox: schedules still queued
// and awaiting a decision.
func (ss *scheduleService) ListPendingApproval(ctx context.Context, userID string) ([]*models.Schedule, error) {
	schedules, err := ss.s.ListSchedules(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending := make([]*models.Schedule, 0, len(schedules))
	for _, sched := range schedules {
		if sched.ApprovalState == models.ApprovalStatePending && sched.Status == models.ScheduleStatusQueued {
			pending = append(pending, sched)
		}
	}
	return pending, nil
}

func (ss *scheduleService) Approve(ctx context.Context, userID, scheduleID string) (*models.Schedule, error) {
	return ss.s.ApproveSchedule(ctx, userID, scheduleID)
}

func (ss *scheduleService) Reject(ctx context.Context, userID, scheduleID string) (*models.Schedule, error) {
	return ss.s.RejectSchedule(ctx, userID, scheduleID)
}

func (ss *scheduleService) ListPosts(ctx context.Context, userID string) ([]*models.Post, error) {
	return ss.s.ListPosts(ctx, userID)
}

func (ss *scheduleService) ListActionLogs(ctx context.Context, userID string) ([]*models.ActionLog, error) {
	return ss.s.ListActionLogs(ctx, userID)
}
