package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Vajbratya/automnator/internal/generator"
	"github.com/Vajbratya/automnator/internal/models"
	"github.com/Vajbratya/automnator/internal/store"
	"github.com/Vajbratya/automnator/internal/transfer"
)

const maxPlannedPosts = 10

type PlannerService interface {
	// GeneratePlan creates a batch of drafts and schedules, one per
	// planned post, spread over upcoming business days.
	GeneratePlan(ctx context.Context, userID string, pr *transfer.PlanRequest) ([]*transfer.PlannedItem, error)
}

type plannerService struct {
	s store.Store
}

func NewPlannerService(s store.Store) PlannerService {
	return &plannerService{s: s}
}

// nextBusinessDayAt returns the offset-th weekday at hour:minute after
// from, skipping Saturdays and Sundays.
func nextBusinessDayAt(from time.Time, hour, minute, offset int) time.Time {
	d := time.Date(from.Year(), from.Month(), from.Day(), hour, minute, 0, 0, from.Location())
	if !d.After(from) {
		d = d.AddDate(0, 0, 1)
	}
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}

	for i := 0; i < offset; i++ {
		d = d.AddDate(0, 0, 1)
		for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			d = d.AddDate(0, 0, 1)
		}
	}
	return d
}

func (p *plannerService) GeneratePlan(ctx context.Context, userID string, pr *transfer.PlanRequest) ([]*transfer.PlannedItem, error) {
	if pr.Niche == "" {
		err := errors.New("niche is required")
		slog.Info(err.Error())
		return nil, err
	}

	postCount := pr.PostCount
	if postCount < 1 {
		postCount = 3
	}
	if postCount > maxPlannedPosts {
		postCount = maxPlannedPosts
	}

	language := pr.Language
	if language == "" {
		language = models.LanguagePortuguese
	}
	timezone := pr.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	hour := pr.Hour
	if hour < 0 || hour > 23 {
		hour = 9
	}
	minute := pr.Minute
	if minute < 0 || minute > 59 {
		minute = 0
	}
	autoApprove := true
	if pr.AutoApprove != nil {
		autoApprove = *pr.AutoApprove
	}

	now := time.Now().UTC()
	created := make([]*transfer.PlannedItem, 0, postCount)
	for i := 0; i < postCount; i++ {
		post := generator.GeneratePost(generator.GenerateInput{
			Topic:    pr.Niche,
			Language: language,
			Audience: pr.Goal,
			Tone:     pr.Tone,
		})

		draft, err := p.s.CreateDraft(ctx, userID, store.DraftCreateInput{
			Title:    post.Hook,
			Content:  post.FullText,
			Language: language,
		})
		if err != nil {
			return created, err
		}

		runAt := nextBusinessDayAt(now, hour, minute, i)
		schedule, err := p.s.CreateSchedule(ctx, userID, store.ScheduleCreateInput{
			DraftID:  draft.ID,
			RunAt:    runAt,
			Timezone: timezone,
		})
		if err != nil {
			return created, err
		}

		if autoApprove {
			if _, err := p.s.ApproveSchedule(ctx, userID, schedule.ID); err != nil {
				return created, err
			}
		}

		created = append(created, &transfer.PlannedItem{
			DraftID:    draft.ID,
			ScheduleID: schedule.ID,
			RunAt:      runAt.Format(time.RFC3339),
		})
	}

	return created, nil
}
