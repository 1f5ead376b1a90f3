package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vajbratya/automnator/internal/models"
	"github.com/Vajbratya/automnator/internal/store"
	"github.com/Vajbratya/automnator/internal/transfer"
)

func TestNextBusinessDayAt_SkipsWeekend(t *testing.T) {
	// Friday 2026-01-02 10:00 UTC.
	friday := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	d0 := nextBusinessDayAt(friday, 9, 0, 0)
	// 09:00 already passed on Friday, so the first slot lands on Monday.
	assert.Equal(t, time.Monday, d0.Weekday())
	assert.Equal(t, 9, d0.Hour())

	d1 := nextBusinessDayAt(friday, 9, 0, 1)
	assert.Equal(t, time.Tuesday, d1.Weekday())
}

func TestNextBusinessDayAt_SameDaySlotStillAhead(t *testing.T) {
	// Wednesday 2026-01-07 08:00 UTC; a 09:00 slot is still ahead today.
	wednesday := time.Date(2026, 1, 7, 8, 0, 0, 0, time.UTC)

	d := nextBusinessDayAt(wednesday, 9, 0, 0)
	assert.Equal(t, wednesday.Day(), d.Day())
	assert.Equal(t, 9, d.Hour())
}

func TestGeneratePlan_CreatesApprovedSchedules(t *testing.T) {
	fileStore := store.NewFileStore(filepath.Join(t.TempDir(), "db.json"))
	ctx := context.Background()

	user, err := fileStore.GetOrCreateUserByEmail(ctx, "planner@example.com")
	require.NoError(t, err)

	planner := NewPlannerService(fileStore)
	created, err := planner.GeneratePlan(ctx, user.ID, &transfer.PlanRequest{
		Niche:     "devtools",
		Language:  models.LanguageEnglish,
		PostCount: 3,
	})
	require.NoError(t, err)
	require.Len(t, created, 3)

	schedules, err := fileStore.ListSchedules(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, schedules, 3)
	for _, sched := range schedules {
		assert.Equal(t, models.ApprovalStateApproved, sched.ApprovalState)
		assert.Equal(t, models.ScheduleStatusQueued, sched.Status)
		assert.True(t, sched.RunAt.After(time.Now()), "planned schedules run in the future")
	}

	drafts, err := fileStore.ListDrafts(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, drafts, 3)
}

func TestGeneratePlan_AutoApproveOff(t *testing.T) {
	fileStore := store.NewFileStore(filepath.Join(t.TempDir(), "db.json"))
	ctx := context.Background()

	user, err := fileStore.GetOrCreateUserByEmail(ctx, "manual@example.com")
	require.NoError(t, err)

	off := false
	planner := NewPlannerService(fileStore)
	created, err := planner.GeneratePlan(ctx, user.ID, &transfer.PlanRequest{
		Niche:       "carreira",
		PostCount:   1,
		AutoApprove: &off,
	})
	require.NoError(t, err)
	require.Len(t, created, 1)

	schedules, err := fileStore.ListSchedules(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, models.ApprovalStatePending, schedules[0].ApprovalState)
}

func TestGeneratePlan_RequiresNiche(t *testing.T) {
	fileStore := store.NewFileStore(filepath.Join(t.TempDir(), "db.json"))
	planner := NewPlannerService(fileStore)

	_, err := planner.GeneratePlan(context.Background(), "u1", &transfer.PlanRequest{})
	require.Error(t, err)
}
