package services

import (
	"testing"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeScheduleTotalsCompletionRate(t *testing.T) {
	s := &models.DailySchedule{
		Activities: []models.ScheduleActivity{
			{Completed: true},
			{Completed: true},
			{Completed: false},
			{Completed: false},
		},
	}

	RecomputeScheduleTotals(s)
	assert.Equal(t, 50, s.CompletionRate)

	s.Activities[2].Completed = true
	RecomputeScheduleTotals(s)
	assert.Equal(t, 75, s.CompletionRate)
}

func TestRecomputeScheduleTotalsEmpty(t *testing.T) {
	s := &models.DailySchedule{}
	RecomputeScheduleTotals(s)

	assert.Equal(t, 0, s.CompletionRate)
	assert.Equal(t, 0, s.TotalPomodoros)
	assert.Equal(t, 0, s.TotalFocusTime)
}

func TestRecomputeScheduleTotalsFocusTime(t *testing.T) {
	s := &models.DailySchedule{
		PomodoroSessions: []models.PomodoroSession{
			{Duration: 25, Completed: true},
			{Duration: 25, Completed: true},
			{Duration: 15, Completed: false, Interrupted: true},
		},
	}

	RecomputeScheduleTotals(s)
	assert.Equal(t, 2, s.TotalPomodoros, "interrupted sessions must not count")
	assert.Equal(t, 50, s.TotalFocusTime)
}

func TestApplyActivityPatchStampsCompletionOnce(t *testing.T) {
	first := time.Date(2026, 1, 10, 8, 0, 0, 0, time.Local)
	later := first.Add(2 * time.Hour)

	a := &models.ScheduleActivity{}
	done := true
	undone := false

	ApplyActivityPatch(a, ActivityPatch{Completed: &done}, first)
	require.NotNil(t, a.CompletedAt)
	assert.True(t, a.CompletedAt.Equal(first))

	ApplyActivityPatch(a, ActivityPatch{Completed: &undone}, later)
	assert.False(t, a.Completed)

	ApplyActivityPatch(a, ActivityPatch{Completed: &done}, later)
	assert.True(t, a.Completed)
	assert.True(t, a.CompletedAt.Equal(first), "completedAt must keep the first stamp")
}

func TestApplyActivityPatchPartialFields(t *testing.T) {
	a := &models.ScheduleActivity{Notes: "old", Duration: 30}
	notes := "new"
	rating := 4

	ApplyActivityPatch(a, ActivityPatch{Notes: &notes, Rating: &rating}, time.Now())

	assert.Equal(t, "new", a.Notes)
	assert.Equal(t, 4, a.Rating)
	assert.Equal(t, 30, a.Duration, "unset fields must stay untouched")
	assert.False(t, a.Completed)
	assert.Nil(t, a.CompletedAt)
}

func TestDefaultActivitiesIsACopy(t *testing.T) {
	a := DefaultActivities()
	require.Len(t, a, 9)

	a[0].Completed = true
	b := DefaultActivities()
	assert.False(t, b[0].Completed, "template must not be shared between schedules")
}
