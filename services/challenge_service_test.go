package services

import (
	"testing"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChallenge(startDaysAgo int, now time.Time) *models.Challenge {
	return &models.Challenge{
		UserID:     1,
		Type:       models.ChallengeNoFap,
		StartDate:  now.AddDate(0, 0, -startDaysAgo),
		Status:     models.ChallengeActive,
		Milestones: models.DefaultMilestones(),
	}
}

func TestRecalculateStreakElapsedDays(t *testing.T) {
	now := time.Now()

	ch := newChallenge(10, now)
	assert.Equal(t, 10, RecalculateStreak(ch, now))
	assert.Equal(t, 10, ch.CurrentStreak)
	assert.Equal(t, 10, ch.LongestStreak)
}

func TestRecalculateStreakLongestRatchets(t *testing.T) {
	now := time.Now()

	ch := newChallenge(5, now)
	ch.LongestStreak = 42

	RecalculateStreak(ch, now)
	assert.Equal(t, 5, ch.CurrentStreak)
	assert.Equal(t, 42, ch.LongestStreak, "longest streak must never decrease")
}

func TestUnlockMilestones(t *testing.T) {
	now := time.Now()

	ch := newChallenge(30, now)
	RecalculateStreak(ch, now)

	unlocked := UnlockMilestones(ch, now)
	require.Len(t, unlocked, 3) // 7, 14, 30

	for _, m := range ch.Milestones {
		if m.Days <= 30 {
			assert.True(t, m.Achieved, "milestone %d should be achieved", m.Days)
			require.NotNil(t, m.AchievedDate)
		} else {
			assert.False(t, m.Achieved, "milestone %d should not be achieved", m.Days)
			assert.Nil(t, m.AchievedDate)
		}
	}

	// A second pass unlocks nothing new.
	assert.Empty(t, UnlockMilestones(ch, now))
}

func TestApplyReset(t *testing.T) {
	now := time.Now()

	ch := newChallenge(60, now)
	RecalculateStreak(ch, now)
	UnlockMilestones(ch, now)
	require.Equal(t, 60, ch.CurrentStreak)

	ApplyReset(ch, "relapse", now)

	assert.Equal(t, 0, ch.CurrentStreak)
	assert.Equal(t, 60, ch.LongestStreak, "reset must preserve longest streak")
	assert.Equal(t, models.ChallengeActive, ch.Status)
	assert.True(t, ch.StartDate.Equal(now))

	require.Len(t, ch.Resets, 1)
	assert.Equal(t, "relapse", ch.Resets[0].Reason)
	assert.Equal(t, 60, ch.Resets[0].StreakAtReset)

	for _, m := range ch.Milestones {
		assert.False(t, m.Achieved)
		assert.Nil(t, m.AchievedDate)
	}
}

func TestApplyResetDefaultReason(t *testing.T) {
	now := time.Now()

	ch := newChallenge(3, now)
	RecalculateStreak(ch, now)
	ApplyReset(ch, "", now)

	require.Len(t, ch.Resets, 1)
	assert.Equal(t, "Manual reset", ch.Resets[0].Reason)
}

func TestDefaultMilestones(t *testing.T) {
	milestones := models.DefaultMilestones()
	require.Len(t, milestones, len(models.DefaultMilestoneDays))
	for i, m := range milestones {
		assert.Equal(t, models.DefaultMilestoneDays[i], m.Days)
		assert.False(t, m.Achieved)
	}
}
