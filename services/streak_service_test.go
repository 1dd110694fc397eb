package services

import (
	"testing"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/models"

	"github.com/stretchr/testify/assert"
)

func dayAt(offset int, base time.Time) time.Time {
	return base.AddDate(0, 0, -offset)
}

func qualifyingLog(date time.Time) models.DayLog {
	done := models.TaskEntry{Status: models.TaskCompleted}
	log := models.NewDayLog(1, date)
	log.Tasks.Meditation = done
	log.Tasks.Gym = done
	log.Tasks.Study = done
	return log
}

func TestQualifies(t *testing.T) {
	today := time.Now()

	log := qualifyingLog(today)
	assert.True(t, Qualifies(log), "3 of 5 completed should qualify")

	log.Tasks.Study.Status = models.TaskSkipped
	assert.False(t, Qualifies(log), "skipped tasks must not count toward the bar")

	log.Tasks.Study.Status = models.TaskPending
	assert.False(t, Qualifies(log), "2 of 5 completed should not qualify")
}

func TestComputeStreakConsecutiveDays(t *testing.T) {
	today := time.Now()

	logs := []models.DayLog{
		qualifyingLog(dayAt(0, today)),
		qualifyingLog(dayAt(1, today)),
		qualifyingLog(dayAt(2, today)),
	}

	assert.Equal(t, 3, ComputeStreak(logs, today))
}

func TestComputeStreakBreaksOnGap(t *testing.T) {
	today := time.Now()

	// Day offset 2 is missing entirely; the walk must stop at 2.
	logs := []models.DayLog{
		qualifyingLog(dayAt(0, today)),
		qualifyingLog(dayAt(1, today)),
		qualifyingLog(dayAt(3, today)),
		qualifyingLog(dayAt(4, today)),
	}

	assert.Equal(t, 2, ComputeStreak(logs, today))
}

func TestComputeStreakBreaksOnNonQualifyingDay(t *testing.T) {
	today := time.Now()

	partial := models.NewDayLog(1, dayAt(1, today))
	partial.Tasks.Gym.Status = models.TaskCompleted

	logs := []models.DayLog{
		qualifyingLog(dayAt(0, today)),
		partial,
		qualifyingLog(dayAt(2, today)),
	}

	assert.Equal(t, 1, ComputeStreak(logs, today))
}

func TestComputeStreakTodayNotLoggedYet(t *testing.T) {
	today := time.Now()

	// A streak that ended yesterday must read 0 today: the walk anchors at
	// today and the first log is already one day off.
	logs := []models.DayLog{
		qualifyingLog(dayAt(1, today)),
		qualifyingLog(dayAt(2, today)),
	}

	assert.Equal(t, 0, ComputeStreak(logs, today))
}

func TestComputeStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, ComputeStreak(nil, time.Now()))
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2026, 1, 15, 13, 45, 0, 0, time.Local)

	assert.Equal(t, 0, daysBetween(base, base))
	assert.Equal(t, 1, daysBetween(base.AddDate(0, 0, -1), base))
	// Time of day must not matter; only calendar days count.
	late := time.Date(2026, 1, 14, 23, 59, 0, 0, time.Local)
	assert.Equal(t, 1, daysBetween(late, base))
}
