package services

import (
	"errors"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/config"
	"github.com/Gokulsuresh1918/winter-arc/models"

	"gorm.io/gorm"
)

// A day qualifies for the habit streak when at least 3 of its 5 tasks are
// completed. Skipped tasks never count.
const streakQualifyingTasks = 3

// streakHistoryLimit caps how far back the streak walk looks.
const streakHistoryLimit = 100

// Qualifies reports whether a day log meets the 3-of-5 completion bar.
func Qualifies(log models.DayLog) bool {
	return log.Tasks.CompletedCount() >= streakQualifyingTasks
}

// ComputeStreak walks day logs sorted descending by date and counts
// consecutive qualifying calendar days ending at (or immediately before)
// today. Any gap or non-qualifying day stops the walk.
func ComputeStreak(logs []models.DayLog, today time.Time) int {
	todayStart := dayStartLocal(today)

	streak := 0
	for _, log := range logs {
		if !Qualifies(log) {
			break
		}
		if daysBetween(log.Date, todayStart) != streak {
			break
		}
		streak++
	}
	return streak
}

// GetStreak loads the user's recent day logs and computes the current streak.
// A user with no logs has streak 0, not an error.
func GetStreak(userID uint) (int, error) {
	var logs []models.DayLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		Limit(streakHistoryLimit).
		Find(&logs).Error
	if err != nil {
		return 0, err
	}
	return ComputeStreak(logs, time.Now()), nil
}

// GetOrCreateTodayLog lazily creates today's DayLog with all tasks pending.
func GetOrCreateTodayLog(userID uint) (*models.DayLog, error) {
	today := dayStartLocal(time.Now())

	var log models.DayLog
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, today).
		First(&log).Error
	if err == nil {
		return &log, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	log = models.NewDayLog(userID, today)
	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// ListDayLogs returns the user's logs, optionally bounded by a date range,
// newest first.
func ListDayLogs(userID uint, startDate, endDate *time.Time) ([]models.DayLog, error) {
	q := config.DB.Where("user_id = ?", userID)
	if startDate != nil && endDate != nil {
		q = q.Where("date >= ? AND date <= ?", *startDate, *endDate)
	}

	var logs []models.DayLog
	err := q.Order("date desc").Find(&logs).Error
	return logs, err
}

// DayLogUpdate is a partial merge of the mutable DayLog fields. Nil task
// entries leave the stored state untouched; present ones overwrite it.
type DayLogUpdate struct {
	Tasks *struct {
		Meditation *models.TaskEntry `json:"meditation"`
		Gym        *models.TaskEntry `json:"gym"`
		Study      *models.TaskEntry `json:"study"`
		Journal    *models.TaskEntry `json:"journal"`
		Reading    *models.TaskEntry `json:"reading"`
	} `json:"tasks"`
	MorningRoutine *models.MorningRoutine `json:"morningRoutine"`
	EveningRoutine *models.EveningRoutine `json:"eveningRoutine"`
	Notes          *string                `json:"notes"`
	Rating         *int                   `json:"rating"`
}

// UpdateDayLog applies a shallow merge to the log owned by userID. Task
// status changes are direct overwrites; no transition is forbidden and no
// history is kept.
func UpdateDayLog(userID, logID uint, update DayLogUpdate) (*models.DayLog, error) {
	var log models.DayLog
	err := config.DB.
		Where("id = ? AND user_id = ?", logID, userID).
		First(&log).Error
	if err != nil {
		return nil, err
	}

	if update.Tasks != nil {
		if update.Tasks.Meditation != nil {
			log.Tasks.Meditation = *update.Tasks.Meditation
		}
		if update.Tasks.Gym != nil {
			log.Tasks.Gym = *update.Tasks.Gym
		}
		if update.Tasks.Study != nil {
			log.Tasks.Study = *update.Tasks.Study
		}
		if update.Tasks.Journal != nil {
			log.Tasks.Journal = *update.Tasks.Journal
		}
		if update.Tasks.Reading != nil {
			log.Tasks.Reading = *update.Tasks.Reading
		}
	}
	if update.MorningRoutine != nil {
		log.MorningRoutine = *update.MorningRoutine
	}
	if update.EveningRoutine != nil {
		log.EveningRoutine = *update.EveningRoutine
	}
	if update.Notes != nil {
		log.Notes = *update.Notes
	}
	if update.Rating != nil {
		log.Rating = *update.Rating
	}

	if err := config.DB.Save(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}
