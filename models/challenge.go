package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ChallengeNoFap            = "nofap"
	ChallengeSocialMediaDetox = "social-media-detox"
	ChallengeCustom           = "custom"
)

const (
	ChallengeActive    = "active"
	ChallengePaused    = "paused"
	ChallengeCompleted = "completed"
	ChallengeFailed    = "failed"
)

// DefaultMilestoneDays are the thresholds seeded on every new challenge.
var DefaultMilestoneDays = []int{7, 14, 30, 60, 90, 180, 365}

// Challenge is an open-ended streak tracker (abstinence, digital detox, …).
// The streak is a function of elapsed days since StartDate, not of dailyLogs.
type Challenge struct {
	gorm.Model
	UserID        uint                 `gorm:"index;not null" json:"userId"`
	Type          string               `gorm:"not null" json:"type"`
	Name          string               `json:"name"`
	StartDate     time.Time            `gorm:"not null" json:"startDate"`
	CurrentStreak int                  `json:"currentStreak"`
	LongestStreak int                  `json:"longestStreak"`
	Status        string               `gorm:"default:active" json:"status"`
	Resets        []ChallengeReset     `json:"resets"`
	Milestones    []ChallengeMilestone `json:"milestones"`
	DailyLogs     []ChallengeDailyLog  `json:"dailyLogs"`
}

type ChallengeReset struct {
	gorm.Model
	ChallengeID   uint      `gorm:"index;not null" json:"-"`
	Date          time.Time `json:"date"`
	Reason        string    `json:"reason"`
	StreakAtReset int       `json:"streakAtReset"`
}

type ChallengeMilestone struct {
	gorm.Model
	ChallengeID  uint       `gorm:"index;not null" json:"-"`
	Days         int        `json:"days"`
	Achieved     bool       `json:"achieved"`
	AchievedDate *time.Time `json:"achievedDate"`
}

type ChallengeDailyLog struct {
	gorm.Model
	ChallengeID uint      `gorm:"index;not null" json:"-"`
	Date        time.Time `json:"date"`
	Success     bool      `json:"success"`
	Mood        string    `json:"mood"`
	Notes       string    `json:"notes"`
	ScreenTime  int       `json:"screenTime"` // minutes, for social media detox
}

// DefaultMilestones builds the fixed milestone set for a new challenge.
func DefaultMilestones() []ChallengeMilestone {
	milestones := make([]ChallengeMilestone, 0, len(DefaultMilestoneDays))
	for _, days := range DefaultMilestoneDays {
		milestones = append(milestones, ChallengeMilestone{Days: days})
	}
	return milestones
}
