package models

import (
	"time"

	"gorm.io/gorm"
)

// MorningCheckIn is a one-shot sub-record; re-submission overwrites it.
type MorningCheckIn struct {
	Completed    bool       `json:"completed"`
	Time         *time.Time `json:"time"`
	SleepQuality string     `json:"sleepQuality"` // excellent|good|fair|poor|terrible
	SleepHours   float64    `json:"sleepHours"`
	Mood         string     `json:"mood"` // energized|good|neutral|tired|exhausted
	Reflection   string     `json:"reflection"`
	Gratitude    string     `json:"gratitude"`
}

type ScheduleActivity struct {
	gorm.Model
	ScheduleID  uint       `gorm:"index;not null" json:"-"`
	Time        string     `json:"time"`
	Activity    string     `json:"activity"`
	Details     string     `json:"details"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	Notes       string     `json:"notes"`
	Duration    int        `json:"duration"` // actual minutes spent
	Rating      int        `json:"rating"`   // 1-5 stars
	FocusScore  int        `json:"focusScore"`
}

type PomodoroSession struct {
	gorm.Model
	ScheduleID  uint       `gorm:"index;not null" json:"-"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Duration    int        `json:"duration"` // minutes (25, 50, …)
	Task        string     `json:"task"`
	Completed   bool       `json:"completed"`
	Interrupted bool       `json:"interrupted"`
}

// DailySchedule is the per-day activity template plus focus-timer sessions.
// CompletionRate, TotalFocusTime and TotalPomodoros are derived fields,
// recomputed wholesale before every persist and never trusted from clients.
type DailySchedule struct {
	gorm.Model
	UserID            uint               `gorm:"uniqueIndex:idx_schedule_user_date;not null" json:"userId"`
	Date              time.Time          `gorm:"uniqueIndex:idx_schedule_user_date;not null" json:"date"`
	MorningCheckIn    MorningCheckIn     `gorm:"embedded;embeddedPrefix:checkin_" json:"morningCheckIn"`
	Activities        []ScheduleActivity `gorm:"foreignKey:ScheduleID" json:"activities"`
	PomodoroSessions  []PomodoroSession  `gorm:"foreignKey:ScheduleID" json:"pomodoroSessions"`
	TotalFocusTime    int                `json:"totalFocusTime"`
	TotalPomodoros    int                `json:"totalPomodoros"`
	CompletionRate    int                `json:"completionRate"`
	ProductivityScore int                `json:"productivityScore"`
}
