package models

import (
	"time"

	"gorm.io/gorm"
)

// Task status values for the five core habit tasks.
const (
	TaskPending   = "pending"
	TaskCompleted = "completed"
	TaskSkipped   = "skipped"
)

// TaskEntry is the per-task state: a single current status, no history.
type TaskEntry struct {
	Status   string `json:"status"`
	Duration int    `json:"duration"` // minutes
	Notes    string `json:"notes"`
}

// DayTasks is a closed record over the five fixed tasks. Modeled as named
// fields rather than a map so a missing task is a compile error.
type DayTasks struct {
	Meditation TaskEntry `gorm:"embedded;embeddedPrefix:meditation_" json:"meditation"`
	Gym        TaskEntry `gorm:"embedded;embeddedPrefix:gym_" json:"gym"`
	Study      TaskEntry `gorm:"embedded;embeddedPrefix:study_" json:"study"`
	Journal    TaskEntry `gorm:"embedded;embeddedPrefix:journal_" json:"journal"`
	Reading    TaskEntry `gorm:"embedded;embeddedPrefix:reading_" json:"reading"`
}

// All returns the task entries in their fixed order.
func (t DayTasks) All() []TaskEntry {
	return []TaskEntry{t.Meditation, t.Gym, t.Study, t.Journal, t.Reading}
}

// CompletedCount counts tasks whose status is completed.
func (t DayTasks) CompletedCount() int {
	n := 0
	for _, task := range t.All() {
		if task.Status == TaskCompleted {
			n++
		}
	}
	return n
}

type MorningRoutine struct {
	BrushTeeth    bool `json:"brushTeeth"`
	Skincare      bool `json:"skincare"`
	UnderEyeCream bool `json:"underEyeCream"`
	Moisturizer   bool `json:"moisturizer"`
	Sunscreen     bool `json:"sunscreen"`
}

type EveningRoutine struct {
	BrushTeeth    bool `json:"brushTeeth"`
	Skincare      bool `json:"skincare"`
	UnderEyeCream bool `json:"underEyeCream"`
	Moisturizer   bool `json:"moisturizer"`
}

// DayLog is the per-day habit record. One row per user per calendar day,
// lazily created and never deleted by the application.
type DayLog struct {
	gorm.Model
	UserID         uint           `gorm:"uniqueIndex:idx_daylog_user_date;not null" json:"userId"`
	Date           time.Time      `gorm:"uniqueIndex:idx_daylog_user_date;not null" json:"date"`
	Tasks          DayTasks       `gorm:"embedded" json:"tasks"`
	MorningRoutine MorningRoutine `gorm:"embedded;embeddedPrefix:morning_" json:"morningRoutine"`
	EveningRoutine EveningRoutine `gorm:"embedded;embeddedPrefix:evening_" json:"eveningRoutine"`
	Notes          string         `json:"notes"`
	Rating         int            `json:"rating"` // 1-5
}

// NewDayLog returns a DayLog with every task pending.
func NewDayLog(userID uint, date time.Time) DayLog {
	pending := TaskEntry{Status: TaskPending}
	return DayLog{
		UserID: userID,
		Date:   date,
		Tasks: DayTasks{
			Meditation: pending,
			Gym:        pending,
			Study:      pending,
			Journal:    pending,
			Reading:    pending,
		},
	}
}
