package models

import (
	"time"

	"gorm.io/gorm"
)

type StudySession struct {
	gorm.Model
	UserID               uint      `gorm:"index;not null" json:"userId"`
	Topic                string    `gorm:"not null" json:"topic"`
	Category             string    `gorm:"not null" json:"category"` // Cloud & DevOps|Software Architecture|System Design|Projects|LeetCode|Other
	Duration             int       `gorm:"not null" json:"duration"` // minutes
	Notes                string    `json:"notes"`
	CompletionPercentage int       `json:"completionPercentage"` // 0-100
	Date                 time.Time `gorm:"index;not null" json:"date"`
}
