package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name          string    `gorm:"not null" json:"name"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	Password      string    `gorm:"not null" json:"-"`
	Goal          string    `gorm:"default:'₹10 LPA+, Lean Body, Cloud Architect'" json:"goal"`
	WakeTime      string    `gorm:"default:'05:30'" json:"wakeTime"`
	SleepTime     string    `gorm:"default:'00:30'" json:"sleepTime"`
	FocusQuote    string    `gorm:"default:'Discipline over motivation. Consistency over intensity.'" json:"focusQuote"`
	CurrentStreak int       `json:"currentStreak"`
	LongestStreak int       `json:"longestStreak"`
	MFAEnabled    bool      `json:"mfaEnabled"`
	MFACode       string    `json:"-"`
	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`
	Badges        []Badge   `json:"badges"`
}

type Badge struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"-"`
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	EarnedAt time.Time `json:"earnedAt"`
}
