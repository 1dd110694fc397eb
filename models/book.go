package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookReading   = "reading"
	BookCompleted = "completed"
	BookPaused    = "paused"
)

type Book struct {
	gorm.Model
	UserID         uint           `gorm:"index;not null" json:"userId"`
	Title          string         `gorm:"not null" json:"title"`
	Author         string         `json:"author"`
	TotalPages     int            `gorm:"not null" json:"totalPages"`
	CurrentPage    int            `json:"currentPage"`
	Status         string         `gorm:"default:reading" json:"status"`
	StartDate      time.Time      `json:"startDate"`
	CompletionDate *time.Time     `json:"completionDate"`
	Notes          []BookNote     `json:"notes"`
	DailyReadings  []DailyReading `json:"dailyReadings"`
}

type BookNote struct {
	gorm.Model
	BookID  uint   `gorm:"index;not null" json:"-"`
	Page    int    `json:"page"`
	Content string `json:"content"`
}

type DailyReading struct {
	gorm.Model
	BookID    uint      `gorm:"index;not null" json:"-"`
	Date      time.Time `json:"date"`
	PagesRead int       `json:"pagesRead"`
	Duration  int       `json:"duration"` // minutes
	Notes     string    `json:"notes"`
}

// CompletionPercentage is derived from page progress, never stored.
func (b Book) CompletionPercentage() int {
	if b.TotalPages <= 0 {
		return 0
	}
	return int(float64(b.CurrentPage)/float64(b.TotalPages)*100 + 0.5)
}
