package models

import (
	"time"

	"gorm.io/gorm"
)

type JournalEntry struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	Improvement string    `gorm:"not null" json:"improvement"`
	Challenge   string    `gorm:"not null" json:"challenge"`
	Gratitude   string    `gorm:"not null" json:"gratitude"`
	Mood        string    `json:"mood"` // excellent|good|okay|struggling|difficult
}
