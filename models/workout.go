package models

import (
	"time"

	"gorm.io/gorm"
)

type Exercise struct {
	gorm.Model
	WorkoutID uint    `gorm:"index;not null" json:"-"`
	Name      string  `gorm:"not null" json:"name"`
	Type      string  `json:"type"` // dumbbell|barbell|bodyweight|machine|cable|other
	Sets      int     `json:"sets"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	RestTime  int     `json:"restTime"` // seconds
	Notes     string  `json:"notes"`
}

type WorkoutPhoto struct {
	gorm.Model
	WorkoutID uint   `gorm:"index;not null" json:"-"`
	URL       string `gorm:"not null" json:"url"`
}

type Workout struct {
	gorm.Model
	UserID    uint           `gorm:"index;not null" json:"userId"`
	Date      time.Time      `gorm:"index;not null" json:"date"`
	Split     string         `json:"split"` // chest-triceps|back-biceps|legs|shoulders|abs-core|full-body|push|pull|cardio|custom
	Exercises []Exercise     `json:"exercises"`
	Duration  int            `gorm:"not null" json:"duration"` // minutes
	Weight    float64        `json:"weight"`                   // body weight in kg
	Calories  float64        `json:"calories"`
	Protein   float64        `json:"protein"`   // grams
	Intensity string         `json:"intensity"` // light|moderate|intense|max
	Mood      string         `json:"mood"`
	Notes     string         `json:"notes"`
	Photos    []WorkoutPhoto `json:"photos"`
}
