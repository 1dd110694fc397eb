package models

import (
	"time"

	"gorm.io/gorm"
)

type BodyMetrics struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	Weight      float64   `gorm:"not null" json:"weight"` // kg
	Height      float64   `gorm:"not null" json:"height"` // cm
	BMI         float64   `json:"bmi"`
	BMICategory string    `gorm:"default:Normal" json:"bmiCategory"`
	BodyFat     float64   `json:"bodyFat"`    // percentage
	MuscleMass  float64   `json:"muscleMass"` // kg
	Notes       string    `json:"notes"`
}
