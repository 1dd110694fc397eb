package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

type Meal struct {
	gorm.Model
	FoodLogID uint    `gorm:"index;not null" json:"-"`
	Slot      string  `gorm:"not null" json:"slot"` // breakfast|lunch|dinner|snack
	Name      string  `json:"name"`
	Items     string  `json:"items"` // comma-separated
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fats      float64 `json:"fats"`
	Notes     string  `json:"notes"`
}

type NutritionGoals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Water    float64 `json:"water"`
}

// FoodLog is the per-day nutrition record. Totals are recomputed from the
// meal list before each persist.
type FoodLog struct {
	gorm.Model
	UserID       uint           `gorm:"uniqueIndex:idx_foodlog_user_date;not null" json:"userId"`
	Date         time.Time      `gorm:"uniqueIndex:idx_foodlog_user_date;not null" json:"date"`
	Meals         []Meal         `json:"meals"`
	WaterIntake   float64        `json:"waterIntake"` // liters
	TotalCalories float64        `json:"totalCalories"`
	TotalProtein  float64        `json:"totalProtein"`
	TotalCarbs    float64        `json:"totalCarbs"`
	TotalFats     float64        `json:"totalFats"`
	Goals         NutritionGoals `gorm:"embedded;embeddedPrefix:goal_" json:"goals"`
	Notes         string         `json:"notes"`
}
