package models

import "gorm.io/gorm"

type PlanExercise struct {
	gorm.Model
	WorkoutPlanID uint    `gorm:"index;not null" json:"-"`
	Name          string  `json:"name"`
	Type          string  `json:"type"` // dumbbell|barbell|bodyweight|machine|cable|other
	Sets          int     `json:"sets"`
	Reps          int     `json:"reps"`
	Weight        float64 `json:"weight"`
	RestTime      int     `json:"restTime"` // seconds
	Notes         string  `json:"notes"`
}

type WorkoutPlan struct {
	gorm.Model
	UserID            uint           `gorm:"index;not null" json:"userId"`
	Split             string         `gorm:"not null" json:"split"`
	Name              string         `json:"name"`
	Exercises         []PlanExercise `json:"exercises"`
	TargetMuscles     string         `json:"targetMuscles"` // comma-separated
	Difficulty        string         `json:"difficulty"`    // beginner|intermediate|advanced
	EstimatedDuration int            `json:"estimatedDuration"` // minutes
	IsActive          bool           `gorm:"default:true" json:"isActive"`
}
