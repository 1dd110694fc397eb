package controllers

import (
	"net/http"

	"github.com/Gokulsuresh1918/winter-arc/config"
	"github.com/Gokulsuresh1918/winter-arc/middlewares"
	"github.com/Gokulsuresh1918/winter-arc/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListWorkoutPlans(c *gin.Context) {
	userID := middlewares.UserID(c)

	var plans []models.WorkoutPlan
	err := config.DB.
		Preload("Exercises").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at desc").
		Find(&plans).Error
	if err != nil {
		respondError(c, err, "Workout plan")
		return
	}

	c.JSON(http.StatusOK, plans)
}

func ListWorkoutPlansBySplit(c *gin.Context) {
	userID := middlewares.UserID(c)
	split := c.Param("split")

	var plans []models.WorkoutPlan
	err := config.DB.
		Preload("Exercises").
		Where("user_id = ? AND split = ? AND is_active = ?", userID, split, true).
		Find(&plans).Error
	if err != nil {
		respondError(c, err, "Workout plan")
		return
	}

	c.JSON(http.StatusOK, plans)
}

type workoutPlanInput struct {
	Split             string                `json:"split" binding:"required"`
	Name              string                `json:"name"`
	Exercises         []models.PlanExercise `json:"exercises"`
	TargetMuscles     string                `json:"targetMuscles"`
	Difficulty        string                `json:"difficulty"`
	EstimatedDuration int                   `json:"estimatedDuration"`
}

func CreateWorkoutPlan(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input workoutPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	plan := models.WorkoutPlan{
		UserID:            userID,
		Split:             input.Split,
		Name:              input.Name,
		Exercises:         input.Exercises,
		TargetMuscles:     input.TargetMuscles,
		Difficulty:        input.Difficulty,
		EstimatedDuration: input.EstimatedDuration,
		IsActive:          true,
	}
	if err := config.DB.Create(&plan).Error; err != nil {
		respondError(c, err, "Workout plan")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func loadWorkoutPlan(c *gin.Context) (*models.WorkoutPlan, bool) {
	userID := middlewares.UserID(c)
	planID, ok := idParam(c, "id")
	if !ok {
		return nil, false
	}

	var plan models.WorkoutPlan
	err := config.DB.
		Preload("Exercises").
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		respondError(c, err, "Workout plan")
		return nil, false
	}
	return &plan, true
}

func UpdateWorkoutPlan(c *gin.Context) {
	plan, ok := loadWorkoutPlan(c)
	if !ok {
		return
	}

	var input struct {
		Split             *string               `json:"split"`
		Name              *string               `json:"name"`
		Exercises         []models.PlanExercise `json:"exercises"`
		TargetMuscles     *string               `json:"targetMuscles"`
		Difficulty        *string               `json:"difficulty"`
		EstimatedDuration *int                  `json:"estimatedDuration"`
		IsActive          *bool                 `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Split != nil {
		plan.Split = *input.Split
	}
	if input.Name != nil {
		plan.Name = *input.Name
	}
	if input.Exercises != nil {
		if err := config.DB.Where("workout_plan_id = ?", plan.ID).Delete(&models.PlanExercise{}).Error; err != nil {
			respondError(c, err, "Workout plan")
			return
		}
		for i := range input.Exercises {
			input.Exercises[i].ID = 0
			input.Exercises[i].WorkoutPlanID = plan.ID
		}
		plan.Exercises = input.Exercises
	}
	if input.TargetMuscles != nil {
		plan.TargetMuscles = *input.TargetMuscles
	}
	if input.Difficulty != nil {
		plan.Difficulty = *input.Difficulty
	}
	if input.EstimatedDuration != nil {
		plan.EstimatedDuration = *input.EstimatedDuration
	}
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}

	if err := config.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(plan).Error; err != nil {
		respondError(c, err, "Workout plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

func DeleteWorkoutPlan(c *gin.Context) {
	plan, ok := loadWorkoutPlan(c)
	if !ok {
		return
	}

	if err := config.DB.Select("Exercises").Delete(plan).Error; err != nil {
		respondError(c, err, "Workout plan")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout plan deleted"})
}
