package controllers

import (
	"net/http"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/config"
	"github.com/Gokulsuresh1918/winter-arc/middlewares"
	"github.com/Gokulsuresh1918/winter-arc/models"
	"github.com/Gokulsuresh1918/winter-arc/services"
	"github.com/Gokulsuresh1918/winter-arc/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type workoutInput struct {
	Date      *time.Time        `json:"date"`
	Split     string            `json:"split"`
	Exercises []models.Exercise `json:"exercises"`
	Duration  int               `json:"duration" binding:"required,gt=0"`
	Weight    float64           `json:"weight"`
	Calories  float64           `json:"calories"`
	Protein   float64           `json:"protein"`
	Intensity string            `json:"intensity"`
	Mood      string            `json:"mood"`
	Notes     string            `json:"notes"`
}

func CreateWorkout(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input workoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	workout := models.Workout{
		UserID:    userID,
		Date:      time.Now(),
		Split:     input.Split,
		Exercises: input.Exercises,
		Duration:  input.Duration,
		Weight:    input.Weight,
		Calories:  input.Calories,
		Protein:   input.Protein,
		Intensity: input.Intensity,
		Mood:      input.Mood,
		Notes:     input.Notes,
	}
	if input.Date != nil {
		workout.Date = *input.Date
	}

	if err := config.DB.Create(&workout).Error; err != nil {
		respondError(c, err, "Workout")
		return
	}

	c.JSON(http.StatusCreated, workout)
}

func ListWorkouts(c *gin.Context) {
	userID := middlewares.UserID(c)

	start, end, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	q := config.DB.Preload("Exercises").Preload("Photos").Where("user_id = ?", userID)
	if start != nil && end != nil {
		q = q.Where("date >= ? AND date <= ?", *start, *end)
	}

	var workouts []models.Workout
	if err := q.Order("date desc").Find(&workouts).Error; err != nil {
		respondError(c, err, "Workout")
		return
	}

	c.JSON(http.StatusOK, workouts)
}

func loadWorkout(c *gin.Context) (*models.Workout, bool) {
	userID := middlewares.UserID(c)
	workoutID, ok := idParam(c, "id")
	if !ok {
		return nil, false
	}

	var workout models.Workout
	err := config.DB.
		Preload("Exercises").
		Preload("Photos").
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error
	if err != nil {
		respondError(c, err, "Workout")
		return nil, false
	}
	return &workout, true
}

func GetWorkout(c *gin.Context) {
	workout, ok := loadWorkout(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, workout)
}

func UpdateWorkout(c *gin.Context) {
	workout, ok := loadWorkout(c)
	if !ok {
		return
	}

	var input workoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Date != nil {
		workout.Date = *input.Date
	}
	if input.Split != "" {
		workout.Split = input.Split
	}
	if input.Exercises != nil {
		if err := config.DB.Where("workout_id = ?", workout.ID).Delete(&models.Exercise{}).Error; err != nil {
			respondError(c, err, "Workout")
			return
		}
		for i := range input.Exercises {
			input.Exercises[i].ID = 0
			input.Exercises[i].WorkoutID = workout.ID
		}
		workout.Exercises = input.Exercises
	}
	if input.Duration > 0 {
		workout.Duration = input.Duration
	}
	if input.Weight > 0 {
		workout.Weight = input.Weight
	}
	if input.Calories > 0 {
		workout.Calories = input.Calories
	}
	if input.Protein > 0 {
		workout.Protein = input.Protein
	}
	if input.Intensity != "" {
		workout.Intensity = input.Intensity
	}
	if input.Mood != "" {
		workout.Mood = input.Mood
	}
	if input.Notes != "" {
		workout.Notes = input.Notes
	}

	if err := config.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(workout).Error; err != nil {
		respondError(c, err, "Workout")
		return
	}

	c.JSON(http.StatusOK, workout)
}

func DeleteWorkout(c *gin.Context) {
	workout, ok := loadWorkout(c)
	if !ok {
		return
	}

	if err := config.DB.Select("Exercises", "Photos").Delete(workout).Error; err != nil {
		respondError(c, err, "Workout")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted"})
}

// UploadWorkoutPhoto stores a base64 progress photo in S3 and records its URL.
func UploadWorkoutPhoto(c *gin.Context) {
	workout, ok := loadWorkout(c)
	if !ok {
		return
	}

	var input struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	url, err := utils.UploadBase64ImageToS3(input.Image, "progress-photos")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	photo := models.WorkoutPhoto{WorkoutID: workout.ID, URL: url}
	if err := config.DB.Create(&photo).Error; err != nil {
		respondError(c, err, "Workout")
		return
	}
	workout.Photos = append(workout.Photos, photo)

	c.JSON(http.StatusOK, workout)
}

func GetWeeklyWorkoutStats(c *gin.Context) {
	userID := middlewares.UserID(c)

	stats, err := services.GetWeeklyWorkoutStats(userID)
	if err != nil {
		respondError(c, err, "Workout")
		return
	}

	c.JSON(http.StatusOK, stats)
}
