package controllers

import (
	"net/http"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/config"
	"github.com/Gokulsuresh1918/winter-arc/middlewares"
	"github.com/Gokulsuresh1918/winter-arc/models"
	"github.com/Gokulsuresh1918/winter-arc/utils"

	"github.com/gin-gonic/gin"
)

// applyBMI recomputes the derived BMI fields from weight and height.
func applyBMI(m *models.BodyMetrics) error {
	bmi, err := utils.CalculateBMI(m.Height, m.Weight)
	if err != nil {
		return err
	}
	m.BMI = bmi
	m.BMICategory = utils.BMICategory(bmi)
	return nil
}

func CreateBodyMetrics(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input struct {
		Date       *time.Time `json:"date"`
		Weight     float64    `json:"weight" binding:"required,gt=0"`
		Height     float64    `json:"height" binding:"required,gt=0"`
		BodyFat    float64    `json:"bodyFat"`
		MuscleMass float64    `json:"muscleMass"`
		Notes      string     `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	metrics := models.BodyMetrics{
		UserID:     userID,
		Date:       time.Now(),
		Weight:     input.Weight,
		Height:     input.Height,
		BodyFat:    input.BodyFat,
		MuscleMass: input.MuscleMass,
		Notes:      input.Notes,
	}
	if input.Date != nil {
		metrics.Date = *input.Date
	}

	if err := applyBMI(&metrics); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := config.DB.Create(&metrics).Error; err != nil {
		respondError(c, err, "Body metrics")
		return
	}

	c.JSON(http.StatusCreated, metrics)
}

func ListBodyMetrics(c *gin.Context) {
	userID := middlewares.UserID(c)

	start, end, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	q := config.DB.Where("user_id = ?", userID)
	if start != nil && end != nil {
		q = q.Where("date >= ? AND date <= ?", *start, *end)
	}

	var metrics []models.BodyMetrics
	if err := q.Order("date desc").Find(&metrics).Error; err != nil {
		respondError(c, err, "Body metrics")
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func GetLatestBodyMetrics(c *gin.Context) {
	userID := middlewares.UserID(c)

	var metrics models.BodyMetrics
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		First(&metrics).Error
	if err != nil {
		respondError(c, err, "Body metrics")
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func UpdateBodyMetrics(c *gin.Context) {
	userID := middlewares.UserID(c)
	metricsID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var metrics models.BodyMetrics
	err := config.DB.
		Where("id = ? AND user_id = ?", metricsID, userID).
		First(&metrics).Error
	if err != nil {
		respondError(c, err, "Body metrics")
		return
	}

	var input struct {
		Weight     *float64 `json:"weight"`
		Height     *float64 `json:"height"`
		BodyFat    *float64 `json:"bodyFat"`
		MuscleMass *float64 `json:"muscleMass"`
		Notes      *string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Weight != nil {
		metrics.Weight = *input.Weight
	}
	if input.Height != nil {
		metrics.Height = *input.Height
	}
	if input.BodyFat != nil {
		metrics.BodyFat = *input.BodyFat
	}
	if input.MuscleMass != nil {
		metrics.MuscleMass = *input.MuscleMass
	}
	if input.Notes != nil {
		metrics.Notes = *input.Notes
	}

	if err := applyBMI(&metrics); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := config.DB.Save(&metrics).Error; err != nil {
		respondError(c, err, "Body metrics")
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func DeleteBodyMetrics(c *gin.Context) {
	userID := middlewares.UserID(c)
	metricsID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var metrics models.BodyMetrics
	err := config.DB.
		Where("id = ? AND user_id = ?", metricsID, userID).
		First(&metrics).Error
	if err != nil {
		respondError(c, err, "Body metrics")
		return
	}

	if err := config.DB.Delete(&metrics).Error; err != nil {
		respondError(c, err, "Body metrics")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Body metrics deleted"})
}

// GetWeightProgress returns the last 30 entries, oldest first, for charting.
func GetWeightProgress(c *gin.Context) {
	userID := middlewares.UserID(c)

	var metrics []models.BodyMetrics
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date asc").
		Limit(30).
		Find(&metrics).Error
	if err != nil {
		respondError(c, err, "Body metrics")
		return
	}

	progress := make([]gin.H, 0, len(metrics))
	for _, m := range metrics {
		progress = append(progress, gin.H{
			"date":   m.Date,
			"weight": m.Weight,
			"bmi":    m.BMI,
		})
	}

	c.JSON(http.StatusOK, progress)
}
