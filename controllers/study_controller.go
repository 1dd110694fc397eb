package controllers

import (
	"net/http"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/config"
	"github.com/Gokulsuresh1918/winter-arc/middlewares"
	"github.com/Gokulsuresh1918/winter-arc/models"
	"github.com/Gokulsuresh1918/winter-arc/services"

	"github.com/gin-gonic/gin"
)

func CreateStudySession(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input struct {
		Topic                string     `json:"topic" binding:"required"`
		Category             string     `json:"category" binding:"required"`
		Duration             int        `json:"duration" binding:"required,gt=0"`
		Notes                string     `json:"notes"`
		CompletionPercentage int        `json:"completionPercentage"`
		Date                 *time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	session := models.StudySession{
		UserID:               userID,
		Topic:                input.Topic,
		Category:             input.Category,
		Duration:             input.Duration,
		Notes:                input.Notes,
		CompletionPercentage: input.CompletionPercentage,
		Date:                 time.Now(),
	}
	if input.Date != nil {
		session.Date = *input.Date
	}

	if err := config.DB.Create(&session).Error; err != nil {
		respondError(c, err, "Study session")
		return
	}

	c.JSON(http.StatusCreated, session)
}

func ListStudySessions(c *gin.Context) {
	userID := middlewares.UserID(c)

	start, end, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	q := config.DB.Where("user_id = ?", userID)
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if start != nil && end != nil {
		q = q.Where("date >= ? AND date <= ?", *start, *end)
	}

	var sessions []models.StudySession
	if err := q.Order("date desc").Find(&sessions).Error; err != nil {
		respondError(c, err, "Study session")
		return
	}

	c.JSON(http.StatusOK, sessions)
}

func UpdateStudySession(c *gin.Context) {
	userID := middlewares.UserID(c)
	sessionID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var session models.StudySession
	err := config.DB.
		Where("id = ? AND user_id = ?", sessionID, userID).
		First(&session).Error
	if err != nil {
		respondError(c, err, "Study session")
		return
	}

	var input struct {
		Topic                *string `json:"topic"`
		Category             *string `json:"category"`
		Duration             *int    `json:"duration"`
		Notes                *string `json:"notes"`
		CompletionPercentage *int    `json:"completionPercentage"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Topic != nil {
		session.Topic = *input.Topic
	}
	if input.Category != nil {
		session.Category = *input.Category
	}
	if input.Duration != nil {
		session.Duration = *input.Duration
	}
	if input.Notes != nil {
		session.Notes = *input.Notes
	}
	if input.CompletionPercentage != nil {
		session.CompletionPercentage = *input.CompletionPercentage
	}

	if err := config.DB.Save(&session).Error; err != nil {
		respondError(c, err, "Study session")
		return
	}

	c.JSON(http.StatusOK, session)
}

func DeleteStudySession(c *gin.Context) {
	userID := middlewares.UserID(c)
	sessionID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var session models.StudySession
	err := config.DB.
		Where("id = ? AND user_id = ?", sessionID, userID).
		First(&session).Error
	if err != nil {
		respondError(c, err, "Study session")
		return
	}

	if err := config.DB.Delete(&session).Error; err != nil {
		respondError(c, err, "Study session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Study session deleted"})
}

func GetStudyStatsByCategory(c *gin.Context) {
	userID := middlewares.UserID(c)

	stats, err := services.GetStudyStatsByCategory(userID)
	if err != nil {
		respondError(c, err, "Study session")
		return
	}

	c.JSON(http.StatusOK, stats)
}
