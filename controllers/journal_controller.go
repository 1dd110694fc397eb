package controllers

import (
	"net/http"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/config"
	"github.com/Gokulsuresh1918/winter-arc/middlewares"
	"github.com/Gokulsuresh1918/winter-arc/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateJournalEntry(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input struct {
		Improvement string     `json:"improvement" binding:"required"`
		Challenge   string     `json:"challenge" binding:"required"`
		Gratitude   string     `json:"gratitude" binding:"required"`
		Mood        string     `json:"mood"`
		Date        *time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	entry := models.JournalEntry{
		UserID:      userID,
		Date:        time.Now(),
		Improvement: input.Improvement,
		Challenge:   input.Challenge,
		Gratitude:   input.Gratitude,
		Mood:        input.Mood,
	}
	if input.Date != nil {
		entry.Date = *input.Date
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		respondError(c, err, "Journal entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func ListJournalEntries(c *gin.Context) {
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

	var entries []models.JournalEntry
	if err := q.Order("date desc").Find(&entries).Error; err != nil {
		respondError(c, err, "Journal entry")
		return
	}

	c.JSON(http.StatusOK, entries)
}

func GetJournalEntry(c *gin.Context) {
	userID := middlewares.UserID(c)
	entryID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var entry models.JournalEntry
	err := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		respondError(c, err, "Journal entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetTodayJournalEntry returns null when nothing has been written yet today,
// so the client can decide whether to show the compose prompt.
func GetTodayJournalEntry(c *gin.Context) {
	userID := middlewares.UserID(c)

	dayStart := time.Now()
	dayStart = time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), 0, 0, 0, 0, dayStart.Location())

	var entry models.JournalEntry
	err := config.DB.
		Where("user_id = ? AND date >= ?", userID, dayStart).
		Order("date desc").
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondError(c, err, "Journal entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

func UpdateJournalEntry(c *gin.Context) {
	userID := middlewares.UserID(c)
	entryID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var entry models.JournalEntry
	err := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		respondError(c, err, "Journal entry")
		return
	}

	var input struct {
		Improvement *string `json:"improvement"`
		Challenge   *string `json:"challenge"`
		Gratitude   *string `json:"gratitude"`
		Mood        *string `json:"mood"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Improvement != nil {
		entry.Improvement = *input.Improvement
	}
	if input.Challenge != nil {
		entry.Challenge = *input.Challenge
	}
	if input.Gratitude != nil {
		entry.Gratitude = *input.Gratitude
	}
	if input.Mood != nil {
		entry.Mood = *input.Mood
	}

	if err := config.DB.Save(&entry).Error; err != nil {
		respondError(c, err, "Journal entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}
