package controllers

import (
	"net/http"

	"github.com/Gokulsuresh1918/winter-arc/middlewares"
	"github.com/Gokulsuresh1918/winter-arc/services"

	"github.com/gin-gonic/gin"
)

// GetTodayLog returns today's DayLog, creating it on first access.
func GetTodayLog(c *gin.Context) {
	userID := middlewares.UserID(c)

	log, err := services.GetOrCreateTodayLog(userID)
	if err != nil {
		respondError(c, err, "Day log")
		return
	}

	c.JSON(http.StatusOK, log)
}

// ListDayLogs returns the user's logs, optionally bounded by ?startDate&endDate.
func ListDayLogs(c *gin.Context) {
	userID := middlewares.UserID(c)

	start, end, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	logs, err := services.ListDayLogs(userID, start, end)
	if err != nil {
		respondError(c, err, "Day log")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// UpdateDayLog merges tasks/routines/notes/rating into the log.
func UpdateDayLog(c *gin.Context) {
	userID := middlewares.UserID(c)
	logID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var update services.DayLogUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	log, err := services.UpdateDayLog(userID, logID, update)
	if err != nil {
		respondError(c, err, "Day log")
		return
	}

	c.JSON(http.StatusOK, log)
}

// GetStreak returns the count of consecutive qualifying days ending today.
func GetStreak(c *gin.Context) {
	userID := middlewares.UserID(c)

	streak, err := services.GetStreak(userID)
	if err != nil {
		respondError(c, err, "Day log")
		return
	}

	c.JSON(http.StatusOK, gin.H{"streak": streak})
}
