package controllers

import (
	"net/http"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/middlewares"
	"github.com/Gokulsuresh1918/winter-arc/services"

	"github.com/gin-gonic/gin"
)

func GetTodayFoodLog(c *gin.Context) {
	userID := middlewares.UserID(c)

	log, err := services.GetOrCreateTodayFoodLog(userID)
	if err != nil {
		respondError(c, err, "Food log")
		return
	}

	c.JSON(http.StatusOK, log)
}

func ListFoodLogs(c *gin.Context) {
	userID := middlewares.UserID(c)

	start, end, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	logs, err := services.ListFoodLogs(userID, start, end)
	if err != nil {
		respondError(c, err, "Food log")
		return
	}

	c.JSON(http.StatusOK, logs)
}

func UpdateFoodLog(c *gin.Context) {
	userID := middlewares.UserID(c)
	logID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var update services.FoodLogUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	log, err := services.UpdateFoodLog(userID, logID, update)
	if err != nil {
		respondError(c, err, "Food log")
		return
	}

	c.JSON(http.StatusOK, log)
}

// GetDailyRecipe serves today's healthy recipe tip. Public route.
func GetDailyRecipe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recipe": services.DailyRecipe(time.Now())})
}

func GetWeeklyNutritionStats(c *gin.Context) {
	userID := middlewares.UserID(c)

	stats, err := services.GetWeeklyNutritionStats(userID)
	if err != nil {
		respondError(c, err, "Food log")
		return
	}

	c.JSON(http.StatusOK, stats)
}
