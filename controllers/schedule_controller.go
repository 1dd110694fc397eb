package controllers

import (
	"net/http"

	"github.com/Gokulsuresh1918/winter-arc/middlewares"
	"github.com/Gokulsuresh1918/winter-arc/services"

	"github.com/gin-gonic/gin"
)

// GetTodaySchedule returns today's schedule, creating it from the nine-slot
// template on first access.
func GetTodaySchedule(c *gin.Context) {
	userID := middlewares.UserID(c)

	schedule, err := services.GetOrCreateTodaySchedule(userID)
	if err != nil {
		respondError(c, err, "Schedule")
		return
	}

	c.JSON(http.StatusOK, schedule)
}

func ListSchedules(c *gin.Context) {
	userID := middlewares.UserID(c)

	start, end, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	schedules, err := services.ListSchedules(userID, start, end)
	if err != nil {
		respondError(c, err, "Schedule")
		return
	}

	c.JSON(http.StatusOK, schedules)
}

func CompleteMorningCheckIn(c *gin.Context) {
	userID := middlewares.UserID(c)
	scheduleID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.CheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	schedule, err := services.CompleteMorningCheckIn(userID, scheduleID, input)
	if err != nil {
		respondError(c, err, "Schedule")
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// UpdateActivity patches one activity; the schedule's derived totals are
// recomputed before the write.
func UpdateActivity(c *gin.Context) {
	userID := middlewares.UserID(c)
	scheduleID, ok := idParam(c, "id")
	if !ok {
		return
	}
	activityID, ok := idParam(c, "activityId")
	if !ok {
		return
	}

	var patch services.ActivityPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	schedule, err := services.UpdateActivity(userID, scheduleID, activityID, patch)
	if err != nil {
		respondError(c, err, "Activity")
		return
	}

	c.JSON(http.StatusOK, schedule)
}

func AddPomodoro(c *gin.Context) {
	userID := middlewares.UserID(c)
	scheduleID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.PomodoroInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	schedule, err := services.AddPomodoro(userID, scheduleID, input)
	if err != nil {
		respondError(c, err, "Schedule")
		return
	}

	c.JSON(http.StatusOK, schedule)
}

func GetWeeklyScheduleStats(c *gin.Context) {
	userID := middlewares.UserID(c)

	stats, err := services.GetWeeklyScheduleStats(userID)
	if err != nil {
		respondError(c, err, "Schedule")
		return
	}

	c.JSON(http.StatusOK, stats)
}
