package controllers

import (
	"net/http"

	"github.com/Gokulsuresh1918/winter-arc/config"
	"github.com/Gokulsuresh1918/winter-arc/middlewares"
	"github.com/Gokulsuresh1918/winter-arc/models"

	"github.com/gin-gonic/gin"
)

func ListNotifications(c *gin.Context) {
	userID := middlewares.UserID(c)

	q := config.DB.Where("user_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("read = ?", false)
	}

	var notifications []models.Notification
	if err := q.Order("created_at desc").Limit(50).Find(&notifications).Error; err != nil {
		respondError(c, err, "Notification")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func MarkNotificationRead(c *gin.Context) {
	userID := middlewares.UserID(c)
	notificationID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var notification models.Notification
	err := config.DB.
		Where("id = ? AND user_id = ?", notificationID, userID).
		First(&notification).Error
	if err != nil {
		respondError(c, err, "Notification")
		return
	}

	notification.Read = true
	if err := config.DB.Save(&notification).Error; err != nil {
		respondError(c, err, "Notification")
		return
	}

	c.JSON(http.StatusOK, notification)
}

func MarkAllNotificationsRead(c *gin.Context) {
	userID := middlewares.UserID(c)

	err := config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
	if err != nil {
		respondError(c, err, "Notification")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked read"})
}
