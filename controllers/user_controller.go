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

func GetProfile(c *gin.Context) {
	userID := middlewares.UserID(c)

	var user models.User
	if err := config.DB.Preload("Badges").First(&user, userID).Error; err != nil {
		respondError(c, err, "User")
		return
	}

	c.JSON(http.StatusOK, user)
}

func UpdateProfile(c *gin.Context) {
	userID := middlewares.UserID(c)

	var user models.User
	if err := config.DB.Preload("Badges").First(&user, userID).Error; err != nil {
		respondError(c, err, "User")
		return
	}

	var input struct {
		Name       *string `json:"name"`
		Goal       *string `json:"goal"`
		WakeTime   *string `json:"wakeTime"`
		SleepTime  *string `json:"sleepTime"`
		FocusQuote *string `json:"focusQuote"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Goal != nil {
		user.Goal = *input.Goal
	}
	if input.WakeTime != nil {
		user.WakeTime = *input.WakeTime
	}
	if input.SleepTime != nil {
		user.SleepTime = *input.SleepTime
	}
	if input.FocusQuote != nil {
		user.FocusQuote = *input.FocusQuote
	}

	if err := config.DB.Save(&user).Error; err != nil {
		respondError(c, err, "User")
		return
	}

	c.JSON(http.StatusOK, user)
}

func AwardBadge(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input struct {
		Name string `json:"name" binding:"required"`
		Icon string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Preload("Badges").First(&user, userID).Error; err != nil {
		respondError(c, err, "User")
		return
	}

	// Badges are deduplicated by name.
	for _, badge := range user.Badges {
		if badge.Name == input.Name {
			c.JSON(http.StatusOK, user.Badges)
			return
		}
	}

	badge := models.Badge{
		UserID:   userID,
		Name:     input.Name,
		Icon:     input.Icon,
		EarnedAt: time.Now(),
	}
	if err := config.DB.Create(&badge).Error; err != nil {
		respondError(c, err, "User")
		return
	}
	user.Badges = append(user.Badges, badge)

	services.EmitNotification(userID, "badge", "Badge earned: "+input.Name)

	c.JSON(http.StatusOK, user.Badges)
}
