package controllers

import (
	"net/http"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/services"

	"github.com/gin-gonic/gin"
)

// GetDailyQuote serves the quote of the day. Public route.
func GetDailyQuote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quote": services.DailyQuote(time.Now())})
}

// GetRandomQuote serves a random quote. Public route.
func GetRandomQuote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quote": services.RandomQuote()})
}
