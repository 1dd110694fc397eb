package controllers

import (
	"net/http"

	"github.com/Gokulsuresh1918/winter-arc/middlewares"
	"github.com/Gokulsuresh1918/winter-arc/services"

	"github.com/gin-gonic/gin"
)

func ListChallenges(c *gin.Context) {
	userID := middlewares.UserID(c)

	challenges, err := services.ListChallenges(userID)
	if err != nil {
		respondError(c, err, "Challenge")
		return
	}

	c.JSON(http.StatusOK, challenges)
}

// GetActiveChallenge returns the active challenge of the given type with a
// freshly recomputed streak, or null when none exists.
func GetActiveChallenge(c *gin.Context) {
	userID := middlewares.UserID(c)

	challenge, err := services.GetActiveChallenge(userID, c.Param("type"))
	if err != nil {
		respondError(c, err, "Challenge")
		return
	}

	c.JSON(http.StatusOK, challenge)
}

func CreateChallenge(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input struct {
		Type string `json:"type" binding:"required"`
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	challenge, err := services.CreateChallenge(userID, input.Type, input.Name)
	if err != nil {
		respondError(c, err, "Challenge")
		return
	}

	c.JSON(http.StatusCreated, challenge)
}

func ResetChallenge(c *gin.Context) {
	userID := middlewares.UserID(c)
	challengeID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&input) // reason is optional

	challenge, err := services.ResetChallenge(userID, challengeID, input.Reason)
	if err != nil {
		respondError(c, err, "Challenge")
		return
	}

	c.JSON(http.StatusOK, challenge)
}

func LogChallengeProgress(c *gin.Context) {
	userID := middlewares.UserID(c)
	challengeID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.ChallengeLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	challenge, err := services.LogChallengeProgress(userID, challengeID, input)
	if err != nil {
		respondError(c, err, "Challenge")
		return
	}

	c.JSON(http.StatusOK, challenge)
}

func UpdateChallenge(c *gin.Context) {
	userID := middlewares.UserID(c)
	challengeID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var update services.ChallengeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	challenge, err := services.UpdateChallenge(userID, challengeID, update)
	if err != nil {
		respondError(c, err, "Challenge")
		return
	}

	c.JSON(http.StatusOK, challenge)
}

func DeleteChallenge(c *gin.Context) {
	userID := middlewares.UserID(c)
	challengeID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteChallenge(userID, challengeID); err != nil {
		respondError(c, err, "Challenge")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Challenge deleted"})
}

// GetMotivationQuote serves a random quote. Public route.
func GetMotivationQuote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quote": services.RandomQuote()})
}
