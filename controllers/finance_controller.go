package controllers

import (
	"net/http"

	"github.com/Gokulsuresh1918/winter-arc/middlewares"
	"github.com/Gokulsuresh1918/winter-arc/services"

	"github.com/gin-gonic/gin"
)

func GetTodayFinanceLog(c *gin.Context) {
	userID := middlewares.UserID(c)

	log, err := services.GetOrCreateTodayFinanceLog(userID)
	if err != nil {
		respondError(c, err, "Finance log")
		return
	}

	c.JSON(http.StatusOK, log)
}

func ListFinanceLogs(c *gin.Context) {
	userID := middlewares.UserID(c)

	start, end, err := dateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	logs, err := services.ListFinanceLogs(userID, start, end)
	if err != nil {
		respondError(c, err, "Finance log")
		return
	}

	c.JSON(http.StatusOK, logs)
}

func AddTransaction(c *gin.Context) {
	userID := middlewares.UserID(c)
	logID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input services.TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	log, err := services.AddTransaction(userID, logID, input)
	if err != nil {
		respondError(c, err, "Finance log")
		return
	}

	c.JSON(http.StatusOK, log)
}

func DeleteTransaction(c *gin.Context) {
	userID := middlewares.UserID(c)
	logID, ok := idParam(c, "id")
	if !ok {
		return
	}
	transactionID, ok := idParam(c, "transactionId")
	if !ok {
		return
	}

	log, err := services.RemoveTransaction(userID, logID, transactionID)
	if err != nil {
		respondError(c, err, "Transaction")
		return
	}

	c.JSON(http.StatusOK, log)
}

func UpdateBudget(c *gin.Context) {
	userID := middlewares.UserID(c)
	logID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		DailyBudget   *float64 `json:"dailyBudget"`
		MonthlyBudget *float64 `json:"monthlyBudget"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	log, err := services.UpdateBudgets(userID, logID, input.DailyBudget, input.MonthlyBudget)
	if err != nil {
		respondError(c, err, "Finance log")
		return
	}

	c.JSON(http.StatusOK, log)
}

func GetMonthlyFinanceStats(c *gin.Context) {
	userID := middlewares.UserID(c)

	stats, err := services.GetMonthlyFinanceStats(userID)
	if err != nil {
		respondError(c, err, "Finance log")
		return
	}

	c.JSON(http.StatusOK, stats)
}
