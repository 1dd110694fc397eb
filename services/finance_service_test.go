package services

import (
	"testing"

	"github.com/Gokulsuresh1918/winter-arc/models"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeFinanceTotals(t *testing.T) {
	log := &models.FinanceLog{
		Transactions: []models.Transaction{
			{Type: models.TransactionIncome, Amount: 5000},
			{Type: models.TransactionExpense, Amount: 120.50},
			{Type: models.TransactionExpense, Amount: 79.50},
		},
	}

	RecomputeFinanceTotals(log)

	assert.Equal(t, 5000.0, log.TotalIncome)
	assert.Equal(t, 200.0, log.TotalExpense)
	assert.Equal(t, 4800.0, log.Balance)
}

func TestRecomputeFinanceTotalsOverwritesStale(t *testing.T) {
	log := &models.FinanceLog{
		TotalIncome:  999,
		TotalExpense: 999,
		Balance:      999,
	}

	RecomputeFinanceTotals(log)

	assert.Zero(t, log.TotalIncome)
	assert.Zero(t, log.TotalExpense)
	assert.Zero(t, log.Balance)
}

func TestRecomputeFoodTotals(t *testing.T) {
	log := &models.FoodLog{
		Meals: []models.Meal{
			{Slot: models.MealBreakfast, Calories: 450, Protein: 30, Carbs: 40, Fats: 15},
			{Slot: models.MealLunch, Calories: 700, Protein: 45, Carbs: 60, Fats: 25},
		},
	}

	RecomputeFoodTotals(log)

	assert.Equal(t, 1150.0, log.TotalCalories)
	assert.Equal(t, 75.0, log.TotalProtein)
	assert.Equal(t, 100.0, log.TotalCarbs)
	assert.Equal(t, 40.0, log.TotalFats)
}
