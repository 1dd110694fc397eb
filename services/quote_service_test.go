package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDailyQuoteDeterministic(t *testing.T) {
	morning := time.Date(2026, 3, 5, 7, 0, 0, 0, time.Local)
	evening := time.Date(2026, 3, 5, 22, 30, 0, 0, time.Local)

	assert.Equal(t, DailyQuote(morning), DailyQuote(evening))
	assert.NotEmpty(t, DailyQuote(morning))
}

func TestRandomQuoteNonEmpty(t *testing.T) {
	assert.NotEmpty(t, RandomQuote())
}

func TestDailyRecipeDeterministic(t *testing.T) {
	day := time.Date(2026, 7, 1, 12, 0, 0, 0, time.Local)
	assert.Equal(t, DailyRecipe(day), DailyRecipe(day.Add(6*time.Hour)))
}
