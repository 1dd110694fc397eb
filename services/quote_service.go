package services

import (
	"math/rand"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/data"
)

// DailyQuote picks today's quote deterministically by day of year, so every
// request on the same day sees the same quote.
func DailyQuote(now time.Time) string {
	quotes := data.Quotes()
	return quotes[now.YearDay()%len(quotes)]
}

// RandomQuote picks any quote.
func RandomQuote() string {
	quotes := data.Quotes()
	return quotes[rand.Intn(len(quotes))]
}

// healthyRecipes are daily meal-prep tips served alongside the food log.
var healthyRecipes = []string{
	"Greek yogurt with berries and nuts for a protein-rich breakfast",
	"Scrambled eggs with spinach and tomatoes",
	"Avocado toast with poached eggs and seeds for healthy fats",
	"Quinoa bowl with grilled chicken and vegetables",
	"Green smoothie: spinach, banana, protein powder, almond milk",
	"Baked salmon with sweet potato and broccoli",
	"Chicken wrap with hummus, lettuce, and veggies",
	"Whole grain pasta with turkey meatballs and marinara",
	"Chickpea salad with olive oil and lemon dressing",
	"Lentil curry with brown rice",
}

// DailyRecipe picks today's recipe tip by day of year.
func DailyRecipe(now time.Time) string {
	return healthyRecipes[now.YearDay()%len(healthyRecipes)]
}
