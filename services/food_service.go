package services

import (
	"math"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/config"
	"github.com/Gokulsuresh1918/winter-arc/models"
)

// RecomputeFoodTotals sums the macro totals over all logged meals.
func RecomputeFoodTotals(log *models.FoodLog) {
	log.TotalCalories = 0
	log.TotalProtein = 0
	log.TotalCarbs = 0
	log.TotalFats = 0
	for _, m := range log.Meals {
		log.TotalCalories += m.Calories
		log.TotalProtein += m.Protein
		log.TotalCarbs += m.Carbs
		log.TotalFats += m.Fats
	}
}

// GetOrCreateTodayFoodLog lazily creates today's log with default goals.
func GetOrCreateTodayFoodLog(userID uint) (*models.FoodLog, error) {
	today := dayStartLocal(time.Now())

	var log models.FoodLog
	err := config.DB.
		Preload("Meals").
		Where("user_id = ? AND date = ?", userID, today).
		First(&log).Error
	if err == nil {
		return &log, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	log = models.FoodLog{
		UserID: userID,
		Date:   today,
		Goals: models.NutritionGoals{
			Calories: 2000,
			Protein:  150,
			Water:    3,
		},
	}
	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// ListFoodLogs returns logs newest first, optionally date-bounded.
func ListFoodLogs(userID uint, startDate, endDate *time.Time) ([]models.FoodLog, error) {
	q := config.DB.Preload("Meals").Where("user_id = ?", userID)
	if startDate != nil && endDate != nil {
		q = q.Where("date >= ? AND date <= ?", *startDate, *endDate)
	}

	var logs []models.FoodLog
	err := q.Order("date desc").Find(&logs).Error
	return logs, err
}

// FoodLogUpdate is a partial merge of the food log: a non-nil meal list
// replaces the stored one wholesale.
type FoodLogUpdate struct {
	Meals       []models.Meal          `json:"meals"`
	WaterIntake *float64               `json:"waterIntake"`
	Goals       *models.NutritionGoals `json:"goals"`
	Notes       *string                `json:"notes"`
}

// UpdateFoodLog merges the update and recomputes the macro totals.
func UpdateFoodLog(userID, logID uint, update FoodLogUpdate) (*models.FoodLog, error) {
	var log models.FoodLog
	err := config.DB.
		Preload("Meals").
		Where("id = ? AND user_id = ?", logID, userID).
		First(&log).Error
	if err != nil {
		return nil, err
	}

	if update.Meals != nil {
		if err := config.DB.Where("food_log_id = ?", log.ID).Delete(&models.Meal{}).Error; err != nil {
			return nil, err
		}
		for i := range update.Meals {
			update.Meals[i].ID = 0
			update.Meals[i].FoodLogID = log.ID
		}
		log.Meals = update.Meals
	}
	if update.WaterIntake != nil {
		log.WaterIntake = *update.WaterIntake
	}
	if update.Goals != nil {
		log.Goals = *update.Goals
	}
	if update.Notes != nil {
		log.Notes = *update.Notes
	}

	RecomputeFoodTotals(&log)
	if err := config.DB.Session(&gormFullSave).Save(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// WeeklyNutritionStats averages the trailing seven days.
type WeeklyNutritionStats struct {
	AvgCalories int     `json:"avgCalories"`
	AvgProtein  int     `json:"avgProtein"`
	AvgWater    float64 `json:"avgWater"`
	DaysLogged  int     `json:"daysLogged"`
}

// GetWeeklyNutritionStats averages calories/protein/water over the last week.
func GetWeeklyNutritionStats(userID uint) (*WeeklyNutritionStats, error) {
	weekAgo := time.Now().Add(-7 * 24 * time.Hour)

	var logs []models.FoodLog
	err := config.DB.
		Where("user_id = ? AND date >= ?", userID, weekAgo).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	stats := WeeklyNutritionStats{DaysLogged: len(logs)}
	if len(logs) == 0 {
		return &stats, nil
	}

	var calories, protein, water float64
	for _, log := range logs {
		calories += log.TotalCalories
		protein += log.TotalProtein
		water += log.WaterIntake
	}
	n := float64(len(logs))
	stats.AvgCalories = int(math.Round(calories / n))
	stats.AvgProtein = int(math.Round(protein / n))
	stats.AvgWater = math.Round(water/n*10) / 10
	return &stats, nil
}
