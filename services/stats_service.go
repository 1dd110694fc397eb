package services

import (
	"time"

	"github.com/Gokulsuresh1918/winter-arc/config"
	"github.com/Gokulsuresh1918/winter-arc/models"
)

// WeeklyScheduleStats summarizes the trailing seven days of schedules.
type WeeklyScheduleStats struct {
	AvgCompletionRate float64 `json:"avgCompletionRate"`
	TotalPomodoros    int     `json:"totalPomodoros"`
	TotalFocusTime    int     `json:"totalFocusTime"`
	DaysTracked       int     `json:"daysTracked"`
	DaysWithCheckIn   int     `json:"daysWithCheckIn"`
}

func GetWeeklyScheduleStats(userID uint) (*WeeklyScheduleStats, error) {
	weekAgo := time.Now().Add(-7 * 24 * time.Hour)

	var schedules []models.DailySchedule
	err := config.DB.
		Where("user_id = ? AND date >= ?", userID, weekAgo).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}

	stats := WeeklyScheduleStats{DaysTracked: len(schedules)}
	var completion float64
	for _, s := range schedules {
		completion += float64(s.CompletionRate)
		stats.TotalPomodoros += s.TotalPomodoros
		stats.TotalFocusTime += s.TotalFocusTime
		if s.MorningCheckIn.SleepQuality != "" {
			stats.DaysWithCheckIn++
		}
	}
	if len(schedules) > 0 {
		stats.AvgCompletionRate = completion / float64(len(schedules))
	}
	return &stats, nil
}

// ReadingStats summarizes the user's bookshelf.
type ReadingStats struct {
	TotalBooks        int `json:"totalBooks"`
	Completed         int `json:"completed"`
	Reading           int `json:"reading"`
	TotalPagesRead    int `json:"totalPagesRead"`
	AverageCompletion int `json:"averageCompletion"`
}

func GetReadingStats(userID uint) (*ReadingStats, error) {
	var books []models.Book
	err := config.DB.Where("user_id = ?", userID).Find(&books).Error
	if err != nil {
		return nil, err
	}

	stats := ReadingStats{TotalBooks: len(books)}
	completionSum := 0
	for _, b := range books {
		switch b.Status {
		case models.BookCompleted:
			stats.Completed++
		case models.BookReading:
			stats.Reading++
		}
		stats.TotalPagesRead += b.CurrentPage
		completionSum += b.CompletionPercentage()
	}
	if len(books) > 0 {
		stats.AverageCompletion = int(float64(completionSum)/float64(len(books)) + 0.5)
	}
	return &stats, nil
}

// CategoryStudyStats aggregates study sessions per category.
type CategoryStudyStats struct {
	TotalDuration int     `json:"totalDuration"`
	SessionCount  int     `json:"sessionCount"`
	AvgCompletion float64 `json:"avgCompletion"`
}

func GetStudyStatsByCategory(userID uint) (map[string]*CategoryStudyStats, error) {
	var sessions []models.StudySession
	err := config.DB.Where("user_id = ?", userID).Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	stats := map[string]*CategoryStudyStats{}
	for _, s := range sessions {
		cs := stats[s.Category]
		if cs == nil {
			cs = &CategoryStudyStats{}
			stats[s.Category] = cs
		}
		cs.TotalDuration += s.Duration
		cs.SessionCount++
		cs.AvgCompletion += float64(s.CompletionPercentage)
	}
	for _, cs := range stats {
		cs.AvgCompletion /= float64(cs.SessionCount)
	}
	return stats, nil
}

// WeeklyWorkoutStats summarizes the trailing seven days of workouts.
type WeeklyWorkoutStats struct {
	TotalWorkouts   int     `json:"totalWorkouts"`
	TotalDuration   int     `json:"totalDuration"`
	AverageCalories float64 `json:"averageCalories"`
	AverageProtein  float64 `json:"averageProtein"`
}

func GetWeeklyWorkoutStats(userID uint) (*WeeklyWorkoutStats, error) {
	weekAgo := time.Now().Add(-7 * 24 * time.Hour)

	var workouts []models.Workout
	err := config.DB.
		Where("user_id = ? AND date >= ?", userID, weekAgo).
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}

	stats := WeeklyWorkoutStats{TotalWorkouts: len(workouts)}
	var calories, protein float64
	for _, w := range workouts {
		stats.TotalDuration += w.Duration
		calories += w.Calories
		protein += w.Protein
	}
	if len(workouts) > 0 {
		stats.AverageCalories = calories / float64(len(workouts))
		stats.AverageProtein = protein / float64(len(workouts))
	}
	return &stats, nil
}
