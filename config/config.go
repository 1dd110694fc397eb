package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	err = DB.AutoMigrate(
		&models.User{},
		&models.Badge{},
		&models.DayLog{},
		&models.Challenge{},
		&models.ChallengeReset{},
		&models.ChallengeMilestone{},
		&models.ChallengeDailyLog{},
		&models.DailySchedule{},
		&models.ScheduleActivity{},
		&models.PomodoroSession{},
		&models.Book{},
		&models.BookNote{},
		&models.DailyReading{},
		&models.FoodLog{},
		&models.Meal{},
		&models.FinanceLog{},
		&models.Transaction{},
		&models.BodyMetrics{},
		&models.Workout{},
		&models.Exercise{},
		&models.WorkoutPhoto{},
		&models.WorkoutPlan{},
		&models.PlanExercise{},
		&models.StudySession{},
		&models.JournalEntry{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
