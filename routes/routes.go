package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/controllers"
	"github.com/Gokulsuresh1918/winter-arc/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.Use(middlewares.RateLimitMiddleware())
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	quotes := api.Group("/quotes")
	{
		quotes.GET("/daily", controllers.GetDailyQuote)
		quotes.GET("/random", controllers.GetRandomQuote)
		quotes.GET("/motivation", controllers.GetMotivationQuote)
	}
	api.GET("/food/recipe", controllers.GetDailyRecipe)

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		users := protected.Group("/users")
		{
			users.GET("/profile", controllers.GetProfile)
			users.PUT("/profile", controllers.UpdateProfile)
			users.POST("/badges", controllers.AwardBadge)
		}

		daylogs := protected.Group("/daylogs")
		{
			daylogs.GET("", controllers.ListDayLogs)
			daylogs.GET("/today", controllers.GetTodayLog)
			daylogs.GET("/streak", controllers.GetStreak)
			daylogs.PUT("/:id", controllers.UpdateDayLog)
		}

		challenges := protected.Group("/challenges")
		{
			challenges.GET("", controllers.ListChallenges)
			challenges.GET("/:type/active", controllers.GetActiveChallenge)
			challenges.POST("", controllers.CreateChallenge)
			challenges.POST("/:id/reset", controllers.ResetChallenge)
			challenges.POST("/:id/log", controllers.LogChallengeProgress)
			challenges.PUT("/:id", controllers.UpdateChallenge)
			challenges.DELETE("/:id", controllers.DeleteChallenge)
		}

		schedule := protected.Group("/schedule")
		{
			schedule.GET("", controllers.ListSchedules)
			schedule.GET("/today", controllers.GetTodaySchedule)
			schedule.PUT("/:id/morning-checkin", controllers.CompleteMorningCheckIn)
			schedule.PUT("/:id/activity/:activityId", controllers.UpdateActivity)
			schedule.POST("/:id/pomodoro", controllers.AddPomodoro)
		}

		books := protected.Group("/books")
		{
			books.GET("", controllers.ListBooks)
			books.GET("/current", controllers.ListCurrentBooks)
			books.POST("", controllers.CreateBook)
			books.PUT("/:id", controllers.UpdateBook)
			books.POST("/:id/reading", controllers.LogReading)
			books.POST("/:id/notes", controllers.AddBookNote)
			books.DELETE("/:id", controllers.DeleteBook)
		}

		food := protected.Group("/food")
		{
			food.GET("", controllers.ListFoodLogs)
			food.GET("/today", controllers.GetTodayFoodLog)
			food.PUT("/:id", controllers.UpdateFoodLog)
		}

		finance := protected.Group("/finance")
		{
			finance.GET("", controllers.ListFinanceLogs)
			finance.GET("/today", controllers.GetTodayFinanceLog)
			finance.POST("/:id/transactions", controllers.AddTransaction)
			finance.DELETE("/:id/transactions/:transactionId", controllers.DeleteTransaction)
			finance.PUT("/:id/budget", controllers.UpdateBudget)
		}

		bodyMetrics := protected.Group("/body-metrics")
		{
			bodyMetrics.GET("", controllers.ListBodyMetrics)
			bodyMetrics.GET("/latest", controllers.GetLatestBodyMetrics)
			bodyMetrics.GET("/progress/weight", controllers.GetWeightProgress)
			bodyMetrics.POST("", controllers.CreateBodyMetrics)
			bodyMetrics.PUT("/:id", controllers.UpdateBodyMetrics)
			bodyMetrics.DELETE("/:id", controllers.DeleteBodyMetrics)
		}

		workouts := protected.Group("/workouts")
		{
			workouts.GET("", controllers.ListWorkouts)
			workouts.GET("/:id", controllers.GetWorkout)
			workouts.POST("", controllers.CreateWorkout)
			workouts.PUT("/:id", controllers.UpdateWorkout)
			workouts.DELETE("/:id", controllers.DeleteWorkout)
			workouts.POST("/:id/photos", controllers.UploadWorkoutPhoto)
		}

		plans := protected.Group("/workout-plans")
		{
			plans.GET("", controllers.ListWorkoutPlans)
			plans.GET("/split/:split", controllers.ListWorkoutPlansBySplit)
			plans.POST("", controllers.CreateWorkoutPlan)
			plans.PUT("/:id", controllers.UpdateWorkoutPlan)
			plans.DELETE("/:id", controllers.DeleteWorkoutPlan)
		}

		study := protected.Group("/study")
		{
			study.GET("", controllers.ListStudySessions)
			study.POST("", controllers.CreateStudySession)
			study.PUT("/:id", controllers.UpdateStudySession)
			study.DELETE("/:id", controllers.DeleteStudySession)
		}

		journal := protected.Group("/journal")
		{
			journal.GET("", controllers.ListJournalEntries)
			journal.GET("/today/entry", controllers.GetTodayJournalEntry)
			journal.GET("/entry/:id", controllers.GetJournalEntry)
			journal.POST("", controllers.CreateJournalEntry)
			journal.PUT("/:id", controllers.UpdateJournalEntry)
		}

		// Aggregates live under one group so detail routes keep their own
		// param space.
		stats := protected.Group("/stats")
		{
			stats.GET("/schedule/weekly", controllers.GetWeeklyScheduleStats)
			stats.GET("/workouts/weekly", controllers.GetWeeklyWorkoutStats)
			stats.GET("/nutrition/weekly", controllers.GetWeeklyNutritionStats)
			stats.GET("/finance/monthly", controllers.GetMonthlyFinanceStats)
			stats.GET("/reading", controllers.GetReadingStats)
			stats.GET("/study/categories", controllers.GetStudyStatsByCategory)
		}

		notifications := protected.Group("/notifications")
		{
			notifications.GET("", controllers.ListNotifications)
			notifications.PUT("/:id/read", controllers.MarkNotificationRead)
			notifications.POST("/read-all", controllers.MarkAllNotificationsRead)
		}

		protected.GET("/ws", controllers.ServeWS)
	}

	return r
}
