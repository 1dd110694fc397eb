package services

import (
	"time"

	"github.com/Gokulsuresh1918/winter-arc/config"
	"github.com/Gokulsuresh1918/winter-arc/models"

	"gorm.io/gorm"
)

// defaultActivities is the fixed nine-slot day template every new schedule
// starts from.
var defaultActivities = []models.ScheduleActivity{
	{Time: "5:30 AM", Activity: "Morning Check-In", Details: "Wake up, quick reflection, mark sleep quality"},
	{Time: "6:00 - 7:30 AM", Activity: "Gym", Details: "Track muscle group, sets, reps, and weight"},
	{Time: "8:00 - 9:00 AM", Activity: "Breakfast & Get Ready", Details: "Prepare for office, optional gratitude reflection"},
	{Time: "9:00 AM - 6:00 PM", Activity: "Office Work", Details: "Focus timer + Pomodoro tracker"},
	{Time: "12:30 - 1:30 PM", Activity: "Lunch Break", Details: "Meal log + optional 10-min reading or walk"},
	{Time: "5:00 - 7:30 PM", Activity: "Travel / Rest", Details: "Relaxation time, track social media detox"},
	{Time: "8:00 - 9:00 PM", Activity: "Family / Entertainment", Details: "Social connection time"},
	{Time: "9:00 PM - 12:00 AM", Activity: "Study & Growth", Details: "LeetCode + AI/GenAI/DevOps courses, reading, journaling, meditation"},
	{Time: "12:30 AM", Activity: "Sleep", Details: "Prepare for rest, night journaling"},
}

// DefaultActivities returns a fresh copy of the day template.
func DefaultActivities() []models.ScheduleActivity {
	activities := make([]models.ScheduleActivity, len(defaultActivities))
	copy(activities, defaultActivities)
	return activities
}

// RecomputeScheduleTotals derives completionRate, totalPomodoros and
// totalFocusTime from the current lists. Always a wholesale pass, never
// incremental, so stored values can never drift from the arrays.
func RecomputeScheduleTotals(s *models.DailySchedule) {
	completed := 0
	for _, a := range s.Activities {
		if a.Completed {
			completed++
		}
	}
	if len(s.Activities) > 0 {
		s.CompletionRate = int(float64(completed)/float64(len(s.Activities))*100 + 0.5)
	} else {
		s.CompletionRate = 0
	}

	s.TotalPomodoros = 0
	s.TotalFocusTime = 0
	for _, p := range s.PomodoroSessions {
		if p.Completed {
			s.TotalPomodoros++
			s.TotalFocusTime += p.Duration
		}
	}
}

func loadSchedule(userID, scheduleID uint) (*models.DailySchedule, error) {
	var s models.DailySchedule
	err := config.DB.
		Preload("Activities").
		Preload("PomodoroSessions").
		Where("id = ? AND user_id = ?", scheduleID, userID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func saveSchedule(s *models.DailySchedule) error {
	RecomputeScheduleTotals(s)
	return config.DB.Session(&gormFullSave).Save(s).Error
}

// GetOrCreateTodaySchedule lazily creates today's schedule from the template.
func GetOrCreateTodaySchedule(userID uint) (*models.DailySchedule, error) {
	today := dayStartLocal(time.Now())

	var s models.DailySchedule
	err := config.DB.
		Preload("Activities").
		Preload("PomodoroSessions").
		Where("user_id = ? AND date = ?", userID, today).
		First(&s).Error
	if err == nil {
		return &s, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	s = models.DailySchedule{
		UserID:     userID,
		Date:       today,
		Activities: DefaultActivities(),
	}
	if err := config.DB.Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSchedules returns schedules newest first, optionally date-bounded.
func ListSchedules(userID uint, startDate, endDate *time.Time) ([]models.DailySchedule, error) {
	q := config.DB.
		Preload("Activities").
		Preload("PomodoroSessions").
		Where("user_id = ?", userID)
	if startDate != nil && endDate != nil {
		q = q.Where("date >= ? AND date <= ?", *startDate, *endDate)
	}

	var schedules []models.DailySchedule
	err := q.Order("date desc").Find(&schedules).Error
	return schedules, err
}

// CheckInInput carries the caller-supplied morning check-in fields.
type CheckInInput struct {
	SleepQuality string  `json:"sleepQuality"`
	SleepHours   float64 `json:"sleepHours"`
	Mood         string  `json:"mood"`
	Reflection   string  `json:"reflection"`
	Gratitude    string  `json:"gratitude"`
}

// CompleteMorningCheckIn stamps the check-in complete at the current time,
// merging in sleep/mood fields. Re-submission silently overwrites.
func CompleteMorningCheckIn(userID, scheduleID uint, input CheckInInput) (*models.DailySchedule, error) {
	s, err := loadSchedule(userID, scheduleID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s.MorningCheckIn = models.MorningCheckIn{
		Completed:    true,
		Time:         &now,
		SleepQuality: input.SleepQuality,
		SleepHours:   input.SleepHours,
		Mood:         input.Mood,
		Reflection:   input.Reflection,
		Gratitude:    input.Gratitude,
	}

	if err := saveSchedule(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ActivityPatch is a partial update of one schedule activity.
type ActivityPatch struct {
	Completed  *bool   `json:"completed"`
	Notes      *string `json:"notes"`
	Duration   *int    `json:"duration"`
	Rating     *int    `json:"rating"`
	FocusScore *int    `json:"focusScore"`
}

// ApplyActivityPatch merges the patch into the activity. completedAt is
// stamped only on the first completion; toggling off and on again keeps the
// original timestamp.
func ApplyActivityPatch(a *models.ScheduleActivity, patch ActivityPatch, now time.Time) {
	if patch.Completed != nil {
		a.Completed = *patch.Completed
		if a.Completed && a.CompletedAt == nil {
			t := now
			a.CompletedAt = &t
		}
	}
	if patch.Notes != nil {
		a.Notes = *patch.Notes
	}
	if patch.Duration != nil {
		a.Duration = *patch.Duration
	}
	if patch.Rating != nil {
		a.Rating = *patch.Rating
	}
	if patch.FocusScore != nil {
		a.FocusScore = *patch.FocusScore
	}
}

// UpdateActivity patches one activity inside the schedule and recomputes the
// derived totals before persisting.
func UpdateActivity(userID, scheduleID, activityID uint, patch ActivityPatch) (*models.DailySchedule, error) {
	s, err := loadSchedule(userID, scheduleID)
	if err != nil {
		return nil, err
	}

	var activity *models.ScheduleActivity
	for i := range s.Activities {
		if s.Activities[i].ID == activityID {
			activity = &s.Activities[i]
			break
		}
	}
	if activity == nil {
		return nil, gorm.ErrRecordNotFound
	}

	ApplyActivityPatch(activity, patch, time.Now())

	if err := saveSchedule(s); err != nil {
		return nil, err
	}
	return s, nil
}

// PomodoroInput is a logged focus-timer session.
type PomodoroInput struct {
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	Duration    int        `json:"duration"`
	Task        string     `json:"task"`
	Completed   bool       `json:"completed"`
	Interrupted bool       `json:"interrupted"`
}

// AddPomodoro appends a session and recomputes the focus totals.
func AddPomodoro(userID, scheduleID uint, input PomodoroInput) (*models.DailySchedule, error) {
	s, err := loadSchedule(userID, scheduleID)
	if err != nil {
		return nil, err
	}

	s.PomodoroSessions = append(s.PomodoroSessions, models.PomodoroSession{
		ScheduleID:  s.ID,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Duration:    input.Duration,
		Task:        input.Task,
		Completed:   input.Completed,
		Interrupted: input.Interrupted,
	})

	if err := saveSchedule(s); err != nil {
		return nil, err
	}
	return s, nil
}
