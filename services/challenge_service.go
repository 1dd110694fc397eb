package services

import (
	"fmt"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/config"
	"github.com/Gokulsuresh1918/winter-arc/models"
)

// RecalculateStreak sets currentStreak to the whole days elapsed since
// startDate. The streak advances with wall-clock time regardless of logging;
// only an explicit reset stops it. longestStreak ratchets up, never down.
func RecalculateStreak(ch *models.Challenge, now time.Time) int {
	ch.CurrentStreak = daysBetween(ch.StartDate, now)
	if ch.CurrentStreak > ch.LongestStreak {
		ch.LongestStreak = ch.CurrentStreak
	}
	return ch.CurrentStreak
}

// UnlockMilestones marks every not-yet-achieved milestone whose threshold the
// current streak has reached. Achieved milestones stay achieved until a reset.
// Returns the milestones unlocked by this pass.
func UnlockMilestones(ch *models.Challenge, now time.Time) []*models.ChallengeMilestone {
	var unlocked []*models.ChallengeMilestone
	for i := range ch.Milestones {
		m := &ch.Milestones[i]
		if !m.Achieved && ch.CurrentStreak >= m.Days {
			m.Achieved = true
			t := now
			m.AchievedDate = &t
			unlocked = append(unlocked, m)
		}
	}
	return unlocked
}

// ApplyReset records the failure and restarts the challenge: the reset entry
// keeps the streak at the moment of reset, startDate and currentStreak are
// re-zeroed, every milestone is un-achieved. longestStreak is preserved.
func ApplyReset(ch *models.Challenge, reason string, now time.Time) {
	if reason == "" {
		reason = "Manual reset"
	}
	ch.Resets = append(ch.Resets, models.ChallengeReset{
		ChallengeID:   ch.ID,
		Date:          now,
		Reason:        reason,
		StreakAtReset: ch.CurrentStreak,
	})

	ch.StartDate = now
	ch.CurrentStreak = 0
	ch.Status = models.ChallengeActive

	for i := range ch.Milestones {
		ch.Milestones[i].Achieved = false
		ch.Milestones[i].AchievedDate = nil
	}
}

func loadChallenge(userID, challengeID uint) (*models.Challenge, error) {
	var ch models.Challenge
	err := config.DB.
		Preload("Resets").
		Preload("Milestones").
		Preload("DailyLogs").
		Where("id = ? AND user_id = ?", challengeID, userID).
		First(&ch).Error
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func saveChallenge(ch *models.Challenge) error {
	return config.DB.Session(&gormFullSave).Save(ch).Error
}

// ListChallenges returns all of the user's challenges, newest first, with
// streaks recomputed (not persisted) for the active ones.
func ListChallenges(userID uint) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := config.DB.
		Preload("Resets").
		Preload("Milestones").
		Preload("DailyLogs").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&challenges).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range challenges {
		if challenges[i].Status == models.ChallengeActive {
			RecalculateStreak(&challenges[i], now)
		}
	}
	return challenges, nil
}

// GetActiveChallenge finds the user's active challenge of the given type,
// recomputes its streak and persists the refreshed counters. Returns
// (nil, nil) when no active challenge exists.
func GetActiveChallenge(userID uint, challengeType string) (*models.Challenge, error) {
	var ch models.Challenge
	err := config.DB.
		Preload("Resets").
		Preload("Milestones").
		Preload("DailyLogs").
		Where("user_id = ? AND type = ? AND status = ?", userID, challengeType, models.ChallengeActive).
		Order("created_at desc").
		First(&ch).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	RecalculateStreak(&ch, time.Now())
	if err := saveChallenge(&ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// CreateChallenge starts a challenge today with the default milestone set.
func CreateChallenge(userID uint, challengeType, name string) (*models.Challenge, error) {
	ch := models.Challenge{
		UserID:     userID,
		Type:       challengeType,
		Name:       name,
		StartDate:  time.Now(),
		Status:     models.ChallengeActive,
		Milestones: models.DefaultMilestones(),
	}
	if err := config.DB.Create(&ch).Error; err != nil {
		return nil, err
	}
	return &ch, nil
}

// ResetChallenge runs the reset protocol on the user's challenge.
func ResetChallenge(userID, challengeID uint, reason string) (*models.Challenge, error) {
	ch, err := loadChallenge(userID, challengeID)
	if err != nil {
		return nil, err
	}

	ApplyReset(ch, reason, time.Now())
	if err := saveChallenge(ch); err != nil {
		return nil, err
	}
	return ch, nil
}

// ChallengeLogInput is the caller-supplied part of a daily progress log.
type ChallengeLogInput struct {
	Success    bool   `json:"success"`
	Mood       string `json:"mood"`
	Notes      string `json:"notes"`
	ScreenTime int    `json:"screenTime"`
}

// LogChallengeProgress appends a daily log, recomputes the streak and unlocks
// any reached milestones, emitting a notification per unlock.
func LogChallengeProgress(userID, challengeID uint, input ChallengeLogInput) (*models.Challenge, error) {
	ch, err := loadChallenge(userID, challengeID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ch.DailyLogs = append(ch.DailyLogs, models.ChallengeDailyLog{
		ChallengeID: ch.ID,
		Date:        now,
		Success:     input.Success,
		Mood:        input.Mood,
		Notes:       input.Notes,
		ScreenTime:  input.ScreenTime,
	})

	RecalculateStreak(ch, now)
	unlocked := UnlockMilestones(ch, now)

	if err := saveChallenge(ch); err != nil {
		return nil, err
	}

	for _, m := range unlocked {
		EmitNotification(userID, "milestone",
			fmt.Sprintf("%d-day milestone reached on your %s challenge", m.Days, ch.Type))
	}
	return ch, nil
}

// ChallengeUpdate carries the mutable top-level challenge fields.
type ChallengeUpdate struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

// UpdateChallenge applies a partial merge of name/status.
func UpdateChallenge(userID, challengeID uint, update ChallengeUpdate) (*models.Challenge, error) {
	ch, err := loadChallenge(userID, challengeID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		ch.Name = *update.Name
	}
	if update.Status != nil {
		ch.Status = *update.Status
	}

	if err := saveChallenge(ch); err != nil {
		return nil, err
	}
	return ch, nil
}

// DeleteChallenge removes the challenge and its child rows.
func DeleteChallenge(userID, challengeID uint) error {
	ch, err := loadChallenge(userID, challengeID)
	if err != nil {
		return err
	}
	return config.DB.Select("Resets", "Milestones", "DailyLogs").Delete(ch).Error
}
