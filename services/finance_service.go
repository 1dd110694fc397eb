package services

import (
	"time"

	"github.com/Gokulsuresh1918/winter-arc/config"
	"github.com/Gokulsuresh1918/winter-arc/models"

	"gorm.io/gorm"
)

// RecomputeFinanceTotals derives income/expense/balance from the transaction
// list. Wholesale recompute on every persist.
func RecomputeFinanceTotals(log *models.FinanceLog) {
	log.TotalIncome = 0
	log.TotalExpense = 0
	for _, t := range log.Transactions {
		switch t.Type {
		case models.TransactionIncome:
			log.TotalIncome += t.Amount
		case models.TransactionExpense:
			log.TotalExpense += t.Amount
		}
	}
	log.Balance = log.TotalIncome - log.TotalExpense
}

func loadFinanceLog(userID, logID uint) (*models.FinanceLog, error) {
	var log models.FinanceLog
	err := config.DB.
		Preload("Transactions").
		Where("id = ? AND user_id = ?", logID, userID).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func saveFinanceLog(log *models.FinanceLog) error {
	RecomputeFinanceTotals(log)
	return config.DB.Session(&gormFullSave).Save(log).Error
}

// GetOrCreateTodayFinanceLog lazily creates today's log with default budgets.
func GetOrCreateTodayFinanceLog(userID uint) (*models.FinanceLog, error) {
	today := dayStartLocal(time.Now())

	var log models.FinanceLog
	err := config.DB.
		Preload("Transactions").
		Where("user_id = ? AND date = ?", userID, today).
		First(&log).Error
	if err == nil {
		return &log, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	log = models.FinanceLog{
		UserID:        userID,
		Date:          today,
		DailyBudget:   1000,
		MonthlyBudget: 30000,
	}
	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// ListFinanceLogs returns logs newest first, optionally date-bounded.
func ListFinanceLogs(userID uint, startDate, endDate *time.Time) ([]models.FinanceLog, error) {
	q := config.DB.Preload("Transactions").Where("user_id = ?", userID)
	if startDate != nil && endDate != nil {
		q = q.Where("date >= ? AND date <= ?", *startDate, *endDate)
	}

	var logs []models.FinanceLog
	err := q.Order("date desc").Find(&logs).Error
	return logs, err
}

// TransactionInput is a caller-supplied transaction.
type TransactionInput struct {
	Type        string  `json:"type" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

// AddTransaction appends a transaction and recomputes the totals.
func AddTransaction(userID, logID uint, input TransactionInput) (*models.FinanceLog, error) {
	log, err := loadFinanceLog(userID, logID)
	if err != nil {
		return nil, err
	}

	log.Transactions = append(log.Transactions, models.Transaction{
		FinanceLogID: log.ID,
		Type:         input.Type,
		Category:     input.Category,
		Amount:       input.Amount,
		Description:  input.Description,
		Date:         time.Now(),
	})

	if err := saveFinanceLog(log); err != nil {
		return nil, err
	}
	return log, nil
}

// RemoveTransaction deletes one transaction and recomputes the totals.
func RemoveTransaction(userID, logID, transactionID uint) (*models.FinanceLog, error) {
	log, err := loadFinanceLog(userID, logID)
	if err != nil {
		return nil, err
	}

	kept := log.Transactions[:0]
	found := false
	for _, t := range log.Transactions {
		if t.ID == transactionID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return nil, gorm.ErrRecordNotFound
	}
	log.Transactions = kept

	if err := config.DB.Delete(&models.Transaction{}, transactionID).Error; err != nil {
		return nil, err
	}
	if err := saveFinanceLog(log); err != nil {
		return nil, err
	}
	return log, nil
}

// UpdateBudgets sets the daily/monthly budgets when provided.
func UpdateBudgets(userID, logID uint, daily, monthly *float64) (*models.FinanceLog, error) {
	log, err := loadFinanceLog(userID, logID)
	if err != nil {
		return nil, err
	}

	if daily != nil {
		log.DailyBudget = *daily
	}
	if monthly != nil {
		log.MonthlyBudget = *monthly
	}

	if err := saveFinanceLog(log); err != nil {
		return nil, err
	}
	return log, nil
}

// MonthlyFinanceStats aggregates the current calendar month.
type MonthlyFinanceStats struct {
	TotalIncome     float64 `json:"totalIncome"`
	TotalExpense    float64 `json:"totalExpense"`
	Balance         float64 `json:"balance"`
	DaysLogged      int     `json:"daysLogged"`
	AvgDailyExpense float64 `json:"avgDailyExpense"`
}

// GetMonthlyFinanceStats sums the month-to-date logs.
func GetMonthlyFinanceStats(userID uint) (*MonthlyFinanceStats, error) {
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)

	var logs []models.FinanceLog
	err := config.DB.
		Where("user_id = ? AND date >= ?", userID, firstOfMonth).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	stats := MonthlyFinanceStats{DaysLogged: len(logs)}
	for _, log := range logs {
		stats.TotalIncome += log.TotalIncome
		stats.TotalExpense += log.TotalExpense
		stats.Balance += log.Balance
	}
	if len(logs) > 0 {
		stats.AvgDailyExpense = stats.TotalExpense / float64(len(logs))
	}
	return &stats, nil
}
