package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

type Transaction struct {
	gorm.Model
	FinanceLogID uint      `gorm:"index;not null" json:"-"`
	Type         string    `gorm:"not null" json:"type"`     // income|expense
	Category     string    `gorm:"not null" json:"category"` // salary|freelance|food|transport|…
	Amount       float64   `gorm:"not null" json:"amount"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
}

// FinanceLog is the per-day money record. TotalIncome, TotalExpense and
// Balance are recomputed from the transaction list before each persist.
type FinanceLog struct {
	gorm.Model
	UserID        uint          `gorm:"uniqueIndex:idx_financelog_user_date;not null" json:"userId"`
	Date          time.Time     `gorm:"uniqueIndex:idx_financelog_user_date;not null" json:"date"`
	Transactions  []Transaction `json:"transactions"`
	DailyBudget   float64       `gorm:"default:1000" json:"dailyBudget"`
	MonthlyBudget float64       `gorm:"default:30000" json:"monthlyBudget"`
	TotalIncome   float64       `json:"totalIncome"`
	TotalExpense  float64       `json:"totalExpense"`
	Balance       float64       `json:"balance"`
}
