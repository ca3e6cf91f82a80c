package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents money spent out of a class fund.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (UUID)
	ClassID     string          `json:"classID"`   // FK -> classes.class_id
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	AuditFields
}
