package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the persistence shape of an expense row.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	ClassID     string          `db:"class_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	Date        time.Time       `db:"date"`
	AuditFields
}
