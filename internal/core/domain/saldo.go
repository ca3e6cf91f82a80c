package domain

import "github.com/shopspring/decimal"

// Saldo is the derived fund position: accepted income minus all expenses.
// It is never stored; every read recomputes it from the record store.
type Saldo struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}
