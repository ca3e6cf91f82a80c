package dto

import (
	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaldoResponse is the derived fund position: accepted income, total
// expenses, and their difference.
type SaldoResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// ToSaldoResponse converts a domain.Saldo to SaldoResponse DTO.
func ToSaldoResponse(s *domain.Saldo) SaldoResponse {
	return SaldoResponse{
		Income:  s.Income,
		Expense: s.Expense,
		Balance: s.Balance,
	}
}
