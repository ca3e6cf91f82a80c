package dto

import (
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	ClassID     string          `json:"classID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,dgt0"`
	Description string          `json:"description" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
type UpdateExpenseRequest struct {
	ClassID     *string          `json:"classID"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Date        *time.Time       `json:"date"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	ClassID     string          `json:"classID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedBy   string          `json:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListExpensesResponse wraps the list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		ClassID:     e.ClassID,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}

// ToListExpensesResponse converts a slice of domain.Expense to ListExpensesResponse.
func ToListExpensesResponse(expenses []domain.Expense) ListExpensesResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return ListExpensesResponse{Expenses: responses}
}
