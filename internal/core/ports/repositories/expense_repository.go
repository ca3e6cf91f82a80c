package repositories

import (
	"context"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseRepository defines persistence operations for Expenses.
type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	FindExpenses(ctx context.Context, limit int, offset int) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error

	// SumAmounts totals every expense on record, zero when there are none.
	SumAmounts(ctx context.Context) (decimal.Decimal, error)
	// ExistsByCreator reports whether any expense was created by the given user.
	// Used to guard user deletion.
	ExistsByCreator(ctx context.Context, userID string) (bool, error)
}
