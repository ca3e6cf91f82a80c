package services

import (
	"context"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
)

// ExpenseSvcFacade defines the operations for expense records.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, limit, offset int) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}
