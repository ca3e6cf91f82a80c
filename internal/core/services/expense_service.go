package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/apperrors"
	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/kas_kelas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/google/uuid"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
	activity    portssvc.ActivityRecorderSvc
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepository, activity portssvc.ActivityRecorderSvc) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
		activity:    activity,
	}
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		ClassID:     req.ClassID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	s.activity.RecordActivity(ctx, &creatorUserID, "expense_recorded",
		fmt.Sprintf("Expense of %s recorded: %s", req.Amount.String(), req.Description))
	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

func (s *expenseService) ListExpenses(ctx context.Context, limit, offset int) ([]domain.Expense, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.expenseRepo.FindExpenses(ctx, limit, offset)
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if req.ClassID != nil {
		expense.ClassID = *req.ClassID
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	expense.LastUpdatedAt = time.Now().UTC()
	expense.LastUpdatedBy = requestingUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	return s.expenseRepo.DeleteExpense(ctx, expenseID)
}
