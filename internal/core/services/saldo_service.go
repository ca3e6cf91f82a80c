package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/kas_kelas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
)

// saldoService derives the fund balance from accepted payments and expenses.
// Only accepted payments count as income; pending, rejected and manual
// arrears rows never move money.
type saldoService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepository
	expenseRepo portsrepo.ExpenseRepository
}

// NewSaldoService creates a new saldo service.
func NewSaldoService(paymentRepo portsrepo.PaymentRepository, expenseRepo portsrepo.ExpenseRepository) portssvc.SaldoSvcFacade {
	return &saldoService{
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
	}
}

func (s *saldoService) GetSaldo(ctx context.Context) (*domain.Saldo, error) {
	income, err := s.paymentRepo.SumAmountsByStatus(ctx, domain.PaymentAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to sum accepted payments: %w", err)
	}

	expense, err := s.expenseRepo.SumAmounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return &domain.Saldo{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}, nil
}
