package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	svc "github.com/SscSPs/kas_kelas_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SaldoServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockExpenseRepo *MockExpenseRepository
	service         services.SaldoSvcFacade
	ctx             context.Context
}

func (suite *SaldoServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.service = svc.NewSaldoService(suite.mockPaymentRepo, suite.mockExpenseRepo)
	suite.ctx = context.Background()
}

func (suite *SaldoServiceTestSuite) TestGetSaldo() {
	// Only accepted payments count as income; the repo query is scoped by
	// status so pending and rejected rows never reach the sum.
	suite.mockPaymentRepo.On("SumAmountsByStatus", suite.ctx, domain.PaymentAccepted).
		Return(decimal.NewFromInt(50000), nil).Once()
	suite.mockExpenseRepo.On("SumAmounts", suite.ctx).
		Return(decimal.NewFromInt(20000), nil).Once()

	saldo, err := suite.service.GetSaldo(suite.ctx)

	suite.Require().NoError(err)
	suite.True(saldo.Income.Equal(decimal.NewFromInt(50000)))
	suite.True(saldo.Expense.Equal(decimal.NewFromInt(20000)))
	suite.True(saldo.Balance.Equal(decimal.NewFromInt(30000)))
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *SaldoServiceTestSuite) TestGetSaldo_EmptyLedger() {
	suite.mockPaymentRepo.On("SumAmountsByStatus", suite.ctx, domain.PaymentAccepted).
		Return(decimal.Zero, nil).Once()
	suite.mockExpenseRepo.On("SumAmounts", suite.ctx).
		Return(decimal.Zero, nil).Once()

	saldo, err := suite.service.GetSaldo(suite.ctx)

	suite.Require().NoError(err)
	suite.True(saldo.Balance.IsZero())
}

func (suite *SaldoServiceTestSuite) TestGetSaldo_NegativeBalance() {
	suite.mockPaymentRepo.On("SumAmountsByStatus", suite.ctx, domain.PaymentAccepted).
		Return(decimal.NewFromInt(10000), nil).Once()
	suite.mockExpenseRepo.On("SumAmounts", suite.ctx).
		Return(decimal.NewFromInt(25000), nil).Once()

	saldo, err := suite.service.GetSaldo(suite.ctx)

	suite.Require().NoError(err)
	// Overspending is reported as-is, not clamped.
	suite.True(saldo.Balance.Equal(decimal.NewFromInt(-15000)))
}

func (suite *SaldoServiceTestSuite) TestGetSaldo_PaymentSumError() {
	suite.mockPaymentRepo.On("SumAmountsByStatus", suite.ctx, domain.PaymentAccepted).
		Return(decimal.Zero, assert.AnError).Once()

	saldo, err := suite.service.GetSaldo(suite.ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.Nil(saldo)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SumAmounts", suite.ctx)
}

func TestSaldoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaldoServiceTestSuite))
}
