package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/apperrors"
	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	svc "github.com/SscSPs/kas_kelas_app/internal/core/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type KasSettingServiceTestSuite struct {
	suite.Suite
	mockKasSettingRepo *MockKasSettingRepository
	mockPaymentRepo    *MockPaymentRepository
	mockActivity       *MockActivityRecorder
	service            services.KasSettingSvcFacade
	ctx                context.Context
}

func (suite *KasSettingServiceTestSuite) SetupTest() {
	suite.mockKasSettingRepo = new(MockKasSettingRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockActivity = new(MockActivityRecorder)
	suite.service = svc.NewKasSettingService(suite.mockKasSettingRepo, suite.mockPaymentRepo, suite.mockActivity)
	suite.ctx = context.Background()
}

func (suite *KasSettingServiceTestSuite) TestCreateKasSetting() {
	suite.mockKasSettingRepo.On("SaveKasSetting", suite.ctx, mock.MatchedBy(func(s domain.KasSetting) bool {
		return s.ClassID == "class-1" && s.AmountPerWeek.Equal(decimal.NewFromInt(10000))
	})).Return(nil).Once()
	suite.mockActivity.On("RecordActivity", suite.ctx, mock.Anything, "kas_setting_created", mock.Anything).Return()

	req := dto.CreateKasSettingRequest{
		ClassID:       "class-1",
		AmountPerWeek: decimal.NewFromInt(10000),
		StartDate:     time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	setting, err := suite.service.CreateKasSetting(suite.ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.NotEmpty(setting.SettingID)
	suite.Equal("admin-1", setting.CreatedBy)
	suite.mockKasSettingRepo.AssertExpectations(suite.T())
}

func (suite *KasSettingServiceTestSuite) TestCreateKasSetting_NonPositiveAmount() {
	req := dto.CreateKasSettingRequest{
		ClassID:       "class-1",
		AmountPerWeek: decimal.Zero,
		StartDate:     time.Now().UTC(),
	}
	_, err := suite.service.CreateKasSetting(suite.ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockKasSettingRepo.AssertNotCalled(suite.T(), "SaveKasSetting", mock.Anything, mock.Anything)
}

func (suite *KasSettingServiceTestSuite) TestAddBalance_RecordsAcceptedZeroWeekPayment() {
	suite.mockPaymentRepo.On("SavePayment", suite.ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.UserID == "admin-1" &&
			p.WeekNumber == 0 &&
			p.Status == domain.PaymentAccepted &&
			p.Amount.Equal(decimal.NewFromInt(75000)) &&
			p.VerifiedAt != nil &&
			p.VerifiedBy != nil && *p.VerifiedBy == "admin-1"
	})).Return(nil).Once()
	suite.mockActivity.On("RecordActivity", suite.ctx, mock.Anything, "balance_added", mock.Anything).Return()

	payment, err := suite.service.AddBalance(suite.ctx, dto.AddBalanceRequest{Amount: decimal.NewFromInt(75000)}, "admin-1")

	suite.Require().NoError(err)
	// Zero week coverage keeps the top-up out of everyone's dues position.
	suite.Equal(0, payment.WeekNumber)
	suite.Equal(domain.PaymentAccepted, payment.Status)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *KasSettingServiceTestSuite) TestAddBalance_NonPositiveAmount() {
	_, err := suite.service.AddBalance(suite.ctx, dto.AddBalanceRequest{Amount: decimal.NewFromInt(-100)}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func TestKasSettingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(KasSettingServiceTestSuite))
}
