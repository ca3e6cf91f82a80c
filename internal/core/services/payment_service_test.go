package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/apperrors"
	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	svc "github.com/SscSPs/kas_kelas_app/internal/core/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo    *MockPaymentRepository
	mockUserRepo       *MockUserRepository
	mockKasSettingRepo *MockKasSettingRepository
	mockProofStore     *MockProofStore
	mockActivity       *MockActivityRecorder
	service            services.PaymentSvcFacade
	ctx                context.Context
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockKasSettingRepo = new(MockKasSettingRepository)
	suite.mockProofStore = new(MockProofStore)
	suite.mockActivity = new(MockActivityRecorder)
	suite.service = svc.NewPaymentService(
		suite.mockPaymentRepo,
		suite.mockUserRepo,
		suite.mockKasSettingRepo,
		suite.mockProofStore,
		suite.mockActivity,
	)
	suite.ctx = context.Background()
}

func (suite *PaymentServiceTestSuite) weeklySetting(amountPerWeek int64, startDate time.Time) *domain.KasSetting {
	return &domain.KasSetting{
		SettingID:     "setting-1",
		ClassID:       "class-1",
		AmountPerWeek: decimal.NewFromInt(amountPerWeek),
		StartDate:     startDate,
	}
}

func (suite *PaymentServiceTestSuite) TestSubmitPayment_CoversWholeWeeks() {
	setting := suite.weeklySetting(10000, time.Now().UTC().AddDate(0, -1, 0))
	suite.mockKasSettingRepo.On("FindFirstKasSetting", suite.ctx).Return(setting, nil).Once()
	suite.mockProofStore.On("Save", "bukti.jpg", mock.Anything).Return("/uploads/bukti/abc_bukti.jpg", nil).Once()
	suite.mockPaymentRepo.On("FindLastWeekNumber", suite.ctx, "user-1").Return(3, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", suite.ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.UserID == "user-1" &&
			p.WeekNumber == 2 &&
			p.Status == domain.PaymentPending &&
			p.Amount.Equal(decimal.NewFromInt(25000)) &&
			p.ProofURL != nil && *p.ProofURL == "/uploads/bukti/abc_bukti.jpg"
	})).Return(nil).Once()
	suite.mockActivity.On("RecordActivity", suite.ctx, mock.Anything, "payment_submitted", mock.Anything).Return()

	req := dto.SubmitPaymentRequest{UserID: "user-1", Amount: decimal.NewFromInt(25000)}
	resp, err := suite.service.SubmitPayment(suite.ctx, req, "bukti.jpg", strings.NewReader("proof-bytes"))

	suite.Require().NoError(err)
	// 25000 at 10000/week covers 2 whole weeks, the 5000 remainder is dropped.
	suite.Equal(2, resp.WeekNumber)
	// Picks up right after the highest recorded week.
	suite.Equal(4, resp.StartWeek)
	suite.Equal("File uploaded successfully", resp.Message)
	suite.Equal("/uploads/bukti/abc_bukti.jpg", resp.FilePath)
	suite.NotEmpty(resp.PaymentID)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockProofStore.AssertExpectations(suite.T())
	suite.mockKasSettingRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestSubmitPayment_ExactMultiple() {
	setting := suite.weeklySetting(5000, time.Now().UTC())
	suite.mockKasSettingRepo.On("FindFirstKasSetting", suite.ctx).Return(setting, nil).Once()
	suite.mockProofStore.On("Save", "proof.png", mock.Anything).Return("/uploads/bukti/proof.png", nil).Once()
	suite.mockPaymentRepo.On("FindLastWeekNumber", suite.ctx, "user-2").Return(0, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", suite.ctx, mock.Anything).Return(nil).Once()
	suite.mockActivity.On("RecordActivity", suite.ctx, mock.Anything, "payment_submitted", mock.Anything).Return()

	req := dto.SubmitPaymentRequest{UserID: "user-2", Amount: decimal.NewFromInt(15000)}
	resp, err := suite.service.SubmitPayment(suite.ctx, req, "proof.png", strings.NewReader("x"))

	suite.Require().NoError(err)
	suite.Equal(3, resp.WeekNumber)
	suite.Equal(1, resp.StartWeek)
}

func (suite *PaymentServiceTestSuite) TestSubmitPayment_NonPositiveAmount() {
	req := dto.SubmitPaymentRequest{UserID: "user-1", Amount: decimal.Zero}
	resp, err := suite.service.SubmitPayment(suite.ctx, req, "bukti.jpg", strings.NewReader("x"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(resp)
	suite.mockKasSettingRepo.AssertNotCalled(suite.T(), "FindFirstKasSetting", mock.Anything)
	suite.mockProofStore.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestSubmitPayment_NoKasSetting() {
	suite.mockKasSettingRepo.On("FindFirstKasSetting", suite.ctx).Return(nil, apperrors.ErrNotFound).Once()

	req := dto.SubmitPaymentRequest{UserID: "user-1", Amount: decimal.NewFromInt(10000)}
	resp, err := suite.service.SubmitPayment(suite.ctx, req, "bukti.jpg", strings.NewReader("x"))

	suite.Require().Error(err)
	suite.ErrorIs(err, svc.ErrInvalidKasSetting)
	suite.Nil(resp)
	suite.mockProofStore.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestSubmitPayment_ZeroWeeklyAmount() {
	setting := suite.weeklySetting(0, time.Now().UTC())
	suite.mockKasSettingRepo.On("FindFirstKasSetting", suite.ctx).Return(setting, nil).Once()

	req := dto.SubmitPaymentRequest{UserID: "user-1", Amount: decimal.NewFromInt(10000)}
	_, err := suite.service.SubmitPayment(suite.ctx, req, "bukti.jpg", strings.NewReader("x"))

	suite.Require().Error(err)
	suite.ErrorIs(err, svc.ErrInvalidKasSetting)
}

func (suite *PaymentServiceTestSuite) TestSubmitPayment_ProofStoreError() {
	setting := suite.weeklySetting(10000, time.Now().UTC())
	suite.mockKasSettingRepo.On("FindFirstKasSetting", suite.ctx).Return(setting, nil).Once()
	suite.mockProofStore.On("Save", "bukti.jpg", mock.Anything).Return("", assert.AnError).Once()

	req := dto.SubmitPaymentRequest{UserID: "user-1", Amount: decimal.NewFromInt(10000)}
	_, err := suite.service.SubmitPayment(suite.ctx, req, "bukti.jpg", strings.NewReader("x"))

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestApprovePayment_Success() {
	pending := &domain.Payment{PaymentID: "pay-1", UserID: "user-1", Status: domain.PaymentPending}
	suite.mockPaymentRepo.On("FindPaymentByID", suite.ctx, "pay-1").Return(pending, nil).Once()
	suite.mockPaymentRepo.On("UpdatePaymentStatus", suite.ctx, "pay-1", domain.PaymentAccepted, mock.Anything, "admin-1").Return(nil).Once()
	suite.mockActivity.On("RecordActivity", suite.ctx, mock.Anything, "payment_accepted", mock.Anything).Return()

	err := suite.service.ApprovePayment(suite.ctx, "pay-1", "admin-1")

	suite.Require().NoError(err)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestApprovePayment_AlreadyAccepted() {
	accepted := &domain.Payment{PaymentID: "pay-1", UserID: "user-1", Status: domain.PaymentAccepted}
	suite.mockPaymentRepo.On("FindPaymentByID", suite.ctx, "pay-1").Return(accepted, nil).Once()

	err := suite.service.ApprovePayment(suite.ctx, "pay-1", "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, svc.ErrPaymentAlreadyAccepted)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePaymentStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestApprovePayment_AfterRejectIsAllowed() {
	rejected := &domain.Payment{PaymentID: "pay-1", UserID: "user-1", Status: domain.PaymentRejected}
	suite.mockPaymentRepo.On("FindPaymentByID", suite.ctx, "pay-1").Return(rejected, nil).Once()
	suite.mockPaymentRepo.On("UpdatePaymentStatus", suite.ctx, "pay-1", domain.PaymentAccepted, mock.Anything, "admin-1").Return(nil).Once()
	suite.mockActivity.On("RecordActivity", suite.ctx, mock.Anything, "payment_accepted", mock.Anything).Return()

	err := suite.service.ApprovePayment(suite.ctx, "pay-1", "admin-1")

	suite.Require().NoError(err)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRejectPayment_AlreadyRejected() {
	rejected := &domain.Payment{PaymentID: "pay-1", UserID: "user-1", Status: domain.PaymentRejected}
	suite.mockPaymentRepo.On("FindPaymentByID", suite.ctx, "pay-1").Return(rejected, nil).Once()

	err := suite.service.RejectPayment(suite.ctx, "pay-1", "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, svc.ErrPaymentAlreadyRejected)
}

func (suite *PaymentServiceTestSuite) TestRejectPayment_Success() {
	pending := &domain.Payment{PaymentID: "pay-1", UserID: "user-1", Status: domain.PaymentPending}
	suite.mockPaymentRepo.On("FindPaymentByID", suite.ctx, "pay-1").Return(pending, nil).Once()
	suite.mockPaymentRepo.On("UpdatePaymentStatus", suite.ctx, "pay-1", domain.PaymentRejected, mock.Anything, "admin-1").Return(nil).Once()
	suite.mockActivity.On("RecordActivity", suite.ctx, mock.Anything, "payment_rejected", mock.Anything).Return()

	err := suite.service.RejectPayment(suite.ctx, "pay-1", "admin-1")

	suite.Require().NoError(err)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestApprovePayment_NotFound() {
	suite.mockPaymentRepo.On("FindPaymentByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ApprovePayment(suite.ctx, "missing", "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestListArrears_ComputesPerUser() {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	// 21 full days before now puts the schedule in its fourth week.
	start := now.AddDate(0, 0, -21)
	setting := suite.weeklySetting(10000, start)
	suite.mockKasSettingRepo.On("FindFirstKasSetting", suite.ctx).Return(setting, nil).Once()

	classID := "class-1"
	users := []domain.User{
		{UserID: "student-1", FullName: "Budi", Role: domain.RoleStudent, ClassID: &classID},
		{UserID: "student-2", FullName: "Sari", Role: domain.RoleStudent, ClassID: &classID},
		{UserID: "parent-1", FullName: "Pak Joko", Role: domain.RoleParent, ClassID: &classID},
	}
	suite.mockUserRepo.On("FindBillableUsers", suite.ctx).Return(users, nil).Once()

	// student-1: paid 2 weeks, 1 manual week tacked on -> 4 - 2 + 1 = 3.
	suite.mockPaymentRepo.On("SumWeekNumbersByStatus", suite.ctx, "student-1", domain.PaymentAccepted).Return(2, nil).Once()
	suite.mockPaymentRepo.On("SumWeekNumbersByStatus", suite.ctx, "student-1", domain.PaymentManualArrears).Return(1, nil).Once()
	// student-2: paid ahead, never goes negative.
	suite.mockPaymentRepo.On("SumWeekNumbersByStatus", suite.ctx, "student-2", domain.PaymentAccepted).Return(10, nil).Once()
	suite.mockPaymentRepo.On("SumWeekNumbersByStatus", suite.ctx, "student-2", domain.PaymentManualArrears).Return(0, nil).Once()
	// parent-1: never paid.
	suite.mockPaymentRepo.On("SumWeekNumbersByStatus", suite.ctx, "parent-1", domain.PaymentAccepted).Return(0, nil).Once()
	suite.mockPaymentRepo.On("SumWeekNumbersByStatus", suite.ctx, "parent-1", domain.PaymentManualArrears).Return(0, nil).Once()

	result, err := suite.service.ListArrears(suite.ctx, now)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("student-1", result[0].UserID)
	suite.Equal(4, result[0].CurrentWeek)
	suite.Equal(2, result[0].PaidWeeks)
	suite.Equal(3, result[0].Arrears)

	suite.Equal("student-2", result[1].UserID)
	suite.Equal(0, result[1].Arrears)

	suite.Equal("parent-1", result[2].UserID)
	suite.Equal(4, result[2].Arrears)

	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestListArrears_ReadOnly() {
	now := time.Now().UTC()
	setting := suite.weeklySetting(10000, now.AddDate(0, 0, -7))
	suite.mockKasSettingRepo.On("FindFirstKasSetting", suite.ctx).Return(setting, nil).Once()
	suite.mockUserRepo.On("FindBillableUsers", suite.ctx).Return([]domain.User{
		{UserID: "student-1", FullName: "Budi", Role: domain.RoleStudent},
	}, nil).Once()
	suite.mockPaymentRepo.On("SumWeekNumbersByStatus", suite.ctx, "student-1", domain.PaymentAccepted).Return(0, nil).Once()
	suite.mockPaymentRepo.On("SumWeekNumbersByStatus", suite.ctx, "student-1", domain.PaymentManualArrears).Return(0, nil).Once()

	_, err := suite.service.ListArrears(suite.ctx, now)

	suite.Require().NoError(err)
	// Listing arrears is a pure read; nothing gets written.
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestListArrears_StartDateToday() {
	now := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	setting := suite.weeklySetting(10000, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	suite.mockKasSettingRepo.On("FindFirstKasSetting", suite.ctx).Return(setting, nil).Once()
	suite.mockUserRepo.On("FindBillableUsers", suite.ctx).Return([]domain.User{
		{UserID: "student-1", FullName: "Budi", Role: domain.RoleStudent},
	}, nil).Once()
	suite.mockPaymentRepo.On("SumWeekNumbersByStatus", suite.ctx, "student-1", domain.PaymentAccepted).Return(0, nil).Once()
	suite.mockPaymentRepo.On("SumWeekNumbersByStatus", suite.ctx, "student-1", domain.PaymentManualArrears).Return(0, nil).Once()

	result, err := suite.service.ListArrears(suite.ctx, now)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	// The very first day counts as week one.
	suite.Equal(1, result[0].CurrentWeek)
	suite.Equal(1, result[0].Arrears)
}

func (suite *PaymentServiceTestSuite) TestListArrears_NoKasSetting() {
	suite.mockKasSettingRepo.On("FindFirstKasSetting", suite.ctx).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListArrears(suite.ctx, time.Now().UTC())

	suite.Require().Error(err)
	suite.ErrorIs(err, svc.ErrInvalidKasSetting)
}

func (suite *PaymentServiceTestSuite) TestAddManualArrears_PricesFromClassSetting() {
	classID := "class-1"
	user := &domain.User{UserID: "student-1", FullName: "Budi", Role: domain.RoleStudent, ClassID: &classID}
	setting := suite.weeklySetting(10000, time.Now().UTC())
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "student-1").Return(user, nil).Once()
	suite.mockKasSettingRepo.On("FindKasSettingByClassID", suite.ctx, classID).Return(setting, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", suite.ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.UserID == "student-1" &&
			p.WeekNumber == 3 &&
			p.Status == domain.PaymentManualArrears &&
			p.Amount.Equal(decimal.NewFromInt(30000))
	})).Return(nil).Once()
	suite.mockActivity.On("RecordActivity", suite.ctx, mock.Anything, "arrears_added", mock.Anything).Return()

	payment, err := suite.service.AddManualArrears(suite.ctx, dto.AddArrearsRequest{UserID: "student-1", WeekCount: 3})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentManualArrears, payment.Status)
	suite.Equal(3, payment.WeekNumber)
	suite.True(payment.Amount.Equal(decimal.NewFromInt(30000)))
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestAddManualArrears_UserWithoutClass() {
	user := &domain.User{UserID: "admin-1", FullName: "Admin", Role: domain.RoleAdmin}
	suite.mockUserRepo.On("FindUserByID", suite.ctx, "admin-1").Return(user, nil).Once()

	_, err := suite.service.AddManualArrears(suite.ctx, dto.AddArrearsRequest{UserID: "admin-1", WeekCount: 2})

	suite.Require().Error(err)
	suite.ErrorIs(err, svc.ErrInvalidKasSetting)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestAddManualArrears_NonPositiveWeekCount() {
	_, err := suite.service.AddManualArrears(suite.ctx, dto.AddArrearsRequest{UserID: "student-1", WeekCount: 0})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
