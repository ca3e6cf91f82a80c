package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/apperrors"
	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/core/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/SscSPs/kas_kelas_app/internal/handlers"
	"github.com/SscSPs/kas_kelas_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPaymentsResponse), args.Error(1)
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) DeletePayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func (m *MockPaymentService) SubmitPayment(ctx context.Context, req dto.SubmitPaymentRequest, proofName string, proof io.Reader) (*dto.SubmitPaymentResponse, error) {
	args := m.Called(ctx, req, proofName, proof)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubmitPaymentResponse), args.Error(1)
}

func (m *MockPaymentService) ApprovePayment(ctx context.Context, paymentID string, verifierUserID string) error {
	args := m.Called(ctx, paymentID, verifierUserID)
	return args.Error(0)
}

func (m *MockPaymentService) RejectPayment(ctx context.Context, paymentID string, verifierUserID string) error {
	args := m.Called(ctx, paymentID, verifierUserID)
	return args.Error(0)
}

func (m *MockPaymentService) ListArrears(ctx context.Context, now time.Time) ([]domain.UserArrears, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserArrears), args.Error(1)
}

func (m *MockPaymentService) AddManualArrears(ctx context.Context, req dto.AddArrearsRequest) (*domain.Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock SaldoService ---
type MockSaldoService struct {
	mock.Mock
}

func (m *MockSaldoService) GetSaldo(ctx context.Context) (*domain.Saldo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Saldo), args.Error(1)
}

var _ portssvc.SaldoSvcFacade = (*MockSaldoService)(nil)

// --- Test Suite ---
type PaymentHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPaymentService *MockPaymentService
	mockSaldoService   *MockSaldoService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *PaymentHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "kka-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockPaymentService = new(MockPaymentService)
	suite.mockSaldoService = new(MockSaldoService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterPaymentRoutes(v1, suite.mockPaymentService)
	handlers.RegisterSaldoRoutes(v1, suite.mockSaldoService)
}

func (suite *PaymentHandlerTestSuite) authedRequest(method, url string, body io.Reader, userID string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, body)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *PaymentHandlerTestSuite) TestApprovePayment_Success() {
	paymentID := uuid.NewString()
	adminID := uuid.NewString()

	suite.mockPaymentService.On("ApprovePayment",
		mock.Anything, paymentID, adminID,
	).Return(nil).Once()

	w := suite.authedRequest(http.MethodPut, fmt.Sprintf("/api/v1/payments/%s/acc", paymentID), nil, adminID)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestApprovePayment_AlreadyAccepted() {
	paymentID := uuid.NewString()
	adminID := uuid.NewString()

	suite.mockPaymentService.On("ApprovePayment",
		mock.Anything, paymentID, adminID,
	).Return(services.ErrPaymentAlreadyAccepted).Once()

	w := suite.authedRequest(http.MethodPut, fmt.Sprintf("/api/v1/payments/%s/acc", paymentID), nil, adminID)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestRejectPayment_AlreadyRejected() {
	paymentID := uuid.NewString()
	adminID := uuid.NewString()

	suite.mockPaymentService.On("RejectPayment",
		mock.Anything, paymentID, adminID,
	).Return(services.ErrPaymentAlreadyRejected).Once()

	w := suite.authedRequest(http.MethodPut, fmt.Sprintf("/api/v1/payments/%s/reject", paymentID), nil, adminID)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestApprovePayment_NotFound() {
	paymentID := uuid.NewString()
	adminID := uuid.NewString()

	suite.mockPaymentService.On("ApprovePayment",
		mock.Anything, paymentID, adminID,
	).Return(apperrors.ErrNotFound).Once()

	w := suite.authedRequest(http.MethodPut, fmt.Sprintf("/api/v1/payments/%s/acc", paymentID), nil, adminID)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestApprovePayment_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/payments/some-id/acc", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "ApprovePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestListArrears_Success() {
	adminID := uuid.NewString()
	rows := []domain.UserArrears{
		{UserID: "student-1", UserName: "Budi", PaidWeeks: 2, CurrentWeek: 4, Arrears: 2},
		{UserID: "student-2", UserName: "Sari", PaidWeeks: 4, CurrentWeek: 4, Arrears: 0},
	}
	suite.mockPaymentService.On("ListArrears", mock.Anything, mock.Anything).Return(rows, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/payments/arrears", nil, adminID)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.UserArrearsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Equal("student-1", body[0].UserID)
	suite.Equal(2, body[0].Arrears)
	suite.Equal(0, body[1].Arrears)
}

func (suite *PaymentHandlerTestSuite) TestListArrears_NoKasSetting() {
	adminID := uuid.NewString()
	suite.mockPaymentService.On("ListArrears", mock.Anything, mock.Anything).
		Return(nil, services.ErrInvalidKasSetting).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/payments/arrears", nil, adminID)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestGetSaldo_Success() {
	adminID := uuid.NewString()
	saldo := &domain.Saldo{
		Income:  decimal.NewFromInt(50000),
		Expense: decimal.NewFromInt(20000),
		Balance: decimal.NewFromInt(30000),
	}
	suite.mockSaldoService.On("GetSaldo", mock.Anything).Return(saldo, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/saldo", nil, adminID)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.SaldoResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Balance.Equal(decimal.NewFromInt(30000)))
	suite.mockSaldoService.AssertExpectations(suite.T())
}

func TestPaymentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}
