package services_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPayments(ctx context.Context, submittedBefore time.Time, limit int) ([]domain.Payment, error) {
	args := m.Called(ctx, submittedBefore, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus, verifiedAt time.Time, verifiedBy string) error {
	args := m.Called(ctx, paymentID, status, verifiedAt, verifiedBy)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindLastWeekNumber(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockPaymentRepository) SumWeekNumbersByStatus(ctx context.Context, userID string, status domain.PaymentStatus) (int, error) {
	args := m.Called(ctx, userID, status)
	return args.Int(0), args.Error(1)
}

func (m *MockPaymentRepository) SumAmountsByStatus(ctx context.Context, status domain.PaymentStatus) (decimal.Decimal, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SaveUsers(ctx context.Context, users []domain.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindBillableUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindExpenses(ctx context.Context, limit int, offset int) ([]domain.Expense, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockExpenseRepository) SumAmounts(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExpenseRepository) ExistsByCreator(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// --- Mock KasSettingRepository ---

type MockKasSettingRepository struct {
	mock.Mock
}

func (m *MockKasSettingRepository) SaveKasSetting(ctx context.Context, setting domain.KasSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func (m *MockKasSettingRepository) FindKasSettingByID(ctx context.Context, settingID string) (*domain.KasSetting, error) {
	args := m.Called(ctx, settingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KasSetting), args.Error(1)
}

func (m *MockKasSettingRepository) FindKasSettings(ctx context.Context, limit int, offset int) ([]domain.KasSetting, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KasSetting), args.Error(1)
}

func (m *MockKasSettingRepository) FindFirstKasSetting(ctx context.Context) (*domain.KasSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KasSetting), args.Error(1)
}

func (m *MockKasSettingRepository) FindKasSettingByClassID(ctx context.Context, classID string) (*domain.KasSetting, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KasSetting), args.Error(1)
}

func (m *MockKasSettingRepository) UpdateKasSetting(ctx context.Context, setting domain.KasSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func (m *MockKasSettingRepository) DeleteKasSetting(ctx context.Context, settingID string) error {
	args := m.Called(ctx, settingID)
	return args.Error(0)
}

// --- Mock ActivityLogRepository ---

type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) SaveActivityLog(ctx context.Context, log domain.ActivityLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockActivityLogRepository) FindActivityLogByID(ctx context.Context, logID string) (*domain.ActivityLog, error) {
	args := m.Called(ctx, logID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityLog), args.Error(1)
}

func (m *MockActivityLogRepository) FindActivityLogs(ctx context.Context, limit int, offset int) ([]domain.ActivityLog, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLog), args.Error(1)
}

func (m *MockActivityLogRepository) DeleteActivityLog(ctx context.Context, logID string) error {
	args := m.Called(ctx, logID)
	return args.Error(0)
}

// --- Mock ClassRepository ---

type MockClassRepository struct {
	mock.Mock
}

func (m *MockClassRepository) SaveClass(ctx context.Context, class domain.Class) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockClassRepository) FindClassByID(ctx context.Context, classID string) (*domain.Class, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Class), args.Error(1)
}

func (m *MockClassRepository) FindClasses(ctx context.Context, limit int, offset int) ([]domain.Class, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Class), args.Error(1)
}

func (m *MockClassRepository) UpdateClass(ctx context.Context, class domain.Class) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *MockClassRepository) DeleteClass(ctx context.Context, classID string) error {
	args := m.Called(ctx, classID)
	return args.Error(0)
}

// --- Mock ProofStore ---

type MockProofStore struct {
	mock.Mock
}

func (m *MockProofStore) Save(filename string, r io.Reader) (string, error) {
	args := m.Called(filename, r)
	return args.String(0), args.Error(1)
}

// --- Mock ActivityRecorder ---

type MockActivityRecorder struct {
	mock.Mock
}

func (m *MockActivityRecorder) RecordActivity(ctx context.Context, userID *string, action, description string) {
	m.Called(ctx, userID, action, description)
}
