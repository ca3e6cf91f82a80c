package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentRepository defines persistence operations for Payments.
// The aggregate queries exist so dues status can always be recomputed
// from the full payment history rather than from cached figures.
type PaymentRepository interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	// FindPayments returns payments submitted strictly before the given time,
	// newest first. Used with pagination tokens encoding the last seen time.
	FindPayments(ctx context.Context, submittedBefore time.Time, limit int) ([]domain.Payment, error)
	FindPaymentsByUser(ctx context.Context, userID string) ([]domain.Payment, error)
	UpdatePayment(ctx context.Context, payment domain.Payment) error
	// UpdatePaymentStatus sets only the status and verification fields.
	UpdatePaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus, verifiedAt time.Time, verifiedBy string) error
	DeletePayment(ctx context.Context, paymentID string) error

	// FindLastWeekNumber returns the highest week_number among a user's
	// payments, or 0 when the user has none.
	FindLastWeekNumber(ctx context.Context, userID string) (int, error)
	// SumWeekNumbersByStatus sums week_number over a user's payments in the
	// given status, 0 when there are none.
	SumWeekNumbersByStatus(ctx context.Context, userID string, status domain.PaymentStatus) (int, error)
	// SumAmountsByStatus sums amount over every payment in the given status,
	// zero when there are none.
	SumAmountsByStatus(ctx context.Context, status domain.PaymentStatus) (decimal.Decimal, error)
}
