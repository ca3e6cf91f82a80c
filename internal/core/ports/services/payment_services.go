package services

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payment records.
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a payment by ID.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPayments retrieves a page of payments, newest first, with an
	// opaque cursor for the next page.
	ListPayments(ctx context.Context, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)
}

// PaymentWriterSvc defines direct mutation operations for payment records.
type PaymentWriterSvc interface {
	// CreatePayment inserts a payment record as-is (admin CRUD surface).
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)

	// UpdatePayment updates a payment's editable fields.
	UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error)

	// DeletePayment removes a payment record.
	DeletePayment(ctx context.Context, paymentID string) error
}

// DuesLedgerSvc is the ledger engine: it turns payment and settings facts
// into dues status and keeps the approval workflow honest.
type DuesLedgerSvc interface {
	// SubmitPayment stores the proof file, derives the number of weeks the
	// amount covers from the class dues setting, and records a pending payment.
	SubmitPayment(ctx context.Context, req dto.SubmitPaymentRequest, proofName string, proof io.Reader) (*dto.SubmitPaymentResponse, error)

	// ApprovePayment transitions a payment to accepted. Re-approving an
	// accepted payment is a conflict, not a silent no-op.
	ApprovePayment(ctx context.Context, paymentID string, verifierUserID string) error

	// RejectPayment transitions a payment to rejected, with the same
	// already-in-state conflict rule.
	RejectPayment(ctx context.Context, paymentID string, verifierUserID string) error

	// ListArrears recomputes every billable user's dues position as of now.
	ListArrears(ctx context.Context, now time.Time) ([]domain.UserArrears, error)

	// AddManualArrears records weeks owed by hand for a user.
	AddManualArrears(ctx context.Context, req dto.AddArrearsRequest) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces.
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
	DuesLedgerSvc
}
