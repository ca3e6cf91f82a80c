package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/apperrors"
	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/kas_kelas_app/internal/core/ports/repositories"
	"github.com/SscSPs/kas_kelas_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPaymentRepository struct {
	db *pgxpool.Pool
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{db: db}
}

var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

func toModelPayment(d domain.Payment) models.Payment {
	m := models.Payment{
		PaymentID:   d.PaymentID,
		UserID:      d.UserID,
		WeekNumber:  d.WeekNumber,
		Amount:      d.Amount,
		ProofURL:    nullString(d.ProofURL),
		Status:      string(d.Status),
		SubmittedAt: d.SubmittedAt,
		VerifiedBy:  nullString(d.VerifiedBy),
	}
	if d.VerifiedAt != nil {
		m.VerifiedAt = sql.NullTime{Time: *d.VerifiedAt, Valid: true}
	}
	return m
}

func toDomainPayment(m models.Payment) domain.Payment {
	d := domain.Payment{
		PaymentID:   m.PaymentID,
		UserID:      m.UserID,
		WeekNumber:  m.WeekNumber,
		Amount:      m.Amount,
		ProofURL:    stringPtr(m.ProofURL),
		Status:      domain.PaymentStatus(m.Status),
		SubmittedAt: m.SubmittedAt,
		VerifiedBy:  stringPtr(m.VerifiedBy),
	}
	if m.VerifiedAt.Valid {
		t := m.VerifiedAt.Time
		d.VerifiedAt = &t
	}
	return d
}

const paymentColumns = `payment_id, user_id, week_number, amount, proof_url, status, submitted_at, verified_at, verified_by`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.UserID,
		&m.WeekNumber,
		&m.Amount,
		&m.ProofURL,
		&m.Status,
		&m.SubmittedAt,
		&m.VerifiedAt,
		&m.VerifiedBy,
	)
	return m, err
}

func collectPayments(rows pgx.Rows) ([]domain.Payment, error) {
	payments := []domain.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, toDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := toModelPayment(payment)
	query := `
        INSERT INTO payments (payment_id, user_id, week_number, amount, proof_url, status, submitted_at, verified_at, verified_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		m.PaymentID,
		m.UserID,
		m.WeekNumber,
		m.Amount,
		m.ProofURL,
		m.Status,
		m.SubmittedAt,
		m.VerifiedAt,
		m.VerifiedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`
	m, err := scanPayment(r.db.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}
	d := toDomainPayment(m)
	return &d, nil
}

func (r *PgxPaymentRepository) FindPayments(ctx context.Context, submittedBefore time.Time, limit int) ([]domain.Payment, error) {
	if limit <= 0 {
		limit = 20
	}

	var (
		rows pgx.Rows
		err  error
	)
	if submittedBefore.IsZero() {
		query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY submitted_at DESC LIMIT $1;`
		rows, err = r.db.Query(ctx, query, limit)
	} else {
		query := `SELECT ` + paymentColumns + ` FROM payments WHERE submitted_at < $1 ORDER BY submitted_at DESC LIMIT $2;`
		rows, err = r.db.Query(ctx, query, submittedBefore, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *PgxPaymentRepository) FindPaymentsByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1 ORDER BY submitted_at DESC;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for user %s: %w", userID, err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := toModelPayment(payment)
	query := `
        UPDATE payments
        SET week_number = $2, amount = $3, proof_url = $4, status = $5, verified_at = $6, verified_by = $7
        WHERE payment_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.PaymentID,
		m.WeekNumber,
		m.Amount,
		m.ProofURL,
		m.Status,
		m.VerifiedAt,
		m.VerifiedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", payment.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPaymentRepository) UpdatePaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus, verifiedAt time.Time, verifiedBy string) error {
	query := `
        UPDATE payments
        SET status = $2, verified_at = $3, verified_by = $4
        WHERE payment_id = $1;
    `
	tag, err := r.db.Exec(ctx, query, paymentID, string(status), verifiedAt, verifiedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPaymentRepository) FindLastWeekNumber(ctx context.Context, userID string) (int, error) {
	query := `SELECT COALESCE(MAX(week_number), 0) FROM payments WHERE user_id = $1;`
	var last int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&last); err != nil {
		return 0, fmt.Errorf("failed to find last week number for user %s: %w", userID, err)
	}
	return last, nil
}

func (r *PgxPaymentRepository) SumWeekNumbersByStatus(ctx context.Context, userID string, status domain.PaymentStatus) (int, error) {
	query := `SELECT COALESCE(SUM(week_number), 0) FROM payments WHERE user_id = $1 AND status = $2;`
	var total int
	if err := r.db.QueryRow(ctx, query, userID, string(status)).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum week numbers for user %s: %w", userID, err)
	}
	return total, nil
}

func (r *PgxPaymentRepository) SumAmountsByStatus(ctx context.Context, status domain.PaymentStatus) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = $1;`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, string(status)).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payment amounts: %w", err)
	}
	return total, nil
}
