package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/kas_kelas_app/internal/apperrors"
	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/kas_kelas_app/internal/core/ports/repositories"
	"github.com/SscSPs/kas_kelas_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxExpenseRepository struct {
	db *pgxpool.Pool
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{db: db}
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

func toModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		ClassID:     d.ClassID,
		Amount:      d.Amount,
		Description: d.Description,
		Date:        d.Date,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		ClassID:     m.ClassID,
		Amount:      m.Amount,
		Description: m.Description,
		Date:        m.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const expenseColumns = `expense_id, class_id, amount, description, date, created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.ClassID,
		&m.Amount,
		&m.Description,
		&m.Date,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := toModelExpense(expense)
	query := `
        INSERT INTO expenses (expense_id, class_id, amount, description, date, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		m.ExpenseID,
		m.ClassID,
		m.Amount,
		m.Description,
		m.Date,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`
	m, err := scanExpense(r.db.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}
	d := toDomainExpense(m)
	return &d, nil
}

func (r *PgxExpenseRepository) FindExpenses(ctx context.Context, limit int, offset int) ([]domain.Expense, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + expenseColumns + ` FROM expenses ORDER BY date DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, toDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := toModelExpense(expense)
	query := `
        UPDATE expenses
        SET class_id = $2, amount = $3, description = $4, date = $5, last_updated_at = $6, last_updated_by = $7
        WHERE expense_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.ExpenseID,
		m.ClassID,
		m.Amount,
		m.Description,
		m.Date,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", expense.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) SumAmounts(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses;`).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expense amounts: %w", err)
	}
	return total, nil
}

func (r *PgxExpenseRepository) ExistsByCreator(ctx context.Context, userID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM expenses WHERE created_by = $1);`
	if err := r.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check expenses for creator %s: %w", userID, err)
	}
	return exists, nil
}
