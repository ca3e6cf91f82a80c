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
)

type PgxClassRepository struct {
	db *pgxpool.Pool
}

func newPgxClassRepository(db *pgxpool.Pool) portsrepo.ClassRepository {
	return &PgxClassRepository{db: db}
}

var _ portsrepo.ClassRepository = (*PgxClassRepository)(nil)

func toDomainClass(m models.Class) domain.Class {
	return domain.Class{
		ClassID: m.ClassID,
		Name:    m.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const classColumns = `class_id, name, created_at, created_by, last_updated_at, last_updated_by`

func scanClass(row pgx.Row) (models.Class, error) {
	var m models.Class
	err := row.Scan(
		&m.ClassID,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxClassRepository) SaveClass(ctx context.Context, class domain.Class) error {
	query := `
        INSERT INTO classes (class_id, name, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		class.ClassID,
		class.Name,
		class.CreatedAt,
		class.CreatedBy,
		class.LastUpdatedAt,
		class.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save class: %w", err)
	}
	return nil
}

func (r *PgxClassRepository) FindClassByID(ctx context.Context, classID string) (*domain.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE class_id = $1;`
	m, err := scanClass(r.db.QueryRow(ctx, query, classID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find class by ID %s: %w", classID, err)
	}
	d := toDomainClass(m)
	return &d, nil
}

func (r *PgxClassRepository) FindClasses(ctx context.Context, limit int, offset int) ([]domain.Class, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + classColumns + ` FROM classes ORDER BY name ASC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query classes: %w", err)
	}
	defer rows.Close()

	classes := []domain.Class{}
	for rows.Next() {
		m, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan class row: %w", err)
		}
		classes = append(classes, toDomainClass(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating class rows: %w", err)
	}
	return classes, nil
}

func (r *PgxClassRepository) UpdateClass(ctx context.Context, class domain.Class) error {
	query := `
        UPDATE classes
        SET name = $2, last_updated_at = $3, last_updated_by = $4
        WHERE class_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		class.ClassID,
		class.Name,
		class.LastUpdatedAt,
		class.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update class %s: %w", class.ClassID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClassRepository) DeleteClass(ctx context.Context, classID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM classes WHERE class_id = $1;`, classID)
	if err != nil {
		return fmt.Errorf("failed to delete class %s: %w", classID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
