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

type PgxActivityLogRepository struct {
	db *pgxpool.Pool
}

func newPgxActivityLogRepository(db *pgxpool.Pool) portsrepo.ActivityLogRepository {
	return &PgxActivityLogRepository{db: db}
}

var _ portsrepo.ActivityLogRepository = (*PgxActivityLogRepository)(nil)

func toDomainActivityLog(m models.ActivityLog) domain.ActivityLog {
	return domain.ActivityLog{
		LogID:       m.LogID,
		UserID:      stringPtr(m.UserID),
		Action:      m.Action,
		Description: m.Description,
		Timestamp:   m.Timestamp,
	}
}

const activityLogColumns = `log_id, user_id, action, description, timestamp`

func scanActivityLog(row pgx.Row) (models.ActivityLog, error) {
	var m models.ActivityLog
	err := row.Scan(
		&m.LogID,
		&m.UserID,
		&m.Action,
		&m.Description,
		&m.Timestamp,
	)
	return m, err
}

func (r *PgxActivityLogRepository) SaveActivityLog(ctx context.Context, log domain.ActivityLog) error {
	query := `
        INSERT INTO activity_logs (log_id, user_id, action, description, timestamp)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		log.LogID,
		nullString(log.UserID),
		log.Action,
		log.Description,
		log.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to save activity log: %w", err)
	}
	return nil
}

func (r *PgxActivityLogRepository) FindActivityLogByID(ctx context.Context, logID string) (*domain.ActivityLog, error) {
	query := `SELECT ` + activityLogColumns + ` FROM activity_logs WHERE log_id = $1;`
	m, err := scanActivityLog(r.db.QueryRow(ctx, query, logID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find activity log by ID %s: %w", logID, err)
	}
	d := toDomainActivityLog(m)
	return &d, nil
}

func (r *PgxActivityLogRepository) FindActivityLogs(ctx context.Context, limit int, offset int) ([]domain.ActivityLog, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + activityLogColumns + ` FROM activity_logs ORDER BY timestamp DESC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.ActivityLog{}
	for rows.Next() {
		m, err := scanActivityLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity log row: %w", err)
		}
		logs = append(logs, toDomainActivityLog(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity log rows: %w", err)
	}
	return logs, nil
}

func (r *PgxActivityLogRepository) DeleteActivityLog(ctx context.Context, logID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM activity_logs WHERE log_id = $1;`, logID)
	if err != nil {
		return fmt.Errorf("failed to delete activity log %s: %w", logID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
