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

type PgxKasSettingRepository struct {
	db *pgxpool.Pool
}

func newPgxKasSettingRepository(db *pgxpool.Pool) portsrepo.KasSettingRepository {
	return &PgxKasSettingRepository{db: db}
}

var _ portsrepo.KasSettingRepository = (*PgxKasSettingRepository)(nil)

func toModelKasSetting(d domain.KasSetting) models.KasSetting {
	return models.KasSetting{
		SettingID:     d.SettingID,
		ClassID:       d.ClassID,
		AmountPerWeek: d.AmountPerWeek,
		StartDate:     d.StartDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainKasSetting(m models.KasSetting) domain.KasSetting {
	return domain.KasSetting{
		SettingID:     m.SettingID,
		ClassID:       m.ClassID,
		AmountPerWeek: m.AmountPerWeek,
		StartDate:     m.StartDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const kasSettingColumns = `setting_id, class_id, amount_per_week, start_date, created_at, created_by, last_updated_at, last_updated_by`

func scanKasSetting(row pgx.Row) (models.KasSetting, error) {
	var m models.KasSetting
	err := row.Scan(
		&m.SettingID,
		&m.ClassID,
		&m.AmountPerWeek,
		&m.StartDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxKasSettingRepository) SaveKasSetting(ctx context.Context, setting domain.KasSetting) error {
	m := toModelKasSetting(setting)
	query := `
        INSERT INTO kas_settings (setting_id, class_id, amount_per_week, start_date, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		m.SettingID,
		m.ClassID,
		m.AmountPerWeek,
		m.StartDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save kas setting: %w", err)
	}
	return nil
}

func (r *PgxKasSettingRepository) FindKasSettingByID(ctx context.Context, settingID string) (*domain.KasSetting, error) {
	query := `SELECT ` + kasSettingColumns + ` FROM kas_settings WHERE setting_id = $1;`
	m, err := scanKasSetting(r.db.QueryRow(ctx, query, settingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find kas setting by ID %s: %w", settingID, err)
	}
	d := toDomainKasSetting(m)
	return &d, nil
}

func (r *PgxKasSettingRepository) FindKasSettings(ctx context.Context, limit int, offset int) ([]domain.KasSetting, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + kasSettingColumns + ` FROM kas_settings ORDER BY created_at ASC LIMIT $1 OFFSET $2;`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query kas settings: %w", err)
	}
	defer rows.Close()

	settings := []domain.KasSetting{}
	for rows.Next() {
		m, err := scanKasSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kas setting row: %w", err)
		}
		settings = append(settings, toDomainKasSetting(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating kas setting rows: %w", err)
	}
	return settings, nil
}

func (r *PgxKasSettingRepository) FindFirstKasSetting(ctx context.Context) (*domain.KasSetting, error) {
	query := `SELECT ` + kasSettingColumns + ` FROM kas_settings ORDER BY created_at ASC LIMIT 1;`
	m, err := scanKasSetting(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find first kas setting: %w", err)
	}
	d := toDomainKasSetting(m)
	return &d, nil
}

func (r *PgxKasSettingRepository) FindKasSettingByClassID(ctx context.Context, classID string) (*domain.KasSetting, error) {
	query := `SELECT ` + kasSettingColumns + ` FROM kas_settings WHERE class_id = $1 ORDER BY created_at ASC LIMIT 1;`
	m, err := scanKasSetting(r.db.QueryRow(ctx, query, classID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find kas setting for class %s: %w", classID, err)
	}
	d := toDomainKasSetting(m)
	return &d, nil
}

func (r *PgxKasSettingRepository) UpdateKasSetting(ctx context.Context, setting domain.KasSetting) error {
	m := toModelKasSetting(setting)
	query := `
        UPDATE kas_settings
        SET class_id = $2, amount_per_week = $3, start_date = $4, last_updated_at = $5, last_updated_by = $6
        WHERE setting_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.SettingID,
		m.ClassID,
		m.AmountPerWeek,
		m.StartDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update kas setting %s: %w", setting.SettingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxKasSettingRepository) DeleteKasSetting(ctx context.Context, settingID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM kas_settings WHERE setting_id = $1;`, settingID)
	if err != nil {
		return fmt.Errorf("failed to delete kas setting %s: %w", settingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
