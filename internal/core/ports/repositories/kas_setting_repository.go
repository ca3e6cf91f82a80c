package repositories

import (
	"context"

	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
)

// KasSettingRepository defines persistence operations for weekly dues settings.
// The store allows multiple settings per class; lookups take the first match.
type KasSettingRepository interface {
	SaveKasSetting(ctx context.Context, setting domain.KasSetting) error
	FindKasSettingByID(ctx context.Context, settingID string) (*domain.KasSetting, error)
	FindKasSettings(ctx context.Context, limit int, offset int) ([]domain.KasSetting, error)
	// FindFirstKasSetting returns the oldest setting on record, regardless of class.
	FindFirstKasSetting(ctx context.Context) (*domain.KasSetting, error)
	FindKasSettingByClassID(ctx context.Context, classID string) (*domain.KasSetting, error)
	UpdateKasSetting(ctx context.Context, setting domain.KasSetting) error
	DeleteKasSetting(ctx context.Context, settingID string) error
}
