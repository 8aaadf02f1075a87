package repository

import (
	"context"

	"aurelise/internal/domain/entity"
)

// SettingRepository defines persistence for business settings.
type SettingRepository interface {
	// ListSettings returns all settings sorted by key.
	ListSettings(ctx context.Context) ([]*entity.Setting, error)

	// FindSettings returns the settings with the given keys, indexed by key. Missing keys are absent.
	FindSettings(ctx context.Context, keys ...string) (map[string]*entity.Setting, error)

	// UpsertSetting inserts or replaces a setting by key.
	UpsertSetting(ctx context.Context, setting *entity.Setting) error
}
