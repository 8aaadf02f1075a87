package postgres

import (
	"context"

	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/errors"
	"aurelise/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingRepository implements the repository.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{db: db}
}

// ListSettings returns all settings sorted by key.
func (repo *settingRepository) ListSettings(ctx context.Context) ([]*entity.Setting, error) {
	var settingModels []*model.SettingModel

	if err := repo.db.WithContext(ctx).
		Order("key ASC").
		Find(&settingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list settings")
	}

	settings := make([]*entity.Setting, 0, len(settingModels))
	for _, settingM := range settingModels {
		settings = append(settings, toSettingDomain(settingM))
	}

	return settings, nil
}

// FindSettings returns the requested settings indexed by key.
func (repo *settingRepository) FindSettings(ctx context.Context, keys ...string) (map[string]*entity.Setting, error) {
	settings := make(map[string]*entity.Setting, len(keys))
	if len(keys) == 0 {
		return settings, nil
	}

	var settingModels []*model.SettingModel
	if err := repo.db.WithContext(ctx).
		Where("key IN ?", keys).
		Find(&settingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find settings")
	}

	for _, settingM := range settingModels {
		settings[settingM.Key] = toSettingDomain(settingM)
	}

	return settings, nil
}

// UpsertSetting inserts or replaces a setting by key.
func (repo *settingRepository) UpsertSetting(ctx context.Context, setting *entity.Setting) error {
	settingM := &model.SettingModel{
		Key:         setting.Key,
		Value:       setting.Value,
		Type:        string(setting.Type),
		Description: setting.Description,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "type", "description", "updated_at"}),
		}).
		Create(settingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert setting")
	}

	setting.UpdatedAt = settingM.UpdatedAt

	return nil
}

func toSettingDomain(data *model.SettingModel) *entity.Setting {
	return &entity.Setting{
		Key:         data.Key,
		Value:       data.Value,
		Type:        entity.SettingType(data.Type),
		Description: data.Description,
		UpdatedAt:   data.UpdatedAt,
	}
}
