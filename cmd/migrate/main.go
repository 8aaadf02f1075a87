package main

import (
	"context"
	"log/slog"
	"os"

	"aurelise/config"
	"aurelise/internal/domain/constants"
	"aurelise/internal/domain/entity"
	"aurelise/internal/domain/repository"
	logs "aurelise/internal/infra/log"
	"aurelise/internal/infra/persistence/model"
	"aurelise/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var defaultSettings = []*entity.Setting{
	{Key: constants.SettingTaxRate, Value: "0.20", Type: entity.SettingTypeNumber, Description: "VAT rate applied to the subtotal"},
	{Key: constants.SettingDeliveryFee, Value: "5.00", Type: entity.SettingTypeNumber, Description: "Flat fee for home delivery"},
	{Key: constants.SettingMinOrderDays, Value: "3", Type: entity.SettingTypeNumber, Description: "Minimum days between ordering and collection"},
	{Key: constants.SettingCurrency, Value: "GBP", Type: entity.SettingTypeText, Description: "Currency charged at checkout"},
}

func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewSettingRepository,
		),
		fx.Invoke(migrate),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
		os.Exit(1)
	}
}

func migrate(db *gorm.DB, settings repository.SettingRepository, logger *slog.Logger) error {
	ctx := context.Background()

	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}
	logger.Info("Schema migrated", slog.Int("tables", len(model.All())))

	keys := make([]string, 0, len(defaultSettings))
	for _, setting := range defaultSettings {
		keys = append(keys, setting.Key)
	}
	existing, err := settings.FindSettings(ctx, keys...)
	if err != nil {
		return errors.Wrap(err, "failed to read settings")
	}

	// Values edited from the back office are left alone.
	for _, setting := range defaultSettings {
		if _, ok := existing[setting.Key]; ok {
			continue
		}
		if err := settings.UpsertSetting(ctx, setting); err != nil {
			return errors.Wrapf(err, "failed to seed setting %s", setting.Key)
		}
		logger.Info("Seeded setting", slog.String("key", setting.Key), slog.String("value", setting.Value))
	}

	return nil
}
