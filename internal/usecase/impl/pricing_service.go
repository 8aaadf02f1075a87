package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"aurelise/config"
	deliverycontext "aurelise/internal/delivery/context"
	"aurelise/internal/domain/constants"
	"aurelise/internal/domain/repository"
	"aurelise/internal/errors"
	"aurelise/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// pricingService resolves tax, delivery fee, lead time and currency from the settings table.
type pricingService struct {
	settingRepo     repository.SettingRepository
	defaultCurrency string
	logger          *slog.Logger
}

// PricingServiceParams holds dependencies for PricingService, injected by Fx.
type PricingServiceParams struct {
	fx.In

	SettingRepo repository.SettingRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPricingService creates the settings-backed pricing resolver.
func NewPricingService(params PricingServiceParams) usecase.PricingResolver {
	currency := "GBP"
	if params.Config != nil && params.Config.Stripe != nil && params.Config.Stripe.Currency != "" {
		currency = params.Config.Stripe.Currency
	}

	return &pricingService{
		settingRepo:     params.SettingRepo,
		defaultCurrency: strings.ToUpper(currency),
		logger:          params.Logger,
	}
}

// Resolve reads the pricing rules. Missing or malformed values fall back to the defaults.
func (s *pricingService) Resolve(ctx context.Context) (*usecase.PricingSettings, error) {
	settings, err := s.settingRepo.FindSettings(ctx,
		constants.SettingTaxRate,
		constants.SettingDeliveryFee,
		constants.SettingMinOrderDays,
		constants.SettingCurrency,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pricing settings")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	pricing := &usecase.PricingSettings{
		TaxRate:      usecase.DefaultTaxRate,
		DeliveryFee:  usecase.DefaultDeliveryFee,
		MinOrderDays: usecase.DefaultMinOrderDays,
		Currency:     s.defaultCurrency,
	}

	if setting, ok := settings[constants.SettingTaxRate]; ok {
		if rate, err := decimal.NewFromString(strings.TrimSpace(setting.Value)); err == nil && validTaxRate(rate) {
			pricing.TaxRate = rate
		} else {
			logger.Warn("Ignoring malformed setting", slog.String("key", setting.Key), slog.String("value", setting.Value))
		}
	}
	if setting, ok := settings[constants.SettingDeliveryFee]; ok {
		if fee, err := decimal.NewFromString(strings.TrimSpace(setting.Value)); err == nil && !fee.IsNegative() {
			pricing.DeliveryFee = fee
		} else {
			logger.Warn("Ignoring malformed setting", slog.String("key", setting.Key), slog.String("value", setting.Value))
		}
	}
	if setting, ok := settings[constants.SettingMinOrderDays]; ok {
		switch days, err := strconv.Atoi(strings.TrimSpace(setting.Value)); {
		case err != nil:
			logger.Warn("Ignoring malformed setting", slog.String("key", setting.Key), slog.String("value", setting.Value))
		case days < usecase.DefaultMinOrderDays:
			logger.Warn("Lead time below minimum, using minimum",
				slog.String("key", setting.Key),
				slog.String("value", setting.Value),
				slog.Int("minimum", usecase.DefaultMinOrderDays),
			)
		default:
			pricing.MinOrderDays = days
		}
	}
	if setting, ok := settings[constants.SettingCurrency]; ok && strings.TrimSpace(setting.Value) != "" {
		pricing.Currency = strings.ToUpper(strings.TrimSpace(setting.Value))
	}

	return pricing, nil
}

// validTaxRate accepts fractional rates only; 0.20 is twenty percent.
func validTaxRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThanOrEqual(decimal.NewFromInt(1))
}
