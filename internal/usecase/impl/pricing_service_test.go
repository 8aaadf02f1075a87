package impl

import (
	"context"
	"testing"

	"aurelise/internal/domain/constants"
	"aurelise/internal/domain/entity"
	"aurelise/internal/errors"
	mockRepo "aurelise/internal/mocks/repository"
	"aurelise/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectPricingKeys(settingRepo *mockRepo.MockSettingRepository) *mockRepo.MockSettingRepository_FindSettings_Call {
	return settingRepo.EXPECT().FindSettings(
		context.Background(),
		constants.SettingTaxRate,
		constants.SettingDeliveryFee,
		constants.SettingMinOrderDays,
		constants.SettingCurrency,
	)
}

func TestPricingService_Resolve_Defaults(t *testing.T) {
	settingRepo := mockRepo.NewMockSettingRepository(t)
	resolver := NewPricingService(PricingServiceParams{SettingRepo: settingRepo, Config: newTestConfig(false), Logger: newDiscardLogger()})

	expectPricingKeys(settingRepo).Return(map[string]*entity.Setting{}, nil)

	pricing, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.True(t, pricing.TaxRate.Equal(decimal.RequireFromString("0.20")))
	assert.True(t, pricing.DeliveryFee.Equal(decimal.RequireFromString("5.00")))
	assert.Equal(t, 3, pricing.MinOrderDays)
	assert.Equal(t, "GBP", pricing.Currency)
}

func TestPricingService_Resolve_Overrides(t *testing.T) {
	settingRepo := mockRepo.NewMockSettingRepository(t)
	resolver := NewPricingService(PricingServiceParams{SettingRepo: settingRepo, Config: newTestConfig(false), Logger: newDiscardLogger()})

	expectPricingKeys(settingRepo).Return(map[string]*entity.Setting{
		constants.SettingTaxRate:      {Key: constants.SettingTaxRate, Value: "0.125"},
		constants.SettingDeliveryFee:  {Key: constants.SettingDeliveryFee, Value: " 7.50 "},
		constants.SettingMinOrderDays: {Key: constants.SettingMinOrderDays, Value: "5"},
		constants.SettingCurrency:     {Key: constants.SettingCurrency, Value: "eur"},
	}, nil)

	pricing, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.125", pricing.TaxRate.String())
	assert.Equal(t, "7.50", pricing.DeliveryFee.StringFixed(2))
	assert.Equal(t, 5, pricing.MinOrderDays)
	assert.Equal(t, "EUR", pricing.Currency)
}

func TestPricingService_Resolve_MalformedValuesKeepDefaults(t *testing.T) {
	settingRepo := mockRepo.NewMockSettingRepository(t)
	resolver := NewPricingService(PricingServiceParams{SettingRepo: settingRepo, Config: newTestConfig(false), Logger: newDiscardLogger()})

	expectPricingKeys(settingRepo).Return(map[string]*entity.Setting{
		constants.SettingTaxRate:      {Key: constants.SettingTaxRate, Value: "twenty percent"},
		constants.SettingDeliveryFee:  {Key: constants.SettingDeliveryFee, Value: "-1"},
		constants.SettingMinOrderDays: {Key: constants.SettingMinOrderDays, Value: "three"},
	}, nil)

	pricing, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.True(t, pricing.TaxRate.Equal(usecase.DefaultTaxRate))
	assert.True(t, pricing.DeliveryFee.Equal(usecase.DefaultDeliveryFee))
	assert.Equal(t, usecase.DefaultMinOrderDays, pricing.MinOrderDays)
}

func TestPricingService_Resolve_OutOfRangeValues(t *testing.T) {
	tests := []struct {
		name     string
		taxRate  string
		minDays  string
		wantTax  decimal.Decimal
		wantDays int
	}{
		{name: "percent tax and zero lead time", taxRate: "20", minDays: "0", wantTax: usecase.DefaultTaxRate, wantDays: usecase.DefaultMinOrderDays},
		{name: "negative tax and short lead time", taxRate: "-0.2", minDays: "2", wantTax: usecase.DefaultTaxRate, wantDays: usecase.DefaultMinOrderDays},
		{name: "boundary values", taxRate: "1", minDays: "3", wantTax: decimal.NewFromInt(1), wantDays: 3},
		{name: "zero tax and long lead time", taxRate: "0", minDays: "10", wantTax: decimal.Zero, wantDays: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settingRepo := mockRepo.NewMockSettingRepository(t)
			resolver := NewPricingService(PricingServiceParams{SettingRepo: settingRepo, Config: newTestConfig(false), Logger: newDiscardLogger()})

			expectPricingKeys(settingRepo).Return(map[string]*entity.Setting{
				constants.SettingTaxRate:      {Key: constants.SettingTaxRate, Value: tt.taxRate},
				constants.SettingMinOrderDays: {Key: constants.SettingMinOrderDays, Value: tt.minDays},
			}, nil)

			pricing, err := resolver.Resolve(context.Background())
			require.NoError(t, err)
			assert.True(t, pricing.TaxRate.Equal(tt.wantTax), "tax rate %s", pricing.TaxRate)
			assert.Equal(t, tt.wantDays, pricing.MinOrderDays)

			totals := pricing.Totals(decimal.RequireFromString("44.00"), entity.DeliveryTypePickup)
			assert.True(t, totals.Tax.LessThanOrEqual(decimal.RequireFromString("44.00")))
		})
	}
}

func TestPricingService_Resolve_StoreError(t *testing.T) {
	settingRepo := mockRepo.NewMockSettingRepository(t)
	resolver := NewPricingService(PricingServiceParams{SettingRepo: settingRepo, Config: newTestConfig(false), Logger: newDiscardLogger()})

	expectPricingKeys(settingRepo).Return(nil, errors.New("connection reset"))

	pricing, err := resolver.Resolve(context.Background())
	assert.Nil(t, pricing)
	assert.ErrorContains(t, err, "failed to load pricing settings")
}

func TestPricingSettings_Totals(t *testing.T) {
	pricing := &usecase.PricingSettings{
		TaxRate:      usecase.DefaultTaxRate,
		DeliveryFee:  usecase.DefaultDeliveryFee,
		MinOrderDays: usecase.DefaultMinOrderDays,
	}

	tests := []struct {
		name         string
		subtotal     string
		deliveryType entity.DeliveryType
		wantFee      string
		wantTax      string
		wantTotal    string
	}{
		{name: "delivery", subtotal: "44.00", deliveryType: entity.DeliveryTypeDelivery, wantFee: "5.00", wantTax: "8.80", wantTotal: "57.80"},
		{name: "pickup", subtotal: "44.00", deliveryType: entity.DeliveryTypePickup, wantFee: "0.00", wantTax: "8.80", wantTotal: "52.80"},
		{name: "tax rounds half away from zero", subtotal: "3.33", deliveryType: entity.DeliveryTypePickup, wantFee: "0.00", wantTax: "0.67", wantTotal: "4.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := pricing.Totals(decimal.RequireFromString(tt.subtotal), tt.deliveryType)
			assert.Equal(t, tt.wantFee, totals.DeliveryFee.StringFixed(2))
			assert.Equal(t, tt.wantTax, totals.Tax.StringFixed(2))
			assert.Equal(t, tt.wantTotal, totals.Total.StringFixed(2))
		})
	}
}
