package usecase

import (
	"context"

	"aurelise/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Default business rules used when the settings table has no value.
var (
	DefaultTaxRate      = decimal.RequireFromString("0.20")
	DefaultDeliveryFee  = decimal.RequireFromString("5.00")
	DefaultMinOrderDays = 3
)

// PricingSettings holds the business rules every price computation reads.
type PricingSettings struct {
	TaxRate      decimal.Decimal
	DeliveryFee  decimal.Decimal
	MinOrderDays int
	Currency     string
}

// Totals prices a checkout: the fee applies to deliveries only and tax is rounded to 2 places.
func (p *PricingSettings) Totals(subtotal decimal.Decimal, deliveryType entity.DeliveryType) entity.OrderTotals {
	fee := decimal.Zero
	if deliveryType == entity.DeliveryTypeDelivery {
		fee = p.DeliveryFee
	}
	tax := subtotal.Mul(p.TaxRate).Round(2)

	return entity.OrderTotals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal.Add(fee).Add(tax),
	}
}

// PricingResolver reads the pricing rules from the settings store.
type PricingResolver interface {
	Resolve(ctx context.Context) (*PricingSettings, error)
}
