// Package constants contains values shared between the API server and the notifier worker.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers selectable through pubsub.provider.
const (
	PubSubProviderLocal   = "local"
	PubSubProviderGoogle  = "google"
	PubSubProviderGoCloud = "gocloud"
)

// Order event types carried on the event bus.
const (
	EventOrderConfirmed     = "order.confirmed"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderRefunded      = "order.refunded"

	// EventOrderReminder tags the day-before reminder push; it is not published on the bus.
	EventOrderReminder = "order.reminder"
)

// HTTP headers.
const (
	HeaderCartSession     = "X-Cart-Session"
	HeaderStripeSignature = "Stripe-Signature"
)

// Settings keys resolved by the pricing rules.
const (
	SettingTaxRate      = "tax_rate"
	SettingDeliveryFee  = "delivery_fee"
	SettingMinOrderDays = "min_order_days"
	SettingCurrency     = "currency"
)
