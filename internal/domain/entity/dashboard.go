// Package entity contains the core business objects of the storefront.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardStats summarizes recent trading for the back office.
type DashboardStats struct {
	TodayOrders     int64             `json:"today_orders"`
	TodayRevenue    decimal.Decimal   `json:"today_revenue"`
	MonthOrders     int64             `json:"month_orders"`
	MonthRevenue    decimal.Decimal   `json:"month_revenue"`
	PendingOrders   int64             `json:"pending_orders"`
	PopularProducts []*PopularProduct `json:"popular_products"`
	RecentOrders    []*Order          `json:"recent_orders"`
}

// PopularProduct is a product ranked by quantity sold.
type PopularProduct struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	QuantitySold int64     `json:"quantity_sold"`
}
