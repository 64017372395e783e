// Package dto contains data transfer objects assembled by the application
// services for the rendering layer.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
)

// DashboardSummary is the headline numbers block of the dashboard. Every
// figure is recomputed from the collections on each build; nothing here is
// cached state.
type DashboardSummary struct {
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	ProductCount        int             `json:"product_count"`
	LowStockCount       int             `json:"low_stock_count"`
	OutOfStockCount     int             `json:"out_of_stock_count"`
	SaleCount           int             `json:"sale_count"`
	SupplierCount       int             `json:"supplier_count"`
	AverageLeadTimeDays int             `json:"average_lead_time_days"`
	OpenOrderCount      int             `json:"open_order_count"`
	PendingOrdersValue  decimal.Decimal `json:"pending_orders_value"`
	ReceivedOrderCount  int             `json:"received_order_count"`
}

// SupplierRiskRow is one supplier's line in the risk table
type SupplierRiskRow struct {
	SupplierID     string `json:"supplier_id"`
	SupplierName   string `json:"supplier_name"`
	ContactName    string `json:"contact_name"`
	LeadTimeDays   int    `json:"lead_time_days"`
	AtRiskProducts int    `json:"at_risk_products"`
	Status         string `json:"status"`
}

// ActivityEntry is one recent committed mutation, read back from the event log
type ActivityEntry struct {
	Type      string    `json:"type"`
	Stream    string    `json:"stream"`
	Timestamp time.Time `json:"timestamp"`
}

// DashboardReport is everything the dashboard renders
type DashboardReport struct {
	Summary        DashboardSummary          `json:"summary"`
	Products       []*entities.Product       `json:"products"`
	Suppliers      []SupplierRiskRow         `json:"suppliers"`
	PurchaseOrders []*entities.PurchaseOrder `json:"purchase_orders"`
	Sales          []*entities.Sale          `json:"sales"`
	RecentActivity []ActivityEntry           `json:"recent_activity"`
}
