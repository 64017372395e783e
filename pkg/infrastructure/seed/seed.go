// Package seed provides the demo dataset the application boots with. The
// collections are returned in display order; newly created records are
// prepended in front of them by the repositories.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func dateTime(value string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return t
}

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// Products returns the demo product catalog
func Products() []*entities.Product {
	return []*entities.Product{
		{ID: "SKU-001", Name: "Women's Classic White Sneaker", Category: "Women's Shoes", Quantity: 42, CostPrice: money("45.00"), SellingPrice: money("89.00"), Location: "Store A1", Supplier: "Luna Footwear", LastMovement: date("2025-05-21"), StockStatus: entities.LowStock, ImageURL: "https://picsum.photos/40/40?10"},
		{ID: "SKU-002", Name: "Men's Mesh Runner", Category: "Men's Shoes", Quantity: 120, CostPrice: money("55.00"), SellingPrice: money("110.00"), Location: "Warehouse B", Supplier: "Atlas Footwear", LastMovement: date("2025-05-20"), StockStatus: entities.InStock, ImageURL: "https://picsum.photos/40/40?11"},
		{ID: "SKU-003", Name: "Kids' Everyday Runner", Category: "Kids' Shoes", Quantity: 0, CostPrice: money("35.00"), SellingPrice: money("45.00"), Location: "Store A2", Supplier: "YoungSteps", LastMovement: date("2025-05-10"), StockStatus: entities.OutOfStock, ImageURL: "https://picsum.photos/40/40?12"},
		{ID: "SKU-004", Name: "Summer Floral Dress", Category: "Dresses", Quantity: 85, CostPrice: money("30.00"), SellingPrice: money("75.00"), Location: "Store A1", Supplier: "Moda Fabrics", LastMovement: date("2025-05-18"), StockStatus: entities.InStock, ImageURL: "https://picsum.photos/40/40?13"},
		{ID: "SKU-005", Name: "Leather Loafers", Category: "Men's Shoes", Quantity: 15, CostPrice: money("70.00"), SellingPrice: money("145.00"), Location: "Store A3", Supplier: "Atlas Footwear", LastMovement: date("2025-05-15"), StockStatus: entities.LowStock, ImageURL: "https://picsum.photos/40/40?14"},
		{ID: "SKU-006", Name: "Canvas Slip-Ons", Category: "Women's Shoes", Quantity: 200, CostPrice: money("20.00"), SellingPrice: money("55.00"), Location: "Warehouse B", Supplier: "Luna Footwear", LastMovement: date("2025-04-30"), StockStatus: entities.InStock, ImageURL: "https://picsum.photos/40/40?15"},
	}
}

// Suppliers returns the demo supplier directory
func Suppliers() []*entities.Supplier {
	return []*entities.Supplier{
		{ID: "SUP-001", Name: "Luna Footwear", ContactName: "Maria Silva", Categories: []string{"Women's Shoes"}, LeadTimeDays: 10, Email: "orders@lunafootwear.com", Status: entities.Active},
		{ID: "SUP-002", Name: "Atlas Footwear", ContactName: "John Doe", Categories: []string{"Men's Shoes"}, LeadTimeDays: 14, Email: "sales@atlasshoes.com", Status: entities.Active},
		{ID: "SUP-003", Name: "YoungSteps", ContactName: "Sarah Smith", Categories: []string{"Kids' Shoes"}, LeadTimeDays: 7, Email: "wholesale@youngsteps.com", Status: entities.Active},
		{ID: "SUP-004", Name: "Moda Fabrics", ContactName: "Elena G.", Categories: []string{"Dresses"}, LeadTimeDays: 21, Email: "b2b@modafabrics.com", Status: entities.OnHold},
	}
}

// Sales returns the demo sales history
func Sales() []*entities.Sale {
	return []*entities.Sale{
		{ID: "ORD-7829", DateTime: dateTime("2025-10-18 14:30"), Product: "Women's Classic White Sneaker", Category: "Women's Shoes", Quantity: 1, TotalAmount: money("89.00"), Channel: entities.InStore, Status: entities.Completed},
		{ID: "ORD-7830", DateTime: dateTime("2025-10-18 15:12"), Product: "Men's Mesh Runner", Category: "Men's Shoes", Quantity: 1, TotalAmount: money("110.00"), Channel: entities.Online, Status: entities.Completed},
		{ID: "ORD-7831", DateTime: dateTime("2025-10-18 16:05"), Product: "Kids' Everyday Runner", Category: "Kids' Shoes", Quantity: 2, TotalAmount: money("90.00"), Channel: entities.InStore, Status: entities.Completed},
		{ID: "ORD-7832", DateTime: dateTime("2025-10-18 16:45"), Product: "Leather Loafers", Category: "Men's Shoes", Quantity: 1, TotalAmount: money("145.00"), Channel: entities.Online, Status: entities.Completed},
		{ID: "ORD-7833", DateTime: dateTime("2025-10-18 17:20"), Product: "Summer Floral Dress", Category: "Dresses", Quantity: 1, TotalAmount: money("75.00"), Channel: entities.InStore, Status: entities.Refunded},
		{ID: "ORD-7834", DateTime: dateTime("2025-10-18 18:00"), Product: "Canvas Slip-Ons", Category: "Women's Shoes", Quantity: 1, TotalAmount: money("55.00"), Channel: entities.Online, Status: entities.Completed},
		{ID: "ORD-7835", DateTime: dateTime("2025-10-18 18:30"), Product: "Men's Mesh Runner", Category: "Men's Shoes", Quantity: 1, TotalAmount: money("110.00"), Channel: entities.InStore, Status: entities.Completed},
		{ID: "ORD-7836", DateTime: dateTime("2025-10-18 19:15"), Product: "Women's Classic White Sneaker", Category: "Women's Shoes", Quantity: 2, TotalAmount: money("178.00"), Channel: entities.Online, Status: entities.Completed},
	}
}

// PurchaseOrders returns the demo purchase order history. Cancelled orders
// carry a zero ExpectedDelivery.
func PurchaseOrders() []*entities.PurchaseOrder {
	return []*entities.PurchaseOrder{
		{
			ID: "PO-1001", Supplier: "Luna Footwear", Date: date("2025-10-15"),
			ItemsCount: 24, TotalAmount: money("1200.00"), Status: entities.Received,
			ExpectedDelivery: date("2025-10-18"),
			Items: []entities.PurchaseOrderItem{
				{ProductName: "Women's Classic White Sneaker", Quantity: 24, UnitCost: money("50.00"), Total: money("1200.00")},
			},
		},
		{
			ID: "PO-1002", Supplier: "Atlas Footwear", Date: date("2025-10-16"),
			ItemsCount: 10, TotalAmount: money("550.00"), Status: entities.Pending,
			ExpectedDelivery: date("2025-10-22"),
			Items: []entities.PurchaseOrderItem{
				{ProductName: "Men's Mesh Runner", Quantity: 10, UnitCost: money("55.00"), Total: money("550.00")},
			},
		},
		{
			ID: "PO-1003", Supplier: "YoungSteps", Date: date("2025-10-18"),
			ItemsCount: 50, TotalAmount: money("1800.00"), Status: entities.Pending,
			ExpectedDelivery: date("2025-10-20"),
			Items: []entities.PurchaseOrderItem{
				{ProductName: "Kids' Everyday Runner", Quantity: 50, UnitCost: money("36.00"), Total: money("1800.00")},
			},
		},
		{
			ID: "PO-1004", Supplier: "Moda Fabrics", Date: date("2025-10-10"),
			ItemsCount: 15, TotalAmount: money("450.00"), Status: entities.Cancelled,
			Items: []entities.PurchaseOrderItem{
				{ProductName: "Summer Floral Dress", Quantity: 15, UnitCost: money("30.00"), Total: money("450.00")},
			},
		},
		{
			ID: "PO-1005", Supplier: "Luna Footwear", Date: date("2025-10-20"),
			ItemsCount: 30, TotalAmount: money("1500.00"), Status: entities.Pending,
			ExpectedDelivery: date("2025-10-25"),
			Items: []entities.PurchaseOrderItem{
				{ProductName: "Canvas Slip-Ons", Quantity: 30, UnitCost: money("50.00"), Total: money("1500.00")},
			},
		},
	}
}
