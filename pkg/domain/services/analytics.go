package services

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
)

// Aggregation functions over collection snapshots. All are pure and total:
// an empty collection yields a defined zero value, never an error. Callers
// recompute these on every read; no aggregate is cached anywhere.

// TotalInventoryValue returns the sum of cost price times quantity across all products
func TotalInventoryValue(products []*entities.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.CostPrice.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return total.Round(2)
}

// LowStockCount returns the number of products classified Low Stock under the reorder point
func LowStockCount(products []*entities.Product, reorderPoint int) int {
	count := 0
	for _, p := range products {
		if ClassifyStock(p.Quantity, reorderPoint) == entities.LowStock {
			count++
		}
	}
	return count
}

// OutOfStockCount returns the number of products with zero quantity
func OutOfStockCount(products []*entities.Product, reorderPoint int) int {
	count := 0
	for _, p := range products {
		if ClassifyStock(p.Quantity, reorderPoint) == entities.OutOfStock {
			count++
		}
	}
	return count
}

// LinkedProducts returns the products joined to a supplier by exact,
// case-sensitive name equality. An unmatched name yields an empty slice.
func LinkedProducts(products []*entities.Product, supplierName string) []*entities.Product {
	var linked []*entities.Product
	for _, p := range products {
		if p.Supplier == supplierName {
			linked = append(linked, p)
		}
	}
	return linked
}

// RestockCandidates returns the supplier's products whose stored status is not
// In Stock, in collection order
func RestockCandidates(products []*entities.Product, supplierName string) []*entities.Product {
	var candidates []*entities.Product
	for _, p := range LinkedProducts(products, supplierName) {
		if p.StockStatus != entities.InStock {
			candidates = append(candidates, p)
		}
	}
	return candidates
}

// SupplierRisk returns the count of a supplier's products whose status is not In Stock
func SupplierRisk(products []*entities.Product, supplierName string) int {
	return len(RestockCandidates(products, supplierName))
}

// AtRiskCount returns the count of all products whose status is not In Stock
func AtRiskCount(products []*entities.Product) int {
	count := 0
	for _, p := range products {
		if p.StockStatus != entities.InStock {
			count++
		}
	}
	return count
}

// AverageLeadTime returns the mean supplier lead time in days, rounded to the
// nearest integer; 0 if there are no suppliers
func AverageLeadTime(suppliers []*entities.Supplier) int {
	if len(suppliers) == 0 {
		return 0
	}
	sum := 0
	for _, s := range suppliers {
		sum += s.LeadTimeDays
	}
	return int(math.Round(float64(sum) / float64(len(suppliers))))
}

// OrderTotal returns the sum of line totals for a set of order items
func OrderTotal(items []entities.PurchaseOrderItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Total)
	}
	return total.Round(2)
}

// OrderItemCount returns the sum of line quantities for a set of order items
func OrderItemCount(items []entities.PurchaseOrderItem) int {
	count := 0
	for i := range items {
		count += items[i].Quantity
	}
	return count
}

// PendingCartTotal returns the sum of draft sale amounts
func PendingCartTotal(items []entities.CartItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].TotalAmount)
	}
	return total.Round(2)
}

// OpenOrderCount returns the number of purchase orders still pending
func OpenOrderCount(orders []*entities.PurchaseOrder) int {
	count := 0
	for _, o := range orders {
		if o.Status == entities.Pending {
			count++
		}
	}
	return count
}

// PendingOrdersValue returns the total amount tied up in pending purchase orders
func PendingOrdersValue(orders []*entities.PurchaseOrder) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if o.Status == entities.Pending {
			total = total.Add(o.TotalAmount)
		}
	}
	return total.Round(2)
}

// ReceivedOrderCount returns the number of purchase orders already received
func ReceivedOrderCount(orders []*entities.PurchaseOrder) int {
	count := 0
	for _, o := range orders {
		if o.Status == entities.Received {
			count++
		}
	}
	return count
}
