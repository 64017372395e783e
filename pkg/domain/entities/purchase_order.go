package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of a purchase order
type OrderStatus int

const (
	Pending OrderStatus = iota
	Received
	Cancelled
)

// String method for OrderStatus enum
func (s OrderStatus) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Received:
		return "Received"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// PurchaseOrderItem is a value object for a single order line. Total is
// computed once at creation and never re-derived afterward.
type PurchaseOrderItem struct {
	ProductName string
	Quantity    int
	UnitCost    decimal.Decimal
	Total       decimal.Decimal
}

// NewPurchaseOrderItem creates a validated order line with Total = Quantity * UnitCost
func NewPurchaseOrderItem(productName string, quantity int, unitCost decimal.Decimal) (*PurchaseOrderItem, error) {
	if productName == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if unitCost.IsNegative() {
		return nil, fmt.Errorf("unit cost cannot be negative, got %s", unitCost)
	}

	return &PurchaseOrderItem{
		ProductName: productName,
		Quantity:    quantity,
		UnitCost:    unitCost,
		Total:       unitCost.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
	}, nil
}

// PurchaseOrder represents a committed order to a supplier. Once committed it
// is immutable; ItemsCount and TotalAmount are recomputed from the items at
// construction so they can never drift from the line data.
type PurchaseOrder struct {
	ID               string
	Supplier         string
	Date             time.Time
	ItemsCount       int
	TotalAmount      decimal.Decimal
	Status           OrderStatus
	ExpectedDelivery time.Time
	Items            []PurchaseOrderItem
}

// NewPurchaseOrder creates a validated PurchaseOrder from its line items
func NewPurchaseOrder(
	id, supplier string,
	date time.Time,
	status OrderStatus,
	expectedDelivery time.Time,
	items []PurchaseOrderItem,
) (*PurchaseOrder, error) {
	if id == "" {
		return nil, fmt.Errorf("order id cannot be empty")
	}
	if supplier == "" {
		return nil, fmt.Errorf("supplier cannot be empty")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("order must have at least one item")
	}

	itemsCount := 0
	totalAmount := decimal.Zero
	for i := range items {
		itemsCount += items[i].Quantity
		totalAmount = totalAmount.Add(items[i].Total)
	}

	order := &PurchaseOrder{
		ID:               id,
		Supplier:         supplier,
		Date:             date,
		ItemsCount:       itemsCount,
		TotalAmount:      totalAmount.Round(2),
		Status:           status,
		ExpectedDelivery: expectedDelivery,
		Items:            items,
	}
	return order, nil
}
