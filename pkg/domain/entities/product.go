package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus classifies a product's on-hand quantity against the reorder point
type StockStatus int

const (
	InStock StockStatus = iota
	LowStock
	OutOfStock
)

// String method for StockStatus enum
func (s StockStatus) String() string {
	switch s {
	case InStock:
		return "In Stock"
	case LowStock:
		return "Low Stock"
	case OutOfStock:
		return "Out of Stock"
	default:
		return "Unknown"
	}
}

// Product represents a stocked retail product. Supplier is a name reference
// joined by exact, case-sensitive string equality, not a foreign key.
type Product struct {
	ID           string
	Name         string
	Category     string
	Quantity     int
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	Location     string
	Supplier     string
	LastMovement time.Time
	StockStatus  StockStatus
	ImageURL     string
}

// NewProduct creates a validated Product
func NewProduct(
	id, name, category string,
	quantity int,
	costPrice, sellingPrice decimal.Decimal,
	location, supplier string,
	lastMovement time.Time,
	status StockStatus,
	imageURL string,
) (*Product, error) {
	if id == "" {
		return nil, fmt.Errorf("product id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %d", quantity)
	}
	if costPrice.IsNegative() {
		return nil, fmt.Errorf("cost price cannot be negative, got %s", costPrice)
	}
	if sellingPrice.IsNegative() {
		return nil, fmt.Errorf("selling price cannot be negative, got %s", sellingPrice)
	}

	return &Product{
		ID:           id,
		Name:         name,
		Category:     category,
		Quantity:     quantity,
		CostPrice:    costPrice,
		SellingPrice: sellingPrice,
		Location:     location,
		Supplier:     supplier,
		LastMovement: lastMovement,
		StockStatus:  status,
		ImageURL:     imageURL,
	}, nil
}
