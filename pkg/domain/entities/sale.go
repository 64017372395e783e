package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SaleChannel represents the channel a sale was made through
type SaleChannel int

const (
	InStore SaleChannel = iota
	Online
	OtherChannel
)

// String method for SaleChannel enum
func (c SaleChannel) String() string {
	switch c {
	case InStore:
		return "In-store"
	case Online:
		return "Online"
	case OtherChannel:
		return "Other"
	default:
		return "Unknown"
	}
}

// SaleStatus represents the lifecycle state of a sale
type SaleStatus int

const (
	Completed SaleStatus = iota
	Refunded
)

// String method for SaleStatus enum
func (s SaleStatus) String() string {
	switch s {
	case Completed:
		return "Completed"
	case Refunded:
		return "Refunded"
	default:
		return "Unknown"
	}
}

// Sale represents a single committed sale line. Sales are immutable once
// created; only creation is supported.
type Sale struct {
	ID          string
	DateTime    time.Time
	Product     string
	Category    string
	Quantity    int
	TotalAmount decimal.Decimal
	Channel     SaleChannel
	Status      SaleStatus
}

// NewSale creates a validated Sale
func NewSale(
	id string,
	dateTime time.Time,
	product, category string,
	quantity int,
	totalAmount decimal.Decimal,
	channel SaleChannel,
	status SaleStatus,
) (*Sale, error) {
	if id == "" {
		return nil, fmt.Errorf("sale id cannot be empty")
	}
	if product == "" {
		return nil, fmt.Errorf("product cannot be empty")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if totalAmount.IsNegative() {
		return nil, fmt.Errorf("total amount cannot be negative, got %s", totalAmount)
	}

	return &Sale{
		ID:          id,
		DateTime:    dateTime,
		Product:     product,
		Category:    category,
		Quantity:    quantity,
		TotalAmount: totalAmount,
		Channel:     channel,
		Status:      status,
	}, nil
}
