package entities

import (
	"github.com/shopspring/decimal"
)

// CartItem is a draft sale line accumulated before the sale is committed.
// It has no identity or timestamp; those are assigned at commit.
type CartItem struct {
	Product     string
	Category    string
	Quantity    int
	TotalAmount decimal.Decimal
	Channel     SaleChannel
}
