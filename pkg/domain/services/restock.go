package services

import (
	"fmt"
	"strings"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
)

// RestockEmail builds the suggested restock request email for a supplier from
// its low and out of stock products. requestQty is the quantity requested per
// product, normally the reorder point.
func RestockEmail(supplier *entities.Supplier, items []*entities.Product, requestQty int) string {
	var lines []string
	for _, p := range items {
		lines = append(lines, fmt.Sprintf("• %s (Current: %d units) - Requesting: %d units", p.Name, p.Quantity, requestQty))
	}

	return fmt.Sprintf(`Subject: Restock Request – Agora Shoes

Hi %s,

We'd like to place a restock order for the following products:

%s

Please confirm availability and expected delivery date.

Best regards,
Agora Purchasing Team`, supplier.ContactName, strings.Join(lines, "\n"))
}
