package repositories

import "github.com/Bcollado0310/agora-erp/pkg/domain/entities"

// SaleRepository provides access to the sale collection. Sales are immutable
// once added; there is no update or delete.
type SaleRepository interface {
	// ListSales returns a snapshot of all sales, most recently added first
	ListSales() ([]*entities.Sale, error)
	AddSale(sale *entities.Sale) error
	// AddSales prepends a batch in one step, preserving the batch's own order
	// at the front of the collection
	AddSales(sales []*entities.Sale) error
}
