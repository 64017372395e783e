package memory

import (
	"fmt"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
	"github.com/Bcollado0310/agora-erp/pkg/domain/repositories"
)

// SaleRepository provides in-memory sale storage. Sales are append-only.
type SaleRepository struct {
	sales []entities.Sale
}

// NewSaleRepository creates a new in-memory sale repository
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{
		sales: []entities.Sale{},
	}
}

// Verify interface compliance
var _ repositories.SaleRepository = (*SaleRepository)(nil)

// LoadSales loads sales into the repository preserving the given order,
// first element newest
func (r *SaleRepository) LoadSales(sales []*entities.Sale) error {
	for _, s := range sales {
		r.sales = append(r.sales, *s)
	}
	return nil
}

// AddSale prepends a sale to the collection
func (r *SaleRepository) AddSale(sale *entities.Sale) error {
	if sale == nil {
		return fmt.Errorf("sale cannot be nil")
	}
	r.sales = append([]entities.Sale{*sale}, r.sales...)
	return nil
}

// AddSales prepends a batch of sales in one step. The batch keeps its own
// order at the front of the collection, so a multi-line sale reads top to
// bottom in the order its lines were drafted.
func (r *SaleRepository) AddSales(sales []*entities.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	batch := make([]entities.Sale, 0, len(sales)+len(r.sales))
	for _, s := range sales {
		if s == nil {
			return fmt.Errorf("sale cannot be nil")
		}
		batch = append(batch, *s)
	}
	r.sales = append(batch, r.sales...)
	return nil
}

// ListSales returns a snapshot of all sales, most recently added first
func (r *SaleRepository) ListSales() ([]*entities.Sale, error) {
	snapshot := make([]*entities.Sale, len(r.sales))
	for i := range r.sales {
		s := r.sales[i]
		snapshot[i] = &s
	}
	return snapshot, nil
}
