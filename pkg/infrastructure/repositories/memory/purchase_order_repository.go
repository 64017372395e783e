package memory

import (
	"fmt"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
	"github.com/Bcollado0310/agora-erp/pkg/domain/repositories"
)

// PurchaseOrderRepository provides in-memory purchase order storage. Orders
// are immutable once added.
type PurchaseOrderRepository struct {
	orders []entities.PurchaseOrder
}

// NewPurchaseOrderRepository creates a new in-memory purchase order repository
func NewPurchaseOrderRepository() *PurchaseOrderRepository {
	return &PurchaseOrderRepository{
		orders: []entities.PurchaseOrder{},
	}
}

// Verify interface compliance
var _ repositories.PurchaseOrderRepository = (*PurchaseOrderRepository)(nil)

// LoadOrders loads orders into the repository preserving the given order,
// first element newest
func (r *PurchaseOrderRepository) LoadOrders(orders []*entities.PurchaseOrder) error {
	for _, o := range orders {
		r.orders = append(r.orders, *o)
	}
	return nil
}

// AddOrder prepends an order to the collection
func (r *PurchaseOrderRepository) AddOrder(order *entities.PurchaseOrder) error {
	if order == nil {
		return fmt.Errorf("order cannot be nil")
	}
	r.orders = append([]entities.PurchaseOrder{*order}, r.orders...)
	return nil
}

// ListOrders returns a snapshot of all orders, most recently added first
func (r *PurchaseOrderRepository) ListOrders() ([]*entities.PurchaseOrder, error) {
	snapshot := make([]*entities.PurchaseOrder, len(r.orders))
	for i := range r.orders {
		o := r.orders[i]
		// Items are shared read-only; orders are never edited after commit.
		snapshot[i] = &o
	}
	return snapshot, nil
}

// GetOrder returns a copy of the order with the given id
func (r *PurchaseOrderRepository) GetOrder(id string) (*entities.PurchaseOrder, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, fmt.Errorf("order not found: %s", id)
}

// Count returns the number of committed orders
func (r *PurchaseOrderRepository) Count() (int, error) {
	return len(r.orders), nil
}
