package repositories

import "github.com/Bcollado0310/agora-erp/pkg/domain/entities"

// PurchaseOrderRepository provides access to the purchase order collection.
// Orders are immutable once committed.
type PurchaseOrderRepository interface {
	// ListOrders returns a snapshot of all orders, most recently added first
	ListOrders() ([]*entities.PurchaseOrder, error)
	GetOrder(id string) (*entities.PurchaseOrder, error)
	AddOrder(order *entities.PurchaseOrder) error
	// Count returns the number of committed orders
	Count() (int, error)
}
