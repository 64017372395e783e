package repositories

import "github.com/Bcollado0310/agora-erp/pkg/domain/entities"

// SupplierRepository provides access to the supplier collection
type SupplierRepository interface {
	// ListSuppliers returns a snapshot of all suppliers, most recently added first
	ListSuppliers() ([]*entities.Supplier, error)
	GetSupplier(id string) (*entities.Supplier, error)
	// FindSupplierByName resolves the name-equality join from products. The
	// match is exact and case-sensitive; an unmatched name returns ok=false
	// rather than an error.
	FindSupplierByName(name string) (supplier *entities.Supplier, ok bool)
	AddSupplier(supplier *entities.Supplier) error
}
