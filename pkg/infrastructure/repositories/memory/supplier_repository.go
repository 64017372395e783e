package memory

import (
	"fmt"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
	"github.com/Bcollado0310/agora-erp/pkg/domain/repositories"
)

// SupplierRepository provides in-memory supplier storage
type SupplierRepository struct {
	suppliers []entities.Supplier
}

// NewSupplierRepository creates a new in-memory supplier repository
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{
		suppliers: []entities.Supplier{},
	}
}

// Verify interface compliance
var _ repositories.SupplierRepository = (*SupplierRepository)(nil)

// LoadSuppliers loads suppliers into the repository preserving the given
// order, first element newest
func (r *SupplierRepository) LoadSuppliers(suppliers []*entities.Supplier) error {
	for _, s := range suppliers {
		r.suppliers = append(r.suppliers, *s)
	}
	return nil
}

// AddSupplier prepends a supplier to the collection
func (r *SupplierRepository) AddSupplier(supplier *entities.Supplier) error {
	if supplier == nil {
		return fmt.Errorf("supplier cannot be nil")
	}
	r.suppliers = append([]entities.Supplier{*supplier}, r.suppliers...)
	return nil
}

// ListSuppliers returns a snapshot of all suppliers, most recently added first
func (r *SupplierRepository) ListSuppliers() ([]*entities.Supplier, error) {
	snapshot := make([]*entities.Supplier, len(r.suppliers))
	for i := range r.suppliers {
		s := r.suppliers[i]
		snapshot[i] = &s
	}
	return snapshot, nil
}

// GetSupplier returns a copy of the supplier with the given id
func (r *SupplierRepository) GetSupplier(id string) (*entities.Supplier, error) {
	for i := range r.suppliers {
		if r.suppliers[i].ID == id {
			s := r.suppliers[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("supplier not found: %s", id)
}

// FindSupplierByName resolves a product's supplier name reference. The match
// is exact and case-sensitive; an unmatched name is not an error.
func (r *SupplierRepository) FindSupplierByName(name string) (*entities.Supplier, bool) {
	for i := range r.suppliers {
		if r.suppliers[i].Name == name {
			s := r.suppliers[i]
			return &s, true
		}
	}
	return nil, false
}
