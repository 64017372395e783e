package services

import (
	"github.com/Bcollado0310/agora-erp/pkg/application/services/notify"
	domainservices "github.com/Bcollado0310/agora-erp/pkg/domain/services"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
	"github.com/Bcollado0310/agora-erp/pkg/domain/repositories"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/events"
)

// SupplierService answers supplier-centric questions: which products a
// supplier covers, which of those need restocking, and the suggested restock
// request email. The product join is by exact name equality; an unknown name
// yields empty results, never an error.
type SupplierService struct {
	suppliers    repositories.SupplierRepository
	products     repositories.ProductRepository
	reorderPoint int
	notifier     *notify.Notifier
	store        events.EventStore
}

// NewSupplierService creates a supplier service. A non-positive reorderPoint
// falls back to the default.
func NewSupplierService(
	suppliers repositories.SupplierRepository,
	products repositories.ProductRepository,
	reorderPoint int,
	notifier *notify.Notifier,
	store events.EventStore,
) *SupplierService {
	if reorderPoint <= 0 {
		reorderPoint = domainservices.DefaultReorderPoint
	}
	return &SupplierService{
		suppliers:    suppliers,
		products:     products,
		reorderPoint: reorderPoint,
		notifier:     notifier,
		store:        store,
	}
}

// ListSuppliers returns a snapshot of the supplier directory
func (s *SupplierService) ListSuppliers() ([]*entities.Supplier, error) {
	return s.suppliers.ListSuppliers()
}

// LinkedProducts returns the products joined to the named supplier
func (s *SupplierService) LinkedProducts(supplierName string) ([]*entities.Product, error) {
	products, err := s.products.ListProducts()
	if err != nil {
		return nil, err
	}
	return domainservices.LinkedProducts(products, supplierName), nil
}

// RestockItems returns the supplier's products that are low or out of stock
func (s *SupplierService) RestockItems(supplierName string) ([]*entities.Product, error) {
	products, err := s.products.ListProducts()
	if err != nil {
		return nil, err
	}
	return domainservices.RestockCandidates(products, supplierName), nil
}

// Risk returns how many of the supplier's products are not In Stock
func (s *SupplierService) Risk(supplierName string) (int, error) {
	products, err := s.products.ListProducts()
	if err != nil {
		return 0, err
	}
	return domainservices.SupplierRisk(products, supplierName), nil
}

// AverageLeadTime returns the mean lead time across the directory in days
func (s *SupplierService) AverageLeadTime() (int, error) {
	suppliers, err := s.suppliers.ListSuppliers()
	if err != nil {
		return 0, err
	}
	return domainservices.AverageLeadTime(suppliers), nil
}

// RestockEmail builds the restock request email for a supplier from its
// current restock candidates, requesting the reorder point quantity per item
func (s *SupplierService) RestockEmail(supplierID string) (string, error) {
	supplier, err := s.suppliers.GetSupplier(supplierID)
	if err != nil {
		return "", err
	}

	items, err := s.RestockItems(supplier.Name)
	if err != nil {
		return "", err
	}

	_ = s.store.AppendEvent(events.SuppliersStream, events.NewEvent(events.RestockRequestedEvent, events.SuppliersStream, events.RestockRequested{
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		ItemCount:    len(items),
	}))

	return domainservices.RestockEmail(supplier, items, s.reorderPoint), nil
}

// CopyEmail acknowledges copying the generated email text
func (s *SupplierService) CopyEmail() {
	s.notifier.Show("Email text copied to clipboard.")
}
