package memory

import (
	"fmt"
	"time"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
	"github.com/Bcollado0310/agora-erp/pkg/domain/repositories"
)

// ProductRepository provides in-memory product storage. New products are
// prepended so the most recently added surface first, and all reads hand out
// copies so no caller can mutate the collection behind the repository's back.
type ProductRepository struct {
	products []entities.Product
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: []entities.Product{},
	}
}

// Verify interface compliance
var _ repositories.ProductRepository = (*ProductRepository)(nil)

// LoadProducts loads products into the repository preserving the given order,
// first element newest
func (r *ProductRepository) LoadProducts(products []*entities.Product) error {
	for _, p := range products {
		r.products = append(r.products, *p)
	}
	return nil
}

// AddProduct prepends a product to the collection
func (r *ProductRepository) AddProduct(product *entities.Product) error {
	if product == nil {
		return fmt.Errorf("product cannot be nil")
	}
	r.products = append([]entities.Product{*product}, r.products...)
	return nil
}

// ListProducts returns a snapshot of all products, most recently added first
func (r *ProductRepository) ListProducts() ([]*entities.Product, error) {
	snapshot := make([]*entities.Product, len(r.products))
	for i := range r.products {
		p := r.products[i]
		snapshot[i] = &p
	}
	return snapshot, nil
}

// GetProduct returns a copy of the product with the given id
func (r *ProductRepository) GetProduct(id string) (*entities.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product not found: %s", id)
}

// UpdateQuantity stores a new quantity, status, and movement date for a
// product in a single step
func (r *ProductRepository) UpdateQuantity(id string, quantity int, status entities.StockStatus, movedAt time.Time) (*entities.Product, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %d", quantity)
	}
	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].Quantity = quantity
			r.products[i].StockStatus = status
			r.products[i].LastMovement = movedAt
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product not found: %s", id)
}
