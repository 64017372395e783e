package repositories

import (
	"time"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
)

// ProductRepository provides access to the product collection
type ProductRepository interface {
	// ListProducts returns a snapshot of all products, most recently added first
	ListProducts() ([]*entities.Product, error)
	GetProduct(id string) (*entities.Product, error)
	// AddProduct prepends a product so new entries surface first
	AddProduct(product *entities.Product) error
	// UpdateQuantity stores a new quantity together with its classification and
	// movement date in one step, so status can never drift from quantity
	UpdateQuantity(id string, quantity int, status entities.StockStatus, movedAt time.Time) (*entities.Product, error)
}
