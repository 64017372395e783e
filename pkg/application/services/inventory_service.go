package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Bcollado0310/agora-erp/pkg/application/services/assist"
	"github.com/Bcollado0310/agora-erp/pkg/application/services/notify"
	domainservices "github.com/Bcollado0310/agora-erp/pkg/domain/services"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
	"github.com/Bcollado0310/agora-erp/pkg/domain/repositories"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/events"
)

// AdjustmentType selects the direction of a stock adjustment
type AdjustmentType int

const (
	AddStock AdjustmentType = iota
	RemoveStock
)

// InventoryService manages the product catalog: adding products and adjusting
// stock. Every quantity change reclassifies the product's stock status under
// the configured reorder point and stores both atomically.
type InventoryService struct {
	products     repositories.ProductRepository
	reorderPoint int
	ids          IDGenerator
	notifier     *notify.Notifier
	runner       *assist.Runner
	store        events.EventStore
	now          func() time.Time
}

// NewInventoryService creates an inventory service. A non-positive
// reorderPoint falls back to the default.
func NewInventoryService(
	products repositories.ProductRepository,
	reorderPoint int,
	ids IDGenerator,
	notifier *notify.Notifier,
	runner *assist.Runner,
	store events.EventStore,
) *InventoryService {
	if reorderPoint <= 0 {
		reorderPoint = domainservices.DefaultReorderPoint
	}
	return &InventoryService{
		products:     products,
		reorderPoint: reorderPoint,
		ids:          ids,
		notifier:     notifier,
		runner:       runner,
		store:        store,
		now:          time.Now,
	}
}

// AddProduct creates a product, classifies its stock, and prepends it to the
// catalog
func (s *InventoryService) AddProduct(
	name, category string,
	quantity int,
	costPrice, sellingPrice decimal.Decimal,
	location, supplier string,
) (*entities.Product, error) {
	if category == "" {
		category = DeriveCategory(name)
	}

	product, err := entities.NewProduct(
		s.ids.NextID("SKU"),
		name,
		category,
		quantity,
		costPrice,
		sellingPrice,
		location,
		supplier,
		s.now().Truncate(24*time.Hour),
		domainservices.ClassifyStock(quantity, s.reorderPoint),
		"",
	)
	if err != nil {
		return nil, err
	}

	if err := s.products.AddProduct(product); err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	_ = s.store.AppendEvent(events.InventoryStream, events.NewEvent(events.ProductAddedEvent, events.InventoryStream, events.ProductAdded{Product: *product}))
	s.notifier.Show("New product added to inventory.")

	return product, nil
}

// AdjustStock applies a stock adjustment to a product. Removals clamp at
// zero; the new quantity, its classification, and the movement date are
// stored in one step.
func (s *InventoryService) AdjustStock(id string, adjustment AdjustmentType, quantity int) (*entities.Product, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("adjustment quantity must be positive, got %d", quantity)
	}

	product, err := s.products.GetProduct(id)
	if err != nil {
		return nil, err
	}

	oldQuantity := product.Quantity
	newQuantity := oldQuantity + quantity
	reason := "stock added"
	if adjustment == RemoveStock {
		newQuantity = oldQuantity - quantity
		if newQuantity < 0 {
			newQuantity = 0
		}
		reason = "stock removed"
	}

	status := domainservices.ClassifyStock(newQuantity, s.reorderPoint)
	updated, err := s.products.UpdateQuantity(id, newQuantity, status, s.now().Truncate(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock for %s: %w", id, err)
	}

	_ = s.store.AppendEvent(events.InventoryStream, events.NewEvent(events.StockAdjustedEvent, events.InventoryStream, events.StockAdjusted{
		ProductID:   updated.ID,
		ProductName: updated.Name,
		OldQuantity: oldQuantity,
		NewQuantity: updated.Quantity,
		Status:      updated.StockStatus,
		Reason:      reason,
	}))
	s.notifier.Show("Inventory updated successfully.")

	return updated, nil
}

// ApplyAssisted schedules the simulated assistant flow for inventory. The
// canned result is a notification only. Returns false while a previous
// command is still processing.
func (s *InventoryService) ApplyAssisted() bool {
	return s.runner.Start(func() {
		s.notifier.Show("Agora has applied your inventory update.")
	})
}
