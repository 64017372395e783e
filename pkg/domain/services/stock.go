package services

import "github.com/Bcollado0310/agora-erp/pkg/domain/entities"

// DefaultReorderPoint is the canonical quantity threshold at or below which a
// product with stock on hand is classified Low Stock. Configurable per
// deployment; 50 matches the threshold applied by the stock adjustment flow.
const DefaultReorderPoint = 50

// ClassifyStock maps an on-hand quantity to its stock status under the given
// reorder point. A non-positive reorder point falls back to the default.
//
//	quantity == 0              -> Out of Stock
//	0 < quantity <= reorder    -> Low Stock
//	quantity > reorder         -> In Stock
func ClassifyStock(quantity, reorderPoint int) entities.StockStatus {
	if reorderPoint <= 0 {
		reorderPoint = DefaultReorderPoint
	}
	switch {
	case quantity <= 0:
		return entities.OutOfStock
	case quantity <= reorderPoint:
		return entities.LowStock
	default:
		return entities.InStock
	}
}
