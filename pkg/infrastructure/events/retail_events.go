package events

import (
	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
)

// Stream identifiers, one per feature
const (
	SalesStream      = "sales"
	InventoryStream  = "inventory"
	PurchasingStream = "purchasing"
	SuppliersStream  = "suppliers"
)

const (
	SaleRecordedEvent = "sale.recorded"

	ProductAddedEvent  = "product.added"
	StockAdjustedEvent = "stock.adjusted"

	PurchaseOrderCreatedEvent = "purchaseorder.created"

	RestockRequestedEvent = "restock.requested"
)

// SaleRecorded is published once per committed sale line
type SaleRecorded struct {
	Sale entities.Sale `json:"sale"`
}

// ProductAdded is published when a new product enters the catalog
type ProductAdded struct {
	Product entities.Product `json:"product"`
}

// StockAdjusted is published when a stock adjustment commits. OldQuantity and
// NewQuantity reflect the clamped result, never a negative value.
type StockAdjusted struct {
	ProductID   string               `json:"product_id"`
	ProductName string               `json:"product_name"`
	OldQuantity int                  `json:"old_quantity"`
	NewQuantity int                  `json:"new_quantity"`
	Status      entities.StockStatus `json:"status"`
	Reason      string               `json:"reason"`
}

// PurchaseOrderCreated is published when a draft is committed to an order
type PurchaseOrderCreated struct {
	Order entities.PurchaseOrder `json:"order"`
}

// RestockRequested is published when a restock email is generated for a supplier
type RestockRequested struct {
	SupplierID   string `json:"supplier_id"`
	SupplierName string `json:"supplier_name"`
	ItemCount    int    `json:"item_count"`
}
