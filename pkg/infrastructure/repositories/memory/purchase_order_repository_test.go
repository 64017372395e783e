package memory

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
)

func TestPurchaseOrderRepository_PrependAndCount(t *testing.T) {
	repo := NewPurchaseOrderRepository()

	orders := []*entities.PurchaseOrder{
		{ID: "PO-1001", Supplier: "Luna Footwear", Status: entities.Received, TotalAmount: decimal.NewFromInt(1200)},
		{ID: "PO-1002", Supplier: "Atlas Footwear", Status: entities.Pending, TotalAmount: decimal.NewFromInt(550)},
	}
	if err := repo.LoadOrders(orders); err != nil {
		t.Fatalf("Failed to load orders: %v", err)
	}

	if err := repo.AddOrder(&entities.PurchaseOrder{ID: "PO-1003", Supplier: "YoungSteps", Status: entities.Pending, TotalAmount: decimal.NewFromInt(1800)}); err != nil {
		t.Fatalf("Failed to add order: %v", err)
	}

	listed, err := repo.ListOrders()
	if err != nil {
		t.Fatalf("Failed to list orders: %v", err)
	}
	if listed[0].ID != "PO-1003" {
		t.Errorf("Expected newest order first, got %s", listed[0].ID)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Failed to count orders: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 orders, got %d", count)
	}
}
