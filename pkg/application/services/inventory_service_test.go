package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bcollado0310/agora-erp/pkg/application/services/assist"
	"github.com/Bcollado0310/agora-erp/pkg/application/services/notify"
	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/events"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/repositories/memory"
)

func newInventoryFixture(t *testing.T, products []*entities.Product) (*InventoryService, *memory.ProductRepository, *notify.Notifier, *events.InMemoryEventStore) {
	t.Helper()
	repo := memory.NewProductRepository()
	require.NoError(t, repo.LoadProducts(products))
	notifier := notify.New(0)
	store := events.NewInMemoryEventStore()
	svc := NewInventoryService(repo, 50, NewSequenceGenerator(100), notifier, assist.New(0), store)
	svc.now = func() time.Time {
		return time.Date(2025, 10, 19, 9, 0, 0, 0, time.UTC)
	}
	return svc, repo, notifier, store
}

func TestInventoryService_AddProduct(t *testing.T) {
	svc, repo, notifier, store := newInventoryFixture(t, nil)

	product, err := svc.AddProduct("Canvas Slip-Ons", "", 100, decimal.NewFromInt(20), decimal.NewFromInt(55), "Warehouse", "Luna Footwear")
	require.NoError(t, err)

	assert.Equal(t, "SKU-101", product.ID)
	assert.Equal(t, "Women's Shoes", product.Category)
	assert.Equal(t, entities.InStock, product.StockStatus)
	assert.Equal(t, time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC), product.LastMovement)

	listed, err := repo.ListProducts()
	require.NoError(t, err)
	require.Len(t, listed, 1)

	msg, _ := notifier.Current()
	assert.Equal(t, "New product added to inventory.", msg)

	recorded, err := store.ReadEvents(events.InventoryStream, 1)
	require.NoError(t, err)
	assert.Len(t, recorded, 1)
}

func TestInventoryService_AdjustStockClampsAtZero(t *testing.T) {
	svc, _, notifier, store := newInventoryFixture(t, []*entities.Product{
		{ID: "SKU-001", Name: "Leather Loafers", Quantity: 3, StockStatus: entities.LowStock},
	})

	updated, err := svc.AdjustStock("SKU-001", RemoveStock, 5)
	require.NoError(t, err)

	// Removing more than on hand clamps to zero, never negative.
	assert.Equal(t, 0, updated.Quantity)
	assert.Equal(t, entities.OutOfStock, updated.StockStatus)

	msg, _ := notifier.Current()
	assert.Equal(t, "Inventory updated successfully.", msg)

	recorded, err := store.ReadEvents(events.InventoryStream, 1)
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	payload, ok := recorded[0].Data().(events.StockAdjusted)
	require.True(t, ok)
	assert.Equal(t, 3, payload.OldQuantity)
	assert.Equal(t, 0, payload.NewQuantity)
}

func TestInventoryService_AdjustStockAdd(t *testing.T) {
	svc, _, _, _ := newInventoryFixture(t, []*entities.Product{
		{ID: "SKU-001", Name: "Leather Loafers", Quantity: 45, StockStatus: entities.LowStock},
	})

	updated, err := svc.AdjustStock("SKU-001", AddStock, 20)
	require.NoError(t, err)

	// Status is reclassified together with the quantity.
	assert.Equal(t, 65, updated.Quantity)
	assert.Equal(t, entities.InStock, updated.StockStatus)
	assert.Equal(t, time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC), updated.LastMovement)
}

func TestInventoryService_AdjustStockValidation(t *testing.T) {
	svc, _, _, _ := newInventoryFixture(t, []*entities.Product{
		{ID: "SKU-001", Name: "Leather Loafers", Quantity: 10},
	})

	_, err := svc.AdjustStock("SKU-001", AddStock, 0)
	assert.Error(t, err)

	_, err = svc.AdjustStock("SKU-404", AddStock, 1)
	assert.Error(t, err)
}

func TestInventoryService_ApplyAssisted(t *testing.T) {
	svc, _, notifier, _ := newInventoryFixture(t, nil)

	assert.True(t, svc.ApplyAssisted())

	msg, _ := notifier.Current()
	assert.Equal(t, "Agora has applied your inventory update.", msg)
}
