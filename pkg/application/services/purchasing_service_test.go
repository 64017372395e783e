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

func newPurchasingFixture(t *testing.T) (*PurchasingService, *memory.PurchaseOrderRepository, *notify.Notifier) {
	t.Helper()
	orders := memory.NewPurchaseOrderRepository()
	suppliers := memory.NewSupplierRepository()
	require.NoError(t, suppliers.LoadSuppliers([]*entities.Supplier{
		{ID: "SUP-002", Name: "Atlas Footwear", ContactName: "John Doe", LeadTimeDays: 14, Status: entities.Active},
	}))
	notifier := notify.New(0)
	svc := NewPurchasingService(orders, suppliers, NewSequenceGenerator(1005), notifier, assist.New(0), events.NewInMemoryEventStore())
	svc.now = func() time.Time {
		return time.Date(2025, 10, 19, 9, 0, 0, 0, time.UTC)
	}
	return svc, orders, notifier
}

func TestPurchasingService_CreateOrderRecomputesAggregates(t *testing.T) {
	svc, orders, notifier := newPurchasingFixture(t)

	svc.SetDraftSupplier("Atlas Footwear")
	require.NoError(t, svc.AddDraftItem("Widget A", 10, decimal.NewFromInt(5)))
	require.NoError(t, svc.AddDraftItem("Widget B", 2, decimal.NewFromInt(20)))
	assert.Equal(t, "90", svc.DraftTotal().String())

	order, err := svc.CreateOrder()
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, "PO-1006", order.ID)
	assert.Equal(t, 12, order.ItemsCount)
	assert.Equal(t, "90", order.TotalAmount.String())
	assert.Equal(t, entities.Pending, order.Status)

	// Expected delivery is the order date plus the supplier's lead time.
	assert.Equal(t, time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC), order.ExpectedDelivery)

	// Draft is cleared after the commit.
	assert.Empty(t, svc.DraftItems())
	assert.Empty(t, svc.DraftSupplier())

	listed, err := orders.ListOrders()
	require.NoError(t, err)
	require.Len(t, listed, 1)

	msg, _ := notifier.Current()
	assert.Equal(t, "Purchase Order created successfully.", msg)
}

func TestPurchasingService_UnknownSupplierFallbackDelivery(t *testing.T) {
	svc, _, _ := newPurchasingFixture(t)

	svc.SetDraftSupplier("Ghost Co")
	require.NoError(t, svc.AddDraftItem("Widget A", 1, decimal.NewFromInt(5)))

	order, err := svc.CreateOrder()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC), order.ExpectedDelivery)
}

func TestPurchasingService_EmptyDraftIsNoOp(t *testing.T) {
	svc, orders, notifier := newPurchasingFixture(t)

	order, err := svc.CreateOrder()
	require.NoError(t, err)
	assert.Nil(t, order)

	count, err := orders.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	_, visible := notifier.Current()
	assert.False(t, visible)
}

func TestPurchasingService_DraftEditing(t *testing.T) {
	svc, _, _ := newPurchasingFixture(t)

	require.NoError(t, svc.AddDraftItem("Widget A", 10, decimal.NewFromInt(5)))
	require.NoError(t, svc.AddDraftItem("Widget B", 2, decimal.NewFromInt(20)))

	require.NoError(t, svc.RemoveDraftItem(0))
	items := svc.DraftItems()
	require.Len(t, items, 1)
	assert.Equal(t, "Widget B", items[0].ProductName)

	assert.Error(t, svc.RemoveDraftItem(3))
	assert.Error(t, svc.AddDraftItem("", 1, decimal.NewFromInt(1)))
	assert.Error(t, svc.AddDraftItem("Widget C", 0, decimal.NewFromInt(1)))

	svc.DiscardDraft()
	assert.Empty(t, svc.DraftItems())
}

func TestPurchasingService_VoiceDraft(t *testing.T) {
	svc, _, notifier := newPurchasingFixture(t)

	assert.True(t, svc.VoiceDraft())

	assert.Equal(t, "Atlas Footwear", svc.DraftSupplier())
	items := svc.DraftItems()
	require.Len(t, items, 1)
	assert.Equal(t, "Men's Mesh Runner", items[0].ProductName)
	assert.Equal(t, 50, items[0].Quantity)
	assert.Equal(t, "2750", items[0].Total.String())

	msg, _ := notifier.Current()
	assert.Equal(t, "AI parsed your order description.", msg)

	// The parsed draft commits like any manual one.
	order, err := svc.CreateOrder()
	require.NoError(t, err)
	assert.Equal(t, 50, order.ItemsCount)
	assert.Equal(t, "2750", order.TotalAmount.String())
}
