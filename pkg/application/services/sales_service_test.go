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

func newSalesFixture() (*SalesService, *memory.SaleRepository, *notify.Notifier, *events.InMemoryEventStore) {
	repo := memory.NewSaleRepository()
	notifier := notify.New(0)
	store := events.NewInMemoryEventStore()
	svc := NewSalesService(repo, NewSequenceGenerator(9000), notifier, assist.New(0), store)
	svc.now = func() time.Time {
		return time.Date(2025, 10, 19, 11, 30, 45, 0, time.UTC)
	}
	return svc, repo, notifier, store
}

func TestSalesService_CompleteSaleCommitsCart(t *testing.T) {
	svc, repo, notifier, store := newSalesFixture()

	require.NoError(t, svc.AddItem("Women's Classic White Sneaker", "", 1, decimal.NewFromInt(89), entities.InStore))
	require.NoError(t, svc.AddItem("Leather Loafers", "Men's Shoes", 1, decimal.NewFromInt(145), entities.Online))

	assert.Equal(t, "234", svc.PendingTotal().String())

	committed, err := svc.CompleteSale()
	require.NoError(t, err)
	require.Len(t, committed, 2)

	// All lines share one order base and one timestamp, truncated to the minute.
	assert.Equal(t, "ORD-9001-1", committed[0].ID)
	assert.Equal(t, "ORD-9001-2", committed[1].ID)
	wantTime := time.Date(2025, 10, 19, 11, 30, 0, 0, time.UTC)
	assert.Equal(t, wantTime, committed[0].DateTime)
	assert.Equal(t, wantTime, committed[1].DateTime)
	assert.Equal(t, entities.Completed, committed[0].Status)

	// Category derived from the product name when left empty.
	assert.Equal(t, "Women's Shoes", committed[0].Category)

	// The cart is cleared and the batch sits in front of the collection in
	// draft order.
	assert.Empty(t, svc.PendingItems())
	listed, err := repo.ListSales()
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "ORD-9001-1", listed[0].ID)

	msg, visible := notifier.Current()
	assert.True(t, visible)
	assert.Equal(t, "Sale recorded successfully.", msg)

	recorded, err := store.ReadEvents(events.SalesStream, 1)
	require.NoError(t, err)
	assert.Len(t, recorded, 2)
}

func TestSalesService_EmptyCommitIsNoOp(t *testing.T) {
	svc, repo, notifier, _ := newSalesFixture()

	committed, err := svc.CompleteSale()
	require.NoError(t, err)
	assert.Nil(t, committed)

	listed, err := repo.ListSales()
	require.NoError(t, err)
	assert.Empty(t, listed)

	_, visible := notifier.Current()
	assert.False(t, visible)
}

func TestSalesService_RemoveItem(t *testing.T) {
	svc, _, _, _ := newSalesFixture()

	require.NoError(t, svc.AddItem("Canvas Slip-Ons", "", 1, decimal.NewFromInt(55), entities.Online))
	require.NoError(t, svc.AddItem("Summer Floral Dress", "", 1, decimal.NewFromInt(75), entities.InStore))

	require.NoError(t, svc.RemoveItem(0))
	items := svc.PendingItems()
	require.Len(t, items, 1)
	assert.Equal(t, "Summer Floral Dress", items[0].Product)

	assert.Error(t, svc.RemoveItem(5))
}

func TestSalesService_AddItemValidation(t *testing.T) {
	svc, _, _, _ := newSalesFixture()

	assert.Error(t, svc.AddItem("", "", 1, decimal.NewFromInt(10), entities.InStore))
	assert.Error(t, svc.AddItem("Leather Loafers", "", 0, decimal.NewFromInt(10), entities.InStore))
	assert.Error(t, svc.AddItem("Leather Loafers", "", 1, decimal.NewFromInt(-1), entities.InStore))
}

func TestSalesService_RecordAssisted(t *testing.T) {
	svc, repo, notifier, _ := newSalesFixture()

	assert.True(t, svc.RecordAssisted(VoiceMode))

	listed, err := repo.ListSales()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "AI-9001", listed[0].ID)
	assert.Equal(t, "Men's Mesh Runner", listed[0].Product)
	assert.Equal(t, 2, listed[0].Quantity)
	assert.Equal(t, "220", listed[0].TotalAmount.String())
	assert.Equal(t, entities.InStore, listed[0].Channel)

	msg, _ := notifier.Current()
	assert.Equal(t, "Agora has captured a new sale using your description.", msg)

	assert.True(t, svc.RecordAssisted(UploadMode))
	msg, _ = notifier.Current()
	assert.Equal(t, "Invoice processed. A new sale has been added.", msg)
}

func TestDeriveCategory(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Women's Classic White Sneaker", "Women's Shoes"},
		{"Kids' Everyday Runner", "Kids' Shoes"},
		{"Summer Floral Dress", "Dresses"},
		{"Leather Loafers", "Men's Shoes"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveCategory(tt.name), tt.name)
	}
}
