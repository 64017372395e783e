package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/events"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/repositories/memory"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/seed"
)

func newDashboardFixture(t *testing.T) (*DashboardService, *events.InMemoryEventStore) {
	t.Helper()
	products := memory.NewProductRepository()
	require.NoError(t, products.LoadProducts(seed.Products()))
	sales := memory.NewSaleRepository()
	require.NoError(t, sales.LoadSales(seed.Sales()))
	suppliers := memory.NewSupplierRepository()
	require.NoError(t, suppliers.LoadSuppliers(seed.Suppliers()))
	orders := memory.NewPurchaseOrderRepository()
	require.NoError(t, orders.LoadOrders(seed.PurchaseOrders()))
	store := events.NewInMemoryEventStore()
	return NewDashboardService(products, sales, suppliers, orders, store, 50), store
}

func TestDashboardService_BuildReportFromSeedData(t *testing.T) {
	svc, _ := newDashboardFixture(t)

	report, err := svc.BuildReport()
	require.NoError(t, err)

	// 42*45 + 120*55 + 0*35 + 85*30 + 15*70 + 200*20 = 16090
	assert.Equal(t, "16090.00", report.Summary.TotalInventoryValue.StringFixed(2))
	assert.Equal(t, 6, report.Summary.ProductCount)
	assert.Equal(t, 2, report.Summary.LowStockCount)
	assert.Equal(t, 1, report.Summary.OutOfStockCount)
	assert.Equal(t, 8, report.Summary.SaleCount)
	assert.Equal(t, 4, report.Summary.SupplierCount)
	// (10+14+7+21)/4 = 13
	assert.Equal(t, 13, report.Summary.AverageLeadTimeDays)
	assert.Equal(t, 3, report.Summary.OpenOrderCount)
	// 550 + 1800 + 1500 pending
	assert.Equal(t, "3850.00", report.Summary.PendingOrdersValue.StringFixed(2))
	assert.Equal(t, 1, report.Summary.ReceivedOrderCount)

	require.Len(t, report.Suppliers, 4)
	byName := make(map[string]int)
	for _, row := range report.Suppliers {
		byName[row.SupplierName] = row.AtRiskProducts
	}
	assert.Equal(t, 1, byName["Luna Footwear"])
	assert.Equal(t, 1, byName["Atlas Footwear"])
	assert.Equal(t, 1, byName["YoungSteps"])
	assert.Equal(t, 0, byName["Moda Fabrics"])

	assert.Empty(t, report.RecentActivity)
}

func TestDashboardService_RecentActivityFromEventLog(t *testing.T) {
	svc, store := newDashboardFixture(t)

	for i := 0; i < 12; i++ {
		require.NoError(t, store.AppendEvent(events.SalesStream, events.NewEvent(events.SaleRecordedEvent, events.SalesStream, events.SaleRecorded{
			Sale: entities.Sale{ID: "ORD-X", TotalAmount: decimal.Zero},
		})))
	}

	report, err := svc.BuildReport()
	require.NoError(t, err)

	// Only the most recent mutations are surfaced.
	assert.Len(t, report.RecentActivity, 10)
	assert.Equal(t, events.SaleRecordedEvent, report.RecentActivity[0].Type)
}

func TestDashboardService_IdempotentAggregation(t *testing.T) {
	svc, _ := newDashboardFixture(t)

	first, err := svc.BuildReport()
	require.NoError(t, err)
	second, err := svc.BuildReport()
	require.NoError(t, err)

	assert.Equal(t, first.Summary, second.Summary)
}
