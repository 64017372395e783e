package services

import (
	"fmt"

	"github.com/Bcollado0310/agora-erp/pkg/application/dto"
	domainservices "github.com/Bcollado0310/agora-erp/pkg/domain/services"

	"github.com/Bcollado0310/agora-erp/pkg/domain/repositories"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/events"
)

// recentActivityLimit caps how many committed mutations the dashboard shows.
const recentActivityLimit = 10

// DashboardService assembles the dashboard report from collection snapshots
// and the event log. It holds no state of its own.
type DashboardService struct {
	products     repositories.ProductRepository
	sales        repositories.SaleRepository
	suppliers    repositories.SupplierRepository
	orders       repositories.PurchaseOrderRepository
	store        events.EventStore
	reorderPoint int
}

// NewDashboardService creates a dashboard service. A non-positive
// reorderPoint falls back to the default.
func NewDashboardService(
	products repositories.ProductRepository,
	sales repositories.SaleRepository,
	suppliers repositories.SupplierRepository,
	orders repositories.PurchaseOrderRepository,
	store events.EventStore,
	reorderPoint int,
) *DashboardService {
	if reorderPoint <= 0 {
		reorderPoint = domainservices.DefaultReorderPoint
	}
	return &DashboardService{
		products:     products,
		sales:        sales,
		suppliers:    suppliers,
		orders:       orders,
		store:        store,
		reorderPoint: reorderPoint,
	}
}

// BuildReport recomputes the full dashboard report from current snapshots
func (s *DashboardService) BuildReport() (*dto.DashboardReport, error) {
	products, err := s.products.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	sales, err := s.sales.ListSales()
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	suppliers, err := s.suppliers.ListSuppliers()
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	orders, err := s.orders.ListOrders()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	report := &dto.DashboardReport{
		Summary: dto.DashboardSummary{
			TotalInventoryValue: domainservices.TotalInventoryValue(products),
			ProductCount:        len(products),
			LowStockCount:       domainservices.LowStockCount(products, s.reorderPoint),
			OutOfStockCount:     domainservices.OutOfStockCount(products, s.reorderPoint),
			SaleCount:           len(sales),
			SupplierCount:       len(suppliers),
			AverageLeadTimeDays: domainservices.AverageLeadTime(suppliers),
			OpenOrderCount:      domainservices.OpenOrderCount(orders),
			PendingOrdersValue:  domainservices.PendingOrdersValue(orders),
			ReceivedOrderCount:  domainservices.ReceivedOrderCount(orders),
		},
		Products:       products,
		PurchaseOrders: orders,
		Sales:          sales,
	}

	for _, supplier := range suppliers {
		report.Suppliers = append(report.Suppliers, dto.SupplierRiskRow{
			SupplierID:     supplier.ID,
			SupplierName:   supplier.Name,
			ContactName:    supplier.ContactName,
			LeadTimeDays:   supplier.LeadTimeDays,
			AtRiskProducts: domainservices.SupplierRisk(products, supplier.Name),
			Status:         supplier.Status.String(),
		})
	}

	recorded, err := s.store.ReadAllEvents(0)
	if err != nil {
		return nil, fmt.Errorf("failed to read event log: %w", err)
	}
	start := 0
	if len(recorded) > recentActivityLimit {
		start = len(recorded) - recentActivityLimit
	}
	for _, event := range recorded[start:] {
		report.RecentActivity = append(report.RecentActivity, dto.ActivityEntry{
			Type:      event.Type(),
			Stream:    event.StreamID(),
			Timestamp: event.Timestamp(),
		})
	}

	return report, nil
}
