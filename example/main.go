// Example demonstrating the agora-erp library API: seeding the collections,
// recording a sale, adjusting stock, generating a restock email, and reading
// the recomputed dashboard aggregates.
package main

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/Bcollado0310/agora-erp/pkg/application/services"
	"github.com/Bcollado0310/agora-erp/pkg/application/services/assist"
	"github.com/Bcollado0310/agora-erp/pkg/application/services/notify"
	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/events"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/repositories/memory"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/seed"
)

func main() {
	fmt.Println("Agora Retail ERP Example")
	fmt.Println("========================")

	// Load the demo dataset into in-memory repositories.
	products := memory.NewProductRepository()
	if err := products.LoadProducts(seed.Products()); err != nil {
		log.Fatalf("Failed to load products: %v", err)
	}
	sales := memory.NewSaleRepository()
	if err := sales.LoadSales(seed.Sales()); err != nil {
		log.Fatalf("Failed to load sales: %v", err)
	}
	suppliers := memory.NewSupplierRepository()
	if err := suppliers.LoadSuppliers(seed.Suppliers()); err != nil {
		log.Fatalf("Failed to load suppliers: %v", err)
	}
	orders := memory.NewPurchaseOrderRepository()
	if err := orders.LoadOrders(seed.PurchaseOrders()); err != nil {
		log.Fatalf("Failed to load purchase orders: %v", err)
	}

	store := events.NewInMemoryEventStore()
	notifier := notify.New(0) // keep notifications visible for printing
	defer notifier.Close()
	runner := assist.New(0) // apply assisted commands inline
	ids := services.NewSequenceGenerator(1005)

	// Record a two-line sale through the cart.
	salesSvc := services.NewSalesService(sales, ids, notifier, runner, store)
	if err := salesSvc.AddItem("Women's Classic White Sneaker", "", 1, decimal.NewFromInt(89), entities.InStore); err != nil {
		log.Fatalf("Failed to add cart item: %v", err)
	}
	if err := salesSvc.AddItem("Leather Loafers", "", 2, decimal.NewFromInt(290), entities.Online); err != nil {
		log.Fatalf("Failed to add cart item: %v", err)
	}
	fmt.Printf("\nCart total: $%s\n", salesSvc.PendingTotal().StringFixed(2))

	committed, err := salesSvc.CompleteSale()
	if err != nil {
		log.Fatalf("Failed to complete sale: %v", err)
	}
	for _, sale := range committed {
		fmt.Printf("  committed %s: %s x%d ($%s)\n", sale.ID, sale.Product, sale.Quantity, sale.TotalAmount.StringFixed(2))
	}
	if msg, ok := notifier.Current(); ok {
		fmt.Printf("  notification: %s\n", msg)
	}

	// Adjust stock; removal clamps at zero and reclassifies the product.
	inventorySvc := services.NewInventoryService(products, 50, ids, notifier, runner, store)
	updated, err := inventorySvc.AdjustStock("SKU-005", services.RemoveStock, 20)
	if err != nil {
		log.Fatalf("Failed to adjust stock: %v", err)
	}
	fmt.Printf("\n%s after removal: quantity=%d status=%s\n", updated.Name, updated.Quantity, updated.StockStatus)

	// Build a restock email for the supplier covering the low-stock products.
	supplierSvc := services.NewSupplierService(suppliers, products, 50, notifier, store)
	email, err := supplierSvc.RestockEmail("SUP-002")
	if err != nil {
		log.Fatalf("Failed to build restock email: %v", err)
	}
	fmt.Printf("\n%s\n", email)

	// Dashboard aggregates recompute from the mutated snapshots.
	dashboard := services.NewDashboardService(products, sales, suppliers, orders, store, 50)
	report, err := dashboard.BuildReport()
	if err != nil {
		log.Fatalf("Failed to build report: %v", err)
	}
	fmt.Printf("\nDashboard: inventory value $%s, low stock %d, out of stock %d, open POs %d\n",
		report.Summary.TotalInventoryValue.StringFixed(2),
		report.Summary.LowStockCount,
		report.Summary.OutOfStockCount,
		report.Summary.OpenOrderCount)
	fmt.Printf("Recent activity: %d committed mutations\n", len(report.RecentActivity))
}
