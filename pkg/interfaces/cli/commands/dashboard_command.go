package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Bcollado0310/agora-erp/pkg/application/services"
	"github.com/Bcollado0310/agora-erp/pkg/application/services/assist"
	"github.com/Bcollado0310/agora-erp/pkg/application/services/notify"
	"github.com/Bcollado0310/agora-erp/pkg/config"
	"github.com/Bcollado0310/agora-erp/pkg/domain/entities"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/events"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/repositories/memory"
	"github.com/Bcollado0310/agora-erp/pkg/infrastructure/seed"
	"github.com/Bcollado0310/agora-erp/pkg/interfaces/cli/output"
)

// Config holds configuration for the dashboard command
type Config struct {
	Format  string
	Verbose bool
	Demo    bool
	Help    bool
}

// DashboardCommand loads the demo dataset, optionally runs a scripted
// mutation sequence, and renders the dashboard report
type DashboardCommand struct {
	config Config
	app    *config.Config
	logger *zap.Logger
}

// NewDashboardCommand creates a dashboard command
func NewDashboardCommand(cfg Config, appCfg *config.Config, logger *zap.Logger) *DashboardCommand {
	return &DashboardCommand{
		config: cfg,
		app:    appCfg,
		logger: logger,
	}
}

// Execute runs the dashboard command
func (c *DashboardCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	products := memory.NewProductRepository()
	if err := products.LoadProducts(seed.Products()); err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	sales := memory.NewSaleRepository()
	if err := sales.LoadSales(seed.Sales()); err != nil {
		return fmt.Errorf("failed to load sales: %w", err)
	}
	suppliers := memory.NewSupplierRepository()
	if err := suppliers.LoadSuppliers(seed.Suppliers()); err != nil {
		return fmt.Errorf("failed to load suppliers: %w", err)
	}
	orders := memory.NewPurchaseOrderRepository()
	if err := orders.LoadOrders(seed.PurchaseOrders()); err != nil {
		return fmt.Errorf("failed to load purchase orders: %w", err)
	}

	c.logger.Info("demo dataset loaded",
		zap.Int("reorder_point", c.app.Inventory.ReorderPoint))

	store := events.NewInMemoryEventStore()
	notifier := notify.New(c.app.Notifications.DisplayDuration)
	defer notifier.Close()
	runner := assist.New(c.app.Assist.ProcessingDelay)
	defer runner.Cancel()
	ids := services.NewSequenceGenerator(1005)

	if c.config.Demo {
		if err := c.runDemo(products, sales, suppliers, orders, ids, notifier, runner, store); err != nil {
			return fmt.Errorf("demo sequence failed: %w", err)
		}
	}

	dashboard := services.NewDashboardService(products, sales, suppliers, orders, store, c.app.Inventory.ReorderPoint)
	report, err := dashboard.BuildReport()
	if err != nil {
		return fmt.Errorf("failed to build dashboard report: %w", err)
	}

	return output.Generate(report, output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
	})
}

// runDemo executes the scripted mutation sequence: record a sale, adjust
// stock, and create a purchase order
func (c *DashboardCommand) runDemo(
	products *memory.ProductRepository,
	sales *memory.SaleRepository,
	suppliers *memory.SupplierRepository,
	orders *memory.PurchaseOrderRepository,
	ids services.IDGenerator,
	notifier *notify.Notifier,
	runner *assist.Runner,
	store events.EventStore,
) error {
	salesSvc := services.NewSalesService(sales, ids, notifier, runner, store)
	if err := salesSvc.AddItem("Women's Classic White Sneaker", "", 1, decimal.NewFromInt(89), entities.InStore); err != nil {
		return err
	}
	if err := salesSvc.AddItem("Leather Loafers", "", 1, decimal.NewFromInt(145), entities.Online); err != nil {
		return err
	}
	committed, err := salesSvc.CompleteSale()
	if err != nil {
		return err
	}
	c.logger.Info("sale recorded", zap.Int("lines", len(committed)))

	inventorySvc := services.NewInventoryService(products, c.app.Inventory.ReorderPoint, ids, notifier, runner, store)
	updated, err := inventorySvc.AdjustStock("SKU-001", services.RemoveStock, 30)
	if err != nil {
		return err
	}
	c.logger.Info("stock adjusted",
		zap.String("product", updated.ID),
		zap.Int("quantity", updated.Quantity),
		zap.String("status", updated.StockStatus.String()))

	purchasingSvc := services.NewPurchasingService(orders, suppliers, ids, notifier, runner, store)
	purchasingSvc.SetDraftSupplier("Atlas Footwear")
	if err := purchasingSvc.AddDraftItem("Men's Mesh Runner", 50, decimal.NewFromInt(55)); err != nil {
		return err
	}
	order, err := purchasingSvc.CreateOrder()
	if err != nil {
		return err
	}
	c.logger.Info("purchase order created",
		zap.String("order", order.ID),
		zap.String("total", order.TotalAmount.StringFixed(2)))

	if msg, visible := notifier.Current(); visible {
		c.logger.Info("notification", zap.String("message", msg))
	}

	return nil
}

// showHelp displays the help message
func (c *DashboardCommand) showHelp() {
	fmt.Printf(`Agora - Retail ERP Dashboard

USAGE:
    agora [options]

OPTIONS:
    -format <fmt>   Output format: text, json (default: text)
    -demo           Run the scripted mutation sequence before rendering
    -verbose        Include the full sales history in text output
    -help           Show this help message

CONFIGURATION:
    Settings load from ./configs/config.yaml or ./config.yaml when present,
    with AGORA_* environment variable overrides. Keys:
        inventory.reorder_point         Low Stock threshold (default: 50)
        notifications.display_duration  Toast auto-clear (default: 4s)
        assist.processing_delay         Simulated AI delay (default: 2s)
        log.level                       zap level (default: info)
        log.format                      console or json (default: console)

EXAMPLES:
    # Render the seeded dashboard
    agora

    # Record a sale, adjust stock, create a purchase order, then render
    agora -demo -verbose

    # Machine-readable report
    agora -format json
`)
}
