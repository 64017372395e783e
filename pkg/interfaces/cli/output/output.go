package output

import (
	"encoding/json"
	"fmt"

	"github.com/Bcollado0310/agora-erp/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format  string
	Verbose bool
}

// Generate renders the dashboard report in the specified format
func Generate(report *dto.DashboardReport, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(report, config)
	case "json":
		return generateJSONOutput(report)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(report *dto.DashboardReport, config Config) error {
	fmt.Printf("📊 Agora Dashboard\n")
	fmt.Printf("==================\n\n")

	fmt.Printf("Total Inventory Value: $%s\n", report.Summary.TotalInventoryValue.StringFixed(2))
	fmt.Printf("Products: %d (low stock: %d, out of stock: %d)\n",
		report.Summary.ProductCount,
		report.Summary.LowStockCount,
		report.Summary.OutOfStockCount)
	fmt.Printf("Sales Recorded: %d\n", report.Summary.SaleCount)
	fmt.Printf("Suppliers: %d (avg lead time: %d days)\n",
		report.Summary.SupplierCount,
		report.Summary.AverageLeadTimeDays)
	fmt.Printf("Open Purchase Orders: %d worth $%s (received: %d)\n\n",
		report.Summary.OpenOrderCount,
		report.Summary.PendingOrdersValue.StringFixed(2),
		report.Summary.ReceivedOrderCount)

	if len(report.Products) > 0 {
		fmt.Printf("📦 Inventory:\n")
		fmt.Printf("%-10s %-32s %-15s %-6s %-10s %-12s %-15s\n",
			"SKU", "Name", "Category", "Qty", "Cost", "Status", "Supplier")
		fmt.Printf("%-10s %-32s %-15s %-6s %-10s %-12s %-15s\n",
			"----------", "--------------------------------", "---------------", "------", "----------", "------------", "---------------")

		for _, p := range report.Products {
			fmt.Printf("%-10s %-32s %-15s %-6d %-10s %-12s %-15s\n",
				p.ID,
				p.Name,
				p.Category,
				p.Quantity,
				p.CostPrice.StringFixed(2),
				p.StockStatus.String(),
				p.Supplier)
		}
		fmt.Println()
	}

	if len(report.Suppliers) > 0 {
		fmt.Printf("🤝 Supplier Risk:\n")
		fmt.Printf("%-10s %-18s %-15s %-10s %-8s %-8s\n",
			"ID", "Supplier", "Contact", "Lead Time", "At Risk", "Status")
		fmt.Printf("%-10s %-18s %-15s %-10s %-8s %-8s\n",
			"----------", "------------------", "---------------", "----------", "--------", "--------")

		for _, row := range report.Suppliers {
			fmt.Printf("%-10s %-18s %-15s %-10d %-8d %-8s\n",
				row.SupplierID,
				row.SupplierName,
				row.ContactName,
				row.LeadTimeDays,
				row.AtRiskProducts,
				row.Status)
		}
		fmt.Println()
	}

	if len(report.PurchaseOrders) > 0 {
		fmt.Printf("🧾 Purchase Orders:\n")
		fmt.Printf("%-10s %-18s %-12s %-6s %-12s %-10s\n",
			"ID", "Supplier", "Date", "Items", "Total", "Status")
		fmt.Printf("%-10s %-18s %-12s %-6s %-12s %-10s\n",
			"----------", "------------------", "------------", "------", "------------", "----------")

		for _, order := range report.PurchaseOrders {
			fmt.Printf("%-10s %-18s %-12s %-6d %-12s %-10s\n",
				order.ID,
				order.Supplier,
				order.Date.Format("2006-01-02"),
				order.ItemsCount,
				order.TotalAmount.StringFixed(2),
				order.Status.String())
		}
		fmt.Println()
	}

	if config.Verbose && len(report.Sales) > 0 {
		fmt.Printf("💰 Sales:\n")
		fmt.Printf("%-12s %-17s %-32s %-6s %-10s %-10s %-10s\n",
			"ID", "Date", "Product", "Qty", "Total", "Channel", "Status")
		fmt.Printf("%-12s %-17s %-32s %-6s %-10s %-10s %-10s\n",
			"------------", "-----------------", "--------------------------------", "------", "----------", "----------", "----------")

		for _, sale := range report.Sales {
			fmt.Printf("%-12s %-17s %-32s %-6d %-10s %-10s %-10s\n",
				sale.ID,
				sale.DateTime.Format("2006-01-02 15:04"),
				sale.Product,
				sale.Quantity,
				sale.TotalAmount.StringFixed(2),
				sale.Channel.String(),
				sale.Status.String())
		}
		fmt.Println()
	}

	if len(report.RecentActivity) > 0 {
		fmt.Printf("🕒 Recent Activity:\n")
		for _, entry := range report.RecentActivity {
			fmt.Printf("  %s  %-24s (%s)\n",
				entry.Timestamp.Format("15:04:05"),
				entry.Type,
				entry.Stream)
		}
		fmt.Println()
	}

	return nil
}

// generateJSONOutput creates JSON output on stdout
func generateJSONOutput(report *dto.DashboardReport) error {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}
