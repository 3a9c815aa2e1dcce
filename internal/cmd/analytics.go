package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vikas-techsprout/Trooba-poc-1/internal/config"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/database"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/report"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/sync"
)

var trendDays int

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show aggregate sales and inventory analytics",
	Long: `Prints the aggregate analytics computed from the local snapshot:
total sales, order and item counts, top products by revenue, category
distribution and the daily order trend. Revenue figures exclude
refunded orders.`,
	RunE: showAnalytics,
}

func init() {
	rootCmd.AddCommand(analyticsCmd)

	analyticsCmd.Flags().IntVar(&trendDays, "days", 30, "Number of trailing days for the order trend")
}

func showAnalytics(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Setup(); err != nil {
		return fmt.Errorf("failed to set up database schema: %w", err)
	}

	if summary := sync.NewLedger(db).Summary(); !summary.HasData {
		fmt.Println("📭 No store data available. Run 'trooba fetch' first.")
		return nil
	}

	reporter := report.NewReporter(db)

	// Each section degrades on its own so one failed query does not hide
	// the rest of the report.
	if a, err := reporter.Analytics(); err != nil {
		fmt.Printf("⚠️  Overview unavailable: %v\n", err)
	} else {
		fmt.Println("💰 Sales overview:")
		fmt.Printf("   Total sales:  %.2f\n", a.TotalSales)
		fmt.Printf("   Total orders: %d\n", a.TotalOrders)
		fmt.Printf("   Items sold:   %d\n", a.TotalItems)

		if len(a.TopProducts) > 0 {
			fmt.Println("\n🏆 Top products by revenue:")
			for i, p := range a.TopProducts {
				fmt.Printf("   %d. %s — %d sold, %.2f revenue\n", i+1, p.Title, p.Quantity, p.Sales)
			}
		}

		if len(a.Categories) > 0 {
			fmt.Println("\n📦 Product categories:")
			for _, c := range a.Categories {
				fmt.Printf("   %-24s %d products\n", c.Category, c.Count)
			}
		}
	}

	if daily, err := reporter.DailyOrderPerformance(trendDays); err != nil {
		fmt.Printf("⚠️  Order trend unavailable: %v\n", err)
	} else if len(daily) > 0 {
		fmt.Printf("\n📈 Order trend (last %d days):\n", trendDays)
		for _, d := range daily {
			fmt.Printf("   %s  %3d orders  %10.2f revenue  %8.2f avg\n",
				d.OrderDate, d.DailyOrders, d.DailyRevenue, d.AvgOrderValue)
		}
	}

	return nil
}
