package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vikas-techsprout/Trooba-poc-1/internal/config"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/database"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/sync"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch store data from Shopify into the local database",
	Long: `Runs a full synchronization: validates the configured credentials,
clears the previous snapshot and repopulates the products, variants,
orders and line items tables from the Shopify Admin API.

The previous snapshot survives a failed sync; the outcome of every
attempt is recorded in the sync status ledger either way.`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	fmt.Println("🔄 Fetching Shopify store data...")

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

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	engine := sync.NewEngine(cfg, db, logger)
	result := engine.Fetch(cmd.Context())

	if !result.Success {
		fmt.Printf("❌ Sync failed: %s\n", result.Error)
		return nil
	}

	fmt.Printf("✅ Successfully fetched %d products and %d orders\n",
		result.ProductsCount, result.OrdersCount)
	fmt.Println("💡 Use 'trooba analytics' to explore the data")
	return nil
}
