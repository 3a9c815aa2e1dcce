package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vikas-techsprout/Trooba-poc-1/internal/config"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/database"
)

var dropFirst bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the local database schema",
	Long: `Creates the snapshot tables (products, variants, orders, order line
items) and the sync status ledger if they do not exist yet. The fetch
command does this implicitly; setup exists for provisioning the
database ahead of time or recreating it with --drop-first.`,
	RunE: setupDatabase,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing tables before creating")
}

func setupDatabase(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if dropFirst {
		fmt.Println("🗑️  Dropping existing tables...")
		if err := db.DropAll(); err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}
	}

	fmt.Println("📋 Creating schema...")
	if err := db.Setup(); err != nil {
		return fmt.Errorf("failed to set up schema: %w", err)
	}

	fmt.Printf("✅ Database ready at %s\n", cfg.DB.Path)
	return nil
}
