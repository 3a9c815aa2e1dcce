package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "trooba",
	Short: "Trooba - Shopify store analytics agent",
	Long: `Trooba syncs products, variants, orders and line items from a
Shopify store into a local SQLite database and serves aggregate
analytics plus AI-generated narrative insights on top of it.

Use the fetch command to pull store data, then explore it with the
analytics, insights and serve commands.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the structured logger shared by the sync pipeline and
// the insights builder.
func newLogger() (*zap.Logger, error) {
	return zap.NewDevelopment()
}
