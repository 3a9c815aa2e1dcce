package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vikas-techsprout/Trooba-poc-1/internal/config"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/database"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/insights"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/llm"
)

var (
	insightsKind    string
	insightsRefresh bool
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate AI-powered store insights",
	Long: `Generates a narrative summary of the store's sales or inventory
using the configured LLM provider. Results are cached under the
insights directory; use --refresh to force regeneration.`,
	RunE: generateInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)

	insightsCmd.Flags().StringVar(&insightsKind, "kind", insights.KindSales, "Insights kind: sales or inventory")
	insightsCmd.Flags().BoolVar(&insightsRefresh, "refresh", false, "Regenerate instead of serving the cached copy")
}

func generateInsights(cmd *cobra.Command, args []string) error {
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

	generator, err := llm.NewGenerator(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	builder := insights.NewBuilder(db, generator, cfg.Sync.InsightsDir, logger)

	if !insightsRefresh {
		if cached, ok := builder.LoadCached(insightsKind); ok {
			fmt.Println(cached)
			fmt.Println("\n💡 Cached result shown; use --refresh to regenerate")
			return nil
		}
	}

	fmt.Printf("🤖 Generating %s insights with %s...\n\n", insightsKind, generator.Model())

	text, err := builder.Generate(cmd.Context(), insightsKind)
	if err != nil {
		return fmt.Errorf("failed to generate insights: %w", err)
	}

	fmt.Println(text)
	return nil
}
