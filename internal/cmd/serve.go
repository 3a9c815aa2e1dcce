package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vikas-techsprout/Trooba-poc-1/internal/config"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/database"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/insights"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/llm"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/server"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/sync"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Trooba API server",
	Long: `Start the Trooba server which provides:
- REST API for sync status and aggregate analytics
- A sync trigger endpoint
- AI-generated sales and inventory insights`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Trooba Agent Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("🔌 Opening database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Setup(); err != nil {
		return fmt.Errorf("failed to set up database schema: %w", err)
	}

	fmt.Println("✅ Database ready")

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	generator, err := llm.NewGenerator(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	fmt.Println("⚙️  Setting up server...")
	engine := sync.NewEngine(cfg, db, logger)
	builder := insights.NewBuilder(db, generator, cfg.Sync.InsightsDir, logger)
	srv := server.NewServer(db, engine, builder)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
