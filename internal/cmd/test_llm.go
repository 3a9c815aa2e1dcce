package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vikas-techsprout/Trooba-poc-1/internal/config"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/llm"
)

var testLLMCmd = &cobra.Command{
	Use:   "test-llm",
	Short: "Test the LLM provider connection",
	Long: `Test the connection to the configured LLM generator. This helps
verify the API key and connectivity before generating insights.`,
	RunE: testLLMProvider,
}

func init() {
	rootCmd.AddCommand(testLLMCmd)
}

func testLLMProvider(cmd *cobra.Command, args []string) error {
	fmt.Println("🧪 Testing LLM provider connection...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	fmt.Printf("🤖 Testing generator (%s/%s)...\n", cfg.LLM.Generator.Provider, cfg.LLM.Generator.Model)
	generator, err := llm.NewGenerator(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	testPrompt := `A store sold 120 units of its best seller last month at 24.99 each,
up 15% over the prior month. In one or two sentences, suggest one sales
action the store owner should consider.`

	response, err := generator.Complete(ctx, testPrompt, map[string]any{
		"max_tokens": 200,
		"system":     "You are a concise e-commerce analytics expert.",
	})
	if err != nil {
		return fmt.Errorf("failed to generate response: %w", err)
	}

	fmt.Printf("   ✅ Generated response: %s\n", response)

	fmt.Println("\n🎉 LLM provider is working correctly!")
	return nil
}
