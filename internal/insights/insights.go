// Package insights turns the reporting queries into AI-generated
// narrative summaries, cached as markdown files so the dashboard can show
// the latest result without another API call.
package insights

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/vikas-techsprout/Trooba-poc-1/internal/database"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/report"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/sync"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/types"
)

const (
	KindSales     = "sales"
	KindInventory = "inventory"
)

type Builder struct {
	reporter  *report.Reporter
	ledger    *sync.Ledger
	generator types.Generator
	dir       string
	logger    *zap.Logger
}

func NewBuilder(db *database.DB, generator types.Generator, dir string, logger *zap.Logger) *Builder {
	return &Builder{
		reporter:  report.NewReporter(db),
		ledger:    sync.NewLedger(db),
		generator: generator,
		dir:       dir,
		logger:    logger,
	}
}

// Generate produces the narrative summary for the given kind. A missing
// snapshot or a generator failure yields a fallback card rather than an
// error: the insights surface degrades, it never breaks the page.
func (b *Builder) Generate(ctx context.Context, kind string) (string, error) {
	if kind != KindSales && kind != KindInventory {
		return "", fmt.Errorf("unknown insights kind: %s", kind)
	}

	if summary := b.ledger.Summary(); !summary.HasData {
		reason := "No store data available yet. Please run a sync first."
		if summary.Error != "" {
			reason = summary.Error
		}
		return fallbackCard(kind, reason), nil
	}

	prompt, err := b.buildPrompt(kind)
	if err != nil {
		b.logger.Warn("failed to prepare insights data", zap.String("kind", kind), zap.Error(err))
		return fallbackCard(kind, fmt.Sprintf("Error preparing store data: %v", err)), nil
	}

	text, err := b.generator.Complete(ctx, prompt, map[string]any{
		"max_tokens": 4000,
		"system":     systemPrompt,
	})
	if err != nil {
		b.logger.Warn("insights generation failed", zap.String("kind", kind), zap.Error(err))
		return fallbackCard(kind, fmt.Sprintf("The AI service encountered an error: %v", err)), nil
	}

	if err := b.save(kind, text); err != nil {
		b.logger.Warn("failed to cache insights", zap.String("kind", kind), zap.Error(err))
	}

	return text, nil
}

func (b *Builder) buildPrompt(kind string) (string, error) {
	topSelling, err := b.reporter.TopSellingProducts(20)
	if err != nil {
		return "", err
	}
	salesSummary := tabulateSellingProducts(topSelling)

	catalog, err := b.reporter.ProductCatalog(50)
	if err != nil {
		return "", err
	}
	productSummary := tabulateCatalog(catalog)

	if kind == KindSales {
		daily, err := b.reporter.DailyOrderPerformance(30)
		if err != nil {
			return "", err
		}
		top := topSelling
		if len(top) > 10 {
			top = top[:10]
		}
		return buildSalesPrompt(salesSummary, productSummary,
			tabulateDaily(daily), tabulateSellingProducts(top)), nil
	}

	inventory, err := b.reporter.InventorySummary()
	if err != nil {
		return "", err
	}
	performance, err := b.reporter.ProductSalesPerformance(30)
	if err != nil {
		return "", err
	}
	return buildInventoryPrompt(productSummary, salesSummary,
		tabulateInventory(inventory), tabulatePerformance(performance)), nil
}

// save writes a timestamped copy for the record plus a latest file for
// quick access.
func (b *Builder) save(kind, text string) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	stamped := filepath.Join(b.dir, fmt.Sprintf("shopify_%s_insights_%s.md", kind, timestamp))
	if err := os.WriteFile(stamped, []byte(text), 0o644); err != nil {
		return err
	}

	latest := filepath.Join(b.dir, fmt.Sprintf("latest_%s_insights.md", kind))
	return os.WriteFile(latest, []byte(text), 0o644)
}

// LoadCached returns the latest cached insights for the kind, if any.
func (b *Builder) LoadCached(kind string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(b.dir, fmt.Sprintf("latest_%s_insights.md", kind)))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func tabulate(headers []string, rows [][]string) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
	return sb.String()
}

func tabulateSellingProducts(products []report.SellingProduct) string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.Title, p.SKU, p.ProductType,
			fmt.Sprintf("%.2f", p.Price),
			fmt.Sprintf("%d", p.TotalQuantity),
			fmt.Sprintf("%.2f", p.TotalRevenue),
			fmt.Sprintf("%d", p.OrderCount),
			fmt.Sprintf("%.2f", p.AvgSellingPrice),
		})
	}
	return tabulate([]string{"title", "sku", "product_type", "price", "total_quantity_sold", "total_revenue", "order_count", "avg_selling_price"}, rows)
}

func tabulateCatalog(catalog []report.ProductOverview) string {
	rows := make([][]string, 0, len(catalog))
	for _, p := range catalog {
		rows = append(rows, []string{
			p.Title, p.SKU, p.ProductType,
			fmt.Sprintf("%.2f", p.Price),
			p.Status,
			fmt.Sprintf("%d", p.VariantCount),
			p.CreatedAt, p.UpdatedAt,
		})
	}
	return tabulate([]string{"title", "sku", "product_type", "price", "status", "variant_count", "created_at", "updated_at"}, rows)
}

func tabulateDaily(daily []report.DailyPerformance) string {
	rows := make([][]string, 0, len(daily))
	for _, d := range daily {
		rows = append(rows, []string{
			d.OrderDate,
			fmt.Sprintf("%d", d.DailyOrders),
			fmt.Sprintf("%.2f", d.DailyRevenue),
			fmt.Sprintf("%.2f", d.AvgOrderValue),
		})
	}
	return tabulate([]string{"order_date", "daily_orders", "daily_revenue", "avg_order_value"}, rows)
}

func tabulateInventory(inventory []report.InventorySummary) string {
	rows := make([][]string, 0, len(inventory))
	for _, i := range inventory {
		rows = append(rows, []string{
			i.ProductType,
			fmt.Sprintf("%d", i.TotalProducts),
			fmt.Sprintf("%d", i.TotalVariants),
			fmt.Sprintf("%d", i.ActiveProducts),
		})
	}
	return tabulate([]string{"product_type", "total_products", "total_variants", "active_products"}, rows)
}

func tabulatePerformance(performance []report.ProductPerformance) string {
	rows := make([][]string, 0, len(performance))
	for _, p := range performance {
		rows = append(rows, []string{
			p.Title, p.SKU, p.ProductType,
			fmt.Sprintf("%d", p.TotalSold),
			fmt.Sprintf("%.2f", p.TotalRevenue),
			fmt.Sprintf("%d", p.UniqueOrders),
			p.LastSaleDate,
		})
	}
	return tabulate([]string{"title", "sku", "product_type", "total_sold", "total_revenue", "unique_orders", "last_sale_date"}, rows)
}
