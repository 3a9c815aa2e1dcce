package generate

import (
	"context"
	"strings"
	"time"

	"github.com/vikas-techsprout/Trooba-poc-1/internal/types"
)

type MockGenerator struct {
	model string
}

func NewMockGenerator(model string) *MockGenerator {
	return &MockGenerator{model: model}
}

func (g *MockGenerator) Complete(ctx context.Context, prompt string, opts map[string]any) (string, error) {
	// Simulate API delay
	time.Sleep(500 * time.Millisecond)

	// Generate contextual response based on the prompt content
	lower := strings.ToLower(prompt)

	if strings.Contains(lower, "inventory") {
		return g.generateInventoryInsights(), nil
	}

	if strings.Contains(lower, "sales") {
		return g.generateSalesInsights(), nil
	}

	return g.generateGenericInsights(), nil
}

func (g *MockGenerator) Model() string {
	return g.model + "-mock"
}

func (g *MockGenerator) generateSalesInsights() string {
	return `### **🔹 SALES PERFORMANCE**
**🛍️ Product: Sample Product (SKU: SAMPLE-001)**
**Recommendation:** Increase the price by 5% and bundle with a slower mover.

**Reasoning:**
• This product accounts for a large share of recent revenue.
• Order volume has been steady across the trailing 30 days.
• A small price increase is unlikely to reduce conversion materially.
• Bundling lifts average order value without extra acquisition cost.
• Repeat purchase behavior suggests strong customer affinity.

**📌 Simple Steps:**
1. Raise the listed price and monitor conversion for two weeks.
2. Create a bundle with a complementary low-velocity product.
3. Feature the bundle in the next email campaign.`
}

func (g *MockGenerator) generateInventoryInsights() string {
	return `### **🔹 INVENTORY INTELLIGENCE**
**📦 Product: Sample Product (SKU: SAMPLE-001)**
**Recommendation:** Reorder 50 units within the next two weeks.

**Reasoning:**
• Current sales velocity will exhaust remaining stock shortly.
• Lead time from the supplier leaves little buffer.
• A stockout on a top seller costs disproportionate revenue.
• Variant-level demand is concentrated in the default option.
• Carrying cost of the reorder is small relative to margin.

**📌 Simple Steps:**
1. Place the reorder with the usual supplier.
2. Set a low-stock alert at 15 units.
3. Deprioritize restocking the slowest variant.
4. Track sell-through weekly for a month.`
}

func (g *MockGenerator) generateGenericInsights() string {
	return `### **🔹 STORE OVERVIEW**
**Recommendation:** Sync recent store data before acting on these notes.

**Reasoning:**
• Insight quality depends on fresh sales and product data.
• The analysis window covers the trailing 90 days of orders.
• Refunded orders are excluded from revenue figures.

**📌 Simple Steps:**
1. Run a data sync.
2. Regenerate the insights afterwards.`
}

// Compile-time interface check
var _ types.Generator = (*MockGenerator)(nil)
