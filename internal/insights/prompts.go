package insights

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are TROOBA, an expert Shopify e-commerce analytics assistant."

// buildSalesPrompt assembles the sales-insight prompt: the tabulated data
// sections followed by the flash-card response format the dashboard
// renders directly as markdown.
func buildSalesPrompt(salesSummary, productSummary, orderPerformance, topProducts string) string {
	var prompt strings.Builder

	prompt.WriteString("You are TROOBA, an expert e-commerce analytics assistant for Shopify stores.\n")
	prompt.WriteString("Your job is to process provided data (sales, products, orders, etc.) and generate flash-card–style insights.\n\n")

	prompt.WriteString("Sales Data:\n")
	prompt.WriteString(salesSummary)
	prompt.WriteString("\n\nProduct Data:\n")
	prompt.WriteString(productSummary)
	prompt.WriteString("\n\nOrder Performance:\n")
	prompt.WriteString(orderPerformance)
	prompt.WriteString("\n\nTop Products:\n")
	prompt.WriteString(topProducts)
	prompt.WriteString("\n\n")

	prompt.WriteString("Generate 5 SALES PERFORMANCE insight cards with the following format:\n\n")
	prompt.WriteString("### **🔹 SALES PERFORMANCE**\n")
	prompt.WriteString("**🛍️ Product: [Product Name] (SKU: [SKU Code])**\n")
	prompt.WriteString("**Recommendation:** [Clear action with specific numbers]\n")
	prompt.WriteString("**Reasoning:**\n")
	prompt.WriteString("• [Data-backed point about current performance]\n")
	prompt.WriteString("• [Specific opportunity with numbers]\n")
	prompt.WriteString("• [Marketing or pricing strategy with expected outcome]\n")
	prompt.WriteString("• [Revenue impact calculation]\n")
	prompt.WriteString("• [Customer behavior analysis]\n\n")
	prompt.WriteString("**📌 Simple Steps:**\n")
	prompt.WriteString("1. [Specific action for store management]\n")
	prompt.WriteString("2. [Product optimization suggestion]\n")
	prompt.WriteString("3. [Marketing or promotion implementation]\n\n")
	prompt.WriteString("Use sharp, business-friendly language with emojis and bold for product names. ")
	prompt.WriteString("Every recommendation must include specific pricing, percentages, or quantities based on the data provided.\n")

	return prompt.String()
}

// buildInventoryPrompt assembles the inventory-insight prompt.
func buildInventoryPrompt(productSummary, salesSummary, inventoryStatus, productPerformance string) string {
	var prompt strings.Builder

	prompt.WriteString("You are TROOBA, an expert inventory-management assistant for Shopify stores.\n")
	prompt.WriteString("Analyze the provided product and sales data to generate actionable insights.\n\n")

	prompt.WriteString("Product Data:\n")
	prompt.WriteString(productSummary)
	prompt.WriteString("\n\nSales Data:\n")
	prompt.WriteString(salesSummary)
	prompt.WriteString("\n\nInventory Status:\n")
	prompt.WriteString(inventoryStatus)
	prompt.WriteString("\n\nProduct Performance:\n")
	prompt.WriteString(productPerformance)
	prompt.WriteString("\n\n")

	prompt.WriteString("Generate 5 INVENTORY INTELLIGENCE insight cards with the following format:\n\n")
	prompt.WriteString("### **🔹 INVENTORY INTELLIGENCE**\n")
	prompt.WriteString("**📦 Product: [Product Name] (SKU: [SKU Code])**\n")
	prompt.WriteString("**Recommendation:** [Clear inventory action with specific numbers]\n")
	prompt.WriteString("**Reasoning:**\n")
	prompt.WriteString("• [Detailed stock analysis with numbers]\n")
	prompt.WriteString("• [Sales velocity and trend analysis]\n")
	prompt.WriteString("• [Financial calculation (revenue, costs)]\n")
	prompt.WriteString("• [Market opportunity assessment]\n")
	prompt.WriteString("• [Customer demand insights]\n\n")
	prompt.WriteString("**📌 Simple Steps:**\n")
	prompt.WriteString("1. [Specific inventory action]\n")
	prompt.WriteString("2. [Pricing or bundling strategy]\n")
	prompt.WriteString("3. [Marketing or display change]\n")
	prompt.WriteString("4. [Performance tracking metric]\n\n")
	prompt.WriteString("Focus on stock levels, sales velocity, product variants, and revenue optimization. ")
	prompt.WriteString("Every insight must have specific numbers and detailed reasoning behind the recommendation.\n")

	return prompt.String()
}

// fallbackCard is shown when data is missing or the generator failed, so
// the dashboard always has something to render.
func fallbackCard(kind, reason string) string {
	return fmt.Sprintf(`### **🔹 %s**
**Product: Insights Unavailable**

**Recommendation:** %s

**📌 Simple Steps:**
1. Run a data sync with the fetch command.
2. Verify the LLM provider configuration and API key.
3. Refresh the insights afterwards.
`, strings.ToUpper(kind), reason)
}
