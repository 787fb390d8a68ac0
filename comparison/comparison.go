// Package comparison holds the UCP vs ACP feature table.
package comparison

import (
	"fmt"
	"strings"

	"github.com/vitwit/agentcommerce/types"
)

// Category groups related rows.
type Category string

const (
	CategoryAll            Category = "all"
	CategoryFoundation     Category = "foundation"
	CategoryArchitecture   Category = "architecture"
	CategoryCapabilities   Category = "capabilities"
	CategoryPayment        Category = "payment"
	CategoryImplementation Category = "implementation"
)

// CategoryInfo names a category for display.
type CategoryInfo struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
}

// Row compares one feature across both protocols.
type Row struct {
	Feature  string   `json:"feature"`
	UCP      string   `json:"ucp"`
	ACP      string   `json:"acp"`
	Category Category `json:"category"`
}

var categories = []CategoryInfo{
	{ID: CategoryAll, Name: "All Features"},
	{ID: CategoryFoundation, Name: "Foundation"},
	{ID: CategoryArchitecture, Name: "Architecture"},
	{ID: CategoryCapabilities, Name: "Capabilities"},
	{ID: CategoryPayment, Name: "Payment"},
	{ID: CategoryImplementation, Name: "Implementation"},
}

var rows = []Row{
	{Feature: "Founded By", UCP: "Shopify + Google", ACP: "OpenAI + Stripe", Category: CategoryFoundation},
	{Feature: "Launch Date", UCP: "January 2026", ACP: "September 2025", Category: CategoryFoundation},
	{Feature: "Primary Focus", UCP: "Comprehensive commerce protocol", ACP: "Checkout-first approach", Category: CategoryFoundation},
	{Feature: "License", UCP: "Open source", ACP: "Apache 2.0", Category: CategoryFoundation},

	{Feature: "Discovery", UCP: "/.well-known/ucp profile", ACP: "Product feed (CSV/JSON)", Category: CategoryArchitecture},
	{Feature: "Negotiation", UCP: "Dynamic capability intersection", ACP: "Implicit via endpoints", Category: CategoryArchitecture},
	{Feature: "Transport", UCP: "REST, MCP, A2A, Embedded", ACP: "REST, MCP (in dev)", Category: CategoryArchitecture},
	{Feature: "State Machine", UCP: "Explicit (4 states)", ACP: "Implicit (3 states)", Category: CategoryArchitecture},

	{Feature: "Checkout", UCP: "✅ Full lifecycle", ACP: "✅ Four-endpoint flow", Category: CategoryCapabilities},
	{Feature: "Identity Linking", UCP: "✅ OAuth 2.0", ACP: "⏳ Coming soon", Category: CategoryCapabilities},
	{Feature: "Order Management", UCP: "✅ Full tracking", ACP: "⏳ Webhook notifications", Category: CategoryCapabilities},
	{Feature: "Product Catalog", UCP: "⏳ Roadmap", ACP: "✅ Product Feed Spec", Category: CategoryCapabilities},
	{Feature: "Subscriptions", UCP: "⏳ Extension in dev", ACP: "⏳ Future", Category: CategoryCapabilities},

	{Feature: "Payment Method", UCP: "Tokenization handlers", ACP: "Shared Payment Tokens", Category: CategoryPayment},
	{Feature: "PSP Flexibility", UCP: "Any PSP via handlers", ACP: "Stripe (primary)", Category: CategoryPayment},
	{Feature: "Fraud Detection", UCP: "PSP-dependent", ACP: "Stripe Radar built-in", Category: CategoryPayment},

	{Feature: "Integration Complexity", UCP: "Moderate", ACP: "Low (4 endpoints)", Category: CategoryImplementation},
	{Feature: "Time to Market", UCP: "2-3 months", ACP: "Weeks", Category: CategoryImplementation},
	{Feature: "Merchant of Record", UCP: "✅ Always", ACP: "✅ Always", Category: CategoryImplementation},
}

// Categories lists the filter choices, "all" first.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// IsCategory reports whether c is a known filter.
func IsCategory(c Category) bool {
	for _, info := range categories {
		if info.ID == c {
			return true
		}
	}
	return false
}

// Rows returns the whole table.
func Rows() []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	return out
}

// Filter returns the rows of category c in table order. The empty category
// is treated as "all".
func Filter(c Category) ([]Row, error) {
	if c == "" || c == CategoryAll {
		return Rows(), nil
	}
	if !IsCategory(c) {
		return nil, types.Errorf(types.ErrUnknownCategory, "unknown category: %s", c)
	}
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out, nil
}

// Markdown renders rows as a GitHub style table.
func Markdown(rs []Row) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("| Feature | %s | %s |\n", strings.ToUpper(types.ProtocolUCP.String()), strings.ToUpper(types.ProtocolACP.String())))
	sb.WriteString("| --- | --- | --- |\n")
	for _, r := range rs {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", escape(r.Feature), escape(r.UCP), escape(r.ACP)))
	}
	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
