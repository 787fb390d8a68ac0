package httpapi

import (
	"github.com/vitwit/agentcommerce/calculator"
	"github.com/vitwit/agentcommerce/comparison"
	"github.com/vitwit/agentcommerce/extensions"
	"github.com/vitwit/agentcommerce/scenario"
	"github.com/vitwit/agentcommerce/types"
)

// CatalogResponse lists everything a party may declare.
type CatalogResponse struct {
	Capabilities    []types.Capability     `json:"capabilities"`
	PaymentHandlers []types.PaymentHandler `json:"payment_handlers"`
	Extensions      []extensions.Extension `json:"extensions"`
}

// NegotiateRequest carries both selections.
type NegotiateRequest struct {
	Merchant types.SelectionConfig `json:"merchant"`
	Agent    types.SelectionConfig `json:"agent"`
}

// NegotiateResponse is the negotiation outcome plus the digests of both
// profile documents.
type NegotiateResponse struct {
	Capabilities   []types.Capability     `json:"capabilities"`
	Handlers       []types.PaymentHandler `json:"handlers"`
	CanProceed     bool                   `json:"can_proceed"`
	Warning        types.Warning          `json:"warning,omitempty"`
	Message        string                 `json:"message"`
	MerchantDigest string                 `json:"merchant_digest"`
	AgentDigest    string                 `json:"agent_digest"`
}

// ProfileResponse wraps a profile document with its digest.
type ProfileResponse struct {
	Role     types.Role            `json:"role"`
	Digest   string                `json:"digest"`
	Document types.ProfileDocument `json:"document"`
}

// ScenarioSummary describes a scenario without its payloads. Statuses lists
// the checkout states the scenario passes through; payment flows have none.
type ScenarioSummary struct {
	Name     types.ScenarioName `json:"name"`
	Title    string             `json:"title"`
	Protocol types.Protocol     `json:"protocol"`
	Steps    int                `json:"steps"`
	Statuses []types.Status     `json:"statuses"`
}

// StepResponse is one step of a scenario.
type StepResponse struct {
	Scenario types.ScenarioName `json:"scenario"`
	Index    int                `json:"index"`
	Total    int                `json:"total"`
	Terminal bool               `json:"terminal"`
	Step     scenario.Step      `json:"step"`
}

// CalculatorResponse adds the display string to the cost.
type CalculatorResponse struct {
	calculator.Cost
	Display string `json:"display"`
}

type ComparisonResponse struct {
	Category   comparison.Category       `json:"category"`
	Categories []comparison.CategoryInfo `json:"categories"`
	Rows       []comparison.Row          `json:"rows"`
}

type ComposeRequest struct {
	Extensions []extensions.ID `json:"extensions"`
}

// ErrorPayload describes an error response.
type ErrorPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error ErrorPayload `json:"error"`
}
