// Package agentcommerce provides the interactive core of the commerce
// protocol guide: capability negotiation, checkout scenario replay, the
// integration cost calculator, the protocol comparison table and the
// extension composer.
package agentcommerce

import (
	"time"

	"github.com/vitwit/agentcommerce/calculator"
	"github.com/vitwit/agentcommerce/catalog"
	"github.com/vitwit/agentcommerce/comparison"
	"github.com/vitwit/agentcommerce/extensions"
	"github.com/vitwit/agentcommerce/logger"
	"github.com/vitwit/agentcommerce/metrics"
	"github.com/vitwit/agentcommerce/negotiation"
	"github.com/vitwit/agentcommerce/scenario"
	"github.com/vitwit/agentcommerce/stepper"
	"github.com/vitwit/agentcommerce/types"
)

// AgentCommerce is the main struct that provides all guide functionality.
// It holds no per-session state; negotiators and steppers it hands out are
// owned by the caller.
type AgentCommerce struct {
	config  *types.Config
	logger  logger.Logger
	metrics metrics.Recorder
}

// New creates a new AgentCommerce instance with the given configuration.
// The configuration is copied; later changes by the caller have no effect.
func New(config *types.Config, opts ...Option) *AgentCommerce {
	if config == nil {
		config = types.DefaultConfig()
	} else {
		config = config.Clone()
	}
	if config.DefaultScenario == "" {
		config.DefaultScenario = types.ScenarioHappy
	}

	a := &AgentCommerce{
		config:  config,
		logger:  logger.NoopLogger{},
		metrics: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewWithDefaults creates a new AgentCommerce instance with default configuration
func NewWithDefaults(opts ...Option) *AgentCommerce {
	return New(types.DefaultConfig(), opts...)
}

// Config returns a copy of the active configuration.
func (a *AgentCommerce) Config() types.Config {
	return *a.config.Clone()
}

func (a *AgentCommerce) Logger() logger.Logger {
	return a.logger
}

func (a *AgentCommerce) Metrics() metrics.Recorder {
	return a.metrics
}

// Capabilities lists the capability catalog.
func (a *AgentCommerce) Capabilities() []types.Capability {
	return catalog.Capabilities()
}

// PaymentHandlers lists the payment handler catalog.
func (a *AgentCommerce) PaymentHandlers() []types.PaymentHandler {
	return catalog.PaymentHandlers()
}

// DefaultSelection returns the configured starting selection for role.
func (a *AgentCommerce) DefaultSelection(role types.Role) (negotiation.PartySelection, error) {
	switch role {
	case types.RoleMerchant:
		return negotiation.SelectionFromConfig(role, a.config.Merchant), nil
	case types.RoleAgent:
		return negotiation.SelectionFromConfig(role, a.config.Agent), nil
	default:
		return negotiation.PartySelection{}, types.Errorf(types.ErrUnknownRole, "unknown role: %s", role)
	}
}

// NewNegotiator starts an interactive negotiation from the configured selections.
func (a *AgentCommerce) NewNegotiator() *negotiation.Negotiator {
	return negotiation.NewNegotiator(
		negotiation.SelectionFromConfig(types.RoleMerchant, a.config.Merchant),
		negotiation.SelectionFromConfig(types.RoleAgent, a.config.Agent),
	)
}

// Negotiate intersects the two selections and records the outcome.
func (a *AgentCommerce) Negotiate(merchant, agent negotiation.PartySelection) negotiation.Result {
	result := negotiation.Negotiate(merchant, agent)

	outcome := "proceed"
	if w := result.Warning(); w != types.WarningNone {
		outcome = string(w)
	}
	a.metrics.IncCounter(metrics.EventNegotiation, map[string]string{"outcome": outcome})
	a.logger.Debug("negotiated profiles", map[string]any{
		"capabilities": result.Capabilities.Len(),
		"handlers":     result.Handlers.Len(),
		"outcome":      outcome,
	})
	return result
}

// Profile renders the discovery document for sel together with its digest.
func (a *AgentCommerce) Profile(sel negotiation.PartySelection) (types.ProfileDocument, string, error) {
	doc, err := negotiation.Profile(sel)
	if err != nil {
		return types.ProfileDocument{}, "", err
	}
	digest, err := negotiation.Digest(doc)
	if err != nil {
		a.logger.Error("failed to digest profile", map[string]any{"role": sel.Role.String(), "error": err.Error()})
		return types.ProfileDocument{}, "", err
	}
	return doc, digest, nil
}

// NewStepper returns a stepper positioned on the configured default scenario.
func (a *AgentCommerce) NewStepper() *stepper.Controller {
	c, err := stepper.NewAt(a.config.DefaultScenario)
	if err != nil {
		a.logger.Warn("unknown default scenario, using first scenario", map[string]any{
			"scenario": a.config.DefaultScenario.String(),
		})
		return stepper.New()
	}
	return c
}

// Scenarios lists every scripted scenario.
func (a *AgentCommerce) Scenarios() []scenario.Scenario {
	return scenario.All()
}

// Step returns the view of step index of the named scenario, clamping the
// index the same way the stepper does.
func (a *AgentCommerce) Step(name types.ScenarioName, index int) (stepper.Snapshot, error) {
	c, err := stepper.NewAt(name)
	if err != nil {
		a.metrics.IncCounter(metrics.EventStepper, map[string]string{"outcome": "unknown_scenario"})
		return stepper.Snapshot{}, err
	}
	c.JumpTo(index)
	outcome := string(c.Current().Status)
	if outcome == "" {
		outcome = "flow_step"
	}
	a.metrics.IncCounter(metrics.EventStepper, map[string]string{"outcome": outcome})
	return c.Snapshot(), nil
}

// Calculate computes the integration cost for the given counts.
func (a *AgentCommerce) Calculate(platforms, merchants int64) calculator.Cost {
	start := time.Now()
	cost := calculator.Calculate(platforms, merchants)

	outcome := "defined"
	if !cost.Defined {
		outcome = "undefined"
	}
	a.metrics.IncCounter(metrics.EventCalculation, map[string]string{"outcome": outcome})
	a.metrics.ObserveLatency(metrics.EventCalculation, time.Since(start), nil)
	return cost
}

// Compare returns the comparison rows for category.
func (a *AgentCommerce) Compare(category comparison.Category) ([]comparison.Row, error) {
	rows, err := comparison.Filter(category)
	if err != nil {
		a.metrics.IncCounter(metrics.EventComparison, map[string]string{"outcome": "unknown_category"})
		return nil, err
	}
	a.metrics.IncCounter(metrics.EventComparison, map[string]string{"outcome": "ok"})
	return rows, nil
}

// Compose returns the checkout document with the given extensions applied.
func (a *AgentCommerce) Compose(ids []extensions.ID) (map[string]interface{}, error) {
	doc, err := extensions.Compose(negotiation.NewSet(ids...))
	if err != nil {
		a.metrics.IncCounter(metrics.EventComposition, map[string]string{"outcome": "unknown_extension"})
		return nil, err
	}
	a.metrics.IncCounter(metrics.EventComposition, map[string]string{"outcome": "ok"})
	return doc, nil
}

// Close flushes the logger.
func (a *AgentCommerce) Close() error {
	return a.logger.Sync()
}

// Version information
const (
	Version = "1.0.0"
)

// GetVersion returns version information
func GetVersion() map[string]interface{} {
	return map[string]interface{}{
		"library_version":  Version,
		"protocol_version": types.ProtocolVersion,
		"protocols": []string{
			types.ProtocolUCP.String(), types.ProtocolACP.String(),
		},
		"scenarios":        scenario.Names(),
		"capabilities":     catalog.CapabilityIDs(),
		"payment_handlers": catalog.HandlerIDs(),
	}
}
