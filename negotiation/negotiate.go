// Package negotiation computes which capabilities and payment handlers two
// parties have in common and whether a transaction can go ahead.
package negotiation

import (
	"sort"

	"github.com/vitwit/agentcommerce/catalog"
	"github.com/vitwit/agentcommerce/types"
)

// PartySelection is what one actor declares it supports.
type PartySelection struct {
	Role         types.Role              `json:"role"`
	Capabilities Set[types.CapabilityID] `json:"capabilities"`
	Handlers     Set[types.HandlerID]    `json:"handlers"`
}

// NewSelection builds a selection for role from plain id lists.
func NewSelection(role types.Role, capabilities []types.CapabilityID, handlers []types.HandlerID) PartySelection {
	return PartySelection{
		Role:         role,
		Capabilities: NewSet(capabilities...),
		Handlers:     NewSet(handlers...),
	}
}

// SelectionFromConfig converts the serialized form into a selection.
func SelectionFromConfig(role types.Role, cfg types.SelectionConfig) PartySelection {
	return NewSelection(role, cfg.Capabilities, cfg.Handlers)
}

// ToggleCapability flips membership of id.
func (p *PartySelection) ToggleCapability(id types.CapabilityID) {
	p.Capabilities = Toggle(p.Capabilities, id)
}

// ToggleHandler flips membership of id.
func (p *PartySelection) ToggleHandler(id types.HandlerID) {
	p.Handlers = Toggle(p.Handlers, id)
}

// Clone returns a selection that shares no state with p.
func (p PartySelection) Clone() PartySelection {
	return PartySelection{
		Role:         p.Role,
		Capabilities: p.Capabilities.Clone(),
		Handlers:     p.Handlers.Clone(),
	}
}

// Config returns the serialized form with ids in catalog order.
func (p PartySelection) Config() types.SelectionConfig {
	return types.SelectionConfig{
		Capabilities: orderCapabilityIDs(p.Capabilities),
		Handlers:     orderHandlerIDs(p.Handlers),
	}
}

// Result is the outcome of a negotiation. It is derived from the two
// selections on every call and never stored.
type Result struct {
	Capabilities Set[types.CapabilityID] `json:"capabilities"`
	Handlers     Set[types.HandlerID]    `json:"handlers"`
}

// Negotiate intersects both halves of the two selections. Argument order
// does not affect the result.
func Negotiate(merchant, agent PartySelection) Result {
	return Result{
		Capabilities: IntersectCapabilities(merchant.Capabilities, agent.Capabilities),
		Handlers:     IntersectHandlers(merchant.Handlers, agent.Handlers),
	}
}

// CanProceed reports whether both intersections are non-empty.
func CanProceed(r Result) bool {
	return !r.CapabilitiesEmpty() && !r.HandlersEmpty()
}

func (r Result) CapabilitiesEmpty() bool {
	return r.Capabilities.IsEmpty()
}

func (r Result) HandlersEmpty() bool {
	return r.Handlers.IsEmpty()
}

// Warning names the half of the negotiation that came up empty.
// Missing capabilities are reported before missing handlers.
func (r Result) Warning() types.Warning {
	switch {
	case r.CapabilitiesEmpty():
		return types.WarningNoCapabilities
	case r.HandlersEmpty():
		return types.WarningNoPaymentHandlers
	default:
		return types.WarningNone
	}
}

// CapabilityList returns the negotiated capabilities in catalog order.
func (r Result) CapabilityList() []types.Capability {
	ids := orderCapabilityIDs(r.Capabilities)
	out := make([]types.Capability, 0, len(ids))
	for _, id := range ids {
		c, ok := catalog.LookupCapability(id)
		if !ok {
			c = types.Capability{ID: id, Name: string(id), Label: string(id)}
		}
		out = append(out, c)
	}
	return out
}

// HandlerList returns the negotiated payment handlers in catalog order.
func (r Result) HandlerList() []types.PaymentHandler {
	ids := orderHandlerIDs(r.Handlers)
	out := make([]types.PaymentHandler, 0, len(ids))
	for _, id := range ids {
		h, ok := catalog.LookupHandler(id)
		if !ok {
			h = types.PaymentHandler{ID: id, Name: string(id)}
		}
		out = append(out, h)
	}
	return out
}

// Negotiator owns the merchant and agent selections of one interactive
// session. It is not safe for concurrent use.
type Negotiator struct {
	merchant PartySelection
	agent    PartySelection
}

// NewNegotiator starts a session from the given selections. The selections
// are copied.
func NewNegotiator(merchant, agent PartySelection) *Negotiator {
	merchant = merchant.Clone()
	agent = agent.Clone()
	merchant.Role = types.RoleMerchant
	agent.Role = types.RoleAgent
	return &Negotiator{merchant: merchant, agent: agent}
}

// NewDefaultNegotiator starts a session from the sample profiles.
func NewDefaultNegotiator() *Negotiator {
	cfg := types.DefaultConfig()
	return NewNegotiator(
		SelectionFromConfig(types.RoleMerchant, cfg.Merchant),
		SelectionFromConfig(types.RoleAgent, cfg.Agent),
	)
}

// Selection returns a copy of the selection held for role.
func (n *Negotiator) Selection(role types.Role) (PartySelection, error) {
	sel, err := n.party(role)
	if err != nil {
		return PartySelection{}, err
	}
	return sel.Clone(), nil
}

// ToggleCapability flips a capability for role. Ids outside the catalog are rejected.
func (n *Negotiator) ToggleCapability(role types.Role, id types.CapabilityID) error {
	sel, err := n.party(role)
	if err != nil {
		return err
	}
	if !catalog.IsCapability(id) {
		return types.Errorf(types.ErrUnknownCapability, "unknown capability: %s", id)
	}
	sel.ToggleCapability(id)
	return nil
}

// ToggleHandler flips a payment handler for role. Ids outside the catalog are rejected.
func (n *Negotiator) ToggleHandler(role types.Role, id types.HandlerID) error {
	sel, err := n.party(role)
	if err != nil {
		return err
	}
	if !catalog.IsHandler(id) {
		return types.Errorf(types.ErrUnknownHandler, "unknown payment handler: %s", id)
	}
	sel.ToggleHandler(id)
	return nil
}

// Result negotiates the current selections.
func (n *Negotiator) Result() Result {
	return Negotiate(n.merchant, n.agent)
}

func (n *Negotiator) party(role types.Role) (*PartySelection, error) {
	switch role {
	case types.RoleMerchant:
		return &n.merchant, nil
	case types.RoleAgent:
		return &n.agent, nil
	default:
		return nil, types.Errorf(types.ErrUnknownRole, "unknown role: %s", role)
	}
}

// orderCapabilityIDs sorts by catalog position; ids outside the catalog
// go last in lexical order.
func orderCapabilityIDs(s Set[types.CapabilityID]) []types.CapabilityID {
	ids := s.Sorted()
	sort.SliceStable(ids, func(i, j int) bool {
		return rank(catalog.CapabilityPosition(ids[i])) < rank(catalog.CapabilityPosition(ids[j]))
	})
	return ids
}

func orderHandlerIDs(s Set[types.HandlerID]) []types.HandlerID {
	ids := s.Sorted()
	sort.SliceStable(ids, func(i, j int) bool {
		return rank(catalog.HandlerPosition(ids[i])) < rank(catalog.HandlerPosition(ids[j]))
	})
	return ids
}

func rank(pos int) int {
	if pos < 0 {
		return int(^uint(0) >> 1)
	}
	return pos
}
