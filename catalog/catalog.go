// Package catalog holds the fixed set of capabilities and payment handlers
// that parties can declare. The tables never change at runtime.
package catalog

import (
	"github.com/vitwit/agentcommerce/types"
)

var capabilities = []types.Capability{
	{ID: types.CapabilityCheckout, Name: "dev.ucp.shopping.checkout", Label: "Checkout Capability"},
	{ID: types.CapabilityFulfillment, Name: "dev.ucp.shopping.fulfillment", Label: "Fulfillment Extension"},
	{ID: types.CapabilityDiscounts, Name: "dev.ucp.shopping.discounts", Label: "Discounts Extension"},
	{ID: types.CapabilitySubscriptions, Name: "dev.ucp.shopping.subscriptions", Label: "Subscriptions Extension"},
	{ID: types.CapabilityIdentity, Name: "dev.ucp.identity_linking", Label: "Identity Linking"},
}

var paymentHandlers = []types.PaymentHandler{
	{ID: types.HandlerGooglePay, Name: "Google Pay"},
	{ID: types.HandlerShopPay, Name: "Shop Pay"},
	{ID: types.HandlerApplePay, Name: "Apple Pay"},
	{ID: types.HandlerStripe, Name: "Stripe"},
	{ID: types.HandlerPayPal, Name: "PayPal"},
}

var (
	capabilityIndex = make(map[types.CapabilityID]int, len(capabilities))
	handlerIndex    = make(map[types.HandlerID]int, len(paymentHandlers))
)

func init() {
	for i, c := range capabilities {
		capabilityIndex[c.ID] = i
	}
	for i, h := range paymentHandlers {
		handlerIndex[h.ID] = i
	}
}

// Capabilities returns every known capability in catalog order.
func Capabilities() []types.Capability {
	out := make([]types.Capability, len(capabilities))
	copy(out, capabilities)
	return out
}

// PaymentHandlers returns every known payment handler in catalog order.
func PaymentHandlers() []types.PaymentHandler {
	out := make([]types.PaymentHandler, len(paymentHandlers))
	copy(out, paymentHandlers)
	return out
}

// LookupCapability returns the catalog entry for id.
func LookupCapability(id types.CapabilityID) (types.Capability, bool) {
	i, ok := capabilityIndex[id]
	if !ok {
		return types.Capability{}, false
	}
	return capabilities[i], true
}

// LookupHandler returns the catalog entry for id.
func LookupHandler(id types.HandlerID) (types.PaymentHandler, bool) {
	i, ok := handlerIndex[id]
	if !ok {
		return types.PaymentHandler{}, false
	}
	return paymentHandlers[i], true
}

func IsCapability(id types.CapabilityID) bool {
	_, ok := capabilityIndex[id]
	return ok
}

func IsHandler(id types.HandlerID) bool {
	_, ok := handlerIndex[id]
	return ok
}

// CapabilityPosition returns the catalog position of id, or -1.
func CapabilityPosition(id types.CapabilityID) int {
	if i, ok := capabilityIndex[id]; ok {
		return i
	}
	return -1
}

// HandlerPosition returns the catalog position of id, or -1.
func HandlerPosition(id types.HandlerID) int {
	if i, ok := handlerIndex[id]; ok {
		return i
	}
	return -1
}

// CapabilityIDs returns the ids of every capability in catalog order.
func CapabilityIDs() []types.CapabilityID {
	ids := make([]types.CapabilityID, len(capabilities))
	for i, c := range capabilities {
		ids[i] = c.ID
	}
	return ids
}

// HandlerIDs returns the ids of every payment handler in catalog order.
func HandlerIDs() []types.HandlerID {
	ids := make([]types.HandlerID, len(paymentHandlers))
	for i, h := range paymentHandlers {
		ids[i] = h.ID
	}
	return ids
}
