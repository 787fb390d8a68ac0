// Package extensions composes the checkout document with optional UCP
// extensions merged in.
package extensions

import (
	"github.com/vitwit/agentcommerce/negotiation"
	"github.com/vitwit/agentcommerce/types"
	"github.com/vitwit/agentcommerce/utils"
)

// ID names an extension.
type ID string

const (
	Fulfillment   ID = "fulfillment"
	Discounts     ID = "discounts"
	AP2Mandate    ID = "ap2"
	Subscriptions ID = "subscriptions"
)

// Extension describes what an extension adds to a checkout.
type Extension struct {
	ID          ID       `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	AddedFields []string `json:"addedFields"`
}

var registry = []Extension{
	{
		ID:          Fulfillment,
		Name:        "dev.ucp.shopping.fulfillment",
		Description: "Shipping, pickup, delivery windows",
		AddedFields: []string{"fulfillment.methods", "fulfillment.expectations"},
	},
	{
		ID:          Discounts,
		Name:        "dev.ucp.shopping.discounts",
		Description: "Promo codes, automatic discounts",
		AddedFields: []string{"discounts.codes", "discounts.automatic"},
	},
	{
		ID:          AP2Mandate,
		Name:        "dev.ucp.shopping.ap2_mandate",
		Description: "Cryptographic proof for autonomous agents",
		AddedFields: []string{"ap2.cart_mandate", "ap2.intent_mandate"},
	},
	{
		ID:          Subscriptions,
		Name:        "dev.ucp.shopping.subscriptions",
		Description: "Recurring billing",
		AddedFields: []string{"subscription.interval", "subscription.billing_policy"},
	},
}

// DefaultActive is the selection the composer starts with.
var DefaultActive = []ID{Fulfillment}

// All returns every extension in display order.
func All() []Extension {
	out := make([]Extension, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the extension named id.
func Lookup(id ID) (Extension, bool) {
	for _, e := range registry {
		if e.ID == id {
			return e, true
		}
	}
	return Extension{}, false
}

// Toggle flips id in the active set.
func Toggle(active negotiation.Set[ID], id ID) negotiation.Set[ID] {
	return negotiation.Toggle(active, id)
}

// Compose returns the checkout document with the blocks of every active
// extension merged into it. Unknown ids are rejected.
func Compose(active negotiation.Set[ID]) (map[string]interface{}, error) {
	for _, id := range active.Sorted() {
		if _, ok := Lookup(id); !ok {
			return nil, types.Errorf(types.ErrUnknownExtension, "unknown extension: %s", id)
		}
	}

	checkout := baseCheckout()
	for _, e := range registry {
		if !active.Has(e.ID) {
			continue
		}
		key, block := extensionBlock(e.ID)
		checkout[key] = block
	}
	return map[string]interface{}{"checkout": checkout}, nil
}

// ComposeJSON is Compose rendered as indented JSON.
func ComposeJSON(active negotiation.Set[ID]) ([]byte, error) {
	doc, err := Compose(active)
	if err != nil {
		return nil, err
	}
	return utils.NormalizeJSON(doc)
}

func baseCheckout() map[string]interface{} {
	return map[string]interface{}{
		"id":       "chk_123",
		"status":   string(types.StatusIncomplete),
		"currency": "USD",
		"buyer": map[string]interface{}{
			"email": "jane@example.com",
		},
		"line_items": []interface{}{"..."},
		"totals":     []interface{}{"..."},
	}
}

func extensionBlock(id ID) (string, interface{}) {
	switch id {
	case Fulfillment:
		return "fulfillment", map[string]interface{}{
			"methods": []interface{}{
				map[string]interface{}{"type": "shipping", "carriers": []string{"UPS", "FedEx"}},
			},
			"expectations": []interface{}{
				map[string]interface{}{"min_days": 3, "max_days": 5},
			},
		}
	case Discounts:
		return "discounts", map[string]interface{}{
			"codes": []interface{}{
				map[string]interface{}{"code": "SAVE10", "amount": -1000},
			},
			"automatic": []interface{}{},
		}
	case AP2Mandate:
		return "ap2", map[string]interface{}{
			"cart_mandate":   "eyJhbGc...",
			"intent_mandate": "eyJhbGc...",
		}
	case Subscriptions:
		return "subscription", map[string]interface{}{
			"interval":       "monthly",
			"billing_policy": map[string]interface{}{"interval_count": 1},
		}
	}
	return string(id), nil
}
