package extensions

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitwit/agentcommerce/negotiation"
	"github.com/vitwit/agentcommerce/types"
)

func checkoutKeys(t *testing.T, active negotiation.Set[ID]) map[string]interface{} {
	t.Helper()
	doc, err := Compose(active)
	require.NoError(t, err)
	checkout, ok := doc["checkout"].(map[string]interface{})
	require.True(t, ok)
	return checkout
}

func TestComposeBase(t *testing.T) {
	checkout := checkoutKeys(t, nil)
	for _, k := range []string{"id", "status", "currency", "buyer", "line_items", "totals"} {
		assert.Contains(t, checkout, k)
	}
	for _, k := range []string{"fulfillment", "discounts", "ap2", "subscription"} {
		assert.NotContains(t, checkout, k)
	}
	assert.Equal(t, "incomplete", checkout["status"])
}

func TestComposeBlocks(t *testing.T) {
	tests := []struct {
		id  ID
		key string
	}{
		{id: Fulfillment, key: "fulfillment"},
		{id: Discounts, key: "discounts"},
		{id: AP2Mandate, key: "ap2"},
		{id: Subscriptions, key: "subscription"},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			checkout := checkoutKeys(t, negotiation.NewSet(tt.id))
			assert.Contains(t, checkout, tt.key)
			assert.Len(t, checkout, 7)
		})
	}
}

func TestComposeAll(t *testing.T) {
	ids := make([]ID, 0, len(All()))
	for _, e := range All() {
		ids = append(ids, e.ID)
	}
	checkout := checkoutKeys(t, negotiation.NewSet(ids...))
	assert.Len(t, checkout, 10)
}

func TestComposeUnknown(t *testing.T) {
	_, err := Compose(negotiation.NewSet(Fulfillment, ID("loyalty")))
	var e *types.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, types.ErrUnknownExtension, e.Code)
}

func TestToggle(t *testing.T) {
	active := negotiation.NewSet(DefaultActive...)
	active = Toggle(active, Discounts)
	assert.True(t, active.Has(Discounts))
	active = Toggle(active, Fulfillment)
	assert.False(t, active.Has(Fulfillment))
	assert.Equal(t, []ID{Discounts}, active.Sorted())
}

func TestComposeJSON(t *testing.T) {
	data, err := ComposeJSON(negotiation.NewSet(Discounts))
	require.NoError(t, err)
	require.True(t, json.Valid(data))

	var doc struct {
		Checkout struct {
			Discounts struct {
				Codes []struct {
					Code   string `json:"code"`
					Amount int    `json:"amount"`
				} `json:"codes"`
			} `json:"discounts"`
		} `json:"checkout"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Checkout.Discounts.Codes, 1)
	assert.Equal(t, "SAVE10", doc.Checkout.Discounts.Codes[0].Code)
	assert.Equal(t, -1000, doc.Checkout.Discounts.Codes[0].Amount)
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(AP2Mandate)
	require.True(t, ok)
	assert.Equal(t, "dev.ucp.shopping.ap2_mandate", e.Name)
	_, ok = Lookup("loyalty")
	assert.False(t, ok)
}
