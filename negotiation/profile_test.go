package negotiation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitwit/agentcommerce/types"
	"github.com/vitwit/agentcommerce/utils"
)

func TestMerchantProfile(t *testing.T) {
	m := sel(types.RoleMerchant,
		[]types.CapabilityID{types.CapabilityFulfillment, types.CapabilityCheckout},
		[]types.HandlerID{types.HandlerStripe, types.HandlerGooglePay})

	doc, err := Profile(m)
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"ucp": {
			"version": "2026-01-11",
			"services": {
				"dev.ucp.shopping": {
					"version": "2026-01-11",
					"rest": {"base_url": "https://merchant.example.com/api"}
				}
			},
			"capabilities": [
				{"name": "dev.ucp.shopping.checkout", "version": "2026-01-11"},
				{"name": "dev.ucp.shopping.fulfillment", "version": "2026-01-11"}
			],
			"payment": {"handlers": ["google_pay", "stripe"]}
		}
	}`, string(data))
}

func TestAgentProfileHasNoServices(t *testing.T) {
	doc, err := Profile(sel(types.RoleAgent, []types.CapabilityID{types.CapabilityCheckout}, nil))
	require.NoError(t, err)
	assert.Empty(t, doc.UCP.Services)
	assert.Len(t, doc.UCP.Capabilities, 1)
}

func TestProfileUnknownRole(t *testing.T) {
	_, err := Profile(sel("bank", nil, nil))
	assert.Error(t, err)
}

func TestDigestIsStable(t *testing.T) {
	a := sel(types.RoleMerchant,
		[]types.CapabilityID{types.CapabilityCheckout, types.CapabilityDiscounts},
		[]types.HandlerID{types.HandlerShopPay})
	b := sel(types.RoleMerchant,
		[]types.CapabilityID{types.CapabilityDiscounts, types.CapabilityCheckout},
		[]types.HandlerID{types.HandlerShopPay})

	da, err := Digest(MerchantProfile(a))
	require.NoError(t, err)
	db, err := Digest(MerchantProfile(b))
	require.NoError(t, err)
	assert.Equal(t, da, db, "insertion order must not change the digest")

	ok, err := utils.VerifyDigest(MerchantProfile(a), da)
	require.NoError(t, err)
	assert.True(t, ok)

	a.ToggleHandler(types.HandlerStripe)
	dc, err := Digest(MerchantProfile(a))
	require.NoError(t, err)
	assert.NotEqual(t, da, dc)
}
