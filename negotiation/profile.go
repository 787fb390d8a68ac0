package negotiation

import (
	"github.com/vitwit/agentcommerce/catalog"
	"github.com/vitwit/agentcommerce/types"
	"github.com/vitwit/agentcommerce/utils"
)

// MerchantBaseURL is the REST endpoint advertised by the sample merchant.
const MerchantBaseURL = "https://merchant.example.com/api"

// MerchantProfile renders the discovery document a merchant would publish
// for sel. Capabilities and handlers follow catalog order.
func MerchantProfile(sel PartySelection) types.ProfileDocument {
	doc := baseProfile(sel)
	doc.UCP.Services = map[string]types.ServiceBinding{
		types.ShoppingService: {
			Version: types.ProtocolVersion,
			REST:    &types.RESTBinding{BaseURL: MerchantBaseURL},
		},
	}
	return doc
}

// AgentProfile renders the profile an agent sends with its requests.
// Agents advertise no services.
func AgentProfile(sel PartySelection) types.ProfileDocument {
	return baseProfile(sel)
}

// Profile dispatches on the selection's role.
func Profile(sel PartySelection) (types.ProfileDocument, error) {
	switch sel.Role {
	case types.RoleMerchant:
		return MerchantProfile(sel), nil
	case types.RoleAgent:
		return AgentProfile(sel), nil
	default:
		return types.ProfileDocument{}, types.Errorf(types.ErrUnknownRole, "unknown role: %s", sel.Role)
	}
}

// Digest fingerprints a profile document.
func Digest(doc types.ProfileDocument) (string, error) {
	return utils.DigestJSON(doc)
}

func baseProfile(sel PartySelection) types.ProfileDocument {
	caps := make([]types.CapabilityVersion, 0, sel.Capabilities.Len())
	for _, id := range orderCapabilityIDs(sel.Capabilities) {
		name := string(id)
		if c, ok := catalog.LookupCapability(id); ok {
			name = c.Name
		}
		caps = append(caps, types.CapabilityVersion{Name: name, Version: types.ProtocolVersion})
	}

	return types.ProfileDocument{
		UCP: types.ProfileMetadata{
			Version:      types.ProtocolVersion,
			Capabilities: caps,
			Payment: types.PaymentMetadata{
				Handlers: orderHandlerIDs(sel.Handlers),
			},
		},
	}
}
