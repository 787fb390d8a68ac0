package scenario

import (
	"net/http"

	"github.com/vitwit/agentcommerce/types"
)

const (
	opCreateCheckout   = "create_checkout"
	opUpdateCheckout   = "update_checkout"
	opGetCheckout      = "get_checkout"
	opCompleteCheckout = "complete_checkout"
)

var scripts = map[types.ScenarioName]Scenario{
	types.ScenarioHappy: {
		Name:     types.ScenarioHappy,
		Title:    "Happy Path",
		Protocol: types.ProtocolUCP,
		Steps: []Step{
			{
				Status:      types.StatusIncomplete,
				Title:       "Incomplete",
				Description: "Missing required information like shipping address",
				WhatToDo:    "Collect missing information via API calls",
				Request: Request{
					Operation: opCreateCheckout,
					Method:    http.MethodPost,
					Path:      "/checkout-sessions",
					Body: `{
  "line_items": [{
    "item": { "id": "sku_999" },
    "quantity": 1
  }],
  "buyer": {
    "email": "jane@example.com"
  }
}`,
				},
				Response: `{
  "id": "chk_123",
  "status": "incomplete",
  "messages": [{
    "type": "error",
    "code": "missing_fulfillment_address",
    "severity": "recoverable"
  }]
}`,
			},
			{
				Status:      types.StatusReadyForComplete,
				Title:       "Ready for Complete",
				Description: "All information collected, ready to finalize",
				WhatToDo:    "Submit payment credentials and complete the checkout",
				Request: Request{
					Operation: opUpdateCheckout,
					Method:    http.MethodPut,
					Path:      "/checkout-sessions/chk_123",
					Body: `{
  "fulfillment": {
    "address": {
      "line1": "123 Main St",
      "city": "San Francisco",
      "state": "CA",
      "postal_code": "94102"
    }
  }
}`,
				},
				Response: `{
  "id": "chk_123",
  "status": "ready_for_complete",
  "totals": [
    { "type": "subtotal", "amount": 9900 },
    { "type": "shipping", "amount": 500 },
    { "type": "tax", "amount": 832 },
    { "type": "total", "amount": 11232 }
  ]
}`,
			},
			{
				Status:      types.StatusComplete,
				Title:       "Complete",
				Description: "Transaction finalized, order created",
				WhatToDo:    "Display confirmation to user",
				Request: Request{
					Operation: opCompleteCheckout,
					Method:    http.MethodPost,
					Path:      "/checkout-sessions/chk_123/complete",
					Body: `{
  "payment": {
    "credentials": [{
      "handler": "google_pay",
      "token": "tok_abc123"
    }]
  }
}`,
				},
				Response: `{
  "id": "chk_123",
  "status": "complete",
  "order": {
    "id": "order_789",
    "confirmation_number": "ABC-123-XYZ"
  },
  "links": [{
    "type": "order_status",
    "url": "https://merchant.com/orders/789"
  }]
}`,
			},
		},
	},
	types.ScenarioEscalation: {
		Name:     types.ScenarioEscalation,
		Title:    "Escalation Flow",
		Protocol: types.ProtocolUCP,
		Steps: []Step{
			{
				Status:      types.StatusIncomplete,
				Title:       "Incomplete",
				Description: "Starting checkout with basic information",
				WhatToDo:    "Create checkout and collect information",
				Request: Request{
					Operation: opCreateCheckout,
					Method:    http.MethodPost,
					Path:      "/checkout-sessions",
					Body: `{
  "line_items": [{
    "item": { "id": "wine_bottle_001" },
    "quantity": 1
  }],
  "buyer": {
    "email": "jane@example.com",
    "first_name": "Jane"
  }
}`,
				},
				Response: `{
  "id": "chk_456",
  "status": "incomplete",
  "line_items": [{
    "item": {
      "id": "wine_bottle_001",
      "title": "Premium Red Wine",
      "price": 4999
    },
    "quantity": 1
  }]
}`,
			},
			{
				Status:      types.StatusRequiresEscalation,
				Title:       "Requires Escalation",
				Description: "Age verification required - human input needed",
				WhatToDo:    "Present continue_url to user for verification",
				Request: Request{
					Operation: opUpdateCheckout,
					Method:    http.MethodPut,
					Path:      "/checkout-sessions/chk_456",
					Body: `{
  "fulfillment": {
    "address": {
      "line1": "123 Main St",
      "city": "San Francisco",
      "state": "CA",
      "postal_code": "94102"
    }
  }
}`,
				},
				Response: `{
  "id": "chk_456",
  "status": "requires_escalation",
  "messages": [{
    "type": "error",
    "code": "age_verification_required",
    "severity": "requires_buyer_input",
    "content": "Age verification required for alcohol purchase"
  }],
  "links": [{
    "type": "continue",
    "url": "https://merchant.com/checkout/chk_456?token=xyz"
  }]
}`,
			},
			{
				Status:      types.StatusReadyForComplete,
				Title:       "Ready for Complete",
				Description: "User completed verification, now ready to complete",
				WhatToDo:    "Complete the checkout",
				// polled after the buyer finishes age verification via continue_url
				Request: Request{
					Operation: opGetCheckout,
					Method:    http.MethodGet,
					Path:      "/checkout-sessions/chk_456",
				},
				Response: `{
  "id": "chk_456",
  "status": "ready_for_complete",
  "totals": [
    { "type": "subtotal", "amount": 4999 },
    { "type": "tax", "amount": 400 },
    { "type": "total", "amount": 5399 }
  ]
}`,
			},
			{
				Status:      types.StatusComplete,
				Title:       "Complete",
				Description: "Transaction finalized successfully",
				WhatToDo:    "Display confirmation",
				Request: Request{
					Operation: opCompleteCheckout,
					Method:    http.MethodPost,
					Path:      "/checkout-sessions/chk_456/complete",
					Body: `{
  "payment": {
    "credentials": [{
      "handler": "shop_pay",
      "token": "tok_xyz789"
    }]
  }
}`,
				},
				Response: `{
  "id": "chk_456",
  "status": "complete",
  "order": {
    "id": "order_321",
    "confirmation_number": "WINE-456-ABC"
  }
}`,
			},
		},
	},
	types.ScenarioACP:         acpCheckout,
	types.ScenarioSPT:         sptLifecycle,
	types.ScenarioPaymentFlow: paymentLifecycle,
}
