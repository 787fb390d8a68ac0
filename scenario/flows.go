package scenario

import (
	"net/http"

	"github.com/vitwit/agentcommerce/types"
)

const (
	langJavaScript = "javascript"
	langJSON       = "json"
)

var acpCheckout = Scenario{
	Name:     types.ScenarioACP,
	Title:    "ACP Checkout Flow",
	Protocol: types.ProtocolACP,
	Steps: []Step{
		{
			Title:       "Discovery",
			Actor:       "User → AI Agent",
			Description: "User searches for products conversationally",
			Prompt:      "I need a wireless keyboard under $50",
			Request: Request{
				Operation: "search_products",
				Language:  langJavaScript,
				Body: `// AI Agent searches merchant catalogs
const products = await searchProducts({
  query: "wireless keyboard",
  max_price: 5000,
  currency: "usd"
});

// Present options to user
presentProducts(products);`,
			},
			Note: "Agent discovers inventory across merchants, compares options, and presents relevant choices.",
		},
		{
			Status:      types.StatusPendingFulfillment,
			Title:       "Create Checkout",
			Actor:       "AI Agent → Merchant",
			Description: "Agent creates checkout session with merchant",
			Request: Request{
				Operation: opCreateCheckout,
				Method:    http.MethodPost,
				Path:      "/checkouts",
				Body: `{
  "items": [
    {"sku": "kbd-wireless-001", "quantity": 1}
  ],
  "buyer": {
    "email": "jane@example.com",
    "first_name": "Jane"
  }
}`,
			},
			Response: `{
  "id": "checkout_abc123",
  "status": "pending_fulfillment",
  "line_items": [
    {"sku": "kbd-wireless-001", "quantity": 1, "total": 9800}
  ],
  "fulfillment_options": [
    {
      "id": "standard",
      "title": "Standard Shipping",
      "total": 500
    }
  ],
  "total": 10300
}`,
			Note: "Merchant responds with available options, calculated totals, and current state.",
		},
		{
			Status:      types.StatusReadyForPayment,
			Title:       "Update Checkout",
			Actor:       "AI Agent ↔ Merchant",
			Description: "Agent collects and submits fulfillment information",
			Request: Request{
				Operation: opUpdateCheckout,
				Method:    http.MethodPut,
				Path:      "/checkouts/checkout_abc123",
				Body: `{
  "fulfillment_address": {
    "name": "Jane Doe",
    "line_one": "456 Oak Ave",
    "city": "Los Angeles",
    "state": "CA",
    "postal_code": "90210"
  },
  "fulfillment_option_id": "express"
}`,
			},
			Response: `{
  "id": "checkout_abc123",
  "status": "ready_for_payment",
  "total": 15300,
  "tax": 1225,
  "shipping": 1000
}`,
			Note: "Merchant recalculates totals based on selected address and shipping option.",
		},
		{
			Status:      types.StatusComplete,
			Title:       "Complete Checkout",
			Actor:       "AI Agent → Payment Provider → Merchant",
			Description: "Agent creates a shared payment token and completes the purchase",
			Request: Request{
				Operation: opCompleteCheckout,
				Method:    http.MethodPost,
				Path:      "/checkouts/checkout_abc123/complete",
				Body: `{
  "payment_data": {
    "token": "spt_1A2B3C4D5E6F",
    "provider": "stripe"
  }
}`,
			},
			Response: `{
  "id": "checkout_abc123",
  "status": "complete",
  "order": {
    "id": "ord_xyz789",
    "order_number": "ORD-2025-001"
  }
}`,
			Note: "Merchant processes payment with the token and returns order confirmation.",
		},
	},
}

var sptLifecycle = Scenario{
	Name:     types.ScenarioSPT,
	Title:    "Shared Payment Token",
	Protocol: types.ProtocolACP,
	Steps: []Step{
		{
			Title:       "Creation",
			Actor:       "Agent creates SPT",
			Description: "Agent creates a time-limited, scoped payment token",
			Request: Request{
				Operation: "create_shared_payment_token",
				Language:  langJavaScript,
				Body: `const spt = await stripe.sharedPaymentTokens.create({
  payment_method: 'pm_card_visa',
  usage_limits: {
    currency: 'usd',
    max_amount: 5000,
    expires_at: Math.floor(Date.now() / 1000) + 900
  },
  seller_details: {
    network_id: 'merchant_123',
    external_id: 'checkout_abc'
  }
});

// Returns: spt_1A2B3C4D5E6F...`,
			},
			Note: "Token is scoped to a specific merchant and amount, and expires in 15 minutes.",
		},
		{
			Title:       "Transmission",
			Actor:       "Agent → Merchant",
			Description: "Agent sends the token to the merchant, never raw credentials",
			Request: Request{
				Operation: opCompleteCheckout,
				Method:    http.MethodPost,
				Path:      "/checkouts/checkout_abc/complete",
				Body: `{
  "payment_data": {
    "token": "spt_1A2B3C4D5E6F",
    "provider": "stripe"
  }
}`,
			},
			Note: "Merchant receives an opaque token and never sees actual card details.",
		},
		{
			Title:       "Validation",
			Actor:       "Merchant validates SPT",
			Description: "Merchant checks token constraints and fraud signals",
			Request: Request{
				Operation: "retrieve_shared_payment_token",
				Language:  langJavaScript,
				Body: `// Merchant retrieves SPT details
const tokenDetails = await stripe.sharedPaymentTokens.retrieve(
  'spt_1A2B3C4D5E6F'
);

// Check constraints
if (tokenDetails.usage_limits.max_amount < orderTotal) {
  throw new Error('Token amount insufficient');
}

// Evaluate fraud signals
const riskLevel = tokenDetails.risk_signals.likelihood;`,
			},
			Note: "Merchant can verify token validity and assess fraud risk before charging.",
		},
		{
			Title:       "Processing",
			Actor:       "Merchant → Stripe",
			Description: "Merchant creates a PaymentIntent with the token",
			Request: Request{
				Operation: "create_payment_intent",
				Language:  langJavaScript,
				Body: `const payment = await stripe.paymentIntents.create({
  amount: 5000,
  currency: 'usd',
  shared_payment_granted_token: 'spt_1A2B3C4D5E6F',
  confirm: true,
  metadata: {
    order_id: 'ord_xyz',
    agent: 'chatgpt'
  }
});

// Stripe validates SPT and processes payment`,
			},
			Note: "Stripe validates constraints and processes payment with existing infrastructure.",
		},
		{
			Title:       "Invalidation",
			Actor:       "Automatic cleanup",
			Description: "Token is automatically invalidated",
			Request: Request{
				Operation: "invalidate_shared_payment_token",
				Language:  langJavaScript,
				Body: `// Token is invalidated after:
// - Successful use
// - Expiration time reached
// - Manual revocation

// No cleanup required`,
			},
			Note: "The token is single-use and cleaned up automatically.",
		},
	},
}

var paymentLifecycle = Scenario{
	Name:     types.ScenarioPaymentFlow,
	Title:    "Payment Flow",
	Protocol: types.ProtocolUCP,
	Steps: []Step{
		{
			Title:       "Negotiation",
			Actor:       "Business → Platform",
			Description: "Merchant analyzes the cart and advertises available payment handlers",
			Request: Request{
				Operation: "advertise_handlers",
				Language:  langJSON,
				Body: `{
  "payment": {
    "handlers": [
      {
        "handler": "google_pay",
        "config": {
          "merchant_id": "BCR2DN4TR",
          "gateway": "stripe",
          "gateway_merchant_id": "acct_1234"
        }
      },
      {
        "handler": "shop_pay",
        "config": {
          "shop_id": "shop_123"
        }
      }
    ]
  }
}`,
			},
			Note: "Merchant determines which payment methods are available based on cart contents and buyer location.",
		},
		{
			Title:       "Acquisition",
			Actor:       "Platform ↔ Payment Provider",
			Description: "Platform executes handler logic client-side to tokenize payment credentials",
			Request: Request{
				Operation: "tokenize",
				Language:  langJavaScript,
				Body: `// Platform calls tokenizer
const token = await tokenize({
  handler: "google_pay",
  credentials: {
    // Raw payment data
  },
  binding: {
    checkout_id: "chk_123",
    merchant_id: "merchant_abc"
  }
})

// Returns opaque token
// { token: "tok_1A2B3C..." }`,
			},
			Note: "Platform never exposes raw payment data to merchant. It talks to the payment provider directly.",
		},
		{
			Title:       "Completion",
			Actor:       "Platform → Business",
			Description: "Platform submits the opaque token to the merchant for processing",
			Request: Request{
				Operation: opCompleteCheckout,
				Method:    http.MethodPost,
				Path:      "/checkout-sessions/chk_123/complete",
				Body: `{
  "payment": {
    "credentials": [
      {
        "handler": "google_pay",
        "instrument": "card",
        "token": "tok_1A2B3C"
      }
    ]
  }
}`,
			},
			Note: "Merchant detokenizes on its backend and processes payment via its chosen PSP.",
		},
	},
}
