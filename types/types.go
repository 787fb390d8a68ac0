package types

import (
	"fmt"
	"slices"
	"time"
)

// CapabilityID is the stable key of a protocol capability (e.g. "checkout")
type CapabilityID string

// HandlerID is the stable key of a payment handler (e.g. "google_pay")
type HandlerID string

func (c CapabilityID) String() string {
	return string(c)
}

func (h HandlerID) String() string {
	return string(h)
}

const (
	CapabilityCheckout      CapabilityID = "checkout"
	CapabilityFulfillment   CapabilityID = "fulfillment"
	CapabilityDiscounts     CapabilityID = "discounts"
	CapabilitySubscriptions CapabilityID = "subscriptions"
	CapabilityIdentity      CapabilityID = "identity"
)

const (
	HandlerGooglePay HandlerID = "google_pay"
	HandlerShopPay   HandlerID = "shop_pay"
	HandlerApplePay  HandlerID = "apple_pay"
	HandlerStripe    HandlerID = "stripe"
	HandlerPayPal    HandlerID = "paypal"
)

// Capability is a named, independently versioned unit of protocol functionality.
type Capability struct {
	ID CapabilityID `json:"id"`

	// Fully qualified protocol name, e.g. "dev.ucp.shopping.checkout".
	Name string `json:"name"`

	// Human readable label shown next to the checkbox.
	Label string `json:"label"`
}

// PaymentHandler is a mechanism for acquiring and tokenizing a payment credential.
type PaymentHandler struct {
	ID   HandlerID `json:"id"`
	Name string    `json:"name"`
}

// Role names the party that owns a selection.
type Role string

const (
	RoleMerchant Role = "merchant"
	RoleAgent    Role = "agent"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleMerchant || r == RoleAgent
}

// Status is a checkout lifecycle state.
type Status string

const (
	StatusIncomplete         Status = "incomplete"
	StatusRequiresEscalation Status = "requires_escalation"
	StatusReadyForComplete   Status = "ready_for_complete"
	StatusComplete           Status = "complete"

	// ACP checkout states
	StatusPendingFulfillment Status = "pending_fulfillment"
	StatusReadyForPayment    Status = "ready_for_payment"
)

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition follows s.
func (s Status) IsTerminal() bool {
	return s == StatusComplete
}

// IsValid reports whether s belongs to the checkout status enumeration.
func (s Status) IsValid() bool {
	switch s {
	case StatusIncomplete, StatusRequiresEscalation, StatusReadyForComplete, StatusComplete,
		StatusPendingFulfillment, StatusReadyForPayment:
		return true
	}
	return false
}

// ScenarioName identifies a scripted checkout scenario or payment flow.
type ScenarioName string

const (
	ScenarioHappy       ScenarioName = "happy"
	ScenarioEscalation  ScenarioName = "escalation"
	ScenarioACP         ScenarioName = "acp"
	ScenarioSPT         ScenarioName = "spt"
	ScenarioPaymentFlow ScenarioName = "payment_flow"
)

func (n ScenarioName) String() string {
	return string(n)
}

// Warning is the domain level signal produced when a negotiation cannot proceed.
// It is a value, never an error.
type Warning string

const (
	WarningNone                  Warning = ""
	WarningNoCapabilities        Warning = "no_compatible_capabilities"
	WarningNoPaymentHandlers     Warning = "no_compatible_payment_handlers"
	MessageTransactionCanProceed         = "Transaction can proceed"
)

// Message returns the text shown to the user for the warning.
func (w Warning) Message() string {
	switch w {
	case WarningNoCapabilities:
		return "No compatible capabilities found"
	case WarningNoPaymentHandlers:
		return "No compatible payment methods found"
	default:
		return MessageTransactionCanProceed
	}
}

// SelectionConfig is the serialized form of a party selection.
type SelectionConfig struct {
	Capabilities []CapabilityID `json:"capabilities" yaml:"capabilities" validate:"omitempty,unique,dive,capability"`
	Handlers     []HandlerID    `json:"handlers" yaml:"handlers" validate:"omitempty,unique,dive,handler"`
}

// Clone returns a copy that shares no slices with s.
func (s SelectionConfig) Clone() SelectionConfig {
	return SelectionConfig{
		Capabilities: slices.Clone(s.Capabilities),
		Handlers:     slices.Clone(s.Handlers),
	}
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr              string        `json:"addr" yaml:"addr" validate:"required"`
	ReadTimeout       time.Duration `json:"readTimeout" yaml:"read_timeout" validate:"gte=0"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"read_header_timeout" validate:"gte=0"`
	WriteTimeout      time.Duration `json:"writeTimeout" yaml:"write_timeout" validate:"gte=0"`
	IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout   time.Duration `json:"shutdownTimeout" yaml:"shutdown_timeout" validate:"gte=0"`
}

// Config contains global configuration for the agentcommerce library and tools
type Config struct {
	LogLevel        string          `json:"logLevel,omitempty" yaml:"log_level" validate:"omitempty,loglevel"`
	LogFormat       string          `json:"logFormat,omitempty" yaml:"log_format" validate:"omitempty,oneof=json console"`
	EnableMetrics   bool            `json:"enableMetrics,omitempty" yaml:"enable_metrics"`
	DefaultScenario ScenarioName    `json:"defaultScenario,omitempty" yaml:"default_scenario" validate:"omitempty,scenario"`
	Merchant        SelectionConfig `json:"merchant" yaml:"merchant"`
	Agent           SelectionConfig `json:"agent" yaml:"agent"`
	Server          ServerConfig    `json:"server" yaml:"server"`
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Merchant = c.Merchant.Clone()
	out.Agent = c.Agent.Clone()
	return &out
}

// DefaultConfig returns the configuration used when no file is given.
// The selections match the sample profiles of the negotiation demo.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "json",
		EnableMetrics:   false,
		DefaultScenario: ScenarioHappy,
		Merchant: SelectionConfig{
			Capabilities: []CapabilityID{CapabilityCheckout, CapabilityFulfillment, CapabilityDiscounts},
			Handlers:     []HandlerID{HandlerGooglePay, HandlerShopPay, HandlerStripe},
		},
		Agent: SelectionConfig{
			Capabilities: []CapabilityID{CapabilityCheckout, CapabilityFulfillment},
			Handlers:     []HandlerID{HandlerGooglePay, HandlerApplePay, HandlerPayPal},
		},
		Server: ServerConfig{
			Addr:              ":8080",
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 3 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
	}
}

// Error is returned at input boundaries (config files, flags, request bodies).
// The engines themselves never fail.
type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// Kind exposes the code for transports that classify errors.
func (e *Error) Kind() string {
	return e.Code
}

// Errorf builds an *Error with a formatted message.
func Errorf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Common error codes
const (
	ErrInvalidConfig     = "INVALID_CONFIG"
	ErrInvalidInput      = "INVALID_INPUT"
	ErrUnknownCapability = "UNKNOWN_CAPABILITY"
	ErrUnknownHandler    = "UNKNOWN_HANDLER"
	ErrUnknownScenario   = "UNKNOWN_SCENARIO"
	ErrUnknownCategory   = "UNKNOWN_CATEGORY"
	ErrUnknownExtension  = "UNKNOWN_EXTENSION"
	ErrUnknownRole       = "UNKNOWN_ROLE"
)
