package types

// Protocol identifies one of the two commerce protocols covered by the guide.
type Protocol string

const (
	ProtocolUCP Protocol = "ucp"
	ProtocolACP Protocol = "acp"
)

// ProtocolVersion is the UCP version advertised in sample profiles.
const ProtocolVersion = "2026-01-11"

// ShoppingService is the UCP service key merchants advertise.
const ShoppingService = "dev.ucp.shopping"

func (p Protocol) String() string {
	return string(p)
}

// DisplayName returns the expanded protocol name.
func (p Protocol) DisplayName() string {
	switch p {
	case ProtocolUCP:
		return "Universal Commerce Protocol"
	case ProtocolACP:
		return "Agentic Commerce Protocol"
	default:
		return string(p)
	}
}

// ProfileDocument is the body served from /.well-known/ucp.
type ProfileDocument struct {
	UCP ProfileMetadata `json:"ucp"`
}

// ProfileMetadata carries the negotiable parts of a profile.
type ProfileMetadata struct {
	Version      string                    `json:"version"`
	Services     map[string]ServiceBinding `json:"services,omitempty"`
	Capabilities []CapabilityVersion       `json:"capabilities"`
	Payment      PaymentMetadata           `json:"payment"`
}

// ServiceBinding describes how a service is reached. Only REST is modelled.
type ServiceBinding struct {
	Version string       `json:"version"`
	REST    *RESTBinding `json:"rest,omitempty"`
}

type RESTBinding struct {
	BaseURL string `json:"base_url"`
}

// CapabilityVersion pins a capability name to a protocol version.
type CapabilityVersion struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type PaymentMetadata struct {
	Handlers []HandlerID `json:"handlers"`
}
