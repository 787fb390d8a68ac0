// Package tui renders the checkout stepper as an interactive terminal page.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vitwit/agentcommerce/types"
)

// Palette shared by every status badge.
var (
	ColorIncomplete  = lipgloss.Color("#FFC107")
	ColorEscalation  = lipgloss.Color("#FF4458")
	ColorReady       = lipgloss.Color("#2196F3")
	ColorComplete    = lipgloss.Color("#8BC34A")
	ColorMuted       = lipgloss.Color("#64748B")
	ColorQuote       = lipgloss.Color("#10A37F")
	ColorPending     = lipgloss.Color("#FF9800")
	ColorForeground  = lipgloss.Color("#0A0E27")
	ColorHighlightBg = lipgloss.Color("#635BFF")
)

// Styles groups the lipgloss styles used by the stepper page.
type Styles struct {
	Title       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Badge       lipgloss.Style
	Heading     lipgloss.Style
	Muted       lipgloss.Style
	Quote       lipgloss.Style
	Code        lipgloss.Style
	DotDone     lipgloss.Style
	DotCurrent  lipgloss.Style
	DotPending  lipgloss.Style
}

// DefaultStyles returns the stepper's styles.
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).MarginBottom(1),
		TabActive:   lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(lipgloss.Color("#FFFFFF")).Background(ColorHighlightBg),
		TabInactive: lipgloss.NewStyle().Padding(0, 2).Foreground(ColorMuted),
		Badge:       lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF")),
		Heading:     lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(ColorMuted),
		Quote:       lipgloss.NewStyle().Italic(true).Foreground(ColorQuote),
		Code:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorMuted).Padding(0, 1),
		DotDone:     lipgloss.NewStyle().Foreground(ColorComplete),
		DotCurrent:  lipgloss.NewStyle().Bold(true).Foreground(ColorHighlightBg),
		DotPending:  lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// StatusColor returns the badge color for a checkout status.
func StatusColor(s types.Status) lipgloss.Color {
	switch s {
	case types.StatusIncomplete:
		return ColorIncomplete
	case types.StatusPendingFulfillment:
		return ColorPending
	case types.StatusRequiresEscalation:
		return ColorEscalation
	case types.StatusReadyForComplete, types.StatusReadyForPayment:
		return ColorReady
	case types.StatusComplete:
		return ColorComplete
	default:
		return ColorMuted
	}
}

// StatusBadge renders s as a colored pill.
func (s Styles) StatusBadge(status types.Status) string {
	return s.Badge.Background(StatusColor(status)).Render(status.String())
}

// ActorBadge labels a payment flow step with the parties involved.
func (s Styles) ActorBadge(actor string) string {
	return s.Badge.Background(ColorHighlightBg).Render(actor)
}
