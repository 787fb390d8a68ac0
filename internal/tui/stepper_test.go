package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitwit/agentcommerce/scenario"
	"github.com/vitwit/agentcommerce/stepper"
	"github.com/vitwit/agentcommerce/types"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tabs(n int) []tea.Msg {
	out := make([]tea.Msg, n)
	for i := range out {
		out[i] = tea.KeyMsg{Type: tea.KeyTab}
	}
	return out
}

func press(t *testing.T, m StepperModel, msgs ...tea.Msg) StepperModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(StepperModel)
		require.True(t, ok)
	}
	return m
}

func TestStepperKeys(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.Msg
		scenario types.ScenarioName
		index    int
	}{
		{name: "right advances", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}}, scenario: types.ScenarioHappy, index: 1},
		{name: "l advances", keys: []tea.Msg{runes("l"), runes("l")}, scenario: types.ScenarioHappy, index: 2},
		{name: "next saturates", keys: []tea.Msg{runes("l"), runes("l"), runes("l"), runes("l")}, scenario: types.ScenarioHappy, index: 2},
		{name: "left at start stays", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyLeft}}, scenario: types.ScenarioHappy, index: 0},
		{name: "h goes back", keys: []tea.Msg{runes("l"), runes("h")}, scenario: types.ScenarioHappy, index: 0},
		{name: "reset", keys: []tea.Msg{runes("l"), runes("l"), runes("r")}, scenario: types.ScenarioHappy, index: 0},
		{name: "jump", keys: []tea.Msg{runes("2")}, scenario: types.ScenarioHappy, index: 1},
		{name: "jump clamps", keys: []tea.Msg{runes("9")}, scenario: types.ScenarioHappy, index: 2},
		{name: "tab switches and rewinds", keys: []tea.Msg{runes("l"), tea.KeyMsg{Type: tea.KeyTab}}, scenario: types.ScenarioEscalation, index: 0},
		{name: "tab reaches acp", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}}, scenario: types.ScenarioACP, index: 0},
		{name: "tab wraps around", keys: tabs(5), scenario: types.ScenarioHappy, index: 0},
		{name: "jump in spt", keys: append(tabs(3), runes("5")), scenario: types.ScenarioSPT, index: 4},
		{name: "jump in escalation", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}, runes("4")}, scenario: types.ScenarioEscalation, index: 3},
		{name: "other keys ignored", keys: []tea.Msg{runes("x")}, scenario: types.ScenarioHappy, index: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, NewStepperModel(stepper.New()), tt.keys...)
			assert.Equal(t, tt.scenario, m.Controller().Scenario())
			assert.Equal(t, tt.index, m.Controller().Index())
		})
	}
}

func TestStepperQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := NewStepperModel(stepper.New()).Update(k)
		require.NotNil(t, cmd, "key %s", k)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestStepperView(t *testing.T) {
	m := NewStepperModel(stepper.New())
	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Happy Path")
	assert.Contains(t, view, "Escalation Flow")
	assert.Contains(t, view, "step 1 of 3")
	assert.Contains(t, view, "incomplete")
	assert.Contains(t, view, "/checkout-sessions")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("2"))
	view = m.View()
	assert.Contains(t, view, "step 2 of 4")
	assert.Contains(t, view, "requires_escalation")
}

func TestStepperViewPaymentFlow(t *testing.T) {
	m := press(t, NewStepperModel(stepper.New()), tea.WindowSizeMsg{Width: 120, Height: 40})
	m = press(t, m, tabs(2)...)

	view := m.View()
	assert.Contains(t, view, "ACP Checkout Flow")
	assert.Contains(t, view, "User → AI Agent")
	assert.Contains(t, view, "wireless keyboard under $50")
	assert.Contains(t, view, "searchProducts")
	assert.NotContains(t, view, "Response")
	assert.NotContains(t, view, "What to do")

	m = press(t, m, runes("2"))
	view = m.View()
	assert.Contains(t, view, "pending_fulfillment")
	assert.Contains(t, view, "POST /checkouts")
	assert.Contains(t, view, "Response")
}

func TestRequestText(t *testing.T) {
	assert.Equal(t, "GET /checkout-sessions/chk_456", RequestText(scenario.Request{Method: "GET", Path: "/checkout-sessions/chk_456"}))

	text := RequestText(scenario.Request{Method: "POST", Path: "/checkout-sessions", Body: "{}"})
	assert.Equal(t, []string{"POST /checkout-sessions", "{}"}, strings.Split(text, "\n"))

	code := scenario.Request{Operation: "tokenize", Language: "javascript", Body: "tokenize()"}
	assert.Equal(t, "tokenize()", RequestText(code))
}

func TestStatusColor(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range []types.Status{
		types.StatusIncomplete, types.StatusRequiresEscalation,
		types.StatusReadyForComplete, types.StatusComplete, types.StatusPendingFulfillment,
	} {
		c := string(StatusColor(s))
		assert.False(t, seen[c], "status %s shares a color", s)
		seen[c] = true
	}
	assert.Equal(t, ColorMuted, StatusColor("unknown"))
}
