package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vitwit/agentcommerce/scenario"
	"github.com/vitwit/agentcommerce/stepper"
)

type keyMap struct {
	Prev     key.Binding
	Next     key.Binding
	Reset    key.Binding
	Scenario key.Binding
	Jump     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Reset, k.Scenario, k.Jump, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
	Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Scenario: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch scenario")),
	Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump")),
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// StepperModel drives a stepper.Controller from key presses.
type StepperModel struct {
	ctrl   *stepper.Controller
	styles Styles
	help   help.Model
	width  int
}

// NewStepperModel wraps ctrl. The controller stays owned by the model.
func NewStepperModel(ctrl *stepper.Controller) StepperModel {
	return StepperModel{
		ctrl:   ctrl,
		styles: DefaultStyles(),
		help:   help.New(),
		width:  80,
	}
}

// Controller exposes the wrapped controller, mainly for tests.
func (m StepperModel) Controller() *stepper.Controller {
	return m.ctrl
}

func (m StepperModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m StepperModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Prev):
			m.ctrl.Prev()
		case key.Matches(msg, keys.Next):
			m.ctrl.Next()
		case key.Matches(msg, keys.Reset):
			m.ctrl.Reset()
		case key.Matches(msg, keys.Scenario):
			m.cycleScenario()
		case key.Matches(msg, keys.Jump):
			// keys are 1-based, indices 0-based
			m.ctrl.JumpTo(int(msg.String()[0] - '1'))
		}
	}
	return m, nil
}

func (m StepperModel) cycleScenario() {
	names := scenario.Names()
	for i, n := range names {
		if n == m.ctrl.Scenario() {
			_ = m.ctrl.SelectScenario(names[(i+1)%len(names)])
			return
		}
	}
}

// View renders the page.
func (m StepperModel) View() string {
	snap := m.ctrl.Snapshot()
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Checkout Flow Stepper"))
	sb.WriteString("\n")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderProgress())
	sb.WriteString("\n\n")

	step := snap.Step
	if step.Status != "" {
		sb.WriteString(m.styles.StatusBadge(step.Status))
	} else {
		sb.WriteString(m.styles.ActorBadge(step.Actor))
	}
	sb.WriteString(fmt.Sprintf("  step %d of %d\n\n", snap.Index+1, snap.Total))
	sb.WriteString(m.styles.Heading.Render(step.Title))
	if step.Status != "" && step.Actor != "" {
		sb.WriteString(m.styles.Muted.Render("  " + step.Actor))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(step.Description))
	sb.WriteString("\n\n")
	if step.Prompt != "" {
		sb.WriteString(m.styles.Quote.Render(`"` + step.Prompt + `"`))
		sb.WriteString("\n\n")
	}
	if step.WhatToDo != "" {
		sb.WriteString(m.styles.Heading.Render("What to do: "))
		sb.WriteString(step.WhatToDo)
		sb.WriteString("\n\n")
	}

	codeWidth := m.width/2 - 4
	if codeWidth < 30 {
		codeWidth = 30
	}
	label := "API Call"
	if !step.Request.IsHTTP() {
		label = "Code"
	}
	panes := []string{
		lipgloss.JoinVertical(lipgloss.Left, m.styles.Heading.Render(label),
			m.styles.Code.Width(codeWidth).Render(RequestText(step.Request))),
	}
	if step.Response != "" {
		panes = append(panes, " ", lipgloss.JoinVertical(lipgloss.Left, m.styles.Heading.Render("Response"),
			m.styles.Code.Width(codeWidth).Render(step.Response)))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panes...))
	sb.WriteString("\n\n")
	if step.Note != "" {
		sb.WriteString(m.styles.Muted.Render(step.Note))
		sb.WriteString("\n\n")
	}
	sb.WriteString(m.help.View(keys))
	return sb.String()
}

func (m StepperModel) renderTabs() string {
	all := scenario.All()
	tabs := make([]string, 0, len(all))
	for _, s := range all {
		style := m.styles.TabInactive
		if s.Name == m.ctrl.Scenario() {
			style = m.styles.TabActive
		}
		tabs = append(tabs, style.Render(s.Title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m StepperModel) renderProgress() string {
	steps := m.ctrl.Steps()
	parts := make([]string, 0, len(steps))
	for i, s := range steps {
		var dot string
		switch {
		case i < m.ctrl.Index():
			dot = m.styles.DotDone.Render("●")
		case i == m.ctrl.Index():
			dot = m.styles.DotCurrent.Render("◉")
		default:
			dot = m.styles.DotPending.Render("○")
		}
		parts = append(parts, dot+" "+s.Title)
	}
	return strings.Join(parts, m.styles.Muted.Render(" ─ "))
}

// RequestText formats a sample request the way it would go over the wire.
// Code samples are returned as is.
func RequestText(r scenario.Request) string {
	if !r.IsHTTP() {
		return r.Body
	}
	line := r.Method + " " + r.Path
	if r.Body == "" {
		return line
	}
	return line + "\n" + r.Body
}

// Run starts the interactive program and blocks until the user quits.
func Run(ctrl *stepper.Controller) error {
	_, err := tea.NewProgram(NewStepperModel(ctrl), tea.WithAltScreen()).Run()
	return err
}
