// Package stepper replays a scripted checkout scenario one step at a time.
//
// The controller does not enforce protocol transitions: the legal order is
// implied by the scenario script, and any step may be jumped to directly.
// Every mutator saturates at the bounds instead of failing.
package stepper

import (
	"github.com/vitwit/agentcommerce/scenario"
	"github.com/vitwit/agentcommerce/types"
)

// Snapshot is a read-only view of the controller state.
type Snapshot struct {
	Scenario types.ScenarioName `json:"scenario"`
	Title    string             `json:"title"`
	Index    int                `json:"index"`
	Total    int                `json:"total"`
	Step     scenario.Step      `json:"step"`

	// Terminal is set on a complete checkout and on the last step of a
	// payment flow.
	Terminal bool `json:"terminal"`
}

// Controller holds the active scenario and step index of one session.
// It is owned by a single UI instance and is not safe for concurrent use.
type Controller struct {
	active scenario.Scenario
	index  int
}

// New returns a controller positioned at the first step of the first scenario.
func New() *Controller {
	return &Controller{active: scenario.Default()}
}

// NewAt returns a controller positioned at the first step of name.
func NewAt(name types.ScenarioName) (*Controller, error) {
	c := New()
	if err := c.SelectScenario(name); err != nil {
		return nil, err
	}
	return c, nil
}

// SelectScenario switches scenario and rewinds to the first step, even when
// name is already active. Unknown names leave the state untouched.
func (c *Controller) SelectScenario(name types.ScenarioName) error {
	s, ok := scenario.Lookup(name)
	if !ok {
		return types.Errorf(types.ErrUnknownScenario, "unknown scenario: %s", name)
	}
	c.active = s
	c.index = 0
	return nil
}

// Next advances one step unless already at the last step.
func (c *Controller) Next() {
	if c.index < c.active.Last() {
		c.index++
	}
}

// Prev goes back one step unless already at the first step.
func (c *Controller) Prev() {
	if c.index > 0 {
		c.index--
	}
}

// Reset rewinds to the first step of the active scenario.
func (c *Controller) Reset() {
	c.index = 0
}

// JumpTo moves to index i, clamped to the active scenario.
func (c *Controller) JumpTo(i int) {
	c.index = c.active.Clamp(i)
}

func (c *Controller) Scenario() types.ScenarioName {
	return c.active.Name
}

func (c *Controller) Index() int {
	return c.index
}

// Len returns the number of steps in the active scenario.
func (c *Controller) Len() int {
	return c.active.Len()
}

func (c *Controller) AtStart() bool {
	return c.index == 0
}

func (c *Controller) AtEnd() bool {
	return c.index == c.active.Last()
}

// Current returns the step at the current index.
func (c *Controller) Current() scenario.Step {
	return c.active.Steps[c.index]
}

// Steps returns the steps of the active scenario.
func (c *Controller) Steps() []scenario.Step {
	out := make([]scenario.Step, len(c.active.Steps))
	copy(out, c.active.Steps)
	return out
}

// Snapshot captures the current view.
func (c *Controller) Snapshot() Snapshot {
	step := c.Current()
	return Snapshot{
		Scenario: c.active.Name,
		Title:    c.active.Title,
		Index:    c.index,
		Total:    c.active.Len(),
		Step:     step,
		Terminal: step.Status.IsTerminal() || c.AtEnd(),
	}
}
