// Package scenario stores the scripted checkout traces and payment flows
// replayed by the stepper.
package scenario

import (
	"github.com/vitwit/agentcommerce/types"
)

// Request is the sample call made at a step. Steps that run client-side
// code instead of an HTTP call leave Method and Path empty and set Language.
type Request struct {
	Operation string `json:"operation"`
	Method    string `json:"method,omitempty"`
	Path      string `json:"path,omitempty"`
	Language  string `json:"language,omitempty"`
	Body      string `json:"body,omitempty"`
}

// IsHTTP reports whether r is an API call rather than a code sample.
func (r Request) IsHTTP() bool {
	return r.Method != ""
}

// Step is one state of a scripted checkout or payment flow. Payment flow
// steps carry no checkout status.
type Step struct {
	Status      types.Status `json:"status,omitempty"`
	Title       string       `json:"title"`
	Actor       string       `json:"actor,omitempty"`
	Description string       `json:"description"`
	Prompt      string       `json:"prompt,omitempty"`
	WhatToDo    string       `json:"whatToDo,omitempty"`
	Request     Request      `json:"request"`
	Response    string       `json:"response,omitempty"`
	Note        string       `json:"note,omitempty"`
}

// Scenario is a named, ordered list of steps.
type Scenario struct {
	Name     types.ScenarioName `json:"name"`
	Title    string             `json:"title"`
	Protocol types.Protocol     `json:"protocol"`
	Steps    []Step             `json:"steps"`
}

// Len returns the number of steps.
func (s Scenario) Len() int {
	return len(s.Steps)
}

// Last returns the index of the final step.
func (s Scenario) Last() int {
	return len(s.Steps) - 1
}

// Clamp bounds i to the valid step indices of s.
func (s Scenario) Clamp(i int) int {
	if i > s.Last() {
		i = s.Last()
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (s Scenario) clone() Scenario {
	steps := make([]Step, len(s.Steps))
	copy(steps, s.Steps)
	s.Steps = steps
	return s
}

var order = []types.ScenarioName{
	types.ScenarioHappy,
	types.ScenarioEscalation,
	types.ScenarioACP,
	types.ScenarioSPT,
	types.ScenarioPaymentFlow,
}

// Names lists the scenarios in display order.
func Names() []types.ScenarioName {
	out := make([]types.ScenarioName, len(order))
	copy(out, order)
	return out
}

// Lookup returns a copy of the named scenario.
func Lookup(name types.ScenarioName) (Scenario, bool) {
	s, ok := scripts[name]
	if !ok {
		return Scenario{}, false
	}
	return s.clone(), true
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name types.ScenarioName) Scenario {
	s, ok := Lookup(name)
	if !ok {
		panic("scenario: unknown scenario " + string(name))
	}
	return s
}

// Default returns the first scenario.
func Default() Scenario {
	return MustLookup(order[0])
}

// All returns every scenario in display order.
func All() []Scenario {
	out := make([]Scenario, 0, len(order))
	for _, name := range order {
		out = append(out, MustLookup(name))
	}
	return out
}

// IsKnown reports whether name is a stored scenario.
func IsKnown(name types.ScenarioName) bool {
	_, ok := scripts[name]
	return ok
}
