package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vitwit/agentcommerce/calculator"
	"github.com/vitwit/agentcommerce/catalog"
	"github.com/vitwit/agentcommerce/scenario"
	"github.com/vitwit/agentcommerce/types"
)

// SplitList splits a comma separated flag value, trimming blanks.
func SplitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ParseCapabilityIDs checks every id against the catalog.
func ParseCapabilityIDs(values []string) ([]types.CapabilityID, error) {
	ids := make([]types.CapabilityID, 0, len(values))
	for _, v := range SplitList(values) {
		id := types.CapabilityID(v)
		if !catalog.IsCapability(id) {
			return nil, &types.Error{
				Code:    types.ErrUnknownCapability,
				Message: fmt.Sprintf("unknown capability: %s", v),
				Data:    catalog.CapabilityIDs(),
			}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseHandlerIDs checks every id against the catalog.
func ParseHandlerIDs(values []string) ([]types.HandlerID, error) {
	ids := make([]types.HandlerID, 0, len(values))
	for _, v := range SplitList(values) {
		id := types.HandlerID(v)
		if !catalog.IsHandler(id) {
			return nil, &types.Error{
				Code:    types.ErrUnknownHandler,
				Message: fmt.Sprintf("unknown payment handler: %s", v),
				Data:    catalog.HandlerIDs(),
			}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseScenarioName validates a scenario name.
func ParseScenarioName(v string) (types.ScenarioName, error) {
	name := types.ScenarioName(strings.TrimSpace(v))
	if !scenario.IsKnown(name) {
		return "", &types.Error{
			Code:    types.ErrUnknownScenario,
			Message: fmt.Sprintf("unknown scenario: %s", v),
			Data:    scenario.Names(),
		}
	}
	return name, nil
}

// ParseRole validates a party role.
func ParseRole(v string) (types.Role, error) {
	role := types.Role(strings.TrimSpace(v))
	if !role.IsValid() {
		return "", &types.Error{
			Code:    types.ErrUnknownRole,
			Message: fmt.Sprintf("unknown role: %s", v),
		}
	}
	return role, nil
}

// ParseCount parses a calculator input in [0, calculator.MaxCount].
// The empty string yields def.
func ParseCount(v string, def int64) (int64, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, &types.Error{
			Code:    types.ErrInvalidInput,
			Message: fmt.Sprintf("invalid count %q: %v", v, err),
		}
	}
	if n < 0 {
		return 0, &types.Error{
			Code:    types.ErrInvalidInput,
			Message: fmt.Sprintf("count cannot be negative: %d", n),
		}
	}
	if !calculator.InRange(n) {
		return 0, &types.Error{
			Code:    types.ErrInvalidInput,
			Message: fmt.Sprintf("count exceeds %d: %d", calculator.MaxCount, n),
		}
	}
	return n, nil
}

// ParseIndex parses a step index. Out of range values are left for the
// stepper to clamp; only syntax is checked here.
func ParseIndex(v string) (int, error) {
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, &types.Error{
			Code:    types.ErrInvalidInput,
			Message: fmt.Sprintf("invalid step index %q", v),
		}
	}
	return i, nil
}
