package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitwit/agentcommerce/types"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitList([]string{"a, b", " ", "c,,"}))
	assert.Nil(t, SplitList(nil))
}

func TestParseCapabilityIDs(t *testing.T) {
	ids, err := ParseCapabilityIDs([]string{"checkout,fulfillment"})
	require.NoError(t, err)
	assert.Equal(t, []types.CapabilityID{types.CapabilityCheckout, types.CapabilityFulfillment}, ids)

	ids, err = ParseCapabilityIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = ParseCapabilityIDs([]string{"checkout", "teleport"})
	var e *types.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, types.ErrUnknownCapability, e.Code)
	assert.Contains(t, e.Data, types.CapabilityCheckout, "error lists the valid ids")
}

func TestParseHandlerIDs(t *testing.T) {
	ids, err := ParseHandlerIDs([]string{"stripe", "paypal"})
	require.NoError(t, err)
	assert.Equal(t, []types.HandlerID{types.HandlerStripe, types.HandlerPayPal}, ids)

	_, err = ParseHandlerIDs([]string{"cash"})
	assert.Equal(t, types.ErrUnknownHandler, errorCode(t, err))
}

func TestParseScenarioName(t *testing.T) {
	name, err := ParseScenarioName(" escalation ")
	require.NoError(t, err)
	assert.Equal(t, types.ScenarioEscalation, name)

	_, err = ParseScenarioName("refund")
	assert.Equal(t, types.ErrUnknownScenario, errorCode(t, err))
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("agent")
	require.NoError(t, err)
	assert.Equal(t, types.RoleAgent, role)

	_, err = ParseRole("bank")
	assert.Equal(t, types.ErrUnknownRole, errorCode(t, err))
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "", want: 7},
		{in: "0", want: 0},
		{in: "42", want: 42},
		{in: "-1", wantErr: true},
		{in: "ten", wantErr: true},
		{in: "3037000499", want: 3037000499},
		{in: "3037000500", wantErr: true},
		{in: "9223372036854775807", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseCount(tt.in, 7)
		if tt.wantErr {
			assert.Equal(t, types.ErrInvalidInput, errorCode(t, err), "input %q", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseIndex(t *testing.T) {
	i, err := ParseIndex("99")
	require.NoError(t, err)
	assert.Equal(t, 99, i)

	_, err = ParseIndex("two")
	assert.Equal(t, types.ErrInvalidInput, errorCode(t, err))
}
