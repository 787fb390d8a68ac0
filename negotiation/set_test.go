package negotiation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitwit/agentcommerce/types"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want []string
	}{
		{name: "both empty", a: nil, b: nil, want: []string{}},
		{name: "one empty", a: []string{"x", "y"}, b: nil, want: []string{}},
		{name: "disjoint", a: []string{"x"}, b: []string{"y"}, want: []string{}},
		{name: "overlap", a: []string{"x", "y", "z"}, b: []string{"y", "z", "w"}, want: []string{"y", "z"}},
		{name: "identical", a: []string{"x", "y"}, b: []string{"y", "x"}, want: []string{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := NewSet(tt.a...), NewSet(tt.b...)

			ab := Intersect(a, b)
			ba := Intersect(b, a)

			assert.Equal(t, tt.want, ab.Sorted())
			assert.True(t, ab.Equal(ba), "intersection must be commutative")
			assert.True(t, ab.SubsetOf(a))
			assert.True(t, ab.SubsetOf(b))
			assert.NotNil(t, ab)
		})
	}
}

func TestIntersectDoesNotAliasInputs(t *testing.T) {
	a := NewSet("x", "y")
	b := NewSet("x", "y")

	out := Intersect(a, b)
	delete(out, "x")

	assert.True(t, a.Has("x"))
	assert.True(t, b.Has("x"))
}

func TestIntersectNilSets(t *testing.T) {
	var a, b Set[types.HandlerID]
	out := IntersectHandlers(a, b)
	require.NotNil(t, out)
	assert.True(t, out.IsEmpty())
}

func TestToggle(t *testing.T) {
	s := NewSet(types.CapabilityCheckout, types.CapabilityDiscounts)

	added := Toggle(s, types.CapabilityFulfillment)
	assert.True(t, added.Has(types.CapabilityFulfillment))
	assert.False(t, s.Has(types.CapabilityFulfillment), "input must not change")

	removed := Toggle(s, types.CapabilityCheckout)
	assert.False(t, removed.Has(types.CapabilityCheckout))
	assert.True(t, s.Has(types.CapabilityCheckout), "input must not change")

	for _, id := range []types.CapabilityID{types.CapabilityCheckout, types.CapabilityIdentity} {
		assert.True(t, Toggle(Toggle(s, id), id).Equal(s), "toggling %s twice must restore the set", id)
	}
}

func TestToggleNilSet(t *testing.T) {
	var s Set[types.HandlerID]
	out := Toggle(s, types.HandlerStripe)
	assert.Equal(t, []types.HandlerID{types.HandlerStripe}, out.Sorted())
}

func TestSetJSON(t *testing.T) {
	s := NewSet(types.HandlerStripe, types.HandlerApplePay, types.HandlerStripe)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["apple_pay","stripe"]`, string(data))

	var back Set[types.HandlerID]
	require.NoError(t, json.Unmarshal([]byte(`["paypal","paypal","stripe"]`), &back))
	assert.Equal(t, 2, back.Len())
	assert.True(t, back.Has(types.HandlerPayPal))

	assert.Error(t, json.Unmarshal([]byte(`{"stripe":true}`), &back))
}

func TestSetEqualAndSubset(t *testing.T) {
	a := NewSet("x", "y")
	assert.True(t, a.Equal(NewSet("y", "x")))
	assert.False(t, a.Equal(NewSet("x")))
	assert.False(t, a.Equal(NewSet("x", "z")))

	assert.True(t, NewSet("x").SubsetOf(a))
	assert.True(t, NewSet[string]().SubsetOf(a))
	assert.False(t, NewSet("z").SubsetOf(a))
}
