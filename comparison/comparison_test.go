package comparison

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitwit/agentcommerce/types"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		category Category
		want     int
	}{
		{category: "", want: 19},
		{category: CategoryAll, want: 19},
		{category: CategoryFoundation, want: 4},
		{category: CategoryArchitecture, want: 4},
		{category: CategoryCapabilities, want: 5},
		{category: CategoryPayment, want: 3},
		{category: CategoryImplementation, want: 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			rs, err := Filter(tt.category)
			require.NoError(t, err)
			assert.Len(t, rs, tt.want)
			if tt.category != "" && tt.category != CategoryAll {
				for _, r := range rs {
					assert.Equal(t, tt.category, r.Category)
				}
			}
		})
	}
}

func TestFilterUnknown(t *testing.T) {
	_, err := Filter("pricing")
	var e *types.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, types.ErrUnknownCategory, e.Code)
}

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, CategoryAll, cats[0].ID)
	assert.True(t, IsCategory(CategoryPayment))
	assert.False(t, IsCategory("pricing"))
}

func TestRowsIsACopy(t *testing.T) {
	rs := Rows()
	rs[0].Feature = "changed"
	assert.Equal(t, "Founded By", Rows()[0].Feature)
}

func TestMarkdown(t *testing.T) {
	md := Markdown([]Row{
		{Feature: "Transport", UCP: "REST | MCP", ACP: "REST", Category: CategoryArchitecture},
	})
	lines := strings.Split(strings.TrimSpace(md), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "| Feature | UCP | ACP |", lines[0])
	assert.Equal(t, `| Transport | REST \| MCP | REST |`, lines[2])
}
