package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitwit/agentcommerce/types"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		kind string
	}{
		{name: "nil", err: nil, want: http.StatusOK, kind: ""},
		{name: "bad request", err: badRequest("invalid JSON"), want: http.StatusBadRequest, kind: kindBadRequest},
		{name: "invalid input", err: types.Errorf(types.ErrInvalidInput, "x"), want: http.StatusBadRequest, kind: types.ErrInvalidInput},
		{name: "unknown handler", err: types.Errorf(types.ErrUnknownHandler, "x"), want: http.StatusUnprocessableEntity, kind: types.ErrUnknownHandler},
		{name: "unknown scenario", err: types.Errorf(types.ErrUnknownScenario, "x"), want: http.StatusNotFound, kind: types.ErrUnknownScenario},
		{name: "wrapped", err: fmt.Errorf("outer: %w", types.Errorf(types.ErrUnknownRole, "x")), want: http.StatusNotFound, kind: types.ErrUnknownRole},
		{name: "deadline", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout, kind: "TIMEOUT"},
		{name: "canceled", err: context.Canceled, want: http.StatusRequestTimeout, kind: "CANCELED"},
		{name: "plain", err: errors.New("boom"), want: http.StatusInternalServerError, kind: "INTERNAL"},
		{name: "unmapped code", err: types.Errorf(types.ErrInvalidConfig, "x"), want: http.StatusInternalServerError, kind: types.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpStatus(tt.err))
			assert.Equal(t, tt.kind, errorKind(tt.err))
		})
	}
}
