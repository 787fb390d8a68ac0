package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/vitwit/agentcommerce/types"
)

const kindBadRequest = "BAD_REQUEST"

// kinder is satisfied by errors that carry a classification kind,
// such as *types.Error.
type kinder interface {
	Kind() string
}

// kindToStatus maps error classification kinds
// to HTTP status codes.
var kindToStatus = map[string]int{
	kindBadRequest:             http.StatusBadRequest,
	types.ErrInvalidInput:      http.StatusBadRequest,
	types.ErrUnknownCategory:   http.StatusBadRequest,
	types.ErrUnknownCapability: http.StatusUnprocessableEntity,
	types.ErrUnknownHandler:    http.StatusUnprocessableEntity,
	types.ErrUnknownExtension:  http.StatusUnprocessableEntity,
	types.ErrUnknownScenario:   http.StatusNotFound,
	types.ErrUnknownRole:       http.StatusNotFound,
	"TIMEOUT":                  http.StatusGatewayTimeout,
	"CANCELED":                 http.StatusRequestTimeout,
}

// errorKind returns the kind of an error.
func errorKind(err error) string {
	if err == nil {
		return ""
	}
	var k kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	default:
		return "INTERNAL"
	}
}

func httpStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if s, ok := kindToStatus[errorKind(err)]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// badRequest builds an error classified as BAD_REQUEST.
func badRequest(msg string) error {
	return &types.Error{Code: kindBadRequest, Message: msg}
}
