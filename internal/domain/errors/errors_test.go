package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_UnauthorizedMatchesSentinel(t *testing.T) {
	err := errors.Wrap(NewAPIError(http.StatusUnauthorized, "Token expired"), "get profile")

	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.False(t, errors.Is(NewAPIError(http.StatusForbidden, ""), ErrUnauthorized))
}

func TestAPIError_MessageFallback(t *testing.T) {
	assert.Equal(t, "Phone already taken", NewAPIError(http.StatusConflict, " Phone already taken ").Message())
	assert.Equal(t, "Request failed: Internal Server Error", NewAPIError(http.StatusInternalServerError, "").Message())
	assert.Equal(t, "Request failed", NewAPIError(0, "").Message())
	assert.Equal(t, http.StatusBadGateway, NewAPIError(http.StatusInternalServerError, "").HTTPCode())
	assert.Equal(t, http.StatusNotFound, NewAPIError(http.StatusNotFound, "").HTTPCode())
}

func TestValidationError(t *testing.T) {
	var v ValidationError
	require.NoError(t, v.OrNil())

	v.Add("price", "must not be negative")
	v.Add("price", "ignored second message")
	v.Add("category", "is required")

	err := v.OrNil()
	require.Error(t, err)
	assert.Equal(t, "must not be negative", v.Fields["price"])
	assert.Equal(t, "validation failed: category: is required; price: must not be negative", err.Error())
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation", err: NewValidationError("password", "too short"), want: "Please fill in all fields correctly"},
		{name: "server message", err: errors.WithStack(NewAPIError(http.StatusBadRequest, "Invalid category")), want: "Invalid category"},
		{name: "api without message", err: NewAPIError(http.StatusInternalServerError, ""), want: "Failed to save"},
		{name: "app error", err: ErrNotFound, want: "Resource not found"},
		{name: "plain error", err: errors.New("dial tcp: refused"), want: "Failed to save"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err, "Failed to save"))
		})
	}
}
