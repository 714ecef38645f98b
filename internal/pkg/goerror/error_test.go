package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "server", err: NewServer(errors.New("boom")), want: http.StatusInternalServerError},
		{name: "unauthorized", err: NewBusiness("invalid email or password", CodeUnauthorized), want: http.StatusUnauthorized},
		{name: "conflict", err: NewBusiness("email already registered", CodeConflict), want: http.StatusConflict},
		{name: "invalid input", err: NewInvalidInput(errors.New("bad")), want: http.StatusUnprocessableEntity},
		{name: "invalid format", err: NewInvalidFormat(), want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gerr *Error
			assert.True(t, errors.As(tt.err, &gerr))
			assert.Equal(t, tt.want, gerr.StatusCode())
		})
	}
}

func TestErrorUnwrapAndMessage(t *testing.T) {
	underlying := errors.New("pg down")
	err := NewServer(underlying)

	var gerr *Error
	assert.True(t, errors.As(err, &gerr))
	assert.Equal(t, "Internal server error", gerr.Msg())
	assert.ErrorIs(t, err, underlying)
	assert.Equal(t, "pg down", gerr.Error())
}

func TestNewInvalidInputFields(t *testing.T) {
	err := NewInvalidInput(nil, "expired_date", "must be in the future")

	var gerr *Error
	assert.True(t, errors.As(err, &gerr))
	assert.Equal(t, map[string]string{"expired_date": "must be in the future"}, gerr.Fields())
	assert.Equal(t, TypeValidation, gerr.Type())
}
