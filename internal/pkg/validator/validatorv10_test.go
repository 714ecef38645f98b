package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,username"`
	Password string `validate:"required,password"`
}

func TestValidateRegisterForm(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		in      registerForm
		wantKey string
	}{
		{
			name: "valid",
			in:   registerForm{Email: "a@x.com", Username: "alice", Password: "password1"},
		},
		{
			name:    "bad email",
			in:      registerForm{Email: "not-an-email", Username: "alice", Password: "password1"},
			wantKey: "email",
		},
		{
			name:    "missing username",
			in:      registerForm{Email: "a@x.com", Password: "password1"},
			wantKey: "username",
		},
		{
			name:    "uppercase username",
			in:      registerForm{Email: "a@x.com", Username: "Alice", Password: "password1"},
			wantKey: "username",
		},
		{
			name:    "short password",
			in:      registerForm{Email: "a@x.com", Username: "alice", Password: "pw1"},
			wantKey: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}

			var verr V10ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Values(), tt.wantKey)
		})
	}
}
