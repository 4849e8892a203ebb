package userservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNewUser(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		password string
		email    string
		wantErr  error
	}{
		{name: "valid without email", username: "mariano", password: "secret", wantErr: nil},
		{name: "valid with email", username: "mariano", password: "secret", email: "mariano@example.com", wantErr: nil},
		{name: "username exactly three characters", username: "abc", password: "secret", wantErr: nil},
		{name: "username too short", username: "ab", password: "secret", wantErr: ErrUsernameTooShort},
		{name: "empty username", username: "", password: "secret", wantErr: ErrUsernameTooShort},
		{name: "password too short", username: "mariano", password: "ab", wantErr: ErrPasswordTooShort},
		{name: "empty password", username: "mariano", password: "", wantErr: ErrPasswordTooShort},
		{name: "bad email", username: "mariano", password: "secret", email: "not-an-email", wantErr: ErrInvalidEmail},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateNewUser(tc.username, tc.password, tc.email)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
