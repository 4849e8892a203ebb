package userservice

import (
	"errors"
	"regexp"
)

const minCredentialLength = 3

var (
	EmailRX = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	ErrUsernameTooShort = errors.New("username must be at least 3 characters long")
	ErrPasswordTooShort = errors.New("password must be at least 3 characters long")
	ErrInvalidEmail     = errors.New("invalid email address")
)

func validateNewUser(username, password, email string) error {
	if len(username) < minCredentialLength {
		return ErrUsernameTooShort
	}

	if len(password) < minCredentialLength {
		return ErrPasswordTooShort
	}

	// email is optional, it is only used for the welcome mail
	if email != "" && !EmailRX.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}
