package account

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrActivationInvalid  = errors.New("activation was not successful")
	ErrAlreadyActive      = errors.New("account is already active")
)
