package domain

import "errors"

// Sentinel errors for ledger operations. Handlers compare with errors.Is and
// surface the messages unchanged, so these must stay stable.
var (
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when registering with an email that
	// is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the
	// current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrStatementNotFound is returned when a statement lookup misses.
	ErrStatementNotFound = errors.New("statement not found")

	// ErrAuthenticationFailed is returned on a failed login. The message is
	// identical for a wrong email and a wrong password.
	ErrAuthenticationFailed = errors.New("incorrect email or password")

	// ErrInvalidToken is returned when a bearer token is missing or invalid.
	ErrInvalidToken = errors.New("invalid token")
)
