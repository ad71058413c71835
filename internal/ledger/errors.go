package ledger

import "errors"

var (
	// ErrInvalidAmount means the typed amount is not a finite decimal number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNonPositive means the amount is zero or negative.
	ErrNonPositive = errors.New("amount must be positive")

	// ErrInsufficientFunds means a withdrawal exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
