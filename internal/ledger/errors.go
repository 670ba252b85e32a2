package ledger

import "errors"

var (
	// ErrInvalidAmount means the amount was zero or negative.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrDailyLimitReached means the daily withdrawal count was already
	// exhausted for the current calendar day.
	ErrDailyLimitReached = errors.New("daily withdrawal limit reached")

	// ErrPerWithdrawalLimitExceeded means a single withdrawal asked for
	// more than the per-withdrawal cap.
	ErrPerWithdrawalLimitExceeded = errors.New("amount exceeds the per-withdrawal limit")

	// ErrInsufficientFunds means the balance cannot cover the requested
	// amount plus the withdrawal fee.
	ErrInsufficientFunds = errors.New("insufficient funds to cover amount plus fee")
)
