// Package ledger implements the transaction engine: a single in-memory
// account with deposits, fee-charging withdrawals, a daily withdrawal
// limit, and an append-only transaction log.
package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Withdrawal policy, fixed at build time.
var (
	WithdrawalFee    = decimal.RequireFromString("1.50")
	PerWithdrawalCap = decimal.RequireFromString("1000.00")
)

// DailyWithdrawalLimit is the maximum number of successful withdrawals
// per calendar day. Failed attempts do not consume a slot.
const DailyWithdrawalLimit = 3

// Engine owns the balance, the transaction log, and the daily withdrawal
// counter. Every operation runs as one critical section, so a Statement
// never observes a balance change without its matching log append.
type Engine struct {
	mu               sync.Mutex
	balance          decimal.Decimal
	log              []model.Transaction
	withdrawalsToday int

	// Reference day the withdrawal counter is tracked against.
	refYear  int
	refMonth time.Month
	refDay   int

	now func() time.Time
}

// New creates an Engine with zero balance, an empty log, and the
// reference day set to today.
func New() *Engine {
	e := &Engine{now: time.Now}
	e.refYear, e.refMonth, e.refDay = e.now().Date()
	return e
}

// rolloverIfNewDay resets the withdrawal counter when the local calendar
// date has moved past the stored reference day. Caller must hold e.mu.
func (e *Engine) rolloverIfNewDay() {
	y, m, d := e.now().Date()
	if y != e.refYear || m != e.refMonth || d != e.refDay {
		e.withdrawalsToday = 0
		e.refYear, e.refMonth, e.refDay = y, m, d
	}
}

// Deposit adds amount to the balance and records the transaction.
// Returns the new balance.
func (e *Engine) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	e.balance = e.balance.Add(amount)
	e.log = append(e.log, model.Transaction{
		Kind:      model.KindDeposit,
		Amount:    amount,
		Fee:       decimal.Zero,
		Timestamp: e.now(),
	})
	return e.balance, nil
}

// Withdraw deducts amount plus the fixed fee from the balance and records
// the transaction. Returns the new balance and the fee charged. Checks
// run in a fixed order: daily limit, amount validity, per-withdrawal cap,
// affordability. A failed withdrawal leaves all state untouched.
func (e *Engine) Withdraw(amount decimal.Decimal) (balance, fee decimal.Decimal, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.rolloverIfNewDay()

	switch {
	case e.withdrawalsToday >= DailyWithdrawalLimit:
		return decimal.Decimal{}, decimal.Decimal{}, ErrDailyLimitReached
	case amount.LessThanOrEqual(decimal.Zero):
		return decimal.Decimal{}, decimal.Decimal{}, ErrInvalidAmount
	case amount.GreaterThan(PerWithdrawalCap):
		return decimal.Decimal{}, decimal.Decimal{}, ErrPerWithdrawalLimitExceeded
	}

	cost := amount.Add(WithdrawalFee)
	if cost.GreaterThan(e.balance) {
		return decimal.Decimal{}, decimal.Decimal{}, ErrInsufficientFunds
	}

	e.balance = e.balance.Sub(cost)
	e.withdrawalsToday++
	e.log = append(e.log, model.Transaction{
		Kind:      model.KindWithdrawal,
		Amount:    amount.Neg(),
		Fee:       WithdrawalFee,
		Timestamp: e.now(),
	})
	return e.balance, WithdrawalFee, nil
}
