package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a ledger transaction.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// Transaction is one immutable ledger event. Amount is the signed
// principal: positive for deposits, negative for withdrawals. The fee is
// tracked separately and is zero for deposits.
type Transaction struct {
	Kind      Kind
	Amount    decimal.Decimal
	Fee       decimal.Decimal
	Timestamp time.Time
}

// Principal returns the absolute principal amount.
func (t Transaction) Principal() decimal.Decimal {
	return t.Amount.Abs()
}
