package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Statement is a read-only aggregated view of the ledger: running totals
// plus the transactions in insertion order.
type Statement struct {
	Balance        decimal.Decimal
	TotalDeposited decimal.Decimal
	TotalWithdrawn decimal.Decimal
	TotalFees      decimal.Decimal
	Transactions   []model.Transaction
}

// Statement computes totals over the full transaction log. An empty log
// yields zero totals and an empty transaction list. Does not mutate any
// state.
func (e *Engine) Statement() Statement {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := Statement{
		Balance:        e.balance,
		TotalDeposited: decimal.Zero,
		TotalWithdrawn: decimal.Zero,
		TotalFees:      decimal.Zero,
	}
	for _, t := range e.log {
		switch t.Kind {
		case model.KindDeposit:
			st.TotalDeposited = st.TotalDeposited.Add(t.Amount)
		case model.KindWithdrawal:
			st.TotalWithdrawn = st.TotalWithdrawn.Add(t.Principal())
			st.TotalFees = st.TotalFees.Add(t.Fee)
		}
	}

	st.Transactions = make([]model.Transaction, len(e.log))
	copy(st.Transactions, e.log)
	return st
}
