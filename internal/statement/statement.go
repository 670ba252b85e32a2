// Package statement renders the ledger statement for the interactive
// shell and exports it as CSV.
package statement

import (
	"fmt"
	"strings"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/money"
)

// Options control statement presentation.
type Options struct {
	CurrencyPrefix string
	TimeFormat     string
	Width          int
}

const (
	defaultTimeFormat = "02/01/2006 15:04:05"
	defaultWidth      = 42
	minWidth          = 20
)

// Render returns the statement as display text: one line per transaction
// in insertion order, then totals and the current balance. An empty
// statement renders a "no movements" body.
func Render(st ledger.Statement, opts Options) string {
	width := opts.Width
	if width < minWidth {
		width = defaultWidth
	}
	timeFormat := opts.TimeFormat
	if timeFormat == "" {
		timeFormat = defaultTimeFormat
	}

	rule := strings.Repeat("=", width)
	thin := strings.Repeat("-", width)

	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, center("STATEMENT", width))
	fmt.Fprintln(&b, rule)

	if len(st.Transactions) == 0 {
		fmt.Fprintln(&b, "No movements yet.")
		fmt.Fprintln(&b, rule)
		return b.String()
	}

	for _, t := range st.Transactions {
		ts := t.Timestamp.Format(timeFormat)
		switch t.Kind {
		case model.KindDeposit:
			fmt.Fprintf(&b, "[%s] %-10s +%s\n", ts, "DEPOSIT", money.Format(opts.CurrencyPrefix, t.Amount))
		case model.KindWithdrawal:
			fmt.Fprintf(&b, "[%s] %-10s -%s  (fee %s)\n", ts, "WITHDRAWAL", money.Format(opts.CurrencyPrefix, t.Principal()), money.Format(opts.CurrencyPrefix, t.Fee))
		}
	}

	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "Total deposits   : %s\n", money.Format(opts.CurrencyPrefix, st.TotalDeposited))
	fmt.Fprintf(&b, "Total withdrawals: %s\n", money.Format(opts.CurrencyPrefix, st.TotalWithdrawn))
	fmt.Fprintf(&b, "Fees charged     : %s\n", money.Format(opts.CurrencyPrefix, st.TotalFees))
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "CURRENT BALANCE  : %s\n", money.Format(opts.CurrencyPrefix, st.Balance))
	fmt.Fprintln(&b, rule)
	return b.String()
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", (width-len(s))/2) + s
}
