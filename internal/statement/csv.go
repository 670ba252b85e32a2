package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

// Header is the CSV header for a statement export.
const Header = "timestamp,kind,amount,fee"

const (
	numFields    = 4
	colTimestamp = 0
	colKind      = 1
	colAmount    = 2
	colFee       = 3
)

// WriteCSV writes the statement's transactions as CSV, header included.
// The export is a snapshot for the caller; it is never read back.
func WriteCSV(w io.Writer, st ledger.Statement) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, t := range st.Transactions {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row ([]string).
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colTimestamp] = t.Timestamp.Format(time.RFC3339)
	row[colKind] = string(t.Kind)
	row[colAmount] = t.Amount.StringFixed(2)
	row[colFee] = t.Fee.StringFixed(2)
	return row
}
