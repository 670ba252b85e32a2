package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/config"
)

// script runs a session against a scripted input and returns the transcript.
func script(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := runSession(strings.NewReader(input), &out, config.Default())
	require.NoError(t, err)
	return out.String()
}

func TestSession_DepositWithdrawStatement(t *testing.T) {
	out := script(t, "1\n100\n2\n50\n3\n0\n")

	assert.Contains(t, out, "Deposited R$ 100.00 | Balance: R$ 100.00")
	assert.Contains(t, out, "Withdrew R$ 50.00 (fee R$ 1.50). Balance: R$ 48.50")
	assert.Contains(t, out, "CURRENT BALANCE  : R$ 48.50")
	assert.Contains(t, out, "Goodbye.")
}

func TestSession_CommaDecimalSeparator(t *testing.T) {
	out := script(t, "1\n10,50\n0\n")

	assert.Contains(t, out, "Deposited R$ 10.50")
}

func TestSession_UnparseableAmount(t *testing.T) {
	out := script(t, "1\nabc\n3\n0\n")

	assert.Contains(t, out, "Invalid amount.")
	assert.Contains(t, out, "No movements yet.", "parse failure never reaches the engine")
}

func TestSession_NonPositiveAmounts(t *testing.T) {
	out := script(t, "1\n-5\n1\n0\n0\n")

	assert.Equal(t, 2, strings.Count(out, "Amount must be greater than zero."))
}

func TestSession_WithdrawalErrors(t *testing.T) {
	// Balance 10.00: withdrawing 10.00 cannot cover the fee.
	out := script(t, "1\n10\n2\n10\n0\n")
	assert.Contains(t, out, "Insufficient funds (must cover amount plus R$ 1.50 fee).")

	// Balance 5000.00: 1500.00 exceeds the per-withdrawal limit.
	out = script(t, "1\n5000\n2\n1500\n0\n")
	assert.Contains(t, out, "Limit per withdrawal: R$ 1000.00.")
}

func TestSession_DailyLimit(t *testing.T) {
	out := script(t, "1\n500\n2\n10\n2\n10\n2\n10\n2\n10\n0\n")

	assert.Equal(t, 3, strings.Count(out, "Withdrew R$ 10.00"))
	assert.Contains(t, out, "Daily limit of 3 withdrawals reached.")
}

func TestSession_InvalidOption(t *testing.T) {
	out := script(t, "9\n0\n")

	assert.Contains(t, out, "Invalid option.")
}

func TestSession_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	err := runSession(strings.NewReader("1\n50\n"), &out, config.Default())
	require.NoError(t, err, "EOF ends the session cleanly")
}

func TestSession_ExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.csv")
	out := script(t, "1\n100\n4\n"+path+"\n0\n")

	assert.Contains(t, out, "Exported statement to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)
	assert.Contains(t, contents, "timestamp,kind,amount,fee")
	assert.Contains(t, contents, "deposit,100.00,0.00")
}

func TestSession_StateDiscardedBetweenSessions(t *testing.T) {
	_ = script(t, "1\n100\n0\n")
	out := script(t, "3\n0\n")

	assert.Contains(t, out, "No movements yet.")
}
