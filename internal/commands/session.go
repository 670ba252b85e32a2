package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/money"
	"github.com/tally-dev/tally/internal/statement"
)

const menu = `
================ TALLY =================
[1] Deposit
[2] Withdraw
[3] Statement
[4] Export statement CSV
[0] Quit
========================================
`

func newSessionCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start an interactive ledger session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runSession(cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "tally.yaml", "path to display settings")

	return cmd
}

// loadConfig falls back to defaults when no config file exists.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// runSession drives the interactive loop against a fresh engine. The
// ledger lives only for the session; quitting discards it.
func runSession(in io.Reader, out io.Writer, cfg *config.Config) error {
	eng := ledger.New()
	sc := bufio.NewScanner(in)
	disp := cfg.Display

	for {
		fmt.Fprint(out, menu)
		fmt.Fprint(out, "Choose an option: ")

		line, ok := readLine(sc)
		if !ok {
			fmt.Fprintln(out)
			return sc.Err()
		}

		switch strings.TrimSpace(line) {
		case "1":
			deposit(sc, out, eng, disp)
		case "2":
			withdraw(sc, out, eng, disp)
		case "3":
			fmt.Fprint(out, statement.Render(eng.Statement(), renderOptions(disp)))
		case "4":
			exportCSV(sc, out, eng)
		case "0":
			fmt.Fprintln(out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(out, "Invalid option.")
		}
	}
}

func deposit(sc *bufio.Scanner, out io.Writer, eng *ledger.Engine, disp config.DisplayConfig) {
	fmt.Fprint(out, "Deposit amount: ")
	line, ok := readLine(sc)
	if !ok {
		return
	}

	amount, err := money.Parse(line)
	if err != nil {
		fmt.Fprintln(out, "Invalid amount.")
		return
	}

	balance, err := eng.Deposit(amount)
	if err != nil {
		fmt.Fprintln(out, errorMessage(err, disp))
		return
	}

	fmt.Fprintf(out, "Deposited %s | Balance: %s\n",
		money.Format(disp.CurrencyPrefix, amount),
		money.Format(disp.CurrencyPrefix, balance))
}

func withdraw(sc *bufio.Scanner, out io.Writer, eng *ledger.Engine, disp config.DisplayConfig) {
	fmt.Fprint(out, "Withdrawal amount: ")
	line, ok := readLine(sc)
	if !ok {
		return
	}

	amount, err := money.Parse(line)
	if err != nil {
		fmt.Fprintln(out, "Invalid amount.")
		return
	}

	balance, fee, err := eng.Withdraw(amount)
	if err != nil {
		fmt.Fprintln(out, errorMessage(err, disp))
		return
	}

	fmt.Fprintf(out, "Withdrew %s (fee %s). Balance: %s\n",
		money.Format(disp.CurrencyPrefix, amount),
		money.Format(disp.CurrencyPrefix, fee),
		money.Format(disp.CurrencyPrefix, balance))
}

func exportCSV(sc *bufio.Scanner, out io.Writer, eng *ledger.Engine) {
	fmt.Fprint(out, "Export path: ")
	line, ok := readLine(sc)
	if !ok {
		return
	}

	path := strings.TrimSpace(line)
	if path == "" {
		fmt.Fprintln(out, "Invalid path.")
		return
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(out, "Cannot write %s: %v\n", path, err)
		return
	}
	defer f.Close()

	if err := statement.WriteCSV(f, eng.Statement()); err != nil {
		fmt.Fprintf(out, "Export failed: %v\n", err)
		return
	}

	fmt.Fprintf(out, "Exported statement to %s\n", path)
}

// errorMessage maps engine errors to the messages shown to the user.
func errorMessage(err error, disp config.DisplayConfig) string {
	switch {
	case errors.Is(err, ledger.ErrDailyLimitReached):
		return fmt.Sprintf("Daily limit of %d withdrawals reached.", ledger.DailyWithdrawalLimit)
	case errors.Is(err, ledger.ErrInvalidAmount):
		return "Amount must be greater than zero."
	case errors.Is(err, ledger.ErrPerWithdrawalLimitExceeded):
		return fmt.Sprintf("Limit per withdrawal: %s.", money.Format(disp.CurrencyPrefix, ledger.PerWithdrawalCap))
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return fmt.Sprintf("Insufficient funds (must cover amount plus %s fee).", money.Format(disp.CurrencyPrefix, ledger.WithdrawalFee))
	default:
		return err.Error()
	}
}

func renderOptions(disp config.DisplayConfig) statement.Options {
	return statement.Options{
		CurrencyPrefix: disp.CurrencyPrefix,
		TimeFormat:     disp.TimeFormat,
		Width:          disp.Width,
	}
}

func readLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return sc.Text(), true
}
